package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"movienight/internal/service"
)

func (h *Handler) listMovies(c *gin.Context) {
	movies, err := h.movies.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]MovieResponse, len(movies))
	for i := range movies {
		resp[i] = movieToResponse(movies[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createMovie(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movies.Create(c.Request.Context(), userID, req.toInput())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, movieToResponse(*movie))
}

func (h *Handler) updateMovie(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	var req movieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.movies.Update(c.Request.Context(), userID, id, req.toInput())
	if err != nil {
		h.writeMovieError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, movieToResponse(*movie))
}

func (h *Handler) deleteMovie(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	movie, err := h.movies.Delete(c.Request.Context(), userID, id)
	if err != nil {
		h.writeMovieError(c, err, "delete")
		return
	}

	c.JSON(http.StatusOK, movieToResponse(*movie))
}

func (h *Handler) thumbsUp(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	movie, err := h.movies.ThumbsUp(c.Request.Context(), id)
	if err != nil {
		h.writeMovieError(c, err, "vote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thumbs up added!", "movie": movieToResponse(*movie)})
}

func (h *Handler) thumbsDown(c *gin.Context) {
	id, ok := movieIDParam(c)
	if !ok {
		return
	}

	movie, err := h.movies.ThumbsDown(c.Request.Context(), id)
	if err != nil {
		h.writeMovieError(c, err, "vote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Thumbs down added!", "movie": movieToResponse(*movie)})
}

func (h *Handler) writeMovieError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, service.ErrMovieNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "you are not authorized to " + op + " this movie"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
