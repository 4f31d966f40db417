package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"movienight/internal/domain"
	"movienight/internal/poster"
	"movienight/internal/service"
	"movienight/internal/token"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	users       service.UserService
	movies      service.MovieService
	posters     *poster.Client
	tokens      *token.Manager
	registerTTL time.Duration
	loginTTL    time.Duration
	logger      *logrus.Logger
}

func NewHandler(
	users service.UserService,
	movies service.MovieService,
	posters *poster.Client,
	tokens *token.Manager,
	registerTTL, loginTTL time.Duration,
	logger *logrus.Logger,
) *Handler {
	return &Handler{
		users:       users,
		movies:      movies,
		posters:     posters,
		tokens:      tokens,
		registerTTL: registerTTL,
		loginTTL:    loginTTL,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(h.requestLogger())
	router.Use(corsMiddleware())

	router.POST("/register", h.register)
	router.POST("/login", h.login)

	router.GET("/movies", h.listMovies)
	router.GET("/api/poster", h.getPoster)

	// Voting never uses the caller identity, so the vote routes stay
	// outside the auth group.
	router.POST("/movies/:id/thumbs-up", h.thumbsUp)
	router.POST("/movies/:id/thumbs-down", h.thumbsDown)

	authed := router.Group("/", h.requireAuth())
	{
		authed.POST("/movies", h.createMovie)
		authed.PUT("/movies/:id", h.updateMovie)
		authed.DELETE("/movies/:id", h.deleteMovie)
	}

	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"ok": "ok"})
	})
}

// platformList accepts either a single JSON string or an array of strings
// and always behaves as a sequence afterwards.
type platformList []string

func (p *platformList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*p = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*p = platformList{one}
		return nil
	}
	return fmt.Errorf("platform must be a string or an array of strings")
}

type movieRequest struct {
	Title    string       `json:"title" binding:"required"`
	Genre    string       `json:"genre"`
	Platform platformList `json:"platform"`
	Synopsis string       `json:"synopsis"`
}

func (r movieRequest) toInput() service.MovieInput {
	return service.MovieInput{
		Title:     r.Title,
		Genre:     r.Genre,
		Platforms: r.Platform,
		Synopsis:  r.Synopsis,
	}
}

type MovieResponse struct {
	ID         int64    `json:"id"`
	Title      string   `json:"title"`
	Genre      string   `json:"genre"`
	Platform   []string `json:"platform"`
	Synopsis   string   `json:"synopsis"`
	AddedBy    int64    `json:"added_by"`
	ThumbsUp   int64    `json:"thumbs_up"`
	ThumbsDown int64    `json:"thumbs_down"`
	CreatedAt  string   `json:"created_at"`
}

func movieToResponse(movie domain.Movie) MovieResponse {
	platforms := movie.Platforms
	if platforms == nil {
		platforms = []string{}
	}
	return MovieResponse{
		ID:         movie.ID,
		Title:      movie.Title,
		Genre:      movie.Genre,
		Platform:   platforms,
		Synopsis:   movie.Synopsis,
		AddedBy:    movie.AddedBy,
		ThumbsUp:   movie.ThumbsUp,
		ThumbsDown: movie.ThumbsDown,
		CreatedAt:  movie.CreatedAt.Format(time.RFC3339),
	}
}

type PosterResponse struct {
	Title     string `json:"title"`
	Synopsis  string `json:"synopsis"`
	Genre     string `json:"genre"`
	PosterURL string `json:"posterUrl"`
}

func movieIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie id"})
		return 0, false
	}
	return id, true
}

func (h *Handler) getPoster(c *gin.Context) {
	title := c.Query("title")
	if title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title query parameter is required"})
		return
	}

	meta, err := h.posters.Lookup(c.Request.Context(), title)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, poster.ErrNotFound) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, PosterResponse{
		Title:     meta.Title,
		Synopsis:  meta.Synopsis,
		Genre:     meta.Genre,
		PosterURL: meta.PosterURL,
	})
}
