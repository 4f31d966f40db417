package service

import (
	"context"
	"errors"
	"strings"

	"movienight/internal/domain"
	"movienight/internal/repository"
)

var (
	// ErrMovieNotFound indicates the movie does not exist.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrNotOwner is returned when a caller tries to mutate a movie added by someone else.
	ErrNotOwner = errors.New("not the owner of this movie")
)

// MovieInput carries the caller-editable fields of a movie.
type MovieInput struct {
	Title     string
	Genre     string
	Platforms []string
	Synopsis  string
}

// MovieService coordinates movie operations backed by the movie repository.
// Create, Update and Delete are ownership-gated; List and the vote
// operations are open to any caller.
type MovieService interface {
	List(ctx context.Context) ([]domain.Movie, error)
	Get(ctx context.Context, id int64) (*domain.Movie, error)
	Create(ctx context.Context, userID int64, input MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, userID, id int64, input MovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, userID, id int64) (*domain.Movie, error)
	ThumbsUp(ctx context.Context, id int64) (*domain.Movie, error)
	ThumbsDown(ctx context.Context, id int64) (*domain.Movie, error)
}

type movieService struct {
	movies repository.MovieRepository
}

func NewMovieService(movies repository.MovieRepository) MovieService {
	return &movieService{movies: movies}
}

func (s *movieService) List(ctx context.Context) ([]domain.Movie, error) {
	return s.movies.List(ctx)
}

func (s *movieService) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, err := s.movies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Create(ctx context.Context, userID int64, input MovieInput) (*domain.Movie, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.New("title is required")
	}

	movie := &domain.Movie{
		Title:     input.Title,
		Genre:     input.Genre,
		Platforms: input.Platforms,
		Synopsis:  input.Synopsis,
		AddedBy:   userID,
	}

	if _, err := s.movies.Create(ctx, movie); err != nil {
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Update(ctx context.Context, userID, id int64, input MovieInput) (*domain.Movie, error) {
	movie, err := s.authorizeOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// Only the caller-editable fields change; owner, counters and
	// created_at stay as stored.
	movie.Title = input.Title
	movie.Genre = input.Genre
	movie.Platforms = input.Platforms
	movie.Synopsis = input.Synopsis

	if err := s.movies.Update(ctx, movie); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) Delete(ctx context.Context, userID, id int64) (*domain.Movie, error) {
	movie, err := s.authorizeOwner(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := s.movies.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) ThumbsUp(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, err := s.movies.IncrementThumbsUp(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

func (s *movieService) ThumbsDown(ctx context.Context, id int64) (*domain.Movie, error) {
	movie, err := s.movies.IncrementThumbsDown(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return movie, nil
}

// authorizeOwner is the single ownership predicate shared by Update and
// Delete: the movie must exist and its added_by must equal the caller.
func (s *movieService) authorizeOwner(ctx context.Context, userID, id int64) (*domain.Movie, error) {
	movie, err := s.movies.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	if movie.AddedBy != userID {
		return nil, ErrNotOwner
	}
	return movie, nil
}
