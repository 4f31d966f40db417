package repository

import (
	"context"

	"movienight/internal/domain"
)

// MovieRepository exposes persistence operations for Movie records.
//
// The thumbs counters are incremented in a single SQL statement rather than
// read-then-write so concurrent votes never lose updates.
type MovieRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, movie *domain.Movie) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Movie, error)
	List(ctx context.Context) ([]domain.Movie, error)
	Update(ctx context.Context, movie *domain.Movie) error
	Delete(ctx context.Context, id int64) error
	IncrementThumbsUp(ctx context.Context, id int64) (*domain.Movie, error)
	IncrementThumbsDown(ctx context.Context, id int64) (*domain.Movie, error)
}
