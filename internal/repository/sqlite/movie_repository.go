package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"movienight/internal/domain"
	"movienight/internal/repository"
)

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	genre TEXT NOT NULL DEFAULT '',
	platforms TEXT NOT NULL DEFAULT '[]',
	synopsis TEXT NOT NULL DEFAULT '',
	added_by INTEGER NOT NULL,
	thumbs_up INTEGER NOT NULL DEFAULT 0,
	thumbs_down INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

type MovieRepository struct {
	db *sql.DB
}

func NewMovieRepository(db *sql.DB) repository.MovieRepository {
	return &MovieRepository{db: db}
}

func (r *MovieRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createMoviesTable); err != nil {
		return fmt.Errorf("create movies table: %w", err)
	}
	return nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *domain.Movie) (int64, error) {
	now := time.Now().UTC()
	movie.CreatedAt = now
	movie.UpdatedAt = now

	platforms, err := encodePlatforms(movie.Platforms)
	if err != nil {
		return 0, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO movies (title, genre, platforms, synopsis, added_by, thumbs_up, thumbs_down, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		movie.Title,
		movie.Genre,
		platforms,
		movie.Synopsis,
		movie.AddedBy,
		movie.ThumbsUp,
		movie.ThumbsDown,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("movie last insert id: %w", err)
	}
	movie.ID = id
	return id, nil
}

func (r *MovieRepository) Get(ctx context.Context, id int64) (*domain.Movie, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id, title, genre, platforms, synopsis, added_by, thumbs_up, thumbs_down, created_at, updated_at
FROM movies
WHERE id = ?`,
		id,
	)
	return scanMovie(row)
}

func (r *MovieRepository) List(ctx context.Context) ([]domain.Movie, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, genre, platforms, synopsis, added_by, thumbs_up, thumbs_down, created_at, updated_at
FROM movies`)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, *movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	platforms, err := encodePlatforms(movie.Platforms)
	if err != nil {
		return err
	}
	movie.UpdatedAt = time.Now().UTC()

	res, err := r.db.ExecContext(ctx, `
UPDATE movies
SET title = ?, genre = ?, platforms = ?, synopsis = ?, updated_at = ?
WHERE id = ?`,
		movie.Title,
		movie.Genre,
		platforms,
		movie.Synopsis,
		movie.UpdatedAt,
		movie.ID,
	)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	return requireAffected(res, "update movie")
}

func (r *MovieRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete movie: %w", err)
	}
	return requireAffected(res, "delete movie")
}

func (r *MovieRepository) IncrementThumbsUp(ctx context.Context, id int64) (*domain.Movie, error) {
	return r.increment(ctx, id, "thumbs_up")
}

func (r *MovieRepository) IncrementThumbsDown(ctx context.Context, id int64) (*domain.Movie, error) {
	return r.increment(ctx, id, "thumbs_down")
}

// increment bumps a vote counter in a single UPDATE so concurrent votes
// cannot lose updates. column is one of the two fixed counter names, never
// caller input.
func (r *MovieRepository) increment(ctx context.Context, id int64, column string) (*domain.Movie, error) {
	query := fmt.Sprintf(`UPDATE movies SET %s = %s + 1, updated_at = ? WHERE id = ?`, column, column)
	res, err := r.db.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return nil, fmt.Errorf("increment %s: %w", column, err)
	}
	if err := requireAffected(res, "increment "+column); err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

func requireAffected(res sql.Result, op string) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}

func encodePlatforms(platforms []string) (string, error) {
	if platforms == nil {
		platforms = []string{}
	}
	raw, err := json.Marshal(platforms)
	if err != nil {
		return "", fmt.Errorf("encode platforms: %w", err)
	}
	return string(raw), nil
}

func scanMovie(row interface {
	Scan(dest ...any) error
}) (*domain.Movie, error) {
	var (
		movie     domain.Movie
		platforms string
	)
	if err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Genre,
		&platforms,
		&movie.Synopsis,
		&movie.AddedBy,
		&movie.ThumbsUp,
		&movie.ThumbsDown,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("movie: %w", repository.ErrNotFound)
		}
		return nil, fmt.Errorf("scan movie: %w", err)
	}
	if err := json.Unmarshal([]byte(platforms), &movie.Platforms); err != nil {
		return nil, fmt.Errorf("decode platforms: %w", err)
	}
	return &movie, nil
}
