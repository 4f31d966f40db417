package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"movienight/internal/domain"
	"movienight/internal/repository"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestMovieRepo(t *testing.T) repository.MovieRepository {
	t.Helper()

	repo := NewMovieRepository(openTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestMovieRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestMovieRepo(t)

	movie := &domain.Movie{
		Title:     "Heat",
		Genre:     "Crime",
		Platforms: []string{"Netflix", "Prime"},
		Synopsis:  "A heist crew and a detective circle each other.",
		AddedBy:   1,
	}

	id, err := repo.Create(ctx, movie)
	require.NoError(t, err)
	require.Positive(t, id)
	require.False(t, movie.CreatedAt.IsZero())

	got, err := repo.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Heat", got.Title)
	require.Equal(t, []string{"Netflix", "Prime"}, got.Platforms)
	require.Equal(t, int64(1), got.AddedBy)
	require.Zero(t, got.ThumbsUp)
	require.Zero(t, got.ThumbsDown)
}

func TestMovieRepository_GetMissing(t *testing.T) {
	repo := newTestMovieRepo(t)

	_, err := repo.Get(context.Background(), 999)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieRepository_UpdatePreservesCountersAndOwner(t *testing.T) {
	ctx := context.Background()
	repo := newTestMovieRepo(t)

	movie := &domain.Movie{Title: "Alien", AddedBy: 3}
	_, err := repo.Create(ctx, movie)
	require.NoError(t, err)

	_, err = repo.IncrementThumbsUp(ctx, movie.ID)
	require.NoError(t, err)

	movie.Title = "Aliens"
	movie.Platforms = []string{"Hulu"}
	require.NoError(t, repo.Update(ctx, movie))

	got, err := repo.Get(ctx, movie.ID)
	require.NoError(t, err)
	require.Equal(t, "Aliens", got.Title)
	require.Equal(t, []string{"Hulu"}, got.Platforms)
	require.Equal(t, int64(3), got.AddedBy)
	require.Equal(t, int64(1), got.ThumbsUp)
}

func TestMovieRepository_DeleteMissing(t *testing.T) {
	repo := newTestMovieRepo(t)

	err := repo.Delete(context.Background(), 123)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMovieRepository_IncrementMissing(t *testing.T) {
	repo := newTestMovieRepo(t)

	_, err := repo.IncrementThumbsUp(context.Background(), 123)
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.IncrementThumbsDown(context.Background(), 123)
	require.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestMovieRepository_ConcurrentThumbsUp(t *testing.T) {
	ctx := context.Background()
	repo := newTestMovieRepo(t)

	movie := &domain.Movie{Title: "Dune", AddedBy: 1}
	_, err := repo.Create(ctx, movie)
	require.NoError(t, err)

	const votes = 25
	var wg sync.WaitGroup
	errs := make(chan error, votes)
	for i := 0; i < votes; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.IncrementThumbsUp(ctx, movie.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent increment: %v", err)
	}

	got, err := repo.Get(ctx, movie.ID)
	require.NoError(t, err)
	require.Equal(t, int64(votes), got.ThumbsUp)
	require.Zero(t, got.ThumbsDown)
}

func TestMovieRepository_List(t *testing.T) {
	ctx := context.Background()
	repo := newTestMovieRepo(t)

	for _, title := range []string{"Up", "Ran", "Big"} {
		_, err := repo.Create(ctx, &domain.Movie{Title: title, AddedBy: 1})
		require.NoError(t, err)
	}

	movies, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
}
