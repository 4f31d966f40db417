package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"movienight/internal/domain"
	"movienight/internal/repository"
)

func newTestUserRepo(t *testing.T) repository.UserRepository {
	t.Helper()

	repo := NewUserRepository(openTestDB(t))
	require.NoError(t, repo.Init(context.Background()))
	return repo
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	user := &domain.User{Email: "user@example.com", PasswordHash: "hash"}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	require.Positive(t, id)

	byEmail, err := repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	require.Equal(t, id, byEmail.ID)
	require.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", byID.Email)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newTestUserRepo(t)

	_, err := repo.Create(ctx, &domain.User{Email: "user@example.com", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "user@example.com", PasswordHash: "h2"})
	require.ErrorIs(t, err, repository.ErrDuplicate)

	// first record untouched
	got, err := repo.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	require.Equal(t, "h1", got.PasswordHash)
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := newTestUserRepo(t)

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
