package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"employee-registry/internal/model"
)

func TestUserRepositoryCreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	id, err := repo.Create(ctx, "alice", "hashed-secret", model.RoleView)
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	byName, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, id, byName.ID)
	require.Equal(t, "hashed-secret", byName.PasswordHash)
	require.Equal(t, model.RoleView, byName.Role)

	byID, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
}

func TestUserRepositoryDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.Create(ctx, "alice", "h1", model.RoleView)
	require.NoError(t, err)

	_, err = repo.Create(ctx, "alice", "h2", model.RoleEdit)
	require.ErrorIs(t, err, model.ErrDuplicateUsername)
}

func TestUserRepositoryFindUnknown(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	_, err := repo.FindByUsername(ctx, "ghost")
	require.ErrorIs(t, err, model.ErrUserNotFound)

	_, err = repo.FindByID(ctx, 42)
	require.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestUserRepositoryCount(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	_, err = repo.Create(ctx, "alice", "h", model.RoleView)
	require.NoError(t, err)

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}
