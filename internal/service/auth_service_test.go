package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"employee-registry/internal/model"
	"employee-registry/pkg/apierror"
)

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "alice", "secret", "admin")

		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	})

	t.Run("rejects empty username or password", func(t *testing.T) {
		var apiErr *apierror.APIError

		_, err := env.auth.Register(ctx, "", "secret", model.RoleView)
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)

		_, err = env.auth.Register(ctx, "alice", "", model.RoleView)
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusBadRequest, apiErr.HTTPStatus)
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := env.auth.Register(ctx, "alice", "secret", model.RoleView)
		require.NoError(t, err)

		_, err = env.auth.Register(ctx, "alice", "other", model.RoleEdit)
		require.ErrorIs(t, err, model.ErrDuplicateUsername)
	})
}

func TestLoginAndTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	id, err := env.auth.Register(ctx, "alice", "secret", model.RoleView)
	require.NoError(t, err)

	login, err := env.auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)
	require.Equal(t, model.RoleView, login.Role)

	user, err := env.auth.AuthenticateToken(ctx, login.Token)
	require.NoError(t, err)
	require.Equal(t, id, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Equal(t, model.RoleView, user.Role)
}

func TestLoginInvalidCredentials(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, "alice", "secret", model.RoleView)
	require.NoError(t, err)

	_, err = env.auth.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)

	// An unknown user fails the same way as a wrong password.
	_, err = env.auth.Login(ctx, "ghost", "secret")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginIssuesFreshTokens(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, "alice", "secret", model.RoleView)
	require.NoError(t, err)

	first, err := env.auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	second, err := env.auth.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	require.NotEqual(t, first.Token, second.Token)

	// Both tokens stay live.
	_, err = env.auth.AuthenticateToken(ctx, first.Token)
	require.NoError(t, err)
	_, err = env.auth.AuthenticateToken(ctx, second.Token)
	require.NoError(t, err)
}

func TestAuthenticateTokenUnknown(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.AuthenticateToken(ctx, "never-issued")
	require.ErrorIs(t, err, model.ErrTokenNotFound)

	_, err = env.auth.AuthenticateToken(ctx, "")
	require.ErrorIs(t, err, model.ErrTokenNotFound)
}

func TestEnsureDefaultAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.auth.EnsureDefaultAdmin(ctx))

	count, err := env.users.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)

	login, err := env.auth.Login(ctx, "admin", "admin")
	require.NoError(t, err)
	require.Equal(t, model.RoleEdit, login.Role)

	// Re-running the seed is a no-op once any user exists.
	require.NoError(t, env.auth.EnsureDefaultAdmin(ctx))
	count, err = env.users.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestEnsureDefaultAdminSkippedWhenUsersExist(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Register(ctx, "alice", "secret", model.RoleView)
	require.NoError(t, err)

	require.NoError(t, env.auth.EnsureDefaultAdmin(ctx))

	_, err = env.auth.Login(ctx, "admin", "admin")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}
