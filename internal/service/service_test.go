package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"employee-registry/internal/database"
	"employee-registry/internal/repository"
)

type testEnv struct {
	auth      *AuthService
	employees *EmployeeService
	users     *repository.UserRepository
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	ctx := context.Background()
	db, err := database.New(ctx, filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))

	users := repository.NewUserRepository(db.Conn)
	tokens := repository.NewTokenRepository(db.Conn)
	employees := repository.NewEmployeeRepository(db.Conn)

	return testEnv{
		auth:      NewAuthService(users, tokens, bcrypt.MinCost),
		employees: NewEmployeeService(employees),
		users:     users,
	}
}
