package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"employee-registry/internal/model"
	"employee-registry/internal/repository"
	"employee-registry/pkg/apierror"
)

const tokenBytes = 32

type AuthService struct {
	users      *repository.UserRepository
	tokens     *repository.TokenRepository
	bcryptCost int
}

func NewAuthService(users *repository.UserRepository, tokens *repository.TokenRepository, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost}
}

// Login verifies credentials and mints a new opaque token. A missing user and
// a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username string, password string) (model.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.LoginResponse{}, model.ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return model.LoginResponse{}, err
	}

	if err := s.tokens.Store(ctx, token, user.ID); err != nil {
		return model.LoginResponse{}, err
	}

	return model.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *AuthService) Register(ctx context.Context, username string, password string, role string) (int64, error) {
	username = strings.TrimSpace(username)
	role = strings.TrimSpace(role)

	if username == "" || password == "" {
		return 0, apierror.BadRequest("username and password are required", "")
	}
	if role != model.RoleView && role != model.RoleEdit {
		return 0, apierror.BadRequest("invalid role", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, username, string(hash), role)
}

// AuthenticateToken resolves a bearer token to the user it was issued for.
func (s *AuthService) AuthenticateToken(ctx context.Context, token string) (model.AuthUser, error) {
	if strings.TrimSpace(token) == "" {
		return model.AuthUser{}, model.ErrTokenNotFound
	}
	return s.tokens.FindUser(ctx, token)
}

// EnsureDefaultAdmin seeds admin/admin with the edit role when the user table
// is empty, so a fresh deployment can be logged into. Invoked once from app
// startup; a no-op on every run after the first.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	count, err := s.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if _, err := s.Register(ctx, "admin", "admin", model.RoleEdit); err != nil {
		return fmt.Errorf("seed default admin: %w", err)
	}

	slog.Warn("default admin user created; change its password",
		"username", "admin", "role", model.RoleEdit)
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", apierror.New("INTERNAL_ERROR", "could not generate token", "", http.StatusInternalServerError)
	}
	return hex.EncodeToString(buf), nil
}
