package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"employee-registry/internal/model"
)

type TokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

// Store records a token permanently. Tokens never expire and are never
// revoked; issuing is append-only and a user may hold several live tokens.
func (r *TokenRepository) Store(ctx context.Context, token string, userID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tokens (token, user_id, created_at) VALUES (?, ?, ?)`,
		token, userID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

func (r *TokenRepository) FindUser(ctx context.Context, token string) (model.AuthUser, error) {
	var u model.AuthUser
	err := r.db.QueryRowContext(ctx,
		`SELECT users.id, users.username, users.role
		 FROM users
		 JOIN tokens ON users.id = tokens.user_id
		 WHERE tokens.token = ?`, token).
		Scan(&u.ID, &u.Username, &u.Role)

	if errors.Is(err, sql.ErrNoRows) {
		return model.AuthUser{}, model.ErrTokenNotFound
	}
	if err != nil {
		return model.AuthUser{}, fmt.Errorf("find user by token: %w", err)
	}
	return u, nil
}
