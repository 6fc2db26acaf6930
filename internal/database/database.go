package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	Conn *sql.DB
}

func New(ctx context.Context, path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", path)

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// sqlite allows a single writer; serializing through one connection avoids
	// SQLITE_BUSY on concurrent writes.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database opened", "path", path)
	return &DB{Conn: conn}, nil
}

func (db *DB) Close() {
	if db.Conn != nil {
		_ = db.Conn.Close()
	}
}

func (db *DB) Health(ctx context.Context) error {
	return db.Conn.PingContext(ctx)
}
