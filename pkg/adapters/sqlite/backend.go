// Package sqlite implements core.Backend on a SQLite database file using the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aretw0/docket/pkg/core"
)

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);`

const busyTimeout = 5 * time.Second

// Backend stores keys as rows of a single kv table.
type Backend struct {
	path string
	db   *sql.DB
}

// Open opens (or creates) the database at path. ":memory:" is accepted.
func Open(path string) (*Backend, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	return &Backend{path: path, db: db}, nil
}

// Initialize pings the database, applies pragmas and creates the schema.
func (b *Backend) Initialize(ctx context.Context) error {
	if err := b.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping failed: %w", err)
	}

	if _, err := b.db.ExecContext(ctx, fmt.Sprintf(`PRAGMA busy_timeout = %d`, busyTimeout.Milliseconds())); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// In-memory databases keep their own journal mode.
	if b.path != ":memory:" {
		var mode string
		if err := b.db.QueryRowContext(ctx, `PRAGMA journal_mode = WAL`).Scan(&mode); err != nil {
			return fmt.Errorf("failed to enable WAL: %w", err)
		}
	}

	if _, err := b.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Get implements core.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, core.ErrKeyNotFound
		}
		return nil, fmt.Errorf("sqlite get %s: %w", key, err)
	}
	return value, nil
}

// Set implements core.Backend.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("sqlite set %s: %w", key, err)
	}
	return nil
}

// Close closes the database.
func (b *Backend) Close() error {
	return b.db.Close()
}

// ComponentType implements introspection.Component.
func (b *Backend) ComponentType() string {
	return "sqlite"
}

var _ core.Backend = (*Backend)(nil)
