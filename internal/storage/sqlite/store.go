// Package sqlite provides a SQLite storage backend using the pure-Go
// modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
)

var (
	_ storage.Store  = (*Store)(nil)
	_ storage.Closer = (*Store)(nil)
)

// DefaultFileName is the database file created inside the data directory.
const DefaultFileName = "quotegen.db"

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// Store keeps keys in a single kv table.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the database at path. Use ":memory:" for a
// throwaway database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
			return nil, errors.WrapIO("create", filepath.Dir(path), err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.WrapResource("open", "storage", path, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.WrapResource("initialize", "storage", path, err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Get implements storage.Store.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return "", errors.NewNotFoundError("key", key)
		}
		return "", errors.WrapIO("read", key, err)
	}
	return value, nil
}

// Set implements storage.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return errors.WrapIO("write", key, err)
	}
	return nil
}

// Close implements storage.Closer.
func (s *Store) Close() error {
	return s.db.Close()
}
