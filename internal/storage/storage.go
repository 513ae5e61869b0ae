// Package storage opens the configured storage backend.
package storage

import (
	"path/filepath"

	"github.com/agentstation/quotegen/internal/storage/files"
	"github.com/agentstation/quotegen/internal/storage/memory"
	"github.com/agentstation/quotegen/internal/storage/sqlite"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
)

// Open returns a backend of the given kind rooted at dir.
func Open(kind storage.Kind, dir string) (storage.Store, error) {
	switch kind {
	case storage.KindMemory, "":
		return memory.New(nil), nil
	case storage.KindFiles:
		return files.New(dir)
	case storage.KindSQLite:
		if dir == "" {
			return nil, &errors.ConfigError{Component: "storage", Message: "data directory is required for sqlite storage"}
		}
		return sqlite.Open(filepath.Join(dir, sqlite.DefaultFileName))
	default:
		return nil, errors.NewValidationError("storage", string(kind), "unknown storage backend")
	}
}
