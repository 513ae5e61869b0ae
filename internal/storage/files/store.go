// Package files provides a directory-backed storage backend: one file per key.
package files

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
)

var _ storage.Store = (*Store)(nil)

// validKey keeps keys safe to use as file names.
var validKey = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// Store writes each key to <dir>/<key>.
type Store struct {
	mu  sync.Mutex
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, &errors.ConfigError{Component: "storage", Message: "data directory is required for file storage"}
	}
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return nil, errors.WrapIO("create", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory holding the key files.
func (s *Store) Dir() string {
	return s.dir
}

// Get implements storage.Store.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	path, err := s.path(key)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", errors.NewNotFoundError("key", key)
		}
		return "", errors.WrapIO("read", path, err)
	}
	return string(data), nil
}

// Set implements storage.Store. Values are written to a temp file and renamed
// so a crash never leaves a half-written snapshot.
func (s *Store) Set(_ context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, "."+key+".*")
	if err != nil {
		return errors.WrapIO("create", s.dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return errors.WrapIO("write", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("close", tmpName, err)
	}
	if err := os.Chmod(tmpName, constants.FilePermissions); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("chmod", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return errors.WrapIO("rename", path, err)
	}
	return nil
}

func (s *Store) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", errors.NewValidationError("key", key, "must contain only letters, digits, '_', '.' or '-'")
	}
	return filepath.Join(s.dir, key), nil
}
