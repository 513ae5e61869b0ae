// Package storage defines the narrow persistence capability quotegen writes
// snapshots through. A Store is a durable string key/value map; backends live
// under internal/storage (memory, files, sqlite).
package storage

import (
	"context"
)

// Store is a durable key/value capability.
//
// Get returns an error matching errors.ErrNotFound when the key has never
// been set. Set replaces any previous value.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Closer is implemented by backends holding OS resources.
type Closer interface {
	Close() error
}

// Close releases the store if it holds resources.
func Close(s Store) error {
	if c, ok := s.(Closer); ok {
		return c.Close()
	}
	return nil
}

// Kind names a storage backend.
type Kind string

// Storage backends
const (
	KindMemory Kind = "memory"
	KindFiles  Kind = "file"
	KindSQLite Kind = "sqlite"
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	return string(k)
}

// Kinds returns all known backend kinds.
func Kinds() []Kind {
	return []Kind{KindMemory, KindFiles, KindSQLite}
}
