// Package memory provides an in-memory storage backend. It backs session
// state (the last shown quote) and stands in for durable storage in tests.
package memory

import (
	"context"
	"sync"

	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
)

var _ storage.Store = (*Store)(nil)

// Store is a mutex-guarded map.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates an empty store, optionally preloaded with values.
func New(preload map[string]string) *Store {
	values := make(map[string]string, len(preload))
	for k, v := range preload {
		values[k] = v
	}
	return &Store{values: values}
}

// Get implements storage.Store.
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.values[key]
	if !ok {
		return "", errors.NewNotFoundError("key", key)
	}
	return v, nil
}

// Set implements storage.Store.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	return nil
}

// Delete removes a key. Missing keys are ignored.
func (s *Store) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
}

// Len returns the number of keys held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
