package quotes

import (
	"context"
	"slices"
	"sync"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/logging"
	"github.com/agentstation/quotegen/pkg/storage"
)

// Categories returns "all" followed by the distinct categories of list,
// sorted in byte order.
func Categories(list []Quote) []string {
	seen := make(map[string]struct{}, len(list))
	var distinct []string
	for _, q := range list {
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		distinct = append(distinct, q.Category)
	}
	slices.Sort(distinct)
	return append([]string{constants.AllCategories}, distinct...)
}

// Selection is the persisted category filter.
type Selection struct {
	mu    sync.Mutex
	kv    storage.Store
	key   string
	store *Store
	value string // used when kv is nil
}

// NewSelection binds a selection to the store whose categories validate it.
// kv may be nil, in which case the selection lives in memory only.
func NewSelection(kv storage.Store, store *Store) *Selection {
	return &Selection{
		kv:    kv,
		key:   constants.SelectionKey,
		store: store,
		value: constants.AllCategories,
	}
}

// Current returns the persisted selection, or "all" when nothing is
// persisted or the persisted category is no longer present in the store.
func (s *Selection) Current(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	value := s.value
	if s.kv != nil {
		v, err := s.kv.Get(ctx, s.key)
		if err != nil {
			if !errors.IsNotFound(err) {
				logging.FromContext(ctx).Warn().Err(err).Msg("Failed to read category selection")
			}
			return constants.AllCategories
		}
		value = v
	}

	if value == constants.AllCategories || !s.present(value) {
		return constants.AllCategories
	}
	return value
}

// Set persists value without validating it against the store.
func (s *Selection) Set(ctx context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv == nil {
		s.value = value
		return nil
	}
	return s.kv.Set(ctx, s.key, value)
}

func (s *Selection) present(category string) bool {
	if s.store == nil {
		return false
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	for _, q := range s.store.quotes {
		if q.Category == category {
			return true
		}
	}
	return false
}
