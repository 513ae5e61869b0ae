package quotes

import (
	"context"
	"fmt"

	"github.com/agentstation/quotegen/pkg/logging"
)

// MergeResult counts what a merge did to the store.
type MergeResult struct {
	Added     int `json:"added" yaml:"added"`
	Updated   int `json:"updated" yaml:"updated"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Skipped   int `json:"skipped" yaml:"skipped"`
}

// Changed reports whether the merge modified the store.
func (r MergeResult) Changed() bool {
	return r.Added > 0 || r.Updated > 0
}

// String returns a short summary.
func (r MergeResult) String() string {
	return fmt.Sprintf("%d added, %d updated, %d unchanged", r.Added, r.Updated, r.Unchanged)
}

// Merge applies an incoming batch under the remote-wins-by-id policy:
//   - an id already present overwrites that entry's text and category in place
//   - an unknown id is appended in batch order
//   - an entry without an id is always appended with a fresh id
//   - local entries missing from the batch are kept
//
// Entries with empty text or category are skipped. Applying the same batch
// twice leaves the store as applying it once, for entries that carry ids.
// The store is persisted once if anything changed.
func (s *Store) Merge(ctx context.Context, incoming []Quote) MergeResult {
	var result MergeResult

	s.mu.Lock()
	for _, q := range incoming {
		q = q.Normalized()
		if q.Validate() != nil {
			result.Skipped++
			continue
		}

		if q.ID == 0 {
			q.ID = s.nextID()
			s.appendLocked(q)
			result.Added++
			continue
		}

		i, ok := s.index[q.ID]
		switch {
		case !ok:
			s.appendLocked(q)
			result.Added++
		case s.quotes[i] == q:
			result.Unchanged++
		default:
			s.quotes[i] = q
			result.Updated++
		}
	}

	var p pending
	if result.Changed() {
		p = s.commitLocked()
	}
	s.mu.Unlock()

	if result.Changed() {
		s.persist(ctx, p)
	}

	logging.FromContext(ctx).Debug().
		Int("added", result.Added).
		Int("updated", result.Updated).
		Int("unchanged", result.Unchanged).
		Int("skipped", result.Skipped).
		Msg("Merged quotes")
	return result
}
