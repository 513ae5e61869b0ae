package quotes

import (
	"math/rand/v2"
	"sync"

	"github.com/agentstation/quotegen/pkg/errors"
)

// Selector picks uniformly at random from a filtered view.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector returns a selector drawing from rng. A nil rng uses the
// global source.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Pick returns a random quote from store whose category matches selection
// ("all" matches everything). It returns ErrNoneAvailable when the view is
// empty.
func (s *Selector) Pick(store *Store, selection string) (Quote, error) {
	view := store.Filter(selection)
	if len(view) == 0 {
		return Quote{}, errors.ErrNoneAvailable
	}
	return view[s.intN(len(view))], nil
}

func (s *Selector) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

var defaultSelector = NewSelector(nil)

// Pick draws from store using the global random source.
func Pick(store *Store, selection string) (Quote, error) {
	return defaultSelector.Pick(store, selection)
}
