package quotes

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/agentstation/utc"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/logging"
	"github.com/agentstation/quotegen/pkg/storage"
)

// Origin describes where a loaded store's contents came from.
type Origin string

// Load origins
const (
	OriginSnapshot Origin = "snapshot"
	OriginSeed     Origin = "seed"
)

// LoadReport describes how Load produced its store. Err is set when a
// persisted snapshot existed but could not be used.
type LoadReport struct {
	Origin Origin
	Err    error
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the millisecond clock used to derive fresh ids.
func WithClock(clock func() int64) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithKey persists the snapshot under key instead of constants.QuotesKey.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// Store is an ordered collection of quotes with unique ids. All mutations
// are atomic and persist a snapshot when a storage capability is attached.
// Readers always receive copies.
type Store struct {
	mu     sync.RWMutex
	quotes []Quote
	index  map[int64]int
	lastID int64

	kv    storage.Store
	key   string
	clock func() int64

	// version counts mutations; persisted is the newest version handed to
	// kv. persistMu orders writes so an older snapshot never lands last.
	version   uint64
	persistMu sync.Mutex
	persisted uint64
}

// pending is a snapshot taken under the write lock, waiting to be written.
type pending struct {
	version uint64
	data    []byte
	err     error
}

// New creates an empty store. kv may be nil for a purely in-memory store.
func New(kv storage.Store, opts ...Option) *Store {
	s := &Store{
		index: make(map[int64]int),
		kv:    kv,
		key:   constants.QuotesKey,
		clock: func() int64 { return utc.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns a store holding the persisted snapshot if one is present and
// readable, else the seed quotes. It never fails: an unreadable snapshot is
// reported through LoadReport.Err and replaced by the seed.
func Load(ctx context.Context, kv storage.Store, opts ...Option) (*Store, LoadReport) {
	s := New(kv, opts...)
	logger := logging.FromContext(ctx)

	if kv != nil {
		data, err := kv.Get(ctx, s.key)
		switch {
		case err == nil:
			list, perr := parseSnapshot(s.key, []byte(data))
			if perr == nil {
				// Older snapshots carry no ids; keep the ones assigned now
				// so later runs see the same ids.
				if s.reset(list) > 0 {
					s.persist(ctx, s.commitLocked())
				}
				return s, LoadReport{Origin: OriginSnapshot}
			}
			logger.Warn().Err(perr).Str("key", s.key).Msg("Persisted quotes unreadable, using seed data")
			s.reset(Seed())
			return s, LoadReport{Origin: OriginSeed, Err: perr}
		case !errors.IsNotFound(err):
			logger.Warn().Err(err).Str("key", s.key).Msg("Failed to read persisted quotes, using seed data")
			s.reset(Seed())
			return s, LoadReport{Origin: OriginSeed, Err: err}
		}
	}

	s.reset(Seed())
	return s, LoadReport{Origin: OriginSeed}
}

// Add validates and appends a new quote with a fresh id, then persists.
func (s *Store) Add(ctx context.Context, text, category string) (Quote, error) {
	q := Quote{Text: text, Category: category}.Normalized()
	if err := q.Validate(); err != nil {
		return Quote{}, err
	}

	s.mu.Lock()
	q.ID = s.nextID()
	s.appendLocked(q)
	p := s.commitLocked()
	s.mu.Unlock()

	s.persist(ctx, p)
	logging.FromContext(ctx).Debug().Int64("quote_id", q.ID).Str("category", q.Category).Msg("Added quote")
	return q, nil
}

// Get returns the quote with the given id.
func (s *Store) Get(id int64) (Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return Quote{}, errors.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	return s.quotes[i], nil
}

// List returns a copy of all quotes in store order.
func (s *Store) List() []Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Quote, len(s.quotes))
	copy(out, s.quotes)
	return out
}

// Filter returns the filtered view for category, in store order.
func (s *Store) Filter(category string) []Quote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Quote
	for _, q := range s.quotes {
		if q.InCategory(category) {
			out = append(out, q)
		}
	}
	return out
}

// Len returns the number of quotes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.quotes)
}

// Remove deletes the quote with the given id and persists.
func (s *Store) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	i, ok := s.index[id]
	if !ok {
		s.mu.Unlock()
		return errors.NewNotFoundError("quote", strconv.FormatInt(id, 10))
	}
	list := append(s.quotes[:i:i], s.quotes[i+1:]...)
	s.reset(list)
	p := s.commitLocked()
	s.mu.Unlock()

	s.persist(ctx, p)
	return nil
}

// ReplaceAll replaces the contents with list and persists. Later entries
// win over earlier ones sharing an id; entries without an id get fresh ids.
func (s *Store) ReplaceAll(ctx context.Context, list []Quote) error {
	normalized := make([]Quote, 0, len(list))
	for i, q := range list {
		q = q.Normalized()
		if err := q.Validate(); err != nil {
			return errors.WrapValidation("quotes["+strconv.Itoa(i)+"]", err)
		}
		normalized = append(normalized, q)
	}

	s.mu.Lock()
	s.reset(normalized)
	p := s.commitLocked()
	s.mu.Unlock()

	s.persist(ctx, p)
	return nil
}

// Snapshot serializes the store as a JSON array, order preserved.
func (s *Store) Snapshot() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Restore replaces the contents with a snapshot produced by Snapshot.
// Unreadable data returns a StorageCorruptError and leaves the store as is.
func (s *Store) Restore(ctx context.Context, data []byte) error {
	list, err := parseSnapshot(s.key, data)
	if err != nil {
		return err
	}
	return s.ReplaceAll(ctx, list)
}

// Categories returns "all" followed by the distinct categories in byte order.
func (s *Store) Categories() []string {
	return Categories(s.List())
}

// Save persists the current snapshot, returning any storage error.
func (s *Store) Save(ctx context.Context) error {
	if s.kv == nil {
		return nil
	}
	s.mu.Lock()
	p := s.commitLocked()
	s.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	return s.write(ctx, p)
}

// reset rebuilds contents and index from list and returns how many entries
// were given fresh ids. lastID never decreases so removed ids are not handed
// out again. Callers hold the write lock or own the store exclusively.
func (s *Store) reset(list []Quote) int {
	assigned := 0
	s.quotes = make([]Quote, 0, len(list))
	s.index = make(map[int64]int, len(list))
	for _, q := range list {
		if q.ID > s.lastID {
			s.lastID = q.ID
		}
	}
	for _, q := range list {
		if q.ID == 0 {
			q.ID = s.nextID()
			assigned++
		}
		if i, ok := s.index[q.ID]; ok {
			s.quotes[i] = q
			continue
		}
		s.appendLocked(q)
	}
	return assigned
}

func (s *Store) appendLocked(q Quote) {
	s.index[q.ID] = len(s.quotes)
	s.quotes = append(s.quotes, q)
	if q.ID > s.lastID {
		s.lastID = q.ID
	}
}

// nextID returns a timestamp-derived id that is greater than every id the
// store has seen.
func (s *Store) nextID() int64 {
	id := s.clock()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Store) snapshotLocked() ([]byte, error) {
	list := s.quotes
	if list == nil {
		list = []Quote{}
	}
	return json.Marshal(list)
}

// commitLocked stamps the current contents with a new version and
// serializes them. Callers hold the write lock.
func (s *Store) commitLocked() pending {
	s.version++
	data, err := s.snapshotLocked()
	return pending{version: s.version, data: data, err: err}
}

// persist writes a snapshot. Failures are logged; the in-memory mutation
// has already committed.
func (s *Store) persist(ctx context.Context, p pending) {
	if s.kv == nil {
		return
	}
	logger := logging.FromContext(ctx)
	if p.err != nil {
		logger.Warn().Err(p.err).Msg("Failed to serialize quotes")
		return
	}
	if err := s.write(ctx, p); err != nil {
		logger.Warn().Err(err).Str("key", s.key).Msg("Failed to persist quotes")
	}
}

// write stores p unless a newer snapshot was already written. The write
// outlives ctx cancellation because the mutation it records is committed.
func (s *Store) write(ctx context.Context, p pending) error {
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if p.version <= s.persisted {
		return nil
	}
	s.persisted = p.version
	return s.kv.Set(context.WithoutCancel(ctx), s.key, string(p.data))
}

// parseSnapshot decodes a persisted JSON array. Entries are normalized and
// entries with empty fields are dropped.
func parseSnapshot(key string, data []byte) ([]Quote, error) {
	var list []Quote
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, errors.NewStorageCorruptError(key, err)
	}
	if list == nil {
		return nil, errors.NewStorageCorruptError(key, errors.New("snapshot is not an array"))
	}
	out := list[:0]
	for _, q := range list {
		q = q.Normalized()
		if q.Validate() != nil {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}
