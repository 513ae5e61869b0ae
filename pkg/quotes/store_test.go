package quotes

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/internal/storage/memory"
	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/logging"
)

// fixedClock returns the same millisecond on every call so id bumping is
// exercised.
func fixedClock(ms int64) Option {
	return WithClock(func() int64 { return ms })
}

func seeded(t *testing.T, opts ...Option) (*Store, *memory.Store) {
	t.Helper()
	kv := memory.New(nil)
	s, report := Load(context.Background(), kv, opts...)
	require.Equal(t, OriginSeed, report.Origin)
	require.NoError(t, report.Err)
	return s, kv
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("seed when nothing persisted", func(t *testing.T) {
		s, report := Load(ctx, memory.New(nil))
		assert.Equal(t, OriginSeed, report.Origin)
		assert.NoError(t, report.Err)
		assert.Equal(t, Seed(), s.List())
	})

	t.Run("seed without storage", func(t *testing.T) {
		s, report := Load(ctx, nil)
		assert.Equal(t, OriginSeed, report.Origin)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("persisted snapshot", func(t *testing.T) {
		kv := memory.New(map[string]string{
			constants.QuotesKey: `[{"id":10,"text":"a","category":"x"},{"id":11,"text":"b","category":"y"}]`,
		})
		s, report := Load(ctx, kv)
		assert.Equal(t, OriginSnapshot, report.Origin)
		assert.Equal(t, []Quote{{10, "a", "x"}, {11, "b", "y"}}, s.List())
	})

	t.Run("corrupt snapshot falls back to seed", func(t *testing.T) {
		logging.DisableLoggingForTest(t)
		for _, data := range []string{`{not json`, `{"id":1}`, `null`} {
			kv := memory.New(map[string]string{constants.QuotesKey: data})
			s, report := Load(ctx, kv)
			assert.Equal(t, OriginSeed, report.Origin, data)
			assert.True(t, errors.IsStorageCorrupt(report.Err), data)
			assert.Equal(t, Seed(), s.List(), data)
		}
	})

	t.Run("older snapshots without ids get fresh ids", func(t *testing.T) {
		kv := memory.New(map[string]string{
			constants.QuotesKey: `[{"text":"a","category":"x"},{"text":"b","category":"x"}]`,
		})
		s, _ := Load(ctx, kv, fixedClock(500))
		list := s.List()
		require.Len(t, list, 2)
		assert.Equal(t, int64(500), list[0].ID)
		assert.Equal(t, int64(501), list[1].ID)
	})

	t.Run("duplicate ids collapse", func(t *testing.T) {
		kv := memory.New(map[string]string{
			constants.QuotesKey: `[{"id":1,"text":"a","category":"x"},{"id":2,"text":"b","category":"x"},{"id":1,"text":"c","category":"y"}]`,
		})
		s, _ := Load(ctx, kv)
		assert.Equal(t, []Quote{{1, "c", "y"}, {2, "b", "x"}}, s.List())
	})
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	s, kv := seeded(t)
	before := s.Len()

	q, err := s.Add(ctx, "  Stay hungry, stay foolish.  ", " Motivation ")
	require.NoError(t, err)
	assert.Equal(t, "Stay hungry, stay foolish.", q.Text)
	assert.Equal(t, "Motivation", q.Category)
	assert.Equal(t, before+1, s.Len())

	got, err := s.Get(q.ID)
	require.NoError(t, err)
	assert.Equal(t, q, got)

	// The snapshot is persisted after the mutation.
	data, err := kv.Get(ctx, constants.QuotesKey)
	require.NoError(t, err)
	var persisted []Quote
	require.NoError(t, json.Unmarshal([]byte(data), &persisted))
	assert.Equal(t, s.List(), persisted)
}

func TestAddRejectsBlankInput(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t)

	tests := []struct {
		name     string
		text     string
		category string
		field    string
	}{
		{"empty text", "", "Wisdom", "text"},
		{"whitespace text", " \t\n", "Wisdom", "text"},
		{"empty category", "X", "", "category"},
		{"whitespace category", "X", "   ", "category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(ctx, tt.text, tt.category)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))

			var verr *errors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, 3, s.Len())
		})
	}
}

func TestAddNormalizesUnicode(t *testing.T) {
	s := New(nil)
	// A combining acute accent composes to the precomposed form.
	q, err := s.Add(context.Background(), "x", "Cafe\u0301")
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", q.Category)
}

func TestIDsAreUniqueAndMonotonic(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t, fixedClock(2))

	var last int64
	for range 5 {
		q, err := s.Add(ctx, "t", "c")
		require.NoError(t, err)
		assert.Greater(t, q.ID, last)
		last = q.ID
	}
	// Seed ids are 1..3, the clock says 2, so ids continue from 4.
	assert.Equal(t, int64(8), last)

	require.NoError(t, s.Remove(ctx, last))
	q, err := s.Add(ctx, "t", "c")
	require.NoError(t, err)
	assert.Equal(t, int64(9), q.ID, "removed ids are not reused")
}

func TestGetMissing(t *testing.T) {
	s := New(nil)
	_, err := s.Get(42)
	assert.True(t, errors.IsNotFound(err))
	assert.True(t, errors.IsNotFound(s.Remove(context.Background(), 42)))
}

func TestRemove(t *testing.T) {
	s, _ := seeded(t)
	require.NoError(t, s.Remove(context.Background(), 2))

	want := []Quote{Seed()[0], Seed()[2]}
	if diff := cmp.Diff(want, s.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}
	_, err := s.Get(3)
	assert.NoError(t, err, "index is rebuilt after removal")
}

func TestReplaceAll(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t, fixedClock(100))

	err := s.ReplaceAll(ctx, []Quote{{ID: 7, Text: "a", Category: "x"}, {Text: "b", Category: "y"}})
	require.NoError(t, err)
	assert.Equal(t, []Quote{{7, "a", "x"}, {100, "b", "y"}}, s.List())

	err = s.ReplaceAll(ctx, []Quote{{ID: 8, Text: "", Category: "x"}})
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, 2, s.Len(), "invalid input leaves the store untouched")
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t)
	_, err := s.Add(ctx, `He said "hi" & <left>`, "Quotes")
	require.NoError(t, err)

	data, err := s.Snapshot()
	require.NoError(t, err)

	restored := New(nil)
	require.NoError(t, restored.Restore(ctx, data))
	if diff := cmp.Diff(s.List(), restored.List()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	err = restored.Restore(ctx, []byte("garbage"))
	assert.True(t, errors.IsStorageCorrupt(err))
	assert.Equal(t, s.Len(), restored.Len())
}

func TestEmptySnapshotIsArray(t *testing.T) {
	data, err := New(nil).Snapshot()
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	kv := memory.New(nil)
	s := New(kv)
	require.NoError(t, s.Save(ctx))

	v, err := kv.Get(ctx, constants.QuotesKey)
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestWithKey(t *testing.T) {
	ctx := context.Background()
	kv := memory.New(nil)
	s := New(kv, WithKey("other"))
	_, err := s.Add(ctx, "a", "b")
	require.NoError(t, err)

	_, err = kv.Get(ctx, "other")
	assert.NoError(t, err)
	_, err = kv.Get(ctx, constants.QuotesKey)
	assert.True(t, errors.IsNotFound(err))
}

// gatedKV holds its first Set until release is closed.
type gatedKV struct {
	*memory.Store
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedKV() *gatedKV {
	return &gatedKV{
		Store:   memory.New(nil),
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gatedKV) Set(ctx context.Context, key, value string) error {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.Store.Set(ctx, key, value)
}

func TestConcurrentAddsPersistNewestSnapshot(t *testing.T) {
	ctx := context.Background()
	kv := newGatedKV()
	s := New(kv)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := s.Add(ctx, "first", "A")
		assert.NoError(t, err)
	}()
	<-kv.entered

	started := make(chan struct{})
	go func() {
		defer wg.Done()
		close(started)
		_, err := s.Add(ctx, "second", "B")
		assert.NoError(t, err)
	}()
	<-started
	// Let the second write reach storage before the first one finishes.
	time.Sleep(20 * time.Millisecond)
	close(kv.release)
	wg.Wait()

	require.Equal(t, 2, s.Len())
	reloaded, report := Load(ctx, kv.Store)
	require.Equal(t, OriginSnapshot, report.Origin)
	assert.Equal(t, s.List(), reloaded.List())
}

func TestStaleSnapshotIsNotWritten(t *testing.T) {
	ctx := context.Background()
	kv := memory.New(nil)
	s := New(kv)

	s.mu.Lock()
	s.appendLocked(Quote{ID: 1, Text: "a", Category: "x"})
	older := s.commitLocked()
	s.appendLocked(Quote{ID: 2, Text: "b", Category: "y"})
	newer := s.commitLocked()
	s.mu.Unlock()

	require.NoError(t, s.write(ctx, newer))
	require.NoError(t, s.write(ctx, older))

	v, err := kv.Get(ctx, constants.QuotesKey)
	require.NoError(t, err)
	assert.Equal(t, string(newer.data), v)
}

func TestLegacySnapshotIDsAreStable(t *testing.T) {
	ctx := context.Background()
	kv := memory.New(map[string]string{
		constants.QuotesKey: `[{"text":"a","category":"x"},{"text":"b","category":"y"}]`,
	})

	first, report := Load(ctx, kv, fixedClock(1000))
	require.Equal(t, OriginSnapshot, report.Origin)
	assert.Equal(t, []Quote{{1000, "a", "x"}, {1001, "b", "y"}}, first.List())

	second, _ := Load(ctx, kv, fixedClock(2000))
	got, err := second.Get(1000)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Text)
	assert.Equal(t, first.List(), second.List())
}

// ctxKV fails writes once ctx is done.
type ctxKV struct {
	*memory.Store
}

func (c ctxKV) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Store.Set(ctx, key, value)
}

func TestPersistOutlivesCanceledContext(t *testing.T) {
	logging.DisableLoggingForTest(t)
	kv := ctxKV{Store: memory.New(nil)}
	s := New(kv)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	q, err := s.Add(ctx, "kept", "x")
	require.NoError(t, err)

	reloaded, _ := Load(context.Background(), kv.Store)
	_, err = reloaded.Get(q.ID)
	assert.NoError(t, err)
}

func TestLengthLimitsCountRunes(t *testing.T) {
	ctx := context.Background()
	s := New(nil)

	_, err := s.Add(ctx, "a", strings.Repeat("é", constants.MaxCategoryLength))
	assert.NoError(t, err, "two-byte runes count once")

	_, err = s.Add(ctx, "a", strings.Repeat("é", constants.MaxCategoryLength+1))
	assert.True(t, errors.IsValidationError(err))
}
