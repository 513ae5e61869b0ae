package quotes

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeOneMatchOneNew(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t)
	before := s.Len()

	result := s.Merge(ctx, []Quote{
		{ID: 2, Text: "sunt aut facere", Category: "Remote"},
		{ID: 99, Text: "qui est esse", Category: "Remote"},
	})

	assert.Equal(t, MergeResult{Added: 1, Updated: 1}, result)
	assert.Equal(t, before+1, s.Len())

	got, err := s.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "sunt aut facere", got.Text)

	// Overwrite keeps position; new ids go to the end.
	list := s.List()
	assert.Equal(t, int64(2), list[1].ID)
	assert.Equal(t, int64(99), list[len(list)-1].ID)
}

func TestMergeIdempotent(t *testing.T) {
	ctx := context.Background()
	batches := map[string][]Quote{
		"empty":        nil,
		"all new":      {{ID: 10, Text: "a", Category: "x"}, {ID: 11, Text: "b", Category: "y"}},
		"overlap":      {{ID: 1, Text: "changed", Category: "Motivation"}, {ID: 12, Text: "c", Category: "z"}},
		"identical":    Seed(),
		"repeated ids": {{ID: 20, Text: "first", Category: "x"}, {ID: 20, Text: "second", Category: "x"}},
	}

	for name, batch := range batches {
		t.Run(name, func(t *testing.T) {
			s, _ := seeded(t)
			s.Merge(ctx, batch)
			once := s.List()

			second := s.Merge(ctx, batch)
			assert.False(t, second.Changed() && name != "repeated ids")
			if diff := cmp.Diff(once, s.List()); diff != "" {
				t.Errorf("second merge changed the store (-once +twice):\n%s", diff)
			}
		})
	}
}

func TestMergeKeepsLocalOnlyQuotes(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t)
	local, err := s.Add(ctx, "mine", "Local")
	require.NoError(t, err)

	s.Merge(ctx, []Quote{{ID: 1, Text: "remote", Category: "Remote"}})

	for _, id := range []int64{2, 3, local.ID} {
		_, err := s.Get(id)
		assert.NoError(t, err, "id %d", id)
	}
}

func TestMergeUnchangedAndSkipped(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t)

	result := s.Merge(ctx, []Quote{
		Seed()[0],
		{ID: 50, Text: "  ", Category: "Remote"},
		{ID: 51, Text: "ok", Category: ""},
	})
	assert.Equal(t, MergeResult{Unchanged: 1, Skipped: 2}, result)
	assert.False(t, result.Changed())
	assert.Equal(t, 3, s.Len())
}

func TestMergeAppendsQuotesWithoutIDs(t *testing.T) {
	ctx := context.Background()
	s, _ := seeded(t, fixedClock(1000))

	result := s.Merge(ctx, []Quote{{Text: "a", Category: "x"}, {Text: "a", Category: "x"}})
	assert.Equal(t, 2, result.Added)
	assert.Equal(t, 5, s.Len())

	list := s.List()
	assert.Equal(t, int64(1000), list[3].ID)
	assert.Equal(t, int64(1001), list[4].ID)
}

func TestMergeResultString(t *testing.T) {
	assert.Equal(t, "1 added, 2 updated, 3 unchanged", MergeResult{Added: 1, Updated: 2, Unchanged: 3}.String())
}
