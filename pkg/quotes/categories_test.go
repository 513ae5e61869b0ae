package quotes

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/internal/storage/memory"
	"github.com/agentstation/quotegen/pkg/constants"
)

func TestCategories(t *testing.T) {
	tests := []struct {
		name string
		list []Quote
		want []string
	}{
		{"empty", nil, []string{"all"}},
		{"seed", Seed(), []string{"all", "Motivation", "Resilience", "Wisdom"}},
		{
			"distinct and byte ordered",
			[]Quote{{1, "a", "beta"}, {2, "b", "Alpha"}, {3, "c", "beta"}, {4, "d", "alpha"}},
			[]string{"all", "Alpha", "alpha", "beta"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categories(tt.list))
		})
	}
}

func TestStoreCategoriesFollowMutations(t *testing.T) {
	s, _ := seeded(t)
	_, err := s.Add(context.Background(), "X", "Humor")
	require.NoError(t, err)
	assert.Equal(t, []string{"all", "Humor", "Motivation", "Resilience", "Wisdom"}, s.Categories())
}

func TestSelection(t *testing.T) {
	ctx := context.Background()
	s, kv := seeded(t)
	sel := NewSelection(kv, s)

	assert.Equal(t, "all", sel.Current(ctx), "defaults to all")

	require.NoError(t, sel.Set(ctx, "Wisdom"))
	assert.Equal(t, "Wisdom", sel.Current(ctx))

	v, err := kv.Get(ctx, constants.SelectionKey)
	require.NoError(t, err)
	assert.Equal(t, "Wisdom", v)

	// Set does not validate; Current falls back when the category is absent.
	require.NoError(t, sel.Set(ctx, "Nonexistent"))
	assert.Equal(t, "all", sel.Current(ctx))

	require.NoError(t, sel.Set(ctx, "Wisdom"))
	require.NoError(t, s.Remove(ctx, 2))
	assert.Equal(t, "all", sel.Current(ctx), "stale selection falls back")
}

func TestSelectionWithoutStorage(t *testing.T) {
	ctx := context.Background()
	s := New(nil)
	_, err := s.Add(ctx, "x", "Humor")
	require.NoError(t, err)

	sel := NewSelection(nil, s)
	require.NoError(t, sel.Set(ctx, "Humor"))
	assert.Equal(t, "Humor", sel.Current(ctx))
}

func TestSelectionSurvivesReload(t *testing.T) {
	ctx := context.Background()
	kv := memory.New(nil)

	s, _ := Load(ctx, kv)
	require.NoError(t, NewSelection(kv, s).Set(ctx, "Resilience"))

	reloaded, _ := Load(ctx, kv)
	assert.Equal(t, "Resilience", NewSelection(kv, reloaded).Current(ctx))
}
