package files

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/pkg/errors"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "data")

	s, err := New(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, s.Dir())

	_, err = s.Get(ctx, "dqg_quotes")
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, s.Set(ctx, "dqg_quotes", `[{"id":1}]`))
	require.NoError(t, s.Set(ctx, "dqg_quotes", `[{"id":2}]`))

	v, err := s.Get(ctx, "dqg_quotes")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":2}]`, v)

	// A reopened store sees the same data.
	reopened, err := New(dir)
	require.NoError(t, err)
	v, err = reopened.Get(ctx, "dqg_quotes")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":2}]`, v)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files should be renamed away")
}

func TestStoreRejectsUnsafeKeys(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", "with space"} {
		t.Run(key, func(t *testing.T) {
			err := s.Set(context.Background(), key, "x")
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestNewRequiresDir(t *testing.T) {
	_, err := New("")
	var cfgErr *errors.ConfigError
	assert.True(t, errors.As(err, &cfgErr))
}
