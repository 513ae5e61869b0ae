package remove

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/cmd/quotegen/cmd/cmdtest"
	"github.com/agentstation/quotegen/pkg/errors"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"1", 1, true},
		{"1712345678901", 1712345678901, true},
		{"0", 0, false},
		{"-4", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if !tt.ok {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemove(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")), "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Quote 2 removed")
	assert.Len(t, client.List(), 2)

	_, err = cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")), "2")
	assert.True(t, errors.IsNotFound(err))
}
