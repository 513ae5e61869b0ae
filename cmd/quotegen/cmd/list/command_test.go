package list

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/cmd/quotegen/cmd/cmdtest"
	"github.com/agentstation/quotegen/pkg/quotes"
)

func TestListAll(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "json")))
	require.NoError(t, err)

	var got []quotes.Quote
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, quotes.Seed(), got)
}

func TestListCategory(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "json")), "-c", "Wisdom")
	require.NoError(t, err)

	var got []quotes.Quote
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestListEmptyCategoryIsEmptyArray(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "json")), "-c", "Nope")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestListTable(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")))
	require.NoError(t, err)
	assert.Contains(t, out, "Motivation")
	assert.Contains(t, out, "Resilience")
}
