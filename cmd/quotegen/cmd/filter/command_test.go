package filter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/cmd/quotegen/cmd/cmdtest"
)

func TestFilterShowDefault(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")))
	require.NoError(t, err)
	assert.Equal(t, "all", strings.TrimSpace(out))
}

func TestFilterSet(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")), "Wisdom")
	require.NoError(t, err)
	assert.Contains(t, out, "Selected category: Wisdom")
	assert.Equal(t, "Wisdom", client.Selection(t.Context()))
}

func TestFilterUnknownCategoryReadsBackAsAll(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")), "Nope")
	require.NoError(t, err)
	assert.Contains(t, out, `No quotes in category "Nope", showing all`)
	assert.Equal(t, "all", client.Selection(t.Context()))
}

func TestFilterJSON(t *testing.T) {
	client := cmdtest.NewClient(t, nil)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "json")), "Motivation")
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"Motivation"}`, out)
}
