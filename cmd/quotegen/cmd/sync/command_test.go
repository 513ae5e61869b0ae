package sync

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/quotegen/cmd/quotegen/cmd/cmdtest"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

func newRemote() *cmdtest.Remote {
	return &cmdtest.Remote{Batch: []quotes.Quote{
		{ID: 1, Text: "Updated remotely", Category: "Motivation"},
		{ID: 50, Text: "Brand new", Category: "Remote"},
	}}
}

func TestSyncMerges(t *testing.T) {
	client := cmdtest.NewClient(t, newRemote())

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")))
	require.NoError(t, err)
	assert.Contains(t, out, "Quotes synced: 1 added, 1 updated of 2 fetched")

	list := client.List()
	require.Len(t, list, 4)
	assert.Equal(t, "Updated remotely", list[0].Text)
	assert.Equal(t, int64(50), list[3].ID)
}

func TestSyncDryRunLeavesStore(t *testing.T) {
	client := cmdtest.NewClient(t, newRemote())

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "json")), "--dry-run")
	require.NoError(t, err)

	var result pkgsync.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.True(t, result.DryRun)
	assert.Equal(t, 1, result.Added)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, quotes.Seed(), client.List())
}

func TestSyncOffline(t *testing.T) {
	remote := newRemote()
	remote.Offline = true
	client := cmdtest.NewClient(t, remote)

	_, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")))
	require.Error(t, err)
	assert.True(t, errors.IsRemoteUnavailable(err))
	assert.Equal(t, quotes.Seed(), client.List())
}

func TestSyncNoChanges(t *testing.T) {
	client := cmdtest.NewClient(t, &cmdtest.Remote{})

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "table")))
	require.NoError(t, err)
	assert.Contains(t, out, "i Quotes synced: No changes detected (0 fetched)")
}

func TestSyncStatus(t *testing.T) {
	client := cmdtest.NewClient(t, newRemote())
	_, err := client.Sync(t.Context())
	require.NoError(t, err)

	out, err := cmdtest.Run(t, NewCommand(cmdtest.App(client, "json")), "status")
	require.NoError(t, err)

	var status pkgsync.Status
	require.NoError(t, json.Unmarshal([]byte(out), &status))
	assert.False(t, status.Running)
	assert.Empty(t, status.LastError)
}
