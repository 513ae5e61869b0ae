package quotegen

import (
	"context"

	"github.com/agentstation/quotegen/pkg/errors"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// Compile-time interface check to ensure proper implementation.
var _ Updater = (*client)(nil)

// Updater handles sync with the remote quote source.
type Updater interface {
	// Sync runs one fetch+merge cycle now
	Sync(ctx context.Context) (*pkgsync.Result, error)

	// Preview reports what a sync would change without applying it
	Preview(ctx context.Context) (*pkgsync.Result, error)

	// Push sends a stored quote to the remote
	Push(ctx context.Context, id int64) (pkgsync.Ack, error)

	// SyncStatus reports periodic sync health
	SyncStatus() pkgsync.Status
}

// Sync implements Updater. A failed fetch leaves the store untouched and
// returns an error matching errors.ErrRemoteUnavailable.
func (c *client) Sync(ctx context.Context) (*pkgsync.Result, error) {
	return c.engine.SyncOnce(ctx)
}

// Preview implements Updater.
func (c *client) Preview(ctx context.Context) (*pkgsync.Result, error) {
	preview := pkgsync.New(c.store, c.src,
		pkgsync.WithTimeout(c.options.syncTimeout),
		pkgsync.WithDryRun(true),
	)
	return preview.SyncOnce(ctx)
}

// Push implements Updater.
func (c *client) Push(ctx context.Context, id int64) (pkgsync.Ack, error) {
	q, err := c.store.Get(id)
	if err != nil {
		return pkgsync.Ack{}, err
	}
	ack, err := c.engine.PushLocal(ctx, q)
	if err != nil {
		c.notify(OpPush, NoticeWarning, "Quote could not be sent to the server", err)
		return ack, err
	}
	return ack, nil
}

// SyncStatus implements Updater.
func (c *client) SyncStatus() pkgsync.Status {
	return c.engine.Status()
}

// onSyncCycle turns finished cycles into hooks and notices.
func (c *client) onSyncCycle(result *pkgsync.Result, err error) {
	if err != nil {
		if errors.IsRemoteUnavailable(err) {
			c.notify(OpSync, NoticeWarning, "Could not reach the quote server, will retry", err)
			return
		}
		c.notify(OpSync, NoticeError, "Sync failed", err)
		return
	}
	if result.HasChanges() {
		c.refresh()
		c.notify(OpSync, NoticeInfo, "Quotes synced with server: "+result.Summary(), nil)
	}
}
