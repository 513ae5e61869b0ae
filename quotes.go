package quotegen

import (
	"context"

	"github.com/agentstation/quotegen/pkg/logging"
	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// Compile-time interface check to ensure proper implementation.
var _ Quotes = (*client)(nil)

// Quotes provides copy-on-read access to the quote store.
type Quotes interface {
	// List returns all quotes in store order
	List() []quotes.Quote

	// Filter returns the quotes in category ("all" for every quote)
	Filter(category string) []quotes.Quote

	// Quote returns a quote by id
	Quote(id int64) (quotes.Quote, error)

	// Add validates, stores and persists a new quote
	Add(ctx context.Context, text, category string) (quotes.Quote, error)

	// Remove deletes a quote by id
	Remove(ctx context.Context, id int64) error

	// Categories returns "all" followed by the distinct categories
	Categories() []string

	// Selection returns the persisted category filter
	Selection(ctx context.Context) string

	// SetSelection persists the category filter
	SetSelection(ctx context.Context, category string) error

	// Random picks a quote from category, or from the current selection
	// when category is empty
	Random(ctx context.Context, category string) (quotes.Quote, error)

	// LastShown returns the quote most recently returned by Random
	LastShown(ctx context.Context) (quotes.Quote, error)
}

// List implements Quotes.
func (c *client) List() []quotes.Quote {
	return c.store.List()
}

// Filter implements Quotes.
func (c *client) Filter(category string) []quotes.Quote {
	return c.store.Filter(category)
}

// Quote implements Quotes.
func (c *client) Quote(id int64) (quotes.Quote, error) {
	return c.store.Get(id)
}

// Add implements Quotes. With push-on-add enabled the new quote is also
// sent to the remote in the background; a failed push leaves the local
// quote in place and produces a warning notice.
func (c *client) Add(ctx context.Context, text, category string) (quotes.Quote, error) {
	q, err := c.store.Add(ctx, text, category)
	if err != nil {
		c.notify(OpAdd, NoticeWarning, "Quote not added, check its text and category", err)
		return quotes.Quote{}, err
	}
	c.refresh()

	if c.options.pushOnAdd {
		c.engine.PushLocalAsync(ctx, q, func(_ pkgsync.Ack, err error) {
			if err != nil {
				c.notify(OpPushOnAdd, NoticeWarning, "Quote saved locally but could not be sent to the server", err)
			}
		})
	}
	return q, nil
}

// Remove implements Quotes.
func (c *client) Remove(ctx context.Context, id int64) error {
	if err := c.store.Remove(ctx, id); err != nil {
		return err
	}
	c.refresh()
	return nil
}

// Categories implements Quotes.
func (c *client) Categories() []string {
	return c.store.Categories()
}

// Selection implements Quotes.
func (c *client) Selection(ctx context.Context) string {
	return c.selection.Current(ctx)
}

// SetSelection implements Quotes.
func (c *client) SetSelection(ctx context.Context, category string) error {
	return c.selection.Set(ctx, category)
}

// Random implements Quotes.
func (c *client) Random(ctx context.Context, category string) (quotes.Quote, error) {
	if category == "" {
		category = c.selection.Current(ctx)
	}

	q, err := c.selector.Pick(c.store, category)
	if err != nil {
		return quotes.Quote{}, err
	}

	if err := quotes.RememberShown(ctx, c.options.session, q); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("Failed to remember shown quote")
	}
	return q, nil
}

// LastShown implements Quotes.
func (c *client) LastShown(ctx context.Context) (quotes.Quote, error) {
	return quotes.LastShown(ctx, c.options.session)
}
