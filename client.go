// Package quotegen provides the main entry point for the quote generator.
// It offers a high-level interface over a quote catalog with category
// filtering, random selection, persistence, remote sync and event hooks.
//
// The client wraps the quote store with additional features including:
// - Periodic background sync with a remote quote source
// - Event hooks for quote changes and user-visible notices
// - Thread-safe access with copy-on-read semantics
// - Flexible configuration through functional options
//
// Example usage:
//
//	qg, err := quotegen.New(
//	    quotegen.WithStorage(store),
//	    quotegen.WithAutoUpdates(true),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer qg.Close(context.Background())
//
//	qg.OnNotice(func(n quotegen.Notice) {
//	    log.Printf("%s: %s", n.Level, n.Message)
//	})
//
//	q, err := qg.Random(ctx, "Wisdom")
//	if errors.Is(err, errors.ErrNoneAvailable) {
//	    fmt.Println("No quotes in that category yet")
//	}
package quotegen

import (
	"context"
	"sync"

	"github.com/agentstation/quotegen/internal/remote"
	"github.com/agentstation/quotegen/internal/storage/memory"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/logging"
	"github.com/agentstation/quotegen/pkg/quotes"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Client manages a quote store with sync, persistence and event hooks.
type Client interface {

	// Quotes provides read and write access to the quote store
	Quotes

	// Updater handles sync and push operations
	Updater

	// Persistence handles export, import and saving
	Persistence

	// AutoUpdater provides access to periodic sync controls
	AutoUpdater

	// Hooks provides access to event callback registration
	Hooks

	// LoadReport describes where the initial quotes came from
	LoadReport() quotes.LoadReport

	// Close stops periodic sync and waits for background work
	Close(ctx context.Context) error
}

// client is the internal implementation of the Client interface.
type client struct {

	// options are the configured options for the client
	options *options

	// quote state
	store     *quotes.Store
	selection *quotes.Selection
	selector  *quotes.Selector
	report    quotes.LoadReport

	// sync engine driving fetch, merge and push
	src    pkgsync.Remote
	engine *pkgsync.Engine

	// seen is the store contents hooks were last fired against
	mu   sync.Mutex
	seen []quotes.Quote

	hooks *hooks

	// loadNotice reports an unreadable snapshot to every notice hook as it
	// registers, since loading happens before any hook exists.
	loadNotice *Notice
}

// New creates a new Client instance with the given options.
func New(opts ...Option) (Client, error) {
	options, err := defaults().apply(opts...)
	if err != nil {
		return nil, err
	}
	if options.storage == nil {
		options.storage = memory.New(nil)
	}
	if options.session == nil {
		options.session = memory.New(nil)
	}

	ctx := context.Background()
	log := logging.Debug()

	var storeOpts []quotes.Option
	if options.clock != nil {
		storeOpts = append(storeOpts, quotes.WithClock(options.clock))
	}
	store, report := quotes.Load(ctx, options.storage, storeOpts...)
	log.Str("origin", string(report.Origin)).Int("quotes", store.Len()).Msg("Quote store loaded")

	src := options.remote
	if src == nil {
		src, err = remote.New(remote.Config{
			BaseURL:  options.remoteServerURL,
			Token:    options.remoteToken,
			Auth:     options.remoteAuth,
			Category: options.remoteCategory,
			Limit:    options.remoteLimit,
			Timeout:  options.remoteHTTPTimeout,
		})
		if err != nil {
			return nil, errors.WrapResource("create", "remote", options.remoteServerURL, err)
		}
	}

	c := &client{
		options:   options,
		store:     store,
		selection: quotes.NewSelection(options.storage, store),
		selector:  quotes.NewSelector(options.rng),
		report:    report,
		src:       src,
		seen:      store.List(),
		hooks:     newHooks(),
	}

	if report.Err != nil {
		n := newNotice(OpLoad, NoticeWarning, "Stored quotes were unreadable, using defaults", report.Err)
		c.loadNotice = &n
	}

	c.engine = pkgsync.New(store, src,
		pkgsync.WithInterval(options.autoUpdateInterval),
		pkgsync.WithTimeout(options.syncTimeout),
		pkgsync.WithObserver(c.onSyncCycle),
	)

	// start auto-updates if enabled
	if options.autoUpdatesEnabled {
		if err := c.AutoUpdatesOn(); err != nil {
			return nil, errors.WrapResource("start", "auto-updates", "", err)
		}
	}

	return c, nil
}

// LoadReport describes where the initial quotes came from.
func (c *client) LoadReport() quotes.LoadReport {
	return c.report
}

// Close stops periodic sync and waits for in-flight cycles and pushes.
func (c *client) Close(ctx context.Context) error {
	return c.engine.Shutdown(ctx)
}

// OnQuoteAdded implements Hooks.
func (c *client) OnQuoteAdded(fn QuoteAddedHook) { c.hooks.OnQuoteAdded(fn) }

// OnQuoteUpdated implements Hooks.
func (c *client) OnQuoteUpdated(fn QuoteUpdatedHook) { c.hooks.OnQuoteUpdated(fn) }

// OnQuoteRemoved implements Hooks.
func (c *client) OnQuoteRemoved(fn QuoteRemovedHook) { c.hooks.OnQuoteRemoved(fn) }

// OnNotice implements Hooks. A notice about unreadable stored quotes is
// delivered to fn right away.
func (c *client) OnNotice(fn NoticeHook) {
	c.hooks.OnNotice(fn)
	if c.loadNotice != nil {
		fn(*c.loadNotice)
	}
}

// refresh fires change hooks for everything that changed since the last
// refresh. The list is taken under mu so seen only ever moves forward.
func (c *client) refresh() {
	c.mu.Lock()
	old := c.seen
	current := c.store.List()
	c.seen = current
	c.mu.Unlock()

	c.hooks.triggerStoreUpdate(old, current)
}

func (c *client) notify(op NoticeOp, level NoticeLevel, message string, err error) {
	c.hooks.triggerNotice(newNotice(op, level, message, err))
}
