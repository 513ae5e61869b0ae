// Package app provides the application context and dependency management
// for the quotegen CLI: configuration, logging, and the lazily created
// quotegen client with its storage backends.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/quotegen"
	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/alerts"
	"github.com/agentstation/quotegen/internal/cmd/output"
	internalstorage "github.com/agentstation/quotegen/internal/storage"
	"github.com/agentstation/quotegen/internal/utils/ptr"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
)

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)

// App represents the quotegen application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton) and the backend it owns
	mu     sync.RWMutex
	client quotegen.Client
	store  storage.Store
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format, detecting one from
// the terminal when none was set.
func (a *App) OutputFormat() string {
	return string(output.DetectFormat(a.config.Format))
}

// Client returns the quotegen client, creating it lazily if needed.
func (a *App) Client() (quotegen.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	store, err := internalstorage.Open(storage.Kind(a.config.Storage), a.config.DataDir)
	if err != nil {
		return nil, errors.WrapResource("open", "storage", a.config.Storage, err)
	}

	c, err := quotegen.New(a.buildClientOptions(store)...)
	if err != nil {
		_ = storage.Close(store)
		return nil, errors.WrapResource("create", "client", "", err)
	}

	// Background and startup notices go to stderr so command output stays
	// parseable. Commands print the errors they get back themselves.
	notices := alerts.NewFormatWriter(errWriter, output.FormatTable)
	c.OnNotice(func(n quotegen.Notice) {
		a.logger.Debug().Str("op", string(n.Op)).Str("level", string(n.Level)).Err(n.Err).Msg(n.Message)
		if n.Op.Interactive() {
			return
		}
		_ = notices.WriteAlert(alerts.FromNotice(n))
	})

	a.client = c
	a.store = store
	return c, nil
}

// Shutdown stops background sync and closes the storage backend. A later
// call to Client opens them again.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var err error
	if a.client != nil {
		if closeErr := a.client.Close(ctx); closeErr != nil {
			a.logger.Error().Err(closeErr).Msg("Failed to stop background sync during shutdown")
			err = closeErr
		}
		a.client = nil
	}
	if a.store != nil {
		if closeErr := storage.Close(a.store); closeErr != nil && err == nil {
			err = errors.WrapResource("close", "storage", a.config.Storage, closeErr)
		}
		a.store = nil
	}
	return err
}

// buildClientOptions constructs client options from the app configuration.
func (a *App) buildClientOptions(store storage.Store) []quotegen.Option {
	opts := []quotegen.Option{
		quotegen.WithStorage(store),
		quotegen.WithAutoUpdates(a.config.AutoSync),
		quotegen.WithPushOnAdd(a.config.PushOnAdd),
	}

	if a.config.SyncInterval > 0 {
		opts = append(opts, quotegen.WithAutoUpdateInterval(a.config.SyncInterval))
	}

	if a.config.RemoteURL != "" {
		opts = append(opts, quotegen.WithRemoteServer(a.config.RemoteURL, ptr.NonZero(a.config.RemoteToken)))
	}
	if a.config.RemoteAuth != "" {
		opts = append(opts, quotegen.WithRemoteAuth(a.config.RemoteAuth))
	}
	if a.config.RemoteCategory != "" {
		opts = append(opts, quotegen.WithRemoteCategory(a.config.RemoteCategory))
	}
	if a.config.RemoteLimit > 0 {
		opts = append(opts, quotegen.WithRemoteLimit(a.config.RemoteLimit))
	}

	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client instance (useful for testing).
func WithClient(c quotegen.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
