package quotegen

import (
	"math/rand/v2"
	"time"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/storage"
	pkgsync "github.com/agentstation/quotegen/pkg/sync"
)

// options holds the client configuration.
type options struct {
	storage storage.Store // durable snapshot and selection
	session storage.Store // last shown quote

	remote            pkgsync.Remote
	remoteServerURL   string
	remoteToken       string
	remoteAuth        string
	remoteCategory    string
	remoteLimit       int
	remoteHTTPTimeout time.Duration

	autoUpdatesEnabled bool
	autoUpdateInterval time.Duration
	syncTimeout        time.Duration
	pushOnAdd          bool

	rng   *rand.Rand
	clock func() int64
}

func defaults() *options {
	return &options{
		remoteServerURL:    constants.DefaultRemoteURL,
		remoteCategory:     constants.DefaultRemoteCategory,
		remoteLimit:        constants.DefaultRemoteLimit,
		remoteHTTPTimeout:  constants.DefaultHTTPTimeout,
		autoUpdatesEnabled: false,
		autoUpdateInterval: constants.DefaultSyncInterval,
		syncTimeout:        constants.SyncCycleTimeout,
	}
}

// Option is a function that configures a Client.
type Option func(*options) error

func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithStorage configures the durable store for quotes and the category
// selection. Without it the client keeps everything in memory.
func WithStorage(s storage.Store) Option {
	return func(o *options) error {
		if s == nil {
			return &errors.ValidationError{Field: "storage", Message: "cannot be nil"}
		}
		o.storage = s
		return nil
	}
}

// WithSessionStorage configures where the last shown quote is kept.
// Defaults to an in-memory store that lives as long as the client.
func WithSessionStorage(s storage.Store) Option {
	return func(o *options) error {
		if s == nil {
			return &errors.ValidationError{Field: "session storage", Message: "cannot be nil"}
		}
		o.session = s
		return nil
	}
}

// WithRemote configures a custom remote quote source. It takes precedence
// over WithRemoteServer.
func WithRemote(r pkgsync.Remote) Option {
	return func(o *options) error {
		if r == nil {
			return &errors.ValidationError{Field: "remote", Message: "cannot be nil"}
		}
		o.remote = r
		return nil
	}
}

// WithRemoteServer configures the remote server for quote sync.
// A url is required, a token can be provided for authentication,
// otherwise use nil to skip sending a credential.
func WithRemoteServer(url string, token *string) Option {
	return func(o *options) error {
		if url == "" {
			return &errors.ValidationError{Field: "remote url", Message: "cannot be empty"}
		}
		o.remoteServerURL = url
		o.remoteToken = ""
		if token != nil {
			o.remoteToken = *token
		}
		return nil
	}
}

// WithRemoteAuth sets how the token is sent: "bearer", "none",
// "header:<name>" or "query:<param>".
func WithRemoteAuth(scheme string) Option {
	return func(o *options) error {
		o.remoteAuth = scheme
		return nil
	}
}

// WithRemoteCategory sets the category given to fetched quotes.
func WithRemoteCategory(category string) Option {
	return func(o *options) error {
		if category == "" {
			return &errors.ValidationError{Field: "remote category", Message: "cannot be empty"}
		}
		o.remoteCategory = category
		return nil
	}
}

// WithRemoteLimit caps how many remote items one fetch keeps. Zero means no cap.
func WithRemoteLimit(limit int) Option {
	return func(o *options) error {
		if limit < 0 {
			return &errors.ValidationError{Field: "remote limit", Value: limit, Message: "must not be negative"}
		}
		o.remoteLimit = limit
		return nil
	}
}

// WithRemoteTimeout sets the HTTP timeout for remote requests.
func WithRemoteTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		o.remoteHTTPTimeout = timeout
		return nil
	}
}

// WithAutoUpdates configures whether periodic sync starts with the client.
func WithAutoUpdates(enabled bool) Option {
	return func(o *options) error {
		o.autoUpdatesEnabled = enabled
		return nil
	}
}

// WithAutoUpdateInterval configures how often periodic sync runs.
func WithAutoUpdateInterval(interval time.Duration) Option {
	return func(o *options) error {
		o.autoUpdateInterval = interval
		return nil
	}
}

// WithSyncTimeout bounds a single sync cycle.
func WithSyncTimeout(timeout time.Duration) Option {
	return func(o *options) error {
		o.syncTimeout = timeout
		return nil
	}
}

// WithPushOnAdd pushes every added quote to the remote in the background.
func WithPushOnAdd(enabled bool) Option {
	return func(o *options) error {
		o.pushOnAdd = enabled
		return nil
	}
}

// WithRandSource makes random picks draw from rng.
func WithRandSource(rng *rand.Rand) Option {
	return func(o *options) error {
		o.rng = rng
		return nil
	}
}

// WithClock replaces the millisecond clock used for new quote ids.
func WithClock(clock func() int64) Option {
	return func(o *options) error {
		o.clock = clock
		return nil
	}
}
