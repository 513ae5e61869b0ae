// Package sync keeps a quote store in step with a remote quote source: it
// fetches and merges on a schedule with at most one cycle in flight, and
// pushes locally added quotes outward on a best-effort basis.
package sync

import (
	"time"

	"github.com/agentstation/quotegen/pkg/constants"
	"github.com/agentstation/quotegen/pkg/errors"
)

// Observer is called after every completed cycle, periodic or manual, with
// either a result or the error that ended the cycle.
type Observer func(result *Result, err error)

// Options controls the sync engine.
type Options struct {
	Interval    time.Duration // Time between periodic cycles
	Timeout     time.Duration // Bound on a single fetch+merge cycle
	PushTimeout time.Duration // Bound on a single outward push
	DryRun      bool          // Report what a merge would do without applying it
	Observer    Observer      // Notified after each cycle
}

// Apply applies the given options to the sync options.
func (s *Options) Apply(opts ...Option) *Options {
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Defaults returns the default sync options.
func Defaults() *Options {
	return &Options{
		Interval:    constants.DefaultSyncInterval,
		Timeout:     constants.SyncCycleTimeout,
		PushTimeout: constants.PushTimeout,
	}
}

// Option is a function that configures sync Options.
type Option func(*Options)

// Validate checks if the sync options are valid.
func (s *Options) Validate() error {
	if s.Interval <= 0 {
		return &errors.ValidationError{
			Field:   "Interval",
			Value:   s.Interval,
			Message: "sync interval must be positive",
		}
	}
	if s.Timeout < 0 {
		return &errors.ValidationError{
			Field:   "Timeout",
			Value:   s.Timeout,
			Message: "timeout must be non-negative",
		}
	}
	if s.PushTimeout < 0 {
		return &errors.ValidationError{
			Field:   "PushTimeout",
			Value:   s.PushTimeout,
			Message: "push timeout must be non-negative",
		}
	}
	return nil
}

// WithInterval sets the time between periodic cycles.
func WithInterval(interval time.Duration) Option {
	return func(opts *Options) {
		opts.Interval = interval
	}
}

// WithTimeout bounds a single cycle. Zero means no bound.
func WithTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.Timeout = timeout
	}
}

// WithPushTimeout bounds a single push. Zero means no bound.
func WithPushTimeout(timeout time.Duration) Option {
	return func(opts *Options) {
		opts.PushTimeout = timeout
	}
}

// WithDryRun computes merge results without changing the store.
func WithDryRun(dryRun bool) Option {
	return func(opts *Options) {
		opts.DryRun = dryRun
	}
}

// WithObserver registers a callback run after each cycle.
func WithObserver(fn Observer) Option {
	return func(opts *Options) {
		opts.Observer = fn
	}
}
