package sync

import (
	"context"
	gosync "sync"
	"time"

	"github.com/agentstation/utc"
	"golang.org/x/sync/semaphore"

	"github.com/agentstation/quotegen/pkg/errors"
	"github.com/agentstation/quotegen/pkg/logging"
	"github.com/agentstation/quotegen/pkg/quotes"
)

// Remote is the quote source capability: list remote quotes and accept a
// single pushed quote.
type Remote interface {
	Fetch(ctx context.Context) ([]quotes.Quote, error)
	Push(ctx context.Context, q quotes.Quote) (Ack, error)
}

// Engine fetches remote quotes and merges them into a store, either on
// demand (SyncOnce) or on a ticker (Start). At most one cycle runs at a
// time; a tick that finds a cycle in flight is skipped. Stopping never
// cancels an in-flight fetch; its result is discarded instead.
type Engine struct {
	store  *quotes.Store
	remote Remote
	opts   *Options

	// inflight admits one fetch+merge cycle at a time.
	inflight *semaphore.Weighted

	mu         gosync.Mutex
	status     Status
	generation uint64
	running    bool
	stopCh     chan struct{}
	cancel     context.CancelFunc
	loopDone   chan struct{}

	// background tracks periodic cycles and async pushes.
	background gosync.WaitGroup
}

// New creates an engine merging into store from remote.
func New(store *quotes.Store, remote Remote, opts ...Option) *Engine {
	e := &Engine{
		store:    store,
		remote:   remote,
		opts:     Defaults().Apply(opts...),
		inflight: semaphore.NewWeighted(1),
	}
	e.status.Interval = e.opts.Interval.String()
	return e
}

// FetchRemote reads the remote batch. Any failure is reported as a
// RemoteUnavailableError; the store is never touched.
func (e *Engine) FetchRemote(ctx context.Context) ([]quotes.Quote, error) {
	batch, err := e.remote.Fetch(ctx)
	if err != nil {
		if !errors.IsRemoteUnavailable(err) {
			err = errors.WrapRemote("fetch", "", err)
		}
		return nil, err
	}
	return batch, nil
}

// Merge applies batch to the store with the remote-wins-by-id policy.
func (e *Engine) Merge(ctx context.Context, batch []quotes.Quote) quotes.MergeResult {
	return e.store.Merge(ctx, batch)
}

// SyncOnce runs one fetch+merge cycle, waiting for any cycle already in
// flight to finish first.
func (e *Engine) SyncOnce(ctx context.Context) (*Result, error) {
	if err := e.inflight.Acquire(ctx, 1); err != nil {
		return nil, errors.WrapResource("sync", "store", "", err)
	}
	defer e.inflight.Release(1)

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}
	return e.runCycle(ctx, 0, false)
}

// RunPeriodic starts the ticker loop with the given interval.
func (e *Engine) RunPeriodic(interval time.Duration) error {
	e.mu.Lock()
	e.opts.Interval = interval
	e.mu.Unlock()
	return e.Start(context.Background())
}

// Start begins periodic cycles at the configured interval. Calling Start
// on a running engine restarts it. Cancelling ctx stops the loop like Stop.
func (e *Engine) Start(ctx context.Context) error {
	if err := e.opts.Validate(); err != nil {
		return err
	}

	// Stop any existing loop so only one ticker is ever live.
	e.Stop()

	e.mu.Lock()
	defer e.mu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.stopCh = make(chan struct{})
	e.loopDone = make(chan struct{})
	e.running = true
	e.status.Running = true
	e.status.Interval = e.opts.Interval.String()
	gen := e.generation

	ticker := time.NewTicker(e.opts.Interval)
	go e.loop(loopCtx, ticker, e.stopCh, e.loopDone, gen)

	logging.FromContext(ctx).Debug().Dur("interval", e.opts.Interval).Msg("Periodic sync started")
	return nil
}

func (e *Engine) loop(ctx context.Context, ticker *time.Ticker, stopCh <-chan struct{}, done chan<- struct{}, gen uint64) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			e.tick(ctx, gen)
		case <-ctx.Done():
			e.halt()
			return
		case <-stopCh:
			return
		}
	}
}

// tick starts a cycle unless one is already in flight.
func (e *Engine) tick(ctx context.Context, gen uint64) {
	if !e.inflight.TryAcquire(1) {
		e.mu.Lock()
		e.status.SkippedTicks++
		e.mu.Unlock()
		logging.FromContext(ctx).Debug().Msg("Sync cycle still in flight, skipping tick")
		return
	}

	e.background.Add(1)
	go func() {
		defer e.background.Done()
		defer e.inflight.Release(1)

		// The cycle outlives Stop: it is not cancelled, only discarded.
		cycleCtx := context.WithoutCancel(ctx)
		if e.opts.Timeout > 0 {
			var cancel context.CancelFunc
			cycleCtx, cancel = context.WithTimeout(cycleCtx, e.opts.Timeout)
			defer cancel()
		}
		_, _ = e.runCycle(cycleCtx, gen, true)
	}()
}

// runCycle fetches and merges. When periodic is set, a result arriving
// after the engine generation moved on is dropped.
func (e *Engine) runCycle(ctx context.Context, gen uint64, periodic bool) (*Result, error) {
	logger := logging.FromContext(logging.WithOperation(ctx, "sync"))
	started := time.Now()

	e.mu.Lock()
	e.status.InFlight = true
	e.status.LastAttempt = utc.Now()
	e.mu.Unlock()

	batch, err := e.FetchRemote(ctx)

	e.mu.Lock()
	e.status.InFlight = false

	if periodic && gen != e.generation {
		e.status.Discarded++
		e.mu.Unlock()
		logger.Debug().Msg("Engine stopped during fetch, discarding result")
		return nil, nil
	}

	if err != nil {
		err = &errors.SyncError{Stage: "fetch", Err: err}
		e.status.ConsecutiveFailures++
		e.status.lastErr = err
		e.status.LastError = err.Error()
		failures := e.status.ConsecutiveFailures
		e.mu.Unlock()

		logger.Warn().Err(err).Int("consecutive_failures", failures).Msg("Sync failed")
		e.notify(nil, err)
		return nil, err
	}

	// The merge happens under e.mu so Stop cannot slip in between the
	// generation check and the store mutation.
	merged, err := e.merge(ctx, batch)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}

	result := newResult(merged, len(batch), e.opts.DryRun, started)
	e.status.Cycles++
	e.status.ConsecutiveFailures = 0
	e.status.lastErr = nil
	e.status.LastError = ""
	e.status.LastResult = result
	e.mu.Unlock()

	logger.Info().
		Int("fetched", result.Fetched).
		Int("added", result.Added).
		Int("updated", result.Updated).
		Dur("duration", result.Duration).
		Bool("dry_run", result.DryRun).
		Msg("Sync complete")
	e.notify(result, nil)
	return result, nil
}

// merge applies batch, or previews it against a copy in dry-run mode.
func (e *Engine) merge(ctx context.Context, batch []quotes.Quote) (quotes.MergeResult, error) {
	if !e.opts.DryRun {
		return e.store.Merge(ctx, batch), nil
	}
	preview := quotes.New(nil)
	if err := preview.ReplaceAll(ctx, e.store.List()); err != nil {
		return quotes.MergeResult{}, &errors.SyncError{Stage: "merge", Err: err}
	}
	return preview.Merge(ctx, batch), nil
}

func (e *Engine) notify(result *Result, err error) {
	if e.opts.Observer != nil {
		e.opts.Observer(result, err)
	}
}

// Stop halts the ticker. An in-flight cycle is left to finish and its
// result discarded. Stop is safe to call on a stopped engine.
func (e *Engine) Stop() {
	if done := e.halt(); done != nil {
		<-done
	}
}

// halt marks the engine stopped and returns the loop's done channel, or
// nil when the engine was not running.
func (e *Engine) halt() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return nil
	}
	e.running = false
	e.status.Running = false
	e.generation++
	close(e.stopCh)
	e.cancel()
	return e.loopDone
}

// Running reports whether the periodic loop is active.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Wait blocks until in-flight periodic cycles and async pushes finish or
// ctx is done.
func (e *Engine) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.background.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.WrapResource("wait", "sync", "", ctx.Err())
	}
}

// Shutdown stops the loop and waits for background work.
func (e *Engine) Shutdown(ctx context.Context) error {
	e.Stop()
	return e.Wait(ctx)
}

// Status returns a copy of the engine status.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.status
	if e.status.LastResult != nil {
		r := *e.status.LastResult
		s.LastResult = &r
	}
	return s
}

// PushLocal sends q to the remote. Failures are logged and returned; the
// local store is never rolled back.
func (e *Engine) PushLocal(ctx context.Context, q quotes.Quote) (Ack, error) {
	if e.opts.PushTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.PushTimeout)
		defer cancel()
	}

	logger := logging.FromContext(logging.WithQuote(ctx, q.ID))
	ack, err := e.remote.Push(ctx, q)
	if err != nil {
		if !errors.IsRemoteUnavailable(err) {
			err = errors.WrapRemote("push", "", err)
		}
		logger.Warn().Err(err).Msg("Push failed, local quote kept")
		return ack, err
	}
	logger.Debug().Int64("remote_id", ack.ID).Int("status", ack.Status).Msg("Pushed quote")
	return ack, nil
}

// PushLocalAsync pushes q in the background and reports the outcome to
// done, which may be nil. Use Wait to drain outstanding pushes.
func (e *Engine) PushLocalAsync(ctx context.Context, q quotes.Quote, done func(Ack, error)) {
	e.background.Add(1)
	go func() {
		defer e.background.Done()
		ack, err := e.PushLocal(context.WithoutCancel(ctx), q)
		if done != nil {
			done(ack, err)
		}
	}()
}
