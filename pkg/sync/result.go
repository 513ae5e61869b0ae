package sync

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/quotegen/pkg/quotes"
)

// Result represents the result of one fetch+merge cycle.
type Result struct {
	Added     int `json:"added" yaml:"added"`
	Updated   int `json:"updated" yaml:"updated"`
	Unchanged int `json:"unchanged" yaml:"unchanged"`
	Skipped   int `json:"skipped" yaml:"skipped"`
	Fetched   int `json:"fetched" yaml:"fetched"`

	DryRun   bool          `json:"dry_run" yaml:"dry_run"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	At       utc.Time      `json:"at" yaml:"at"`
}

func newResult(merge quotes.MergeResult, fetched int, dryRun bool, started time.Time) *Result {
	return &Result{
		Added:     merge.Added,
		Updated:   merge.Updated,
		Unchanged: merge.Unchanged,
		Skipped:   merge.Skipped,
		Fetched:   fetched,
		DryRun:    dryRun,
		Duration:  time.Since(started),
		At:        utc.Now(),
	}
}

// HasChanges returns true if the cycle added or overwrote quotes.
func (r *Result) HasChanges() bool {
	return r.Added > 0 || r.Updated > 0
}

// Summary returns a human-readable summary of the sync result.
func (r *Result) Summary() string {
	var summary string
	if !r.HasChanges() {
		summary = fmt.Sprintf("No changes detected (%d fetched)", r.Fetched)
	} else {
		summary = fmt.Sprintf("%d added, %d updated of %d fetched", r.Added, r.Updated, r.Fetched)
	}

	var parts []string
	if r.DryRun {
		parts = append(parts, "(Dry run)")
	}
	if r.Skipped > 0 {
		parts = append(parts, fmt.Sprintf("(%d invalid skipped)", r.Skipped))
	}
	if len(parts) > 0 {
		summary += " " + strings.Join(parts, " ")
	}
	return summary
}

// Ack acknowledges a pushed quote. ID is whatever id the remote assigned.
type Ack struct {
	ID     int64 `json:"id" yaml:"id"`
	Status int   `json:"status" yaml:"status"`
}

// Status is a point-in-time view of the engine.
type Status struct {
	Running             bool     `json:"running" yaml:"running"`
	InFlight            bool     `json:"in_flight" yaml:"in_flight"`
	Interval            string   `json:"interval" yaml:"interval"`
	Cycles              int      `json:"cycles" yaml:"cycles"`
	SkippedTicks        int      `json:"skipped_ticks" yaml:"skipped_ticks"`
	Discarded           int      `json:"discarded" yaml:"discarded"`
	ConsecutiveFailures int      `json:"consecutive_failures" yaml:"consecutive_failures"`
	LastAttempt         utc.Time `json:"last_attempt,omitzero" yaml:"last_attempt,omitempty"`
	LastResult          *Result  `json:"last_result,omitempty" yaml:"last_result,omitempty"`
	LastError           string   `json:"last_error,omitempty" yaml:"last_error,omitempty"`

	lastErr error
}

// Err returns the error of the most recent failed cycle, nil after a success.
func (s Status) Err() error {
	return s.lastErr
}

// IsOffline returns true when the remote has been unreachable for multiple cycles.
func (s Status) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}
