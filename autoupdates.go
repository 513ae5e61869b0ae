package quotegen

import (
	"github.com/agentstation/quotegen/pkg/errors"
)

// Compile-time interface check to ensure proper implementation.
var _ AutoUpdater = (*client)(nil)

// AutoUpdater provides controls for periodic sync.
type AutoUpdater interface {
	// AutoUpdatesOn begins periodic sync at the configured interval
	AutoUpdatesOn() error

	// AutoUpdatesOff stops periodic sync; an in-flight cycle finishes and
	// its result is discarded
	AutoUpdatesOff() error
}

// AutoUpdatesOn begins periodic sync. Calling it again restarts the loop.
func (c *client) AutoUpdatesOn() error {
	if c.options.autoUpdateInterval <= 0 {
		return &errors.ValidationError{
			Field:   "autoUpdateInterval",
			Value:   c.options.autoUpdateInterval,
			Message: "update interval must be positive",
		}
	}
	return c.engine.RunPeriodic(c.options.autoUpdateInterval)
}

// AutoUpdatesOff stops periodic sync.
func (c *client) AutoUpdatesOff() error {
	c.engine.Stop()
	return nil
}
