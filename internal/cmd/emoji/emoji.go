// Package emoji provides symbol constants for CLI output.
package emoji

// Status symbols shared by alerts and command output.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Warning marks a degraded but usable outcome, such as an offline remote.
	Warning = "!"

	// Info marks background news, such as a sync that changed nothing.
	Info = "i"

	// Unknown marks an unrecognized level.
	Unknown = "?"

	// Stop marks a shutdown in progress.
	Stop = "■"
)
