// Package constants provides shared constants used throughout the quotegen codebase.
// This includes storage keys, timeouts, remote defaults and file permissions
// that should be consistent across the library, the CLI and the HTTP API.
package constants

import "time"

// Storage keys
const (
	// QuotesKey holds the JSON snapshot of the quote store
	QuotesKey = "dqg_quotes"

	// SelectionKey holds the last selected category filter
	SelectionKey = "dqg_lastFilter"

	// LastQuoteKey holds the last quote shown, kept in session storage
	LastQuoteKey = "dqg_lastQuote"
)

// AllCategories is the sentinel selection that disables category filtering.
const AllCategories = "all"

// Remote source defaults
const (
	// DefaultRemoteURL is the placeholder API used to simulate a quote server
	DefaultRemoteURL = "https://jsonplaceholder.typicode.com"

	// DefaultRemoteCategory is assigned to quotes that arrive without a category
	DefaultRemoteCategory = "Remote"

	// DefaultRemoteLimit caps how many remote items a fetch converts into quotes
	DefaultRemoteLimit = 10

	// DefaultRemoteUserID is sent with pushed quotes
	DefaultRemoteUserID = 1
)

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the remote source
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultSyncInterval is the default interval between periodic sync cycles
	DefaultSyncInterval = 30 * time.Second

	// SyncCycleTimeout bounds a single fetch+merge cycle
	SyncCycleTimeout = 2 * time.Minute

	// PushTimeout bounds a single outward push
	PushTimeout = 15 * time.Second

	// ShutdownTimeout is how long hosts wait for background work on exit
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants
const (
	// MaxQuoteLength is the maximum accepted length of a quote text in runes
	MaxQuoteLength = 4096

	// MaxCategoryLength is the maximum accepted length of a category in runes
	MaxCategoryLength = 128

	// MaxImportBytes bounds the size of an import document
	MaxImportBytes = 8 << 20
)

// ExportFileName is the default name for exported quote files.
const ExportFileName = "quotes.json"
