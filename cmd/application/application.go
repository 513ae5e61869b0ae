// Package application provides the application interface for quotegen commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            client, err := app.Client()
//	            if err != nil {
//	                return err
//	            }
//	            q, err := client.Random(cmd.Context(), "")
//	            // ... render q
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    ClientFunc: func() (quotegen.Client, error) {
//	        return testClient, nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/quotegen"
)

// Application provides the application interface that commands need.
// The App struct from cmd/quotegen/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Client returns the shared quotegen client, creating it on first use.
	Client() (quotegen.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
