// Package serve provides the HTTP API server command.
package serve

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/quotegen/cmd/application"
	"github.com/agentstation/quotegen/internal/cmd/emoji"
	"github.com/agentstation/quotegen/internal/server"
)

// shutdownTimeout bounds connection draining on exit.
const shutdownTimeout = 30 * time.Second

// NewCommand creates the serve command using app context.
func NewCommand(app application.Application) *cobra.Command {
	defaults := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"server"},
		GroupID: "sync",
		Short:   "Start the REST API server with WebSocket and SSE updates",
		Long: `Start a REST API server for the quote catalog.

Features:
  - Endpoints for quotes, categories, the selection, sync, export and import
  - Live quote and notice updates over WebSocket (/api/v1/updates/ws)
    and Server-Sent Events (/api/v1/updates/stream)
  - Recent background notices (/api/v1/notices)
  - Periodic sync with the remote server while running
  - Response caching, flushed whenever quotes change
  - CORS support, request logging and panic recovery
  - Graceful shutdown with connection draining`,
		Example: `  # Start on default port 8080
  quotegen serve

  # Custom port, no periodic sync
  quotegen serve --port 3000 --sync=false

  # Enable CORS for specific origins
  quotegen serve --cors-origins "https://example.com,https://app.example.com"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd, app)
		},
	}

	cmd.Flags().Int("port", defaults.Port, "Server port")
	cmd.Flags().String("host", defaults.Host, "Bind address")
	cmd.Flags().String("prefix", defaults.PathPrefix, "API path prefix")

	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")

	cmd.Flags().Duration("cache-ttl", defaults.CacheTTL, "Response cache TTL")
	cmd.Flags().Int("notice-buffer", defaults.NoticeBuffer, "Recent notices kept for /notices")
	cmd.Flags().Bool("sync", true, "Run periodic sync with the remote server")

	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout (0 keeps streams open)")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")

	return cmd
}

// runServer starts the API server and blocks until the command context
// is cancelled.
func runServer(cmd *cobra.Command, app application.Application) error {
	cfg := parseConfig(cmd)
	logger := app.Logger()

	client, err := app.Client()
	if err != nil {
		return err
	}
	if mustGetBool(cmd, "sync") {
		if err := client.AutoUpdatesOn(); err != nil {
			return fmt.Errorf("starting periodic sync: %w", err)
		}
	}

	logger.Info().
		Str("addr", cfg.Addr()).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting API server")

	srv, err := server.New(app, cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	srv.Start()

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return startWithGracefulShutdown(cmd, httpServer, srv, logger)
}

func parseConfig(cmd *cobra.Command) server.Config {
	cfg := server.Config{
		Host:         mustGetString(cmd, "host"),
		Port:         mustGetInt(cmd, "port"),
		PathPrefix:   mustGetString(cmd, "prefix"),
		CORSEnabled:  mustGetBool(cmd, "cors"),
		CORSOrigins:  mustGetStringSlice(cmd, "cors-origins"),
		CacheTTL:     mustGetDuration(cmd, "cache-ttl"),
		NoticeBuffer: mustGetInt(cmd, "notice-buffer"),
		ReadTimeout:  mustGetDuration(cmd, "read-timeout"),
		WriteTimeout: mustGetDuration(cmd, "write-timeout"),
		IdleTimeout:  mustGetDuration(cmd, "idle-timeout"),
	}
	if len(cfg.CORSOrigins) > 0 {
		cfg.CORSEnabled = true
	}

	// Environment overrides for container deployments
	if envPort := os.Getenv("HTTP_PORT"); envPort != "" {
		if p, err := parsePort(envPort); err == nil {
			cfg.Port = p
		}
	}
	if envHost := os.Getenv("HTTP_HOST"); envHost != "" {
		cfg.Host = envHost
	}

	return cfg
}

// parsePort safely parses a port string to integer.
func parsePort(portStr string) (int, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, fmt.Errorf("invalid port number: %s", portStr)
	}
	if port < 1 || port > 65535 {
		return 0, fmt.Errorf("port out of range: %d", port)
	}
	return port, nil
}

// startWithGracefulShutdown serves until the command context is cancelled,
// then drains connections and stops background services.
func startWithGracefulShutdown(cmd *cobra.Command, httpServer *http.Server, srv *server.Server, logger *zerolog.Logger) error {
	out := cmd.OutOrStdout()
	serverErr := make(chan error, 1)

	go func() {
		logger.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		fmt.Fprintf(out, "%s API server listening on http://%s\n", emoji.Success, httpServer.Addr)
		fmt.Fprintln(out, "   Press Ctrl+C to stop")

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	select {
	case err := <-serverErr:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return err
	case <-cmd.Context().Done():
		logger.Info().Msg("Shutdown signal received")
		fmt.Fprintf(out, "\n%s Shutting down API server...\n", emoji.Stop)

		// The parent context is already cancelled
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Background services shutdown had issues")
		}

		logger.Info().Msg("Server stopped gracefully")
		fmt.Fprintf(out, "%s API server stopped gracefully\n", emoji.Success)
		return nil
	}
}

// mustGetInt retrieves an integer flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetStringSlice retrieves a string slice flag value or panics if the flag doesn't exist.
func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}

// mustGetDuration retrieves a duration flag value or panics if the flag doesn't exist.
func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic(fmt.Sprintf("programming error: failed to get flag %q: %v", name, err))
	}
	return val
}
