// Package logging provides structured logging for quotegen using zerolog.
// Terminals get a human-readable console writer, everything else gets JSON.
//
// The process-wide logger is built from QUOTEGEN_LOG_* variables at start
// and replaced by the CLI once flags are parsed. Library code logs through
// FromContext so hosts can attach request or quote fields:
//
//	ctx := logging.WithCategory(ctx, "Wisdom")
//	logging.FromContext(ctx).Debug().Msg("Picking quote")
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var defaultLogger = NewLoggerFromConfig(EnvConfig())

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger, including zerolog's global
// log.Logger used by third-party code.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
	log.Logger = logger
}

// Configure replaces the process-wide logger with one built from cfg.
func Configure(cfg *Config) {
	SetDefault(NewLoggerFromConfig(cfg))
}

// Debug starts a debug event on the process-wide logger.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info starts an info event on the process-wide logger.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn starts a warning event on the process-wide logger.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}
