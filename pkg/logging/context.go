package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const (
	loggerKey contextKey = iota
	requestIDKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	// Loggers attached with zerolog's own Logger.WithContext (HTTP middleware).
	if logger := zerolog.Ctx(ctx); logger != nil && logger.GetLevel() != zerolog.Disabled {
		return logger
	}

	return Default()
}

// WithRequestID adds a request ID to the context and its logger.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	ctx = context.WithValue(ctx, requestIDKey, requestID)
	return WithField(ctx, "request_id", requestID)
}

// RequestID extracts the request ID from context.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx)
	var logCtx zerolog.Context
	switch v := value.(type) {
	case string:
		logCtx = logger.With().Str(key, v)
	case int:
		logCtx = logger.With().Int(key, v)
	case int64:
		logCtx = logger.With().Int64(key, v)
	case error:
		logCtx = logger.With().AnErr(key, v)
	default:
		logCtx = logger.With().Interface(key, v)
	}
	newLogger := logCtx.Logger()
	return WithLogger(ctx, &newLogger)
}

// WithQuote adds quote context to the logger.
func WithQuote(ctx context.Context, quoteID int64) context.Context {
	return WithField(ctx, "quote_id", quoteID)
}

// WithCategory adds category context to the logger.
func WithCategory(ctx context.Context, category string) context.Context {
	return WithField(ctx, "category", category)
}

// WithOperation adds operation context to the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}
