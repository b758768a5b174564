package logger

import (
	"context"
	"log/slog"
)

// contextKey is an unexported type to avoid context key collisions.
type contextKey struct{}

// WithLogger returns a new context carrying the given logger.
// Handlers attach a request-scoped logger (with trace ID) so that lower
// layers log with the same correlation attributes.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext retrieves the logger from the context, falling back to
// slog.Default() when none was attached.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
