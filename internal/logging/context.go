package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerContextKey is the private key type for logger values in a context.
type loggerContextKey struct{}

// WithLogger returns a child context carrying logger. Commands attach the
// configured logger once, after flag handling, so deeper layers pick up
// flag-driven settings without threading a *log.Logger parameter through
// every call.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the logger attached by WithLogger, falling back to
// the package default when the context carries none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	logger, ok := ctx.Value(loggerContextKey{}).(*log.Logger)
	if !ok || logger == nil {
		return Default()
	}
	return logger
}
