// Package logger provides structured logging for the application. It wraps
// log/slog with JSON output and carries request-scoped loggers through
// context so store code can log with the request's trace ID attached.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ncnews/ncnews/internal/config"
)

// contextKey is the private type for context values set by this package.
type contextKey struct{}

// loggerKey is the context key under which a request-scoped logger travels.
var loggerKey = contextKey{}

// Setup initializes the application's logging based on the provided server
// configuration. It creates a JSON logger at the configured level on
// stdout, sets it as the process default, and returns it.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	log := slog.New(handler)
	slog.SetDefault(log)

	return log, nil
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}

// WithLogger returns a context carrying the given logger. Handlers use this
// to push a logger enriched with the request's trace ID down into the
// stores.
func WithLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, log)
}

// FromContext retrieves the logger from the context, or nil if none was set.
func FromContext(ctx context.Context) *slog.Logger {
	log, _ := ctx.Value(loggerKey).(*slog.Logger)
	return log
}

// FromContextOrDefault retrieves the logger from the context, falling back
// to the provided default when the context carries none.
func FromContextOrDefault(ctx context.Context, def *slog.Logger) *slog.Logger {
	if log := FromContext(ctx); log != nil {
		return log
	}
	if def != nil {
		return def
	}
	return slog.Default()
}
