// Package ctxlog provides context-aware structured logging utilities.
package ctxlog

import (
	"context"
	"io"
	"log/slog"
)

// Config selects the minimum level that reaches the log writer.
type Config struct {
	Level slog.Level `yaml:"level"`
}

// Setup builds a JSON logger writing to w, tags it with the command name
// and stores it in ctx. The logger also becomes the slog default.
func Setup(ctx context.Context, name string, w io.Writer, config Config) context.Context {
	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: config.Level,
	})).With("cmd", name)
	slog.SetDefault(logger)

	return Store(ctx, logger)
}

type ctxKey struct{}

var key ctxKey

func Store(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, key, log)
}

func Get(ctx context.Context) *slog.Logger {
	log, ok := ctx.Value(key).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return log
}

func With(ctx context.Context, kv ...any) context.Context {
	return Store(ctx, Get(ctx).With(kv...))
}
