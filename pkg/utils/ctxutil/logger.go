package ctxutil

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/vitalsink/pkg/utils/logging"
)

type ctxLoggerKey struct{}

func Logger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxLoggerKey{}).(*slog.Logger)
	if !ok {
		return logging.Default()
	}
	return logger
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, logger)
}

// WithLogAttrs returns a context whose logger carries args on every record, e.g. the message
// ID of the delivery being handled.
func WithLogAttrs(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, Logger(ctx).With(args...))
}
