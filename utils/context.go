package utils

import (
	"context"
	"log/slog"
	"os"
)

type ContextKey int

const (
	ContextKeyLogger ContextKey = iota
)

func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			ReplaceAttr: GCPLoggerAttributeReplacer,
		}))
	default:
		return slog.New(LocalDevHandlerOptions{UseColor: true}.NewLocalDevHandler(os.Stderr))
	}
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}
