package logger

import (
	"context"

	"go.uber.org/zap"
)

// ctxKey is unexported so only this package can attach the logger.
type ctxKey struct{}

// ContextWithLogger attaches a request-scoped logger to the context.
// Handlers down the chain retrieve it with FromContext.
func ContextWithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached by ContextWithLogger, or a
// no-op logger when the context carries none.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.NewNop()
}
