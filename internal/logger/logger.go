// Package logger provides wrappers around slog.
package logger

import (
	"context"

	"golang.org/x/exp/slog"
)

type logKeyType struct{}

var logKey logKeyType

// For returns the logger attached to ctx, or slog.Default().
func For(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(logKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// SetContext attaches l to ctx.
func SetContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, logKey, l)
}
