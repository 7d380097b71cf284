package slogx

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithContext stores the logger in the context for retrieval downstream.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger carried by ctx, or slog.Default when the
// context never passed through WithContext.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// WithRequestID returns a context whose logger tags every line with the
// request id, so log output from one request flow can be followed end to
// end. An empty id leaves the context untouched.
func WithRequestID(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return WithContext(ctx, FromContext(ctx).With("req_id", reqID))
}
