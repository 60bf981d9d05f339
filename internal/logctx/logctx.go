// Package logctx enriches slog records with invocation-scoped attributes
// carried on the context, so individual components can log without
// re-threading identifiers through every call.
package logctx

import (
	"context"
	"log/slog"
)

// Handler wraps another slog.Handler and folds context-carried invocation
// data into every record.
type Handler struct {
	slog.Handler
}

func (h Handler) Handle(ctx context.Context, r slog.Record) error {
	if data, ok := ctx.Value(invocationDataKey{}).(*InvocationData); ok {
		r.AddAttrs(slog.Group("invocation",
			slog.String("id", data.ID),
			slog.String("function", data.Function),
		))
	}

	return h.Handler.Handle(ctx, r)
}

type invocationDataKey struct{}

// InvocationData identifies one in-flight invocation.
type InvocationData struct {
	ID       string
	Function string
}

// WithInvocationData attaches invocation identifiers to ctx.
func WithInvocationData(ctx context.Context, data *InvocationData) context.Context {
	return context.WithValue(ctx, invocationDataKey{}, data)
}

// InvocationDataFromContext returns the invocation data on ctx, if any.
func InvocationDataFromContext(ctx context.Context) (*InvocationData, bool) {
	data, ok := ctx.Value(invocationDataKey{}).(*InvocationData)
	return data, ok
}
