// Package requestctx propagates transport-assigned request identifiers
// through context so lower layers can stamp diagnostics without depending
// on any transport package.
package requestctx

import "context"

type requestIDKey struct{}

// WithRequestID returns a new context carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID extracts the request ID, or "" when none is stored.
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
