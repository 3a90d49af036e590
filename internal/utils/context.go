// Package utils provides general-purpose helper utilities used across the
// agent and the document store: context keys, id generation, HTTP response
// writing and HTTP client initialization.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the key under which the request trace id is stored.
// The agent's HTTP middleware sets it and the remote store adapter forwards
// it as the X-Trace-ID header, so one user action can be followed across
// both processes.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id from ctx.
//
// ok is false when the value is missing, empty, or of an unexpected type.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	if !ok || traceID == "" {
		return "", false
	}
	return traceID, true
}
