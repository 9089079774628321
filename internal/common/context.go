package common

import (
	"context"
	"time"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyProtocol  contextKey = "protocol"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithProtocol adds a prenotação number to the context
func WithProtocol(ctx context.Context, protocol int) context.Context {
	return context.WithValue(ctx, ContextKeyProtocol, protocol)
}

// ProtocolFromContext extracts the prenotação number from context
func ProtocolFromContext(ctx context.Context) int {
	if protocol, ok := ctx.Value(ContextKeyProtocol).(int); ok {
		return protocol
	}
	return 0
}

// WithTimeout creates a context with the specified timeout
func WithTimeout(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}
