package log

import "context"

type ctxKey string

// TraceIDKey is the context key whose value is attached to every log line as trace_id.
const TraceIDKey ctxKey = "trace_id"

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDKey, traceID)
}
