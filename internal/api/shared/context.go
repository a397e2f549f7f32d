package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-relay/internal/platform/logger"
)

// SetTraceID adds a new trace ID to the context.
// It is echoed in error responses and attached to every log line written
// with the request context.
func SetTraceID(ctx context.Context) context.Context {
	return logger.WithTraceID(ctx, uuid.NewString())
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	return logger.TraceIDFromContext(ctx)
}
