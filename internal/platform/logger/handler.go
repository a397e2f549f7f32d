package logger

import (
	"context"
	"log/slog"

	"github.com/phrazzld/scry-relay/internal/redact"
)

// sensitiveKeys are string attributes that may carry upstream payloads.
var sensitiveKeys = map[string]struct{}{
	"error":          {},
	"upstream_error": {},
	"response_body":  {},
}

// RedactingHandler is a slog.Handler that redacts error values and
// sensitive string attributes, and adds the trace id from the context.
type RedactingHandler struct {
	handler slog.Handler
}

// NewRedactingHandler wraps handler.
func NewRedactingHandler(handler slog.Handler) *RedactingHandler {
	return &RedactingHandler{handler: handler}
}

// Enabled implements the slog.Handler interface.
func (h *RedactingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *RedactingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		clean[i] = redactAttr(attr)
	}
	return &RedactingHandler{handler: h.handler.WithAttrs(clean)}
}

// WithGroup implements the slog.Handler interface.
func (h *RedactingHandler) WithGroup(name string) slog.Handler {
	return &RedactingHandler{handler: h.handler.WithGroup(name)}
}

// Handle implements the slog.Handler interface.
func (h *RedactingHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		clean.AddAttrs(redactAttr(attr))
		return true
	})

	if traceID := TraceIDFromContext(ctx); traceID != "" {
		clean.AddAttrs(slog.String(TraceIDKey, traceID))
	}

	return h.handler.Handle(ctx, clean)
}

func redactAttr(attr slog.Attr) slog.Attr {
	value := attr.Value.Resolve()
	switch value.Kind() {
	case slog.KindAny:
		if err, ok := value.Any().(error); ok {
			return slog.String(attr.Key, redact.Error(err))
		}
	case slog.KindString:
		if _, ok := sensitiveKeys[attr.Key]; ok {
			return slog.String(attr.Key, redact.String(value.String()))
		}
	case slog.KindGroup:
		group := value.Group()
		clean := make([]any, len(group))
		for i, member := range group {
			clean[i] = redactAttr(member)
		}
		return slog.Group(attr.Key, clean...)
	}
	return slog.Attr{Key: attr.Key, Value: value}
}
