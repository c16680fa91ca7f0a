// Package logging wires [log/slog] so that attributes stored in a
// [context.Context] are attached to every record logged under that context.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

type attrsKey struct{}

// ContextHandler decorates an underlying [slog.Handler] with attributes
// carried in the context via [WithAttrs].
type ContextHandler struct {
	handler slog.Handler
}

// NewContextHandler wraps h in a ContextHandler.
func NewContextHandler(h slog.Handler) *ContextHandler {
	return &ContextHandler{handler: h}
}

// NewLogger builds a logger writing text records to w at the given level,
// with context attribute support.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	}))
	return slog.New(handler)
}

// Enabled delegates to the underlying handler.
func (h *ContextHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle enriches the record with the attributes stored in ctx.
func (h *ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if attrs, ok := ctx.Value(attrsKey{}).([]slog.Attr); ok {
		record.AddAttrs(attrs...)
	}
	if err := h.handler.Handle(ctx, record); err != nil {
		return fmt.Errorf("handle log record: %w", err)
	}
	return nil
}

// WithAttrs wraps the underlying handler's WithAttrs result.
func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{handler: h.handler.WithAttrs(attrs)}
}

// WithGroup wraps the underlying handler's WithGroup result.
func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{handler: h.handler.WithGroup(name)}
}

// WithAttrs stores attributes in the context for [ContextHandler] to attach
// to every record logged under it.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if existing, ok := ctx.Value(attrsKey{}).([]slog.Attr); ok {
		attrs = append(append([]slog.Attr(nil), existing...), attrs...)
	}
	return context.WithValue(ctx, attrsKey{}, attrs)
}
