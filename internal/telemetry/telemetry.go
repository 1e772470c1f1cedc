package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Span wraps the one otel span a call site opened, so callers that run
// with a nil Tracer (the common case outside cmd/sokolve-bench) don't
// need their own nil checks around every attribute/End call.
type Span struct {
	span trace.Span
}

// Start begins a span named name if tracer is non-nil, otherwise returns
// a no-op Span and the ctx unchanged.
func Start(ctx context.Context, tracer trace.Tracer, name string) (context.Context, Span) {
	if tracer == nil {
		return ctx, Span{}
	}
	ctx, span := tracer.Start(ctx, name)
	return ctx, Span{span: span}
}

// SetInt records an integer attribute on the span, a no-op if the span
// is the zero Span.
func (s Span) SetInt(key string, v int) {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(attribute.Int(key, v))
}

// SetString records a string attribute, a no-op if the span is the zero
// Span.
func (s Span) SetString(key, v string) {
	if s.span == nil {
		return
	}
	s.span.SetAttributes(attribute.String(key, v))
}

// End closes the span, a no-op if the span is the zero Span.
func (s Span) End() {
	if s.span == nil {
		return
	}
	s.span.End()
}
