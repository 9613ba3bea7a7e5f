package telemetry

import (
	"context"

	"go.trai.ch/freighter/internal/core/ports"
)

// NoOpTracer is a ports.Tracer that records nothing. Used in tests and
// wherever tracing is not wired up.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// StartSpan returns the context unchanged and a SpanEnd that does nothing.
func (t *NoOpTracer) StartSpan(ctx context.Context, _ string) (context.Context, ports.SpanEnd) {
	return ctx, func(error) {}
}
