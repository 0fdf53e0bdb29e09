// Package telemetry provides the task-progress recording adapters.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/swan/internal/core/ports"
)

// NoOpTracer is a no-op implementation of ports.Tracer.
type NoOpTracer struct{}

// NewNoOpTracer creates a new NoOpTracer.
func NewNoOpTracer() *NoOpTracer {
	return &NoOpTracer{}
}

// Record creates a new no-op vertex and embeds it in the context.
func (t *NoOpTracer) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	vertex := &NoOpVertex{}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close does nothing.
func (t *NoOpTracer) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a discarding writer.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Stderr returns a discarding writer.
func (v *NoOpVertex) Stderr() io.Writer { return io.Discard }

// Cached does nothing.
func (v *NoOpVertex) Cached() {}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}
