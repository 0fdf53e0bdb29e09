package ports

import (
	"context"
	"io"
)

// Tracer records the lifecycle of executed task nodes.
type Tracer interface {
	// Record starts a new vertex for the named node.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the node's standard output.
	Stdout() io.Writer

	// Stderr returns a writer capturing the node's error output.
	Stderr() io.Writer

	// Cached marks the vertex as skipped by the incremental gate.
	Cached()

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}

type vertexContextKey struct{}

// ContextWithVertex returns a context carrying the active vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
