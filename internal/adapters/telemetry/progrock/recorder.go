// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/swan/internal/core/ports"
)

// Recorder implements the ports.Tracer interface using the progrock library.
type Recorder struct {
	rec *progrock.Recorder
}

// New creates a Recorder rendering task progress to stderr, keeping
// stdout free for the tasks' own output.
func New() ports.Tracer {
	return NewRecorder(NewConsoleWriter(os.Stderr))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex for the named task node. The
// returned context carries the vertex so downstream executors can route
// process output to it.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.rec.Close()
}
