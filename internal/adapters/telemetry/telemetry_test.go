package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/swan/internal/adapters/telemetry"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx, vertex := tracer.Record(context.Background(), "build:debug")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	carried, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	require.Same(t, vertex, carried)

	n, err := vertex.Stdout().Write([]byte("output"))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	vertex.Cached()
	vertex.Complete(zerr.New("boom"))

	require.NoError(t, tracer.Close())
}
