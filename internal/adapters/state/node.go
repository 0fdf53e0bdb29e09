package state

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swan/internal/core/ports"
)

// NodeID is the unique identifier for the fingerprint store factory Graft node.
const NodeID graft.ID = "adapter.fingerprint_store"

func init() {
	graft.Register(graft.Node[ports.FingerprintStoreFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FingerprintStoreFactory, error) {
			return func(path string) (ports.FingerprintStore, error) {
				return NewStore(path)
			}, nil
		},
	})
}
