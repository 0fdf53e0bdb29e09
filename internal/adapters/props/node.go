package props

import (
	"context"
	"path/filepath"

	"github.com/grindlemire/graft"
	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
)

// NodeID is the unique identifier for the overrides store Graft node.
const NodeID graft.ID = "adapter.overrides_store"

func init() {
	graft.Register(graft.Node[ports.OverridesStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.OverridesStore, error) {
			return NewStore(filepath.Join(".", domain.PropertiesFileName)), nil
		},
	})
}
