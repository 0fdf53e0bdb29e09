package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swan/internal/adapters/props"
	"go.trai.ch/swan/internal/core/ports"
)

// NodeID is the unique identifier for the toolchain resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{props.NodeID},
		Run: func(ctx context.Context) (*Resolver, error) {
			overrides, err := graft.Dep[ports.OverridesStore](ctx)
			if err != nil {
				return nil, err
			}
			return New(overrides), nil
		},
	})
}
