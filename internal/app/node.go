package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swan/internal/adapters/config" //nolint:depguard // Wired in app layer
	"go.trai.ch/swan/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"go.trai.ch/swan/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/swan/internal/adapters/shell"  //nolint:depguard // Wired in app layer
	"go.trai.ch/swan/internal/adapters/state"  //nolint:depguard // Wired in app layer
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/swan/internal/engine/resolver"
	"go.trai.ch/swan/internal/engine/scheduler"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			resolver.NodeID,
			shell.NodeID,
			fs.InstallerNodeID,
			fs.LinkerNodeID,
			fs.ResolverNodeID,
			state.NodeID,
			scheduler.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	linker, err := graft.Dep[ports.Linker](ctx)
	if err != nil {
		return nil, err
	}

	inputs, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	storeFactory, err := graft.Dep[ports.FingerprintStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, res, executor, installer, linker, inputs, storeFactory, sched, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	overrides, err := graft.Dep[ports.OverridesStore](ctx)
	if err != nil {
		return nil, err
	}

	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	installer, err := graft.Dep[ports.Installer](ctx)
	if err != nil {
		return nil, err
	}

	linker, err := graft.Dep[ports.Linker](ctx)
	if err != nil {
		return nil, err
	}

	inputs, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	storeFactory, err := graft.Dep[ports.FingerprintStoreFactory](ctx)
	if err != nil {
		return nil, err
	}

	sched, err := graft.Dep[*scheduler.Scheduler](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
		Overrides:    overrides,
		Resolver:     res,
		Executor:     executor,
		Installer:    installer,
		Linker:       linker,
		Inputs:       inputs,
		StoreFactory: storeFactory,
		Scheduler:    sched,
		Tracer:       tracer,
	}, nil
}
