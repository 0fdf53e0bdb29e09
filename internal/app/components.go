package app

import (
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/swan/internal/engine/resolver"
	"go.trai.ch/swan/internal/engine/scheduler"
)

// Components bundles the application with the shared infrastructure the
// CLI needs access to.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Overrides    ports.OverridesStore
	Resolver     *resolver.Resolver
	Executor     ports.Executor
	Installer    ports.Installer
	Linker       ports.Linker
	Inputs       ports.InputResolver
	StoreFactory ports.FingerprintStoreFactory
	Scheduler    *scheduler.Scheduler
	Tracer       ports.Tracer
}
