// Package app implements the application layer for swan.
package app

import (
	"context"
	"errors"
	"runtime"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/swan/internal/engine/gate"
	"go.trai.ch/swan/internal/engine/planner"
	"go.trai.ch/swan/internal/engine/resolver"
	"go.trai.ch/swan/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App wires configuration loading, toolchain resolution, planning and
// scheduling into the commands exposed by the CLI.
type App struct {
	configLoader ports.ConfigLoader
	resolver     *resolver.Resolver
	executor     ports.Executor
	installer    ports.Installer
	linker       ports.Linker
	inputs       ports.InputResolver
	storeFactory ports.FingerprintStoreFactory
	scheduler    *scheduler.Scheduler
	logger       ports.Logger

	dir string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	res *resolver.Resolver,
	executor ports.Executor,
	installer ports.Installer,
	linker ports.Linker,
	inputs ports.InputResolver,
	storeFactory ports.FingerprintStoreFactory,
	sched *scheduler.Scheduler,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     res,
		executor:     executor,
		installer:    installer,
		linker:       linker,
		inputs:       inputs,
		storeFactory: storeFactory,
		scheduler:    sched,
		logger:       logger,
		dir:          ".",
	}
}

// WithDir overrides the directory the configuration is loaded from.
func WithDir(dir string) func(*App) {
	return func(a *App) {
		a.dir = dir
	}
}

// Run builds the requested variants, or every declared variant when
// none are named.
func (a *App) Run(ctx context.Context, variantNames []string) error {
	project, toolchain, err := a.prepare(ctx)
	if err != nil {
		return err
	}

	variants, err := selectVariants(project, variantNames)
	if err != nil {
		return err
	}

	p := a.newPlanner(project, toolchain)
	for _, v := range variants {
		p.Register(v)
	}
	plan, err := p.Materialize()
	if err != nil {
		return zerr.Wrap(err, "failed to materialize task graph")
	}

	targets := make([]domain.InternedString, 0, len(variants))
	for _, v := range variants {
		a.logger.Info("building variant " + v.Name + " (" + v.Configuration() + ")")
		targets = append(targets, plan.VariantTargets[v.Name])
	}

	return a.execute(ctx, project, plan, targets)
}

// Clean removes toolchain build state using the configured strategy.
func (a *App) Clean(ctx context.Context) error {
	return a.runMaintenance(ctx, planner.CleanID)
}

// Update updates the installed toolchain tools.
func (a *App) Update(ctx context.Context) error {
	return a.runMaintenance(ctx, planner.UpdateToolchainID)
}

func (a *App) runMaintenance(ctx context.Context, target string) error {
	project, toolchain, err := a.prepare(ctx)
	if err != nil {
		return err
	}

	plan, err := a.newPlanner(project, toolchain).Materialize()
	if err != nil {
		return zerr.Wrap(err, "failed to materialize task graph")
	}

	return a.execute(ctx, project, plan, []domain.InternedString{domain.NewInternedString(target)})
}

func (a *App) prepare(_ context.Context) (*domain.Project, domain.ToolchainConfig, error) {
	project, err := a.configLoader.Load(a.dir)
	if err != nil {
		return nil, domain.ToolchainConfig{}, zerr.Wrap(err, "failed to load configuration")
	}

	toolchain, err := a.resolver.Resolve(project)
	if err != nil {
		return nil, domain.ToolchainConfig{}, zerr.Wrap(err, "failed to resolve toolchain")
	}
	if err := a.resolver.UpdateProperties(toolchain); err != nil {
		return nil, domain.ToolchainConfig{}, zerr.Wrap(err, "failed to persist toolchain locations")
	}

	return project, toolchain, nil
}

func (a *App) newPlanner(project *domain.Project, toolchain domain.ToolchainConfig) *planner.Planner {
	return planner.New(project, toolchain, a.executor, a.installer, a.linker)
}

func (a *App) execute(ctx context.Context, project *domain.Project, plan *planner.Plan, targets []domain.InternedString) error {
	store, err := a.storeFactory(domain.StateFilePath(project.SourceDir))
	if err != nil {
		return zerr.Wrap(err, "failed to open fingerprint store")
	}
	g := gate.New(a.inputs, store)

	if err := a.scheduler.Run(ctx, plan, g, targets, runtime.NumCPU()); err != nil {
		return errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return nil
}

func selectVariants(project *domain.Project, names []string) ([]domain.BuildVariant, error) {
	if len(project.Variants) == 0 {
		return nil, domain.ErrNoVariantsConfigured
	}
	if len(names) == 0 {
		return project.Variants, nil
	}

	variants := make([]domain.BuildVariant, 0, len(names))
	for _, name := range names {
		v, ok := project.Variant(name)
		if !ok {
			return nil, zerr.With(domain.ErrUnknownVariant, "variant", name)
		}
		variants = append(variants, v)
	}
	return variants, nil
}
