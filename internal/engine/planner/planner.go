// Package planner materializes the per-invocation task graph.
package planner

import (
	"context"
	"os"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/swan/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Shared node identifiers. Variant-scoped nodes append ":<variant>".
const (
	InstallToolchainID = "install-toolchain"
	UpdateToolchainID  = "update-toolchain"
	CleanID            = "clean"

	linkGeneratedSourcesPrefix = "link-generated-sources:"
	buildPrefix                = "build:"
	installPackagePrefix       = "install-package:"
	copyArtifactsPrefix        = "copy-artifacts:"
)

// Action performs one node's work at execution time.
type Action func(ctx context.Context) error

// Plan pairs a validated task graph with the action behind each node.
// The graph is a pure description; actions close over the ports doing
// the actual work. Toolchain availability is checked inside the actions
// of nodes that need it, so materializing a plan never touches the
// filesystem.
type Plan struct {
	Graph   *domain.TaskGraph
	Actions map[domain.InternedString]Action

	// VariantTargets maps each registered variant to its terminal node,
	// the compile hook closing the chain.
	VariantTargets map[string]domain.InternedString
}

// Planner accumulates registered variants and materializes them into a
// Plan. Registration is cheap and performs no validation beyond what the
// domain types guarantee; all structural checking happens in Materialize.
type Planner struct {
	project   *domain.Project
	toolchain domain.ToolchainConfig
	executor  ports.Executor
	installer ports.Installer
	linker    ports.Linker

	variants []domain.BuildVariant
}

// New creates a Planner for one resolved project.
func New(
	project *domain.Project,
	toolchain domain.ToolchainConfig,
	executor ports.Executor,
	installer ports.Installer,
	linker ports.Linker,
) *Planner {
	return &Planner{
		project:   project,
		toolchain: toolchain,
		executor:  executor,
		installer: installer,
		linker:    linker,
	}
}

// Register adds a variant to the plan under construction.
func (p *Planner) Register(v domain.BuildVariant) {
	p.variants = append(p.variants, v)
}

// Materialize builds the complete task graph for all registered variants
// plus the variant-independent maintenance nodes, validates it, and
// binds every node to its action.
//
// A registered variant declaring none of the candidate compile hooks is
// a configuration error; the graph is not built.
func (p *Planner) Materialize() (*Plan, error) {
	plan := &Plan{
		Graph:          domain.NewTaskGraph(),
		Actions:        make(map[domain.InternedString]Action),
		VariantTargets: make(map[string]domain.InternedString),
	}

	if err := p.addToolchainNodes(plan); err != nil {
		return nil, err
	}
	if err := p.addCleanNode(plan); err != nil {
		return nil, err
	}
	for _, v := range p.variants {
		if err := p.addVariantChain(plan, v); err != nil {
			return nil, err
		}
	}

	if err := plan.Graph.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func (p *Planner) addToolchainNodes(plan *Plan) error {
	install := &domain.TaskNode{
		ID:         domain.NewInternedString(InstallToolchainID),
		Kind:       domain.KindProcess,
		WorkingDir: p.project.Root,
		Command:    []string{p.toolchain.ToolsManager(), "tools", "--install", p.project.ToolsVersion},
		Env:        p.toolchain.Env,
	}
	if err := p.addProcessNode(plan, install, resolver.RequireToolchain); err != nil {
		return err
	}

	update := &domain.TaskNode{
		ID:         domain.NewInternedString(UpdateToolchainID),
		Kind:       domain.KindProcess,
		WorkingDir: p.project.Root,
		Command:    []string{p.toolchain.ToolsManager(), "tools", "--update"},
		Env:        p.toolchain.Env,
	}
	return p.addProcessNode(plan, update, resolver.RequireToolchain)
}

func (p *Planner) addCleanNode(plan *Plan) error {
	id := domain.NewInternedString(CleanID)

	if p.project.CleanStrategy == domain.CleanToolchain {
		node := &domain.TaskNode{
			ID:               id,
			Kind:             domain.KindProcess,
			WorkingDir:       p.project.SourceDir,
			Command:          []string{p.toolchain.BuildExecutable(), "clean"},
			Env:              p.toolchain.Env,
			WritesSourceTree: true,
		}
		return p.addProcessNode(plan, node, resolver.RequireToolchain)
	}

	node := &domain.TaskNode{
		ID:               id,
		Kind:             domain.KindFilesystem,
		WorkingDir:       p.project.SourceDir,
		WritesSourceTree: true,
	}
	buildDir := domain.SwiftBuildDir(p.project.SourceDir)
	return p.addNode(plan, node, func(_ context.Context) error {
		if err := os.RemoveAll(buildDir); err != nil {
			return zerr.With(zerr.Wrap(err, "removing build directory"), "dir", buildDir)
		}
		return nil
	})
}

func (p *Planner) addVariantChain(plan *Plan, v domain.BuildVariant) error {
	hookKind, hookCommand, err := domain.SelectCompileHook(v)
	if err != nil {
		return err
	}

	installToolchain := domain.NewInternedString(InstallToolchainID)
	link := domain.NewInternedString(linkGeneratedSourcesPrefix + v.Name)
	build := domain.NewInternedString(buildPrefix + v.Name)
	installPackage := domain.NewInternedString(installPackagePrefix + v.Name)
	copyArtifacts := domain.NewInternedString(copyArtifactsPrefix + v.Name)
	hook := domain.NewInternedString(hookKind.String() + ":" + v.Name)

	linkSpec := domain.GeneratedSourceLink{
		Path:      domain.GeneratedSourcesLinkPath(p.project.SourceDir),
		TargetDir: p.project.GeneratedSourcesDir(v.Name),
	}
	linkNode := &domain.TaskNode{
		ID:               link,
		Kind:             domain.KindFilesystem,
		WorkingDir:       p.project.SourceDir,
		DependsOn:        []domain.InternedString{installToolchain},
		WritesSourceTree: true,
	}
	if err := p.addNode(plan, linkNode, func(_ context.Context) error {
		return p.linker.Relink(linkSpec)
	}); err != nil {
		return err
	}

	configuration := v.Configuration()
	buildCommand := []string{p.toolchain.BuildExecutable(), "--configuration", configuration}
	buildCommand = append(buildCommand, v.ExtraBuildFlags...)
	buildNode := &domain.TaskNode{
		ID:         build,
		Kind:       domain.KindProcess,
		WorkingDir: p.project.SourceDir,
		Command:    buildCommand,
		Env:        p.toolchain.Env,
		Inputs: []string{
			"Package.swift",
			"Sources/**/*.swift",
		},
		Outputs: []string{
			domain.SwiftBuildDirName + "/" + configuration + "/*.so",
		},
		DependsOn:        []domain.InternedString{installToolchain, link},
		Gated:            true,
		WritesSourceTree: true,
	}
	if err := p.addProcessNode(plan, buildNode, requireToolchainAndNdk); err != nil {
		return err
	}

	installCommand := []string{p.toolchain.InstallExecutable(), "--configuration", configuration}
	installCommand = append(installCommand, v.ExtraInstallFlags...)
	installNode := &domain.TaskNode{
		ID:               installPackage,
		Kind:             domain.KindProcess,
		WorkingDir:       p.project.SourceDir,
		Command:          installCommand,
		Env:              p.toolchain.Env,
		DependsOn:        []domain.InternedString{installToolchain, build},
		WritesSourceTree: true,
	}
	if err := p.addProcessNode(plan, installNode, resolver.RequireToolchain); err != nil {
		return err
	}

	copySpec := domain.ArtifactCopySpec{
		Sources: []domain.CopySource{
			{Dir: domain.PrebuiltLibsDir(p.project.SourceDir, p.project.ABI), Pattern: "*"},
			{Dir: p.toolchain.BundledLibsDir(), Pattern: "*.so"},
			{Dir: domain.ConfigurationOutputDir(p.project.SourceDir, configuration), Pattern: "*.so"},
		},
		Dest: domain.JniLibsDir(p.project.Root, p.project.ABI),
		Mode: domain.ArtifactPerm,
	}
	copyNode := &domain.TaskNode{
		ID:         copyArtifacts,
		Kind:       domain.KindFilesystem,
		WorkingDir: p.project.Root,
		DependsOn:  []domain.InternedString{installToolchain, build, installPackage},
	}
	if err := p.addNode(plan, copyNode, func(_ context.Context) error {
		if err := resolver.RequireToolchain(p.toolchain); err != nil {
			return err
		}
		return p.installer.Install(copySpec)
	}); err != nil {
		return err
	}

	hookNode := &domain.TaskNode{
		ID:         hook,
		Kind:       domain.KindProcess,
		WorkingDir: p.project.Root,
		Command:    hookCommand,
		Env:        p.toolchain.Env,
		DependsOn:  []domain.InternedString{copyArtifacts},
	}
	if err := p.addProcessNode(plan, hookNode, nil); err != nil {
		return err
	}

	plan.VariantTargets[v.Name] = hook
	return nil
}

// addProcessNode registers a node whose action launches the node's
// command, optionally preceded by a toolchain availability check. The
// check runs at execution time: an unresolved toolchain fails the first
// node needing it, never the planning step.
func (p *Planner) addProcessNode(plan *Plan, node *domain.TaskNode, preflight func(domain.ToolchainConfig) error) error {
	return p.addNode(plan, node, func(ctx context.Context) error {
		if preflight != nil {
			if err := preflight(p.toolchain); err != nil {
				return err
			}
		}
		return p.executor.Execute(ctx, node)
	})
}

func (p *Planner) addNode(plan *Plan, node *domain.TaskNode, action Action) error {
	if err := plan.Graph.AddNode(node); err != nil {
		return err
	}
	plan.Actions[node.ID] = action
	return nil
}

func requireToolchainAndNdk(cfg domain.ToolchainConfig) error {
	if err := resolver.RequireToolchain(cfg); err != nil {
		return err
	}
	return resolver.RequireNdk(cfg)
}
