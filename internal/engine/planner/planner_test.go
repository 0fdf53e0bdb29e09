package planner_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports/mocks"
	"go.trai.ch/swan/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

func testProject(root string) *domain.Project {
	return &domain.Project{
		Root:           root,
		SourceDir:      domain.SwiftSourceDir(root),
		ABI:            "armeabi-v7a",
		ToolsVersion:   "1.0.48",
		CodegenBackend: domain.BackendApt,
		CleanStrategy:  domain.CleanBuildDir,
	}
}

func resolvedToolchain() domain.ToolchainConfig {
	return domain.ToolchainConfig{
		Root:    "/opt/toolchain",
		NdkRoot: "/opt/ndk",
		Env: map[string]string{
			domain.ToolchainEnvVar: "/opt/toolchain",
			domain.NdkEnvVar:       "/opt/ndk",
		},
	}
}

func debugVariant() domain.BuildVariant {
	return domain.BuildVariant{
		Name:       "debug",
		Debuggable: true,
		Hooks: map[domain.CompileHookKind][]string{
			domain.HookSourcesCompile: {"gradle", "compileDebugSources"},
		},
	}
}

type planFixture struct {
	executor  *mocks.MockExecutor
	installer *mocks.MockInstaller
	linker    *mocks.MockLinker
	planner   *planner.Planner
}

func newFixture(t *testing.T, project *domain.Project, toolchain domain.ToolchainConfig) *planFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &planFixture{
		executor:  mocks.NewMockExecutor(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		linker:    mocks.NewMockLinker(ctrl),
	}
	f.planner = planner.New(project, toolchain, f.executor, f.installer, f.linker)
	return f
}

func node(t *testing.T, plan *planner.Plan, id string) domain.TaskNode {
	t.Helper()
	n, ok := plan.Graph.Node(domain.NewInternedString(id))
	require.True(t, ok, "node %s missing from graph", id)
	return n
}

func dependsOn(n domain.TaskNode, id string) bool {
	for _, dep := range n.DependsOn {
		if dep.String() == id {
			return true
		}
	}
	return false
}

func TestMaterialize_VariantChainShape(t *testing.T) {
	project := testProject(t.TempDir())
	f := newFixture(t, project, resolvedToolchain())
	f.planner.Register(debugVariant())

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	build := node(t, plan, "build:debug")
	assert.True(t, dependsOn(build, planner.InstallToolchainID))
	assert.True(t, dependsOn(build, "link-generated-sources:debug"))
	assert.True(t, build.Gated)
	assert.True(t, build.WritesSourceTree)
	assert.Equal(t, project.SourceDir, build.WorkingDir)
	assert.Equal(t,
		[]string{filepath.Join("/opt/toolchain", "bin", "swift-build"), "--configuration", "debug"},
		build.Command)

	install := node(t, plan, "install-package:debug")
	assert.True(t, dependsOn(install, planner.InstallToolchainID))
	assert.True(t, dependsOn(install, "build:debug"))

	copyArtifacts := node(t, plan, "copy-artifacts:debug")
	assert.True(t, dependsOn(copyArtifacts, planner.InstallToolchainID))
	assert.True(t, dependsOn(copyArtifacts, "install-package:debug"))
	assert.False(t, copyArtifacts.WritesSourceTree)

	hook := node(t, plan, "compile-sources:debug")
	assert.True(t, dependsOn(hook, "copy-artifacts:debug"))
	assert.Equal(t, []string{"gradle", "compileDebugSources"}, hook.Command)

	require.Contains(t, plan.VariantTargets, "debug")
	assert.Equal(t, "compile-sources:debug", plan.VariantTargets["debug"].String())
}

func TestMaterialize_HookPreferenceOrder(t *testing.T) {
	v := debugVariant()
	v.Hooks[domain.HookNdkCompile] = []string{"gradle", "compileDebugNdk"}
	v.Hooks[domain.HookExternalNativeBuild] = []string{"gradle", "externalNativeBuildDebug"}

	f := newFixture(t, testProject(t.TempDir()), resolvedToolchain())
	f.planner.Register(v)

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	assert.Equal(t, "ndk-compile:debug", plan.VariantTargets["debug"].String())
	_, ok := plan.Graph.Node(domain.NewInternedString("external-native-build:debug"))
	assert.False(t, ok)
}

func TestMaterialize_NoHookDeclaredFails(t *testing.T) {
	v := debugVariant()
	v.Hooks = nil

	f := newFixture(t, testProject(t.TempDir()), resolvedToolchain())
	f.planner.Register(v)

	_, err := f.planner.Materialize()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no compile step declared")
}

func TestMaterialize_ReleaseConfiguration(t *testing.T) {
	v := domain.BuildVariant{
		Name:            "release",
		ExtraBuildFlags: []string{"-Xswiftc", "-Osize"},
		Hooks: map[domain.CompileHookKind][]string{
			domain.HookSourcesCompile: {"gradle", "compileReleaseSources"},
		},
	}
	f := newFixture(t, testProject(t.TempDir()), resolvedToolchain())
	f.planner.Register(v)

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	build := node(t, plan, "build:release")
	assert.Equal(t, "--configuration", build.Command[1])
	assert.Equal(t, "release", build.Command[2])
	assert.Equal(t, []string{"-Xswiftc", "-Osize"}, build.Command[3:])
	assert.Equal(t, []string{".build/release/*.so"}, build.Outputs)
}

func TestMaterialize_SharedToolchainInstall(t *testing.T) {
	second := debugVariant()
	second.Name = "staging"

	f := newFixture(t, testProject(t.TempDir()), resolvedToolchain())
	f.planner.Register(debugVariant())
	f.planner.Register(second)

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	// One shared install node feeding both chains.
	installs := 0
	for n := range plan.Graph.Walk() {
		if strings.HasPrefix(n.ID.String(), planner.InstallToolchainID) {
			installs++
		}
	}
	assert.Equal(t, 1, installs)
	assert.True(t, dependsOn(node(t, plan, "build:debug"), planner.InstallToolchainID))
	assert.True(t, dependsOn(node(t, plan, "build:staging"), planner.InstallToolchainID))
}

func TestMaterialize_CleanStrategies(t *testing.T) {
	t.Run("build-dir is a filesystem node", func(t *testing.T) {
		f := newFixture(t, testProject(t.TempDir()), resolvedToolchain())
		plan, err := f.planner.Materialize()
		require.NoError(t, err)

		clean := node(t, plan, planner.CleanID)
		assert.Equal(t, domain.KindFilesystem, clean.Kind)
		assert.Empty(t, clean.Command)
	})

	t.Run("toolchain delegates to the build executable", func(t *testing.T) {
		project := testProject(t.TempDir())
		project.CleanStrategy = domain.CleanToolchain
		f := newFixture(t, project, resolvedToolchain())
		plan, err := f.planner.Materialize()
		require.NoError(t, err)

		clean := node(t, plan, planner.CleanID)
		assert.Equal(t, domain.KindProcess, clean.Kind)
		assert.Equal(t, []string{filepath.Join("/opt/toolchain", "bin", "swift-build"), "clean"}, clean.Command)
	})
}

func TestActions_BuildFailsWithoutToolchain(t *testing.T) {
	f := newFixture(t, testProject(t.TempDir()), domain.ToolchainConfig{})
	f.planner.Register(debugVariant())

	plan, err := f.planner.Materialize()
	require.NoError(t, err, "planning must succeed without a toolchain")

	// The executor must never be reached.
	err = plan.Actions[domain.NewInternedString("build:debug")](context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swift android toolchain not found")
}

func TestActions_BuildFailsWithoutNdk(t *testing.T) {
	cfg := resolvedToolchain()
	cfg.NdkRoot = ""
	delete(cfg.Env, domain.NdkEnvVar)

	f := newFixture(t, testProject(t.TempDir()), cfg)
	f.planner.Register(debugVariant())

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	err = plan.Actions[domain.NewInternedString("build:debug")](context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NDK not found")
}

func TestActions_InstallPackageNeedsNoNdk(t *testing.T) {
	cfg := resolvedToolchain()
	cfg.NdkRoot = ""
	delete(cfg.Env, domain.NdkEnvVar)

	f := newFixture(t, testProject(t.TempDir()), cfg)
	f.planner.Register(debugVariant())

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)
	err = plan.Actions[domain.NewInternedString("install-package:debug")](context.Background())
	require.NoError(t, err)
}

func TestActions_HookRunsWithoutToolchain(t *testing.T) {
	// Host compile steps are the consuming build's own commands; they
	// must not require a resolved toolchain.
	f := newFixture(t, testProject(t.TempDir()), domain.ToolchainConfig{})
	f.planner.Register(debugVariant())

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	f.executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)
	err = plan.Actions[domain.NewInternedString("compile-sources:debug")](context.Background())
	require.NoError(t, err)
}

func TestActions_CopyArtifactsSourceOrder(t *testing.T) {
	project := testProject(t.TempDir())
	f := newFixture(t, project, resolvedToolchain())
	f.planner.Register(debugVariant())

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	var spec domain.ArtifactCopySpec
	f.installer.EXPECT().Install(gomock.Any()).DoAndReturn(func(s domain.ArtifactCopySpec) error {
		spec = s
		return nil
	})
	require.NoError(t, plan.Actions[domain.NewInternedString("copy-artifacts:debug")](context.Background()))

	require.Len(t, spec.Sources, 3)
	assert.Equal(t, domain.PrebuiltLibsDir(project.SourceDir, "armeabi-v7a"), spec.Sources[0].Dir)
	assert.Equal(t, filepath.Join("/opt/toolchain", domain.BundledLibsDirName), spec.Sources[1].Dir)
	assert.Equal(t, domain.ConfigurationOutputDir(project.SourceDir, "debug"), spec.Sources[2].Dir)
	assert.Equal(t, domain.JniLibsDir(project.Root, "armeabi-v7a"), spec.Dest)
	assert.EqualValues(t, domain.ArtifactPerm, spec.Mode)
}

func TestActions_LinkRecreatedPerVariant(t *testing.T) {
	project := testProject(t.TempDir())
	f := newFixture(t, project, resolvedToolchain())
	f.planner.Register(debugVariant())

	plan, err := f.planner.Materialize()
	require.NoError(t, err)

	var link domain.GeneratedSourceLink
	f.linker.EXPECT().Relink(gomock.Any()).DoAndReturn(func(l domain.GeneratedSourceLink) error {
		link = l
		return nil
	})
	require.NoError(t, plan.Actions[domain.NewInternedString("link-generated-sources:debug")](context.Background()))

	assert.Equal(t, domain.GeneratedSourcesLinkPath(project.SourceDir), link.Path)
	assert.Equal(t, project.GeneratedSourcesDir("debug"), link.TargetDir)
}
