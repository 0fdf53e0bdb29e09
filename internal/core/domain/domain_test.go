package domain_test

import (
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/swan/internal/core/domain"
)

func TestSelectCompileHook_PreferenceOrder(t *testing.T) {
	tests := []struct {
		name  string
		hooks map[domain.CompileHookKind][]string
		want  domain.CompileHookKind
	}{
		{
			name: "ndk compile wins over all",
			hooks: map[domain.CompileHookKind][]string{
				domain.HookNdkCompile:          {"ndk-build"},
				domain.HookExternalNativeBuild: {"cmake", "--build", "."},
				domain.HookSourcesCompile:      {"javac"},
			},
			want: domain.HookNdkCompile,
		},
		{
			name: "external native build beats sources compile",
			hooks: map[domain.CompileHookKind][]string{
				domain.HookExternalNativeBuild: {"cmake", "--build", "."},
				domain.HookSourcesCompile:      {"javac"},
			},
			want: domain.HookExternalNativeBuild,
		},
		{
			name: "sources compile as last resort",
			hooks: map[domain.CompileHookKind][]string{
				domain.HookSourcesCompile: {"javac"},
			},
			want: domain.HookSourcesCompile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := domain.BuildVariant{Name: "debug", Hooks: tt.hooks}
			kind, cmd, err := domain.SelectCompileHook(v)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if kind != tt.want {
				t.Errorf("expected hook %s, got %s", tt.want, kind)
			}
			if len(cmd) == 0 {
				t.Error("expected a non-empty hook command")
			}
		})
	}
}

func TestSelectCompileHook_AllAbsent(t *testing.T) {
	v := domain.BuildVariant{Name: "release"}
	_, _, err := domain.SelectCompileHook(v)
	if err == nil {
		t.Fatal("expected error when no hook is declared, got nil")
	}
	if !strings.Contains(err.Error(), "no compile step declared") {
		t.Fatalf("expected compile-hook-missing error, got %v", err)
	}
}

func TestParseCompileHookKind(t *testing.T) {
	for _, name := range []string{"ndk-compile", "external-native-build", "compile-sources"} {
		kind, err := domain.ParseCompileHookKind(name)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", name, err)
		}
		if kind.String() != name {
			t.Errorf("round trip mismatch: %q -> %q", name, kind.String())
		}
	}

	if _, err := domain.ParseCompileHookKind("link-time-optimize"); err == nil {
		t.Error("expected error for unknown hook name, got nil")
	} else if !strings.Contains(err.Error(), "unknown compile hook") {
		t.Errorf("expected unknown-compile-hook error, got %v", err)
	}
}

func TestBuildVariant_Configuration(t *testing.T) {
	debug := domain.BuildVariant{Name: "debug", Debuggable: true}
	release := domain.BuildVariant{Name: "release"}

	if got := debug.Configuration(); got != "debug" {
		t.Errorf("expected debug configuration, got %q", got)
	}
	if got := release.Configuration(); got != "release" {
		t.Errorf("expected release configuration, got %q", got)
	}
}

func TestToolchainConfig_Predicates(t *testing.T) {
	var unresolved domain.ToolchainConfig
	if unresolved.ToolchainPresent() || unresolved.NdkPresent() {
		t.Error("empty config must not report any location as present")
	}

	cfg := domain.ToolchainConfig{Root: "/opt/toolchain", NdkRoot: "/opt/ndk"}
	if !cfg.ToolchainPresent() || !cfg.NdkPresent() {
		t.Error("resolved config must report both locations as present")
	}
	if got := cfg.BuildExecutable(); got != filepath.Join("/opt/toolchain", "bin", "swift-build") {
		t.Errorf("unexpected build executable path: %q", got)
	}
}

func TestProject_GeneratedSourcesDir(t *testing.T) {
	p := &domain.Project{Root: "/app", CodegenBackend: domain.BackendApt}
	if got := p.GeneratedSourcesDir("debug"); got != filepath.Join("/app", "build/generated/source/apt", "debug") {
		t.Errorf("unexpected apt dir: %q", got)
	}

	p.CodegenBackend = domain.BackendKapt
	if got := p.GeneratedSourcesDir("debug"); got != filepath.Join("/app", "build/generated/ap_generated_sources", "debug", "out") {
		t.Errorf("unexpected kapt dir: %q", got)
	}
}

func TestLayout_Paths(t *testing.T) {
	src := domain.SwiftSourceDir("/app")
	if src != filepath.Join("/app", "src/main/swift") {
		t.Errorf("unexpected source dir: %q", src)
	}
	if got := domain.ConfigurationOutputDir(src, "release"); got != filepath.Join(src, ".build", "release") {
		t.Errorf("unexpected output dir: %q", got)
	}
	if got := domain.PrebuiltLibsDir(src, "armeabi-v7a"); got != filepath.Join(src, ".build", "jniLibs", "armeabi-v7a") {
		t.Errorf("unexpected prebuilt dir: %q", got)
	}
	if got := domain.JniLibsDir("/app", "armeabi-v7a"); got != filepath.Join("/app", "src/main/jniLibs", "armeabi-v7a") {
		t.Errorf("unexpected jniLibs dir: %q", got)
	}
}
