package domain

import "path/filepath"

// CodegenBackend selects which generated-sources parent directory the
// annotation-processing step writes to.
type CodegenBackend string

const (
	// BackendApt is the classic annotation-processor output layout.
	BackendApt CodegenBackend = "apt"
	// BackendKapt is the kapt-style annotation-processor output layout.
	BackendKapt CodegenBackend = "kapt"
)

// CleanStrategy selects how the clean node removes toolchain build state.
// Exactly one strategy runs per clean invocation, never both.
type CleanStrategy string

const (
	// CleanBuildDir deletes the toolchain's local build-cache directory directly.
	CleanBuildDir CleanStrategy = "build-dir"
	// CleanToolchain invokes the toolchain's own clean subcommand.
	CleanToolchain CleanStrategy = "toolchain"
)

// Project is the fully configured build: module layout, toolchain pin,
// backend switches, and the enumerated variants. Computed once after
// configuration loading; immutable thereafter.
type Project struct {
	// Root is the Android module root directory.
	Root string

	// SourceDir is the Swift package directory. Defaults to
	// Root/src/main/swift when not overridden.
	SourceDir string

	// ABI is the target Android ABI, e.g. "armeabi-v7a".
	ABI string

	// ToolsVersion pins the toolchain tools installed before building.
	ToolsVersion string

	CodegenBackend CodegenBackend
	CleanStrategy  CleanStrategy

	Variants []BuildVariant
}

// Variant returns the declared variant with the given name.
func (p *Project) Variant(name string) (BuildVariant, bool) {
	for _, v := range p.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return BuildVariant{}, false
}

// GeneratedSourcesDir returns the annotation-processor output directory
// for a variant under the active codegen backend.
func (p *Project) GeneratedSourcesDir(variant string) string {
	if p.CodegenBackend == BackendKapt {
		return filepath.Join(p.Root, KaptGeneratedDirName, variant, "out")
	}
	return filepath.Join(p.Root, AptGeneratedDirName, variant)
}
