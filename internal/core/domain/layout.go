package domain

import "path/filepath"

const (
	// SwanFileName is the name of the project configuration file.
	SwanFileName = "swan.yaml"

	// PropertiesFileName is the name of the local overrides file.
	PropertiesFileName = "local.properties"

	// ToolchainDirKey is the overrides-file key for the toolchain root.
	ToolchainDirKey = "toolchain.dir"

	// NdkDirKey is the overrides-file key for the NDK root.
	NdkDirKey = "ndk.dir"

	// ToolchainEnvVar is the environment fallback for the toolchain root.
	ToolchainEnvVar = "SWIFT_ANDROID_HOME"

	// NdkEnvVar is the environment fallback for the NDK root.
	NdkEnvVar = "ANDROID_NDK_HOME"

	// SwiftSourceDirName is the Swift package location relative to the Android module root.
	SwiftSourceDirName = "src/main/swift"

	// SwiftBuildDirName is the toolchain's local build cache inside the source tree.
	SwiftBuildDirName = ".build"

	// JniLibsDirName is the Android native-library destination relative to the module root.
	JniLibsDirName = "src/main/jniLibs"

	// PrebuiltLibsDirName is the ABI-specific pre-built library directory
	// inside the build cache.
	PrebuiltLibsDirName = "jniLibs"

	// BundledLibsDirName is the toolchain-bundled Swift runtime library
	// directory relative to the toolchain root.
	BundledLibsDirName = "usr/lib/swift/android"

	// GeneratedSourcesLinkName is the fixed link name inside the build cache
	// through which the toolchain sees annotation-processor output.
	GeneratedSourcesLinkName = "generated-sources"

	// AptGeneratedDirName is the generated-sources parent for the apt backend,
	// relative to the Android module root.
	AptGeneratedDirName = "build/generated/source/apt"

	// KaptGeneratedDirName is the generated-sources parent for the kapt-style
	// backend, relative to the Android module root.
	KaptGeneratedDirName = "build/generated/ap_generated_sources"

	// StateFileName is the incremental-gate fingerprint store file, kept
	// inside the build cache.
	StateFileName = "swan_state.json"

	// DirPerm is the default permission for created directories (rwxr-x---).
	DirPerm = 0o750

	// ArtifactPerm is the permission applied to every installed library (rw-r--r--).
	ArtifactPerm = 0o644
)

// SwiftSourceDir returns the Swift package directory for a module root.
func SwiftSourceDir(moduleRoot string) string {
	return filepath.Join(moduleRoot, SwiftSourceDirName)
}

// SwiftBuildDir returns the toolchain's local build cache for a source tree.
func SwiftBuildDir(sourceDir string) string {
	return filepath.Join(sourceDir, SwiftBuildDirName)
}

// ConfigurationOutputDir returns the per-configuration output directory
// inside the build cache ("debug" or "release").
func ConfigurationOutputDir(sourceDir, configuration string) string {
	return filepath.Join(SwiftBuildDir(sourceDir), configuration)
}

// PrebuiltLibsDir returns the ABI-specific pre-built library directory
// inside the build cache.
func PrebuiltLibsDir(sourceDir, abi string) string {
	return filepath.Join(SwiftBuildDir(sourceDir), PrebuiltLibsDirName, abi)
}

// JniLibsDir returns the ABI-specific native-library destination inside the
// Android source tree.
func JniLibsDir(moduleRoot, abi string) string {
	return filepath.Join(moduleRoot, JniLibsDirName, abi)
}

// GeneratedSourcesLinkPath returns the fixed symbolic-link path inside the
// build cache.
func GeneratedSourcesLinkPath(sourceDir string) string {
	return filepath.Join(SwiftBuildDir(sourceDir), GeneratedSourcesLinkName)
}

// StateFilePath returns the fingerprint store location for a source tree.
func StateFilePath(sourceDir string) string {
	return filepath.Join(SwiftBuildDir(sourceDir), StateFileName)
}
