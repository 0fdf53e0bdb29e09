package domain

import "go.trai.ch/zerr"

var (
	// ErrTaskAlreadyExists is returned when attempting to add a node with an ID that already exists.
	ErrTaskAlreadyExists = zerr.New("task already exists")

	// ErrMissingDependency is returned when a node references a predecessor that doesn't exist in the graph.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCycleDetected is returned when a cycle is detected in the task dependency graph.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrTaskNotFound is returned when a requested task is not found in the graph.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrToolchainNotFound is returned by the first node that needs the Swift Android
	// toolchain when neither resolution source provided a location.
	ErrToolchainNotFound = zerr.New(
		"swift android toolchain not found: set " + ToolchainDirKey + " in " + PropertiesFileName +
			" or the " + ToolchainEnvVar + " environment variable")

	// ErrNdkNotFound is returned by the first node that needs the Android NDK
	// when neither resolution source provided a location.
	ErrNdkNotFound = zerr.New(
		"android NDK not found: set " + NdkDirKey + " in " + PropertiesFileName +
			" or the " + NdkEnvVar + " environment variable")

	// ErrCompileHookMissing is returned during graph materialization when a variant
	// declares none of the three candidate compile hooks.
	ErrCompileHookMissing = zerr.New("no compile step declared for variant")

	// ErrNoVariantsConfigured is returned when a build is requested but the project
	// declares no variants.
	ErrNoVariantsConfigured = zerr.New("no build variants configured")

	// ErrUnknownVariant is returned when a requested variant is not declared by the project.
	ErrUnknownVariant = zerr.New("unknown variant")

	// ErrInvalidVariantName is returned when a variant name contains invalid characters.
	ErrInvalidVariantName = zerr.New("variant name can only contain alphanumeric characters, hyphens and underscores")

	// ErrInvalidCleanStrategy is returned when the clean strategy is neither
	// "build-dir" nor "toolchain".
	ErrInvalidCleanStrategy = zerr.New("invalid clean strategy, expected 'build-dir' or 'toolchain'")

	// ErrInvalidCodegenBackend is returned when the codegen backend is neither
	// "apt" nor "kapt".
	ErrInvalidCodegenBackend = zerr.New("invalid codegen backend, expected 'apt' or 'kapt'")

	// ErrUnknownCompileHook is returned when a configured hook name is not one of
	// the three candidate kinds.
	ErrUnknownCompileHook = zerr.New("unknown compile hook, expected 'ndk-compile', 'external-native-build' or 'compile-sources'")

	// ErrMissingToolsVersion is returned when the project does not pin a toolchain
	// tools version.
	ErrMissingToolsVersion = zerr.New("missing tools version")

	// ErrConfigReadFailed is returned when the project configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the project configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrOverridesReadFailed is returned when the overrides file cannot be read.
	ErrOverridesReadFailed = zerr.New("failed to read overrides file")

	// ErrOverridesWriteFailed is returned when the overrides file cannot be written.
	ErrOverridesWriteFailed = zerr.New("failed to write overrides file")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
