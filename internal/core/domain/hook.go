package domain

import "go.trai.ch/zerr"

// CompileHookKind enumerates the three candidate host compile steps a
// variant's artifact chain can attach to.
type CompileHookKind int

const (
	// HookNdkCompile is the NDK compile step.
	HookNdkCompile CompileHookKind = iota
	// HookExternalNativeBuild is the external native build step.
	HookExternalNativeBuild
	// HookSourcesCompile is the plain Java/Kotlin sources compile step.
	HookSourcesCompile
)

// hookPreference is the fixed evaluation order for hook selection.
var hookPreference = []CompileHookKind{
	HookNdkCompile,
	HookExternalNativeBuild,
	HookSourcesCompile,
}

// String returns the configuration name of the hook kind.
func (k CompileHookKind) String() string {
	switch k {
	case HookNdkCompile:
		return "ndk-compile"
	case HookExternalNativeBuild:
		return "external-native-build"
	case HookSourcesCompile:
		return "compile-sources"
	default:
		return "unknown"
	}
}

// ParseCompileHookKind maps a configuration name to its hook kind.
func ParseCompileHookKind(name string) (CompileHookKind, error) {
	switch name {
	case "ndk-compile":
		return HookNdkCompile, nil
	case "external-native-build":
		return HookExternalNativeBuild, nil
	case "compile-sources":
		return HookSourcesCompile, nil
	default:
		return 0, zerr.With(ErrUnknownCompileHook, "hook", name)
	}
}

// SelectCompileHook picks the compile step a variant's chain hooks into:
// NDK compile if declared, else external native build, else sources
// compile. First match wins. All three absent is a configuration error.
func SelectCompileHook(v BuildVariant) (CompileHookKind, []string, error) {
	for _, kind := range hookPreference {
		if cmd, ok := v.Hooks[kind]; ok {
			return kind, cmd, nil
		}
	}
	return 0, nil, zerr.With(ErrCompileHookMissing, "variant", v.Name)
}
