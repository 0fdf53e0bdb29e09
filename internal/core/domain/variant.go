package domain

// BuildVariant is one named build configuration of the consuming Android
// application, selected flags included. Immutable once enumerated.
type BuildVariant struct {
	Name              string
	Debuggable        bool
	ExtraBuildFlags   []string
	ExtraInstallFlags []string

	// Hooks declares which host compile steps exist for this variant,
	// keyed by hook kind, each with the command that step runs.
	Hooks map[CompileHookKind][]string
}

// Configuration returns the toolchain configuration name selected by the
// debuggable state.
func (v BuildVariant) Configuration() string {
	if v.Debuggable {
		return "debug"
	}
	return "release"
}
