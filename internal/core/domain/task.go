package domain

// TaskKind distinguishes how a node's work is performed at execution time.
type TaskKind string

const (
	// KindProcess nodes launch exactly one external command.
	KindProcess TaskKind = "process"
	// KindFilesystem nodes perform exactly one local filesystem mutation.
	KindFilesystem TaskKind = "filesystem"
)

// TaskNode is a pure description of one build step: what to run, where,
// with which environment, and which nodes must complete first. The node
// itself performs no I/O; execution is the scheduler's concern.
// It uses InternedString for fields that are frequently repeated to save memory.
type TaskNode struct {
	ID         InternedString
	Kind       TaskKind
	WorkingDir string
	Command    []string
	Env        map[string]string

	// Inputs and Outputs are glob patterns relative to WorkingDir.
	Inputs  []string
	Outputs []string

	DependsOn []InternedString

	// Gated marks nodes whose external invocation is subject to the
	// incremental gate. Ungated nodes always run.
	Gated bool

	// WritesSourceTree marks nodes that mutate the shared Swift source
	// tree or its .build cache. The scheduler admits at most one such
	// node at a time.
	WritesSourceTree bool
}
