package domain

import "io/fs"

// CopySource is one (directory, include-pattern) pair of an ArtifactCopySpec.
type CopySource struct {
	Dir     string
	Pattern string
}

// ArtifactCopySpec describes the installation of produced and bundled
// shared libraries into the Android native-library tree. Sources are
// ordered by precedence: when filenames collide, a later source
// overwrites the file placed by an earlier one. Every copied file gets
// Mode; pre-existing unrelated files in Dest are never touched.
type ArtifactCopySpec struct {
	Sources []CopySource
	Dest    string
	Mode    fs.FileMode
}

// GeneratedSourceLink is the symbolic link through which the toolchain
// sees annotation-processor output. Recreated on every build, never
// appended to or merged. TargetDir is absolute; the link is written with
// a target relative to the link's parent directory.
type GeneratedSourceLink struct {
	Path      string
	TargetDir string
}
