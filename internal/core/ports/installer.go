package ports

import "go.trai.ch/swan/internal/core/domain"

// Installer executes an artifact copy specification.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install copies matching files from each source into the destination
	// in order, later sources overwriting earlier ones on name collision.
	Install(spec domain.ArtifactCopySpec) error
}
