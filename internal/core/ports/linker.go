package ports

import "go.trai.ch/swan/internal/core/domain"

// Linker maintains the generated-sources symbolic link.
//
//go:generate go run go.uber.org/mock/mockgen -source=linker.go -destination=mocks/mock_linker.go -package=mocks
type Linker interface {
	// Relink removes any existing link at the fixed path and creates a
	// fresh one pointing at the target. Absence of the old link is not an
	// error.
	Relink(link domain.GeneratedSourceLink) error
}
