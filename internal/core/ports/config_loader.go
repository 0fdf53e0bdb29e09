package ports

import "go.trai.ch/swan/internal/core/domain"

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	// Load reads the swanfile found in the given directory and returns
	// the fully configured project, variants enumerated.
	Load(dir string) (*domain.Project, error)
}
