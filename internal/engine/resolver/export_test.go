package resolver

import "go.trai.ch/swan/internal/core/ports"

// NewWithEnv exposes the environment-injecting constructor to tests.
func NewWithEnv(overrides ports.OverridesStore, getenv func(string) string) *Resolver {
	return newWithEnv(overrides, getenv)
}
