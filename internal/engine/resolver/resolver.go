// Package resolver locates the Swift Android toolchain and the NDK.
package resolver

import (
	"os"
	"path/filepath"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver produces an immutable ToolchainConfig from the local overrides
// file and the process environment. For each location the overrides file
// wins over the environment variable; neither being set leaves the
// location unresolved without raising an error. Consumers that need an
// unresolved location fail at use time.
type Resolver struct {
	overrides ports.OverridesStore
	getenv    func(string) string
}

// New creates a Resolver reading fallbacks from the process environment.
func New(overrides ports.OverridesStore) *Resolver {
	return newWithEnv(overrides, os.Getenv)
}

func newWithEnv(overrides ports.OverridesStore, getenv func(string) string) *Resolver {
	return &Resolver{
		overrides: overrides,
		getenv:    getenv,
	}
}

// Resolve builds the toolchain configuration for the project. It is
// called once per build invocation; the returned value never changes
// afterwards.
func (r *Resolver) Resolve(project *domain.Project) (domain.ToolchainConfig, error) {
	values, err := r.overrides.Load()
	if err != nil {
		return domain.ToolchainConfig{}, err
	}

	root := values[domain.ToolchainDirKey]
	if root == "" {
		root = r.getenv(domain.ToolchainEnvVar)
	}

	ndk := values[domain.NdkDirKey]
	if ndk == "" {
		ndk = r.getenv(domain.NdkEnvVar)
	}

	env := make(map[string]string)
	if root != "" {
		env[domain.ToolchainEnvVar] = root
		// Prepended to the system PATH by the executor.
		env["PATH"] = filepath.Join(root, "bin")
	}
	if ndk != "" {
		env[domain.NdkEnvVar] = ndk
	}

	return domain.ToolchainConfig{
		Root:         root,
		NdkRoot:      ndk,
		ToolsVersion: project.ToolsVersion,
		Env:          env,
	}, nil
}

// UpdateProperties persists the resolved locations back into the
// overrides file, so later invocations (including from other tools) can
// read them without re-resolving from the environment. Unresolved
// locations are left out; nothing is written when the file is already
// up to date.
func (r *Resolver) UpdateProperties(cfg domain.ToolchainConfig) error {
	values, err := r.overrides.Load()
	if err != nil {
		return err
	}

	changed := false
	if cfg.ToolchainPresent() && values[domain.ToolchainDirKey] != cfg.Root {
		values[domain.ToolchainDirKey] = cfg.Root
		changed = true
	}
	if cfg.NdkPresent() && values[domain.NdkDirKey] != cfg.NdkRoot {
		values[domain.NdkDirKey] = cfg.NdkRoot
		changed = true
	}

	if !changed {
		return nil
	}
	return r.overrides.Save(values)
}

// RequireToolchain returns a fatal error naming both resolution sources
// when the toolchain root is unresolved.
func RequireToolchain(cfg domain.ToolchainConfig) error {
	if cfg.ToolchainPresent() {
		return nil
	}
	err := zerr.With(domain.ErrToolchainNotFound, "property_key", domain.ToolchainDirKey)
	return zerr.With(err, "env_var", domain.ToolchainEnvVar)
}

// RequireNdk returns a fatal error naming both resolution sources when
// the NDK root is unresolved.
func RequireNdk(cfg domain.ToolchainConfig) error {
	if cfg.NdkPresent() {
		return nil
	}
	err := zerr.With(domain.ErrNdkNotFound, "property_key", domain.NdkDirKey)
	return zerr.With(err, "env_var", domain.NdkEnvVar)
}
