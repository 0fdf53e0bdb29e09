package domain

import "path/filepath"

// ToolchainConfig is the resolved location of the Swift Android toolchain
// and the Android NDK, plus the environment every toolchain invocation
// runs with. Built once per build invocation; immutable thereafter.
// Unresolved locations are empty strings; consumers fail at use time,
// never at construction.
type ToolchainConfig struct {
	Root         string
	NdkRoot      string
	ToolsVersion string
	Env          map[string]string
}

// ToolchainPresent reports whether a toolchain root was resolved.
func (c ToolchainConfig) ToolchainPresent() bool {
	return c.Root != ""
}

// NdkPresent reports whether an NDK root was resolved.
func (c ToolchainConfig) NdkPresent() bool {
	return c.NdkRoot != ""
}

// ToolsManager returns the tools-manager executable path.
func (c ToolchainConfig) ToolsManager() string {
	return filepath.Join(c.Root, "bin", "swift-android")
}

// BuildExecutable returns the build executable path.
func (c ToolchainConfig) BuildExecutable() string {
	return filepath.Join(c.Root, "bin", "swift-build")
}

// InstallExecutable returns the install executable path.
func (c ToolchainConfig) InstallExecutable() string {
	return filepath.Join(c.Root, "bin", "swift-install")
}

// BundledLibsDir returns the toolchain-bundled Swift runtime library directory.
func (c ToolchainConfig) BundledLibsDir() string {
	return filepath.Join(c.Root, BundledLibsDirName)
}
