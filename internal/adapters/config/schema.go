package config

// Swanfile represents the structure of the swan.yaml configuration file.
type Swanfile struct {
	Version      string                `yaml:"version"`
	Root         string                `yaml:"root"`
	SourceDir    string                `yaml:"sourceDir"`
	ABI          string                `yaml:"abi"`
	ToolsVersion string                `yaml:"toolsVersion"`
	Codegen      string                `yaml:"codegen"`
	Clean        string                `yaml:"clean"`
	Variants     map[string]VariantDTO `yaml:"variants"`
}

// VariantDTO represents a build variant definition in the configuration.
type VariantDTO struct {
	Debuggable   bool                `yaml:"debuggable"`
	BuildFlags   []string            `yaml:"buildFlags"`
	InstallFlags []string            `yaml:"installFlags"`
	Hooks        map[string][]string `yaml:"hooks"`
}
