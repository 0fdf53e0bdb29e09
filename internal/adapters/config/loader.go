// Package config provides the swan.yaml configuration loader.
package config

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"go.trai.ch/swan/internal/core/domain"
	"go.trai.ch/swan/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

var variantNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	// Filename overrides the default swan.yaml name. Used for testing.
	Filename string

	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the swanfile from the given directory and returns the fully
// configured project with its variants enumerated.
func (l *Loader) Load(dir string) (*domain.Project, error) {
	filename := l.Filename
	if filename == "" {
		filename = domain.SwanFileName
	}
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var swanfile Swanfile
	if err := yaml.Unmarshal(data, &swanfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	return l.build(dir, &swanfile)
}

func (l *Loader) build(dir string, swanfile *Swanfile) (*domain.Project, error) {
	root := dir
	if swanfile.Root != "" {
		root = filepath.Join(dir, swanfile.Root)
	}

	sourceDir := domain.SwiftSourceDir(root)
	if swanfile.SourceDir != "" {
		sourceDir = filepath.Join(root, swanfile.SourceDir)
	}

	abi := swanfile.ABI
	if abi == "" {
		abi = "armeabi-v7a"
	}

	if swanfile.ToolsVersion == "" {
		return nil, domain.ErrMissingToolsVersion
	}

	backend, err := parseCodegen(swanfile.Codegen)
	if err != nil {
		return nil, err
	}

	strategy, err := parseClean(swanfile.Clean)
	if err != nil {
		return nil, err
	}

	variants, err := l.buildVariants(swanfile.Variants)
	if err != nil {
		return nil, err
	}

	return &domain.Project{
		Root:           root,
		SourceDir:      sourceDir,
		ABI:            abi,
		ToolsVersion:   swanfile.ToolsVersion,
		CodegenBackend: backend,
		CleanStrategy:  strategy,
		Variants:       variants,
	}, nil
}

func (l *Loader) buildVariants(dtos map[string]VariantDTO) ([]domain.BuildVariant, error) {
	if len(dtos) == 0 {
		l.logger.Warn("no build variants declared")
	}

	names := make([]string, 0, len(dtos))
	for name := range dtos {
		names = append(names, name)
	}
	// Deterministic variant order regardless of map iteration.
	sort.Strings(names)

	variants := make([]domain.BuildVariant, 0, len(names))
	for _, name := range names {
		if !variantNamePattern.MatchString(name) {
			return nil, zerr.With(domain.ErrInvalidVariantName, "variant", name)
		}

		dto := dtos[name]
		hooks := make(map[domain.CompileHookKind][]string, len(dto.Hooks))
		for hookName, cmd := range dto.Hooks {
			kind, err := domain.ParseCompileHookKind(hookName)
			if err != nil {
				return nil, zerr.With(err, "variant", name)
			}
			hooks[kind] = cmd
		}

		variants = append(variants, domain.BuildVariant{
			Name:              name,
			Debuggable:        dto.Debuggable,
			ExtraBuildFlags:   dto.BuildFlags,
			ExtraInstallFlags: dto.InstallFlags,
			Hooks:             hooks,
		})
	}

	return variants, nil
}

func parseCodegen(value string) (domain.CodegenBackend, error) {
	switch value {
	case "", string(domain.BackendApt):
		return domain.BackendApt, nil
	case string(domain.BackendKapt):
		return domain.BackendKapt, nil
	default:
		return "", zerr.With(domain.ErrInvalidCodegenBackend, "codegen", value)
	}
}

func parseClean(value string) (domain.CleanStrategy, error) {
	switch value {
	case "", string(domain.CleanBuildDir):
		return domain.CleanBuildDir, nil
	case string(domain.CleanToolchain):
		return domain.CleanToolchain, nil
	default:
		return "", zerr.With(domain.ErrInvalidCleanStrategy, "clean", value)
	}
}
