// Package config provides the configuration loader for freighter.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads freighter.yaml from the project root, applies defaults and
// returns the fully validated configuration.
func (l *Loader) Load(projectPath string) (*domain.ProjectConfig, error) {
	configPath := filepath.Join(projectPath, domain.ConfigFileName)
	if _, err := os.Stat(configPath); err != nil {
		return nil, domain.Detail(domain.ErrConfigNotFound, "path", configPath)
	}

	var file Freighterfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	if err := domain.ValidateProjectName(file.Project); err != nil {
		return nil, err
	}

	build, err := l.buildSpec(file.Build)
	if err != nil {
		return nil, err
	}

	compression := domain.CompressionNone
	if file.Push != nil && file.Push.Compression != "" {
		compression = domain.CompressionKind(file.Push.Compression)
	}
	if err := domain.ValidateCompression(compression); err != nil {
		return nil, err
	}

	return &domain.ProjectConfig{
		Name:            file.Project,
		Build:           build,
		Compression:     compression,
		RegistryURL:     domain.RegistryURL(file.RegistryURL),
		ControlPlaneURL: domain.ControlPlaneURL(file.ControlPlaneURL),
		WorkerURL:       domain.WorkerURL(file.WorkerURL),
	}, nil
}

func (l *Loader) buildSpec(dto *BuildDTO) (domain.BuildSpec, error) {
	if dto == nil {
		return domain.BuildSpec{}, domain.Detail(domain.ErrUnknownBuildKind, "kind", "")
	}

	var spec domain.BuildSpec
	switch domain.BuildKind(dto.Type) {
	case domain.BuildKindScript:
		spec = domain.BuildSpec{
			Kind:   domain.BuildKindScript,
			Script: l.scriptSpec(dto),
		}
	case domain.BuildKindCargo:
		spec = domain.BuildSpec{
			Kind:  domain.BuildKindCargo,
			Cargo: cargoSpec(dto),
		}
	default:
		return domain.BuildSpec{}, domain.Detail(domain.ErrUnknownBuildKind, "kind", dto.Type)
	}

	if err := spec.Validate(); err != nil {
		return domain.BuildSpec{}, err
	}
	return spec, nil
}

func (l *Loader) scriptSpec(dto *BuildDTO) *domain.ScriptSpec {
	// An absent timeout gets the default; an explicit zero or negative
	// value survives into Validate and is rejected there.
	timeout := domain.DefaultScriptTimeout
	if dto.TimeoutSeconds != nil {
		timeout = time.Duration(*dto.TimeoutSeconds) * time.Second
	}
	if timeout > domain.LongTimeoutThreshold {
		l.Logger.Warn(fmt.Sprintf("build timeout of %s is unusually long", timeout))
	}

	shell := dto.Shell
	if shell == "" {
		shell = domain.DefaultShell()
	}

	return &domain.ScriptSpec{
		Script:     dto.Script,
		Timeout:    timeout,
		WorkingDir: dto.WorkingDir,
		Shell:      shell,
	}
}

func cargoSpec(dto *BuildDTO) *domain.CargoSpec {
	profile := domain.ProfileRelease
	if dto.Profile != "" {
		profile = domain.Profile(dto.Profile)
	}

	return &domain.CargoSpec{
		Target:  dto.Target,
		Profile: profile,
		Package: dto.Package,
		Binary:  dto.Binary,
	}
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into target.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
