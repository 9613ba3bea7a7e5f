// Package backend implements the build backends that produce artifacts
// into a staging directory.
package backend

import (
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports"
)

// New constructs the backend selected by the build spec. The switch is
// exhaustive over domain.BuildKind; an unknown kind can only appear when a
// spec bypassed validation.
func New(spec domain.BuildSpec, run ports.ProcessRunner, log ports.Logger) (ports.BuildBackend, error) {
	switch spec.Kind {
	case domain.BuildKindScript:
		return NewScriptBuild(spec.Script, run, log), nil
	case domain.BuildKindCargo:
		return NewCargoBuild(spec.Cargo, run, log), nil
	default:
		return nil, domain.Detail(domain.ErrUnknownBuildKind, "kind", string(spec.Kind))
	}
}

// validateProjectPath checks that the project path exists and is a directory.
func validateProjectPath(projectPath string) error {
	ok, err := isDir(projectPath)
	if err != nil || !ok {
		return domain.Detail(domain.ErrProjectPathInvalid, "path", projectPath)
	}
	return nil
}
