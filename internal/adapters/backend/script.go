package backend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports"
	"go.trai.ch/zerr"
)

// Environment variables exported to build scripts.
const (
	// OutputEnv points at the staging directory the script must fill.
	OutputEnv = "OUTPUT"

	// ProjectPathEnv points at the project root.
	ProjectPathEnv = "PROJECT_PATH"

	// TempPathEnv points at a scratch directory.
	TempPathEnv = "TEMP_PATH"
)

// deniedFragments are script fragments that trigger a warning before the
// script runs. Matching is substring based and advisory only, not a sandbox.
var deniedFragments = []string{
	"rm -rf /",
	"format",
	"del /f /s /q",
	"sudo",
}

// ScriptBuild runs a user-supplied shell command as the build step.
type ScriptBuild struct {
	spec   *domain.ScriptSpec
	runner ports.ProcessRunner
	logger ports.Logger
}

// NewScriptBuild creates a script backend for the given spec.
func NewScriptBuild(spec *domain.ScriptSpec, run ports.ProcessRunner, log ports.Logger) *ScriptBuild {
	return &ScriptBuild{spec: spec, runner: run, logger: log}
}

// Build validates its inputs, then runs the script with the pipeline
// environment exported and stdio passed through. All validation happens
// before any process is spawned.
func (b *ScriptBuild) Build(ctx context.Context, projectPath, outputPath string) error {
	if err := validateProjectPath(projectPath); err != nil {
		return err
	}

	workDir, err := resolveWorkDir(projectPath, b.spec.WorkingDir)
	if err != nil {
		return err
	}

	for _, fragment := range deniedFragments {
		if strings.Contains(b.spec.Script, fragment) {
			b.logger.Warn(fmt.Sprintf("build script contains %q, proceeding anyway", fragment))
		}
	}

	absProject, err := filepath.Abs(projectPath)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve project path")
	}
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve output path")
	}

	_, err = b.runner.Run(ctx, domain.ProcessSpec{
		Command: b.spec.Shell,
		Args:    shellArgs(b.spec.Script),
		Dir:     workDir,
		Env: []string{
			OutputEnv + "=" + absOutput,
			ProjectPathEnv + "=" + absProject,
			TempPathEnv + "=" + os.TempDir(),
		},
		Timeout: b.spec.Timeout,
		Stdio:   domain.StdioInherit,
	})
	if err != nil {
		return zerr.Wrap(err, "build script failed")
	}

	empty, err := isEmptyDir(absOutput)
	if err == nil && empty {
		b.logger.Warn("build script produced no artifacts")
	}

	return nil
}

// resolveWorkDir resolves the declared working directory against the project
// root. The declared path must stay inside the root after cleaning, same
// rule the archive extractor applies to entry names, and must exist.
func resolveWorkDir(projectPath, declared string) (string, error) {
	if declared == "" {
		return projectPath, nil
	}

	cleaned := filepath.Clean(declared)
	if cleaned == "." {
		return projectPath, nil
	}
	if !filepath.IsLocal(cleaned) {
		return "", domain.Detail(domain.ErrWorkingDirectoryEscapes, "working_directory", declared)
	}

	workDir := filepath.Join(projectPath, cleaned)
	ok, err := isDir(workDir)
	if err != nil || !ok {
		return "", domain.Detail(domain.ErrMissingWorkingDirectory, "path", workDir)
	}
	return workDir, nil
}

// shellArgs returns the shell flag and script for the current platform.
func shellArgs(script string) []string {
	if runtime.GOOS == "windows" {
		return []string{"/C", script}
	}
	return []string{"-c", script}
}

func isDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func isEmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, err
	}
	return len(entries) == 0, nil
}
