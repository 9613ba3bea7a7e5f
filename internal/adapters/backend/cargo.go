package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports"
	"go.trai.ch/zerr"
)

const manifestFileName = "Cargo.toml"

// cargoMetadata mirrors the fields of `cargo metadata --format-version=1`
// that package and binary selection needs.
type cargoMetadata struct {
	Packages []cargoPackage `json:"packages"`
}

type cargoPackage struct {
	Name         string        `json:"name"`
	ManifestPath string        `json:"manifest_path"`
	Targets      []cargoTarget `json:"targets"`
}

type cargoTarget struct {
	Name string   `json:"name"`
	Kind []string `json:"kind"`
}

// CargoBuild compiles a Rust project and stages the selected binary under
// the canonical artifact name.
type CargoBuild struct {
	spec   *domain.CargoSpec
	runner ports.ProcessRunner
	logger ports.Logger
}

// NewCargoBuild creates a cargo backend for the given spec.
func NewCargoBuild(spec *domain.CargoSpec, run ports.ProcessRunner, log ports.Logger) *CargoBuild {
	return &CargoBuild{spec: spec, runner: run, logger: log}
}

// Build resolves the target binary through cargo metadata, compiles it and
// copies it into the staging directory as the canonical artifact. Manifest
// and toolchain checks run before any compilation starts.
func (b *CargoBuild) Build(ctx context.Context, projectPath, outputPath string) error {
	if err := validateProjectPath(projectPath); err != nil {
		return err
	}

	manifestPath := filepath.Join(projectPath, manifestFileName)
	if _, err := os.Stat(manifestPath); err != nil {
		return domain.Detail(domain.ErrMissingManifest, "path", manifestPath)
	}

	meta, err := b.queryMetadata(ctx, projectPath)
	if err != nil {
		return err
	}

	pkg, err := b.selectPackage(meta, manifestPath)
	if err != nil {
		return err
	}

	binary, err := b.selectBinary(pkg)
	if err != nil {
		return err
	}

	b.logger.Info(fmt.Sprintf("building %s (binary %s, profile %s)", pkg.Name, binary, b.spec.Profile))

	if err := b.compile(ctx, projectPath, pkg.Name, binary); err != nil {
		return err
	}

	return b.stageBinary(projectPath, binary, outputPath)
}

// queryMetadata runs `cargo metadata` and decodes the package list.
func (b *CargoBuild) queryMetadata(ctx context.Context, projectPath string) (*cargoMetadata, error) {
	result, err := b.runner.Run(ctx, domain.ProcessSpec{
		Command: "cargo",
		Args:    []string{"metadata", "--no-deps", "--format-version=1"},
		Dir:     projectPath,
		Timeout: domain.ToolchainProbeTimeout,
		Stdio:   domain.StdioCapture,
	})
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, domain.ErrToolchainUnavailable
		}
		return nil, zerr.Wrap(err, "cargo metadata failed")
	}

	var meta cargoMetadata
	if err := json.Unmarshal(result.Stdout, &meta); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetadataParseFailed.Error())
	}
	return &meta, nil
}

// selectPackage picks the workspace package to build: a configured name
// wins, then the package whose manifest is the project root's, then the
// first listed package.
func (b *CargoBuild) selectPackage(meta *cargoMetadata, manifestPath string) (*cargoPackage, error) {
	if len(meta.Packages) == 0 {
		return nil, domain.ErrNoPackagesFound
	}

	if b.spec.Package != "" {
		for i := range meta.Packages {
			if meta.Packages[i].Name == b.spec.Package {
				return &meta.Packages[i], nil
			}
		}
		return nil, domain.Detail(domain.ErrPackageNotFound, "package", b.spec.Package)
	}

	for i := range meta.Packages {
		if sameFile(meta.Packages[i].ManifestPath, manifestPath) {
			return &meta.Packages[i], nil
		}
	}

	return &meta.Packages[0], nil
}

// selectBinary picks the binary target: a configured name must exist among
// the package's bin targets, otherwise the first bin target wins. Selection
// errors name the targets that do exist.
func (b *CargoBuild) selectBinary(pkg *cargoPackage) (string, error) {
	all := make([]string, 0, len(pkg.Targets))
	var bins []string
	for _, target := range pkg.Targets {
		all = append(all, target.Name)
		if slices.Contains(target.Kind, "bin") {
			bins = append(bins, target.Name)
		}
	}
	if len(bins) == 0 {
		err := domain.Detail(domain.ErrNoBinaryTargets, "package", pkg.Name)
		return "", zerr.With(err, "available_targets", strings.Join(all, ", "))
	}

	if b.spec.Binary != "" {
		if !slices.Contains(bins, b.spec.Binary) {
			err := domain.Detail(domain.ErrBinaryTargetNotFound, "package", pkg.Name)
			err = zerr.With(err, "binary", b.spec.Binary)
			return "", zerr.With(err, "available_targets", strings.Join(bins, ", "))
		}
		return b.spec.Binary, nil
	}

	return bins[0], nil
}

// compile runs the cargo build with stdio passed through so compiler
// diagnostics reach the user directly.
func (b *CargoBuild) compile(ctx context.Context, projectPath, pkg, binary string) error {
	args := []string{"build", "--package", pkg, "--bin", binary}
	if b.spec.Profile == domain.ProfileRelease {
		args = append(args, "--release")
	}
	if b.spec.Target != "" {
		args = append(args, "--target", b.spec.Target)
	}

	_, err := b.runner.Run(ctx, domain.ProcessSpec{
		Command: "cargo",
		Args:    args,
		Dir:     projectPath,
		Timeout: domain.ToolchainBuildTimeout,
		Stdio:   domain.StdioInherit,
	})
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return domain.ErrToolchainUnavailable
		}
		return errors.Join(domain.ErrBuildToolFailed, err)
	}
	return nil
}

// stageBinary copies the compiled binary into the staging directory under
// the canonical artifact name.
func (b *CargoBuild) stageBinary(projectPath, binary, outputPath string) error {
	parts := []string{projectPath, "target"}
	if b.spec.Target != "" {
		parts = append(parts, b.spec.Target)
	}
	parts = append(parts, b.spec.Profile.Dir(), binaryFileName(binary))
	builtPath := filepath.Join(parts...)

	src, err := os.Open(builtPath)
	if err != nil {
		return domain.Detail(domain.ErrBinaryNotProduced, "path", builtPath)
	}
	defer src.Close()

	destPath := filepath.Join(outputPath, domain.ArtifactFileName)
	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755) //nolint:gosec // staged binary must be executable
	if err != nil {
		return zerr.Wrap(err, "failed to stage binary")
	}
	defer dest.Close()

	if _, err := io.Copy(dest, src); err != nil {
		return zerr.Wrap(err, "failed to stage binary")
	}
	return nil
}

func binaryFileName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// sameFile compares two paths after cleaning and absolutizing.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
