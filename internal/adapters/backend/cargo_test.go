//go:build unix

package backend_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/freighter/internal/adapters/backend"
	"go.trai.ch/freighter/internal/adapters/runner"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports/mocks"
	"go.trai.ch/zerr"
)

func cargoProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"demo\"\n"), 0o644))
	return dir
}

func TestCargoBuild_MissingManifestFailsBeforeSpawn(t *testing.T) {
	ctrl := gomock.NewController(t)
	run := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)

	b := backend.NewCargoBuild(&domain.CargoSpec{Profile: domain.ProfileRelease}, run, log)
	err := b.Build(context.Background(), t.TempDir(), t.TempDir())

	assert.ErrorIs(t, err, domain.ErrMissingManifest)
}

func TestCargoBuild_ToolchainUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	run := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)

	run.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.Join(
		domain.Detail(domain.ErrProcessSpawn, "command", "cargo"),
		exec.ErrNotFound,
	))

	b := backend.NewCargoBuild(&domain.CargoSpec{Profile: domain.ProfileRelease}, run, log)
	err := b.Build(context.Background(), cargoProject(t), t.TempDir())

	assert.ErrorIs(t, err, domain.ErrToolchainUnavailable)
}

func TestCargoBuild_SelectionFailures(t *testing.T) {
	tests := []struct {
		name     string
		spec     domain.CargoSpec
		metadata string
		wantErr  error
	}{
		{
			name:     "no packages",
			spec:     domain.CargoSpec{Profile: domain.ProfileRelease},
			metadata: `{"packages":[]}`,
			wantErr:  domain.ErrNoPackagesFound,
		},
		{
			name:     "configured package missing",
			spec:     domain.CargoSpec{Profile: domain.ProfileRelease, Package: "other"},
			metadata: `{"packages":[{"name":"demo","manifest_path":"/x/Cargo.toml","targets":[{"name":"demo","kind":["bin"]}]}]}`,
			wantErr:  domain.ErrPackageNotFound,
		},
		{
			name:     "configured binary missing",
			spec:     domain.CargoSpec{Profile: domain.ProfileRelease, Binary: "other"},
			metadata: `{"packages":[{"name":"demo","manifest_path":"/x/Cargo.toml","targets":[{"name":"demo","kind":["bin"]}]}]}`,
			wantErr:  domain.ErrBinaryTargetNotFound,
		},
		{
			name:     "no binary targets",
			spec:     domain.CargoSpec{Profile: domain.ProfileRelease},
			metadata: `{"packages":[{"name":"demo","manifest_path":"/x/Cargo.toml","targets":[{"name":"demo","kind":["lib"]}]}]}`,
			wantErr:  domain.ErrNoBinaryTargets,
		},
		{
			name:     "malformed metadata",
			spec:     domain.CargoSpec{Profile: domain.ProfileRelease},
			metadata: `not json`,
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			run := mocks.NewMockProcessRunner(ctrl)
			log := mocks.NewMockLogger(ctrl)

			run.EXPECT().Run(gomock.Any(), gomock.Any()).
				Return(&domain.ProcessResult{Stdout: []byte(tt.metadata)}, nil)

			b := backend.NewCargoBuild(&tt.spec, run, log)
			err := b.Build(context.Background(), cargoProject(t), t.TempDir())

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestCargoBuild_SelectionErrorsListAvailableTargets(t *testing.T) {
	tests := []struct {
		name        string
		spec        domain.CargoSpec
		metadata    string
		wantErr     error
		wantTargets string
	}{
		{
			name:        "no binary targets",
			spec:        domain.CargoSpec{Profile: domain.ProfileRelease},
			metadata:    `{"packages":[{"name":"demo","manifest_path":"/x/Cargo.toml","targets":[{"name":"demo-lib","kind":["lib"]},{"name":"docs","kind":["example"]}]}]}`,
			wantErr:     domain.ErrNoBinaryTargets,
			wantTargets: "demo-lib, docs",
		},
		{
			name:        "configured binary missing",
			spec:        domain.CargoSpec{Profile: domain.ProfileRelease, Binary: "other"},
			metadata:    `{"packages":[{"name":"demo","manifest_path":"/x/Cargo.toml","targets":[{"name":"server","kind":["bin"]},{"name":"worker","kind":["bin"]}]}]}`,
			wantErr:     domain.ErrBinaryTargetNotFound,
			wantTargets: "server, worker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			run := mocks.NewMockProcessRunner(ctrl)
			log := mocks.NewMockLogger(ctrl)

			run.EXPECT().Run(gomock.Any(), gomock.Any()).
				Return(&domain.ProcessResult{Stdout: []byte(tt.metadata)}, nil)

			b := backend.NewCargoBuild(&tt.spec, run, log)
			err := b.Build(context.Background(), cargoProject(t), t.TempDir())

			require.ErrorIs(t, err, tt.wantErr)

			var z *zerr.Error
			require.ErrorAs(t, err, &z)
			assert.Equal(t, tt.wantTargets, z.Metadata()["available_targets"])
		})
	}
}

func TestCargoBuild_PackageAndBinarySelection(t *testing.T) {
	ctrl := gomock.NewController(t)
	run := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	project := cargoProject(t)
	manifest := filepath.Join(project, "Cargo.toml")

	metadata := fmt.Sprintf(`{"packages":[
		{"name":"helper","manifest_path":"/elsewhere/Cargo.toml","targets":[{"name":"helper","kind":["bin"]}]},
		{"name":"demo","manifest_path":%q,"targets":[
			{"name":"demo-lib","kind":["lib"]},
			{"name":"server","kind":["bin"]},
			{"name":"worker","kind":["bin"]}
		]}
	]}`, manifest)

	var buildSpec domain.ProcessSpec
	gomock.InOrder(
		run.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&domain.ProcessResult{Stdout: []byte(metadata)}, nil),
		run.EXPECT().Run(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, spec domain.ProcessSpec) (*domain.ProcessResult, error) {
				buildSpec = spec
				// Simulate the compiler producing the binary.
				binPath := filepath.Join(project, "target", "release", "server")
				if err := os.MkdirAll(filepath.Dir(binPath), 0o750); err != nil {
					return nil, err
				}
				return &domain.ProcessResult{}, os.WriteFile(binPath, []byte("elf"), 0o755)
			}),
	)

	out := t.TempDir()
	b := backend.NewCargoBuild(&domain.CargoSpec{Profile: domain.ProfileRelease}, run, log)
	require.NoError(t, b.Build(context.Background(), project, out))

	// The manifest-path match beats the first-listed package, and the
	// first bin target wins among the package's targets.
	assert.Contains(t, buildSpec.Args, "--package")
	assert.Contains(t, buildSpec.Args, "demo")
	assert.Contains(t, buildSpec.Args, "--bin")
	assert.Contains(t, buildSpec.Args, "server")
	assert.Contains(t, buildSpec.Args, "--release")

	staged, err := os.ReadFile(filepath.Join(out, domain.ArtifactFileName))
	require.NoError(t, err)
	assert.Equal(t, "elf", string(staged))
}

func TestCargoBuild_BinaryNotProduced(t *testing.T) {
	ctrl := gomock.NewController(t)
	run := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	project := cargoProject(t)
	metadata := fmt.Sprintf(`{"packages":[{"name":"demo","manifest_path":%q,"targets":[{"name":"demo","kind":["bin"]}]}]}`,
		filepath.Join(project, "Cargo.toml"))

	gomock.InOrder(
		run.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&domain.ProcessResult{Stdout: []byte(metadata)}, nil),
		run.EXPECT().Run(gomock.Any(), gomock.Any()).
			Return(&domain.ProcessResult{}, nil),
	)

	b := backend.NewCargoBuild(&domain.CargoSpec{Profile: domain.ProfileRelease}, run, log)
	err := b.Build(context.Background(), project, t.TempDir())

	assert.ErrorIs(t, err, domain.ErrBinaryNotProduced)
}

// TestCargoBuild_EndToEnd exercises the full backend against a stand-in
// cargo binary placed on PATH, covering metadata, compilation and staging.
func TestCargoBuild_EndToEnd(t *testing.T) {
	binDir := t.TempDir()
	fakeCargo := `#!/bin/sh
case "$1" in
metadata)
	printf '{"packages":[{"name":"demo","manifest_path":"%s/Cargo.toml","targets":[{"name":"demo","kind":["bin"]}]}]}' "$PWD"
	;;
build)
	mkdir -p target/release
	printf 'compiled' > target/release/demo
	;;
esac
`
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "cargo"), []byte(fakeCargo), 0o755))
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	project := cargoProject(t)
	out := t.TempDir()

	b := backend.NewCargoBuild(&domain.CargoSpec{Profile: domain.ProfileRelease}, runner.NewRunner(), log)
	require.NoError(t, b.Build(context.Background(), project, out))

	staged, err := os.ReadFile(filepath.Join(out, domain.ArtifactFileName))
	require.NoError(t, err)
	assert.Equal(t, "compiled", string(staged))

	info, err := os.Stat(filepath.Join(out, domain.ArtifactFileName))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100, "staged binary should be executable")
}

func TestBackendFactory(t *testing.T) {
	ctrl := gomock.NewController(t)
	run := mocks.NewMockProcessRunner(ctrl)
	log := mocks.NewMockLogger(ctrl)

	script, err := backend.New(domain.BuildSpec{
		Kind:   domain.BuildKindScript,
		Script: scriptSpec("make"),
	}, run, log)
	require.NoError(t, err)
	assert.IsType(t, &backend.ScriptBuild{}, script)

	cargo, err := backend.New(domain.BuildSpec{
		Kind:  domain.BuildKindCargo,
		Cargo: &domain.CargoSpec{Profile: domain.ProfileRelease},
	}, run, log)
	require.NoError(t, err)
	assert.IsType(t, &backend.CargoBuild{}, cargo)

	_, err = backend.New(domain.BuildSpec{Kind: "docker"}, run, log)
	assert.ErrorIs(t, err, domain.ErrUnknownBuildKind)
}
