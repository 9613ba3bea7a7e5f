package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go.trai.ch/freighter/internal/adapters/config"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/core/ports/mocks"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return dir
}

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoader_ScriptBuild(t *testing.T) {
	dir := writeConfig(t, `
project: orders
build:
  type: script
  script: make all
  timeout_seconds: 60
  working_dir: svc
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "orders", cfg.Name)
	assert.Equal(t, domain.BuildKindScript, cfg.Build.Kind)
	require.NotNil(t, cfg.Build.Script)
	assert.Equal(t, "make all", cfg.Build.Script.Script)
	assert.Equal(t, 60*time.Second, cfg.Build.Script.Timeout)
	assert.Equal(t, "svc", cfg.Build.Script.WorkingDir)
	assert.NotEmpty(t, cfg.Build.Script.Shell)
	assert.Equal(t, domain.CompressionNone, cfg.Compression)
}

func TestLoader_ScriptTimeoutDefaults(t *testing.T) {
	dir := writeConfig(t, `
project: orders
build:
  type: script
  script: make
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultScriptTimeout, cfg.Build.Script.Timeout)
}

func TestLoader_ScriptExplicitZeroTimeoutRejected(t *testing.T) {
	dir := writeConfig(t, `
project: orders
build:
  type: script
  script: make
  timeout_seconds: 0
`)

	_, err := newLoader(t).Load(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidTimeout)
}

func TestLoader_ScriptLongTimeoutWarns(t *testing.T) {
	dir := writeConfig(t, `
project: orders
build:
  type: script
  script: make
  timeout_seconds: 7200
`)

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	cfg, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 7200*time.Second, cfg.Build.Script.Timeout)
}

func TestLoader_CargoBuild(t *testing.T) {
	dir := writeConfig(t, `
project: orders
build:
  type: cargo
  target: x86_64-unknown-linux-musl
  profile: debug
  package: orders-api
  binary: server
push:
  compression: zstd
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.BuildKindCargo, cfg.Build.Kind)
	require.NotNil(t, cfg.Build.Cargo)
	assert.Equal(t, "x86_64-unknown-linux-musl", cfg.Build.Cargo.Target)
	assert.Equal(t, domain.ProfileDebug, cfg.Build.Cargo.Profile)
	assert.Equal(t, "orders-api", cfg.Build.Cargo.Package)
	assert.Equal(t, "server", cfg.Build.Cargo.Binary)
	assert.Equal(t, domain.CompressionZstd, cfg.Compression)
}

func TestLoader_CargoProfileDefaultsToRelease(t *testing.T) {
	dir := writeConfig(t, `
project: orders
build:
  type: cargo
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.ProfileRelease, cfg.Build.Cargo.Profile)
}

func TestLoader_EndpointPrecedence(t *testing.T) {
	t.Setenv(domain.RegistryURLEnv, "http://env-registry:9")

	dir := writeConfig(t, `
project: orders
build:
  type: script
  script: make
registry_url: http://cfg-registry:9
`)

	cfg, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://cfg-registry:9", cfg.RegistryURL)
	assert.Equal(t, domain.DefaultControlPlaneURL, cfg.ControlPlaneURL)
	assert.Equal(t, domain.DefaultWorkerURL, cfg.WorkerURL)
}

func TestLoader_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "missing project name",
			content: "build:\n  type: script\n  script: make\n",
			wantErr: domain.ErrMissingProjectName,
		},
		{
			name:    "invalid project name",
			content: "project: a/b\nbuild:\n  type: script\n  script: make\n",
			wantErr: domain.ErrInvalidProjectName,
		},
		{
			name:    "missing build section",
			content: "project: orders\n",
			wantErr: domain.ErrUnknownBuildKind,
		},
		{
			name:    "unknown build type",
			content: "project: orders\nbuild:\n  type: docker\n",
			wantErr: domain.ErrUnknownBuildKind,
		},
		{
			name:    "empty script",
			content: "project: orders\nbuild:\n  type: script\n  script: \"\"\n",
			wantErr: domain.ErrEmptyScript,
		},
		{
			name:    "unknown profile",
			content: "project: orders\nbuild:\n  type: cargo\n  profile: bench\n",
			wantErr: domain.ErrUnknownProfile,
		},
		{
			name:    "unknown compression",
			content: "project: orders\nbuild:\n  type: script\n  script: make\npush:\n  compression: gzip\n",
			wantErr: domain.ErrUnknownCompression,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfig(t, tt.content)
			_, err := newLoader(t).Load(dir)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoader_ConfigNotFound(t *testing.T) {
	_, err := newLoader(t).Load(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_ParseFailure(t *testing.T) {
	dir := writeConfig(t, "project: [unclosed")
	_, err := newLoader(t).Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
