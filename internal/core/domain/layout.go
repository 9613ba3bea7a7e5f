package domain

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "freighter.yaml"

	// FreighterDirName is the name of the internal project metadata directory.
	FreighterDirName = ".freighter"

	// StoreDirName is the name of the push state store directory.
	StoreDirName = "store"

	// ArtifactFileName is the canonical name a compiled binary is staged under.
	ArtifactFileName = "bootstrap"

	// ChunkSize is the size of a single chunk sent on the registry push stream.
	ChunkSize = 8 * 1024

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

const (
	// DefaultScriptTimeout applies when a script build declares no timeout.
	DefaultScriptTimeout = 300 * time.Second

	// LongTimeoutThreshold is the script timeout above which a warning is emitted.
	LongTimeoutThreshold = 3600 * time.Second

	// ToolchainProbeTimeout bounds metadata queries against the build toolchain.
	ToolchainProbeTimeout = 60 * time.Second

	// ToolchainBuildTimeout bounds a full compiler invocation.
	ToolchainBuildTimeout = time.Hour
)

// Environment variables consulted for endpoint defaults.
const (
	RegistryURLEnv     = "FREIGHTER_REGISTRY_URL"
	ControlPlaneURLEnv = "FREIGHTER_CONTROL_PLANE_URL"
	WorkerURLEnv       = "FREIGHTER_WORKER_URL"
)

// Hardcoded endpoint fallbacks, used when neither the configuration file nor
// the environment provides an override.
const (
	DefaultRegistryURL     = "http://localhost:50001"
	DefaultControlPlaneURL = "http://localhost:50002"
	DefaultWorkerURL       = "http://localhost:50003"
)

// DefaultStorePath returns the push state store path relative to a project root.
func DefaultStorePath() string {
	return filepath.Join(FreighterDirName, StoreDirName)
}

// RegistryURL returns the registry endpoint, preferring the configured value,
// then the environment, then the hardcoded default.
func RegistryURL(configured string) string {
	return endpoint(configured, RegistryURLEnv, DefaultRegistryURL)
}

// ControlPlaneURL returns the control plane endpoint with the same precedence.
func ControlPlaneURL(configured string) string {
	return endpoint(configured, ControlPlaneURLEnv, DefaultControlPlaneURL)
}

// WorkerURL returns the worker endpoint with the same precedence.
func WorkerURL(configured string) string {
	return endpoint(configured, WorkerURLEnv, DefaultWorkerURL)
}

// DialTarget converts a configured endpoint URL into a gRPC dial target by
// stripping the URL scheme. Endpoints are plaintext HTTP in this setup.
func DialTarget(url string) string {
	target := strings.TrimPrefix(url, "http://")
	return strings.TrimPrefix(target, "https://")
}

func endpoint(configured, envVar, fallback string) string {
	if configured != "" {
		return configured
	}
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return fallback
}
