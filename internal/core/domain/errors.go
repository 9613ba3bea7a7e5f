package domain

import "go.trai.ch/zerr"

// Configuration errors. These abort before any process or network activity.
var (
	// ErrConfigNotFound is returned when freighter.yaml cannot be found.
	ErrConfigNotFound = zerr.New("could not find freighter.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingProjectName is returned when the config declares no project name.
	ErrMissingProjectName = zerr.New("missing project name")

	// ErrInvalidProjectName is returned when a project name is invalid.
	ErrInvalidProjectName = zerr.New("project name can only contain alphanumeric characters, hyphens and underscores")

	// ErrUnknownBuildKind is returned when the build type discriminator is missing or unknown.
	ErrUnknownBuildKind = zerr.New("unknown build type, expected 'script' or 'cargo'")

	// ErrEmptyScript is returned when a script build declares an empty script.
	ErrEmptyScript = zerr.New("build script cannot be empty")

	// ErrInvalidTimeout is returned when a build timeout is zero or negative.
	ErrInvalidTimeout = zerr.New("build timeout must be greater than zero")

	// ErrUnknownProfile is returned when a cargo build declares an unknown profile.
	ErrUnknownProfile = zerr.New("unknown build profile, expected 'release' or 'debug'")

	// ErrUnknownCompression is returned when the push compression is unknown.
	ErrUnknownCompression = zerr.New("unknown compression, expected 'none' or 'zstd'")
)

// Validation errors. These abort before the build tool is invoked.
var (
	// ErrProjectPathInvalid is returned when the project path does not exist or is not a directory.
	ErrProjectPathInvalid = zerr.New("project path does not exist or is not a directory")

	// ErrMissingWorkingDirectory is returned when a declared working directory does not exist.
	ErrMissingWorkingDirectory = zerr.New("working directory does not exist")

	// ErrWorkingDirectoryEscapes is returned when a declared working directory resolves outside the project root.
	ErrWorkingDirectoryEscapes = zerr.New("working directory must be inside the project root")

	// ErrMissingManifest is returned when no Cargo.toml exists at the project root.
	ErrMissingManifest = zerr.New("no Cargo.toml found at project root")

	// ErrToolchainUnavailable is returned when the cargo toolchain cannot be invoked.
	ErrToolchainUnavailable = zerr.New("cargo not found, ensure Rust is installed and cargo is in PATH")

	// ErrMetadataParseFailed is returned when toolchain metadata cannot be decoded.
	ErrMetadataParseFailed = zerr.New("failed to parse cargo metadata")

	// ErrPackageNotFound is returned when the configured package is not in the workspace.
	ErrPackageNotFound = zerr.New("package not found in workspace")

	// ErrNoPackagesFound is returned when the metadata lists no packages at all.
	ErrNoPackagesFound = zerr.New("no packages found in cargo metadata")

	// ErrBinaryTargetNotFound is returned when the configured binary target does not exist.
	ErrBinaryTargetNotFound = zerr.New("binary target not found in package")

	// ErrNoBinaryTargets is returned when a package has no binary targets.
	ErrNoBinaryTargets = zerr.New("no binary targets found in package")
)

// Execution errors.
var (
	// ErrProcessSpawn is returned when an external command cannot be started.
	ErrProcessSpawn = zerr.New("failed to spawn command")

	// ErrProcessTimeout is returned when an external command exceeds its deadline.
	ErrProcessTimeout = zerr.New("command timed out")

	// ErrNonZeroExit is returned when an external command exits non-zero.
	ErrNonZeroExit = zerr.New("command failed")

	// ErrBuildToolFailed is returned when the build tool itself exits non-zero.
	ErrBuildToolFailed = zerr.New("cargo build failed")
)

// Artifact errors.
var (
	// ErrStagingCreateFailed is returned when the staging directory cannot be created.
	ErrStagingCreateFailed = zerr.New("failed to create staging directory")

	// ErrBinaryNotProduced is returned when the build succeeded but the expected binary is missing.
	ErrBinaryNotProduced = zerr.New("expected binary not found after build")

	// ErrArchiveFailed is returned when the staged tree cannot be archived.
	ErrArchiveFailed = zerr.New("failed to archive staged artifacts")

	// ErrExtractFailed is returned when an artifact stream cannot be restored.
	ErrExtractFailed = zerr.New("failed to extract artifact stream")
)

// Transport errors and remote rejections. A rejection means the remote was
// reached and explicitly refused; it is never wrapped in a transport error.
var (
	// ErrPushFailed is returned when streaming to the registry fails.
	ErrPushFailed = zerr.New("failed to push to registry")

	// ErrBindUnreachable is returned when the control plane cannot be reached.
	ErrBindUnreachable = zerr.New("failed to reach control plane")

	// ErrBindRejected is returned when the control plane refuses the name binding.
	ErrBindRejected = zerr.New("control plane rejected digest to name binding")

	// ErrWorkerUnreachable is returned when the worker service cannot be reached.
	ErrWorkerUnreachable = zerr.New("failed to reach worker service")
)

// Push state store errors.
var (
	// ErrStoreCreateFailed is returned when the store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create push state store directory")

	// ErrStoreReadFailed is returned when a push record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read push record")

	// ErrStoreUnmarshalFailed is returned when a push record cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal push record")

	// ErrStoreMarshalFailed is returned when a push record cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal push record")

	// ErrStoreWriteFailed is returned when a push record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write push record")
)

// Trigger errors.
var (
	// ErrInvalidMetadata is returned when a metadata entry is not of the form key=value.
	ErrInvalidMetadata = zerr.New("invalid metadata entry, expected key=value")

	// ErrActionFailed is returned when the worker reports a problem instead of a result.
	ErrActionFailed = zerr.New("action execution failed")
)

// Detail attaches a key/value pair to err without breaking errors.Is against
// it. The pair lands on a wrapper whose cause chain contains err itself;
// zerr.With called on a sentinel returns a detached copy that no longer
// unwraps to it. Further pairs chain with plain zerr.With on the result.
func Detail(err error, key string, value any) error {
	if err == nil {
		return nil
	}
	return zerr.With(zerr.Wrap(err, ""), key, value)
}
