package domain

import "strings"

// CompressionKind selects the codec applied to the artifact stream
// between the archiver and the registry.
type CompressionKind string

const (
	// CompressionNone streams the raw tar archive.
	CompressionNone CompressionKind = "none"

	// CompressionZstd wraps the archive in a zstd stream.
	CompressionZstd CompressionKind = "zstd"
)

// ProjectConfig is the validated view of a freighter.yaml file.
// All fields are in their final form: defaults applied, the build union
// checked, names verified. Code past the loader never re-validates.
type ProjectConfig struct {
	// Name is the project name the artifact digest is bound to.
	Name string

	// Build selects and configures the build backend.
	Build BuildSpec

	// Compression is the artifact stream codec.
	Compression CompressionKind

	// RegistryURL is the resolved registry endpoint.
	RegistryURL string

	// ControlPlaneURL is the resolved control plane endpoint.
	ControlPlaneURL string

	// WorkerURL is the resolved worker endpoint.
	WorkerURL string
}

// ValidateProjectName checks that a project name is non-empty and uses only
// alphanumeric characters, hyphens and underscores. The name travels to the
// control plane as a binding key, so the character set is deliberately narrow.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrMissingProjectName
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '-' || r == '_':
		default:
			return Detail(ErrInvalidProjectName, "name", name)
		}
	}
	return nil
}

// ValidateCompression checks the compression discriminator.
func ValidateCompression(kind CompressionKind) error {
	switch kind {
	case CompressionNone, CompressionZstd:
		return nil
	default:
		return Detail(ErrUnknownCompression, "compression", string(kind))
	}
}
