package domain

import (
	"runtime"
	"strings"
	"time"
)

// BuildKind discriminates the build backend variants. The set is closed:
// backend selection is an exhaustive switch, not a runtime registry.
type BuildKind string

const (
	// BuildKindScript runs a user-supplied shell command.
	BuildKindScript BuildKind = "script"

	// BuildKindCargo builds a Rust project and stages the produced binary.
	BuildKindCargo BuildKind = "cargo"
)

// Profile is a named cargo build configuration.
type Profile string

const (
	// ProfileRelease builds with optimizations into target/release.
	ProfileRelease Profile = "release"

	// ProfileDebug builds without optimizations into target/debug.
	ProfileDebug Profile = "debug"
)

// Dir returns the output directory component for the profile.
func (p Profile) Dir() string {
	return string(p)
}

// ScriptSpec configures a script build.
//
// Security caveat: the script executes arbitrary shell commands with the
// same permissions as freighter itself. The denylist scan in the script
// backend is advisory only and is not a sandbox.
type ScriptSpec struct {
	// Script is the shell command text. Non-empty after trimming.
	Script string

	// Timeout bounds the script execution. Always positive.
	Timeout time.Duration

	// WorkingDir optionally overrides the working directory, relative to
	// the project root. Empty means the project root itself.
	WorkingDir string

	// Shell is the shell binary used to run the script.
	Shell string
}

// DefaultShell returns the platform default shell.
func DefaultShell() string {
	if runtime.GOOS == "windows" {
		return "cmd"
	}
	return "sh"
}

// CargoSpec configures a cargo build.
type CargoSpec struct {
	// Target is an optional target triple (e.g. "x86_64-unknown-linux-musl").
	Target string

	// Profile selects release or debug output.
	Profile Profile

	// Package optionally names the workspace package to build.
	Package string

	// Binary optionally names the binary target within the package.
	Binary string
}

// BuildSpec is a closed tagged union over the build backend variants.
// Exactly one variant pointer is non-nil, selected by Kind at
// configuration-load time. Immutable after construction.
type BuildSpec struct {
	Kind   BuildKind
	Script *ScriptSpec
	Cargo  *CargoSpec
}

// Validate checks the union invariant and the variant field constraints.
func (s BuildSpec) Validate() error {
	switch s.Kind {
	case BuildKindScript:
		if s.Script == nil || s.Cargo != nil {
			return Detail(ErrUnknownBuildKind, "kind", string(s.Kind))
		}
		return s.Script.validate()
	case BuildKindCargo:
		if s.Cargo == nil || s.Script != nil {
			return Detail(ErrUnknownBuildKind, "kind", string(s.Kind))
		}
		return s.Cargo.validate()
	default:
		return Detail(ErrUnknownBuildKind, "kind", string(s.Kind))
	}
}

func (s *ScriptSpec) validate() error {
	if strings.TrimSpace(s.Script) == "" {
		return ErrEmptyScript
	}
	if s.Timeout <= 0 {
		return Detail(ErrInvalidTimeout, "timeout_seconds", int64(s.Timeout/time.Second))
	}
	return nil
}

func (s *CargoSpec) validate() error {
	switch s.Profile {
	case ProfileRelease, ProfileDebug:
		return nil
	default:
		return Detail(ErrUnknownProfile, "profile", string(s.Profile))
	}
}
