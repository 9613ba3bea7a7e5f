package config

// Freighterfile represents the structure of the freighter.yaml file.
type Freighterfile struct {
	Project         string    `yaml:"project"`
	Build           *BuildDTO `yaml:"build"`
	Push            *PushDTO  `yaml:"push"`
	RegistryURL     string    `yaml:"registry_url"`
	ControlPlaneURL string    `yaml:"control_plane_url"`
	WorkerURL       string    `yaml:"worker_url"`
}

// BuildDTO represents the build section. The Type field selects which of
// the remaining fields apply.
type BuildDTO struct {
	Type string `yaml:"type"`

	// Script build fields. TimeoutSeconds distinguishes absent (default
	// applies) from an explicit zero (rejected).
	Script         string `yaml:"script"`
	TimeoutSeconds *int64 `yaml:"timeout_seconds"`
	WorkingDir     string `yaml:"working_dir"`
	Shell          string `yaml:"shell"`

	// Cargo build fields.
	Target  string `yaml:"target"`
	Profile string `yaml:"profile"`
	Package string `yaml:"package"`
	Binary  string `yaml:"binary"`
}

// PushDTO represents the push section.
type PushDTO struct {
	Compression string `yaml:"compression"`
}
