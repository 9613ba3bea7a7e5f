package ports

import "go.trai.ch/freighter/internal/core/domain"

//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks

// ConfigLoader reads and validates the project configuration.
type ConfigLoader interface {
	// Load reads freighter.yaml from projectPath, applies defaults and
	// returns the fully validated configuration.
	Load(projectPath string) (*domain.ProjectConfig, error)
}
