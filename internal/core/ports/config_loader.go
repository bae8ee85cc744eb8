package ports

import "go.trai.ch/rebuildat/internal/core/domain"

// ConfigLoader defines the interface for loading run settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads settings for the given working directory.
	//
	// An empty path selects the default settings file, whose absence yields the
	// defaults. An explicit path must exist.
	Load(workDir, path string) (*domain.Settings, error)
}
