package ports

import "github.com/palantir/gradle-plugin-testing/internal/core/domain"

// ConfigLoader defines the interface for loading the build model.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the build model file at the given path and returns the project it describes.
	Load(path string) (*domain.Project, error)
}
