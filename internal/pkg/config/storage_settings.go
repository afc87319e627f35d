package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// PhotoStorageSettings selects and configures the backend holding clothing photos
type PhotoStorageSettings struct {
	Provider         string `mapstructure:"provider" validate:"required,oneof=azure local"`
	ConnectionString string `mapstructure:"connection_string"`
	ContainerName    string `mapstructure:"container_name"`
	LocalPath        string `mapstructure:"local_path"`
	// MaxUploadBytes caps a single photo upload
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"min=1"`
}

// Validate checks provider specific requirements
func (s *PhotoStorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PhotoStorageSettings: %w", err)
	}

	switch s.Provider {
	case AzureStorageProvider:
		if s.ConnectionString == "" || s.ContainerName == "" {
			return fmt.Errorf("connection string and container name are required for azure storage")
		}
	case LocalStorageProvider:
		if s.LocalPath == "" {
			return fmt.Errorf("local path is required for local storage")
		}
	}
	return nil
}
