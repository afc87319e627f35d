package connector

import (
	"context"
	"fmt"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
)

// NewPhotoConnector creates the photo connector selected by settings.Provider
func NewPhotoConnector(ctx context.Context, settings *config.PhotoStorageSettings, logger logger.Logger) (clothing.PhotoConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case config.AzureStorageProvider:
		return NewAzurePhotoConnector(ctx, settings, logger)
	case config.LocalStorageProvider:
		return NewLocalPhotoConnector(settings, logger)
	default:
		return nil, fmt.Errorf("unsupported photo storage provider: %s", settings.Provider)
	}
}
