// Package commands implements the wardrobe-cli sub-commands.
package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/CharlieZimmermann/wardrobe-app/internal/app"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/weatherapi"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// logOutput receives log lines. Stdout is reserved for command output.
var logOutput io.Writer = os.Stderr

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: config.LogLevelInfo,
		LogType:  config.LogTypeConsole,
		Format:   config.LogFormatText,
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger.NewConsoleLoggerTo(logOutput, settings.LogLevel, settings.Format), nil
}

// loadConfig reads the configuration named by the persistent --config flag
func loadConfig(cmd *cobra.Command) (*config.RestConfig, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newWeatherService builds the weather service the REST API uses, without the Redis cache
func newWeatherService(cfg *config.RestConfig, log logger.Logger) (weather.WeatherService, error) {
	client := weatherapi.NewOpenWeatherClient(&cfg.Weather, &http.Client{Timeout: cfg.Weather.Timeout}, log)
	return app.NewWeatherService(client, nil, 0, log)
}
