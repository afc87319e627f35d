package commands

import (
	"encoding/json"
	"fmt"

	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// WeatherCommandHandler looks up current weather through the configured provider
type WeatherCommandHandler struct {
	logger logger.Logger
}

// NewWeatherCommandHandler creates a WeatherCommandHandler
func NewWeatherCommandHandler() (*WeatherCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &WeatherCommandHandler{logger: loggerInstance}, nil
}

// WeatherCmd prints the weather report of a city
func (commandHandler *WeatherCommandHandler) WeatherCmd(cmd *cobra.Command, _ []string) error {
	city, err := cmd.Flags().GetString("city")
	if err != nil {
		return fmt.Errorf("invalid city flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	service, err := newWeatherService(cfg, commandHandler.logger)
	if err != nil {
		return err
	}

	report, err := service.Current(cmd.Context(), city)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// InitWeatherCommands registers the weather command
func InitWeatherCommands(rootCmd *cobra.Command) error {
	handler, err := NewWeatherCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create weather command handler: %w", err)
	}

	var weatherCmd = &cobra.Command{
		Use:   "weather",
		Short: "Print the current weather of a city",
		RunE:  handler.WeatherCmd,
	}
	weatherCmd.Flags().StringP("city", "", "London", "City to look up")
	rootCmd.AddCommand(weatherCmd)

	return nil
}
