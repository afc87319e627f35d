package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// WeatherSettings configures the OpenWeatherMap client and its cache
type WeatherSettings struct {
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url" validate:"required,url"`
	Timeout  time.Duration `mapstructure:"timeout" validate:"required"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// Validate checks that all fields in WeatherSettings are valid
func (s *WeatherSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for WeatherSettings: %w", err)
	}
	return nil
}

// StylistSettings configures the LLM used for outfit suggestions
type StylistSettings struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url" validate:"required,url"`
	Model       string        `mapstructure:"model" validate:"required"`
	MaxTokens   int           `mapstructure:"max_tokens" validate:"required,min=1,max=8192"`
	Timeout     time.Duration `mapstructure:"timeout" validate:"required"`
	MaxAttempts int           `mapstructure:"max_attempts" validate:"min=1,max=10"`
}

// Validate checks that all fields in StylistSettings are valid
func (s *StylistSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StylistSettings: %w", err)
	}
	return nil
}
