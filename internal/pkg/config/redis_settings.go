package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RedisSettings configures the optional Redis instance used for caching
type RedisSettings struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr" validate:"required_if=Enabled true"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0,max=15"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}
	return nil
}

// TelemetrySettings toggles request tracing
type TelemetrySettings struct {
	TracingEnabled bool   `mapstructure:"tracing_enabled"`
	ServiceName    string `mapstructure:"service_name" validate:"required"`
}
