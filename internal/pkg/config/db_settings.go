package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings holds the connection settings for the metadata database
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn" validate:"required_if=Type postgres"`
	// Name is created on first connect when set (postgres only)
	Name         string `mapstructure:"name" validate:"omitempty,max=63"`
	MaxOpenConns int    `mapstructure:"max_open_conns" validate:"omitempty,min=1"`
	MaxIdleConns int    `mapstructure:"max_idle_conns" validate:"omitempty,min=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
