package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings configures bearer token verification and issuance.
// JWTSecret may be left empty at startup; protected routes then answer 500.
type AuthSettings struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	Issuer    string        `mapstructure:"issuer" validate:"required"`
	Audience  string        `mapstructure:"audience" validate:"required"`
	TokenTTL  time.Duration `mapstructure:"token_ttl" validate:"required,min=1m"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	if s.JWTSecret != "" && len(s.JWTSecret) < 32 {
		return fmt.Errorf("jwt secret must be at least 32 characters")
	}
	return nil
}
