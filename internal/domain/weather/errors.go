package weather

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by weather providers and services
var (
	ErrCityRequired  = errors.New("city name is required")
	ErrCityNotFound  = errors.New("city not found")
	ErrNotConfigured = errors.New("weather API not configured")
)

// UpstreamError is returned when the weather provider answers with an unexpected status
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather provider returned %d: %s", e.StatusCode, e.Message)
}
