package weather

import (
	"context"
	"time"
)

// Provider fetches current weather observations from an external API
type Provider interface {
	// Current returns ErrCityNotFound for unknown cities, ErrNotConfigured without an API key
	// and *UpstreamError for any other failure status.
	Current(ctx context.Context, city string) (*Observation, error)
}

// Cache stores observations keyed by normalized city name
type Cache interface {
	// Get reports false on a miss.
	Get(ctx context.Context, city string) (*Observation, bool, error)
	Set(ctx context.Context, city string, obs *Observation, ttl time.Duration) error
}

// WeatherService defines methods for looking up the current weather of a city
type WeatherService interface {
	Current(ctx context.Context, city string) (*Report, error)
}
