package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/metrics"
)

// weatherService implements the WeatherService interface with an optional observation cache
type weatherService struct {
	provider weather.Provider
	cache    weather.Cache
	cacheTTL time.Duration
	logger   logger.Logger
}

// NewWeatherService creates a new instance of WeatherService. cache may be nil.
func NewWeatherService(provider weather.Provider, cache weather.Cache, cacheTTL time.Duration, logger logger.Logger) (weather.WeatherService, error) {
	if provider == nil {
		return nil, fmt.Errorf("weather provider is required")
	}
	return &weatherService{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
	}, nil
}

// Current returns the weather report for city. Cache failures never fail the lookup.
func (s *weatherService) Current(ctx context.Context, city string) (*weather.Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, weather.ErrCityRequired
	}

	if s.cache != nil {
		obs, ok, err := s.cache.Get(ctx, city)
		switch {
		case err != nil:
			metrics.CountWeatherCache(metrics.ResultError)
			s.logger.Warn("weather cache read failed", "city", city, "error", err)
		case ok:
			metrics.CountWeatherCache(metrics.ResultHit)
			return weather.NewReport(obs), nil
		default:
			metrics.CountWeatherCache(metrics.ResultMiss)
		}
	}

	obs, err := s.provider.Current(ctx, city)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, city, obs, s.cacheTTL); err != nil {
			s.logger.Warn("weather cache write failed", "city", city, "error", err)
		}
	}

	return weather.NewReport(obs), nil
}
