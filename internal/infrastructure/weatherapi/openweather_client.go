package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/config"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/metrics"
)

const (
	currentWeatherPath = "/data/2.5/weather"
	// OpenWeather omits main.temp for some stations
	fallbackTempCelsius = 15.0
	maxResponseSize     = 1 << 20
	defaultFailure      = "Failed to fetch weather"
)

// OpenWeatherClient fetches current conditions from the OpenWeatherMap API
type OpenWeatherClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewOpenWeatherClient creates a client. An empty API key is allowed; calls then fail with weather.ErrNotConfigured.
func NewOpenWeatherClient(settings *config.WeatherSettings, httpClient *http.Client, logger logger.Logger) *OpenWeatherClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: settings.Timeout}
	}
	return &OpenWeatherClient{
		apiKey:     strings.TrimSpace(settings.APIKey),
		baseURL:    strings.TrimSuffix(settings.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

type currentWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Current implements weather.Provider
func (c *OpenWeatherClient) Current(ctx context.Context, city string) (*weather.Observation, error) {
	if c.apiKey == "" {
		return nil, weather.ErrNotConfigured
	}

	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+currentWeatherPath+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream("openweather", 0, time.Since(start))
		c.logger.Error("weather request failed", "city", city, "error", err)
		return nil, &weather.UpstreamError{StatusCode: http.StatusBadGateway, Message: defaultFailure}
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	metrics.ObserveUpstream("openweather", resp.StatusCode, time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &weather.UpstreamError{StatusCode: http.StatusBadGateway, Message: defaultFailure}
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, weather.ErrCityNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := defaultFailure
		var e errorResponse
		if json.Unmarshal(body, &e) == nil && e.Message != "" {
			message = e.Message
		}
		c.logger.Warn("weather provider error", "city", city, "status", resp.StatusCode, "message", message)
		return nil, &weather.UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}

	var payload currentWeatherResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &weather.UpstreamError{StatusCode: http.StatusBadGateway, Message: "Invalid weather response"}
	}

	obs := &weather.Observation{
		City:        payload.Name,
		Country:     payload.Sys.Country,
		TempCelsius: fallbackTempCelsius,
	}
	if obs.City == "" {
		obs.City = city
	}
	if payload.Main.Temp != nil {
		obs.TempCelsius = *payload.Main.Temp
	}
	if len(payload.Weather) > 0 {
		obs.Condition = payload.Weather[0].Main
		obs.Description = payload.Weather[0].Description
	}
	return obs, nil
}
