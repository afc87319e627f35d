//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWeatherHandler_Current_Success(t *testing.T) {
	service := new(MockWeatherService)
	handler := NewWeatherHandler(service, testutil.SetupTestLogger(t))
	service.On("Current", mock.Anything, "Paris").Return(&weather.Report{
		City: "Paris", Country: "FR", Temperature: 18, Unit: "C", Condition: "Clouds", Description: "broken clouds",
	}, nil)

	c, w := newTestContext(t, http.MethodGet, "/api/weather?city=%20Paris%20", nil)
	handler.Current(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"city":"Paris","country":"FR","temperature":18,"unit":"C","condition":"Clouds","description":"broken clouds"}`, w.Body.String())
}

func TestWeatherHandler_Current_MissingCity(t *testing.T) {
	service := new(MockWeatherService)
	handler := NewWeatherHandler(service, testutil.SetupTestLogger(t))

	c, w := newTestContext(t, http.MethodGet, "/api/weather?city=%20", nil)
	handler.Current(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"City name is required (query: ?city=London)"}`, w.Body.String())
	service.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
}

func TestWeatherHandler_Current_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not configured", weather.ErrNotConfigured, http.StatusInternalServerError, "Weather API not configured. Add OPENWEATHER_KEY to .env"},
		{"unknown city", fmt.Errorf("lookup: %w", weather.ErrCityNotFound), http.StatusNotFound, "City not found"},
		{"upstream status passes through", &weather.UpstreamError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key"}, http.StatusUnauthorized, "Invalid API key"},
		{"upstream without message", &weather.UpstreamError{StatusCode: http.StatusTooManyRequests}, http.StatusTooManyRequests, "Failed to fetch weather data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockWeatherService)
			handler := NewWeatherHandler(service, testutil.SetupTestLogger(t))
			service.On("Current", mock.Anything, "Atlantis").Return(nil, tt.err)

			c, w := newTestContext(t, http.MethodGet, "/api/weather?city=Atlantis", nil)
			handler.Current(c)

			assert.Equal(t, tt.status, w.Code)
			assert.JSONEq(t, fmt.Sprintf(`{"error":%q}`, tt.message), w.Body.String())
		})
	}
}
