//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOutfitHandler_Generate_DefaultCity(t *testing.T) {
	service := new(MockOutfitService)
	handler := NewOutfitHandler(service, testutil.SetupTestLogger(t))

	suggestion := &outfits.Suggestion{
		ItemIDs:     []string{"item-1"},
		Items:       []*clothing.ClothingItem{testItem("item-1")},
		Explanation: "Layer up.",
		Weather:     outfits.WeatherSummary{City: "London", Temperature: 9, Unit: "C", Condition: "Rain"},
	}
	service.On("Generate", mock.Anything, testUserID, "London").Return(suggestion, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/outfits/generate", nil)
	handler.Generate(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var got outfits.Suggestion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, []string{"item-1"}, got.ItemIDs)
	assert.Equal(t, "Layer up.", got.Explanation)
	assert.Equal(t, "Rain", got.Weather.Condition)
	service.AssertExpectations(t)
}

func TestOutfitHandler_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"wardrobe unavailable", fmt.Errorf("%w: db down", outfits.ErrWardrobeUnavailable), http.StatusInternalServerError, "Failed to fetch clothing items"},
		{"empty wardrobe", outfits.ErrEmptyWardrobe, http.StatusBadRequest, "Your wardrobe is empty. Add some clothing items first."},
		{"unknown city", fmt.Errorf("failed to fetch weather: %w", weather.ErrCityNotFound), http.StatusBadRequest, `City "Atlantis" not found`},
		{"weather not configured", weather.ErrNotConfigured, http.StatusInternalServerError, "Weather API not configured"},
		{"weather upstream", &weather.UpstreamError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key"}, http.StatusBadGateway, "Invalid API key"},
		{"weather upstream without message", &weather.UpstreamError{StatusCode: http.StatusInternalServerError}, http.StatusBadGateway, "Failed to fetch weather"},
		{"stylist not configured", outfits.ErrStylistNotConfigured, http.StatusInternalServerError, "Claude API not configured. Add ANTHROPIC_KEY to .env"},
		{"stylist empty reply", outfits.ErrEmptyReply, http.StatusInternalServerError, "Claude returned no content"},
		{"stylist invalid reply", fmt.Errorf("%w: no json", outfits.ErrInvalidReply), http.StatusInternalServerError, "Invalid response from outfit generator"},
		{"stylist upstream", &outfits.UpstreamError{StatusCode: http.StatusTooManyRequests, Message: "rate limited"}, http.StatusBadGateway, "rate limited"},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockOutfitService)
			handler := NewOutfitHandler(service, testutil.SetupTestLogger(t))
			service.On("Generate", mock.Anything, testUserID, "Atlantis").Return(nil, tt.err)

			c, w := newTestContext(t, http.MethodPost, "/api/outfits/generate?city=Atlantis", nil)
			handler.Generate(c)

			assert.Equal(t, tt.status, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestOutfitHandler_FindGaps(t *testing.T) {
	service := new(MockOutfitService)
	handler := NewOutfitHandler(service, testutil.SetupTestLogger(t))
	service.On("FindGaps", mock.Anything, testUserID).Return(&outfits.GapReport{
		Missing:    []string{"outerwear"},
		Counts:     map[string]int{"top": 2, "bottom": 1, "shoes": 1, "outerwear": 0},
		TotalItems: 4,
	}, nil)

	c, w := newTestContext(t, http.MethodPost, "/api/outfits/gap-finder", nil)
	handler.FindGaps(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"missing":["outerwear"],"counts":{"top":2,"bottom":1,"shoes":1,"outerwear":0},"total_items":4}`, w.Body.String())
}

func TestOutfitHandler_FindGaps_Failure(t *testing.T) {
	service := new(MockOutfitService)
	handler := NewOutfitHandler(service, testutil.SetupTestLogger(t))
	service.On("FindGaps", mock.Anything, testUserID).Return(nil, errors.New("db down"))

	c, w := newTestContext(t, http.MethodPost, "/api/outfits/gap-finder", nil)
	handler.FindGaps(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
