package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"

	"github.com/gin-gonic/gin"
)

// Response messages shared by several handlers
const (
	msgInternalError        = "Internal server error"
	msgInvalidJSON          = "Invalid JSON body"
	msgMissingAuthHeader    = "Missing or invalid Authorization header"
	msgServerConfiguration  = "Server configuration error"
	msgInvalidToken         = "Invalid or expired token"
	msgUserNotFound         = "User not found"
	msgAuthenticationFailed = "Authentication failed"
	msgPhotoRequired        = "Photo file is required"
	msgPhotoTooLarge        = "File too large. Maximum 5MB."
	msgInvalidPhotoType     = "Invalid file type. Allowed: jpeg, png, webp, gif"
	msgItemTypeRequired     = "item_type is required"
	msgUploadFailed         = "Failed to upload photo"
	msgSaveItemFailed       = "Failed to save clothing item"
	msgFetchItemsFailed     = "Failed to fetch clothing items"
	msgItemNotFound         = "Clothing item not found"
	msgDeleteItemFailed     = "Failed to delete clothing item"
	msgPhotoNotFound        = "Photo not found"
	msgFetchPhotoFailed     = "Failed to fetch photo"
	msgFetchProfileFailed   = "Failed to fetch profile"
	msgSaveProfileFailed    = "Failed to save profile"
	msgCityRequired         = "City name is required (query: ?city=London)"
	msgWeatherNotConfigured = "Weather API not configured. Add OPENWEATHER_KEY to .env"
	msgCityNotFound         = "City not found"
	msgWeatherFailed        = "Failed to fetch weather data"
	msgOutfitWeatherFailed  = "Failed to fetch weather"
	msgEmptyWardrobe        = "Your wardrobe is empty. Add some clothing items first."
	msgStylistNotConfigured = "Claude API not configured. Add ANTHROPIC_KEY to .env"
	msgStylistNoContent     = "Claude returned no content"
	msgStylistInvalidReply  = "Invalid response from outfit generator"
	msgStylistFailed        = "Failed to generate outfit"
	msgInvalidSignup        = "Email must be valid and password at least 8 characters"
	msgEmailTaken           = "An account with this email already exists"
	msgInvalidCredentials   = "Invalid email or password"
	msgSignupFailed         = "Failed to create account"
	msgLoginFailed          = "Failed to log in"
)

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

// uploadError maps clothing upload failures to a status and message
func uploadError(err error) (int, string) {
	switch {
	case errors.Is(err, clothing.ErrPhotoRequired):
		return http.StatusBadRequest, msgPhotoRequired
	case errors.Is(err, clothing.ErrPhotoTooLarge):
		return http.StatusBadRequest, msgPhotoTooLarge
	case errors.Is(err, clothing.ErrInvalidPhotoType):
		return http.StatusBadRequest, msgInvalidPhotoType
	case errors.Is(err, clothing.ErrItemTypeRequired):
		return http.StatusBadRequest, msgItemTypeRequired
	case errors.Is(err, clothing.ErrInvalidItem):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, clothing.ErrPhotoStorage):
		return http.StatusInternalServerError, msgUploadFailed
	case errors.Is(err, clothing.ErrPersistence):
		return http.StatusInternalServerError, msgSaveItemFailed
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// weatherError maps weather lookups made through /weather
func weatherError(err error) (int, string) {
	var upstream *weather.UpstreamError
	switch {
	case errors.Is(err, weather.ErrCityRequired):
		return http.StatusBadRequest, msgCityRequired
	case errors.Is(err, weather.ErrNotConfigured):
		return http.StatusInternalServerError, msgWeatherNotConfigured
	case errors.Is(err, weather.ErrCityNotFound):
		return http.StatusNotFound, msgCityNotFound
	case errors.As(err, &upstream):
		message := upstream.Message
		if message == "" {
			message = msgWeatherFailed
		}
		status := upstream.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return status, message
	default:
		return http.StatusInternalServerError, msgWeatherFailed
	}
}

// outfitError maps outfit generation failures. Weather failures are reported
// differently here than on /weather: an unknown city is the caller's mistake.
func outfitError(err error, city string) (int, string) {
	var weatherUpstream *weather.UpstreamError
	var stylistUpstream *outfits.UpstreamError
	switch {
	case errors.Is(err, outfits.ErrWardrobeUnavailable):
		return http.StatusInternalServerError, msgFetchItemsFailed
	case errors.Is(err, outfits.ErrEmptyWardrobe):
		return http.StatusBadRequest, msgEmptyWardrobe
	case errors.Is(err, weather.ErrCityNotFound):
		return http.StatusBadRequest, fmt.Sprintf("City %q not found", city)
	case errors.Is(err, weather.ErrNotConfigured):
		return http.StatusInternalServerError, "Weather API not configured"
	case errors.As(err, &weatherUpstream):
		message := weatherUpstream.Message
		if message == "" {
			message = msgOutfitWeatherFailed
		}
		return http.StatusBadGateway, message
	case errors.Is(err, outfits.ErrStylistNotConfigured):
		return http.StatusInternalServerError, msgStylistNotConfigured
	case errors.Is(err, outfits.ErrEmptyReply):
		return http.StatusInternalServerError, msgStylistNoContent
	case errors.Is(err, outfits.ErrInvalidReply):
		return http.StatusInternalServerError, msgStylistInvalidReply
	case errors.As(err, &stylistUpstream):
		message := stylistUpstream.Message
		if message == "" {
			message = msgStylistFailed
		}
		return http.StatusBadGateway, message
	default:
		return http.StatusInternalServerError, msgInternalError
	}
}

// authError maps signup and login failures
func authError(err error, fallback string) (int, string) {
	switch {
	case errors.Is(err, accounts.ErrInvalidSignup):
		return http.StatusBadRequest, msgInvalidSignup
	case errors.Is(err, accounts.ErrEmailTaken):
		return http.StatusConflict, msgEmailTaken
	case errors.Is(err, accounts.ErrInvalidCredentials):
		return http.StatusUnauthorized, msgInvalidCredentials
	case errors.Is(err, accounts.ErrSecretNotConfigured):
		return http.StatusInternalServerError, msgServerConfiguration
	default:
		return http.StatusInternalServerError, fallback
	}
}
