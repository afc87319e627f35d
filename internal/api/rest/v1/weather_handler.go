package v1

import (
	"net/http"
	"strings"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/weather"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WeatherHandler defines the interface for weather lookups
type WeatherHandler interface {
	Current(ctx *gin.Context)
}

type weatherHandler struct {
	weatherService weather.WeatherService
	logger         logger.Logger
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherService weather.WeatherService, logger logger.Logger) WeatherHandler {
	return &weatherHandler{
		weatherService: weatherService,
		logger:         logger,
	}
}

// Current returns the weather of the city given in the query
func (handler *weatherHandler) Current(ctx *gin.Context) {
	city := strings.TrimSpace(ctx.Query("city"))
	if city == "" {
		abortWithError(ctx, http.StatusBadRequest, msgCityRequired)
		return
	}

	report, err := handler.weatherService.Current(ctx.Request.Context(), city)
	if err != nil {
		status, message := weatherError(err)
		if status >= http.StatusInternalServerError {
			handler.logger.Error("weather lookup failed", "city", city, "error", err)
		}
		abortWithError(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
