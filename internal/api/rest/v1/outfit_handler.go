package v1

import (
	"net/http"
	"strings"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/outfits"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// OutfitHandler defines the interface for outfit suggestions and wardrobe analysis
type OutfitHandler interface {
	Generate(ctx *gin.Context)
	FindGaps(ctx *gin.Context)
}

type outfitHandler struct {
	outfitService outfits.OutfitService
	logger        logger.Logger
}

// NewOutfitHandler creates a new OutfitHandler
func NewOutfitHandler(outfitService outfits.OutfitService, logger logger.Logger) OutfitHandler {
	return &outfitHandler{
		outfitService: outfitService,
		logger:        logger,
	}
}

// Generate suggests an outfit for the weather in the requested city
func (handler *outfitHandler) Generate(ctx *gin.Context) {
	city := strings.TrimSpace(ctx.Query("city"))
	if city == "" {
		city = outfits.DefaultCity
	}

	suggestion, err := handler.outfitService.Generate(ctx.Request.Context(), CurrentUserID(ctx), city)
	if err != nil {
		status, message := outfitError(err, city)
		if status >= http.StatusInternalServerError {
			handler.logger.Error("outfit generation failed", "city", city, "error", err)
		}
		abortWithError(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusOK, suggestion)
}

// FindGaps reports which essential categories the wardrobe is missing
func (handler *outfitHandler) FindGaps(ctx *gin.Context) {
	report, err := handler.outfitService.FindGaps(ctx.Request.Context(), CurrentUserID(ctx))
	if err != nil {
		handler.logger.Error("gap analysis failed", "error", err)
		abortWithError(ctx, http.StatusInternalServerError, msgFetchItemsFailed)
		return
	}

	ctx.JSON(http.StatusOK, report)
}
