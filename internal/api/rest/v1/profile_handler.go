package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProfileHandler defines the interface for handling user profile operations
type ProfileHandler interface {
	Get(ctx *gin.Context)
	Update(ctx *gin.Context)
}

type profileHandler struct {
	profileService profiles.ProfileService
	logger         logger.Logger
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService profiles.ProfileService, logger logger.Logger) ProfileHandler {
	return &profileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// Get returns the caller's profile or null
func (handler *profileHandler) Get(ctx *gin.Context) {
	profile, err := handler.profileService.Get(ctx.Request.Context(), CurrentUserID(ctx))
	if err != nil {
		handler.logger.Error("fetching profile failed", "error", err)
		abortWithError(ctx, http.StatusInternalServerError, msgFetchProfileFailed)
		return
	}

	if profile == nil {
		ctx.JSON(http.StatusOK, nil)
		return
	}
	ctx.JSON(http.StatusOK, profile)
}

// Update merges the submitted fields into the caller's profile
func (handler *profileHandler) Update(ctx *gin.Context) {
	var update profiles.ProfileUpdate
	if err := ctx.ShouldBindJSON(&update); err != nil && !errors.Is(err, io.EOF) {
		abortWithError(ctx, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	profile, err := handler.profileService.Update(ctx.Request.Context(), CurrentUserID(ctx), &update)
	if err != nil {
		handler.logger.Error("saving profile failed", "error", err)
		abortWithError(ctx, http.StatusInternalServerError, msgSaveProfileFailed)
		return
	}

	ctx.JSON(http.StatusOK, profile)
}
