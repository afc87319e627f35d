package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/httputil"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// ClothingHandler defines the interface for handling clothing item operations
type ClothingHandler interface {
	Upload(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DownloadPhotoByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

// DefaultMaxUploadBytes caps a photo when no limit is configured
const DefaultMaxUploadBytes int64 = 5 * 1024 * 1024

// multipartOverhead leaves room for boundaries and the text fields next to the photo
const multipartOverhead int64 = 512 * 1024

type clothingHandler struct {
	uploadService   clothing.ClothingUploadService
	metadataService clothing.ClothingMetadataService
	photoService    clothing.ClothingPhotoService
	maxUploadBytes  int64
	logger          logger.Logger
}

// NewClothingHandler creates a new ClothingHandler
func NewClothingHandler(
	uploadService clothing.ClothingUploadService,
	metadataService clothing.ClothingMetadataService,
	photoService clothing.ClothingPhotoService,
	maxUploadBytes int64,
	logger logger.Logger,
) ClothingHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &clothingHandler{
		uploadService:   uploadService,
		metadataService: metadataService,
		photoService:    photoService,
		maxUploadBytes:  maxUploadBytes,
		logger:          logger,
	}
}

// Upload stores a photo and the attributes of a new clothing item
func (handler *clothingHandler) Upload(ctx *gin.Context) {
	userID := CurrentUserID(ctx)

	limit := handler.maxUploadBytes + multipartOverhead
	if ctx.Request.ContentLength > limit {
		abortWithError(ctx, http.StatusBadRequest, msgPhotoTooLarge)
		return
	}
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit)

	// Other multipart parsing errors are treated like a missing photo
	photo, err := ctx.FormFile(httputil.PhotoField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(ctx, http.StatusBadRequest, msgPhotoTooLarge)
			return
		}
	}

	input := &clothing.ClothingItemInput{
		ItemType:  ctx.PostForm("item_type"),
		Color:     ctx.PostForm("color"),
		StyleTags: ctx.PostForm("style_tags"),
		Season:    ctx.PostForm("season"),
	}

	item, err := handler.uploadService.Upload(ctx.Request.Context(), userID, input, photo)
	if err != nil {
		status, message := uploadError(err)
		if status >= http.StatusInternalServerError {
			handler.logger.Error("clothing upload failed", "user_id", userID, "error", err)
		}
		abortWithError(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusCreated, item)
}

// List returns the caller's items, newest first
func (handler *clothingHandler) List(ctx *gin.Context) {
	query := clothing.NewClothingItemQuery()

	if itemType := ctx.Query("item_type"); len(itemType) > 0 {
		query.ItemType = itemType
	}

	if season := ctx.Query("season"); len(season) > 0 {
		query.Season = season
	}

	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = strutil.ConvertToInt(limit)
	}

	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = strutil.ConvertToInt(offset)
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	items, err := handler.metadataService.List(ctx.Request.Context(), CurrentUserID(ctx), query)
	if err != nil {
		handler.logger.Error("listing clothing items failed", "error", err)
		abortWithError(ctx, http.StatusInternalServerError, msgFetchItemsFailed)
		return
	}

	if items == nil {
		items = []*clothing.ClothingItem{}
	}
	ctx.JSON(http.StatusOK, items)
}

// GetByID returns a single item
func (handler *clothingHandler) GetByID(ctx *gin.Context) {
	item, err := handler.metadataService.GetByID(ctx.Request.Context(), CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, clothing.ErrItemNotFound) {
			abortWithError(ctx, http.StatusNotFound, msgItemNotFound)
			return
		}
		handler.logger.Error("fetching clothing item failed", "error", err)
		abortWithError(ctx, http.StatusInternalServerError, msgFetchItemsFailed)
		return
	}

	ctx.JSON(http.StatusOK, item)
}

// DownloadPhotoByID streams the stored photo of an item
func (handler *clothingHandler) DownloadPhotoByID(ctx *gin.Context) {
	photo, err := handler.photoService.DownloadByID(ctx.Request.Context(), CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, clothing.ErrItemNotFound):
			abortWithError(ctx, http.StatusNotFound, msgItemNotFound)
		case errors.Is(err, clothing.ErrPhotoNotFound):
			abortWithError(ctx, http.StatusNotFound, msgPhotoNotFound)
		default:
			handler.logger.Error("fetching clothing photo failed", "error", err)
			abortWithError(ctx, http.StatusInternalServerError, msgFetchPhotoFailed)
		}
		return
	}

	ctx.Header("Cache-Control", "private, max-age=300")
	ctx.Data(http.StatusOK, photo.ContentType, photo.Data)
}

// DeleteByID removes an item and its photo
func (handler *clothingHandler) DeleteByID(ctx *gin.Context) {
	err := handler.metadataService.DeleteByID(ctx.Request.Context(), CurrentUserID(ctx), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, clothing.ErrItemNotFound) {
			abortWithError(ctx, http.StatusNotFound, msgItemNotFound)
			return
		}
		handler.logger.Error("deleting clothing item failed", "error", err)
		abortWithError(ctx, http.StatusInternalServerError, msgDeleteItemFailed)
		return
	}

	ctx.Status(http.StatusNoContent)
}
