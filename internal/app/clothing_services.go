package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/metrics"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DefaultMaxPhotoBytes is the upload limit used when none is configured
const DefaultMaxPhotoBytes int64 = 5 * 1024 * 1024

var extensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// clothingUploadService implements the ClothingUploadService interface for adding items to a wardrobe
type clothingUploadService struct {
	photoConnector clothing.PhotoConnector
	itemRepository clothing.ClothingItemRepository
	maxPhotoBytes  int64
	logger         logger.Logger
}

// NewClothingUploadService creates a new instance of ClothingUploadService
func NewClothingUploadService(
	photoConnector clothing.PhotoConnector,
	itemRepository clothing.ClothingItemRepository,
	maxPhotoBytes int64,
	logger logger.Logger,
) (clothing.ClothingUploadService, error) {
	if maxPhotoBytes <= 0 {
		maxPhotoBytes = DefaultMaxPhotoBytes
	}
	return &clothingUploadService{
		photoConnector: photoConnector,
		itemRepository: itemRepository,
		maxPhotoBytes:  maxPhotoBytes,
		logger:         logger,
	}, nil
}

// Upload validates the photo and attributes, stores the photo and persists the item.
func (s *clothingUploadService) Upload(ctx context.Context, userID string, input *clothing.ClothingItemInput, photo *multipart.FileHeader) (*clothing.ClothingItem, error) {
	if photo == nil {
		return nil, clothing.ErrPhotoRequired
	}
	if photo.Size > s.maxPhotoBytes {
		return nil, clothing.ErrPhotoTooLarge
	}

	data, err := s.readPhoto(photo)
	if err != nil {
		return nil, err
	}

	contentType := mimetype.Detect(data)
	allowed := false
	for _, t := range clothing.AllowedPhotoTypes {
		if contentType.Is(t) {
			allowed = true
			break
		}
	}
	if !allowed {
		s.logger.Warn("rejected photo upload", "user_id", userID, "detected_type", contentType.String())
		return nil, clothing.ErrInvalidPhotoType
	}

	if input == nil {
		input = &clothing.ClothingItemInput{}
	}
	itemType, color, tags, season, err := input.Normalize()
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	item := &clothing.ClothingItem{
		ID:        id,
		UserID:    userID,
		PhotoURL:  clothing.PhotoPath(userID, uuid.NewString()+photoExtension(photo.Filename)),
		ItemType:  itemType,
		Color:     color,
		StyleTags: tags,
		Season:    season,
		CreatedAt: time.Now().UTC(),
	}
	if err := item.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", clothing.ErrInvalidItem, err)
	}

	if err := s.photoConnector.Upload(ctx, item.PhotoURL, data, baseMediaType(contentType.String())); err != nil {
		return nil, fmt.Errorf("%w: %v", clothing.ErrPhotoStorage, err)
	}

	if err := s.itemRepository.Create(ctx, item); err != nil {
		if delErr := s.photoConnector.Delete(ctx, item.PhotoURL); delErr != nil {
			s.logger.Error("failed to remove orphaned photo", "path", item.PhotoURL, "error", delErr)
		}
		return nil, fmt.Errorf("%w: %v", clothing.ErrPersistence, err)
	}

	metrics.ObserveUpload(len(data))
	s.logger.Info("clothing item created",
		"item_id", item.ID,
		"user_id", userID,
		"item_type", item.ItemType,
		"size", len(data))

	return item, nil
}

// readPhoto reads at most maxPhotoBytes+1 bytes so oversized bodies are detected even when the header size is wrong
func (s *clothingUploadService) readPhoto(photo *multipart.FileHeader) ([]byte, error) {
	file, err := photo.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open photo '%s': %w", photo.Filename, err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			s.logger.Error("failed to close photo", "filename", photo.Filename, "error", err)
		}
	}()

	data, err := io.ReadAll(io.LimitReader(file, s.maxPhotoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read photo '%s': %w", photo.Filename, err)
	}
	if int64(len(data)) > s.maxPhotoBytes {
		return nil, clothing.ErrPhotoTooLarge
	}
	if len(data) == 0 {
		return nil, clothing.ErrPhotoRequired
	}
	return data, nil
}

// photoExtension keeps the uploaded extension when it is sane and falls back to .jpg
func photoExtension(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	if !extensionPattern.MatchString(ext) {
		return clothing.DefaultPhotoExtension
	}
	return ext
}

func baseMediaType(contentType string) string {
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		return strings.TrimSpace(contentType[:i])
	}
	return contentType
}

// clothingMetadataService implements the ClothingMetadataService interface for reading and removing items
type clothingMetadataService struct {
	photoConnector clothing.PhotoConnector
	itemRepository clothing.ClothingItemRepository
	logger         logger.Logger
}

// NewClothingMetadataService creates a new instance of ClothingMetadataService
func NewClothingMetadataService(itemRepository clothing.ClothingItemRepository, photoConnector clothing.PhotoConnector, logger logger.Logger) (clothing.ClothingMetadataService, error) {
	return &clothingMetadataService{
		photoConnector: photoConnector,
		itemRepository: itemRepository,
		logger:         logger,
	}, nil
}

// List retrieves the user's items considering a query filter
func (s *clothingMetadataService) List(ctx context.Context, userID string, query *clothing.ClothingItemQuery) ([]*clothing.ClothingItem, error) {
	if query == nil {
		query = clothing.NewClothingItemQuery()
	}
	items, err := s.itemRepository.List(ctx, userID, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return items, nil
}

// GetByID retrieves a single item owned by the user
func (s *clothingMetadataService) GetByID(ctx context.Context, userID, itemID string) (*clothing.ClothingItem, error) {
	item, err := s.itemRepository.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return item, nil
}

// DeleteByID removes the photo of an item and then its metadata. A failed photo removal is only logged.
func (s *clothingMetadataService) DeleteByID(ctx context.Context, userID, itemID string) error {
	item, err := s.itemRepository.GetByID(ctx, userID, itemID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if item.PhotoURL != "" {
		if err := s.photoConnector.Delete(ctx, item.PhotoURL); err != nil {
			s.logger.Warn("failed to delete clothing photo", "item_id", itemID, "path", item.PhotoURL, "error", err)
		}
	}

	if err := s.itemRepository.DeleteByID(ctx, userID, itemID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.logger.Info("clothing item deleted", "item_id", itemID, "user_id", userID)
	return nil
}

// clothingPhotoService implements the ClothingPhotoService interface for reading stored photos
type clothingPhotoService struct {
	photoConnector clothing.PhotoConnector
	itemRepository clothing.ClothingItemRepository
	logger         logger.Logger
}

// NewClothingPhotoService creates a new instance of ClothingPhotoService
func NewClothingPhotoService(itemRepository clothing.ClothingItemRepository, photoConnector clothing.PhotoConnector, logger logger.Logger) (clothing.ClothingPhotoService, error) {
	return &clothingPhotoService{
		photoConnector: photoConnector,
		itemRepository: itemRepository,
		logger:         logger,
	}, nil
}

// DownloadByID returns the photo of an item owned by the user
func (s *clothingPhotoService) DownloadByID(ctx context.Context, userID, itemID string) (*clothing.Photo, error) {
	item, err := s.itemRepository.GetByID(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	photo, err := s.photoConnector.Download(ctx, item.PhotoURL)
	if err != nil {
		if errors.Is(err, clothing.ErrPhotoNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", clothing.ErrPhotoStorage, err)
	}
	return photo, nil
}
