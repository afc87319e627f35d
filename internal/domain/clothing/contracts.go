package clothing

import (
	"context"
	"mime/multipart"
)

// Photo is the stored image of a clothing item
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// ClothingUploadService defines methods for adding clothing items to a wardrobe.
type ClothingUploadService interface {
	// Upload stores the photo, persists the item metadata and returns the created item.
	// The stored photo is removed again when the metadata cannot be persisted.
	Upload(ctx context.Context, userID string, input *ClothingItemInput, photo *multipart.FileHeader) (*ClothingItem, error)
}

// ClothingMetadataService defines methods for reading and removing clothing items.
type ClothingMetadataService interface {
	// List returns the user's items, newest first.
	List(ctx context.Context, userID string, query *ClothingItemQuery) ([]*ClothingItem, error)

	// GetByID returns a single item owned by the user.
	GetByID(ctx context.Context, userID, itemID string) (*ClothingItem, error)

	// DeleteByID removes an item and its photo.
	DeleteByID(ctx context.Context, userID, itemID string) error
}

// ClothingPhotoService defines methods for reading clothing photos.
type ClothingPhotoService interface {
	// DownloadByID returns the photo of an item owned by the user.
	DownloadByID(ctx context.Context, userID, itemID string) (*Photo, error)
}

// ClothingItemRepository defines the persistence operations for clothing items.
// Every read and delete is scoped to the owning user.
type ClothingItemRepository interface {
	Create(ctx context.Context, item *ClothingItem) error
	List(ctx context.Context, userID string, query *ClothingItemQuery) ([]*ClothingItem, error)
	GetByID(ctx context.Context, userID, itemID string) (*ClothingItem, error)
	DeleteByID(ctx context.Context, userID, itemID string) error
}

// PhotoConnector is an interface for interacting with photo storage
type PhotoConnector interface {
	// Upload stores data under path. Paths are unique per upload.
	Upload(ctx context.Context, path string, data []byte, contentType string) error

	// Download returns the stored bytes and content type.
	Download(ctx context.Context, path string) (*Photo, error)

	// Delete removes the object stored under path.
	Delete(ctx context.Context, path string) error
}
