package clothing

import (
	"errors"
	"fmt"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// StorageBucket is the logical container every clothing photo lives in
const StorageBucket = "clothing-photos"

// DefaultPhotoExtension is used when the uploaded file name carries no extension
const DefaultPhotoExtension = ".jpg"

// AllowedPhotoTypes lists the content types accepted for clothing photos
var AllowedPhotoTypes = []string{"image/jpeg", "image/png", "image/webp", "image/gif"}

// ClothingItem entity
type ClothingItem struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	UserID    string    `json:"user_id" validate:"required,min=1,max=255"`
	PhotoURL  string    `json:"photo_url" validate:"required,photoPath"`
	ItemType  string    `json:"item_type" validate:"required,min=1,max=100"`
	Color     *string   `json:"color" validate:"omitempty,min=1,max=100"`
	StyleTags []string  `json:"style_tags" validate:"max=20,dive,min=1,max=50"`
	Season    *string   `json:"season" validate:"omitempty,min=1,max=50"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Validate for validating ClothingItem struct
func (c *ClothingItem) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("photoPath", validators.PhotoPathValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(c)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// IsAllowedPhotoType reports whether contentType may be stored as a clothing photo
func IsAllowedPhotoType(contentType string) bool {
	for _, allowed := range AllowedPhotoTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

// PhotoPath builds the storage path of a photo owned by userID
func PhotoPath(userID, fileName string) string {
	return userID + "/" + fileName
}
