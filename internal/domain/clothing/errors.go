package clothing

import "errors"

// Sentinel errors returned by clothing services
var (
	ErrItemNotFound     = errors.New("clothing item not found")
	ErrPhotoRequired    = errors.New("photo file is required")
	ErrPhotoTooLarge    = errors.New("photo file too large")
	ErrInvalidPhotoType = errors.New("invalid photo file type")
	ErrItemTypeRequired = errors.New("item_type is required")
	ErrInvalidItem      = errors.New("invalid clothing item")
	ErrPhotoNotFound    = errors.New("photo not found")
	ErrPhotoStorage     = errors.New("photo storage failure")
	ErrPersistence      = errors.New("clothing item persistence failure")
)
