package clothing

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ClothingItemQuery filters and pages the clothing items of a user
type ClothingItemQuery struct {
	ItemType string `validate:"omitempty,max=100"`
	Season   string `validate:"omitempty,max=50"`
	Limit    int    `validate:"omitempty,gt=0,lte=500"`
	Offset   int    `validate:"omitempty,gte=0"`
}

// NewClothingItemQuery creates a query without filters
func NewClothingItemQuery() *ClothingItemQuery {
	return &ClothingItemQuery{}
}

// Validate for validating ClothingItemQuery struct
func (q *ClothingItemQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
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
