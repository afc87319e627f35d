package clothing

import (
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/strutil"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/validators"
)

// ClothingItemInput carries the user supplied attributes of a new clothing item
type ClothingItemInput struct {
	ItemType  string
	Color     string
	StyleTags string
	Season    string
}

// Normalize trims and sanitizes the input and returns the values to persist.
// Empty optional values become nil.
func (in *ClothingItemInput) Normalize() (itemType string, color *string, tags []string, season *string, err error) {
	itemType = validators.SanitizeText(in.ItemType)
	if itemType == "" {
		return "", nil, nil, nil, ErrItemTypeRequired
	}

	tags = strutil.ParseTagList(in.StyleTags)
	for i, tag := range tags {
		tags[i] = validators.SanitizeText(tag)
	}
	tags = strutil.CompactStrings(tags)

	return itemType,
		strutil.NilIfEmpty(validators.SanitizeText(in.Color)),
		tags,
		strutil.NilIfEmpty(validators.SanitizeText(in.Season)),
		nil
}
