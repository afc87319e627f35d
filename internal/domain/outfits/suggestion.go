package outfits

import (
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
)

// DefaultCity is used when an outfit is requested without a city
const DefaultCity = "London"

// Fallback explanations for replies that do not carry a usable one
const (
	MissingExplanation = "No explanation provided."
	EmptyExplanation   = "This outfit complements the current weather and your style."
)

// WeatherSummary is the weather an outfit was chosen for
type WeatherSummary struct {
	City        string `json:"city"`
	Temperature int    `json:"temperature"`
	Unit        string `json:"unit"`
	Condition   string `json:"condition"`
}

// Suggestion is a validated outfit made of items from the user's wardrobe
type Suggestion struct {
	ItemIDs     []string                 `json:"item_ids"`
	Items       []*clothing.ClothingItem `json:"items"`
	Explanation string                   `json:"explanation"`
	Weather     WeatherSummary           `json:"weather"`
}
