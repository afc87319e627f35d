package outfits

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
)

// PromptWeather is the weather block of a stylist prompt
type PromptWeather struct {
	City        string
	Temperature int
	Unit        string
	Condition   string
	Description string
}

const promptRules = `RULES:
1. Use color theory: complementary, analogous, or monochromatic schemes.
2. Apply layering principles for the temperature (add layers if cold, lighter if warm).
3. Respect proportion rules: balance fitted and loose pieces.
4. Ensure the outfit is complete (e.g. top + bottom + optional outerwear/accessories).
5. Consider the weather when selecting items (e.g. coat for cold, shorts for heat).

Respond with ONLY a valid JSON object, no other text:
{
  "item_ids": ["uuid1", "uuid2", ...],
  "explanation": "2-3 sentences explaining why this outfit works (color harmony, layering, proportion, weather appropriateness)"
}

Pick only IDs that exist in the wardrobe list. Return valid JSON only.`

// BuildPrompt renders the stylist prompt for a wardrobe, an optional profile and the current weather
func BuildPrompt(items []*clothing.ClothingItem, profile *profiles.UserProfile, w PromptWeather) string {
	var b strings.Builder

	b.WriteString("You are a fashion stylist. Suggest a complete outfit from the user's wardrobe below.\n")
	b.WriteString(profileContext(profile))

	b.WriteString("\n\nWARDROBE (each item has an id - use these exact IDs in your response):\n")
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, wardrobeLine(item))
	}
	b.WriteString(strings.Join(lines, "\n"))

	fmt.Fprintf(&b, "\n\nCURRENT WEATHER:\n- City: %s\n- Temperature: %d°%s\n- Condition: %s\n- Description: %s\n\n",
		w.City, w.Temperature, w.Unit, w.Condition, w.Description)

	b.WriteString(promptRules)
	return b.String()
}

func wardrobeLine(item *clothing.ClothingItem) string {
	tags := item.StyleTags
	if tags == nil {
		tags = []string{}
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		encoded = []byte("[]")
	}

	return fmt.Sprintf("- id: %s, type: %s, color: %s, style_tags: %s, season: %s",
		item.ID, item.ItemType, valueOr(item.Color, "unknown"), encoded, valueOr(item.Season, "all"))
}

func profileContext(profile *profiles.UserProfile) string {
	if profile == nil {
		return ""
	}

	var b strings.Builder
	if v := valueOr(profile.StylePreference, ""); v != "" {
		fmt.Fprintf(&b, "\nUSER STYLE PREFERENCE: %s. Prioritize pieces that match this aesthetic.", v)
	}
	if v := valueOr(profile.Gender, ""); v != "" {
		fmt.Fprintf(&b, "\nUSER GENDER: %s. Men's and women's fashion differ significantly, so choose pieces and styling appropriate for this context.", v)
	}
	if v := valueOr(profile.BodyType, ""); v != "" {
		fmt.Fprintf(&b, "\nUSER BODY TYPE: %s. Consider proportion and fit for this body type.", v)
	}
	return b.String()
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
