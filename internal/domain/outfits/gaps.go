package outfits

import (
	"strings"
	"unicode"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
)

// Essential wardrobe categories
const (
	CategoryTop       = "top"
	CategoryBottom    = "bottom"
	CategoryShoes     = "shoes"
	CategoryOuterwear = "outerwear"
)

// EssentialCategories in reporting order
var EssentialCategories = []string{CategoryTop, CategoryBottom, CategoryShoes, CategoryOuterwear}

// categoryKeywords maps item type words onto essential categories. A dress covers top and bottom.
var categoryKeywords = map[string][]string{
	CategoryTop: {
		"top", "shirt", "tshirt", "tee", "blouse", "sweater", "jumper", "hoodie", "sweatshirt",
		"polo", "tank", "cardigan", "turtleneck", "dress",
	},
	CategoryBottom: {
		"bottom", "pants", "trousers", "jeans", "shorts", "skirt", "chinos", "leggings", "joggers", "dress",
	},
	CategoryShoes: {
		"shoe", "sneaker", "trainer", "boot", "sandal", "loafer", "heel", "flat", "oxford", "slipper",
	},
	CategoryOuterwear: {
		"outerwear", "jacket", "coat", "blazer", "parka", "raincoat", "windbreaker", "anorak", "puffer", "gilet", "vest",
	},
}

// GapReport describes which essential categories a wardrobe covers
type GapReport struct {
	Missing    []string       `json:"missing"`
	Counts     map[string]int `json:"counts"`
	TotalItems int            `json:"total_items"`
}

// AnalyzeGaps counts the wardrobe items per essential category and lists the empty ones
func AnalyzeGaps(items []*clothing.ClothingItem) *GapReport {
	report := &GapReport{
		Missing:    []string{},
		Counts:     make(map[string]int, len(EssentialCategories)),
		TotalItems: len(items),
	}
	for _, category := range EssentialCategories {
		report.Counts[category] = 0
	}

	for _, item := range items {
		for _, category := range Categorize(item.ItemType) {
			report.Counts[category]++
		}
	}

	for _, category := range EssentialCategories {
		if report.Counts[category] == 0 {
			report.Missing = append(report.Missing, category)
		}
	}
	return report
}

// Categorize returns the essential categories an item type belongs to, in reporting order
func Categorize(itemType string) []string {
	words := strings.FieldsFunc(strings.ToLower(strings.ReplaceAll(itemType, "-", "")), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var categories []string
	for _, category := range EssentialCategories {
		if matchesAny(words, categoryKeywords[category]) {
			categories = append(categories, category)
		}
	}
	return categories
}

func matchesAny(words, keywords []string) bool {
	for _, word := range words {
		for _, keyword := range keywords {
			if word == keyword || word == keyword+"s" || word == keyword+"es" {
				return true
			}
		}
	}
	return false
}
