//go:build unit
// +build unit

package outfits

import (
	"testing"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		itemType string
		expected []string
	}{
		{"T-Shirt", []string{CategoryTop}},
		{"Slim jeans", []string{CategoryBottom}},
		{"running shoes", []string{CategoryShoes}},
		{"Chelsea Boots", []string{CategoryShoes}},
		{"rain coat", []string{CategoryOuterwear}},
		{"summer dress", []string{CategoryTop, CategoryBottom}},
		{"scarf", nil},
	}

	for _, tt := range tests {
		t.Run(tt.itemType, func(t *testing.T) {
			assert.Equal(t, tt.expected, Categorize(tt.itemType))
		})
	}
}

func TestAnalyzeGaps(t *testing.T) {
	items := []*clothing.ClothingItem{
		{ItemType: "shirt"},
		{ItemType: "hoodie"},
		{ItemType: "chinos"},
		{ItemType: "scarf"},
	}

	report := AnalyzeGaps(items)

	assert.Equal(t, 4, report.TotalItems)
	assert.Equal(t, []string{CategoryShoes, CategoryOuterwear}, report.Missing)
	assert.Equal(t, map[string]int{"top": 2, "bottom": 1, "shoes": 0, "outerwear": 0}, report.Counts)
}

func TestAnalyzeGaps_EmptyWardrobe(t *testing.T) {
	report := AnalyzeGaps(nil)
	assert.Equal(t, 0, report.TotalItems)
	assert.Equal(t, EssentialCategories, report.Missing)
}
