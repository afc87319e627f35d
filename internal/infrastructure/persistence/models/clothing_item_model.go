package models

import (
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
)

// ClothingItemModel is the GORM database model for clothing items
type ClothingItemModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	UserID    string    `gorm:"not null;index:idx_clothing_user_created,priority:1;type:varchar(255)"`
	PhotoURL  string    `gorm:"not null;type:varchar(512)"`
	ItemType  string    `gorm:"not null;type:varchar(100)"`
	Color     *string   `gorm:"type:varchar(100)"`
	StyleTags []string  `gorm:"serializer:json;type:text"`
	Season    *string   `gorm:"type:varchar(50)"`
	CreatedAt time.Time `gorm:"not null;index:idx_clothing_user_created,priority:2"`
}

// TableName specifies the table name for GORM
func (ClothingItemModel) TableName() string {
	return "clothing_items"
}

// ToDomain converts GORM model to domain entity
func (m *ClothingItemModel) ToDomain() *clothing.ClothingItem {
	tags := m.StyleTags
	if tags == nil {
		tags = []string{}
	}
	return &clothing.ClothingItem{
		ID:        m.ID,
		UserID:    m.UserID,
		PhotoURL:  m.PhotoURL,
		ItemType:  m.ItemType,
		Color:     m.Color,
		StyleTags: tags,
		Season:    m.Season,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ClothingItemModel) FromDomain(c *clothing.ClothingItem) {
	m.ID = c.ID
	m.UserID = c.UserID
	m.PhotoURL = c.PhotoURL
	m.ItemType = c.ItemType
	m.Color = c.Color
	m.StyleTags = c.StyleTags
	m.Season = c.Season
	m.CreatedAt = c.CreatedAt
}
