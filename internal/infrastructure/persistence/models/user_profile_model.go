package models

import (
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
)

// UserProfileModel is the GORM database model for user profiles, one row per user
type UserProfileModel struct {
	UserID          string  `gorm:"primaryKey;type:varchar(255)"`
	StylePreference *string `gorm:"type:varchar(50)"`
	Gender          *string `gorm:"type:varchar(50)"`
	BodyType        *string `gorm:"type:varchar(255)"`
	SizeTop         *string `gorm:"type:varchar(50)"`
	SizeBottom      *string `gorm:"type:varchar(50)"`
	SizeShoes       *string `gorm:"type:varchar(50)"`
	BudgetRange     *string `gorm:"type:varchar(10)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (UserProfileModel) TableName() string {
	return "user_profiles"
}

// ToDomain converts GORM model to domain entity
func (m *UserProfileModel) ToDomain() *profiles.UserProfile {
	return &profiles.UserProfile{
		UserID:          m.UserID,
		StylePreference: m.StylePreference,
		Gender:          m.Gender,
		BodyType:        m.BodyType,
		SizeTop:         m.SizeTop,
		SizeBottom:      m.SizeBottom,
		SizeShoes:       m.SizeShoes,
		BudgetRange:     m.BudgetRange,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserProfileModel) FromDomain(p *profiles.UserProfile) {
	m.UserID = p.UserID
	m.StylePreference = p.StylePreference
	m.Gender = p.Gender
	m.BodyType = p.BodyType
	m.SizeTop = p.SizeTop
	m.SizeBottom = p.SizeBottom
	m.SizeShoes = p.SizeShoes
	m.BudgetRange = p.BudgetRange
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
