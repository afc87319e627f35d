package models

import (
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
)

// AccountModel is the GORM database model for local accounts
type AccountModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	Email        string    `gorm:"not null;uniqueIndex;type:varchar(254)"`
	PasswordHash string    `gorm:"not null;type:varchar(100)"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts GORM model to domain entity
func (m *AccountModel) ToDomain() *accounts.Account {
	return &accounts.Account{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AccountModel) FromDomain(a *accounts.Account) {
	m.ID = a.ID
	m.Email = a.Email
	m.PasswordHash = a.PasswordHash
	m.CreatedAt = a.CreatedAt
}
