package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/accounts"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/persistence/models"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAccountRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAccountRepository creates a new GORM-based AccountRepository implementation
func NewGormAccountRepository(db *gorm.DB, logger logger.Logger) (accounts.AccountRepository, error) {
	return &gormAccountRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAccountRepository) Create(ctx context.Context, account *accounts.Account) error {
	if err := account.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AccountModel{}
	model.FromDomain(account)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return accounts.ErrEmailTaken
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	r.logger.Debug("created account", "user_id", account.ID)
	return nil
}

func (r *gormAccountRepository) GetByEmail(ctx context.Context, email string) (*accounts.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).Where("email = ?", accounts.NormalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, accounts.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to fetch account: %w", err)
	}
	return model.ToDomain(), nil
}
