package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/persistence/models"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormClothingItemRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormClothingItemRepository creates a new GORM-based ClothingItemRepository implementation
func NewGormClothingItemRepository(db *gorm.DB, logger logger.Logger) (clothing.ClothingItemRepository, error) {
	return &gormClothingItemRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormClothingItemRepository) Create(ctx context.Context, item *clothing.ClothingItem) error {
	if err := item.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ClothingItemModel{}
	model.FromDomain(item)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create clothing item: %w", err)
	}

	r.logger.Debug("created clothing item", "item_id", item.ID)
	return nil
}

func (r *gormClothingItemRepository) List(ctx context.Context, userID string, query *clothing.ClothingItemQuery) ([]*clothing.ClothingItem, error) {
	if query == nil {
		query = clothing.NewClothingItemQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ClothingItemModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ClothingItemModel{}).Where("user_id = ?", userID)

	if query.ItemType != "" {
		dbQuery = dbQuery.Where("LOWER(item_type) = LOWER(?)", query.ItemType)
	}
	if query.Season != "" {
		dbQuery = dbQuery.Where("LOWER(season) = LOWER(?)", query.Season)
	}

	dbQuery = dbQuery.Order("created_at desc").Order("id")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch clothing items: %w", err)
	}

	domainList := make([]*clothing.ClothingItem, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormClothingItemRepository) GetByID(ctx context.Context, userID, itemID string) (*clothing.ClothingItem, error) {
	var model models.ClothingItemModel
	if err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", clothing.ErrItemNotFound, itemID)
		}
		return nil, fmt.Errorf("failed to fetch clothing item: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormClothingItemRepository) DeleteByID(ctx context.Context, userID, itemID string) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.ClothingItemModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete clothing item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", clothing.ErrItemNotFound, itemID)
	}

	r.logger.Debug("deleted clothing item", "item_id", itemID)
	return nil
}
