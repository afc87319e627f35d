package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/infrastructure/persistence/models"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (profiles.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProfileRepository) GetByUserID(ctx context.Context, userID string) (*profiles.UserProfile, error) {
	var model models.UserProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, profiles.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormProfileRepository) Upsert(ctx context.Context, profile *profiles.UserProfile) error {
	if profile.UserID == "" {
		return fmt.Errorf("validation error: user id is required")
	}

	model := &models.UserProfileModel{}
	model.FromDomain(profile)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"style_preference", "gender", "body_type",
			"size_top", "size_bottom", "size_shoes",
			"budget_range", "updated_at",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	r.logger.Debug("upserted profile", "user_id", profile.UserID)
	return nil
}
