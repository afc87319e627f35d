package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/profiles"
	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/logger"
)

// profileService implements the ProfileService interface
type profileService struct {
	profileRepository profiles.ProfileRepository
	now               func() time.Time
	logger            logger.Logger
}

// NewProfileService creates a new instance of ProfileService
func NewProfileService(profileRepository profiles.ProfileRepository, logger logger.Logger) (profiles.ProfileService, error) {
	return &profileService{
		profileRepository: profileRepository,
		now:               func() time.Time { return time.Now().UTC() },
		logger:            logger,
	}, nil
}

// Get returns the stored profile, or nil when the user has not saved one
func (s *profileService) Get(ctx context.Context, userID string) (*profiles.UserProfile, error) {
	profile, err := s.profileRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profiles.ErrProfileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	return profile, nil
}

// Update merges the update into the stored profile and upserts the result
func (s *profileService) Update(ctx context.Context, userID string, update *profiles.ProfileUpdate) (*profiles.UserProfile, error) {
	existing, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update == nil {
		update = &profiles.ProfileUpdate{}
	}
	merged := update.Apply(existing, userID, s.now())

	if err := s.profileRepository.Upsert(ctx, merged); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("profile updated", "user_id", userID, "created", existing == nil)
	return merged, nil
}
