// Package profiles defines user styling profiles and their persistence contracts.
package profiles

import "context"

// ProfileService defines methods for reading and updating a user's profile.
type ProfileService interface {
	// Get returns the profile of the user, or nil when none has been saved.
	Get(ctx context.Context, userID string) (*UserProfile, error)

	// Update merges a partial update into the stored profile, creating it when missing.
	Update(ctx context.Context, userID string, update *ProfileUpdate) (*UserProfile, error)
}

// ProfileRepository defines the persistence operations for profiles.
type ProfileRepository interface {
	// GetByUserID returns ErrProfileNotFound when the user has no profile.
	GetByUserID(ctx context.Context, userID string) (*UserProfile, error)
	// Upsert inserts or replaces the profile keyed by user id.
	Upsert(ctx context.Context, profile *UserProfile) error
}
