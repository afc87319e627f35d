package profiles

import (
	"time"

	"github.com/CharlieZimmermann/wardrobe-app/internal/pkg/validators"
)

// StyleOptions are the accepted style preferences
var StyleOptions = []string{"casual", "streetwear", "business casual", "smart casual"}

// GenderOptions are the accepted gender values
var GenderOptions = []string{"male", "female", "non-binary", "prefer not to say"}

// BudgetOptions are the accepted shopping budget ranges
var BudgetOptions = []string{"$", "$$", "$$$", "$$$$"}

// UserProfile holds the styling preferences of a user
type UserProfile struct {
	UserID          string    `json:"user_id"`
	StylePreference *string   `json:"style_preference"`
	Gender          *string   `json:"gender"`
	BodyType        *string   `json:"body_type"`
	SizeTop         *string   `json:"size_top"`
	SizeBottom      *string   `json:"size_bottom"`
	SizeShoes       *string   `json:"size_shoes"`
	BudgetRange     *string   `json:"budget_range"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProfileUpdate is a partial update. Keys that were not sent keep their stored value.
type ProfileUpdate struct {
	StylePreference OptionalString `json:"style_preference"`
	Gender          OptionalString `json:"gender"`
	BodyType        OptionalString `json:"body_type"`
	SizeTop         OptionalString `json:"size_top"`
	SizeBottom      OptionalString `json:"size_bottom"`
	SizeShoes       OptionalString `json:"size_shoes"`
	BudgetRange     OptionalString `json:"budget_range"`
}

// Apply merges the update into existing (which may be nil) and returns the resulting profile.
// Values outside the option lists are stored as null; free text is sanitized and empty text is stored as null.
func (u *ProfileUpdate) Apply(existing *UserProfile, userID string, now time.Time) *UserProfile {
	merged := &UserProfile{UserID: userID, CreatedAt: now}
	if existing != nil {
		*merged = *existing
		merged.UserID = userID
		if merged.CreatedAt.IsZero() {
			merged.CreatedAt = now
		}
	}
	merged.UpdatedAt = now

	if u.StylePreference.Set {
		merged.StylePreference = oneOf(u.StylePreference.Value, StyleOptions)
	}
	if u.Gender.Set {
		merged.Gender = oneOf(u.Gender.Value, GenderOptions)
	}
	if u.BodyType.Set {
		merged.BodyType = validators.SanitizeOptional(u.BodyType.Value)
	}
	if u.SizeTop.Set {
		merged.SizeTop = validators.SanitizeOptional(u.SizeTop.Value)
	}
	if u.SizeBottom.Set {
		merged.SizeBottom = validators.SanitizeOptional(u.SizeBottom.Value)
	}
	if u.SizeShoes.Set {
		merged.SizeShoes = validators.SanitizeOptional(u.SizeShoes.Value)
	}
	if u.BudgetRange.Set {
		merged.BudgetRange = oneOf(u.BudgetRange.Value, BudgetOptions)
	}

	return merged
}

func oneOf(value *string, options []string) *string {
	if value == nil {
		return nil
	}
	for _, option := range options {
		if *value == option {
			v := option
			return &v
		}
	}
	return nil
}
