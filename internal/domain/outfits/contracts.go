package outfits

import "context"

// Stylist sends a prompt to a language model and returns its text answer
type Stylist interface {
	// Complete returns ErrStylistNotConfigured without credentials and *UpstreamError for failed calls.
	Complete(ctx context.Context, prompt string) (string, error)
}

// OutfitService defines methods for outfit suggestions and wardrobe analysis
type OutfitService interface {
	// Generate suggests an outfit for the weather in city. An empty city means DefaultCity.
	Generate(ctx context.Context, userID, city string) (*Suggestion, error)

	// Prompt returns the stylist prompt Generate would send, without calling the stylist.
	Prompt(ctx context.Context, userID, city string) (string, error)

	// FindGaps reports essential categories missing from the user's wardrobe.
	FindGaps(ctx context.Context, userID string) (*GapReport, error)
}
