package outfits

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by outfit services and stylists
var (
	ErrEmptyWardrobe        = errors.New("your wardrobe is empty")
	ErrWardrobeUnavailable  = errors.New("failed to fetch clothing items")
	ErrStylistNotConfigured = errors.New("stylist API not configured")
	ErrEmptyReply           = errors.New("stylist returned no content")
	ErrInvalidReply         = errors.New("invalid response from outfit generator")
)

// UpstreamError is returned when the stylist API fails with a status that is not worth retrying
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("stylist returned %d: %s", e.StatusCode, e.Message)
}
