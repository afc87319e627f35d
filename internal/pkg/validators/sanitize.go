package validators

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// maxSanitizePasses bounds the decode and strip loop for nested encodings
const maxSanitizePasses = 5

// SanitizeText strips any markup from user supplied free text and trims surrounding whitespace.
// Entities are decoded before stripping so encoded tags are removed too, and the
// result is stable: sanitizing it again returns it unchanged.
func SanitizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for i := 0; i < maxSanitizePasses; i++ {
		next := strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(unescapeAll(s))))
		if next == s {
			return s
		}
		s = next
	}

	// still changing after the last pass, keep the escaped form
	return strings.TrimSpace(strictPolicy.Sanitize(unescapeAll(s)))
}

func unescapeAll(s string) string {
	for i := 0; i < maxSanitizePasses; i++ {
		next := html.UnescapeString(s)
		if next == s {
			break
		}
		s = next
	}
	return s
}

// SanitizeOptional applies SanitizeText to a pointer and returns nil for empty results
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := SanitizeText(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
