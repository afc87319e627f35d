// Package strutil contains small string conversion helpers used by handlers and domain input parsing.
package strutil

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ConvertToInt converts a query value to int, returning -1 when it is not a number
// so that range validation rejects it.
func ConvertToInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1
	}
	return v
}

// NilIfEmpty returns nil for an empty string and a pointer to s otherwise
func NilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ParseTagList accepts either a JSON array ("[\"casual\",\"striped\"]") or a
// comma separated list ("casual, striped"). A malformed JSON array is kept as a single tag.
func ParseTagList(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var values []interface{}
		if err := json.Unmarshal([]byte(trimmed), &values); err != nil {
			return []string{raw}
		}
		tags := make([]string, 0, len(values))
		for _, v := range values {
			if v == nil {
				continue
			}
			if s, ok := v.(string); ok {
				tags = append(tags, s)
			} else {
				tags = append(tags, fmt.Sprint(v))
			}
		}
		return CompactStrings(tags)
	}

	parts := strings.Split(trimmed, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return CompactStrings(parts)
}

// CompactStrings drops empty entries in place and returns the shortened slice
func CompactStrings(values []string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
