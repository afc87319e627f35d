package outfits

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/CharlieZimmermann/wardrobe-app/internal/domain/clothing"
)

var (
	// fenced ```json { ... } ``` block
	fencedObjectPattern = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	// greedy fallback, first { to last }
	objectPattern = regexp.MustCompile(`(?s)\{[\s\S]*\}`)
)

// Reply is the validated content of a stylist answer
type Reply struct {
	ItemIDs     []string
	Items       []*clothing.ClothingItem
	Explanation string
}

// ExtractJSON returns the JSON object embedded in text, or "" when there is none.
// Markdown fences, line comments and trailing commas are tolerated.
func ExtractJSON(text string) string {
	raw := ""
	if m := fencedObjectPattern.FindStringSubmatch(text); len(m) > 1 {
		raw = m[1]
	} else {
		raw = objectPattern.FindString(text)
	}
	if raw == "" {
		return ""
	}

	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = stripLineComment(line)
	}
	return stripTrailingCommas(strings.Join(lines, "\n"))
}

// stripTrailingCommas drops commas directly before a closing } or ], leaving string values alone
func stripTrailingCommas(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	inString, escaped := false, false
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case !inString && ch == ',':
			j := i + 1
			for j < len(raw) && strings.IndexByte(" \t\r\n", raw[j]) >= 0 {
				j++
			}
			if j < len(raw) && (raw[j] == '}' || raw[j] == ']') {
				continue
			}
		}
		b.WriteByte(ch)
	}
	return b.String()
}

// stripLineComment drops a // comment that starts outside of a JSON string
func stripLineComment(line string) string {
	if !strings.Contains(line, "//") {
		return line
	}

	inString, escaped := false, false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case escaped:
			escaped = false
		case ch == '\\' && inString:
			escaped = true
		case ch == '"':
			inString = !inString
		case !inString && ch == '/' && i+1 < len(line) && line[i+1] == '/':
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}

// ParseReply validates a stylist answer against the wardrobe it was generated for.
// Unknown ids are dropped and the stylist's ordering is kept.
func ParseReply(text string, wardrobe []*clothing.ClothingItem) (*Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyReply
	}

	raw := ExtractJSON(text)
	if raw == "" {
		return nil, ErrInvalidReply
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, ErrInvalidReply
	}

	byID := make(map[string]*clothing.ClothingItem, len(wardrobe))
	for _, item := range wardrobe {
		byID[item.ID] = item
	}

	reply := &Reply{ItemIDs: []string{}, Items: []*clothing.ClothingItem{}}

	var ids []any
	if err := json.Unmarshal(parsed["item_ids"], &ids); err == nil {
		seen := make(map[string]bool, len(ids))
		for _, v := range ids {
			id, ok := v.(string)
			if !ok || seen[id] {
				continue
			}
			if item, ok := byID[id]; ok {
				seen[id] = true
				reply.ItemIDs = append(reply.ItemIDs, id)
				reply.Items = append(reply.Items, item)
			}
		}
	}

	explanation := MissingExplanation
	if rawExplanation, ok := parsed["explanation"]; ok && !bytes.Equal(rawExplanation, []byte("null")) {
		var s string
		if err := json.Unmarshal(rawExplanation, &s); err == nil {
			explanation = s
		}
	}
	if explanation == "" {
		explanation = EmptyExplanation
	}
	reply.Explanation = explanation

	return reply, nil
}
