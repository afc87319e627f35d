//go:build unit
// +build unit

package outfits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain object", input: `{"a": 1}`, expected: `{"a": 1}`},
		{name: "surrounded by prose", input: "Here you go: {\"a\": 1} enjoy", expected: `{"a": 1}`},
		{name: "fenced block", input: "```json\n{\"a\": 1}\n```", expected: `{"a": 1}`},
		{name: "trailing comma", input: `{"a": [1, 2,],}`, expected: `{"a": [1, 2]}`},
		{name: "line comment", input: "{\n\"url\": \"http://x.io\", // link\n\"b\": 2\n}", expected: "{\n\"url\": \"http://x.io\",\n\"b\": 2\n}"},
		{name: "comma inside string kept", input: `{"explanation": "layers (coat, ]scarf), }done",}`, expected: `{"explanation": "layers (coat, ]scarf), }done"}`},
		{name: "escaped quote inside string", input: `{"a": "say \"hi, ]\"", "b": [1,],}`, expected: `{"a": "say \"hi, ]\"", "b": [1]}`},
		{name: "no object", input: "sorry, no outfit today", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractJSON(tt.input))
		})
	}
}

func TestParseReply_FiltersUnknownIDsAndKeepsOrder(t *testing.T) {
	reply, err := ParseReply("```json\n{\"item_ids\": [\"b2\", \"zz\", 7, \"a1\", \"b2\"], \"explanation\": \"Navy over denim.\"}\n```", testWardrobe())
	require.NoError(t, err)

	assert.Equal(t, []string{"b2", "a1"}, reply.ItemIDs)
	require.Len(t, reply.Items, 2)
	assert.Equal(t, "jeans", reply.Items[0].ItemType)
	assert.Equal(t, "jacket", reply.Items[1].ItemType)
	assert.Equal(t, "Navy over denim.", reply.Explanation)
}

func TestParseReply_ExplanationWithBracketsUntouched(t *testing.T) {
	reply, err := ParseReply(`{"item_ids": ["a1",], "explanation": "Jacket, ] then jeans, }",}`, testWardrobe())
	require.NoError(t, err)

	assert.Equal(t, []string{"a1"}, reply.ItemIDs)
	assert.Equal(t, "Jacket, ] then jeans, }", reply.Explanation)
}

func TestParseReply_ExplanationFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{name: "missing", text: `{"item_ids": ["a1"]}`, expected: MissingExplanation},
		{name: "not a string", text: `{"item_ids": ["a1"], "explanation": 3}`, expected: MissingExplanation},
		{name: "null", text: `{"item_ids": ["a1"], "explanation": null}`, expected: MissingExplanation},
		{name: "empty", text: `{"item_ids": ["a1"], "explanation": ""}`, expected: EmptyExplanation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply, err := ParseReply(tt.text, testWardrobe())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reply.Explanation)
		})
	}
}

func TestParseReply_ItemIDsNotAnArray(t *testing.T) {
	reply, err := ParseReply(`{"item_ids": "a1", "explanation": "x"}`, testWardrobe())
	require.NoError(t, err)
	assert.Empty(t, reply.ItemIDs)
	assert.NotNil(t, reply.Items)
}

func TestParseReply_Errors(t *testing.T) {
	_, err := ParseReply("   ", testWardrobe())
	assert.ErrorIs(t, err, ErrEmptyReply)

	_, err = ParseReply("no json here", testWardrobe())
	assert.ErrorIs(t, err, ErrInvalidReply)

	_, err = ParseReply(`{"item_ids": [}`, testWardrobe())
	assert.ErrorIs(t, err, ErrInvalidReply)
}
