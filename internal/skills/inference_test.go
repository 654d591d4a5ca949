package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest_MatchesKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single keyword",
			text: "Need someone to weed the flower beds",
			want: []string{"Gardening"},
		},
		{
			name: "multiple tags in canonical order",
			text: "Help carry boxes and fix a leaky faucet",
			want: []string{"Heavy Lifting", "Repairs"},
		},
		{
			name: "case insensitive",
			text: "TEACH seniors to use EMAIL",
			want: []string{"Tech Help", "Tutoring"},
		},
		{
			name: "keyword inside a longer word",
			text: "Weekly pickups from the food bank",
			want: []string{"Transportation", "Cooking"},
		},
		{
			name: "shared keyword suggests both tags",
			text: "paint the community wall",
			want: []string{"Repairs", "Arts & Crafts"},
		},
		{
			name: "no trigger keywords",
			text: "Just chat with a neighbour for an hour",
			want: []string{},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
		{
			name: "whitespace only",
			text: "   \t\n",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.text))
		})
	}
}

func TestSuggest_NoDuplicates(t *testing.T) {
	// Several Heavy Lifting triggers in one text still yield the tag once.
	got := Suggest("Move heavy boxes, carry and lift furniture")
	assert.Equal(t, []string{"Heavy Lifting"}, got)
}

func TestSuggest_NeverSuggestsOthers(t *testing.T) {
	got := Suggest("others other misc miscellaneous")
	assert.NotContains(t, got, "Others")
}

func TestVocabulary(t *testing.T) {
	vocab := Vocabulary()
	assert.Len(t, vocab, 11)
	assert.Equal(t, "Heavy Lifting", vocab[0])
	assert.Equal(t, "Others", vocab[len(vocab)-1])

	for _, tag := range vocab {
		assert.True(t, IsValidTag(tag))
	}
	assert.False(t, IsValidTag("Snowboarding"))
}
