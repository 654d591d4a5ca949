// Package skills maps free-text task descriptions to skill tags from the
// closed vocabulary. The suggestions are advisory: callers decide whether to
// merge them into a task's final skill set.
package skills

import "strings"

// keywordEntry binds a vocabulary tag to its trigger substrings. Order here is
// the canonical vocabulary order and drives the order of suggestions.
type keywordEntry struct {
	Tag      string
	Keywords []string
}

var keywordTable = []keywordEntry{
	{"Heavy Lifting", []string{"heavy", "carry", "move", "lift", "boxes"}},
	{"Tech Help", []string{"computer", "tech", "phone", "email", "software", "internet"}},
	{"Gardening", []string{"garden", "plant", "weed", "mow", "lawn", "flower"}},
	{"Transportation", []string{"drive", "transport", "pickup", "delivery", "grocery"}},
	{"Cleaning", []string{"clean", "sweep", "mop", "tidy", "organize", "sort", "litter"}},
	{"Cooking", []string{"cook", "meal", "food", "bake", "kitchen"}},
	{"Tutoring", []string{"teach", "tutor", "lesson", "homework", "learn"}},
	{"Pet Care", []string{"dog", "cat", "pet", "walk", "feed", "animal"}},
	{"Repairs", []string{"fix", "repair", "plumb", "electric", "paint", "faucet"}},
	{"Arts & Crafts", []string{"art", "craft", "paint", "draw", "mural", "creative"}},
	// "Others" is part of the vocabulary but has no triggers, so it is never
	// inferred; posters pick it explicitly.
	{"Others", nil},
}

// Vocabulary returns the closed set of skill tags in canonical order.
func Vocabulary() []string {
	tags := make([]string, len(keywordTable))
	for i, e := range keywordTable {
		tags[i] = e.Tag
	}
	return tags
}

// IsValidTag reports whether tag belongs to the vocabulary.
func IsValidTag(tag string) bool {
	for _, e := range keywordTable {
		if e.Tag == tag {
			return true
		}
	}
	return false
}

// Suggest returns the tags whose keyword list has at least one
// case-insensitive substring match in text, in canonical order with no
// duplicates. Empty or whitespace-only text yields no suggestions.
func Suggest(text string) []string {
	lowered := strings.ToLower(strings.TrimSpace(text))
	if lowered == "" {
		return []string{}
	}

	tags := []string{}
	for _, e := range keywordTable {
		for _, kw := range e.Keywords {
			if strings.Contains(lowered, kw) {
				tags = append(tags, e.Tag)
				break
			}
		}
	}
	return tags
}
