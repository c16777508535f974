package vocab

import (
	"errors"
	"strconv"
	"strings"
)

// Category identifies one vocabulary list, e.g. "verbs".
type Category string

// Categories is the fixed, ordered list of vocabulary categories. Menu
// numbering follows this order.
var Categories = []Category{
	"numbers", "days", "months", "verbs", "nouns",
	"adjectives", "adverbs", "phrases", "colors", "greetings", "pronouns",
}

// All is the pseudo-category that concatenates every loaded category.
const All Category = "all"

var (
	// ErrEmptyCatalog is returned when no category could be loaded at all.
	ErrEmptyCatalog = errors.New("no vocabulary found")

	// ErrUnknownCategory is returned for names outside Categories.
	ErrUnknownCategory = errors.New("unknown category")
)

// Label returns the display name for a category ("verbs" -> "Verbs").
func (c Category) Label() string {
	if c == All {
		return "All Categories"
	}
	s := string(c)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// ParseCategory resolves a category by name (case-insensitive) or by its
// 1-based menu number.
func ParseCategory(s string) (Category, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == string(All) || s == "a" {
		return All, nil
	}
	for i, c := range Categories {
		if s == string(c) || s == strconv.Itoa(i+1) {
			return c, nil
		}
	}
	return "", ErrUnknownCategory
}

// Word is an immutable vocabulary entry. Category is filled in at load
// time so that mixed lists ("all" mode) still know where each word lives.
type Word struct {
	Category    Category `json:"-"`
	German      string   `json:"de"`
	English     string   `json:"en"`
	Hint        string   `json:"hint,omitempty"`
	Example     string   `json:"example,omitempty"`
	Conjugation string   `json:"conjugation,omitempty"`
	Opposite    string   `json:"opposite,omitempty"`
	Context     string   `json:"context,omitempty"`
}

// Detail is one optional line shown when a card is revealed.
type Detail struct {
	Label string
	Value string
}

// Details returns the non-empty optional fields in display order.
func (w Word) Details() []Detail {
	var out []Detail
	add := func(label, v string) {
		if v != "" {
			out = append(out, Detail{Label: label, Value: v})
		}
	}
	add("Hint", w.Hint)
	add("Example", w.Example)
	add("Conjugation", w.Conjugation)
	add("Opposite", w.Opposite)
	add("Context", w.Context)
	return out
}
