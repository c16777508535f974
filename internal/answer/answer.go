// Package answer compares learner input with expected answers.
package answer

import (
	"strconv"
	"strings"
)

var foldUmlauts = strings.NewReplacer(
	"ü", "u", "Ü", "u",
	"ö", "o", "Ö", "o",
	"ä", "a", "Ä", "a",
	"ß", "ss",
)

// Normalize lowercases and trims s and folds German umlauts to their base
// vowel (ü -> u, not ue) and ß to ss, so that learners without a German
// keyboard can still type answers.
func Normalize(s string) string {
	return foldUmlauts.Replace(strings.ToLower(strings.TrimSpace(s)))
}

// Matches reports whether input equals expected after normalization. There
// is no fuzzy matching: "Mueller" does not match "Müller".
func Matches(input, expected string) bool {
	return Normalize(input) == Normalize(expected)
}

// ParseChoice converts a 1-based menu answer ("1".."n") to a 0-based index.
// Anything else, including out-of-range numbers, reports false.
func ParseChoice(input string, n int) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || v < 1 || v > n {
		return 0, false
	}
	return v - 1, true
}
