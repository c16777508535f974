// Package distractor builds multiple-choice answer sets.
package distractor

import "math/rand/v2"

// Size is the number of choices shown when the pool is large enough.
const Size = 4

// Build returns correct plus up to Size-1 distinct alternatives drawn from
// pool, in random order. Pool entries equal to correct and repeated entries
// are ignored, so a small pool yields fewer choices; an empty pool yields
// just [correct].
func Build(r *rand.Rand, correct string, pool []string) []string {
	seen := map[string]bool{correct: true}
	var candidates []string
	for _, p := range pool {
		if seen[p] {
			continue
		}
		seen[p] = true
		candidates = append(candidates, p)
	}
	r.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > Size-1 {
		candidates = candidates[:Size-1]
	}

	choices := append([]string{correct}, candidates...)
	r.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

// IndexOf returns the position of s in choices, or -1.
func IndexOf(choices []string, s string) int {
	for i, c := range choices {
		if c == s {
			return i
		}
	}
	return -1
}
