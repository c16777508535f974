// Package selection picks practice items with a bias toward weak ones.
package selection

import (
	"math/rand/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
)

// attemptsPerItem bounds the weighted phase of Sample to n*attemptsPerItem
// draws so that it always terminates.
const attemptsPerItem = 20

// Weight maps a mastery level to a sampling weight: 6 for an unseen word
// down to 1 for a fully mastered one. It is never zero, so mastered words
// still come up occasionally.
func Weight(mastery int) int {
	if mastery < 0 {
		mastery = 0
	}
	if mastery > progress.MaxMastery {
		mastery = progress.MaxMastery
	}
	return progress.MaxMastery - mastery + 1
}

// Sample returns up to min(n, len(items)) distinct items in draw order.
//
// The first phase draws with probability proportional to weight, skipping
// items already chosen, for at most n*20 draws. If that leaves the result
// short, the second phase pads it with the remaining items in uniformly
// shuffled order.
func Sample[T any](r *rand.Rand, items []T, weight func(T) int, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}

	weights := make([]int, len(items))
	total := 0
	for i, it := range items {
		w := weight(it)
		if w < 1 {
			w = 1
		}
		weights[i] = w
		total += w
	}

	chosen := make(map[int]bool, n)
	out := make([]T, 0, n)
	for attempt := 0; attempt < n*attemptsPerItem && len(out) < n; attempt++ {
		i := drawIndex(r, weights, total)
		if chosen[i] {
			continue
		}
		chosen[i] = true
		out = append(out, items[i])
	}

	if len(out) < n {
		rest := make([]int, 0, len(items)-len(out))
		for i := range items {
			if !chosen[i] {
				rest = append(rest, i)
			}
		}
		r.Shuffle(len(rest), func(a, b int) { rest[a], rest[b] = rest[b], rest[a] })
		for _, i := range rest[:n-len(out)] {
			out = append(out, items[i])
		}
	}
	return out
}

// Pick draws a single item with probability proportional to weight, with
// replacement. It reports false for an empty list.
func Pick[T any](r *rand.Rand, items []T, weight func(T) int) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	weights := make([]int, len(items))
	total := 0
	for i, it := range items {
		w := weight(it)
		if w < 1 {
			w = 1
		}
		weights[i] = w
		total += w
	}
	return items[drawIndex(r, weights, total)], true
}

func drawIndex(r *rand.Rand, weights []int, total int) int {
	x := r.IntN(total)
	for i, w := range weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(weights) - 1
}
