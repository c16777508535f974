package progress

import (
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// Completion returns the fraction of words at or above LearnedThreshold.
// An empty list is 0% complete.
func (d *Document) Completion(words []vocab.Word) float64 {
	if len(words) == 0 {
		return 0
	}
	learned := 0
	for _, w := range words {
		if d.MasteryOf(w) >= LearnedThreshold {
			learned++
		}
	}
	return float64(learned) / float64(len(words))
}

// LearnedCount counts all records at or above LearnedThreshold, across
// every category, including words no longer in the vocabulary.
func (d *Document) LearnedCount() int {
	n := 0
	for _, r := range d.Words {
		if r.Mastery >= LearnedThreshold {
			n++
		}
	}
	return n
}

// CategoryStats is one row of the progress overview.
type CategoryStats struct {
	Category   vocab.Category
	Words      int
	Learned    int
	Completion float64
	Correct    int
	Wrong      int
}

// Summary is the aggregate shown on the home screen and by `stats`.
type Summary struct {
	XP         int
	Streak     int
	LastPlayed string
	BestSpeed  int
	Learned    int
	Categories []CategoryStats
}

// Summarize builds the overview for every category in menu order.
// Categories without words are included with zero counts.
func Summarize(d *Document, cat *vocab.Catalog) Summary {
	s := Summary{
		XP:         d.XP,
		Streak:     d.Streak,
		LastPlayed: d.LastPlayed,
		BestSpeed:  d.BestSpeed,
		Learned:    d.LearnedCount(),
	}
	for _, c := range vocab.Categories {
		words := cat.Words(c)
		row := CategoryStats{Category: c, Words: len(words)}
		for _, w := range words {
			r, ok := d.Words[Key(c, w.German)]
			if !ok {
				continue
			}
			if r.Mastery >= LearnedThreshold {
				row.Learned++
			}
			row.Correct += r.Correct
			row.Wrong += r.Wrong
		}
		row.Completion = d.Completion(words)
		s.Categories = append(s.Categories, row)
	}
	return s
}

// Percent converts a completion fraction to a whole percentage, truncating.
func Percent(fraction float64) int {
	return int(fraction * 100)
}
