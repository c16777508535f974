// Package progress holds the learner's persistent state: per-word mastery
// records, XP, streak and the best speed-round score.
package progress

import (
	"github.com/wortschatz/wortschatz/internal/vocab"
)

const (
	// MaxMastery is the highest mastery level a word can reach.
	MaxMastery = 5

	// LearnedThreshold is the mastery at which a word counts as learned.
	LearnedThreshold = 3
)

// Record tracks one word's mastery and answer history.
type Record struct {
	Mastery int `json:"mastery"`
	Correct int `json:"correct"`
	Wrong   int `json:"wrong"`
}

// Document is the whole persisted progress state. The JSON layout matches
// the trainer's progress file so existing files keep working.
type Document struct {
	XP         int                `json:"xp"`
	Streak     int                `json:"streak"`
	LastPlayed string             `json:"last_played"`
	BestSpeed  int                `json:"best_speed"`
	Words      map[string]*Record `json:"words"`
}

// New returns an empty document.
func New() *Document {
	return &Document{Words: make(map[string]*Record)}
}

// Key builds the record key for a word: "<category>:<german>".
func Key(c vocab.Category, german string) string {
	return string(c) + ":" + german
}

// normalize repairs fields a hand-edited or older file may lack.
func (d *Document) normalize() {
	if d.Words == nil {
		d.Words = make(map[string]*Record)
	}
	for k, r := range d.Words {
		if r == nil {
			delete(d.Words, k)
			continue
		}
		r.Mastery = clampMastery(r.Mastery)
	}
	if d.XP < 0 {
		d.XP = 0
	}
	if d.BestSpeed < 0 {
		d.BestSpeed = 0
	}
}

func clampMastery(m int) int {
	if m < 0 {
		return 0
	}
	if m > MaxMastery {
		return MaxMastery
	}
	return m
}

// Mastery returns the mastery of a word, 0 if it has never been seen.
func (d *Document) Mastery(c vocab.Category, german string) int {
	if r, ok := d.Words[Key(c, german)]; ok {
		return r.Mastery
	}
	return 0
}

// MasteryOf is Mastery for a loaded word.
func (d *Document) MasteryOf(w vocab.Word) int {
	return d.Mastery(w.Category, w.German)
}

// Touch ensures a record exists for the word without changing it.
func (d *Document) Touch(c vocab.Category, german string) *Record {
	if d.Words == nil {
		d.Words = make(map[string]*Record)
	}
	k := Key(c, german)
	r, ok := d.Words[k]
	if !ok {
		r = &Record{}
		d.Words[k] = r
	}
	return r
}

// RecordAnswer applies one scored answer: a correct answer raises mastery by
// one (capped at MaxMastery), a wrong one lowers it by one (floored at 0).
func (d *Document) RecordAnswer(c vocab.Category, german string, correct bool) *Record {
	r := d.Touch(c, german)
	if correct {
		r.Correct++
		r.Mastery = clampMastery(r.Mastery + 1)
	} else {
		r.Wrong++
		r.Mastery = clampMastery(r.Mastery - 1)
	}
	return r
}

// AddXP credits XP. Non-positive amounts are ignored so XP never drops.
func (d *Document) AddXP(n int) {
	if n > 0 {
		d.XP += n
	}
}

// RecordSpeedScore raises BestSpeed if score beats it and reports whether
// it did.
func (d *Document) RecordSpeedScore(score int) bool {
	if score > d.BestSpeed {
		d.BestSpeed = score
		return true
	}
	return false
}
