package session

import (
	"context"
	"strings"

	"github.com/wortschatz/wortschatz/internal/selection"
	"github.com/wortschatz/wortschatz/internal/store"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// Card is the flashcard currently shown in Learn mode.
type Card struct {
	Word     vocab.Word
	Index    int // 1-based
	Total    int
	Revealed bool
	Mastery  int
}

// LearnAction is what a key press did to the deck.
type LearnAction int

const (
	LearnReveal LearnAction = iota
	LearnNext
	LearnPrevious
	LearnQuit
)

// Learn is a flashcard deck ordered by the weighted sampler. It never
// scores answers.
type Learn struct {
	env      *Env
	cards    []vocab.Word
	idx      int
	revealed bool
	phase    Phase
	viewed   int
}

// NewLearn orders words weakest-first (weighted random) and opens the deck
// on the first card.
func NewLearn(ctx context.Context, env Env, words []vocab.Word) (*Learn, error) {
	if len(words) < ModeLearn.MinWords() {
		return nil, ErrNoWords
	}
	env.fill()
	l := &Learn{
		env:   &env,
		cards: selection.Sample(env.Rand, words, env.weight, len(words)),
		phase: PhaseAwaitingInput,
	}
	env.sessionEvent(ctx, store.SessionEventData{
		Action:   "start",
		Mode:     string(ModeLearn),
		Category: categoryOf(words),
	})
	return l, nil
}

// Card returns the current card.
func (l *Learn) Card() Card {
	w := l.cards[l.idx]
	return Card{
		Word:     w,
		Index:    l.idx + 1,
		Total:    len(l.cards),
		Revealed: l.revealed,
		Mastery:  l.env.Doc.MasteryOf(w),
	}
}

// Handle interprets one line of input: "n" next, "p" previous, "q" quit and
// anything else reveals the answer.
func (l *Learn) Handle(ctx context.Context, input string) LearnAction {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "n":
		l.Next()
		return LearnNext
	case "p":
		l.Previous()
		return LearnPrevious
	case "q":
		l.Quit(ctx)
		return LearnQuit
	}
	l.Reveal()
	return LearnReveal
}

// Reveal shows the translation and extras of the current card.
func (l *Learn) Reveal() {
	l.revealed = true
}

// Next moves forward, wrapping to the first card. The card being left gets
// an empty progress record if it had none; nothing else changes and the
// document is not saved here.
func (l *Learn) Next() {
	w := l.cards[l.idx]
	l.env.Doc.Touch(w.Category, w.German)
	l.viewed++
	l.idx = (l.idx + 1) % len(l.cards)
	l.revealed = false
}

// Previous moves back, wrapping to the last card.
func (l *Learn) Previous() {
	l.idx = (l.idx - 1 + len(l.cards)) % len(l.cards)
	l.revealed = false
}

// Quit ends the deck.
func (l *Learn) Quit(ctx context.Context) {
	if l.phase == PhaseComplete {
		return
	}
	l.phase = PhaseComplete
	l.env.sessionEvent(ctx, store.SessionEventData{
		Action:          "end",
		Mode:            string(ModeLearn),
		Category:        categoryOf(l.cards),
		QuestionsServed: l.viewed,
	})
}

// Done reports whether the learner quit.
func (l *Learn) Done() bool {
	return l.phase == PhaseComplete
}

// Phase returns the controller phase.
func (l *Learn) Phase() Phase {
	return l.phase
}

// categoryOf returns the shared category of words, or "all" when they come
// from several.
func categoryOf(words []vocab.Word) string {
	if len(words) == 0 {
		return ""
	}
	c := words[0].Category
	for _, w := range words[1:] {
		if w.Category != c {
			return string(vocab.All)
		}
	}
	return string(c)
}
