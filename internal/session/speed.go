package session

import (
	"context"
	"time"

	"github.com/wortschatz/wortschatz/internal/answer"
	"github.com/wortschatz/wortschatz/internal/distractor"
	"github.com/wortschatz/wortschatz/internal/selection"
	"github.com/wortschatz/wortschatz/internal/store"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// Speed is a timed multiple-choice round. Words are drawn with replacement
// and each item picks its direction at random. The deadline is checked
// before an item is shown and again when its answer arrives; an answer that
// comes in late is discarded.
type Speed struct {
	env      *Env
	words    []vocab.Word
	started  time.Time
	deadline time.Time
	phase    Phase
	current  *Question
	asked    time.Time
	score    int
	attempts int
	xp       int
	finished bool
	result   Result
}

// NewSpeed starts the clock. It needs at least two words.
func NewSpeed(ctx context.Context, env Env, words []vocab.Word) (*Speed, error) {
	if len(words) < ModeSpeed.MinWords() {
		return nil, ErrNotEnoughWords
	}
	env.fill()
	s := &Speed{
		env:   &env,
		words: words,
		phase: PhaseIdle,
	}
	s.started = env.Now()
	s.deadline = s.started.Add(env.SpeedDuration)
	env.sessionEvent(ctx, store.SessionEventData{
		Action:   "start",
		Mode:     string(ModeSpeed),
		Category: categoryOf(words),
	})
	return s, nil
}

// Remaining returns the time left, never negative.
func (s *Speed) Remaining() time.Duration {
	d := s.deadline.Sub(s.env.Now())
	if d < 0 {
		return 0
	}
	return d
}

// Expired reports whether the deadline has passed.
func (s *Speed) Expired() bool {
	return !s.env.Now().Before(s.deadline)
}

// Next presents a new item. It returns false once the deadline has passed,
// in which case no item is shown.
func (s *Speed) Next() (*Question, bool) {
	if s.phase == PhaseComplete {
		return nil, false
	}
	if s.phase == PhaseAwaitingInput {
		return s.current, true
	}
	if s.Expired() {
		s.phase = PhaseComplete
		s.current = nil
		return nil, false
	}

	w, _ := selection.Pick(s.env.Rand, s.words, s.env.weight)
	dir := EnglishToGerman
	if s.env.Rand.IntN(2) == 1 {
		dir = GermanToEnglish
	}
	q := &Question{
		Mode:      ModeSpeed,
		Index:     s.attempts + 1,
		Word:      w,
		Direction: dir,
		Prompt:    dir.Prompt(w),
		Expected:  dir.Expected(w),
		Mastery:   s.env.Doc.MasteryOf(w),
		Score:     s.score,
	}
	pool := make([]string, 0, len(s.words))
	for _, o := range s.words {
		pool = append(pool, dir.Expected(o))
	}
	q.Choices = distractor.Build(s.env.Rand, q.Expected, pool)

	s.current = q
	s.asked = s.env.Now()
	s.phase = PhaseAwaitingInput
	return q, true
}

// Current returns the open item, if any.
func (s *Speed) Current() *Question {
	if s.phase != PhaseAwaitingInput {
		return nil
	}
	return s.current
}

// Choose scores the choice at the 0-based index. If the deadline passed
// while the learner was answering, the item is not scored and ErrRoundOver
// is returned.
func (s *Speed) Choose(ctx context.Context, idx int) (Feedback, error) {
	if s.phase != PhaseAwaitingInput {
		return Feedback{}, ErrNotAwaitingInput
	}
	if s.Expired() {
		s.phase = PhaseComplete
		s.current = nil
		return Feedback{}, ErrRoundOver
	}
	q := s.current
	given := ""
	if idx >= 0 && idx < len(q.Choices) {
		given = q.Choices[idx]
	}
	correct := idx >= 0 && idx == distractor.IndexOf(q.Choices, q.Expected)

	fb := score(ctx, s.env, ModeSpeed, q, given, correct, s.asked)
	s.attempts++
	if correct {
		s.score++
		s.xp += fb.XPGained
	}
	s.phase = PhaseScored
	return fb, nil
}

// Answer scores a raw 1-based menu answer.
func (s *Speed) Answer(ctx context.Context, raw string) (Feedback, error) {
	if s.phase != PhaseAwaitingInput {
		return Feedback{}, ErrNotAwaitingInput
	}
	idx, ok := answer.ParseChoice(raw, len(s.current.Choices))
	if !ok {
		idx = -1
	}
	return s.Choose(ctx, idx)
}

// Done reports whether the round is over.
func (s *Speed) Done() bool {
	return s.phase == PhaseComplete
}

// Phase returns the controller phase.
func (s *Speed) Phase() Phase {
	return s.phase
}

// Attempts is the number of scored items.
func (s *Speed) Attempts() int {
	return s.attempts
}

// Score is the number of correct items.
func (s *Speed) Score() int {
	return s.score
}

// Finish closes the round and raises the personal best if it was beaten.
// The document is saved again only in that case. Calling Finish twice
// returns the same result.
func (s *Speed) Finish(ctx context.Context) Result {
	if s.finished {
		return s.result
	}
	s.finished = true
	s.phase = PhaseComplete
	s.current = nil

	newBest := s.env.Doc.RecordSpeedScore(s.score)
	if newBest {
		s.env.save(ctx)
	}
	s.env.sessionEvent(ctx, store.SessionEventData{
		Action:          "end",
		Mode:            string(ModeSpeed),
		Category:        categoryOf(s.words),
		QuestionsServed: s.attempts,
		CorrectAnswers:  s.score,
		XPEarned:        s.xp,
		DurationSecs:    int(s.env.Now().Sub(s.started).Seconds()),
	})

	msg := ""
	if newBest {
		msg = "NEW PERSONAL BEST!"
	}
	s.result = Result{
		Mode:      ModeSpeed,
		Score:     s.score,
		Total:     s.attempts,
		Percent:   Percent(s.score, s.attempts),
		Grade:     GradeFor(Percent(s.score, s.attempts)),
		Message:   msg,
		XPEarned:  s.xp,
		BestSpeed: s.env.Doc.BestSpeed,
		NewBest:   newBest,
	}
	return s.result
}
