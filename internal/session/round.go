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

// round is the fixed-length question loop shared by Quiz and Type It.
type round struct {
	env     *Env
	mode    Mode
	words   []vocab.Word // whole list, used as the distractor pool
	batch   []vocab.Word
	idx     int
	score   int
	xp      int
	phase   Phase
	current *Question
	asked   time.Time
	started time.Time
}

func newRound(ctx context.Context, env Env, mode Mode, words []vocab.Word) (*round, error) {
	if len(words) < mode.MinWords() {
		if mode.MinWords() > 1 {
			return nil, ErrNotEnoughWords
		}
		return nil, ErrNoWords
	}
	env.fill()
	n := min(env.BatchSize, len(words))
	r := &round{
		env:   &env,
		mode:  mode,
		words: words,
		batch: selection.Sample(env.Rand, words, env.weight, n),
		phase: PhaseIdle,
	}
	r.started = env.Now()
	env.sessionEvent(ctx, store.SessionEventData{
		Action:   "start",
		Mode:     string(mode),
		Category: categoryOf(words),
	})
	r.present()
	return r, nil
}

// present builds the question at idx.
func (r *round) present() {
	w := r.batch[r.idx]
	q := &Question{
		Mode:    r.mode,
		Index:   r.idx + 1,
		Total:   len(r.batch),
		Word:    w,
		Mastery: r.env.Doc.MasteryOf(w),
		Score:   r.score,
	}

	switch r.mode {
	case ModeType:
		q.Direction = EnglishToGerman
		q.Hint = w.Hint
	default:
		// Odd questions prompt English, even ones German.
		if q.Index%2 == 1 {
			q.Direction = EnglishToGerman
		} else {
			q.Direction = GermanToEnglish
		}
	}
	q.Prompt = q.Direction.Prompt(w)
	q.Expected = q.Direction.Expected(w)

	if r.mode != ModeType {
		pool := make([]string, 0, len(r.words))
		for _, o := range r.words {
			pool = append(pool, q.Direction.Expected(o))
		}
		q.Choices = distractor.Build(r.env.Rand, q.Expected, pool)
	}

	r.current = q
	r.phase = PhasePresenting
}

func (r *round) question() *Question {
	if r.phase == PhasePresenting {
		r.phase = PhaseAwaitingInput
		r.asked = r.env.Now()
	}
	if r.phase != PhaseAwaitingInput && r.phase != PhaseScored {
		return nil
	}
	return r.current
}

func (r *round) submit(ctx context.Context, given string, correct bool) (Feedback, error) {
	if r.phase == PhasePresenting {
		r.question()
	}
	if r.phase != PhaseAwaitingInput {
		return Feedback{}, ErrNotAwaitingInput
	}
	q := r.current
	fb := score(ctx, r.env, r.mode, q, given, correct, r.asked)
	if correct {
		r.score++
		r.xp += fb.XPGained
	}
	r.phase = PhaseScored
	return fb, nil
}

// advance moves past a scored question and reports whether another one is
// waiting.
func (r *round) advance(ctx context.Context) bool {
	if r.phase != PhaseScored {
		return r.phase != PhaseComplete
	}
	r.idx++
	if r.idx >= len(r.batch) {
		r.phase = PhaseComplete
		r.current = nil
		r.env.sessionEvent(ctx, store.SessionEventData{
			Action:          "end",
			Mode:            string(r.mode),
			Category:        categoryOf(r.words),
			QuestionsServed: len(r.batch),
			CorrectAnswers:  r.score,
			XPEarned:        r.xp,
			DurationSecs:    int(r.env.Now().Sub(r.started).Seconds()),
		})
		return false
	}
	r.present()
	return true
}

func (r *round) result() Result {
	total := len(r.batch)
	pct := Percent(r.score, total)
	g := GradeFor(pct)
	return Result{
		Mode:     r.mode,
		Score:    r.score,
		Total:    total,
		Percent:  pct,
		Grade:    g,
		Message:  GradeMessage(r.mode, g),
		XPEarned: r.xp,
	}
}

// score applies one answer to the document, persists it and records the
// answer event.
func score(ctx context.Context, env *Env, mode Mode, q *Question, given string, correct bool, asked time.Time) Feedback {
	w := q.Word
	rec := env.Doc.RecordAnswer(w.Category, w.German, correct)
	fb := Feedback{
		Correct:  correct,
		Given:    given,
		Expected: q.Expected,
		Message:  PraiseFor(env.Rand, correct),
		Mastery:  rec.Mastery,
	}
	if correct {
		fb.XPGained = mode.XPPerCorrect()
		env.Doc.AddXP(fb.XPGained)
	}
	fb.SaveErr = env.save(ctx)

	env.answerEvent(ctx, store.AnswerEventData{
		Mode:          string(mode),
		Category:      string(w.Category),
		Word:          w.German,
		Prompt:        q.Prompt,
		CorrectAnswer: q.Expected,
		LearnerAnswer: given,
		Correct:       correct,
		TimeMs:        int(env.Now().Sub(asked).Milliseconds()),
	})
	return fb
}

// Quiz is the multiple-choice mode.
type Quiz struct {
	r *round
}

// NewQuiz samples up to BatchSize words and presents the first question.
// It needs at least two words.
func NewQuiz(ctx context.Context, env Env, words []vocab.Word) (*Quiz, error) {
	r, err := newRound(ctx, env, ModeQuiz, words)
	if err != nil {
		return nil, err
	}
	return &Quiz{r: r}, nil
}

// Current returns the open question, or nil once the quiz is complete.
func (q *Quiz) Current() *Question { return q.r.question() }

// Choose scores the choice at the 0-based index. Out-of-range indexes are
// wrong answers.
func (q *Quiz) Choose(ctx context.Context, idx int) (Feedback, error) {
	cur := q.r.current
	if cur == nil {
		return Feedback{}, ErrNotAwaitingInput
	}
	given := ""
	if idx >= 0 && idx < len(cur.Choices) {
		given = cur.Choices[idx]
	}
	return q.r.submit(ctx, given, idx >= 0 && idx == distractor.IndexOf(cur.Choices, cur.Expected))
}

// Answer scores a raw 1-based menu answer such as "3". Unparseable input
// is a wrong answer.
func (q *Quiz) Answer(ctx context.Context, raw string) (Feedback, error) {
	cur := q.r.current
	if cur == nil {
		return Feedback{}, ErrNotAwaitingInput
	}
	idx, ok := answer.ParseChoice(raw, len(cur.Choices))
	if !ok {
		idx = -1
	}
	return q.Choose(ctx, idx)
}

// Next advances after feedback; false means the quiz is complete.
func (q *Quiz) Next(ctx context.Context) bool { return q.r.advance(ctx) }

// Done reports whether every question has been answered.
func (q *Quiz) Done() bool { return q.r.phase == PhaseComplete }

// Phase returns the controller phase.
func (q *Quiz) Phase() Phase { return q.r.phase }

// Result returns the score so far; final once Done.
func (q *Quiz) Result() Result { return q.r.result() }

// TypeIt asks for the German word given the English one and compares typed
// answers with umlaut folding.
type TypeIt struct {
	r *round
}

// NewTypeIt samples up to BatchSize words and presents the first question.
func NewTypeIt(ctx context.Context, env Env, words []vocab.Word) (*TypeIt, error) {
	r, err := newRound(ctx, env, ModeType, words)
	if err != nil {
		return nil, err
	}
	return &TypeIt{r: r}, nil
}

// Current returns the open question, or nil once the round is complete.
func (t *TypeIt) Current() *Question { return t.r.question() }

// Answer scores typed input.
func (t *TypeIt) Answer(ctx context.Context, input string) (Feedback, error) {
	cur := t.r.current
	if cur == nil {
		return Feedback{}, ErrNotAwaitingInput
	}
	return t.r.submit(ctx, input, answer.Matches(input, cur.Expected))
}

// Next advances after feedback; false means the round is complete.
func (t *TypeIt) Next(ctx context.Context) bool { return t.r.advance(ctx) }

// Done reports whether every question has been answered.
func (t *TypeIt) Done() bool { return t.r.phase == PhaseComplete }

// Phase returns the controller phase.
func (t *TypeIt) Phase() Phase { return t.r.phase }

// Result returns the score so far; final once Done.
func (t *TypeIt) Result() Result { return t.r.result() }
