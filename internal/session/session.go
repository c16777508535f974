// Package session implements the four practice modes (Learn, Quiz, Type It
// and Speed) as turn-based controllers. Controllers never render anything:
// they hand out Question and Card payloads, accept raw input, update the
// progress document and persist it after every scored answer.
package session

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/store"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

const (
	// DefaultBatchSize is the maximum number of questions in a Quiz or
	// Type It round.
	DefaultBatchSize = 10

	// DefaultSpeedDuration is the length of a speed round.
	DefaultSpeedDuration = 60 * time.Second
)

var (
	// ErrNotEnoughWords is returned by modes that need at least two words
	// to build answer choices.
	ErrNotEnoughWords = errors.New("not enough words")

	// ErrNoWords is returned by modes that need at least one word.
	ErrNoWords = errors.New("no words in this category")

	// ErrRoundOver is returned when an answer arrives after the speed
	// round deadline. The answer is not scored.
	ErrRoundOver = errors.New("time is up")

	// ErrNotAwaitingInput is returned when an answer is submitted while no
	// question is open.
	ErrNotAwaitingInput = errors.New("no question awaiting an answer")
)

// EventSink receives the session history. It is optional; store.EventRepo
// satisfies it.
type EventSink interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Env is everything a controller needs. The progress document is shared by
// pointer and mutated in place; the caller owns it.
type Env struct {
	Doc    *progress.Document
	Saver  progress.Saver
	Events EventSink
	Logger *zap.Logger
	Rand   *rand.Rand
	Now    func() time.Time

	// SessionID tags emitted events; generated when empty.
	SessionID string

	BatchSize     int
	SpeedDuration time.Duration
}

func (e *Env) fill() {
	if e.Doc == nil {
		e.Doc = progress.New()
	}
	if e.Logger == nil {
		e.Logger = zap.NewNop()
	}
	if e.Rand == nil {
		now := uint64(time.Now().UnixNano())
		e.Rand = rand.New(rand.NewPCG(now, now>>17|1))
	}
	if e.Now == nil {
		e.Now = time.Now
	}
	if e.SessionID == "" {
		e.SessionID = uuid.NewString()
	}
	if e.BatchSize <= 0 {
		e.BatchSize = DefaultBatchSize
	}
	if e.SpeedDuration <= 0 {
		e.SpeedDuration = DefaultSpeedDuration
	}
}

// save persists the document. Failures are logged and returned but never
// undo the in-memory update.
func (e *Env) save(ctx context.Context) error {
	if e.Saver == nil {
		return nil
	}
	if err := e.Saver.Save(ctx, e.Doc); err != nil {
		e.Logger.Warn("saving progress failed", zap.Error(err))
		return err
	}
	return nil
}

func (e *Env) weight(w vocab.Word) int {
	return weightFor(e.Doc, w)
}

func (e *Env) sessionEvent(ctx context.Context, data store.SessionEventData) {
	if e.Events == nil {
		return
	}
	data.SessionID = e.SessionID
	if err := e.Events.AppendSessionEvent(ctx, data); err != nil {
		e.Logger.Warn("recording session event failed", zap.Error(err))
	}
}

func (e *Env) answerEvent(ctx context.Context, data store.AnswerEventData) {
	if e.Events == nil {
		return
	}
	data.SessionID = e.SessionID
	if err := e.Events.AppendAnswerEvent(ctx, data); err != nil {
		e.Logger.Warn("recording answer event failed", zap.Error(err))
	}
}

// Mode identifies a practice mode.
type Mode string

const (
	ModeLearn Mode = "learn"
	ModeQuiz  Mode = "quiz"
	ModeType  Mode = "type"
	ModeSpeed Mode = "speed"
)

// Modes lists the practice modes in menu order.
var Modes = []Mode{ModeLearn, ModeQuiz, ModeType, ModeSpeed}

// Label returns the menu name of the mode.
func (m Mode) Label() string {
	switch m {
	case ModeLearn:
		return "Learn (Flashcards)"
	case ModeQuiz:
		return "Quiz (Multiple Choice)"
	case ModeType:
		return "Type It"
	case ModeSpeed:
		return "Speed Round"
	}
	return string(m)
}

// XPPerCorrect is the XP credited for each correct answer in the mode.
func (m Mode) XPPerCorrect() int {
	switch m {
	case ModeQuiz:
		return 10
	case ModeType:
		return 15
	case ModeSpeed:
		return 5
	}
	return 0
}

// MinWords is the smallest word list the mode can run with.
func (m Mode) MinWords() int {
	switch m {
	case ModeQuiz, ModeSpeed:
		return 2
	}
	return 1
}

// FeedbackDelay is the pause after an answer before the next question.
func (m Mode) FeedbackDelay() time.Duration {
	if m == ModeSpeed {
		return 400 * time.Millisecond
	}
	return 1200 * time.Millisecond
}

// ParseMode resolves a mode by name or 1-based menu number.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "1", string(ModeLearn):
		return ModeLearn, true
	case "2", string(ModeQuiz):
		return ModeQuiz, true
	case "3", string(ModeType):
		return ModeType, true
	case "4", string(ModeSpeed):
		return ModeSpeed, true
	}
	return "", false
}

// Phase is the controller state shared by every mode:
// Idle -> Presenting -> AwaitingInput -> Scored -> (Presenting | Complete).
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePresenting
	PhaseAwaitingInput
	PhaseScored
	PhaseComplete
)

// Direction says which language is prompted.
type Direction int

const (
	EnglishToGerman Direction = iota
	GermanToEnglish
)

func (d Direction) String() string {
	if d == GermanToEnglish {
		return "German → English"
	}
	return "English → German"
}

// Prompt returns the side of w shown to the learner.
func (d Direction) Prompt(w vocab.Word) string {
	if d == GermanToEnglish {
		return w.German
	}
	return w.English
}

// Expected returns the side of w the learner must produce.
func (d Direction) Expected(w vocab.Word) string {
	if d == GermanToEnglish {
		return w.English
	}
	return w.German
}

// Question is what the presentation layer shows for one scored item.
type Question struct {
	Mode      Mode
	Index     int // 1-based
	Total     int // 0 for speed rounds
	Word      vocab.Word
	Direction Direction
	Prompt    string
	Expected  string
	Hint      string
	Choices   []string // nil for typed answers
	Mastery   int
	Score     int // correct answers so far
}

// Feedback describes a scored answer.
type Feedback struct {
	Correct  bool
	Given    string
	Expected string
	Message  string
	XPGained int
	Mastery  int

	// SaveErr is set when the progress document could not be persisted.
	// The answer still counts.
	SaveErr error
}

// Result summarises a finished round.
type Result struct {
	Mode      Mode
	Score     int
	Total     int
	Percent   int
	Grade     Grade
	Message   string
	XPEarned  int
	BestSpeed int
	NewBest   bool
}
