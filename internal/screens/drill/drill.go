// Package drill is the question screen shared by Quiz, Type It and Speed.
package drill

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/screens/summary"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/ui/components"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

const timerInterval = time.Second

// DrillScreen asks scored questions until the round is over, then replaces
// itself with the result panel.
type DrillScreen struct {
	deps     screen.Deps
	mode     session.Mode
	category vocab.Category

	quiz   *session.Quiz
	typeIt *session.TypeIt
	speed  *session.Speed

	question *session.Question
	selected int
	input    components.TextInput

	feedback *session.Feedback
	seq      int
	notice   string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.BackHandler = (*DrillScreen)(nil)

// New starts a scored round of mode over words. It fails with
// session.ErrNotEnoughWords or session.ErrNoWords for undersized lists.
func New(deps screen.Deps, mode session.Mode, category vocab.Category, words []vocab.Word) (*DrillScreen, error) {
	ctx := context.Background()
	d := &DrillScreen{deps: deps, mode: mode, category: category}

	var err error
	switch mode {
	case session.ModeQuiz:
		d.quiz, err = session.NewQuiz(ctx, deps.Env, words)
	case session.ModeType:
		d.typeIt, err = session.NewTypeIt(ctx, deps.Env, words)
	case session.ModeSpeed:
		d.speed, err = session.NewSpeed(ctx, deps.Env, words)
	default:
		err = errors.New("drill: unsupported mode " + string(mode))
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (d *DrillScreen) Init() tea.Cmd {
	if !d.load() {
		return d.finish()
	}
	var cmds []tea.Cmd
	if d.question.Choices == nil {
		cmds = append(cmds, d.input.Init())
	}
	if d.speed != nil {
		cmds = append(cmds, tickCmd())
	}
	return tea.Batch(cmds...)
}

func (d *DrillScreen) Title() string {
	if d.category == "" {
		return d.mode.Label()
	}
	return d.category.Label() + " · " + d.mode.Label()
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.feedback != nil {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	if d.mode == session.ModeType {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Stop"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "Esc", Description: "Stop"},
	}
}

// load fetches the open question; false means the round is over.
func (d *DrillScreen) load() bool {
	d.feedback = nil
	d.selected = 0
	switch {
	case d.quiz != nil:
		d.question = d.quiz.Current()
	case d.typeIt != nil:
		d.question = d.typeIt.Current()
	case d.speed != nil:
		d.question, _ = d.speed.Next()
	}
	if d.question == nil {
		return false
	}
	if d.question.Choices == nil {
		d.input = components.NewTextInput("Type the German word...", 60)
	}
	return true
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return d.handleTick()

	case feedbackDoneMsg:
		if msg.seq != d.seq || d.feedback == nil {
			return d, nil
		}
		return d, d.advance()

	case tea.KeyPressMsg:
		return d.handleKey(msg)
	}

	if d.question != nil && d.question.Choices == nil && d.feedback == nil {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DrillScreen) handleTick() (screen.Screen, tea.Cmd) {
	if d.speed == nil || d.speed.Done() {
		return d, nil
	}
	// The round ends on the clock even if the learner never answers;
	// the open item is simply not scored.
	if d.speed.Expired() && d.feedback == nil {
		return d, d.finish()
	}
	return d, tickCmd()
}

func (d *DrillScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if d.feedback != nil {
		return d, d.advance()
	}
	if d.question == nil {
		return d, nil
	}

	key := msg.String()
	if d.question.Choices == nil {
		if key == "enter" {
			if d.input.Value() == "" {
				return d, nil
			}
			return d, d.submit(d.input.Value())
		}
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}

	switch key {
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.question.Choices)-1 {
			d.selected++
		}
	case "enter":
		return d, d.choose(d.selected)
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(d.question.Choices) {
			d.selected = idx
			return d, d.choose(idx)
		}
	}
	return d, nil
}

func (d *DrillScreen) choose(idx int) tea.Cmd {
	ctx := context.Background()
	var (
		fb  session.Feedback
		err error
	)
	switch {
	case d.quiz != nil:
		fb, err = d.quiz.Choose(ctx, idx)
	case d.speed != nil:
		fb, err = d.speed.Choose(ctx, idx)
	}
	return d.scored(fb, err)
}

func (d *DrillScreen) submit(raw string) tea.Cmd {
	fb, err := d.typeIt.Answer(context.Background(), raw)
	if err == nil {
		d.input.Submit(fb.Correct)
	}
	return d.scored(fb, err)
}

func (d *DrillScreen) scored(fb session.Feedback, err error) tea.Cmd {
	if errors.Is(err, session.ErrRoundOver) {
		d.notice = "Too late! That answer did not count."
		return d.finish()
	}
	if err != nil {
		d.deps.Log().Warn("answer rejected", zap.String("mode", string(d.mode)), zap.Error(err))
		return nil
	}
	if fb.SaveErr != nil {
		d.notice = "Progress could not be saved."
	} else {
		d.notice = ""
	}
	d.feedback = &fb
	d.seq++
	seq := d.seq
	return tea.Tick(d.mode.FeedbackDelay(), func(time.Time) tea.Msg {
		return feedbackDoneMsg{seq: seq}
	})
}

// advance moves past the feedback to the next question or the result.
func (d *DrillScreen) advance() tea.Cmd {
	ctx := context.Background()
	d.seq++
	more := true
	switch {
	case d.quiz != nil:
		more = d.quiz.Next(ctx)
	case d.typeIt != nil:
		more = d.typeIt.Next(ctx)
	}
	if !more || !d.load() {
		return d.finish()
	}
	if d.question.Choices == nil {
		return d.input.Init()
	}
	return nil
}

func (d *DrillScreen) finish() tea.Cmd {
	var res session.Result
	switch {
	case d.quiz != nil:
		res = d.quiz.Result()
	case d.typeIt != nil:
		res = d.typeIt.Result()
	case d.speed != nil:
		res = d.speed.Finish(context.Background())
	}
	d.question = nil
	return router.Replace(summary.New(res, d.deps.Doc()))
}

// Back stops the round early. A speed round still records its score.
func (d *DrillScreen) Back() tea.Cmd {
	if d.speed != nil {
		return d.finish()
	}
	return router.Pop()
}

func tickCmd() tea.Cmd {
	return tea.Tick(timerInterval, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
