// Package console is the plain line-by-line front end used by
// `wortschatz drill`. It drives the same session controllers as the TUI,
// reading one line of input at a time.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// errQuit ends the run: input closed or the context was cancelled.
var errQuit = errors.New("quit")

// Options configures a Runner.
type Options struct {
	Catalog *vocab.Catalog

	// Env is the template for every session. Its SessionID must be empty
	// so that each session gets its own.
	Env session.Env

	// Pause waits after each answer; time.Sleep when nil.
	Pause func(time.Duration)
}

// Runner is an interactive console session.
type Runner struct {
	out   io.Writer
	lines chan string
	opts  Options
	log   *zap.Logger
}

// New starts reading lines from in. The reader goroutine ends when in is
// exhausted.
func New(in io.Reader, out io.Writer, opts Options) *Runner {
	if opts.Pause == nil {
		opts.Pause = time.Sleep
	}
	if opts.Env.Doc == nil {
		opts.Env.Doc = progress.New()
	}
	log := opts.Env.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{out: out, lines: make(chan string), opts: opts, log: log}
	go r.read(in)
	return r
}

func (r *Runner) read(in io.Reader) {
	defer close(r.lines)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		r.lines <- sc.Text()
	}
}

// readLine blocks for the next line. It returns errQuit on end of input or
// when ctx is done (Ctrl+C).
func (r *Runner) readLine(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	select {
	case line, ok := <-r.lines:
		if !ok {
			fmt.Fprintln(r.out)
			return "", errQuit
		}
		return strings.TrimSpace(line), nil
	case <-ctx.Done():
		fmt.Fprintln(r.out)
		return "", errQuit
	}
}

// Run shows the menus until the learner quits. Ending the input or
// cancelling ctx is a normal exit: the farewell is printed and Run returns
// nil.
func (r *Runner) Run(ctx context.Context) error {
	r.welcome()
	defer r.farewell()

	for {
		cat, err := r.chooseCategory(ctx)
		if err != nil || cat == "" {
			return nil
		}
		if err := r.modeMenu(ctx, cat); err != nil {
			return nil
		}
	}
}

func (r *Runner) doc() *progress.Document {
	return r.opts.Env.Doc
}

func (r *Runner) welcome() {
	fmt.Fprintln(r.out, "==============================")
	fmt.Fprintln(r.out, "  WORTSCHATZ  German ⇄ English")
	fmt.Fprintln(r.out, "==============================")
	fmt.Fprintln(r.out, "Willkommen! Let's learn some German.")
	r.statsLine()
}

func (r *Runner) farewell() {
	d := r.doc()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "Tschüss! Bis bald!")
	fmt.Fprintf(r.out, "XP: %d | Streak: %d | Words learned: %d\n", d.XP, d.Streak, d.LearnedCount())
}

func (r *Runner) statsLine() {
	d := r.doc()
	fmt.Fprintf(r.out, "XP: %d | Streak: %d days | Learned: %d | Best speed: %d\n",
		d.XP, d.Streak, d.LearnedCount(), d.BestSpeed)
}

// chooseCategory returns "" when the learner picks Quit.
func (r *Runner) chooseCategory(ctx context.Context) (vocab.Category, error) {
	for {
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, "Choose a category:")
		for i, c := range vocab.Categories {
			words := r.opts.Catalog.Words(c)
			if len(words) == 0 {
				continue
			}
			pct := progress.Percent(r.doc().Completion(words))
			fmt.Fprintf(r.out, "  %2d. %-12s %s %3d%%  (%d words)\n", i+1, c.Label(), bar(pct, 10), pct, len(words))
		}
		fmt.Fprintln(r.out, "   a. All Categories")
		fmt.Fprintln(r.out, "   q. Quit")

		line, err := r.readLine(ctx, "> ")
		if err != nil {
			return "", err
		}
		if strings.EqualFold(line, "q") {
			return "", nil
		}
		c, err := vocab.ParseCategory(line)
		if err != nil {
			continue
		}
		if r.opts.Catalog.Count(c) == 0 {
			continue
		}
		return c, nil
	}
}

func (r *Runner) modeMenu(ctx context.Context, c vocab.Category) error {
	for {
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "%s: choose a mode\n", c.Label())
		for i, m := range session.Modes {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, m.Label())
		}
		fmt.Fprintln(r.out, "  b. Back")

		line, err := r.readLine(ctx, "> ")
		if err != nil {
			return err
		}
		if strings.EqualFold(line, "b") {
			return nil
		}
		m, ok := session.ParseMode(strings.ToLower(line))
		if !ok {
			continue
		}
		if err := r.play(ctx, m, r.opts.Catalog.Words(c)); err != nil {
			if errors.Is(err, errQuit) {
				return err
			}
			fmt.Fprintf(r.out, "Not enough words for %s: %v\n", m.Label(), err)
		}
	}
}

func (r *Runner) play(ctx context.Context, m session.Mode, words []vocab.Word) error {
	env := r.opts.Env
	switch m {
	case session.ModeLearn:
		l, err := session.NewLearn(ctx, env, words)
		if err != nil {
			return err
		}
		return r.learn(ctx, l)
	case session.ModeQuiz:
		q, err := session.NewQuiz(ctx, env, words)
		if err != nil {
			return err
		}
		return r.round(ctx, m, q)
	case session.ModeType:
		t, err := session.NewTypeIt(ctx, env, words)
		if err != nil {
			return err
		}
		return r.round(ctx, m, t)
	case session.ModeSpeed:
		s, err := session.NewSpeed(ctx, env, words)
		if err != nil {
			return err
		}
		return r.speed(ctx, s)
	}
	return nil
}

func (r *Runner) learn(ctx context.Context, l *session.Learn) error {
	for !l.Done() {
		c := l.Card()
		fmt.Fprintln(r.out)
		fmt.Fprintf(r.out, "[%d/%d] %s  %s\n", c.Index, c.Total, c.Word.German, session.Stars(c.Mastery))
		if c.Revealed {
			fmt.Fprintf(r.out, "  = %s\n", c.Word.English)
			for _, d := range c.Word.Details() {
				fmt.Fprintf(r.out, "  %s: %s\n", d.Label, d.Value)
			}
		}
		line, err := r.readLine(ctx, "Enter = reveal, n = next, p = previous, q = quit > ")
		if err != nil {
			l.Quit(ctx)
			return err
		}
		l.Handle(ctx, line)
	}
	return nil
}

// roundController is what Quiz and TypeIt have in common.
type roundController interface {
	Current() *session.Question
	Answer(ctx context.Context, raw string) (session.Feedback, error)
	Next(ctx context.Context) bool
	Result() session.Result
}

func (r *Runner) round(ctx context.Context, m session.Mode, rc roundController) error {
	for {
		q := rc.Current()
		if q == nil {
			break
		}
		r.question(q)
		prompt := "Your choice > "
		if q.Choices == nil {
			prompt = "German > "
		}
		line, err := r.readLine(ctx, prompt)
		if err != nil {
			return err
		}
		fb, err := rc.Answer(ctx, line)
		if err != nil {
			return err
		}
		r.feedback(fb)
		r.opts.Pause(m.FeedbackDelay())
		if !rc.Next(ctx) {
			break
		}
	}
	r.result(rc.Result())
	return nil
}

func (r *Runner) speed(ctx context.Context, s *session.Speed) error {
	fmt.Fprintf(r.out, "\nSpeed round! Answer as many as you can in %s.\n", s.Remaining().Round(time.Second))
	for {
		q, ok := s.Next()
		if !ok {
			break
		}
		fmt.Fprintf(r.out, "\n⏱ %ds | Score: %d\n", int(s.Remaining().Seconds()), s.Score())
		r.question(q)
		line, err := r.readLine(ctx, "> ")
		if err != nil {
			s.Finish(ctx)
			return err
		}
		fb, err := s.Answer(ctx, line)
		if errors.Is(err, session.ErrRoundOver) {
			fmt.Fprintln(r.out, "Time's up! That answer came too late.")
			break
		}
		if err != nil {
			return err
		}
		r.feedback(fb)
		r.opts.Pause(session.ModeSpeed.FeedbackDelay())
	}
	r.result(s.Finish(ctx))
	return nil
}

func (r *Runner) question(q *session.Question) {
	fmt.Fprintln(r.out)
	if q.Total > 0 {
		fmt.Fprintf(r.out, "Question %d/%d (%s)\n", q.Index, q.Total, q.Direction)
	} else {
		fmt.Fprintf(r.out, "(%s)\n", q.Direction)
	}
	fmt.Fprintf(r.out, "  %s\n", q.Prompt)
	if q.Hint != "" {
		fmt.Fprintf(r.out, "  Hint: %s\n", q.Hint)
	}
	for i, c := range q.Choices {
		fmt.Fprintf(r.out, "  %d. %s\n", i+1, c)
	}
}

func (r *Runner) feedback(fb session.Feedback) {
	if fb.Correct {
		fmt.Fprintf(r.out, "✓ %s +%d XP  %s\n", fb.Message, fb.XPGained, session.Stars(fb.Mastery))
	} else {
		fmt.Fprintf(r.out, "✗ %s The answer was: %s\n", fb.Message, fb.Expected)
	}
	if fb.SaveErr != nil {
		r.log.Warn("progress not saved", zap.Error(fb.SaveErr))
		fmt.Fprintln(r.out, "(warning: progress could not be saved)")
	}
}

func (r *Runner) result(res session.Result) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "------------------------------")
	if res.Mode == session.ModeSpeed {
		fmt.Fprintf(r.out, "Time's up! %d correct out of %d\n", res.Score, res.Total)
		if res.NewBest {
			fmt.Fprintln(r.out, res.Message)
		}
		fmt.Fprintf(r.out, "Personal best: %d\n", res.BestSpeed)
	} else {
		fmt.Fprintf(r.out, "Score: %d/%d (%d%%)\n", res.Score, res.Total, res.Percent)
		fmt.Fprintln(r.out, res.Message)
	}
	fmt.Fprintf(r.out, "XP earned: +%d\n", res.XPEarned)
	r.statsLine()
}

func bar(pct, width int) string {
	filled := pct * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}
