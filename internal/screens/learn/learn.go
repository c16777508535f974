// Package learn is the flashcard screen.
package learn

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/wortschatz/wortschatz/internal/coach"
	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// tipMsg carries a coach answer back to the screen. key identifies the
// card it was asked for so a late answer for another card is dropped.
type tipMsg struct {
	key string
	tip *coach.Tip
	err error
}

// LearnScreen walks a deck of flashcards. Nothing here is scored.
type LearnScreen struct {
	deps     screen.Deps
	category vocab.Category
	deck     *session.Learn

	tip     *coach.Tip
	tipErr  string
	loading bool
}

var _ screen.Screen = (*LearnScreen)(nil)
var _ screen.KeyHintProvider = (*LearnScreen)(nil)
var _ screen.BackHandler = (*LearnScreen)(nil)

// New opens a deck over words. It fails with session.ErrNoWords for an
// empty list.
func New(deps screen.Deps, category vocab.Category, words []vocab.Word) (*LearnScreen, error) {
	deck, err := session.NewLearn(context.Background(), deps.Env, words)
	if err != nil {
		return nil, err
	}
	return &LearnScreen{deps: deps, category: category, deck: deck}, nil
}

func (l *LearnScreen) Init() tea.Cmd {
	return nil
}

func (l *LearnScreen) Title() string {
	return l.category.Label() + " · Learn"
}

func (l *LearnScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Space", Description: "Reveal"},
		{Key: "n/→", Description: "Next"},
		{Key: "p/←", Description: "Previous"},
	}
	if l.deps.Coach != nil {
		hints = append(hints, layout.KeyHint{Key: "e", Description: "Explain"})
	}
	return append(hints, layout.KeyHint{Key: "q", Description: "Back"})
}

func (l *LearnScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tipMsg:
		if msg.key != l.cardKey() {
			return l, nil
		}
		l.loading = false
		if msg.err != nil {
			l.deps.Log().Warn("coach failed", zap.String("card", msg.key), zap.Error(msg.err))
			l.tipErr = "The coach is unavailable right now."
			return l, nil
		}
		l.tip = msg.tip
		return l, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "space", "enter":
			l.deck.Reveal()
		case "n", "right":
			l.deck.Next()
			l.clearTip()
		case "p", "left":
			l.deck.Previous()
			l.clearTip()
		case "e":
			return l, l.explain()
		case "q":
			return l, l.Back()
		default:
			// Any other typed key flips the card, like the console's Handle.
			if msg.Text != "" {
				l.deck.Reveal()
			}
		}
	}
	return l, nil
}

// Back ends the deck and returns to the mode menu.
func (l *LearnScreen) Back() tea.Cmd {
	l.deck.Quit(context.Background())
	return router.Pop()
}

func (l *LearnScreen) explain() tea.Cmd {
	if l.deps.Coach == nil || l.loading {
		return nil
	}
	l.deck.Reveal()
	l.tip = nil
	l.tipErr = ""
	l.loading = true

	svc := l.deps.Coach
	w := l.deck.Card().Word
	key := l.cardKey()
	return func() tea.Msg {
		tip, err := svc.Explain(context.Background(), w)
		return tipMsg{key: key, tip: tip, err: err}
	}
}

func (l *LearnScreen) clearTip() {
	l.tip = nil
	l.tipErr = ""
	l.loading = false
}

func (l *LearnScreen) cardKey() string {
	w := l.deck.Card().Word
	return progress.Key(w.Category, w.German)
}

func (l *LearnScreen) View(width, height int) string {
	card := l.deck.Card()

	var lines []string
	lines = append(lines, theme.Hint.Render(fmt.Sprintf("Card %d of %d", card.Index, card.Total)))
	lines = append(lines, "")
	lines = append(lines, theme.German.Render(card.Word.German))
	lines = append(lines, theme.Stars.Render(session.Stars(card.Mastery)))
	lines = append(lines, "")

	if card.Revealed {
		lines = append(lines, theme.English.Bold(true).Render(card.Word.English))
		details := card.Word.Details()
		if len(details) > 0 {
			lines = append(lines, "")
		}
		for _, d := range details {
			lines = append(lines, theme.Hint.Render(d.Label+": ")+theme.Body.Render(d.Value))
		}
	} else {
		lines = append(lines, theme.Hint.Render("press space to reveal"))
	}

	sections := []string{theme.Card.Width(min(width-4, 56)).Render(strings.Join(lines, "\n"))}
	if t := l.renderTip(width); t != "" {
		sections = append(sections, t)
	}
	return layout.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}

func (l *LearnScreen) renderTip(width int) string {
	switch {
	case l.loading:
		return theme.Hint.Render("Asking the coach...")
	case l.tipErr != "":
		return theme.Warning.Render(l.tipErr)
	case l.tip == nil:
		return ""
	}
	var lines []string
	lines = append(lines, theme.German.Render(l.tip.Sentence))
	lines = append(lines, theme.English.Render(l.tip.Translation))
	if l.tip.Mnemonic != "" {
		lines = append(lines, "")
		lines = append(lines, theme.Hint.Render("💡 "+l.tip.Mnemonic))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 2).
		Width(min(width-4, 56)).
		Render(strings.Join(lines, "\n"))
}
