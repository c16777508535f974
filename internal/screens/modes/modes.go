// Package modes lets the learner pick how to practise a category.
package modes

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/screens/drill"
	"github.com/wortschatz/wortschatz/internal/screens/learn"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/ui/components"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

var descriptions = map[session.Mode]string{
	session.ModeLearn: "flashcards, no score",
	session.ModeQuiz:  "multiple choice",
	session.ModeType:  "type the German word",
	session.ModeSpeed: "beat the clock",
}

// ModesScreen is the mode menu for one category.
type ModesScreen struct {
	deps     screen.Deps
	category vocab.Category
	menu     components.Menu
	notice   string
}

var _ screen.Screen = (*ModesScreen)(nil)
var _ screen.KeyHintProvider = (*ModesScreen)(nil)

// New creates the mode menu for category, which may be vocab.All.
func New(deps screen.Deps, category vocab.Category) *ModesScreen {
	m := &ModesScreen{deps: deps, category: category}

	var items []components.MenuItem
	for i, mode := range session.Modes {
		detail := descriptions[mode]
		if xp := mode.XPPerCorrect(); xp > 0 {
			detail += fmt.Sprintf(" · +%d XP", xp)
		}
		items = append(items, components.MenuItem{
			Label:  mode.Label(),
			Detail: detail,
			Key:    fmt.Sprint(i + 1),
			Action: func() tea.Cmd { return m.start(mode) },
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Back",
		Key:    "b",
		Action: router.Pop,
	})
	m.menu = components.NewMenu(items)
	return m
}

func (m *ModesScreen) Init() tea.Cmd {
	return nil
}

func (m *ModesScreen) Title() string {
	return m.category.Label()
}

func (m *ModesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-4", Description: "Start"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "b", Description: "Back"},
	}
}

func (m *ModesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		m.notice = ""
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

// start builds the screen for mode. Undersized word lists leave the menu
// up with a notice.
func (m *ModesScreen) start(mode session.Mode) tea.Cmd {
	words := m.deps.Catalog.Words(m.category)

	var (
		next screen.Screen
		err  error
	)
	if mode == session.ModeLearn {
		next, err = learn.New(m.deps, m.category, words)
	} else {
		next, err = drill.New(m.deps, mode, m.category, words)
	}
	if err != nil {
		m.notice = notice(mode, err)
		return nil
	}
	return router.Push(next)
}

func notice(mode session.Mode, err error) string {
	switch {
	case errors.Is(err, session.ErrNotEnoughWords):
		return fmt.Sprintf("Not enough words for %s: it needs at least %d.", mode.Label(), mode.MinWords())
	case errors.Is(err, session.ErrNoWords):
		return "This category has no words yet."
	default:
		return err.Error()
	}
}

func (m *ModesScreen) View(width, height int) string {
	words := m.deps.Catalog.Words(m.category)
	pct := progress.Percent(m.deps.Doc().Completion(words))

	var sections []string
	sections = append(sections, theme.Title.Render(m.category.Label()))
	sections = append(sections, theme.Subtitle.Render(fmt.Sprintf("%d words · %d%% learned", len(words), pct)))
	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.TrimRight(m.menu.View(), "\n")))
	if m.notice != "" {
		sections = append(sections, "", theme.Warning.Render(m.notice))
	}
	return layout.Center(lipgloss.JoinVertical(lipgloss.Center, sections...), width, height)
}
