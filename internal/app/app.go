// Package app wires the screens into a Bubble Tea program.
package app

import (
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/screens/home"
	"github.com/wortschatz/wortschatz/internal/screens/welcome"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   screen.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(deps screen.Deps) AppModel {
	welcomeScreen := welcome.New(deps.Doc(), func() screen.Screen {
		return home.New(deps)
	})
	return AppModel{
		deps:   deps,
		router: router.New(welcomeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if bh, ok := m.router.Active().(screen.BackHandler); ok {
				return m, bh.Back()
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, active screen and footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	doc := m.deps.Doc()
	header := layout.RenderHeader(title, doc.XP, doc.Streak, m.width)
	footer := layout.RenderFooter(m.hints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) hints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	} else {
		hints = []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Run starts the Bubble Tea program and blocks until the learner quits.
// An interrupt (SIGINT) is a normal way out, so the caller still prints
// the farewell.
func Run(deps screen.Deps, opts ...tea.ProgramOption) error {
	return run(tea.NewProgram(newAppModel(deps), opts...))
}

func run(p *tea.Program) error {
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Farewell is printed after the program exits.
func Farewell(doc *progress.Document) string {
	lines := []string{
		theme.Title.Render("Tschüss! Bis bald!"),
		"",
		fmt.Sprintf("⚡ %d XP   🔥 %d day streak   ★ %d words learned", doc.XP, doc.Streak, doc.LearnedCount()),
	}
	return theme.Panel.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}
