// Package welcome is the splash screen shown at startup.
package welcome

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Three stripes in the colors of the flag.
var stripes = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#1F1F1F")),
	lipgloss.NewStyle().Foreground(theme.Error),
	lipgloss.NewStyle().Foreground(theme.Primary),
}

const stripeWidth = 24

type tickMsg time.Time

// WelcomeScreen shows a splash animation before transitioning to the home screen.
type WelcomeScreen struct {
	doc          *progress.Document
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced
// by homeFactory. doc may be nil.
func New(doc *progress.Document, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		doc:         doc,
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.homeFactory())
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	// Phase 1: the stripes grow in from the left.
	n := stripeWidth
	if w.elapsed < phase1End {
		n = int(float64(stripeWidth) * float64(w.elapsed) / float64(phase1End))
	}
	for _, s := range stripes {
		sections = append(sections, s.Render(strings.Repeat("█", n)+strings.Repeat(" ", stripeWidth-n)))
	}

	// Phase 2+: banner, tagline and stats
	if w.elapsed >= phase2End {
		sections = append(sections, RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Learn German, one word at a time"))

		if w.doc != nil && w.doc.XP > 0 {
			sections = append(sections, theme.Hint.Render(fmt.Sprintf(
				"Willkommen zurück! ⚡ %d XP · 🔥 %d day streak", w.doc.XP, w.doc.Streak)))
		}

		sections = append(sections, "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
