package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
)

// SummaryScreen shows the result panel of a finished Quiz, Type It or
// Speed round.
type SummaryScreen struct {
	result session.Result
	doc    *progress.Document
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen. doc supplies the running totals.
func New(result session.Result, doc *progress.Document) *SummaryScreen {
	return &SummaryScreen{result: result, doc: doc}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back to modes"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "q", "space":
			return s, router.Pop()
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result
	var lines []string

	center := func(style lipgloss.Style, text string) {
		lines = append(lines, style.Render(text))
	}

	if res.Mode == session.ModeSpeed {
		center(theme.Title, "⏱  Time's up!")
		lines = append(lines, "")
		center(theme.Body, fmt.Sprintf("%d correct out of %d", res.Score, res.Total))
		if res.NewBest {
			lines = append(lines, "")
			center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "🏆 "+res.Message)
		}
		center(theme.Hint, fmt.Sprintf("Personal best: %d", res.BestSpeed))
	} else {
		center(theme.Title, res.Mode.Label()+" complete!")
		lines = append(lines, "")
		center(theme.Body, fmt.Sprintf("Score: %d/%d (%d%%)", res.Score, res.Total, res.Percent))
		lines = append(lines, "")
		center(lipgloss.NewStyle().Foreground(gradeColor(res.Grade)).Bold(true), res.Message)
	}

	lines = append(lines, "")
	center(lipgloss.NewStyle().Foreground(theme.Primary), fmt.Sprintf("+%d XP", res.XPEarned))
	if s.doc != nil {
		center(theme.Hint, fmt.Sprintf("Total XP: %d  ·  Words learned: %d", s.doc.XP, s.doc.LearnedCount()))
	}

	panel := theme.Panel.Render(strings.Join(lines, "\n"))
	return layout.Center(panel, width, height)
}

func gradeColor(g session.Grade) color.Color {
	switch g {
	case session.GradePerfect:
		return theme.Primary
	case session.GradeGreat:
		return theme.Success
	case session.GradeGood:
		return theme.Secondary
	default:
		return theme.Accent
	}
}
