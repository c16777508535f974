package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleFull = `█ █ █ █▀█ █▀█ ▀█▀ █▀ █▀▀ █ █ ▄▀█ ▀█▀ ▀█
▀▄▀▄▀ █▄█ █▀▄  █  ▄█ █▄▄ █▀█ █▀█  █  █▄`

const titleCompact = "W · O · R · T · S · C · H · A · T · Z"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	text := titleFull
	if compact {
		text = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(text))
}

// stats is the row shown above the category menu.
type stats struct {
	xp        int
	streak    int
	learned   int
	bestSpeed int
}

// renderStatsBar renders the dashboard stats in a bordered box matching
// content width.
func renderStatsBar(s stats, cw int, compact bool) string {
	xpStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	learnedStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	speedStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	var parts []string
	if compact {
		parts = []string{
			xpStyle.Render(fmt.Sprintf("⚡%d", s.xp)),
			streakStyle.Render(fmt.Sprintf("🔥%d", s.streak)),
			learnedStyle.Render(fmt.Sprintf("★%d", s.learned)),
			speedStyle.Render(fmt.Sprintf("⏱%d", s.bestSpeed)),
		}
	} else {
		parts = []string{
			xpStyle.Render(fmt.Sprintf("⚡ %d XP", s.xp)),
			streakStyle.Render(fmt.Sprintf("🔥 %d %s", s.streak, plural(s.streak, "day", "days"))),
			learnedStyle.Render(fmt.Sprintf("★ %d learned", s.learned)),
			speedStyle.Render(fmt.Sprintf("⏱ best %d", s.bestSpeed)),
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(strings.Join(parts, "  "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// renderCoachNote tells the learner the coach is available in Learn mode.
func renderCoachNote(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw).
		Align(lipgloss.Center).
		Render("Coach is on: press e on a flashcard for an example sentence")
}

// renderFrame centers content inside a rounded border.
func renderFrame(content string, width, height int) string {
	framed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}
