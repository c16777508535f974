package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	q := d.question
	if q == nil {
		return layout.Center(theme.Hint.Render("Round over"), width, height)
	}

	var b strings.Builder
	b.WriteString(d.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	var card []string
	card = append(card, theme.Hint.Render(q.Direction.String()))
	card = append(card, "")
	if q.Direction == session.GermanToEnglish {
		card = append(card, theme.German.Render(q.Prompt))
	} else {
		card = append(card, theme.English.Bold(true).Render(q.Prompt))
	}
	if q.Hint != "" {
		card = append(card, theme.Hint.Render("Hint: "+q.Hint))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(strings.Join(card, "\n"))))
	b.WriteString("\n\n")

	if q.Choices != nil {
		b.WriteString(d.renderChoices(width))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.input.View()))
	}
	b.WriteString("\n\n")

	if d.feedback != nil {
		b.WriteString(renderFeedback(*d.feedback, width))
	}
	if d.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Warning.Render(d.notice)))
	}

	return b.String()
}

func (d *DrillScreen) renderInfoLine(width int) string {
	q := d.question
	var left, right string
	if d.speed != nil {
		left = fmt.Sprintf("  ⏱ %ds", int(d.speed.Remaining().Seconds()))
		right = fmt.Sprintf("Score: %d  ·  Answered: %d", d.speed.Score(), d.speed.Attempts())
	} else {
		left = fmt.Sprintf("  Question %d/%d", q.Index, q.Total)
		right = fmt.Sprintf("Correct: %d  ·  %s", q.Score, session.Stars(q.Mastery))
	}
	l := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(left)
	r := lipgloss.NewStyle().Foreground(theme.TextDim).Render(right)
	pad := width - lipgloss.Width(l) - lipgloss.Width(r) - 4
	if pad < 1 {
		pad = 1
	}
	return l + strings.Repeat(" ", pad) + r
}

func (d *DrillScreen) renderChoices(width int) string {
	q := d.question
	var b strings.Builder
	for i, choice := range q.Choices {
		prefix := "  "
		if i == d.selected && d.feedback == nil {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, choice)

		style := theme.Unselected
		switch {
		case d.feedback != nil && choice == q.Expected:
			style = theme.Correct
		case d.feedback != nil && choice == d.feedback.Given:
			style = theme.Incorrect
		case d.feedback != nil:
			style = theme.Hint
		case i == d.selected:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func renderFeedback(fb session.Feedback, width int) string {
	var line string
	if fb.Correct {
		line = theme.Correct.Render(fmt.Sprintf("✓ %s  +%d XP  ", fb.Message, fb.XPGained)) +
			theme.Stars.Render(session.Stars(fb.Mastery))
	} else {
		line = theme.Incorrect.Render("✗ "+fb.Message) + "  " +
			theme.Body.Render("Answer: ") + theme.German.Render(fb.Expected)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}
