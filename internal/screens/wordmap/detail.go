package wordmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// WordDetailScreen shows one word with its extras and answer record.
type WordDetailScreen struct {
	word vocab.Word
	doc  *progress.Document
}

var _ screen.Screen = (*WordDetailScreen)(nil)
var _ screen.KeyHintProvider = (*WordDetailScreen)(nil)

func newWordDetail(w vocab.Word, doc *progress.Document) *WordDetailScreen {
	return &WordDetailScreen{word: w, doc: doc}
}

func (d *WordDetailScreen) Init() tea.Cmd { return nil }
func (d *WordDetailScreen) Title() string { return d.word.German }

func (d *WordDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return d, nil
}

func (d *WordDetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (d *WordDetailScreen) View(width, height int) string {
	w := d.word
	contentWidth := min(width-8, 70)

	var b strings.Builder
	b.WriteString(theme.German.Render("  " + w.German))
	b.WriteString("  ")
	b.WriteString(theme.Stars.Render(session.Stars(d.doc.MasteryOf(w))))
	b.WriteString("\n")
	b.WriteString(theme.English.Render("  " + w.English))
	b.WriteString("\n\n")

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text).Width(contentWidth - 14)

	b.WriteString(dimStyle.Render("  Category:    ") + valStyle.Render(w.Category.Label()) + "\n")
	for _, det := range w.Details() {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %-13s", det.Label+":")) + valStyle.Render(det.Value) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Your record"))
	b.WriteString("\n")

	rec, ok := d.doc.Words[progress.Key(w.Category, w.German)]
	if !ok {
		b.WriteString(dimStyle.Render("  Not practised yet"))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  Mastery %d/5 · %d correct · %d wrong",
			rec.Mastery, rec.Correct, rec.Wrong)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
