// Package wordmap lists every word with its mastery, grouped by category.
package wordmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/ui/theme"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

type rowKind int

const (
	rowCategoryHeader rowKind = iota
	rowWord
)

type row struct {
	kind     rowKind
	category vocab.Category
	word     vocab.Word
}

// WordMapScreen displays the vocabulary organized by category.
type WordMapScreen struct {
	doc          *progress.Document
	rows         []row
	cursor       int
	scrollOffset int
}

var _ screen.Screen = (*WordMapScreen)(nil)
var _ screen.KeyHintProvider = (*WordMapScreen)(nil)

// New creates a WordMapScreen over every loaded category.
func New(catalog *vocab.Catalog, doc *progress.Document) *WordMapScreen {
	var rows []row
	for _, c := range catalog.Loaded() {
		rows = append(rows, row{kind: rowCategoryHeader, category: c})
		for _, w := range catalog.Words(c) {
			rows = append(rows, row{kind: rowWord, category: c, word: w})
		}
	}

	s := &WordMapScreen{doc: doc, rows: rows}

	// Set cursor to first word row
	for i, r := range s.rows {
		if r.kind == rowWord {
			s.cursor = i
			break
		}
	}
	return s
}

func (s *WordMapScreen) Init() tea.Cmd {
	return nil
}

func (s *WordMapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "q" {
			return s, router.Pop()
		}
		if len(s.rows) == 0 {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			s.moveCursor(-1)
		case "down", "j":
			s.moveCursor(1)
		case "tab":
			s.nextCategory()
		case "shift+tab":
			s.prevCategory()
		case "enter":
			return s, s.selectWord()
		}
	}
	return s, nil
}

func (s *WordMapScreen) View(width, height int) string {
	if len(s.rows) == 0 {
		return ""
	}

	s.adjustScroll(height)

	var lines []string
	visible := 0
	for i, r := range s.rows {
		if i < s.scrollOffset {
			continue
		}
		if visible >= height {
			break
		}

		switch r.kind {
		case rowCategoryHeader:
			lines = append(lines, s.renderCategoryHeader(r.category, width))
		case rowWord:
			lines = append(lines, s.renderWordRow(r, i == s.cursor, width))
		}
		visible++
	}

	return strings.Join(lines, "\n")
}

func (s *WordMapScreen) Title() string {
	return "Word Map"
}

func (s *WordMapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Category"},
		{Key: "Enter", Description: "Details"},
		{Key: "Esc", Description: "Back"},
	}
}

// moveCursor moves the cursor by delta, skipping category headers.
func (s *WordMapScreen) moveCursor(delta int) {
	next := s.cursor + delta
	for next >= 0 && next < len(s.rows) {
		if s.rows[next].kind == rowWord {
			s.cursor = next
			return
		}
		next += delta
	}
}

// nextCategory jumps the cursor to the first word of the next category.
func (s *WordMapScreen) nextCategory() {
	current := s.rows[s.cursor].category
	for i := s.cursor + 1; i < len(s.rows); i++ {
		if s.rows[i].kind == rowWord && s.rows[i].category != current {
			s.cursor = i
			return
		}
	}
}

// prevCategory jumps the cursor to the first word of the previous category.
func (s *WordMapScreen) prevCategory() {
	current := s.rows[s.cursor].category
	var prev vocab.Category
	found := false
	for i := s.cursor - 1; i >= 0; i-- {
		if s.rows[i].kind == rowWord && s.rows[i].category != current {
			prev = s.rows[i].category
			found = true
			break
		}
	}
	if !found {
		return
	}
	for i, r := range s.rows {
		if r.kind == rowWord && r.category == prev {
			s.cursor = i
			return
		}
	}
}

// adjustScroll keeps the cursor, and the header above it when possible,
// inside the viewport.
func (s *WordMapScreen) adjustScroll(height int) {
	if height <= 0 {
		return
	}
	headerRow := s.cursor
	for headerRow > 0 && s.rows[headerRow-1].kind == rowCategoryHeader {
		headerRow--
	}

	if headerRow < s.scrollOffset {
		s.scrollOffset = headerRow
	}
	if s.cursor >= s.scrollOffset+height {
		s.scrollOffset = s.cursor - height + 1
	}
}

func (s *WordMapScreen) selectWord() tea.Cmd {
	r := s.rows[s.cursor]
	if r.kind != rowWord {
		return nil
	}
	return router.Push(newWordDetail(r.word, s.doc))
}

func (s *WordMapScreen) renderCategoryHeader(c vocab.Category, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(width).
		Padding(1, 0, 0, 2).
		Render(strings.ToUpper(c.Label()))
}

func (s *WordMapScreen) renderWordRow(r row, selected bool, width int) string {
	mastery := s.doc.MasteryOf(r.word)

	germanWidth := (width - 20) / 2
	if germanWidth < 10 {
		germanWidth = 10
	}
	german := truncate(r.word.German, germanWidth)
	english := truncate(r.word.English, germanWidth)

	var germanStyle, englishStyle lipgloss.Style
	switch {
	case selected:
		germanStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		englishStyle = lipgloss.NewStyle().Foreground(theme.Primary)
	case mastery >= progress.LearnedThreshold:
		germanStyle = lipgloss.NewStyle().Foreground(theme.Success)
		englishStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	default:
		germanStyle = lipgloss.NewStyle().Foreground(theme.Text)
		englishStyle = lipgloss.NewStyle().Foreground(theme.TextDim)
	}

	cursor := "  "
	if selected {
		cursor = "▸ "
	}

	return fmt.Sprintf("  %s%s %s  %s",
		cursor,
		theme.Stars.Render(session.Stars(mastery)),
		germanStyle.Render(fmt.Sprintf("%-*s", germanWidth, german)),
		englishStyle.Render(english),
	)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
