// Package home is the category menu and dashboard.
package home

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/screens/history"
	"github.com/wortschatz/wortschatz/internal/screens/modes"
	"github.com/wortschatz/wortschatz/internal/screens/wordmap"
	"github.com/wortschatz/wortschatz/internal/ui/components"
	"github.com/wortschatz/wortschatz/internal/ui/layout"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

const barWidth = 10

// HomeScreen lists the loaded categories with their completion.
type HomeScreen struct {
	deps screen.Deps
	menu components.Menu

	// cats[i] is the category behind menu item i; the trailing items have
	// no entry.
	cats []vocab.Category
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen for the loaded catalog.
func New(deps screen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}

	var items []components.MenuItem
	for i, c := range deps.Catalog.Loaded() {
		key := ""
		if i < 9 {
			key = strconv.Itoa(i + 1)
		}
		items = append(items, h.categoryItem(c, c.Label(), key))
	}
	items = append(items, h.categoryItem(vocab.All, vocab.All.Label(), "a"))
	items = append(items,
		components.MenuItem{
			Label: "Word Map",
			Key:   "w",
			Action: func() tea.Cmd {
				return router.Push(wordmap.New(deps.Catalog, deps.Doc()))
			},
		},
		components.MenuItem{
			Label: "History",
			Key:   "h",
			Action: func() tea.Cmd {
				return router.Push(history.New(deps.History))
			},
		},
	)
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Key:    "q",
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) categoryItem(c vocab.Category, label, key string) components.MenuItem {
	h.cats = append(h.cats, c)
	return components.MenuItem{
		Label: label,
		Key:   key,
		Action: func() tea.Cmd {
			return router.Push(modes.New(h.deps, c))
		},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-9", Description: "Category"},
		{Key: "a", Description: "All"},
		{Key: "w/h", Description: "Words/History"},
		{Key: "↑↓ Enter", Description: "Select"},
		{Key: "q", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// refresh recomputes the completion column; it changes after every round.
func (h *HomeScreen) refresh() {
	doc := h.deps.Doc()
	width := 0
	for i := range h.cats {
		width = max(width, lipgloss.Width(h.menu.Items[i].Label))
	}
	for i, c := range h.cats {
		words := h.deps.Catalog.Words(c)
		done := doc.Completion(words)
		pct := progress.Percent(done)
		pad := strings.Repeat(" ", width-lipgloss.Width(h.menu.Items[i].Label))
		h.menu.Items[i].Detail = fmt.Sprintf("%s%s %3d%%  (%d words)",
			pad, components.TextBar(done, barWidth), pct, len(words))
	}
}

func (h *HomeScreen) View(width, height int) string {
	h.refresh()

	termHeight := height + 8
	compact := termHeight < 30 || width < 90
	cw := contentWidth(width)
	doc := h.deps.Doc()

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(stats{
		xp:        doc.XP,
		streak:    doc.Streak,
		learned:   doc.LearnedCount(),
		bestSpeed: doc.BestSpeed,
	}, cw, compact))
	sections = append(sections, lipgloss.NewStyle().Width(cw).Render(strings.TrimRight(h.menu.View(), "\n")))
	if h.deps.Coach != nil && !compact {
		sections = append(sections, renderCoachNote(cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}
