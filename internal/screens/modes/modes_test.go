package modes

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/screens/drill"
	"github.com/wortschatz/wortschatz/internal/screens/learn"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

func testDeps() screen.Deps {
	return screen.Deps{
		Catalog: vocab.NewCatalog(map[vocab.Category][]vocab.Word{
			"colors": {
				{Category: "colors", German: "rot", English: "red"},
				{Category: "colors", German: "blau", English: "blue"},
			},
			"numbers": {
				{Category: "numbers", German: "eins", English: "one"},
			},
		}),
		Env: session.Env{
			Doc:  progress.New(),
			Rand: rand.New(rand.NewPCG(1, 2)),
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func pushed(t *testing.T, cmd tea.Cmd) screen.Screen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	return msg.Screen
}

func TestModes_StartsEachMode(t *testing.T) {
	tests := []struct {
		key  rune
		want string
	}{
		{'1', "*learn.LearnScreen"},
		{'2', "*drill.DrillScreen"},
		{'3', "*drill.DrillScreen"},
		{'4', "*drill.DrillScreen"},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			m := New(testDeps(), "colors")
			_, cmd := m.Update(keyPress(tt.key))
			s := pushed(t, cmd)
			switch s.(type) {
			case *learn.LearnScreen:
				if tt.want != "*learn.LearnScreen" {
					t.Errorf("got learn screen, want %s", tt.want)
				}
			case *drill.DrillScreen:
				if tt.want != "*drill.DrillScreen" {
					t.Errorf("got drill screen, want %s", tt.want)
				}
			default:
				t.Errorf("unexpected screen %T", s)
			}
		})
	}
}

func TestModes_NotEnoughWords(t *testing.T) {
	m := New(testDeps(), "numbers")

	_, cmd := m.Update(keyPress('2'))
	if cmd != nil {
		t.Fatal("quiz over one word should not start")
	}
	if !strings.Contains(m.View(100, 30), "Not enough words for Quiz") {
		t.Errorf("expected notice, got:\n%s", m.View(100, 30))
	}

	// Learn and Type It work with a single word.
	pushed(t, func() tea.Cmd { _, c := m.Update(keyPress('1')); return c }())
	pushed(t, func() tea.Cmd { _, c := m.Update(keyPress('3')); return c }())
}

func TestModes_AllCategories(t *testing.T) {
	m := New(testDeps(), vocab.All)
	if !strings.Contains(m.View(100, 30), "3 words") {
		t.Errorf("all categories should pool every word:\n%s", m.View(100, 30))
	}
	pushed(t, func() tea.Cmd { _, c := m.Update(keyPress('2')); return c }())
}

func TestModes_Back(t *testing.T) {
	m := New(testDeps(), "colors")
	_, cmd := m.Update(keyPress('b'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
