package home

import (
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/screens/modes"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

func testDeps() screen.Deps {
	doc := progress.New()
	doc.XP = 120
	doc.Streak = 3
	doc.BestSpeed = 9
	doc.Words[progress.Key("colors", "rot")] = &progress.Record{Mastery: 4}
	return screen.Deps{
		Catalog: vocab.NewCatalog(map[vocab.Category][]vocab.Word{
			"colors": {
				{German: "rot", English: "red"},
				{German: "blau", English: "blue"},
			},
			"numbers": {
				{German: "eins", English: "one"},
			},
		}),
		Env: session.Env{Doc: doc, Rand: rand.New(rand.NewPCG(1, 1))},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestHome_MenuFollowsLoadedCategories(t *testing.T) {
	h := New(testDeps())

	var labels []string
	for _, it := range h.menu.Items {
		labels = append(labels, it.Label)
	}
	// Menu order follows vocab.Categories, not map order.
	want := []string{"Numbers", "Colors", "All Categories", "Word Map", "History", "Quit"}
	if strings.Join(labels, ",") != strings.Join(want, ",") {
		t.Errorf("labels = %v, want %v", labels, want)
	}
}

func TestHome_ViewShowsStatsAndCompletion(t *testing.T) {
	h := New(testDeps())
	view := h.View(120, 40)

	for _, want := range []string{"120 XP", "3 days", "1 learned", "best 9", " 50%", "(2 words)", "(3 words)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHome_SelectCategory(t *testing.T) {
	h := New(testDeps())

	_, cmd := h.Update(keyPress('2'))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	m, ok := msg.Screen.(*modes.ModesScreen)
	if !ok || m.Title() != "Colors" {
		t.Errorf("pushed %T %q", msg.Screen, msg.Screen.Title())
	}

	_, cmd = h.Update(keyPress('a'))
	msg = cmd().(router.PushScreenMsg)
	if msg.Screen.Title() != "All Categories" {
		t.Errorf("a should open all categories, got %q", msg.Screen.Title())
	}
}

func TestHome_Quit(t *testing.T) {
	h := New(testDeps())
	_, cmd := h.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestHome_InvalidKeyIgnored(t *testing.T) {
	h := New(testDeps())
	if _, cmd := h.Update(keyPress('7')); cmd != nil {
		t.Error("unknown key should do nothing")
	}
}

func TestHome_WordMapAndHistory(t *testing.T) {
	h := New(testDeps())

	_, cmd := h.Update(keyPress('w'))
	msg := cmd().(router.PushScreenMsg)
	if msg.Screen.Title() != "Word Map" {
		t.Errorf("w pushed %q", msg.Screen.Title())
	}

	_, cmd = h.Update(keyPress('h'))
	msg = cmd().(router.PushScreenMsg)
	if msg.Screen.Title() != "History" {
		t.Errorf("h pushed %q", msg.Screen.Title())
	}
}
