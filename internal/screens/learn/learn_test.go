package learn

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/wortschatz/wortschatz/internal/coach"
	"github.com/wortschatz/wortschatz/internal/llm"
	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/router"
	"github.com/wortschatz/wortschatz/internal/screen"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

func testDeps(svc *coach.Service) screen.Deps {
	return screen.Deps{
		Env: session.Env{
			Doc:  progress.New(),
			Rand: rand.New(rand.NewPCG(7, 7)),
		},
		Coach: svc,
	}
}

func deck() []vocab.Word {
	return []vocab.Word{
		{Category: "nouns", German: "der Hund", English: "the dog", Example: "Der Hund bellt."},
		{Category: "nouns", German: "die Katze", English: "the cat"},
		{Category: "nouns", German: "das Haus", English: "the house"},
	}
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func TestLearn_RevealAndNavigate(t *testing.T) {
	deps := testDeps(nil)
	l, err := New(deps, "nouns", deck())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := l.deck.Card()
	if first.Revealed {
		t.Fatal("card should start hidden")
	}
	if strings.Contains(l.View(100, 30), first.Word.English) {
		t.Error("translation visible before reveal")
	}

	l.Update(keyPress("space"))
	if !strings.Contains(l.View(100, 30), first.Word.English) {
		t.Error("translation should be visible after reveal")
	}

	l.Update(keyPress("n"))
	second := l.deck.Card()
	if second.Index != 2 || second.Revealed {
		t.Fatalf("after next: %+v", second)
	}
	if _, ok := deps.Doc().Words[progress.Key(first.Word.Category, first.Word.German)]; !ok {
		t.Error("leaving a card should create its progress record")
	}

	l.Update(keyPress("left"))
	if l.deck.Card().Index != 1 {
		t.Errorf("after previous: index %d", l.deck.Card().Index)
	}
	l.Update(keyPress("left"))
	if l.deck.Card().Index != 3 {
		t.Errorf("previous should wrap to the last card, got %d", l.deck.Card().Index)
	}
}

func TestLearn_QuitPops(t *testing.T) {
	l, _ := New(testDeps(nil), "nouns", deck())

	_, cmd := l.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if !l.deck.Done() {
		t.Error("deck should be finished")
	}
}

func TestLearn_NoWords(t *testing.T) {
	if _, err := New(testDeps(nil), "nouns", nil); !errors.Is(err, session.ErrNoWords) {
		t.Errorf("err = %v, want ErrNoWords", err)
	}
}

func TestLearn_ExplainWithoutCoach(t *testing.T) {
	l, _ := New(testDeps(nil), "nouns", deck())
	if _, cmd := l.Update(keyPress("e")); cmd != nil {
		t.Error("explain should do nothing without a coach")
	}
	for _, h := range l.KeyHints() {
		if h.Key == "e" {
			t.Error("explain hint shown without a coach")
		}
	}
}

func TestLearn_Explain(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"sentence": "Ich sehe einen Satz.",
		"translation": "I see a sentence.",
		"mnemonic": "Think of it twice."
	}`)})
	l, _ := New(testDeps(coach.NewService(mock, coach.DefaultConfig())), "nouns", deck())

	_, cmd := l.Update(keyPress("e"))
	if cmd == nil {
		t.Fatal("expected coach command")
	}
	if !l.loading || !strings.Contains(l.View(100, 30), "Asking the coach") {
		t.Error("expected loading state")
	}
	if _, again := l.Update(keyPress("e")); again != nil {
		t.Error("a second request should not start while loading")
	}

	l.Update(cmd())
	if l.loading || l.tip == nil {
		t.Fatalf("tip not applied: loading=%v tip=%v", l.loading, l.tip)
	}
	view := l.View(100, 30)
	for _, want := range []string{"Ich sehe einen Satz.", "I see a sentence.", "Think of it twice."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d", mock.CallCount())
	}
}

func TestLearn_StaleTipDropped(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	l, _ := New(testDeps(coach.NewService(mock, coach.DefaultConfig())), "nouns", deck())

	_, cmd := l.Update(keyPress("e"))
	msg := cmd()
	l.Update(keyPress("n"))

	l.Update(msg)
	if l.tipErr != "" || l.tip != nil {
		t.Error("answer for a previous card must be ignored")
	}
}

func TestLearn_ExplainError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}})
	l, _ := New(testDeps(coach.NewService(mock, coach.DefaultConfig())), "nouns", deck())

	_, cmd := l.Update(keyPress("e"))
	l.Update(cmd())
	if !strings.Contains(l.View(100, 30), "unavailable") {
		t.Error("expected coach error notice")
	}
}

func TestLearn_AnyTypedKeyReveals(t *testing.T) {
	l, err := New(testDeps(nil), "nouns", deck())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	l.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if l.deck.Card().Revealed {
		t.Fatal("a non-text key should not reveal the card")
	}

	l.Update(keyPress("x"))
	card := l.deck.Card()
	if !card.Revealed || card.Index != 1 {
		t.Errorf("x should reveal the current card, got %+v", card)
	}
}
