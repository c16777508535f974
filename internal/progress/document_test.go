package progress

import (
	"testing"
	"time"

	"github.com/wortschatz/wortschatz/internal/vocab"
)

func TestRecordAnswerBounds(t *testing.T) {
	d := New()

	for i := 0; i < 7; i++ {
		d.RecordAnswer("verbs", "gehen", true)
	}
	r := d.Words[Key("verbs", "gehen")]
	if r.Mastery != MaxMastery {
		t.Errorf("mastery after 7 correct = %d, want %d", r.Mastery, MaxMastery)
	}
	if r.Correct != 7 {
		t.Errorf("correct = %d, want 7", r.Correct)
	}

	for i := 0; i < 9; i++ {
		d.RecordAnswer("verbs", "gehen", false)
	}
	if r.Mastery != 0 {
		t.Errorf("mastery after 9 wrong = %d, want 0", r.Mastery)
	}
	if r.Wrong != 9 {
		t.Errorf("wrong = %d, want 9", r.Wrong)
	}
}

func TestMasteryUnseenIsZero(t *testing.T) {
	d := New()
	if got := d.Mastery("nouns", "der Hund"); got != 0 {
		t.Errorf("Mastery = %d, want 0", got)
	}
	if len(d.Words) != 0 {
		t.Error("Mastery must not create records")
	}
}

func TestTouchDoesNotMutate(t *testing.T) {
	d := New()
	d.RecordAnswer("nouns", "das Haus", true)
	before := *d.Words[Key("nouns", "das Haus")]

	d.Touch("nouns", "das Haus")
	if got := *d.Words[Key("nouns", "das Haus")]; got != before {
		t.Errorf("Touch changed record: %+v -> %+v", before, got)
	}

	d.Touch("nouns", "die Tür")
	r, ok := d.Words[Key("nouns", "die Tür")]
	if !ok {
		t.Fatal("Touch did not create record")
	}
	if *r != (Record{}) {
		t.Errorf("new record = %+v, want zero", *r)
	}
}

func TestAddXPIgnoresNonPositive(t *testing.T) {
	d := New()
	d.AddXP(10)
	d.AddXP(0)
	d.AddXP(-5)
	if d.XP != 10 {
		t.Errorf("XP = %d, want 10", d.XP)
	}
}

func TestRecordSpeedScore(t *testing.T) {
	d := New()
	if !d.RecordSpeedScore(4) {
		t.Error("first score should be a new best")
	}
	if d.RecordSpeedScore(4) {
		t.Error("equal score should not be a new best")
	}
	if d.RecordSpeedScore(2) {
		t.Error("lower score should not be a new best")
	}
	if d.BestSpeed != 4 {
		t.Errorf("BestSpeed = %d, want 4", d.BestSpeed)
	}
}

func TestUpdateStreak(t *testing.T) {
	now := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name       string
		lastPlayed string
		streak     int
		want       int
	}{
		{"first play", "", 0, 1},
		{"same day", "2024-03-10", 4, 4},
		{"consecutive day", "2024-03-09", 4, 5},
		{"two day gap", "2024-03-08", 4, 1},
		{"long gap", "2023-12-31", 9, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			d.LastPlayed = tt.lastPlayed
			d.Streak = tt.streak
			d.UpdateStreak(now)
			if d.Streak != tt.want {
				t.Errorf("streak = %d, want %d", d.Streak, tt.want)
			}
			if d.LastPlayed != "2024-03-10" {
				t.Errorf("last played = %q, want 2024-03-10", d.LastPlayed)
			}
		})
	}
}

func TestUpdateStreakAcrossMonthBoundary(t *testing.T) {
	d := New()
	d.LastPlayed = "2024-02-29"
	d.Streak = 2
	d.UpdateStreak(time.Date(2024, 3, 1, 0, 5, 0, 0, time.UTC))
	if d.Streak != 3 {
		t.Errorf("streak = %d, want 3", d.Streak)
	}
}

func TestCompletionAndLearnedCount(t *testing.T) {
	words := []vocab.Word{
		{Category: "colors", German: "rot"},
		{Category: "colors", German: "blau"},
		{Category: "colors", German: "grün"},
		{Category: "colors", German: "gelb"},
	}
	d := New()
	d.Words[Key("colors", "rot")] = &Record{Mastery: 3}
	d.Words[Key("colors", "blau")] = &Record{Mastery: 5}
	d.Words[Key("colors", "grün")] = &Record{Mastery: 2}
	d.Words[Key("days", "Montag")] = &Record{Mastery: 4}

	if got := d.Completion(words); got != 0.5 {
		t.Errorf("Completion = %v, want 0.5", got)
	}
	if got := d.Completion(nil); got != 0 {
		t.Errorf("Completion(nil) = %v, want 0", got)
	}
	if got := d.LearnedCount(); got != 3 {
		t.Errorf("LearnedCount = %d, want 3", got)
	}
}

func TestSummarize(t *testing.T) {
	cat := vocab.NewCatalog(map[vocab.Category][]vocab.Word{
		"colors": {{German: "rot", English: "red"}, {German: "blau", English: "blue"}},
	})
	d := New()
	d.XP = 40
	d.RecordAnswer("colors", "rot", true)
	d.RecordAnswer("colors", "rot", true)
	d.RecordAnswer("colors", "rot", true)
	d.RecordAnswer("colors", "blau", false)

	s := Summarize(d, cat)
	if s.XP != 40 || s.Learned != 1 {
		t.Errorf("summary = %+v", s)
	}
	if len(s.Categories) != len(vocab.Categories) {
		t.Fatalf("got %d category rows, want %d", len(s.Categories), len(vocab.Categories))
	}
	var colors CategoryStats
	for _, row := range s.Categories {
		if row.Category == "colors" {
			colors = row
		}
	}
	if colors.Words != 2 || colors.Learned != 1 || colors.Correct != 3 || colors.Wrong != 1 {
		t.Errorf("colors row = %+v", colors)
	}
	if Percent(colors.Completion) != 50 {
		t.Errorf("completion percent = %d, want 50", Percent(colors.Completion))
	}
}
