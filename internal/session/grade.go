package session

import (
	"math/rand/v2"

	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/selection"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// Grade is the four-tier verdict on a finished Quiz or Type It round.
type Grade int

const (
	GradeKeepPracticing Grade = iota
	GradeGood
	GradeGreat
	GradePerfect
)

// GradeFor maps a whole percentage to a grade: 100 is perfect, 70 and up
// great, 50 and up good.
func GradeFor(percent int) Grade {
	switch {
	case percent >= 100:
		return GradePerfect
	case percent >= 70:
		return GradeGreat
	case percent >= 50:
		return GradeGood
	}
	return GradeKeepPracticing
}

// Percent is score/total as a truncated whole percentage.
func Percent(score, total int) int {
	if total <= 0 {
		return 0
	}
	return score * 100 / total
}

var gradeMessages = map[Mode][4]string{
	ModeQuiz: {
		GradeKeepPracticing: "Weiter üben! Practice makes perfect.",
		GradeGood:           "Gut gemacht! Room to grow.",
		GradeGreat:          "Sehr gut! Keep it up!",
		GradePerfect:        "PERFEKT! Ausgezeichnet!",
	},
	ModeType: {
		GradeKeepPracticing: "Weiter üben! You'll get there!",
		GradeGood:           "Nicht schlecht! Keep practicing!",
		GradeGreat:          "Sehr gut! Impressive typing!",
		GradePerfect:        "PERFEKT! Du bist ein Sprachgenie!",
	},
}

// GradeMessage returns the closing line for a round.
func GradeMessage(m Mode, g Grade) string {
	msgs, ok := gradeMessages[m]
	if !ok {
		return ""
	}
	return msgs[g]
}

var (
	praise = []string{
		"Sehr gut!", "Richtig!", "Perfekt!", "Wunderbar!",
		"Genau!", "Toll!", "Ausgezeichnet!", "Fantastisch!",
	}
	consolation = []string{
		"Nicht ganz, weiter so!",
		"Fast! Versuch es nochmal.",
		"Falsch, aber du lernst!",
		"Keine Sorge, das kommt noch!",
		"Nah dran! Bleib dran.",
	}
)

// PraiseFor picks a random encouragement line for an answer.
func PraiseFor(r *rand.Rand, correct bool) string {
	if correct {
		return praise[r.IntN(len(praise))]
	}
	return consolation[r.IntN(len(consolation))]
}

func weightFor(d *progress.Document, w vocab.Word) int {
	return selection.Weight(d.MasteryOf(w))
}

// Stars renders mastery as five filled or empty stars.
func Stars(mastery int) string {
	s := ""
	for i := 0; i < progress.MaxMastery; i++ {
		if i < mastery {
			s += "★"
		} else {
			s += "☆"
		}
	}
	return s
}
