package drill

import "time"

// feedbackDoneMsg ends the pause after an answer. seq guards against a
// stale tick advancing a question the learner already skipped past.
type feedbackDoneMsg struct {
	seq int
}

// timerTickMsg refreshes the speed round countdown.
type timerTickMsg time.Time
