package screen

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/wortschatz/wortschatz/internal/coach"
	"github.com/wortschatz/wortschatz/internal/progress"
	"github.com/wortschatz/wortschatz/internal/session"
	"github.com/wortschatz/wortschatz/internal/store"
	"github.com/wortschatz/wortschatz/internal/vocab"
)

// Deps is what every screen may need. It is passed by value; the progress
// document inside Env is shared by pointer.
type Deps struct {
	Catalog *vocab.Catalog

	// Env is the template for new sessions. Leave SessionID empty.
	Env session.Env

	// Coach is nil when no LLM provider is configured.
	Coach *coach.Service

	// History reads finished rounds back; nil shows an empty history.
	History store.EventRepo

	Logger *zap.Logger
}

// Doc returns the shared progress document.
func (d Deps) Doc() *progress.Document {
	return d.Env.Doc
}

// Log returns the logger, never nil.
func (d Deps) Log() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// BackHandler is implemented by screens that must clean up when the
// learner presses Esc, instead of being popped directly.
type BackHandler interface {
	Back() tea.Cmd
}
