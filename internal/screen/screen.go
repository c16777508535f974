package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/wortschatz/wortschatz/internal/ui/layout"
)

// Screen is one page of the TUI. The router owns a stack of them.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that want their own footer
// hints instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
