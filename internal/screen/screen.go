package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Syncer is implemented by screens that keep local widget state (cursor,
// text input) across session transitions that stay on the same view.
type Syncer interface {
	Sync(model session.Screen)
}

// EventMsg carries session events from a screen to the router, which
// applies them in order.
type EventMsg struct {
	Events []session.Event
}

// Emit returns a command that delivers events to the router.
func Emit(events ...session.Event) tea.Cmd {
	return func() tea.Msg { return EventMsg{Events: events} }
}
