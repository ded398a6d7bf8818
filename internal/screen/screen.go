// Package screen defines the contract between the router and the chat,
// settings, scoreboard, achievements and history screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mltply/internal/ui/layout"
)

// Screen is one full-height view on the router stack.
type Screen interface {
	// Init runs when the screen is pushed.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between the header and the footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that list their own keys in
// the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Resumer is implemented by screens that need to refresh when they become
// active again after the screen above them is popped.
type Resumer interface {
	Resume() tea.Cmd
}

// TickMsg is delivered to the active screen once per second.
type TickMsg struct{}
