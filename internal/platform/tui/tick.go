// Package tui provides the Bubble Tea integration for the hangman platform.
// It handles the terminal UI loop, input mapping and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flashDuration is how long the last guess stays highlighted.
const flashDuration = 600 * time.Millisecond

// FlashMsg ends the highlight of the guess with the matching sequence number.
type FlashMsg struct {
	Seq int
}

// flashCmd returns a Bubble Tea command that ends a highlight after flashDuration.
func flashCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return FlashMsg{Seq: seq}
	})
}
