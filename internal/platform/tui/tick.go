// Package tui provides the Bubble Tea integration for riipai.
// It handles the terminal UI loop, input mapping and rendering of the hand.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg refreshes the timer display. Gen ties a tick to the session that
// armed it so ticks from an earlier session die out.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
