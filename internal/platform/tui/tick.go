// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, and frame timing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxFrameDelta caps the simulated time per tick, in seconds. A frame
// stalled by a suspended terminal must not fast-forward the game.
const maxFrameDelta = 0.1

// TickMsg is sent to trigger a game simulation tick. It carries the
// send time so the frame delta can be measured.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the elapsed seconds between two ticks, capped at
// maxFrameDelta. The first tick of a session reports zero.
func frameDelta(last, now time.Time) float64 {
	if last.IsZero() {
		return 0
	}
	delta := now.Sub(last).Seconds()
	if delta < 0 {
		return 0
	}
	if delta > maxFrameDelta {
		return maxFrameDelta
	}
	return delta
}
