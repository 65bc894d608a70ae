// Package tui provides the Bubble Tea integration for brickfall.
// It handles the terminal UI loop, input mapping, and rendering, while
// keeping the simulation on a fixed timestep independent of the render rate.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a render frame. Simulation ticks are derived
// from the elapsed wall time between frames, not from the frame rate.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified render rate.
func tickCmd(fps int) tea.Cmd {
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
