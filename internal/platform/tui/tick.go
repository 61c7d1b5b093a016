// Package tui provides the Bubble Tea integration for the chase game.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is a frame message. It carries the wall-clock time the frame was
// produced, which the game's scheduler turns into fixed simulation steps.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a frame message after
// one frame interval at the given rate.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
