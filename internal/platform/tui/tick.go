// Package tui hosts a brick session in the terminal with Bubble Tea.
// It owns scheduling, key-to-intent mapping and drawing; the session owns
// the game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bricks/internal/bricks"
)

// TickMsg is sent to trigger a simulation tick.
// Gen ties it to the tick chain that scheduled it; older chains are dropped.
type TickMsg struct {
	Gen int
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

// releaseMsg ends a held direction when no key repeat arrived in time.
type releaseMsg struct {
	dir bricks.Direction
	seq int
}

// releaseCmd schedules a synthetic key release. Terminals report presses
// and repeats but no key-up events.
func releaseCmd(after time.Duration, dir bricks.Direction, seq int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return releaseMsg{dir: dir, seq: seq}
	})
}
