// Package tui hosts the brick breaker and the notes widget in a terminal
// via Bubble Tea, locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// TickMsg is sent to trigger a game simulation tick. Run ties the tick to
// the session that armed it, so ticks outliving their session are dropped.
type TickMsg struct {
	At  time.Time
	Run uuid.UUID
}

// tickCmd returns a Bubble Tea command that sends one tick after a
// 1/tickRate interval.
func tickCmd(tickRate int, run uuid.UUID) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Run: run}
	})
}
