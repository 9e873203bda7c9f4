// Package tui provides the Bubble Tea front end for the game: the play
// screen, menus, scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Gen identifies the round
// that scheduled it so ticks from a finished round are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// effectTickMsg drives effects that outlive the round (confetti).
type effectTickMsg struct {
	Gen int
}

// refreshMsg forces a redraw, used to clear expired toasts.
type refreshMsg struct{}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

func effectTickCmd(tickRate, gen int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(time.Time) tea.Msg {
		return effectTickMsg{Gen: gen}
	})
}

func refreshAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return refreshMsg{}
	})
}

func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
