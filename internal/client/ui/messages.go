package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/yourusername/cheesecake-chat/internal/client/connection"
	"github.com/yourusername/cheesecake-chat/internal/widget"
)

// greetDelay is how long after start the welcome message appears
const greetDelay = 500 * time.Millisecond

// connectionEventMsg wraps events from the connection manager
type connectionEventMsg struct {
	event connection.Event
}

// settleMsg is delivered when a panel transition timer fires
type settleMsg struct {
	generation uint64
}

// greetMsg triggers the welcome message
type greetMsg struct{}

// settleCmd fires the settle timer for a panel transition
func settleCmd(tr widget.Transition) tea.Cmd {
	return tea.Tick(tr.Delay, func(time.Time) tea.Msg {
		return settleMsg{generation: tr.Generation}
	})
}

// greetCmd schedules the welcome message
func greetCmd() tea.Cmd {
	return tea.Tick(greetDelay, func(time.Time) tea.Msg {
		return greetMsg{}
	})
}

// listenForEventsCmd waits for the next connection event
func listenForEventsCmd(events <-chan connection.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return connectionEventMsg{event: event}
	}
}
