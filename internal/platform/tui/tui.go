// Package tui provides the Bubble Tea terminal UI for the codenames
// client: the sign-in form, the room view, blocking notice overlays, and
// the SSH kiosk server. All game state flows in as server events; the UI
// never predicts outcomes locally.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avoronov/codenames-tui/internal/protocol"
)

// EventMsg wraps one inbound server event for the Bubble Tea loop.
type EventMsg struct {
	Event protocol.Event
}

// DisconnectedMsg is sent when the server connection ends.
type DisconnectedMsg struct{}

// waitForEvent returns a command that blocks on the transport's event
// channel. Re-issued after every received event so delivery stays serial:
// each event is fully applied and rendered before the next one is read.
func waitForEvent(ch <-chan protocol.Event) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return DisconnectedMsg{}
		}
		return EventMsg{Event: evt}
	}
}
