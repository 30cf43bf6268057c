package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/avoronov/codenames-tui/internal/game"
)

// Event is an inbound message from the server. The marker method keeps the
// set closed so dispatch switches stay exhaustive.
type Event interface {
	event()
}

// ServerStats is pushed on connect and whenever the population changes.
type ServerStats struct {
	Players          int    `json:"players"`
	Rooms            int    `json:"rooms"`
	SessionID        string `json:"sessionId"`
	IsExistingPlayer bool   `json:"isExistingPlayer"`
}

func (ServerStats) event() {}

// JoinResponse answers a JoinRoom command.
type JoinResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

func (JoinResponse) event() {}

// CreateResponse answers a CreateRoom command.
type CreateResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
}

func (CreateResponse) event() {}

// LeaveResponse answers a LeaveRoom command.
type LeaveResponse struct {
	Success bool `json:"success"`
}

func (LeaveResponse) event() {}

// TimerUpdate carries the remaining turn time in seconds.
type TimerUpdate struct {
	Timer float64 `json:"timer"`
}

func (TimerUpdate) event() {}

// NewGameResponse answers a NewGame command.
type NewGameResponse struct {
	Success bool `json:"success"`
}

func (NewGameResponse) event() {}

// AfkWarning asks the viewer to confirm they are still there.
type AfkWarning struct{}

func (AfkWarning) event() {}

// AfkKicked notifies the viewer they were removed for inactivity.
type AfkKicked struct{}

func (AfkKicked) event() {}

// ServerMessage is an informational notice requiring acknowledgment.
type ServerMessage struct {
	Msg string `json:"msg"`
}

func (ServerMessage) event() {}

// SwitchRoleResponse answers a SwitchRole command with the confirmed role.
type SwitchRoleResponse struct {
	Success bool      `json:"success"`
	Role    game.Role `json:"role"`
}

func (SwitchRoleResponse) event() {}

// GameState is the full-state push. Its payload is a complete Snapshot
// that supersedes whatever the client held before.
type GameState struct {
	game.Snapshot
}

func (GameState) event() {}

// DecodeEvent parses an inbound frame into its typed event.
func DecodeEvent(data []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("protocol: malformed frame: %w", err)
	}

	var evt Event
	switch env.Event {
	case "serverStats":
		evt = &ServerStats{}
	case "joinResponse":
		evt = &JoinResponse{}
	case "createResponse":
		evt = &CreateResponse{}
	case "leaveResponse":
		evt = &LeaveResponse{}
	case "timerUpdate":
		evt = &TimerUpdate{}
	case "newGameResponse":
		evt = &NewGameResponse{}
	case "afkWarning":
		return AfkWarning{}, nil
	case "afkKicked":
		return AfkKicked{}, nil
	case "serverMessage":
		evt = &ServerMessage{}
	case "switchRoleResponse":
		evt = &SwitchRoleResponse{}
	case "gameState":
		evt = &GameState{}
	default:
		return nil, fmt.Errorf("protocol: unknown event %q", env.Event)
	}

	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, evt); err != nil {
			return nil, fmt.Errorf("protocol: bad %s payload: %w", env.Event, err)
		}
	}

	// Return events by value so consumers can type-switch without pointers.
	switch e := evt.(type) {
	case *ServerStats:
		return *e, nil
	case *JoinResponse:
		return *e, nil
	case *CreateResponse:
		return *e, nil
	case *LeaveResponse:
		return *e, nil
	case *TimerUpdate:
		return *e, nil
	case *NewGameResponse:
		return *e, nil
	case *ServerMessage:
		return *e, nil
	case *SwitchRoleResponse:
		return *e, nil
	case *GameState:
		return *e, nil
	}
	return evt, nil
}
