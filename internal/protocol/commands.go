// Package protocol defines the websocket wire format spoken with the game
// server: named outbound commands carrying viewer intent and named inbound
// events carrying responses and state pushes. Every message is a JSON
// envelope {"event": ..., "payload": ...}.
package protocol

import (
	"encoding/json"

	"github.com/avoronov/codenames-tui/internal/game"
)

// Command is an outbound message. Implementations are plain payload structs;
// Name returns the server-side event name.
type Command interface {
	Name() string
}

// JoinRoom asks to join an existing room.
type JoinRoom struct {
	Nickname string `json:"nickname"`
	Room     string `json:"room"`
	Password string `json:"password"`
}

func (JoinRoom) Name() string { return "joinRoom" }

// CreateRoom asks to create and join a new room.
type CreateRoom struct {
	Nickname string `json:"nickname"`
	Room     string `json:"room"`
	Password string `json:"password"`
}

func (CreateRoom) Name() string { return "createRoom" }

// LeaveRoom leaves the current room.
type LeaveRoom struct{}

func (LeaveRoom) Name() string { return "leaveRoom" }

// JoinTeam moves the viewer to a team.
type JoinTeam struct {
	Team game.Team `json:"team"`
}

func (JoinTeam) Name() string { return "joinTeam" }

// RandomizeTeams shuffles everyone in the room onto teams.
type RandomizeTeams struct{}

func (RandomizeTeams) Name() string { return "randomizeTeams" }

// NewGame starts a fresh board in the current room.
type NewGame struct{}

func (NewGame) Name() string { return "newGame" }

// DeclareClue submits the spymaster's clue for this turn.
type DeclareClue struct {
	Word  string         `json:"word"`
	Count game.ClueCount `json:"count"`
}

func (DeclareClue) Name() string { return "declareClue" }

// SwitchRole changes the viewer's role.
type SwitchRole struct {
	Role game.Role `json:"role"`
}

func (SwitchRole) Name() string { return "switchRole" }

// SwitchDifficulty changes the room difficulty.
type SwitchDifficulty struct {
	Difficulty game.Difficulty `json:"difficulty"`
}

func (SwitchDifficulty) Name() string { return "switchDifficulty" }

// SwitchMode toggles between casual and timed play.
type SwitchMode struct {
	Mode game.Mode `json:"mode"`
}

func (SwitchMode) Name() string { return "switchMode" }

// SwitchConsensus toggles the guess-resolution rule.
type SwitchConsensus struct {
	Consensus game.Consensus `json:"consensus"`
}

func (SwitchConsensus) Name() string { return "switchConsensus" }

// EndTurn ends the viewer team's turn.
type EndTurn struct{}

func (EndTurn) Name() string { return "endTurn" }

// ClickTile selects the tile at row i, column j.
type ClickTile struct {
	I int `json:"i"`
	J int `json:"j"`
}

func (ClickTile) Name() string { return "clickTile" }

// ChangeCards toggles a word pack in the room's pool.
type ChangeCards struct {
	Pack game.Pack `json:"pack"`
}

func (ChangeCards) Name() string { return "changeCards" }

// TimerSlider sets the turn timer length in minutes.
type TimerSlider struct {
	Value int `json:"value"`
}

func (TimerSlider) Name() string { return "timerSlider" }

// Active confirms the viewer is not AFK.
type Active struct{}

func (Active) Name() string { return "active" }

// envelope is the outer JSON frame shared by both directions.
type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// EncodeCommand frames a command for the wire.
func EncodeCommand(cmd Command) ([]byte, error) {
	payload, err := json.Marshal(cmd)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Event: cmd.Name(), Payload: payload})
}
