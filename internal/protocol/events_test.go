package protocol

import (
	"testing"

	"github.com/avoronov/codenames-tui/internal/game"
)

func TestDecodeEvent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Event
	}{
		{
			name:     "server stats",
			raw:      `{"event":"serverStats","payload":{"players":7,"rooms":2,"sessionId":"abc","isExistingPlayer":true}}`,
			expected: ServerStats{Players: 7, Rooms: 2, SessionID: "abc", IsExistingPlayer: true},
		},
		{
			name:     "join rejected",
			raw:      `{"event":"joinResponse","payload":{"success":false,"msg":"wrong password"}}`,
			expected: JoinResponse{Success: false, Msg: "wrong password"},
		},
		{
			name:     "create confirmed",
			raw:      `{"event":"createResponse","payload":{"success":true}}`,
			expected: CreateResponse{Success: true},
		},
		{
			name:     "leave confirmed",
			raw:      `{"event":"leaveResponse","payload":{"success":true}}`,
			expected: LeaveResponse{Success: true},
		},
		{
			name:     "timer update",
			raw:      `{"event":"timerUpdate","payload":{"timer":57.5}}`,
			expected: TimerUpdate{Timer: 57.5},
		},
		{
			name:     "new game",
			raw:      `{"event":"newGameResponse","payload":{"success":true}}`,
			expected: NewGameResponse{Success: true},
		},
		{
			name:     "afk warning has no payload",
			raw:      `{"event":"afkWarning"}`,
			expected: AfkWarning{},
		},
		{
			name:     "afk kicked",
			raw:      `{"event":"afkKicked"}`,
			expected: AfkKicked{},
		},
		{
			name:     "server message",
			raw:      `{"event":"serverMessage","payload":{"msg":"restarting soon"}}`,
			expected: ServerMessage{Msg: "restarting soon"},
		},
		{
			name:     "switch role confirmed",
			raw:      `{"event":"switchRoleResponse","payload":{"success":true,"role":"spymaster"}}`,
			expected: SwitchRoleResponse{Success: true, Role: game.RoleSpymaster},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			evt, err := DecodeEvent([]byte(tc.raw))
			if err != nil {
				t.Fatalf("DecodeEvent() failed: %v", err)
			}
			if evt != tc.expected {
				t.Errorf("DecodeEvent() = %#v, expected %#v", evt, tc.expected)
			}
		})
	}
}

func TestDecodeGameState(t *testing.T) {
	raw := `{"event":"gameState","payload":{
		"game":{
			"timerAmount":121,"words":400,
			"base":true,"duet":false,"undercover":false,"custom":false,"nsfw":false,
			"red":8,"blue":9,"turn":"red","over":false,"winner":null,
			"board":[
				[{"word":"a","flipped":false,"type":"red"},{"word":"b","flipped":true,"type":"blue"},{"word":"c","flipped":false,"type":"neutral"},{"word":"d","flipped":false,"type":"death"},{"word":"e","flipped":false,"type":"red"}],
				[{"word":"f","flipped":false,"type":"red"},{"word":"g","flipped":false,"type":"blue"},{"word":"h","flipped":false,"type":"neutral"},{"word":"i","flipped":false,"type":"red"},{"word":"j","flipped":false,"type":"blue"}],
				[{"word":"k","flipped":false,"type":"red"},{"word":"l","flipped":false,"type":"blue"},{"word":"m","flipped":false,"type":"neutral"},{"word":"n","flipped":false,"type":"red"},{"word":"o","flipped":false,"type":"blue"}],
				[{"word":"p","flipped":false,"type":"red"},{"word":"q","flipped":false,"type":"blue"},{"word":"r","flipped":false,"type":"neutral"},{"word":"s","flipped":false,"type":"red"},{"word":"t","flipped":false,"type":"blue"}],
				[{"word":"u","flipped":false,"type":"red"},{"word":"v","flipped":false,"type":"blue"},{"word":"w","flipped":false,"type":"neutral"},{"word":"x","flipped":false,"type":"red"},{"word":"y","flipped":false,"type":"blue"}]
			],
			"log":[{"event":"declareClue","team":"red","clue":{"word":"ocean","count":"unlimited"}}],
			"clue":{"word":"ocean","count":"unlimited"}
		},
		"team":"red","mode":"timed","consensus":"consensus","difficulty":"hard",
		"players":[{"nickname":"alice","team":"red","role":"spymaster","guessProposal":null}]
	}}`

	evt, err := DecodeEvent([]byte(raw))
	if err != nil {
		t.Fatalf("DecodeEvent() failed: %v", err)
	}

	gs, ok := evt.(GameState)
	if !ok {
		t.Fatalf("decoded %T, expected GameState", evt)
	}
	if gs.Game.Turn != game.TeamRed || gs.Game.Red != 8 || gs.Game.Blue != 9 {
		t.Errorf("game header = %+v", gs.Game)
	}
	if gs.Mode != game.ModeTimed || gs.Consensus != game.ConsensusAll || gs.Difficulty != game.DifficultyHard {
		t.Errorf("room settings = %s/%s/%s", gs.Mode, gs.Consensus, gs.Difficulty)
	}
	if !gs.Game.Board[0][1].Flipped || gs.Game.Board[0][3].Type != game.TileDeath {
		t.Error("board did not decode")
	}
	if gs.Game.Clue == nil || !gs.Game.Clue.Count.Unlimited {
		t.Error("unlimited clue count did not decode")
	}
	if len(gs.Players) != 1 || gs.Players[0].Role != game.RoleSpymaster {
		t.Errorf("players = %+v", gs.Players)
	}
	if len(gs.Game.Log) != 1 || gs.Game.Log[0].Clue == nil {
		t.Errorf("log = %+v", gs.Game.Log)
	}
}

func TestDecodeEventErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown event", `{"event":"teleport"}`},
		{"malformed frame", `not json`},
		{"bad payload", `{"event":"timerUpdate","payload":{"timer":"soon"}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeEvent([]byte(tc.raw)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
