package game

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ClueCount is a clue's tile count. The wire value is either a positive
// integer or the string "unlimited".
type ClueCount struct {
	N         int
	Unlimited bool
}

// unlimitedWire is the sentinel the server uses for count-free clues.
const unlimitedWire = "unlimited"

// UnmarshalJSON accepts a number, a numeric string, or "unlimited".
func (c *ClueCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == unlimitedWire {
			*c = ClueCount{Unlimited: true}
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*c = ClueCount{N: n}
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = ClueCount{N: n}
	return nil
}

// MarshalJSON emits the same representation the server uses.
func (c ClueCount) MarshalJSON() ([]byte, error) {
	if c.Unlimited {
		return json.Marshal(unlimitedWire)
	}
	return json.Marshal(c.N)
}

// String renders the count for display: the number, or the infinity sign.
func (c ClueCount) String() string {
	if c.Unlimited {
		return "∞"
	}
	return strconv.Itoa(c.N)
}

// LogEvent tags a LogEntry variant.
type LogEvent string

const (
	LogFlipTile    LogEvent = "flipTile"
	LogSwitchTurn  LogEvent = "switchTurn"
	LogDeclareClue LogEvent = "declareClue"
	LogEndTurn     LogEvent = "endTurn"
)

// LogEntry is one immutable line of the room's append-only log. Which
// fields are meaningful depends on Event: Word/Type/EndedTurn belong to
// flipTile, Clue to declareClue.
type LogEntry struct {
	Event     LogEvent `json:"event"`
	Team      Team     `json:"team"`
	Word      string   `json:"word,omitempty"`
	Type      TileType `json:"type,omitempty"`
	Clue      *Clue    `json:"clue,omitempty"`
	EndedTurn bool     `json:"endedTurn,omitempty"`
}

// State is the room's game object as the server serializes it. It arrives
// whole inside every gameState push and is never diffed.
type State struct {
	TimerAmount float64 `json:"timerAmount"`
	Words       int     `json:"words"`

	// Enabled word packs, mirrored directly into the pack toggles.
	Base       bool `json:"base"`
	Duet       bool `json:"duet"`
	Undercover bool `json:"undercover"`
	Custom     bool `json:"custom"`
	Nsfw       bool `json:"nsfw"`

	// Remaining unflipped tiles per team.
	Red  int `json:"red"`
	Blue int `json:"blue"`

	Turn   Team       `json:"turn"`
	Over   bool       `json:"over"`
	Winner *Team      `json:"winner"`
	Board  Board      `json:"board"`
	Log    []LogEntry `json:"log"`
	Clue   *Clue      `json:"clue"`
}

// PackEnabled reports whether the named pack is toggled on.
func (s *State) PackEnabled(p Pack) bool {
	switch p {
	case PackBase:
		return s.Base
	case PackDuet:
		return s.Duet
	case PackUndercover:
		return s.Undercover
	case PackCustom:
		return s.Custom
	case PackNsfw:
		return s.Nsfw
	default:
		return false
	}
}

// Snapshot is one complete authoritative description of the room from the
// viewer's perspective: the shared game state plus the viewer's confirmed
// team and the room's settings. Each snapshot fully replaces the previous
// one; the client never merges.
type Snapshot struct {
	Game       State      `json:"game"`
	Team       Team       `json:"team"`
	Mode       Mode       `json:"mode"`
	Consensus  Consensus  `json:"consensus"`
	Difficulty Difficulty `json:"difficulty"`
	Players    []Player   `json:"players"`
}

// Proposals derives the set of words currently proposed by any player.
// It is a pure projection of the player list; the result is never cached.
func (s *Snapshot) Proposals() map[string]bool {
	out := make(map[string]bool)
	for _, p := range s.Players {
		if p.GuessProposal != nil {
			out[*p.GuessProposal] = true
		}
	}
	return out
}
