// Package session orchestrates the client side of a room session: it holds
// the last authoritative snapshot and the viewer's local preferences, runs
// the signed-out/in-room state machine over inbound server events, and
// emits outbound commands for user intent. All state here changes only on
// confirmed server responses, never optimistically.
package session

import "github.com/avoronov/codenames-tui/internal/game"

// Preferences are the viewer's locally held settings. They decide how to
// render, never what is true: the server remains the authority, and each
// field is mutated only by a confirmed response or an accepted snapshot.
type Preferences struct {
	Role       game.Role
	Difficulty game.Difficulty
	Mode       game.Mode
	Consensus  game.Consensus
}

// DefaultPreferences returns the settings a fresh session starts with.
func DefaultPreferences() Preferences {
	return Preferences{
		Role:       game.RoleGuesser,
		Difficulty: game.DifficultyNormal,
		Mode:       game.ModeCasual,
		Consensus:  game.ConsensusSingle,
	}
}
