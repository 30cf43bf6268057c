package view

import "github.com/avoronov/codenames-tui/internal/game"

// RosterEntry is one player line. Spymasters render bracketed; a guesser
// with an active proposal shows the proposed word next to their name.
type RosterEntry struct {
	Name      string
	Spymaster bool
	Proposal  string
}

// Label returns the player's display name, bracketed for spymasters.
func (e RosterEntry) Label() string {
	if e.Spymaster {
		return "[" + e.Name + "]"
	}
	return e.Name
}

// Roster groups the room's players by team, preserving server order
// within each group.
type Roster struct {
	Undecided []RosterEntry
	Red       []RosterEntry
	Blue      []RosterEntry
}

// BuildRoster projects the snapshot's player list into team groups.
func BuildRoster(players []game.Player) Roster {
	var r Roster
	for _, p := range players {
		e := RosterEntry{
			Name:      p.Nickname,
			Spymaster: p.Role == game.RoleSpymaster,
		}
		if !e.Spymaster && p.GuessProposal != nil {
			e.Proposal = *p.GuessProposal
		}
		switch p.Team {
		case game.TeamRed:
			r.Red = append(r.Red, e)
		case game.TeamBlue:
			r.Blue = append(r.Blue, e)
		default:
			r.Undecided = append(r.Undecided, e)
		}
	}
	return r
}
