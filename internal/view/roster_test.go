package view

import (
	"testing"

	"github.com/avoronov/codenames-tui/internal/game"
)

func TestBuildRosterGroupsAndLabels(t *testing.T) {
	word := "apple"
	players := []game.Player{
		{Nickname: "alice", Team: game.TeamRed, Role: game.RoleSpymaster},
		{Nickname: "bob", Team: game.TeamRed, Role: game.RoleGuesser, GuessProposal: &word},
		{Nickname: "carol", Team: game.TeamBlue, Role: game.RoleGuesser},
		{Nickname: "dave", Team: game.TeamUndecided, Role: game.RoleGuesser},
	}

	r := BuildRoster(players)

	if len(r.Red) != 2 || len(r.Blue) != 1 || len(r.Undecided) != 1 {
		t.Fatalf("groups = %d/%d/%d, expected 2/1/1", len(r.Red), len(r.Blue), len(r.Undecided))
	}
	if r.Red[0].Label() != "[alice]" {
		t.Errorf("spymaster label = %q, expected [alice]", r.Red[0].Label())
	}
	if r.Red[1].Label() != "bob" {
		t.Errorf("guesser label = %q, expected bob", r.Red[1].Label())
	}
	if r.Red[1].Proposal != "apple" {
		t.Errorf("proposal = %q, expected apple", r.Red[1].Proposal)
	}
	if r.Blue[0].Proposal != "" {
		t.Error("player without proposal carries one")
	}
}

func TestBuildRosterSpymasterProposalIgnored(t *testing.T) {
	// A spymaster never proposes; a stray value from the server is dropped.
	word := "apple"
	r := BuildRoster([]game.Player{
		{Nickname: "alice", Team: game.TeamRed, Role: game.RoleSpymaster, GuessProposal: &word},
	})

	if r.Red[0].Proposal != "" {
		t.Errorf("spymaster proposal = %q, expected empty", r.Red[0].Proposal)
	}
}
