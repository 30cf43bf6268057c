package view

import (
	"fmt"

	"github.com/avoronov/codenames-tui/internal/game"
)

// noClue is shown in the clue slot when no clue is active or the game ended.
const noClue = "___"

// Toggles captures which option is active in each mutually exclusive
// settings pair. The UI disables the button matching the active value;
// the disabled button reads as "currently selected".
type Toggles struct {
	Mode       game.Mode
	Difficulty game.Difficulty
	Consensus  game.Consensus
	Role       game.Role
}

// InfoPanel is everything the info panel derives from one snapshot: scores,
// the turn banner, button enablement, the clue slot, the timer slider, and
// the pack toggles. It carries no references back into the snapshot.
type InfoPanel struct {
	ScoreRed  int
	ScoreBlue int

	// TurnMessage is the banner text; TurnColor is the team whose color
	// the banner takes (the winner once the game is over).
	TurnMessage string
	TurnColor   game.Team

	EndTurnEnabled   bool
	ClueEntryVisible bool
	ClueText         string

	// TimerSliderValue is in minutes; the slider only shows in timed mode.
	TimerSliderValue   int
	TimerSliderVisible bool

	WordPool int
	Packs    map[game.Pack]bool

	Toggles Toggles
}

// ReconcileInfo derives the info panel state for a viewer from a snapshot.
func ReconcileInfo(s *game.Snapshot, viewerTeam game.Team, viewerRole game.Role) InfoPanel {
	g := &s.Game

	msg := fmt.Sprintf("%s's turn", g.Turn)
	color := g.Turn
	if g.Over && g.Winner != nil {
		msg = fmt.Sprintf("%s wins!", *g.Winner)
		color = *g.Winner
	}

	clueText := noClue
	if !g.Over && g.Clue != nil {
		clueText = fmt.Sprintf("%s (%s)", g.Clue.Word, g.Clue.Count)
	}

	return InfoPanel{
		ScoreRed:  g.Red,
		ScoreBlue: g.Blue,

		TurnMessage: msg,
		TurnColor:   color,

		EndTurnEnabled:   !g.Over && viewerTeam == g.Turn && viewerRole != game.RoleSpymaster,
		ClueEntryVisible: viewerRole == game.RoleSpymaster && g.Clue == nil && viewerTeam == g.Turn,
		ClueText:         clueText,

		TimerSliderValue:   int((g.TimerAmount - 1) / 60),
		TimerSliderVisible: s.Mode == game.ModeTimed,

		WordPool: g.Words,
		Packs: map[game.Pack]bool{
			game.PackBase:       g.Base,
			game.PackDuet:       g.Duet,
			game.PackUndercover: g.Undercover,
			game.PackCustom:     g.Custom,
			game.PackNsfw:       g.Nsfw,
		},

		Toggles: Toggles{
			Mode:       s.Mode,
			Difficulty: s.Difficulty,
			Consensus:  s.Consensus,
			Role:       viewerRole,
		},
	}
}
