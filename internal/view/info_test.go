package view

import (
	"testing"

	"github.com/avoronov/codenames-tui/internal/game"
)

func snapshotWith(mutate func(*game.Snapshot)) *game.Snapshot {
	s := &game.Snapshot{
		Game: game.State{
			TimerAmount: 121,
			Words:       400,
			Base:        true,
			Red:         8,
			Blue:        9,
			Turn:        game.TeamRed,
		},
		Team:       game.TeamRed,
		Mode:       game.ModeCasual,
		Consensus:  game.ConsensusSingle,
		Difficulty: game.DifficultyNormal,
	}
	if mutate != nil {
		mutate(s)
	}
	return s
}

func TestReconcileInfoTurnBanner(t *testing.T) {
	winner := game.TeamBlue

	tests := []struct {
		name          string
		mutate        func(*game.Snapshot)
		expectedMsg   string
		expectedColor game.Team
	}{
		{
			name:          "red turn",
			expectedMsg:   "red's turn",
			expectedColor: game.TeamRed,
		},
		{
			name: "blue turn",
			mutate: func(s *game.Snapshot) {
				s.Game.Turn = game.TeamBlue
			},
			expectedMsg:   "blue's turn",
			expectedColor: game.TeamBlue,
		},
		{
			name: "winner banner",
			mutate: func(s *game.Snapshot) {
				s.Game.Over = true
				s.Game.Winner = &winner
			},
			expectedMsg:   "blue wins!",
			expectedColor: game.TeamBlue,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := ReconcileInfo(snapshotWith(tc.mutate), game.TeamRed, game.RoleGuesser)
			if info.TurnMessage != tc.expectedMsg {
				t.Errorf("TurnMessage = %q, expected %q", info.TurnMessage, tc.expectedMsg)
			}
			if info.TurnColor != tc.expectedColor {
				t.Errorf("TurnColor = %s, expected %s", info.TurnColor, tc.expectedColor)
			}
		})
	}
}

func TestReconcileInfoEndTurnEnabled(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*game.Snapshot)
		team     game.Team
		role     game.Role
		expected bool
	}{
		{
			name:     "guesser on own turn",
			team:     game.TeamRed,
			role:     game.RoleGuesser,
			expected: true,
		},
		{
			name:     "guesser on opponent turn",
			team:     game.TeamBlue,
			role:     game.RoleGuesser,
			expected: false,
		},
		{
			name:     "spymaster never ends turns",
			team:     game.TeamRed,
			role:     game.RoleSpymaster,
			expected: false,
		},
		{
			name: "game over disables end turn",
			mutate: func(s *game.Snapshot) {
				s.Game.Over = true
			},
			team:     game.TeamRed,
			role:     game.RoleGuesser,
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := ReconcileInfo(snapshotWith(tc.mutate), tc.team, tc.role)
			if info.EndTurnEnabled != tc.expected {
				t.Errorf("EndTurnEnabled = %v, expected %v", info.EndTurnEnabled, tc.expected)
			}
		})
	}
}

func TestReconcileInfoClueSlot(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*game.Snapshot)
		role          game.Role
		expectedText  string
		expectedEntry bool
	}{
		{
			name:          "no active clue",
			role:          game.RoleGuesser,
			expectedText:  "___",
			expectedEntry: false,
		},
		{
			name: "numbered clue",
			mutate: func(s *game.Snapshot) {
				s.Game.Clue = &game.Clue{Word: "ocean", Count: game.ClueCount{N: 3}}
			},
			role:          game.RoleGuesser,
			expectedText:  "ocean (3)",
			expectedEntry: false,
		},
		{
			name: "unlimited clue",
			mutate: func(s *game.Snapshot) {
				s.Game.Clue = &game.Clue{Word: "ocean", Count: game.ClueCount{Unlimited: true}}
			},
			role:          game.RoleGuesser,
			expectedText:  "ocean (∞)",
			expectedEntry: false,
		},
		{
			name:          "spymaster entry open on own turn",
			role:          game.RoleSpymaster,
			expectedText:  "___",
			expectedEntry: true,
		},
		{
			name: "entry closed once clue is active",
			mutate: func(s *game.Snapshot) {
				s.Game.Clue = &game.Clue{Word: "ocean", Count: game.ClueCount{N: 2}}
			},
			role:          game.RoleSpymaster,
			expectedText:  "ocean (2)",
			expectedEntry: false,
		},
		{
			name: "clue slot resets at game over",
			mutate: func(s *game.Snapshot) {
				s.Game.Over = true
				s.Game.Clue = &game.Clue{Word: "ocean", Count: game.ClueCount{N: 2}}
			},
			role:          game.RoleGuesser,
			expectedText:  "___",
			expectedEntry: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info := ReconcileInfo(snapshotWith(tc.mutate), game.TeamRed, tc.role)
			if info.ClueText != tc.expectedText {
				t.Errorf("ClueText = %q, expected %q", info.ClueText, tc.expectedText)
			}
			if info.ClueEntryVisible != tc.expectedEntry {
				t.Errorf("ClueEntryVisible = %v, expected %v", info.ClueEntryVisible, tc.expectedEntry)
			}
		})
	}
}

func TestReconcileInfoTimerSlider(t *testing.T) {
	casual := ReconcileInfo(snapshotWith(nil), game.TeamRed, game.RoleGuesser)
	if casual.TimerSliderVisible {
		t.Error("slider visible in casual mode")
	}

	timed := ReconcileInfo(snapshotWith(func(s *game.Snapshot) {
		s.Mode = game.ModeTimed
		s.Game.TimerAmount = 181
	}), game.TeamRed, game.RoleGuesser)
	if !timed.TimerSliderVisible {
		t.Error("slider hidden in timed mode")
	}
	if timed.TimerSliderValue != 3 {
		t.Errorf("TimerSliderValue = %d, expected 3", timed.TimerSliderValue)
	}
}

func TestReconcileInfoScoresAndPacks(t *testing.T) {
	info := ReconcileInfo(snapshotWith(func(s *game.Snapshot) {
		s.Game.Nsfw = true
		s.Game.Words = 520
	}), game.TeamRed, game.RoleGuesser)

	if info.ScoreRed != 8 || info.ScoreBlue != 9 {
		t.Errorf("scores = %d:%d, expected 8:9", info.ScoreRed, info.ScoreBlue)
	}
	if info.WordPool != 520 {
		t.Errorf("WordPool = %d, expected 520", info.WordPool)
	}
	if !info.Packs[game.PackBase] || !info.Packs[game.PackNsfw] {
		t.Error("enabled packs not reflected")
	}
	if info.Packs[game.PackDuet] {
		t.Error("disabled pack reported enabled")
	}
}
