// Package view is the pure rendering core. Every function here is a total
// function of its inputs: given the same snapshot and viewer, it produces
// the same output, which is what lets the client re-render the whole board
// on every update instead of tracking dirty state.
package view

import "github.com/avoronov/codenames-tui/internal/game"

// VisibleTile is one tile as the current viewer is allowed to see it.
// DisplayType is the tile's true type only when the viewer may know it;
// otherwise it is TileUnknown.
type VisibleTile struct {
	Word        string
	DisplayType game.TileType
	Flipped     bool
}

// VisibleBoard is the role-filtered projection of the full board.
type VisibleBoard [game.BoardSize][game.BoardSize]VisibleTile

// Project computes the per-tile visible attributes for a viewer. A tile's
// true type is observable iff the tile is flipped, the viewer is a
// spymaster, or the game is over.
func Project(board game.Board, viewerRole game.Role, gameOver bool) VisibleBoard {
	var out VisibleBoard
	for i := range board {
		for j := range board[i] {
			t := board[i][j]
			dt := game.TileUnknown
			if t.Flipped || viewerRole == game.RoleSpymaster || gameOver {
				dt = t.Type
			}
			out[i][j] = VisibleTile{
				Word:        t.Word,
				DisplayType: dt,
				Flipped:     t.Flipped,
			}
		}
	}
	return out
}
