package view

import (
	"reflect"
	"testing"

	"github.com/avoronov/codenames-tui/internal/game"
)

// testBoard builds a board with a known type layout: row i cycles through
// the four tile types, and the given coordinates are pre-flipped.
func testBoard(flipped ...[2]int) game.Board {
	types := []game.TileType{game.TileRed, game.TileBlue, game.TileNeutral, game.TileDeath}
	var b game.Board
	n := 0
	for i := range b {
		for j := range b[i] {
			b[i][j] = game.Tile{
				Word: string(rune('a'+i)) + string(rune('0'+j)),
				Type: types[n%len(types)],
			}
			n++
		}
	}
	for _, f := range flipped {
		b[f[0]][f[1]].Flipped = true
	}
	return b
}

func TestProjectGuesserSeesOnlyFlipped(t *testing.T) {
	b := testBoard([2]int{0, 0}, [2]int{2, 3})

	vb := Project(b, game.RoleGuesser, false)

	for i := range vb {
		for j := range vb[i] {
			got := vb[i][j]
			if got.Word != b[i][j].Word {
				t.Errorf("tile (%d,%d): word %q, expected %q", i, j, got.Word, b[i][j].Word)
			}
			if b[i][j].Flipped {
				if got.DisplayType != b[i][j].Type {
					t.Errorf("flipped tile (%d,%d): display type %s, expected %s", i, j, got.DisplayType, b[i][j].Type)
				}
			} else if got.DisplayType != game.TileUnknown {
				t.Errorf("hidden tile (%d,%d): display type %s leaked to guesser", i, j, got.DisplayType)
			}
		}
	}
}

func TestProjectSpymasterSeesEverything(t *testing.T) {
	b := testBoard([2]int{1, 1})

	vb := Project(b, game.RoleSpymaster, false)

	for i := range vb {
		for j := range vb[i] {
			if vb[i][j].DisplayType != b[i][j].Type {
				t.Errorf("tile (%d,%d): display type %s, expected %s", i, j, vb[i][j].DisplayType, b[i][j].Type)
			}
		}
	}
}

func TestProjectGameOverRevealsAll(t *testing.T) {
	b := testBoard()

	vb := Project(b, game.RoleGuesser, true)

	for i := range vb {
		for j := range vb[i] {
			if vb[i][j].DisplayType == game.TileUnknown {
				t.Fatalf("tile (%d,%d) still hidden after game over", i, j)
			}
		}
	}
}

func TestProjectDeterministic(t *testing.T) {
	b := testBoard([2]int{0, 1}, [2]int{4, 4})

	first := Project(b, game.RoleGuesser, false)
	second := Project(b, game.RoleGuesser, false)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated projection of the same board differs")
	}
}

func TestProjectPreservesFlippedFlag(t *testing.T) {
	b := testBoard([2]int{3, 2})

	vb := Project(b, game.RoleSpymaster, false)

	if !vb[3][2].Flipped {
		t.Error("flipped flag lost in projection")
	}
	if vb[0][0].Flipped {
		t.Error("unflipped tile reported as flipped")
	}
}
