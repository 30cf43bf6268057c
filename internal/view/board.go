package view

import "github.com/avoronov/codenames-tui/internal/game"

// TileAttr is one display attribute of a rendered tile. Attributes are the
// TUI analogue of CSS classes: the terminal layer maps them to styles.
type TileAttr string

const (
	AttrBase     TileAttr = "tile"
	AttrRed      TileAttr = "red"
	AttrBlue     TileAttr = "blue"
	AttrNeutral  TileAttr = "neutral"
	AttrDeath    TileAttr = "death"
	AttrFlipped  TileAttr = "flipped"
	AttrProposed TileAttr = "proposed"
	AttrRevealed TileAttr = "revealed"
	AttrHard     TileAttr = "hard"
)

// TileDescriptor is the render output for one tile: its word and an
// ordered, duplicate-free attribute list.
type TileDescriptor struct {
	Word  string
	Attrs []TileAttr
}

// Has reports whether the descriptor carries the attribute.
func (d TileDescriptor) Has(a TileAttr) bool {
	for _, x := range d.Attrs {
		if x == a {
			return true
		}
	}
	return false
}

// BoardView is the full grid of render descriptors.
type BoardView [game.BoardSize][game.BoardSize]TileDescriptor

// colorAttr maps a visible tile type to its color attribute. TileUnknown
// has no color: the viewer may not know it.
func colorAttr(t game.TileType) (TileAttr, bool) {
	switch t {
	case game.TileRed:
		return AttrRed, true
	case game.TileBlue:
		return AttrBlue, true
	case game.TileNeutral:
		return AttrNeutral, true
	case game.TileDeath:
		return AttrDeath, true
	default:
		return "", false
	}
}

// RenderBoard converts a projected board into tile descriptors. Attribute
// order follows a fixed precedence: base, color, flipped, proposed,
// revealed, hard. The result depends only on the arguments, so repeated
// calls with an unchanged snapshot yield identical descriptors.
func RenderBoard(vb VisibleBoard, proposals map[string]bool, difficulty game.Difficulty, viewerRole game.Role, gameOver bool) BoardView {
	var out BoardView
	for i := range vb {
		for j := range vb[i] {
			t := vb[i][j]
			attrs := []TileAttr{AttrBase}
			if c, ok := colorAttr(t.DisplayType); ok {
				attrs = append(attrs, c)
			}
			if t.Flipped {
				attrs = append(attrs, AttrFlipped)
			}
			if proposals[t.Word] {
				attrs = append(attrs, AttrProposed)
			}
			if viewerRole == game.RoleSpymaster || gameOver {
				attrs = append(attrs, AttrRevealed)
			}
			if difficulty == game.DifficultyHard {
				attrs = append(attrs, AttrHard)
			}
			out[i][j] = TileDescriptor{Word: t.Word, Attrs: attrs}
		}
	}
	return out
}
