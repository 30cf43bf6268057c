package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/avoronov/codenames-tui/internal/game"
	"github.com/avoronov/codenames-tui/internal/view"
)

// Tile cell width, wide enough for the longest pack words.
const tileWidth = 14

var (
	attrColors = map[view.TileAttr]lipgloss.Color{
		view.AttrRed:     lipgloss.Color("9"),
		view.AttrBlue:    lipgloss.Color("12"),
		view.AttrNeutral: lipgloss.Color("3"),
		view.AttrDeath:   lipgloss.Color("13"),
	}

	tileBase = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	tileCursor = lipgloss.NewStyle().
			Width(tileWidth).
			Align(lipgloss.Center).
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("10"))

	teamStyles = map[game.Team]lipgloss.Style{
		game.TeamRed:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		game.TeamBlue: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
)

// tileStyle derives the full style for one descriptor. Attribute order is
// already precedence order, so later markers layer on top of the color.
func tileStyle(d view.TileDescriptor, cursor bool) lipgloss.Style {
	s := tileBase
	if cursor {
		s = tileCursor
	}
	for _, a := range d.Attrs {
		switch a {
		case view.AttrRed, view.AttrBlue, view.AttrNeutral, view.AttrDeath:
			s = s.Foreground(attrColors[a])
		case view.AttrFlipped:
			s = s.Reverse(true)
		case view.AttrProposed:
			s = s.Underline(true)
		case view.AttrRevealed:
			s = s.Bold(true)
		case view.AttrHard:
			s = s.Italic(true)
		}
	}
	return s
}

// truncateWord caps a word at the cell width by runes, so a multi-byte
// word is never cut mid-rune.
func truncateWord(word string) string {
	r := []rune(word)
	if len(r) <= tileWidth {
		return word
	}
	return string(r[:tileWidth])
}

// renderBoard draws the 5x5 grid, highlighting the cursor position.
func renderBoard(b view.BoardView, cursorI, cursorJ int) string {
	rows := make([]string, 0, game.BoardSize)
	for i := range b {
		cells := make([]string, 0, game.BoardSize)
		for j := range b[i] {
			d := b[i][j]
			cells = append(cells, tileStyle(d, i == cursorI && j == cursorJ).Render(truncateWord(d.Word)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
