package view

import (
	"fmt"

	"github.com/avoronov/codenames-tui/internal/game"
)

// DisplayLine is one rendered log line, tagged with the team it belongs to
// so the terminal layer can color it.
type DisplayLine struct {
	Text string
	Team game.Team
}

// FormatLogEntry renders one log entry with its fixed template.
func FormatLogEntry(e game.LogEntry) string {
	switch e.Event {
	case game.LogFlipTile:
		suffix := ""
		switch {
		case e.Type == game.TileDeath:
			suffix = " ending the game"
		case e.EndedTurn:
			suffix = " ending their turn"
		}
		return fmt.Sprintf("%s team flipped %s (%s)%s", e.Team, e.Word, e.Type, suffix)
	case game.LogSwitchTurn:
		return fmt.Sprintf("Switched to %s team's turn", e.Team)
	case game.LogDeclareClue:
		word, count := "", ""
		if e.Clue != nil {
			word = e.Clue.Word
			count = e.Clue.Count.String()
		}
		return fmt.Sprintf("%s team was given the clue %q (%s)", e.Team, word, count)
	case game.LogEndTurn:
		return fmt.Sprintf("%s team ended their turn", e.Team)
	}
	return ""
}

// RenderLog converts the append-only server log into display lines,
// newest first. The source order is never altered, only reversed.
func RenderLog(log []game.LogEntry) []DisplayLine {
	out := make([]DisplayLine, 0, len(log))
	for i := len(log) - 1; i >= 0; i-- {
		out = append(out, DisplayLine{
			Text: FormatLogEntry(log[i]),
			Team: log[i].Team,
		})
	}
	return out
}
