package tui

import "github.com/charmbracelet/bubbles/key"

// GameKeyMap defines the key bindings for the room view.
type GameKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Flip      key.Binding
	Clue      key.Binding
	EndTurn   key.Binding
	JoinRed   key.Binding
	JoinBlue  key.Binding
	Randomize key.Binding
	NewGame   key.Binding
	Role      key.Binding
	Diff      key.Binding
	Mode      key.Binding
	Consensus key.Binding
	TimerUp   key.Binding
	TimerDown key.Binding
	Leave     key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Clue, k.EndTurn, k.Role, k.Leave, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Flip},
		{k.Clue, k.EndTurn, k.NewGame, k.Randomize},
		{k.JoinRed, k.JoinBlue, k.Role, k.Diff},
		{k.Mode, k.Consensus, k.TimerUp, k.TimerDown},
		{k.Leave, k.Quit},
	}
}

// DefaultGameKeyMap returns the default room-view bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "move right"),
		),
		Flip: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "flip tile"),
		),
		Clue: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "declare clue"),
		),
		EndTurn: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end turn"),
		),
		JoinRed: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "join red"),
		),
		JoinBlue: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "join blue"),
		),
		Randomize: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "randomize teams"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Role: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "switch role"),
		),
		Diff: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "difficulty"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mode"),
		),
		Consensus: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "consensus"),
		),
		TimerUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "timer up"),
		),
		TimerDown: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "timer down"),
		),
		Leave: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "leave room"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// packKeys maps number keys to word packs, in display order.
var packKeys = []string{"1", "2", "3", "4", "5"}
