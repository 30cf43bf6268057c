package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoronov/codenames-tui/internal/protocol"
)

// joinAction is what the sign-in form asks the app to do after a key.
type joinAction int

const (
	joinActionNone joinAction = iota
	joinActionJoin
	joinActionCreate
	joinActionQuit
)

const (
	fieldNickname = iota
	fieldRoom
	fieldPassword
	fieldCount
)

var (
	formTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	formErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	formHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// joinModel is the sign-in form: nickname, room, and password inputs plus
// the latest server population line and any rejected-join message.
type joinModel struct {
	inputs [fieldCount]textinput.Model
	focus  int
}

// newJoinModel builds the form, prefilled from a share fragment or a saved
// bookmark when available.
func newJoinModel(nickname string, fragment protocol.RoomFragment) joinModel {
	var m joinModel

	nick := textinput.New()
	nick.Placeholder = "nickname"
	nick.CharLimit = 24
	nick.SetValue(nickname)

	room := textinput.New()
	room.Placeholder = "room"
	room.CharLimit = 32
	room.SetValue(fragment.Room)

	pass := textinput.New()
	pass.Placeholder = "password"
	pass.CharLimit = 32
	pass.EchoMode = textinput.EchoPassword
	pass.SetValue(fragment.Password)

	m.inputs[fieldNickname] = nick
	m.inputs[fieldRoom] = room
	m.inputs[fieldPassword] = pass
	m.inputs[m.focus].Focus()
	return m
}

// Values returns the current form fields.
func (m joinModel) Values() (nickname, room, password string) {
	return strings.TrimSpace(m.inputs[fieldNickname].Value()),
		strings.TrimSpace(m.inputs[fieldRoom].Value()),
		m.inputs[fieldPassword].Value()
}

func (m *joinModel) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// Update handles one message and reports the action the app should take.
func (m joinModel) Update(msg tea.Msg) (joinModel, tea.Cmd, joinAction) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, nil, joinActionQuit
		case "tab", "down":
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil, joinActionNone
		case "shift+tab", "up":
			m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, nil, joinActionNone
		case "enter":
			return m, nil, joinActionJoin
		case "ctrl+n":
			return m, nil, joinActionCreate
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd, joinActionNone
}

// View renders the form with the server stats and the last join error.
func (m joinModel) View(stats protocol.ServerStats, joinErr string) string {
	var b strings.Builder
	b.WriteString(formTitleStyle.Render("codenames"))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Nickname", "Room    ", "Password"}
	for i := range m.inputs {
		fmt.Fprintf(&b, "%s %s\n", labels[i], m.inputs[i].View())
	}

	b.WriteString("\n")
	if joinErr != "" {
		b.WriteString(formErrStyle.Render(joinErr))
		b.WriteString("\n\n")
	}

	fmt.Fprintf(&b, "%d players online in %d rooms\n",
		stats.Players, stats.Rooms)
	if stats.IsExistingPlayer {
		b.WriteString("welcome back\n")
	}

	b.WriteString("\n")
	b.WriteString(formHintStyle.Render("enter: join room  ctrl+n: create room  tab: next field  esc: quit"))
	return b.String()
}
