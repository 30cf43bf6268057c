package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avoronov/codenames-tui/internal/game"
	"github.com/avoronov/codenames-tui/internal/session"
	"github.com/avoronov/codenames-tui/internal/view"
)

// gameAction is what the room view asks the app to do after a key.
type gameAction int

const (
	gameActionNone gameAction = iota
	gameActionQuit
)

var (
	bannerStyle  = lipgloss.NewStyle().Bold(true)
	noticeStyle  = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("11")).
			Padding(1, 3)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// gameModel is the room view. All game state lives in the controller; the
// model only keeps local UI state: the cursor, the clue entry form, and
// help visibility.
type gameModel struct {
	ctrl *session.Controller
	keys GameKeyMap
	help help.Model

	plan *session.RenderPlan

	cursorI int
	cursorJ int

	clueEntry bool
	clueWord  textinput.Model
	clueCount textinput.Model
	clueFocus int
	clueErr   string

	showRoster bool
	logLines   int
}

func newGameModel(ctrl *session.Controller, showRoster bool, logLines int) gameModel {
	word := textinput.New()
	word.Placeholder = "clue word"
	word.CharLimit = 32

	count := textinput.New()
	count.Placeholder = "count or unlimited"
	count.CharLimit = 9

	return gameModel{
		ctrl:       ctrl,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		clueWord:   word,
		clueCount:  count,
		showRoster: showRoster,
		logLines:   logLines,
	}
}

// SetPlan installs a freshly rendered plan. On a wipe the rendered output is
// discarded wholesale before the new plan replaces it, so no stale marker
// from the previous visibility regime can survive.
func (m *gameModel) SetPlan(plan *session.RenderPlan, wipe bool) {
	if wipe {
		m.plan = nil
	}
	if plan != nil {
		m.plan = plan
		if !plan.Info.ClueEntryVisible {
			m.closeClueEntry()
		}
	}
}

func (m *gameModel) openClueEntry() {
	m.clueEntry = true
	m.clueErr = ""
	m.clueFocus = 0
	m.clueWord.SetValue("")
	m.clueCount.SetValue("")
	m.clueWord.Focus()
	m.clueCount.Blur()
}

func (m *gameModel) closeClueEntry() {
	m.clueEntry = false
	m.clueErr = ""
	m.clueWord.Blur()
	m.clueCount.Blur()
}

// parseClueCount accepts a positive number or the unlimited sentinel.
func parseClueCount(s string) (game.ClueCount, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "unlimited" || s == "u" || s == "∞" {
		return game.ClueCount{Unlimited: true}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return game.ClueCount{}, fmt.Errorf("count must be a number or unlimited")
	}
	return game.ClueCount{N: n}, nil
}

// Update handles one message for the room view.
func (m gameModel) Update(msg tea.Msg) (gameModel, tea.Cmd, gameAction) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, gameActionNone
	}

	// A blocking notice swallows all input until acknowledged.
	if notice, _ := m.ctrl.Notice(); notice != session.NoticeNone {
		if keyMsg.String() == "enter" || keyMsg.String() == " " {
			if notice == session.NoticeAfkWarning {
				_ = m.ctrl.ConfirmActive()
			} else {
				m.ctrl.AcknowledgeNotice()
			}
		}
		return m, nil, gameActionNone
	}

	if m.clueEntry {
		return m.updateClueEntry(keyMsg)
	}
	return m.updateBoard(keyMsg)
}

func (m gameModel) updateClueEntry(keyMsg tea.KeyMsg) (gameModel, tea.Cmd, gameAction) {
	switch keyMsg.String() {
	case "esc":
		m.closeClueEntry()
		return m, nil, gameActionNone
	case "tab", "shift+tab":
		m.clueFocus = 1 - m.clueFocus
		if m.clueFocus == 0 {
			m.clueWord.Focus()
			m.clueCount.Blur()
		} else {
			m.clueWord.Blur()
			m.clueCount.Focus()
		}
		return m, nil, gameActionNone
	case "enter":
		word := strings.TrimSpace(m.clueWord.Value())
		count, err := parseClueCount(m.clueCount.Value())
		if word == "" {
			m.clueErr = "clue word is required"
			return m, nil, gameActionNone
		}
		if err != nil {
			m.clueErr = err.Error()
			return m, nil, gameActionNone
		}
		// The entry stays open until the confirming snapshot arrives with
		// an active clue; the server may still reject the word.
		_ = m.ctrl.DeclareClue(word, count)
		return m, nil, gameActionNone
	}
	var cmd tea.Cmd
	if m.clueFocus == 0 {
		m.clueWord, cmd = m.clueWord.Update(keyMsg)
	} else {
		m.clueCount, cmd = m.clueCount.Update(keyMsg)
	}
	return m, cmd, gameActionNone
}

func (m gameModel) updateBoard(keyMsg tea.KeyMsg) (gameModel, tea.Cmd, gameAction) {
	// Send errors are not handled here: a dead connection surfaces as a
	// disconnect message through the event pump.
	k := m.keys
	switch {
	case key.Matches(keyMsg, k.Quit):
		return m, nil, gameActionQuit
	case key.Matches(keyMsg, k.Up):
		m.cursorI = wrap(m.cursorI-1, game.BoardSize)
	case key.Matches(keyMsg, k.Down):
		m.cursorI = wrap(m.cursorI+1, game.BoardSize)
	case key.Matches(keyMsg, k.Left):
		m.cursorJ = wrap(m.cursorJ-1, game.BoardSize)
	case key.Matches(keyMsg, k.Right):
		m.cursorJ = wrap(m.cursorJ+1, game.BoardSize)
	case key.Matches(keyMsg, k.Flip):
		_ = m.ctrl.ClickTile(m.cursorI, m.cursorJ)
	case key.Matches(keyMsg, k.Clue):
		if m.plan != nil && m.plan.Info.ClueEntryVisible {
			m.openClueEntry()
		}
	case key.Matches(keyMsg, k.EndTurn):
		if m.plan != nil && m.plan.Info.EndTurnEnabled {
			_ = m.ctrl.EndTurn()
		}
	case key.Matches(keyMsg, k.JoinRed):
		_ = m.ctrl.JoinTeam(game.TeamRed)
	case key.Matches(keyMsg, k.JoinBlue):
		_ = m.ctrl.JoinTeam(game.TeamBlue)
	case key.Matches(keyMsg, k.Randomize):
		_ = m.ctrl.RandomizeTeams()
	case key.Matches(keyMsg, k.NewGame):
		_ = m.ctrl.NewGame()
	case key.Matches(keyMsg, k.Role):
		next := game.RoleSpymaster
		if m.ctrl.Preferences().Role == game.RoleSpymaster {
			next = game.RoleGuesser
		}
		_ = m.ctrl.SwitchRole(next)
	case key.Matches(keyMsg, k.Diff):
		next := game.DifficultyHard
		if m.ctrl.Preferences().Difficulty == game.DifficultyHard {
			next = game.DifficultyNormal
		}
		_ = m.ctrl.SwitchDifficulty(next)
	case key.Matches(keyMsg, k.Mode):
		next := game.ModeTimed
		if m.ctrl.Preferences().Mode == game.ModeTimed {
			next = game.ModeCasual
		}
		_ = m.ctrl.SwitchMode(next)
	case key.Matches(keyMsg, k.Consensus):
		next := game.ConsensusAll
		if m.ctrl.Preferences().Consensus == game.ConsensusAll {
			next = game.ConsensusSingle
		}
		_ = m.ctrl.SwitchConsensus(next)
	case key.Matches(keyMsg, k.TimerUp):
		if m.plan != nil && m.plan.Info.TimerSliderVisible {
			_ = m.ctrl.SetTimerSlider(m.plan.Info.TimerSliderValue + 1)
		}
	case key.Matches(keyMsg, k.TimerDown):
		if m.plan != nil && m.plan.Info.TimerSliderVisible && m.plan.Info.TimerSliderValue > 0 {
			_ = m.ctrl.SetTimerSlider(m.plan.Info.TimerSliderValue - 1)
		}
	case key.Matches(keyMsg, k.Leave):
		_ = m.ctrl.Leave()
	case keyMsg.String() == "?":
		m.help.ShowAll = !m.help.ShowAll
	default:
		for i, pk := range packKeys {
			if keyMsg.String() == pk {
				_ = m.ctrl.ChangeCards([]game.Pack{
					game.PackBase, game.PackDuet, game.PackUndercover,
					game.PackCustom, game.PackNsfw,
				}[i])
				break
			}
		}
	}
	return m, nil, gameActionNone
}

func wrap(v, n int) int { return (v%n + n) % n }

// View renders the room: banner, board, sidebar, log, and help. When a
// notice is active it is drawn as an overlay replacing the room.
func (m gameModel) View(width int) string {
	if notice, text := m.ctrl.Notice(); notice != session.NoticeNone {
		return m.viewNotice(notice, text, width)
	}
	if m.plan == nil {
		return dimStyle.Render("waiting for game state…")
	}

	var b strings.Builder

	info := m.plan.Info
	b.WriteString(bannerStyle.Foreground(teamColor(info.TurnColor)).Render(info.TurnMessage))
	fmt.Fprintf(&b, "   %s %d : %d %s\n\n",
		teamStyles[game.TeamRed].Render("red"), info.ScoreRed,
		info.ScoreBlue, teamStyles[game.TeamBlue].Render("blue"))

	board := renderBoard(m.plan.Board, m.cursorI, m.cursorJ)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", m.viewSidebar()))
	b.WriteString("\n")

	if m.clueEntry {
		fmt.Fprintf(&b, "\nclue: %s  count: %s\n", m.clueWord.View(), m.clueCount.View())
		if m.clueErr != "" {
			b.WriteString(formErrStyle.Render(m.clueErr))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.viewLog())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func teamColor(t game.Team) lipgloss.Color {
	switch t {
	case game.TeamRed:
		return lipgloss.Color("9")
	case game.TeamBlue:
		return lipgloss.Color("12")
	}
	return lipgloss.Color("245")
}

func (m gameModel) viewSidebar() string {
	info := m.plan.Info
	var b strings.Builder

	fmt.Fprintf(&b, "clue: %s\n", info.ClueText)
	if info.EndTurnEnabled {
		b.WriteString("[e] end turn\n")
	}
	if info.TimerSliderVisible {
		fmt.Fprintf(&b, "timer: %d min", info.TimerSliderValue)
		if remaining, ok := m.ctrl.Timer(); ok {
			fmt.Fprintf(&b, "  (%.0fs left)", remaining)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("settings"))
	b.WriteString("\n")
	t := info.Toggles
	b.WriteString(toggleLine("mode", string(game.ModeCasual), string(game.ModeTimed), string(t.Mode)))
	b.WriteString(toggleLine("diff", string(game.DifficultyNormal), string(game.DifficultyHard), string(t.Difficulty)))
	b.WriteString(toggleLine("guess", string(game.ConsensusSingle), string(game.ConsensusAll), string(t.Consensus)))
	b.WriteString(toggleLine("role", string(game.RoleGuesser), string(game.RoleSpymaster), string(t.Role)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "%s (%d words)\n", sectionStyle.Render("packs"), info.WordPool)
	for i, p := range []game.Pack{
		game.PackBase, game.PackDuet, game.PackUndercover,
		game.PackCustom, game.PackNsfw,
	} {
		mark := " "
		if info.Packs[p] {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s %s\n", mark, packKeys[i], p)
	}
	if m.showRoster {
		b.WriteString("\n")
		b.WriteString(m.viewRoster())
	}
	return b.String()
}

// toggleLine renders a two-option setting with the active one highlighted.
func toggleLine(label, a, c, active string) string {
	ra, rc := a, c
	if a == active {
		ra = activeStyle.Render(a)
	}
	if c == active {
		rc = activeStyle.Render(c)
	}
	return fmt.Sprintf("%s: %s / %s\n", label, ra, rc)
}

func (m gameModel) viewRoster() string {
	r := m.plan.Roster
	var b strings.Builder
	b.WriteString(sectionStyle.Render("players"))
	b.WriteString("\n")
	writeTeam := func(title string, style lipgloss.Style, entries []view.RosterEntry) {
		if len(entries) == 0 {
			return
		}
		b.WriteString(style.Render(title))
		b.WriteString("\n")
		for _, e := range entries {
			b.WriteString("  " + e.Label())
			if e.Proposal != "" {
				b.WriteString(dimStyle.Render(" → " + e.Proposal))
			}
			b.WriteString("\n")
		}
	}
	writeTeam("red", teamStyles[game.TeamRed], r.Red)
	writeTeam("blue", teamStyles[game.TeamBlue], r.Blue)
	writeTeam("undecided", dimStyle, r.Undecided)
	return b.String()
}

// viewLog shows the most recent log lines, newest first.
func (m gameModel) viewLog() string {
	lines := m.plan.Log
	if m.logLines > 0 && len(lines) > m.logLines {
		lines = lines[:m.logLines]
	}
	var b strings.Builder
	for _, line := range lines {
		style := dimStyle
		if s, ok := teamStyles[line.Team]; ok {
			style = s
		}
		b.WriteString(style.Render(line.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m gameModel) viewNotice(notice session.Notice, text string, width int) string {
	switch notice {
	case session.NoticeAfkWarning:
		text = "Are you still there?\n\npress enter to stay in the room"
	case session.NoticeKicked:
		text += "\n\npress enter to continue"
	case session.NoticeServer:
		text += "\n\npress enter to dismiss"
	}
	box := noticeStyle.Render(text)
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}
