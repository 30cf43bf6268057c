package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/avoronov/codenames-tui/internal/protocol"
	"github.com/avoronov/codenames-tui/internal/session"
	"github.com/avoronov/codenames-tui/internal/storage"
)

// Options configures a client UI instance.
type Options struct {
	// Nickname prefills the sign-in form.
	Nickname string
	// Fragment prefills the room and password fields, typically parsed
	// from a share link or restored from a bookmark.
	Fragment protocol.RoomFragment
	// Store persists bookmarks and visits on confirmed joins. Optional;
	// kiosk sessions run without one.
	Store *storage.Store
	// Logger receives UI-level diagnostics.
	Logger *log.Logger
	// ShowRoster toggles the player-list sidebar section.
	ShowRoster bool
	// LogLines caps the rendered log; 0 shows everything.
	LogLines int
}

// Model is the root Bubble Tea model. It routes messages to the sign-in
// form or the room view depending on the session phase, and feeds every
// server event through the controller exactly once.
type Model struct {
	ctrl   *session.Controller
	events <-chan protocol.Event
	store  *storage.Store
	logger *log.Logger

	join joinModel
	game gameModel

	// pendingNickname mirrors the form value of the last join attempt so a
	// confirmed join can be bookmarked with the right identity.
	pendingNickname string

	width        int
	height       int
	disconnected bool
	quitting     bool
}

// NewModel builds the root model around a controller and its event source.
func NewModel(ctrl *session.Controller, events <-chan protocol.Event, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return Model{
		ctrl:   ctrl,
		events: events,
		store:  opts.Store,
		logger: logger,
		join:   newJoinModel(opts.Nickname, opts.Fragment),
		game:   newGameModel(ctrl, opts.ShowRoster, opts.LogLines),
	}
}

// Init starts the cursor blink and the event pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForEvent(m.events))
}

// Update routes one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case DisconnectedMsg:
		m.disconnected = true
		m.quitting = true
		return m, tea.Quit

	case EventMsg:
		return m.applyEvent(msg.Event)
	}

	if m.ctrl.Phase() == session.PhaseInRoom {
		var cmd tea.Cmd
		var action gameAction
		m.game, cmd, action = m.game.Update(msg)
		if action == gameActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		return m, cmd
	}

	var cmd tea.Cmd
	var action joinAction
	m.join, cmd, action = m.join.Update(msg)
	switch action {
	case joinActionQuit:
		m.quitting = true
		return m, tea.Quit
	case joinActionJoin, joinActionCreate:
		nickname, room, password := m.join.Values()
		if nickname == "" || room == "" {
			return m, cmd
		}
		m.pendingNickname = nickname
		var err error
		if action == joinActionJoin {
			err = m.ctrl.Join(nickname, room, password)
		} else {
			err = m.ctrl.Create(nickname, room, password)
		}
		if err != nil {
			m.logger.Error("send failed", "error", err)
		}
	}
	return m, cmd
}

// applyEvent runs one server event through the controller and reacts to
// what changed. The pump is re-armed only after the event is fully
// applied, which keeps delivery strictly serial.
func (m Model) applyEvent(evt protocol.Event) (tea.Model, tea.Cmd) {
	// The server may assign a fresh identity on connect; keep it so the
	// next session resumes as the same player.
	if stats, ok := evt.(protocol.ServerStats); ok && stats.SessionID != "" && m.store != nil {
		if err := m.store.SetSessionID(stats.SessionID); err != nil {
			m.logger.Warn("cannot save session id", "error", err)
		}
	}

	res := m.ctrl.Apply(evt)

	if res.PhaseChanged {
		switch m.ctrl.Phase() {
		case session.PhaseInRoom:
			m.recordJoin()
		case session.PhaseSignedOut:
			// Back to the form, keeping the last identity for convenience.
			m.join = newJoinModel(m.pendingNickname, m.ctrl.Fragment())
		}
	}

	m.game.SetPlan(res.Plan, res.Wipe)
	return m, waitForEvent(m.events)
}

// recordJoin persists the confirmed room as a bookmark and a visit.
func (m Model) recordJoin() {
	if m.store == nil {
		return
	}
	frag := m.ctrl.Fragment()
	if err := m.store.SaveBookmark(frag.Room, frag.Password, m.pendingNickname); err != nil {
		m.logger.Warn("cannot save bookmark", "error", err)
	}
	if _, err := m.store.RecordVisit(frag.Room, m.pendingNickname); err != nil {
		m.logger.Warn("cannot record visit", "error", err)
	}
}

// View renders the phase-appropriate screen.
func (m Model) View() string {
	if m.disconnected {
		return "disconnected from server\n"
	}
	if m.quitting {
		return ""
	}
	if m.ctrl.Phase() == session.PhaseInRoom {
		return m.game.View(m.width)
	}
	return m.join.View(m.ctrl.Stats(), m.ctrl.JoinError())
}

// Run drives the UI on the local terminal until quit or disconnect.
func Run(ctrl *session.Controller, events <-chan protocol.Event, opts Options) error {
	p := tea.NewProgram(NewModel(ctrl, events, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
