package session

import (
	"github.com/avoronov/codenames-tui/internal/game"
	"github.com/avoronov/codenames-tui/internal/protocol"
	"github.com/avoronov/codenames-tui/internal/view"
)

// Commander sends a command toward the server. Implemented by the
// websocket transport; tests substitute a recorder.
type Commander interface {
	Send(cmd protocol.Command) error
}

// Phase is the coarse session state. Role and mode variants are still
// InRoom; they change rendering, not the phase.
type Phase int

const (
	PhaseSignedOut Phase = iota
	PhaseInRoom
)

// Notice is the blocking-overlay state layered on top of the phase.
type Notice int

const (
	NoticeNone Notice = iota
	// NoticeAfkWarning asks the viewer to confirm they are present.
	NoticeAfkWarning
	// NoticeKicked is terminal until acknowledged.
	NoticeKicked
	// NoticeServer carries an informational message from the server.
	NoticeServer
)

const kickedText = "You were kicked for being AFK"

// RenderPlan is everything the terminal layer needs to redraw the room.
// It is always produced whole from the current snapshot; there is no
// partial-update variant.
type RenderPlan struct {
	Board  view.BoardView
	Info   view.InfoPanel
	Log    []view.DisplayLine
	Roster view.Roster
}

// Result reports what an applied event changed.
type Result struct {
	// Plan is non-nil when the room view must be redrawn.
	Plan *RenderPlan
	// Wipe means cached per-tile display state must be discarded before
	// the redraw: visibility semantics changed, so an incremental patch
	// could leave stale markers.
	Wipe bool
	// PhaseChanged is set on SignedOut <-> InRoom transitions.
	PhaseChanged bool
}

// Controller drives the session. Everything runs on the inbound-event
// callback; there is no internal locking because there is no concurrent
// access by design.
type Controller struct {
	cmd   Commander
	store SnapshotStore
	prefs Preferences

	phase      Phase
	notice     Notice
	noticeText string

	// joinError is the last rejected join/create message, shown on the
	// sign-in form until the next attempt.
	joinError string

	stats protocol.ServerStats

	// timer is the remaining turn time in seconds, valid in timed mode.
	timer      float64
	timerKnown bool

	// fragment is the room context of the pending or confirmed join,
	// rewritten on success so a share link restores the same room.
	pending  protocol.RoomFragment
	fragment protocol.RoomFragment
}

// NewController creates a signed-out controller with default preferences.
func NewController(cmd Commander) *Controller {
	return &Controller{
		cmd:   cmd,
		prefs: DefaultPreferences(),
	}
}

// Phase returns the current session phase.
func (c *Controller) Phase() Phase { return c.phase }

// Preferences returns the viewer's current local preferences.
func (c *Controller) Preferences() Preferences { return c.prefs }

// Snapshot returns the last authoritative snapshot, or nil.
func (c *Controller) Snapshot() *game.Snapshot { return c.store.Current() }

// Notice returns the active blocking overlay and its text.
func (c *Controller) Notice() (Notice, string) { return c.notice, c.noticeText }

// JoinError returns the last rejected join/create message.
func (c *Controller) JoinError() string { return c.joinError }

// Stats returns the latest server population stats.
func (c *Controller) Stats() protocol.ServerStats { return c.stats }

// Timer returns the remaining turn seconds and whether a value is known.
func (c *Controller) Timer() (float64, bool) { return c.timer, c.timerKnown }

// Fragment returns the confirmed room context for share links.
func (c *Controller) Fragment() protocol.RoomFragment { return c.fragment }

// Apply feeds one inbound event through the state machine. It must run to
// completion before the next event is applied; the transport guarantees
// serial delivery.
func (c *Controller) Apply(evt protocol.Event) Result {
	switch e := evt.(type) {
	case protocol.ServerStats:
		c.stats = e
		return Result{}

	case protocol.JoinResponse:
		return c.applyJoin(e.Success, e.Msg)

	case protocol.CreateResponse:
		return c.applyJoin(e.Success, e.Msg)

	case protocol.LeaveResponse:
		if !e.Success {
			return Result{}
		}
		c.phase = PhaseSignedOut
		c.store.Clear()
		c.timerKnown = false
		return Result{Wipe: true, PhaseChanged: true}

	case protocol.NewGameResponse:
		if !e.Success {
			return Result{}
		}
		// The rebuilt board arrives in the next gameState push.
		return Result{Wipe: true}

	case protocol.SwitchRoleResponse:
		if !e.Success {
			return Result{}
		}
		changed := c.prefs.Role != e.Role
		c.prefs.Role = e.Role
		if !changed {
			return Result{}
		}
		// Visibility semantics changed: any cached tile state is stale.
		return Result{Plan: c.render(), Wipe: true}

	case protocol.TimerUpdate:
		c.timer = e.Timer
		c.timerKnown = true
		return Result{}

	case protocol.AfkWarning:
		c.notice = NoticeAfkWarning
		c.noticeText = ""
		return Result{}

	case protocol.AfkKicked:
		c.notice = NoticeKicked
		c.noticeText = kickedText
		return Result{}

	case protocol.ServerMessage:
		c.notice = NoticeServer
		c.noticeText = e.Msg
		return Result{}

	case protocol.GameState:
		return c.applySnapshot(e.Snapshot)
	}
	return Result{}
}

func (c *Controller) applyJoin(success bool, msg string) Result {
	if !success {
		// Failure leaves the prior state untouched.
		c.joinError = msg
		return Result{}
	}
	c.joinError = ""
	// Entering a room is proof of presence, so a pending warning from a
	// previous room is void.
	if c.notice == NoticeAfkWarning {
		c.notice = NoticeNone
		c.noticeText = ""
	}
	c.fragment = c.pending
	changed := c.phase != PhaseInRoom
	c.phase = PhaseInRoom
	return Result{PhaseChanged: changed}
}

func (c *Controller) applySnapshot(snap game.Snapshot) Result {
	wipe := false
	if snap.Difficulty != c.prefs.Difficulty {
		c.prefs.Difficulty = snap.Difficulty
		wipe = true
	}
	c.prefs.Mode = snap.Mode
	c.prefs.Consensus = snap.Consensus

	c.store.Replace(&snap)
	return Result{Plan: c.render(), Wipe: wipe}
}

// render builds a complete plan from the current snapshot. Rendering is
// always total; there is deliberately no incremental path.
func (c *Controller) render() *RenderPlan {
	s := c.store.Current()
	if s == nil {
		return nil
	}
	vb := view.Project(s.Game.Board, c.prefs.Role, s.Game.Over)
	return &RenderPlan{
		Board:  view.RenderBoard(vb, s.Proposals(), c.prefs.Difficulty, c.prefs.Role, s.Game.Over),
		Info:   view.ReconcileInfo(s, s.Team, c.prefs.Role),
		Log:    view.RenderLog(s.Game.Log),
		Roster: view.BuildRoster(s.Players),
	}
}

// Render rebuilds the plan from current state, for redraws that are not
// driven by an event (terminal resize).
func (c *Controller) Render() *RenderPlan { return c.render() }

// Intent methods: each translates a discrete user action into exactly one
// outbound command. None of them mutate local state; confirmation comes
// back as an event.

// Join asks to enter an existing room.
func (c *Controller) Join(nickname, room, password string) error {
	c.pending = protocol.RoomFragment{Room: room, Password: password}
	return c.cmd.Send(protocol.JoinRoom{Nickname: nickname, Room: room, Password: password})
}

// Create asks to create and enter a new room.
func (c *Controller) Create(nickname, room, password string) error {
	c.pending = protocol.RoomFragment{Room: room, Password: password}
	return c.cmd.Send(protocol.CreateRoom{Nickname: nickname, Room: room, Password: password})
}

// Leave exits the current room.
func (c *Controller) Leave() error { return c.cmd.Send(protocol.LeaveRoom{}) }

// JoinTeam moves the viewer onto a team.
func (c *Controller) JoinTeam(t game.Team) error {
	return c.cmd.Send(protocol.JoinTeam{Team: t})
}

// RandomizeTeams shuffles everyone onto teams.
func (c *Controller) RandomizeTeams() error { return c.cmd.Send(protocol.RandomizeTeams{}) }

// NewGame requests a fresh board.
func (c *Controller) NewGame() error { return c.cmd.Send(protocol.NewGame{}) }

// DeclareClue submits a clue.
func (c *Controller) DeclareClue(word string, count game.ClueCount) error {
	return c.cmd.Send(protocol.DeclareClue{Word: word, Count: count})
}

// SwitchRole requests a role change; the role only changes locally once
// the server confirms.
func (c *Controller) SwitchRole(r game.Role) error {
	return c.cmd.Send(protocol.SwitchRole{Role: r})
}

// SwitchDifficulty requests a room difficulty change.
func (c *Controller) SwitchDifficulty(d game.Difficulty) error {
	return c.cmd.Send(protocol.SwitchDifficulty{Difficulty: d})
}

// SwitchMode requests a casual/timed mode change.
func (c *Controller) SwitchMode(m game.Mode) error {
	return c.cmd.Send(protocol.SwitchMode{Mode: m})
}

// SwitchConsensus requests a guess-resolution rule change.
func (c *Controller) SwitchConsensus(cs game.Consensus) error {
	return c.cmd.Send(protocol.SwitchConsensus{Consensus: cs})
}

// EndTurn ends the viewer team's turn.
func (c *Controller) EndTurn() error { return c.cmd.Send(protocol.EndTurn{}) }

// ClickTile selects the tile at row i, column j.
func (c *Controller) ClickTile(i, j int) error {
	return c.cmd.Send(protocol.ClickTile{I: i, J: j})
}

// ChangeCards toggles a word pack.
func (c *Controller) ChangeCards(p game.Pack) error {
	return c.cmd.Send(protocol.ChangeCards{Pack: p})
}

// SetTimerSlider sets the timer length in minutes.
func (c *Controller) SetTimerSlider(minutes int) error {
	return c.cmd.Send(protocol.TimerSlider{Value: minutes})
}

// ConfirmActive answers an AFK warning and clears the overlay. The server
// is the sole timekeeper; the client never times out on its own.
func (c *Controller) ConfirmActive() error {
	if c.notice == NoticeAfkWarning {
		c.notice = NoticeNone
		c.noticeText = ""
	}
	return c.cmd.Send(protocol.Active{})
}

// AcknowledgeNotice dismisses a kicked or informational notice.
func (c *Controller) AcknowledgeNotice() {
	if c.notice == NoticeKicked || c.notice == NoticeServer {
		c.notice = NoticeNone
		c.noticeText = ""
	}
}
