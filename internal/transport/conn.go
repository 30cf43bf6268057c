// Package transport owns the websocket connection to the game server. It
// frames outbound commands, decodes inbound events, and delivers them on a
// buffered channel so the UI loop reads them one at a time. The connection
// is created once per session and torn down when the session ends.
package transport

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/avoronov/codenames-tui/internal/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings with this period (must be less than pongWait).
	pingPeriod = (pongWait * 9) / 10

	// Maximum inbound message size. Snapshots with a full board and log
	// stay well under this.
	maxMessageSize = 1 << 16

	sendBufferSize  = 64
	eventBufferSize = 64
)

// ErrClosed is returned by Send after the connection has shut down.
var ErrClosed = errors.New("transport: connection closed")

// Conn is a live client connection. It satisfies session.Commander.
type Conn struct {
	ws     *websocket.Conn
	logger *log.Logger

	events chan protocol.Event
	send   chan []byte

	done     chan struct{}
	doneOnce sync.Once
}

// Dial connects to the server and starts the read and write pumps.
// sessionID, when non-empty, is passed so the server can resume the
// viewer's previous identity.
func Dial(ctx context.Context, serverURL, sessionID string, logger *log.Logger) (*Conn, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("transport: bad server url %q: %w", serverURL, err)
	}
	if sessionID != "" {
		q := u.Query()
		q.Set("sessionId", sessionID)
		u.RawQuery = q.Encode()
	}

	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", u.Host, err)
	}

	c := &Conn{
		ws:     ws,
		logger: logger,
		events: make(chan protocol.Event, eventBufferSize),
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}

	go c.readPump()
	go c.writePump()
	return c, nil
}

// Events returns the inbound event channel. It closes when the connection
// ends, which is the UI's signal that the session is over.
func (c *Conn) Events() <-chan protocol.Event {
	return c.events
}

// Send frames and queues a command. Commands are never dropped; if the
// buffer is full the caller blocks briefly, and ErrClosed is returned once
// the connection has shut down.
func (c *Conn) Send(cmd protocol.Command) error {
	data, err := protocol.EncodeCommand(cmd)
	if err != nil {
		return fmt.Errorf("transport: encode %s: %w", cmd.Name(), err)
	}
	select {
	case <-c.done:
		return ErrClosed
	default:
	}
	select {
	case <-c.done:
		return ErrClosed
	case c.send <- data:
		return nil
	}
}

// Close tears down the connection. Safe to call multiple times.
func (c *Conn) Close() error {
	c.doneOnce.Do(func() {
		close(c.done)
	})
	return c.ws.Close()
}

// deliver hands an event to the UI. If the buffer is full the oldest event
// is dropped: every snapshot fully supersedes the last, so skipping one
// only costs transient staleness, never corruption.
func (c *Conn) deliver(evt protocol.Event) {
	select {
	case c.events <- evt:
		return
	default:
	}
	select {
	case old := <-c.events:
		c.logger.Warn("event buffer full, dropping oldest", "dropped", fmt.Sprintf("%T", old))
	default:
	}
	select {
	case c.events <- evt:
	default:
	}
}

func (c *Conn) readPump() {
	defer func() {
		c.Close()
		close(c.events)
	}()

	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.logger.Debug("read error", "error", err)
			}
			return
		}

		evt, err := protocol.DecodeEvent(data)
		if err != nil {
			// Unknown or malformed events are logged and skipped; the
			// next snapshot restores any missed state.
			c.logger.Warn("undecodable event", "error", err)
			continue
		}
		c.deliver(evt)
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case <-c.done:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			c.ws.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case data := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Debug("write error", "error", err)
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
