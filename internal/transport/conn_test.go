package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/avoronov/codenames-tui/internal/protocol"
)

var upgrader = websocket.Upgrader{}

// testServer runs handler for one websocket connection and returns the
// ws:// URL to dial.
func testServer(t *testing.T, handler func(*websocket.Conn, *http.Request)) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer ws.Close()
		handler(ws, r)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestDialSendsSessionID(t *testing.T) {
	got := make(chan string, 1)
	url := testServer(t, func(ws *websocket.Conn, r *http.Request) {
		got <- r.URL.Query().Get("sessionId")
	})

	conn, err := Dial(context.Background(), url, "session-123", testLogger())
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	select {
	case id := <-got:
		if id != "session-123" {
			t.Errorf("sessionId = %q, expected session-123", id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never saw the connection")
	}
}

func TestEventsDeliveredAndDecoded(t *testing.T) {
	url := testServer(t, func(ws *websocket.Conn, _ *http.Request) {
		frame := `{"event":"serverStats","payload":{"players":4,"rooms":1}}`
		if err := ws.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
			return
		}
		// Keep the connection open until the client hangs up.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	})

	conn, err := Dial(context.Background(), url, "", testLogger())
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	select {
	case evt := <-conn.Events():
		stats, ok := evt.(protocol.ServerStats)
		if !ok {
			t.Fatalf("received %T, expected ServerStats", evt)
		}
		if stats.Players != 4 || stats.Rooms != 1 {
			t.Errorf("stats = %+v", stats)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event arrived")
	}
}

func TestSendFramesCommand(t *testing.T) {
	frames := make(chan []byte, 1)
	url := testServer(t, func(ws *websocket.Conn, _ *http.Request) {
		_, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		frames <- data
	})

	conn, err := Dial(context.Background(), url, "", testLogger())
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	if err := conn.Send(protocol.EndTurn{}); err != nil {
		t.Fatalf("Send() failed: %v", err)
	}

	select {
	case data := <-frames:
		var env struct {
			Event string `json:"event"`
		}
		if err := json.Unmarshal(data, &env); err != nil {
			t.Fatalf("frame is not JSON: %v", err)
		}
		if env.Event != "endTurn" {
			t.Errorf("event = %q, expected endTurn", env.Event)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the command")
	}
}

func TestEventsCloseOnDisconnect(t *testing.T) {
	url := testServer(t, func(ws *websocket.Conn, _ *http.Request) {
		// Close immediately; the client should observe a shutdown.
	})

	conn, err := Dial(context.Background(), url, "", testLogger())
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	select {
	case _, open := <-conn.Events():
		if open {
			t.Error("received an event from a closed connection")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event channel never closed")
	}
}

func TestSendAfterClose(t *testing.T) {
	url := testServer(t, func(ws *websocket.Conn, _ *http.Request) {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	})

	conn, err := Dial(context.Background(), url, "", testLogger())
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	conn.Close()

	if err := conn.Send(protocol.EndTurn{}); err != ErrClosed {
		t.Errorf("Send() after close = %v, expected ErrClosed", err)
	}
}

func TestDialBadURL(t *testing.T) {
	if _, err := Dial(context.Background(), "://not-a-url", "", testLogger()); err == nil {
		t.Error("expected an error for a malformed URL")
	}
}
