package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronov/codenames-tui/internal/platform/tui"
	"github.com/avoronov/codenames-tui/internal/protocol"
	"github.com/avoronov/codenames-tui/internal/session"
	"github.com/avoronov/codenames-tui/internal/storage"
	"github.com/avoronov/codenames-tui/internal/transport"
)

var (
	flagNickname string
	flagRoom     string
	flagLast     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Connect to the server and play",
	Long: `Connect to the game server and open the client.

The sign-in form asks for a nickname, room, and password. A share link
fragment can prefill the room fields, and --last restores the most
recently joined room from the local bookmark database.

Examples:
  codenames play
  codenames play --nickname alice
  codenames play --room "room=friends&password=hunter2"
  codenames play --last`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagNickname, "nickname", "", "Nickname to prefill (overrides config)")
	playCmd.Flags().StringVar(&flagRoom, "room", "", "Share fragment to prefill, e.g. \"room=X&password=Y\"")
	playCmd.Flags().BoolVar(&flagLast, "last", false, "Prefill the most recently joined room")
}

func runPlay(_ *cobra.Command, _ []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "codenames play requires an interactive terminal")
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "codenames",
	})

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		// The client works without local persistence, just without
		// bookmarks or a stable identity.
		logger.Warn("could not open local database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	nickname := cfg.Player.Nickname
	if flagNickname != "" {
		nickname = flagNickname
	}

	fragment := protocol.ParseFragment(flagRoom)
	if flagLast && store != nil {
		if b, err := store.LastBookmark(); err == nil && b != nil {
			fragment = protocol.RoomFragment{Room: b.Room, Password: b.Password}
			if nickname == "" {
				nickname = b.Nickname
			}
		}
	}

	sessionID := ""
	if store != nil {
		if id, err := store.SessionID(); err == nil {
			sessionID = id
		} else {
			logger.Warn("could not load session id", "error", err)
		}
	}

	conn, err := transport.Dial(context.Background(), cfg.Server.URL, sessionID, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to %s: %v\n", cfg.Server.URL, err)
		os.Exit(1)
	}
	defer conn.Close()

	ctrl := session.NewController(conn)
	err = tui.Run(ctrl, conn.Events(), tui.Options{
		Nickname:   nickname,
		Fragment:   fragment,
		Store:      store,
		Logger:     logger,
		ShowRoster: cfg.UI.ShowRoster,
		LogLines:   cfg.UI.LogLines,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running client: %v\n", err)
		os.Exit(1)
	}
}
