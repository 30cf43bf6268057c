// codenames is a terminal client for a networked codenames-style word
// game. It renders the shared room state pushed by the game server and
// never computes game outcomes locally.
//
// Usage:
//
//	codenames play               - Connect and play in the terminal
//	codenames rooms              - List bookmarked and recently visited rooms
//	codenames serve              - Start an SSH kiosk for remote play
//	codenames version            - Print version information
//
// Global flags:
//
//	--server <url>  - Game server websocket URL
//	--config <path> - Custom config file
//	--db <path>     - Local bookmark database path
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoronov/codenames-tui/internal/config"
)

var (
	// Global flags
	flagServer string
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "codenames",
	Short: "Codenames - play the word game in your terminal",
	Long: `Codenames is a terminal client for a networked codenames-style
word game. All game state lives on the server; the client renders it
and sends your actions.

Available commands:
  play     - Connect to the server and play
  rooms    - Show bookmarked and recently visited rooms
  serve    - Start an SSH kiosk for remote play
  version  - Print version information

Examples:
  codenames play
  codenames play --room "room=friends&password=hunter2"
  codenames play --last
  codenames rooms
  codenames serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "Game server websocket URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to bookmark database (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(roomsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the effective config from file plus flag overrides.
func loadConfig() (config.ClientConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagServer != "" {
		cfg.Server.URL = flagServer
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
