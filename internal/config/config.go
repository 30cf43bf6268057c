// Package config provides YAML-based client configuration loading for the
// codenames terminal client.
package config

import "fmt"

// ClientConfig contains all configuration for the client.
type ClientConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Player  PlayerConfig  `yaml:"player"`
	UI      UIConfig      `yaml:"ui"`
	Storage StorageConfig `yaml:"storage"`
}

// ServerConfig tells the client where the game server lives.
type ServerConfig struct {
	// URL is the websocket endpoint, e.g. "wss://play.example.com/ws".
	URL string `yaml:"url"`
}

// PlayerConfig pre-fills the sign-in form.
type PlayerConfig struct {
	Nickname string `yaml:"nickname"`
}

// UIConfig holds display options.
type UIConfig struct {
	// ShowRoster toggles the player-list sidebar.
	ShowRoster bool `yaml:"show_roster"`
	// LogLines caps how many log lines are shown; 0 means all.
	LogLines int `yaml:"log_lines"`
}

// StorageConfig locates the local bookmark database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// Validate checks the fields the client cannot run without.
func (c *ClientConfig) Validate() error {
	if c.Server.URL == "" {
		return fmt.Errorf("config: server.url is required")
	}
	if c.UI.LogLines < 0 {
		return fmt.Errorf("config: ui.log_lines must not be negative")
	}
	return nil
}
