package config

import (
	_ "embed"
)

//go:embed defaults/client.yaml
var defaultClientYAML []byte

// DefaultClientConfig returns the hardcoded fallback configuration, used
// only if the embedded default fails to parse.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Server: ServerConfig{
			URL: "ws://localhost:8080/ws",
		},
		UI: UIConfig{
			ShowRoster: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.codenames/client.db",
		},
	}
}
