package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			WinTile:       t2048.DefaultWinTile,
			SpawnFourProb: 0.10,
			StartTiles:    2,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/t2048.db",
		},
		Server: ServerConfig{
			Address:          ":23234",
			HostKeyPath:      ".ssh/t2048_ed25519",
			IdleTimeout:      30 * time.Minute,
			MaxSessionsPerIP: 2,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
