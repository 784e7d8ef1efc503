// Package config provides YAML-based configuration loading for 2048.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/t2048"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Server  ServerConfig  `yaml:"server"`
	Log     LogConfig     `yaml:"log"`
}

// GameConfig defines the rules of a game.
type GameConfig struct {
	WinTile       int     `yaml:"win_tile"`
	SpawnFourProb float64 `yaml:"spawn_four_prob"` // Chance a spawned tile is a 4
	StartTiles    int     `yaml:"start_tiles"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address          string        `yaml:"address"`
	HostKeyPath      string        `yaml:"host_key_path"`
	IdleTimeout      time.Duration `yaml:"idle_timeout"`
	MaxSessionsPerIP int           `yaml:"max_sessions_per_ip"` // 0 disables the limit
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Interactive play logs here; empty means warnings only
}

// Validate checks the values a game depends on.
func (c Config) Validate() error {
	if c.Game.WinTile < 8 || c.Game.WinTile&(c.Game.WinTile-1) != 0 {
		return fmt.Errorf("%w: game.win_tile %d is not a power of two >= 8", ErrInvalid, c.Game.WinTile)
	}
	if c.Game.SpawnFourProb < 0 || c.Game.SpawnFourProb > 1 {
		return fmt.Errorf("%w: game.spawn_four_prob %v is outside [0, 1]", ErrInvalid, c.Game.SpawnFourProb)
	}
	if c.Game.StartTiles < 1 || c.Game.StartTiles > t2048.BoardSize*t2048.BoardSize {
		return fmt.Errorf("%w: game.start_tiles %d is outside [1, %d]", ErrInvalid, c.Game.StartTiles, t2048.BoardSize*t2048.BoardSize)
	}
	if c.Server.MaxSessionsPerIP < 0 {
		return fmt.Errorf("%w: server.max_sessions_per_ip must not be negative", ErrInvalid)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
		}
	}
	return nil
}

// Settings converts the game section into engine settings.
func (c Config) Settings(seed int64) t2048.Settings {
	return t2048.Settings{
		WinTile:    c.Game.WinTile,
		Spawn4Prob: c.Game.SpawnFourProb,
		StartTiles: c.Game.StartTiles,
		Seed:       seed,
	}
}

// LogLevel returns the configured level, defaulting to info.
func (c Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
