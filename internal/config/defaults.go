package config

import (
	_ "embed"

	"github.com/vovakirdan/riipai/internal/history"
	"github.com/vovakirdan/riipai/internal/tiles"
)

//go:embed defaults/riipai.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded default configuration.
func Default() Config {
	return Config{
		Game: GameConfig{
			HandSize: tiles.DefaultHandSize,
		},
		Input: InputConfig{
			Modality: "auto",
			Mouse:    true,
		},
		History: HistoryConfig{
			Key:        history.DefaultKey,
			MaxResults: history.DefaultMaxResults,
		},
		Clock: ClockConfig{
			TickMS: 100,
		},
		Storage: StorageConfig{
			DBPath: "~/.riipai/riipai.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.riipai/riipai.log",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
