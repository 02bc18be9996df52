// Package config provides YAML-based configuration loading for riipai.
package config

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/riipai/internal/gesture"
	"github.com/vovakirdan/riipai/internal/tiles"
)

// Config is the full riipai configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Input   InputConfig   `yaml:"input"`
	History HistoryConfig `yaml:"history"`
	Clock   ClockConfig   `yaml:"clock"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GameConfig controls dealing.
type GameConfig struct {
	HandSize int   `yaml:"hand_size"`
	Seed     int64 `yaml:"seed"` // 0 = random based on time
}

// InputConfig selects how tiles are moved.
type InputConfig struct {
	Modality string `yaml:"modality"` // auto, drag, tap
	Mouse    bool   `yaml:"mouse"`    // enable pointer events
}

// HistoryConfig controls where results are kept and how many.
type HistoryConfig struct {
	Key        string `yaml:"key"`
	MaxResults int    `yaml:"max_results"`
}

// ClockConfig sets the timer display refresh.
type ClockConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// StorageConfig locates the results database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig controls the log level and destination.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// SSHConfig configures `riipai serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// TickInterval returns the timer refresh interval.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.Clock.TickMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Game.HandSize < tiles.MinHandSize || c.Game.HandSize > tiles.DeckSize {
		return fmt.Errorf("config: game.hand_size must be between %d and %d, got %d", tiles.MinHandSize, tiles.DeckSize, c.Game.HandSize)
	}
	if _, err := gesture.ParseModality(c.Input.Modality); err != nil {
		return fmt.Errorf("config: input.modality: %w", err)
	}
	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("config: log.level: %w", err)
		}
	}
	if c.History.Key == "" {
		return fmt.Errorf("config: history.key must not be empty")
	}
	if c.History.MaxResults < 1 {
		return fmt.Errorf("config: history.max_results must be positive, got %d", c.History.MaxResults)
	}
	if c.Clock.TickMS < 10 {
		return fmt.Errorf("config: clock.tick_ms must be at least 10, got %d", c.Clock.TickMS)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh.idle_timeout_minutes must not be negative")
	}
	return nil
}
