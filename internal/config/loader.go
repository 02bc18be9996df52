package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "RIIPAI_"

// Load reads the configuration and applies environment overrides.
// Search order: customPath -> ~/.riipai/config.yaml -> ./configs/riipai.yaml -> embedded default.
// Files are decoded over Default(), so a partial file only changes the keys it sets.
func Load(customPath string) (Config, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg, os.LookupEnv)
	return cfg, nil
}

func loadFile(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := decode(data); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "riipai.yaml")); err == nil {
		if parsed, ok := decode(data); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := decode(defaultYAML); ok {
		return parsed, nil
	}
	return Default(), nil // Fallback to hardcoded if embed fails
}

func decode(data []byte) (Config, bool) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".riipai", filename)
}

// applyEnv overrides config values from RIIPAI_* variables. Unparsable
// numbers are ignored.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) {
	str := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}
	num := func(name string, dst *int) {
		if v, ok := lookup(EnvPrefix + name); ok {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}

	num("HAND_SIZE", &cfg.Game.HandSize)
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = n
		}
	}
	str("INPUT", &cfg.Input.Modality)
	if v, ok := lookup(EnvPrefix + "MOUSE"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Input.Mouse = b
		}
	}
	str("HISTORY_KEY", &cfg.History.Key)
	num("MAX_RESULTS", &cfg.History.MaxResults)
	num("TICK_MS", &cfg.Clock.TickMS)
	str("DB", &cfg.Storage.DBPath)
	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FILE", &cfg.Log.File)
	str("SSH_ADDR", &cfg.SSH.Address)
	str("HOST_KEY", &cfg.SSH.HostKey)
	num("IDLE_TIMEOUT", &cfg.SSH.IdleTimeoutMinutes)
}
