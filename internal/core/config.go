package core

import "time"

// RuntimeConfig contains the settings a play session starts with.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Timer display refresh
	HandSize     int           // Tiles per deal
	Seed         int64         // RNG seed, 0 = seeded from the clock
	Input        string        // auto, drag or tap
	Mouse        bool          // whether pointer events are enabled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 100 * time.Millisecond,
		HandSize:     13,
		Seed:         0, // 0 means use current time in platform layer
		Input:        "auto",
		Mouse:        true,
	}
}
