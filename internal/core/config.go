package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to size its layout and to seed its RNG.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Seconds converts a duration in seconds to a whole number of ticks.
// Always returns at least one tick for positive durations.
func (c RuntimeConfig) Seconds(s float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	ticks := int(s*float64(rate) + 0.5)
	if ticks < 1 && s > 0 {
		ticks = 1
	}
	return ticks
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}
