package core

import "time"

// RuntimeConfig is what the host knows before the first frame: the terminal
// size, the tick rate and the autopilot seed.
type RuntimeConfig struct {
	ScreenW  int   // Terminal columns
	ScreenH  int   // Terminal rows
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 picks a time-based seed
}

// DefaultConfig returns an 80x24 terminal ticking at 60 Hz.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// FrameInterval returns the delay between two ticks.
// A non-positive rate falls back to the default rate.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}
