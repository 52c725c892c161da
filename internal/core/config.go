package core

// RuntimeConfig contains configuration passed to demos at initialization.
// Demos use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic behavior
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

// DT returns the duration of one tick in seconds.
func (c RuntimeConfig) DT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// DemoState represents the current state of a demo.
// Returned by Demo.State() to communicate status to the platform.
type DemoState struct {
	Bounces   int  // Bounces resolved so far
	Anomalies int  // Degenerate collision checks seen so far
	Ticks     int  // Simulation ticks since the last reset
	Paused    bool // Whether the demo is paused
}

// StepResult is returned by Demo.Step() after each simulation tick.
type StepResult struct {
	State DemoState
}
