package parameter

import "time"

// Simulation pacing
const (
	// TickDelay is the pause between rendered ticks
	TickDelay = 300 * time.Millisecond

	// MaxTicks of 0 runs until no unit moves
	MaxTicks = 0
)

// WatchDebounce suppresses repeated file events for the same path
const WatchDebounce = 100 * time.Millisecond
