package parameter

import "time"

// Audio cue timings and pitches
const (
	CueSampleRate = 44100

	CueBufferDuration = 100 * time.Millisecond

	CueBlockedDuration = 150 * time.Millisecond
	CueBlockedFreq     = 120.0

	CueArrivedDuration = 80 * time.Millisecond
	CueArrivedFreq     = 880.0

	CueFinishedDuration = 120 * time.Millisecond
	CueFinishedLowFreq  = 660.0
	CueFinishedHighFreq = 990.0

	// CueVolume scales synthesized tones before mixing
	CueVolume = 0.25
)
