package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/battlefield/parameter"
)

const sampleRate = beep.SampleRate(parameter.CueSampleRate)

// CueSamples returns the fixed sample count of a cue lasting d
func CueSamples(d time.Duration) int {
	return sampleRate.N(d)
}

// BlockedCue is a short low buzz played when a unit finds its next step taken
func BlockedCue() beep.Streamer {
	return beep.Take(CueSamples(parameter.CueBlockedDuration), NewBuzzGenerator(sampleRate, parameter.CueBlockedFreq))
}

// ArrivedCue is a single sine chime played when a unit reaches its target
func ArrivedCue() (beep.Streamer, error) {
	return tone(parameter.CueArrivedFreq, parameter.CueArrivedDuration)
}

// FinishedCue is a rising two-tone chime played when a run ends
func FinishedCue() (beep.Streamer, error) {
	low, err := tone(parameter.CueFinishedLowFreq, parameter.CueFinishedDuration)
	if err != nil {
		return nil, err
	}
	high, err := tone(parameter.CueFinishedHighFreq, parameter.CueFinishedDuration)
	if err != nil {
		return nil, err
	}
	return beep.Seq(low, high), nil
}

// tone builds a fixed-length, volume-scaled sine
func tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Gain{
		Streamer: beep.Take(CueSamples(d), sine),
		Gain:     parameter.CueVolume - 1,
	}, nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus two harmonics
		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// 20ms fade in
		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * parameter.CueVolume

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
