// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/battlefield/parameter"
)

// SoundManager mixes cue streamers into the speaker
// Every Play call before Initialize, or after Cleanup, is a no-op
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.CueBufferDuration)); err != nil {
		return err
	}

	sm.ctrl = &beep.Ctrl{Streamer: sm.mixer}
	speaker.Play(sm.ctrl)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer and drops pending cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.ctrl.Paused = true
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no speaker Close, a paused Ctrl keeps the device quiet
	sm.initialized = false
}

// Initialized reports whether cues reach the speaker
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayBlocked plays the blocked buzz
func (sm *SoundManager) PlayBlocked() {
	sm.play(BlockedCue(), nil)
}

// PlayArrived plays the arrival chime
func (sm *SoundManager) PlayArrived() {
	sm.play(ArrivedCue())
}

// PlayFinished plays the end-of-run chime
func (sm *SoundManager) PlayFinished() {
	sm.play(FinishedCue())
}

func (sm *SoundManager) play(s beep.Streamer, err error) {
	if err != nil {
		log.Printf("[Audio] cue unavailable: %v", err)
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
