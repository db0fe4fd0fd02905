// Package audio plays short synthesized cues through the beep speaker.
// Every operation is safe without an audio device; playback is then skipped.
package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fps-proto/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager owns the speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager with the given linear volume in [0, 1]
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the speaker; calling it again is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the audio device; Initialize may be called again
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// IsRunning reports whether the speaker is initialized
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayJump queues the rising jump chirp; returns false when audio is not running
func (sm *SoundManager) PlayJump() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(sm.withVolume(NewJumpChirp()))
	speaker.Unlock()
	return true
}

// NewJumpChirp builds the jump cue at full amplitude
func NewJumpChirp() *ChirpGenerator {
	return NewChirpGenerator(sampleRate, parameter.JumpChirpStartHz, parameter.JumpChirpEndHz, parameter.JumpChirpDuration, 1.0)
}

// withVolume maps linear volume onto beep's exponential gain
func (sm *SoundManager) withVolume(s beep.Streamer) beep.Streamer {
	if sm.volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(sm.volume, 1e-6)),
		Silent:   sm.volume <= 0,
	}
}
