package parameter

import "time"

// Audio
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// JumpChirpDuration is the length of the jump cue
	JumpChirpDuration = 90 * time.Millisecond

	JumpChirpStartHz = 320.0
	JumpChirpEndHz   = 720.0
	JumpChirpVolume  = 0.25
)
