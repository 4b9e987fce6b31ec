package constant

import "time"

// Sound Cues
const (
	// SoundSampleRate is the speaker rate in Hz
	SoundSampleRate = 44100

	// SoundBufferDuration is the speaker buffer, also its latency
	SoundBufferDuration = 100 * time.Millisecond

	// EatToneFreq, EatToneDuration: short rising chirp when food is eaten
	EatToneFreq     = 880.0
	EatToneDuration = 60 * time.Millisecond

	// DeathToneFreq, DeathToneDuration: low buzz on collision
	DeathToneFreq     = 110.0
	DeathToneDuration = 400 * time.Millisecond

	// SoundVolume is a linear gain applied to every cue
	SoundVolume = 0.3
)
