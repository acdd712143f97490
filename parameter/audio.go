package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Grow Sound
const (
	GrowSoundDuration  = 60 * time.Millisecond
	GrowSoundFrequency = 880.0
)

// Game Over Sound
const (
	GameOverSoundDuration = 400 * time.Millisecond
)
