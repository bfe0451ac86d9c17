package parameter

import "time"

// Audio defaults
const (
	AudioSampleRate   = 44100
	AudioBufferMillis = 100
	AudioVolume       = 0.6
)

// Sound shapes
const (
	RollSoundDuration   = 180 * time.Millisecond
	BounceSoundDuration = 60 * time.Millisecond
	SettleSoundDuration = 260 * time.Millisecond

	BounceBaseFreq = 90.0
	BounceFreqGain = 400.0 // added per unit impact speed
	SettleFreqLow  = 660.0
	SettleFreqHigh = 990.0

	// BounceSilentSpeed is the impact speed below which bounces make no sound
	BounceSilentSpeed = 0.012
)
