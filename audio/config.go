package audio

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/dice-roller/parameter"
)

// ErrInvalidConfig is returned by Validate for unusable audio settings
var ErrInvalidConfig = errors.New("invalid audio config")

// Config controls sound output; env tags are relative to the caller's prefix
type Config struct {
	Enabled      bool    `toml:"enabled" env:"ENABLED"`
	Volume       float64 `toml:"volume" env:"VOLUME"` // 0.0-1.0
	SampleRate   int     `toml:"sample_rate" env:"SAMPLE_RATE"`
	BufferMillis int     `toml:"buffer_ms" env:"BUFFER_MS"`
}

// DefaultConfig returns muted audio with stock output settings
func DefaultConfig() Config {
	return Config{
		Enabled:      false,
		Volume:       parameter.AudioVolume,
		SampleRate:   parameter.AudioSampleRate,
		BufferMillis: parameter.AudioBufferMillis,
	}
}

// Validate rejects settings the speaker cannot be opened with
func (c Config) Validate() error {
	switch {
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalidConfig, c.Volume)
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidConfig, c.SampleRate)
	case c.BufferMillis <= 0:
		return fmt.Errorf("%w: buffer %dms must be positive", ErrInvalidConfig, c.BufferMillis)
	}
	return nil
}
