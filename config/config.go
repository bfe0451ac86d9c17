// Package config assembles runtime settings from defaults, an optional TOML
// tuning file and DICE_ environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/dice-roller/audio"
	"github.com/lixenwraith/dice-roller/parameter"
	"github.com/lixenwraith/dice-roller/physics"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "DICE_"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Color modes accepted by Display.ColorMode
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Display controls the frontend
type Display struct {
	FrameRate int    `toml:"frame_rate" env:"FRAME_RATE"`
	ColorMode string `toml:"color_mode" env:"COLOR_MODE"`
	Debug     bool   `toml:"debug" env:"DEBUG"`
}

// History controls the result log
type History struct {
	Size int    `toml:"size" env:"SIZE"`
	DB   string `toml:"db" env:"DB"` // SQLite path; empty keeps history in memory
}

// Config is the complete runtime configuration
type Config struct {
	Physics physics.Config `toml:"physics" envPrefix:"PHYSICS_"`
	Display Display        `toml:"display" envPrefix:"DISPLAY_"`
	Audio   audio.Config   `toml:"audio" envPrefix:"AUDIO_"`
	History History        `toml:"history" envPrefix:"HISTORY_"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Physics: physics.DefaultConfig(),
		Display: Display{
			FrameRate: parameter.StepRate,
			ColorMode: ColorAuto,
		},
		Audio: audio.DefaultConfig(),
		History: History{
			Size: parameter.HistorySize,
		},
	}
}

// Load builds a validated config: defaults, then the TOML file at path (skipped when
// empty), then environment overrides
func Load(path string) (Config, error) {
	return load(path, nil)
}

// load takes an explicit environment; nil reads the process environment
func load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open tuning file: %w", err)
		}
		err = cfg.DecodeTOML(f)
		f.Close()
		if err != nil {
			return Config{}, err
		}
	}

	if err := cfg.ApplyEnv(environ); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DecodeTOML overlays values from r; unknown keys are rejected
func (c *Config) DecodeTOML(r io.Reader) error {
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(c); err != nil {
		return fmt.Errorf("decode tuning file: %w", err)
	}
	return nil
}

// EncodeTOML writes c as a tuning file
func (c Config) EncodeTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode tuning file: %w", err)
	}
	return buf.Bytes(), nil
}

// ApplyEnv overlays DICE_ variables; nil environ reads the process environment
func (c *Config) ApplyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// TickInterval converts the frame rate into the scheduler interval
func (c Config) TickInterval() time.Duration {
	if c.Display.FrameRate < 1 {
		return parameter.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.Display.FrameRate)
}

// Validate checks every section
func (c Config) Validate() error {
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("%w: physics: %w", ErrInvalidConfig, err)
	}
	if err := c.Audio.Validate(); err != nil {
		return fmt.Errorf("%w: audio: %w", ErrInvalidConfig, err)
	}
	if c.Display.FrameRate < 1 || c.Display.FrameRate > 240 {
		return fmt.Errorf("%w: frame rate %d outside [1,240]", ErrInvalidConfig, c.Display.FrameRate)
	}
	switch c.Display.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("%w: unknown color mode %q", ErrInvalidConfig, c.Display.ColorMode)
	}
	if c.History.Size < 1 {
		return fmt.Errorf("%w: history size %d must be at least 1", ErrInvalidConfig, c.History.Size)
	}
	return nil
}
