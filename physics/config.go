package physics

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/dice-roller/parameter"
)

// ErrInvalidConfig is returned by Validate for non-physical tuning values
var ErrInvalidConfig = errors.New("invalid physics config")

// Range is a closed interval used for randomized spawn coordinates
type Range struct {
	Min float64 `toml:"min" env:"MIN"`
	Max float64 `toml:"max" env:"MAX"`
}

// Config holds the tuning constants of the dice simulation
// Values are per fixed step; see parameter.StepRate
type Config struct {
	HalfExtent float64 `toml:"half_extent" env:"HALF_EXTENT"`

	Gravity               float64 `toml:"gravity" env:"GRAVITY"`
	Restitution           float64 `toml:"restitution" env:"RESTITUTION"`
	HorizontalDamping     float64 `toml:"horizontal_damping" env:"HORIZONTAL_DAMPING"`
	AngularContactDamping float64 `toml:"angular_contact_damping" env:"ANGULAR_CONTACT_DAMPING"`
	AngularDamping        float64 `toml:"angular_damping" env:"ANGULAR_DAMPING"`
	SettleBounces         int     `toml:"settle_bounces" env:"SETTLE_BOUNCES"`
	SettleEpsilon         float64 `toml:"settle_epsilon" env:"SETTLE_EPSILON"`

	SpawnX     Range   `toml:"spawn_x" envPrefix:"SPAWN_X_"`
	SpawnY     Range   `toml:"spawn_y" envPrefix:"SPAWN_Y_"`
	SpawnZ     Range   `toml:"spawn_z" envPrefix:"SPAWN_Z_"`
	ThrowSpeed float64 `toml:"throw_speed" env:"THROW_SPEED"`
	SpinSpeed  float64 `toml:"spin_speed" env:"SPIN_SPEED"`

	TableBounds     bool    `toml:"table_bounds" env:"TABLE_BOUNDS"`
	TableHalfWidth  float64 `toml:"table_half_width" env:"TABLE_HALF_WIDTH"`
	TableHalfDepth  float64 `toml:"table_half_depth" env:"TABLE_HALF_DEPTH"`
	WallRestitution float64 `toml:"wall_restitution" env:"WALL_RESTITUTION"`

	IdleBaseY     float64 `toml:"idle_base_y" env:"IDLE_BASE_Y"`
	IdleAmplitude float64 `toml:"idle_amplitude" env:"IDLE_AMPLITUDE"`
	IdleTimeStep  float64 `toml:"idle_time_step" env:"IDLE_TIME_STEP"`
	IdleYawStep   float64 `toml:"idle_yaw_step" env:"IDLE_YAW_STEP"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		HalfExtent: parameter.DieHalfExtentFloat,

		Gravity:               parameter.GravityFloat,
		Restitution:           parameter.RestitutionFloat,
		HorizontalDamping:     parameter.HorizontalContactDampingFloat,
		AngularContactDamping: parameter.AngularContactDampingFloat,
		AngularDamping:        parameter.AngularDampingFloat,
		SettleBounces:         parameter.SettleBounces,
		SettleEpsilon:         parameter.SettleEpsilonFloat,

		SpawnX:     Range{parameter.SpawnXMinFloat, parameter.SpawnXMaxFloat},
		SpawnY:     Range{parameter.SpawnYMinFloat, parameter.SpawnYMaxFloat},
		SpawnZ:     Range{parameter.SpawnZMinFloat, parameter.SpawnZMaxFloat},
		ThrowSpeed: parameter.ThrowSpeedFloat,
		SpinSpeed:  parameter.SpinSpeedFloat,

		TableBounds:     true,
		TableHalfWidth:  parameter.TableHalfWidthFloat,
		TableHalfDepth:  parameter.TableHalfDepthFloat,
		WallRestitution: parameter.WallRestitutionFloat,

		IdleBaseY:     parameter.IdleBaseYFloat,
		IdleAmplitude: parameter.IdleAmplitudeFloat,
		IdleTimeStep:  parameter.IdleTimeStepFloat,
		IdleYawStep:   parameter.IdleYawStepFloat,
	}
}

// RestHeight is the die center height when resting on the table
func (c Config) RestHeight() float64 {
	return c.HalfExtent
}

// Validate rejects constants that break settling or produce non-physical motion
func (c Config) Validate() error {
	switch {
	case c.HalfExtent <= 0:
		return fmt.Errorf("%w: half extent %v must be positive", ErrInvalidConfig, c.HalfExtent)
	case c.Gravity >= 0:
		return fmt.Errorf("%w: gravity %v must be negative", ErrInvalidConfig, c.Gravity)
	case c.Restitution < 0 || c.Restitution >= 1:
		return fmt.Errorf("%w: restitution %v outside [0,1)", ErrInvalidConfig, c.Restitution)
	case c.HorizontalDamping < 0 || c.HorizontalDamping > 1:
		return fmt.Errorf("%w: horizontal damping %v outside [0,1]", ErrInvalidConfig, c.HorizontalDamping)
	case c.AngularContactDamping < 0 || c.AngularContactDamping > 1:
		return fmt.Errorf("%w: angular contact damping %v outside [0,1]", ErrInvalidConfig, c.AngularContactDamping)
	case c.AngularDamping <= 0 || c.AngularDamping >= 1:
		return fmt.Errorf("%w: angular damping %v outside (0,1)", ErrInvalidConfig, c.AngularDamping)
	case c.SettleBounces < 0:
		return fmt.Errorf("%w: settle bounces %d must not be negative", ErrInvalidConfig, c.SettleBounces)
	case c.SettleEpsilon <= 0:
		return fmt.Errorf("%w: settle epsilon %v must be positive", ErrInvalidConfig, c.SettleEpsilon)
	case c.ThrowSpeed < 0 || c.SpinSpeed < 0:
		return fmt.Errorf("%w: throw/spin speed must not be negative", ErrInvalidConfig)
	case c.IdleTimeStep < 0:
		return fmt.Errorf("%w: idle time step %v must not be negative", ErrInvalidConfig, c.IdleTimeStep)
	}

	for name, r := range map[string]Range{"spawn_x": c.SpawnX, "spawn_y": c.SpawnY, "spawn_z": c.SpawnZ} {
		if r.Min > r.Max {
			return fmt.Errorf("%w: %s min %v above max %v", ErrInvalidConfig, name, r.Min, r.Max)
		}
	}
	if c.SpawnY.Min <= c.RestHeight() {
		return fmt.Errorf("%w: spawn height %v must be above rest height %v", ErrInvalidConfig, c.SpawnY.Min, c.RestHeight())
	}

	if c.TableBounds {
		if c.TableHalfWidth <= c.HalfExtent || c.TableHalfDepth <= c.HalfExtent {
			return fmt.Errorf("%w: table %vx%v too small for die", ErrInvalidConfig, c.TableHalfWidth*2, c.TableHalfDepth*2)
		}
		if c.WallRestitution < 0 || c.WallRestitution > 1 {
			return fmt.Errorf("%w: wall restitution %v outside [0,1]", ErrInvalidConfig, c.WallRestitution)
		}
	}

	// Settling requires the post-bounce speed fixed point, restitution*|g|/(1+restitution),
	// to fall below the epsilon; otherwise contacts never report a slow enough bounce
	if c.Restitution*-c.Gravity/(1+c.Restitution) >= c.SettleEpsilon {
		return fmt.Errorf("%w: settle epsilon %v unreachable with gravity %v and restitution %v",
			ErrInvalidConfig, c.SettleEpsilon, c.Gravity, c.Restitution)
	}

	return nil
}
