package physics

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero half extent", func(c *Config) { c.HalfExtent = 0 }},
		{"upward gravity", func(c *Config) { c.Gravity = 0.01 }},
		{"elastic bounce", func(c *Config) { c.Restitution = 1 }},
		{"negative horizontal damping", func(c *Config) { c.HorizontalDamping = -0.1 }},
		{"angular contact amplifies", func(c *Config) { c.AngularContactDamping = 1.2 }},
		{"no angular damping", func(c *Config) { c.AngularDamping = 1 }},
		{"negative bounces", func(c *Config) { c.SettleBounces = -1 }},
		{"zero epsilon", func(c *Config) { c.SettleEpsilon = 0 }},
		{"inverted spawn range", func(c *Config) { c.SpawnX = Range{Min: 2, Max: -2} }},
		{"spawn below rest", func(c *Config) { c.SpawnY = Range{Min: 0.5, Max: 7} }},
		{"tiny table", func(c *Config) { c.TableHalfWidth = 0.5 }},
		{"unreachable epsilon", func(c *Config) { c.SettleEpsilon = 0.005 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestConfigTableOffSkipsTableChecks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TableBounds = false
	cfg.TableHalfWidth = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("table checks applied with bounds disabled: %v", err)
	}
}
