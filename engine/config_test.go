package engine

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative speed", func(c *Config) { c.BallSpeed = -1 }},
		{"NaN speed", func(c *Config) { c.BallSpeed = math.NaN() }},
		{"infinite speed", func(c *Config) { c.BallSpeed = math.Inf(1) }},
		{"zero ball size", func(c *Config) { c.BallSize = 0 }},
		{"zero paddle height", func(c *Config) { c.PaddleHeight = 0 }},
		{"negative inset", func(c *Config) { c.PaddleInset = -2 }},
		{"zero wall thickness", func(c *Config) { c.WallThickness = 0 }},
		{"zero fps", func(c *Config) { c.FPS = 0 }},
		{"fps too high", func(c *Config) { c.FPS = 1000 }},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.modify(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: expected ErrInvalidConfig, got %v", tt.name, err)
		}
	}
}

func TestConfigZeroSpeedAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BallSpeed = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected stationary ball to be allowed, got %v", err)
	}
}
