package main

import (
	"errors"
	"testing"

	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/engine"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, debug, err := parseFlags(nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if debug {
		t.Error("Expected debug off by default")
	}
	if cfg != engine.DefaultConfig() {
		t.Errorf("Expected default config, got %+v", cfg)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	cfg, debug, err := parseFlags([]string{
		"-speed", "0.05",
		"-fps", "30",
		"-seed", "77",
		"-ball-color", "#ff0000",
		"-debug",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !debug {
		t.Error("Expected debug on")
	}
	if cfg.BallSpeed != 0.05 || cfg.FPS != 30 || cfg.Seed != 77 {
		t.Errorf("Expected speed 0.05 fps 30 seed 77, got %v %d %d", cfg.BallSpeed, cfg.FPS, cfg.Seed)
	}
	if cfg.BallColor != (core.RGB{R: 255}) {
		t.Errorf("Expected red ball, got %v", cfg.BallColor)
	}
}

func TestParseFlagsRejectsInvalid(t *testing.T) {
	if _, _, err := parseFlags([]string{"-speed", "-1"}); !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for negative speed, got %v", err)
	}
	if _, _, err := parseFlags([]string{"-wall-color", "grey"}); err == nil {
		t.Error("Expected error for malformed color")
	}
}
