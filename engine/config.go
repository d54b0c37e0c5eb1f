package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/lixenwraith/bounce/core"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds driver tuning; court units are terminal cells, time is milliseconds
type Config struct {
	BallSize  float64 // Ball width and height
	BallSpeed float64 // Cells per millisecond

	PaddleWidth  float64
	PaddleHeight float64
	PaddleInset  float64 // Gap between side wall and paddle
	PaddleSpeed  float64 // Max tracking speed, cells per millisecond

	WallThickness float64

	FPS  int
	Seed uint64 // 0 selects a time-based seed

	BallColor   core.RGB
	PaddleColor core.RGB
	WallColor   core.RGB
}

// DefaultConfig returns the tuning used by cmd/bounce when no flags are given
func DefaultConfig() Config {
	return Config{
		BallSize:      1,
		BallSpeed:     0.03,
		PaddleWidth:   1,
		PaddleHeight:  5,
		PaddleInset:   2,
		PaddleSpeed:   0.02,
		WallThickness: 1,
		FPS:           60,
		BallColor:     core.RGB{R: 255, G: 220, B: 80},
		PaddleColor:   core.RGB{R: 80, G: 200, B: 255},
		WallColor:     core.RGB{R: 140, G: 140, B: 140},
	}
}

// Validate rejects values the driver cannot run with
func (c Config) Validate() error {
	checks := []struct {
		name string
		v    float64
		min  float64
	}{
		{"ball size", c.BallSize, math.SmallestNonzeroFloat64},
		{"ball speed", c.BallSpeed, 0},
		{"paddle width", c.PaddleWidth, math.SmallestNonzeroFloat64},
		{"paddle height", c.PaddleHeight, math.SmallestNonzeroFloat64},
		{"paddle inset", c.PaddleInset, 0},
		{"paddle speed", c.PaddleSpeed, 0},
		{"wall thickness", c.WallThickness, math.SmallestNonzeroFloat64},
	}
	for _, chk := range checks {
		if math.IsNaN(chk.v) || math.IsInf(chk.v, 0) || chk.v < chk.min {
			return fmt.Errorf("%w: %s %v", ErrInvalidConfig, chk.name, chk.v)
		}
	}
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("%w: fps %d out of range [1, 240]", ErrInvalidConfig, c.FPS)
	}
	return nil
}
