package engine

import (
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/physics"
	"github.com/lixenwraith/bounce/vmath"
)

// Wall is a labelled court boundary
type Wall struct {
	ID string
	core.Rect
}

// Paddle is a labelled player rectangle, positioned by the driver
type Paddle struct {
	ID string
	core.Rect
}

// Court owns the boundary walls and both paddles
type Court struct {
	Width, Height float64
	Walls         []Wall
	Paddles       []Paddle
	thickness     float64
}

// NewCourt lays out four edge-hugging walls and two paddles centered vertically
func NewCourt(width, height float64, cfg Config) *Court {
	t := cfg.WallThickness
	c := &Court{
		Width:     width,
		Height:    height,
		thickness: t,
		Walls: []Wall{
			{ID: physics.WallLeft, Rect: core.NewRect(t/2, height/2, t, height)},
			{ID: physics.WallRight, Rect: core.NewRect(width-t/2, height/2, t, height)},
			{ID: physics.WallTop, Rect: core.NewRect(width/2, t/2, width, t)},
			{ID: physics.WallBottom, Rect: core.NewRect(width/2, height-t/2, width, t)},
		},
	}

	offset := t + cfg.PaddleInset + cfg.PaddleWidth/2
	c.Paddles = []Paddle{
		{ID: physics.PlayerOne, Rect: core.NewRect(offset, height/2, cfg.PaddleWidth, cfg.PaddleHeight)},
		{ID: physics.PlayerTwo, Rect: core.NewRect(width-offset, height/2, cfg.PaddleWidth, cfg.PaddleHeight)},
	}
	return c
}

// Bounds is the full court rectangle
func (c *Court) Bounds() core.Rect {
	return core.NewRect(c.Width/2, c.Height/2, c.Width, c.Height)
}

// Center returns the serve point
func (c *Court) Center() (x, y float64) {
	return c.Width / 2, c.Height / 2
}

// TrackBall moves paddle i toward targetY by at most maxStep, keeping it between the top and bottom walls
func (c *Court) TrackBall(i int, targetY, maxStep float64) {
	p := &c.Paddles[i]
	step := vmath.Clamp(targetY-p.CY, -maxStep, maxStep)

	lo := c.thickness + p.H/2
	hi := c.Height - c.thickness - p.H/2
	if lo > hi {
		// Court shorter than the paddle: pin to center
		p.CY = c.Height / 2
		return
	}
	p.CY = vmath.Clamp(p.CY+step, lo, hi)
}
