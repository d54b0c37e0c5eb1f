package physics

import (
	"github.com/lixenwraith/bounce/core"
	"github.com/lixenwraith/bounce/render"
	"github.com/lixenwraith/bounce/vmath"
)

// Wall labels understood by OnWallCollision
const (
	WallLeft   = "Left"
	WallRight  = "Right"
	WallTop    = "Top"
	WallBottom = "Bottom"
)

// Player labels passed to OnPlayerCollision
const (
	PlayerOne = "P1"
	PlayerTwo = "P2"
)

// Ball is the only moving entity of a round.
// Its state is owned by the ball and written only through its methods,
// all of which are expected to run on the driver goroutine.
type Ball struct {
	kin           core.Kinetic
	width, height float64
	color         core.RGB
}

// NewBall creates a ball centered at (cx, cy) heading in a uniformly random direction.
// speed is in court units per millisecond and stays fixed for the ball's lifetime.
func NewBall(cx, cy, width, height float64, color core.RGB, speed float64, rng vmath.Source) *Ball {
	dx, dy := vmath.RandomUnit(rng)
	return newBallHeading(cx, cy, width, height, color, speed, dx, dy)
}

// NewBallHeading creates a ball with an explicit heading, normalized before use.
// A zero heading falls back to +X.
func NewBallHeading(cx, cy, width, height float64, color core.RGB, speed, dx, dy float64) *Ball {
	mag := vmath.Magnitude(dx, dy)
	if mag == 0 {
		dx, dy, mag = 1, 0, 1
	}
	return newBallHeading(cx, cy, width, height, color, speed, dx/mag, dy/mag)
}

func newBallHeading(cx, cy, width, height float64, color core.RGB, speed, dx, dy float64) *Ball {
	return &Ball{
		kin: core.Kinetic{
			X:     cx,
			Y:     cy,
			DirX:  dx,
			DirY:  dy,
			Speed: speed,
		},
		width:  width,
		height: height,
		color:  color,
	}
}

// Update advances the position by speed*direction*delta, delta in milliseconds
// Negative deltas are applied as given
func (b *Ball) Update(delta float64) {
	Integrate(&b.kin, delta)
}

// CheckCollision reports strict overlap with any wall, paddle or other rectangle
func (b *Ball) CheckCollision(other core.Bounds) bool {
	return vmath.Overlaps(b, other)
}

// OnWallCollision reflects off the named boundary.
// Left and Right flip the horizontal heading, every other label flips the vertical one.
func (b *Ball) OnWallCollision(wallID string) {
	ReflectWall(&b.kin, wallID)
}

// OnPlayerCollision flips the horizontal heading.
// playerID is currently ignored: every paddle reflects the same way.
func (b *Ball) OnPlayerCollision(playerID string) {
	ReflectPaddle(&b.kin)
}

// Draw paints the ball rectangle through p
func (b *Ball) Draw(p render.Painter) {
	p.SetColor(b.color)
	p.FillRect(b.kin.X, b.kin.Y, b.width, b.height)
}

func (b *Ball) Cx() float64     { return b.kin.X }
func (b *Ball) Cy() float64     { return b.kin.Y }
func (b *Ball) Speed() float64  { return b.kin.Speed }
func (b *Ball) Color() core.RGB { return b.color }

// Direction returns the unit heading
func (b *Ball) Direction() (dx, dy float64) {
	return b.kin.DirX, b.kin.DirY
}

// core.Bounds

func (b *Ball) CenterX() float64 { return b.kin.X }
func (b *Ball) CenterY() float64 { return b.kin.Y }
func (b *Ball) Width() float64   { return b.width }
func (b *Ball) Height() float64  { return b.height }
