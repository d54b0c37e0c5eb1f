package core

// Bounds is an axis-aligned rectangle described by its center and extent
// Walls, paddles and the ball all expose this shape to collision tests
type Bounds interface {
	CenterX() float64
	CenterY() float64
	Width() float64
	Height() float64
}

// Rect is a center-anchored axis-aligned rectangle
type Rect struct {
	CX, CY float64 // Center
	W, H   float64 // Full extent, not half
}

// NewRect creates a rectangle centered at (cx, cy)
func NewRect(cx, cy, w, h float64) Rect {
	return Rect{CX: cx, CY: cy, W: w, H: h}
}

func (r Rect) CenterX() float64 { return r.CX }
func (r Rect) CenterY() float64 { return r.CY }
func (r Rect) Width() float64   { return r.W }
func (r Rect) Height() float64  { return r.H }

// Translate returns the rectangle moved by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	r.CX += dx
	r.CY += dy
	return r
}
