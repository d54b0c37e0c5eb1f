package render

import "github.com/lixenwraith/bounce/core"

// Painter is the drawing primitive entities render themselves through.
// Rectangles are center-anchored: (cx, cy) is the middle, w and h the full extent.
type Painter interface {
	SetColor(c core.RGB)
	FillRect(cx, cy, w, h float64)
}
