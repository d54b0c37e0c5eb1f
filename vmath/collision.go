package vmath

import "github.com/lixenwraith/bounce/core"

// Edges returns the axis-aligned edges of a center-anchored rectangle
func Edges(b core.Bounds) (left, top, right, bottom float64) {
	halfW := b.Width() / 2
	halfH := b.Height() / 2
	cx, cy := b.CenterX(), b.CenterY()
	return cx - halfW, cy - halfH, cx + halfW, cy + halfH
}

// Overlaps is the strict AABB test: rectangles whose edges only touch do not overlap
func Overlaps(a, b core.Bounds) bool {
	aLeft, aTop, aRight, aBottom := Edges(a)
	bLeft, bTop, bRight, bBottom := Edges(b)
	return aRight > bLeft && aLeft < bRight && aBottom > bTop && aTop < bBottom
}
