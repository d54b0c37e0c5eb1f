package vmath

import (
	"testing"

	"github.com/lixenwraith/bounce/core"
)

func TestEdges(t *testing.T) {
	left, top, right, bottom := Edges(core.NewRect(300, 150, 10, 300))
	if left != 295 || right != 305 || top != 0 || bottom != 300 {
		t.Errorf("Expected edges (295, 0, 305, 300), got (%v, %v, %v, %v)", left, top, right, bottom)
	}
}

func TestOverlapsTouchingEdgesDoNotCollide(t *testing.T) {
	wall := core.NewRect(300, 150, 10, 300)

	tests := []struct {
		name string
		ball core.Rect
	}{
		{"right edge on wall left", core.NewRect(290, 100, 10, 10)},
		{"left edge on wall right", core.NewRect(310, 100, 10, 10)},
		{"bottom edge on wall top", core.NewRect(300, -5, 10, 10)},
		{"top edge on wall bottom", core.NewRect(300, 305, 10, 10)},
	}
	for _, tt := range tests {
		if Overlaps(tt.ball, wall) {
			t.Errorf("%s: expected no collision when edges touch", tt.name)
		}
		if Overlaps(wall, tt.ball) {
			t.Errorf("%s: expected symmetric result", tt.name)
		}
	}
}

func TestOverlapsSmallPenetrationCollides(t *testing.T) {
	wall := core.NewRect(300, 150, 10, 300)
	const eps = 1e-6

	tests := []struct {
		name string
		ball core.Rect
	}{
		{"from left", core.NewRect(290+eps, 100, 10, 10)},
		{"from right", core.NewRect(310-eps, 100, 10, 10)},
		{"from above", core.NewRect(300, -5+eps, 10, 10)},
		{"from below", core.NewRect(300, 305-eps, 10, 10)},
	}
	for _, tt := range tests {
		if !Overlaps(tt.ball, wall) {
			t.Errorf("%s: expected collision for positive overlap", tt.name)
		}
	}
}

func TestOverlapsRequiresBothAxes(t *testing.T) {
	a := core.NewRect(0, 0, 10, 10)
	// X ranges overlap, Y ranges are disjoint
	if Overlaps(a, core.NewRect(2, 50, 10, 10)) {
		t.Error("Expected no collision when only X overlaps")
	}
	// Containment counts as overlap
	if !Overlaps(a, core.NewRect(0, 0, 2, 2)) {
		t.Error("Expected collision for contained rectangle")
	}
}
