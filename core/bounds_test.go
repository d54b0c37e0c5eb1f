package core

import "testing"

func TestRectImplementsBounds(t *testing.T) {
	var b Bounds = NewRect(10, 20, 4, 6)

	if b.CenterX() != 10 || b.CenterY() != 20 {
		t.Errorf("Expected center (10, 20), got (%v, %v)", b.CenterX(), b.CenterY())
	}
	if b.Width() != 4 || b.Height() != 6 {
		t.Errorf("Expected extent (4, 6), got (%v, %v)", b.Width(), b.Height())
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(1, 2, 3, 4)
	moved := r.Translate(5, -1)

	if moved.CX != 6 || moved.CY != 1 {
		t.Errorf("Expected translated center (6, 1), got (%v, %v)", moved.CX, moved.CY)
	}
	if moved.W != 3 || moved.H != 4 {
		t.Errorf("Expected extent unchanged, got (%v, %v)", moved.W, moved.H)
	}
	// Value receiver: original untouched
	if r.CX != 1 || r.CY != 2 {
		t.Errorf("Expected original rect unchanged, got (%v, %v)", r.CX, r.CY)
	}
}

func TestRGBBlend(t *testing.T) {
	white := RGBWhite

	if got := white.Blend(RGBBlack, 0); got != white {
		t.Errorf("Expected alpha 0 to keep destination, got %v", got)
	}
	if got := white.Blend(RGBBlack, 1); got != RGBBlack {
		t.Errorf("Expected alpha 1 to return source, got %v", got)
	}
	got := white.Blend(RGBBlack, 0.5)
	if got.R < 127 || got.R > 128 {
		t.Errorf("Expected half blend near 127, got %d", got.R)
	}
}
