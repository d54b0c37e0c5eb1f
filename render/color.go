package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/bounce/core"
)

// ParseColor converts "#rrggbb" (or "#rgb") into RGB
func ParseColor(hex string) (core.RGB, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return core.RGB{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return core.RGB{R: r, G: g, B: b}, nil
}

// Hex formats an RGB as "#rrggbb"
func Hex(c core.RGB) string {
	return toColorful(c).Hex()
}

func toColorful(c core.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
