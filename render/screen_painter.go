package render

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/bounce/core"
)

// FillRune is the glyph used for solid cells
const FillRune = '█'

// ScreenPainter draws center-anchored rectangles onto a tcell screen, one court unit per cell
type ScreenPainter struct {
	screen tcell.Screen
	style  tcell.Style
}

// NewScreenPainter wraps screen; the initial color is white
func NewScreenPainter(screen tcell.Screen) *ScreenPainter {
	p := &ScreenPainter{screen: screen}
	p.SetColor(core.RGBWhite)
	return p
}

// SetColor sets the foreground used by subsequent fills
func (p *ScreenPainter) SetColor(c core.RGB) {
	p.style = tcell.StyleDefault.Foreground(toTcell(c)).Background(tcell.ColorReset)
}

// FillRect fills every cell touched by the rectangle, at least one cell per axis, clipped to the screen
func (p *ScreenPainter) FillRect(cx, cy, w, h float64) {
	x0, x1 := cellSpan(cx, w)
	y0, y1 := cellSpan(cy, h)

	width, height := p.screen.Size()
	x0, x1 = max(x0, 0), min(x1, width)
	y0, y1 = max(y0, 0), min(y1, height)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			p.screen.SetContent(x, y, FillRune, nil, p.style)
		}
	}
}

// cellSpan maps a centered extent to the half-open cell range [lo, hi)
func cellSpan(center, extent float64) (lo, hi int) {
	half := extent / 2
	lo = int(math.Floor(center - half))
	hi = int(math.Ceil(center + half))
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi
}
