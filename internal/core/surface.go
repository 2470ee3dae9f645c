package core

import "math"

// TextAlign is the horizontal anchor of text relative to its x coordinate.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Font describes how text is drawn. Size is in logical pixels; character
// surfaces ignore Size and Family and only honor Align.
type Font struct {
	Size   int
	Family string
	Align  TextAlign
}

// Surface is a fixed-size 2D drawing target addressed in logical units.
// Text is positioned by its baseline.
type Surface interface {
	Size() (w, h float64)
	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	FillText(text string, x, y float64, font Font, c Color)
}

// Glyphs used when rasterizing shapes onto a character screen.
const (
	RectGlyph   = '█'
	CircleGlyph = '●'
)

// Canvas rasterizes Surface calls onto a character Screen, scaling the
// logical size to the screen size independently on each axis.
type Canvas struct {
	screen *Screen
	w, h   float64
	sx, sy float64 // cells per logical unit
}

var _ Surface = (*Canvas)(nil)

// NewCanvas wraps screen as a logicalW x logicalH drawing surface.
func NewCanvas(screen *Screen, logicalW, logicalH float64) *Canvas {
	c := &Canvas{screen: screen, w: logicalW, h: logicalH}
	if logicalW > 0 {
		c.sx = float64(screen.Width()) / logicalW
	}
	if logicalH > 0 {
		c.sy = float64(screen.Height()) / logicalH
	}
	return c
}

// Size returns the logical dimensions of the canvas.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Screen returns the underlying character buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// ClearRect blanks every cell touched by the region.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	x0 := int(math.Floor(x * c.sx))
	y0 := int(math.Floor(y * c.sy))
	x1 := int(math.Ceil((x + w) * c.sx))
	y1 := int(math.Ceil((y + h) * c.sy))
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			c.screen.SetCell(col, row, blankCell)
		}
	}
}

// FillRect fills the cells whose centers fall inside the rectangle. A rect
// smaller than one cell still paints the cell holding its center.
func (c *Canvas) FillRect(x, y, w, h float64, color Color) {
	col0, col1 := cellSpan(x, w, c.sx)
	row0, row1 := cellSpan(y, h, c.sy)
	cell := Cell{Rune: RectGlyph, Color: color}
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			c.screen.SetCell(col, row, cell)
		}
	}
}

// FillCircle fills the cells whose centers fall inside the circle, always
// including the cell under the center point.
func (c *Canvas) FillCircle(cx, cy, r float64, color Color) {
	cell := Cell{Rune: CircleGlyph, Color: color}
	c.screen.SetCell(int(math.Floor(cx*c.sx)), int(math.Floor(cy*c.sy)), cell)
	if r <= 0 || c.sx == 0 || c.sy == 0 {
		return
	}

	col0, col1 := cellSpan(cx-r, 2*r, c.sx)
	row0, row1 := cellSpan(cy-r, 2*r, c.sy)
	for row := row0; row <= row1; row++ {
		py := (float64(row) + 0.5) / c.sy
		for col := col0; col <= col1; col++ {
			px := (float64(col) + 0.5) / c.sx
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				c.screen.SetCell(col, row, cell)
			}
		}
	}
}

// FillText draws text with its baseline at y, anchored at x per font.Align.
func (c *Canvas) FillText(text string, x, y float64, font Font, color Color) {
	row := int(math.Floor(y*c.sy - 0.5))
	if row < 0 {
		row = 0
	}
	col := int(math.Floor(x * c.sx))
	n := len([]rune(text))
	switch font.Align {
	case AlignCenter:
		col -= n / 2
	case AlignRight:
		col -= n
	}
	c.screen.DrawText(col, row, text, color)
}

// cellSpan returns the inclusive cell range whose centers lie in [start, start+length).
func cellSpan(start, length, scale float64) (int, int) {
	first := int(math.Ceil(start*scale - 0.5))
	last := int(math.Ceil((start+length)*scale-0.5)) - 1
	if last < first {
		mid := int(math.Floor((start + length/2) * scale))
		return mid, mid
	}
	return first, last
}
