package core

import (
	"image/color"
	"math"
	"unicode/utf8"
)

// Align controls horizontal text placement relative to the x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes how FillText draws a string.
type TextStyle struct {
	Size  float64 // Font size in logical units
	Color color.RGBA
	Align Align
}

// Surface is a fixed-size 2D drawing target measured in logical units.
// Renderers only need rectangle fills and text.
type Surface interface {
	// Size returns the logical width and height.
	Size() (w, h float64)

	// FillRect fills r with c. Translucent colors blend over existing content.
	FillRect(r Rect, c color.RGBA)

	// FillText draws text with its baseline at y.
	FillText(x, y float64, text string, style TextStyle)
}

// CellAspect is how many times taller a terminal cell is than wide.
const CellAspect = 2.0

// FitCanvas returns the largest cell grid, within cols x rows, that shows a
// logicalW x logicalH canvas without distorting its aspect ratio.
func FitCanvas(cols, rows int, logicalW, logicalH float64) (int, int) {
	if cols <= 0 || rows <= 0 || logicalW <= 0 || logicalH <= 0 {
		return 0, 0
	}
	unit := math.Max(logicalW/float64(cols), logicalH/(CellAspect*float64(rows)))
	w := int(math.Ceil(logicalW/unit - 1e-9))
	h := int(math.Ceil(logicalH/(unit*CellAspect) - 1e-9))
	return Clamp(w, 1, cols), Clamp(h, 1, rows)
}

// CellSurface maps a logical canvas onto every cell of a Screen.
type CellSurface struct {
	screen         *Screen
	logicalW       float64
	logicalH       float64
	unitsX, unitsY float64 // logical units per column / row
}

// NewCellSurface wraps screen as a logicalW x logicalH surface.
func NewCellSurface(screen *Screen, logicalW, logicalH float64) *CellSurface {
	s := &CellSurface{
		screen:   screen,
		logicalW: logicalW,
		logicalH: logicalH,
	}
	if screen.Width() > 0 && screen.Height() > 0 {
		s.unitsX = logicalW / float64(screen.Width())
		s.unitsY = logicalH / float64(screen.Height())
	}
	return s
}

// Size implements Surface.
func (s *CellSurface) Size() (float64, float64) {
	return s.logicalW, s.logicalH
}

// span converts a logical interval to a half-open cell interval.
// Anything with a positive extent covers at least one cell.
func span(start, extent, units float64, limit int) (int, int) {
	a := int(math.Round(start / units))
	b := int(math.Round((start + extent) / units))
	if b <= a && extent > 0 {
		b = a + 1
	}
	return Clamp(a, 0, limit), Clamp(b, 0, limit)
}

// FillRect implements Surface.
func (s *CellSurface) FillRect(r Rect, c color.RGBA) {
	if r.Empty() || s.unitsX == 0 {
		return
	}
	x0, x1 := span(r.X, r.W, s.unitsX, s.screen.Width())
	y0, y1 := span(r.Y, r.H, s.unitsY, s.screen.Height())
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.Paint(x, y, c)
		}
	}
}

// FillText implements Surface. The glyph row is the one holding the
// vertical middle of the text.
func (s *CellSurface) FillText(x, y float64, text string, style TextStyle) {
	if s.unitsX == 0 {
		return
	}
	col := int(math.Round(x / s.unitsX))
	if style.Align == AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	row := int((y - style.Size/2) / s.unitsY)
	row = Clamp(row, 0, s.screen.Height()-1)
	s.screen.DrawText(col, row, text, style.Color)
}
