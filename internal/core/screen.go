package core

import (
	"image/color"
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune rune
	FG   color.RGBA
	BG   color.RGBA
}

// blankCell is what Clear fills the screen with. A zero BG means
// "terminal default background".
var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering game graphics.
// It decouples game rendering from the terminal, allowing the game to draw
// using simple cell operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded since every
// frame redraws the whole canvas.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.allocate()
	s.Clear()
}

// Clear resets every cell to a blank with default colors.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// inBounds reports whether (x, y) is on the screen.
func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// GetCell returns the full cell at the given position, or a blank cell
// out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// Paint blends a background color over the cell at (x, y) and clears its rune.
func (s *Screen) Paint(x, y int, bg color.RGBA) {
	if !s.inBounds(x, y) {
		return
	}
	c := &s.cells[y][x]
	c.BG = Blend(c.BG, bg)
	if bg.A == 0xff {
		c.Rune = ' '
	} else {
		// Translucent paint dims any glyph underneath.
		c.FG = Blend(c.FG, bg)
	}
}

// DrawText writes a string horizontally starting at (x, y) in the given
// foreground color. Characters beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg color.RGBA) {
	i := 0
	for _, r := range text {
		if s.inBounds(x+i, y) {
			c := &s.cells[y][x+i]
			c.Rune = r
			c.FG = fg
		}
		i++
	}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
