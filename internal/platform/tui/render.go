package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sarangola/internal/core"
)

type cellColors struct {
	fg, bg color.RGBA
}

// Painter turns Screen buffers into styled strings. Styles are cached per
// color pair; each SSH session brings its own renderer.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[cellColors]lipgloss.Style
}

// NewPainter creates a painter for r. A nil renderer uses the default one.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[cellColors]lipgloss.Style),
	}
}

func (p *Painter) style(c cellColors) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	st := p.renderer.NewStyle()
	if c.fg.A != 0 {
		st = st.Foreground(lipgloss.Color(core.Hex(c.fg)))
	}
	// Zero background keeps the terminal's own
	if c.bg.A != 0 {
		st = st.Background(lipgloss.Color(core.Hex(c.bg)))
	}
	p.styles[c] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := cellColors{fg: cell.FG, bg: cell.BG}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellColors{fg: cell.FG, bg: cell.BG}) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.style(start).Render(run.String()))
		}
	}
	return sb.String()
}
