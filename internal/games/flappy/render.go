package flappy

import (
	"fmt"

	"github.com/vovakirdan/sarangola/internal/config"
	"github.com/vovakirdan/sarangola/internal/core"
)

var (
	hudStyle     = core.TextStyle{Size: 20, Color: core.ColorInk}
	hintStyle    = core.TextStyle{Size: 20, Color: core.ColorInk, Align: core.AlignCenter}
	titleStyle   = core.TextStyle{Size: 30, Color: core.ColorWhite, Align: core.AlignCenter}
	overlayStyle = core.TextStyle{Size: 20, Color: core.ColorWhite, Align: core.AlignCenter}
)

// Render draws w onto dst. A nil surface draws nothing.
func Render(dst core.Surface, w *World, cfg *config.GameConfig) {
	if dst == nil {
		return
	}
	width, height := dst.Size()
	full := core.NewRect(0, 0, width, height)

	// Background covers the previous frame
	dst.FillRect(full, core.ColorSky)

	for _, o := range w.Obstacles {
		dst.FillRect(o.TopRect(cfg), core.ColorObstacle)
		dst.FillRect(o.BottomRect(cfg), core.ColorObstacle)
	}

	dst.FillRect(w.Player.Rect(), core.ColorKite)

	dst.FillText(10, 30, fmt.Sprintf("Score: %d", w.Score), hudStyle)

	switch {
	case w.Over:
		dst.FillRect(full, core.ColorShade)
		dst.FillText(width/2, height/2, "Game Over", titleStyle)
		dst.FillText(width/2, height/2+30, fmt.Sprintf("Final Score: %d", w.Score), overlayStyle)
	case w.Paused:
		dst.FillRect(full, core.ColorShade)
		dst.FillText(width/2, height/2, "Paused", titleStyle)
	case !w.Started:
		dst.FillText(width/2, height/2-80, "Click to start", hintStyle)
	}
}
