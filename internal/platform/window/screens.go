package window

import (
	"fmt"

	"github.com/vovakirdan/sarangola/internal/core"
	"github.com/vovakirdan/sarangola/internal/games/flappy"
	"github.com/vovakirdan/sarangola/internal/storage"
)

// Button is a clickable rectangle on the canvas.
type Button struct {
	Label   string
	Rect    core.Rect
	OnPress func()
}

// buttonAt returns the index of the button containing (x, y), or -1.
func buttonAt(buttons []Button, x, y float64) int {
	for i, b := range buttons {
		if b.Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

var (
	titleText  = core.TextStyle{Size: 30, Color: core.ColorInk, Align: core.AlignCenter}
	headText   = core.TextStyle{Size: 20, Color: core.ColorInk, Align: core.AlignCenter}
	bodyText   = core.TextStyle{Size: 16, Color: core.ColorInk, Align: core.AlignCenter}
	smallText  = core.TextStyle{Size: 10, Color: core.ColorInk, Align: core.AlignCenter}
	buttonText = core.TextStyle{Size: 16, Color: core.ColorWhite, Align: core.AlignCenter}
)

func drawButtons(dst core.Surface, buttons []Button, focus int) {
	for i, b := range buttons {
		fill := core.ColorObstacle
		if i == focus {
			fill = core.ColorKite
		}
		dst.FillRect(b.Rect, fill)
		cx, cy := b.Rect.Center()
		dst.FillText(cx, cy+buttonText.Size/2, b.Label, buttonText)
	}
}

// drawLanding draws the landing page: title, buttons and session stats.
func drawLanding(dst core.Surface, title string, stats flappy.SessionStats, buttons []Button, focus int) {
	if dst == nil {
		return
	}
	w, h := dst.Size()
	dst.FillRect(core.NewRect(0, 0, w, h), core.ColorSky)
	dst.FillText(w/2, 200, title, titleText)
	drawButtons(dst, buttons, focus)

	if stats.GamesPlayed > 0 {
		dst.FillText(w/2, 480, fmt.Sprintf("High Score: %d  Games: %d", stats.HighScore, stats.GamesPlayed), smallText)
	}
}

// drawGameOver draws the final, high and average score, the recent runs
// and the buttons.
func drawGameOver(dst core.Surface, final int, stats flappy.SessionStats, runs []storage.Run, buttons []Button, focus int) {
	if dst == nil {
		return
	}
	w, h := dst.Size()
	dst.FillRect(core.NewRect(0, 0, w, h), core.ColorSky)

	dst.FillText(w/2, 120, "Game Over", titleText)
	dst.FillText(w/2, 170, fmt.Sprintf("Final Score: %d", final), headText)
	dst.FillText(w/2, 205, fmt.Sprintf("High Score: %d", stats.HighScore), bodyText)
	dst.FillText(w/2, 235, "Average Score: "+flappy.FormatAverage(stats.Average()), bodyText)

	for i, r := range runs {
		line := fmt.Sprintf("#%d  %d pts  %s", r.ID, r.Score, r.Cause)
		dst.FillText(w/2, 280+float64(i)*20, line, smallText)
	}

	drawButtons(dst, buttons, focus)
}
