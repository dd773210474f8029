package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is what happened since the previous update. Only fresh presses
// count; holding a key does not repeat it.
type Input struct {
	Space   bool
	Enter   bool
	Up      bool
	Down    bool
	Pause   bool
	Restart bool
	Back    bool
	Quit    bool

	// Click is a left mouse press at (X, Y) in canvas units.
	Click bool
	X, Y  float64
}

// Any reports whether anything was pressed.
func (in Input) Any() bool {
	return in.Space || in.Enter || in.Up || in.Down || in.Pause ||
		in.Restart || in.Back || in.Quit || in.Click
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollInput reads the keyboard and mouse state for this update.
func pollInput() Input {
	in := Input{
		Space:   justPressed(ebiten.KeySpace),
		Enter:   justPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter),
		Up:      justPressed(ebiten.KeyArrowUp, ebiten.KeyW),
		Down:    justPressed(ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyTab),
		Pause:   justPressed(ebiten.KeyP),
		Restart: justPressed(ebiten.KeyR),
		Back:    justPressed(ebiten.KeyEscape, ebiten.KeyB),
		Quit:    justPressed(ebiten.KeyQ),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Click = true
		in.X, in.Y = float64(x), float64(y)
	}
	return in
}
