package window

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/sarangola/internal/core"
)

// loadFace parses the bundled arcade font.
func loadFace() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: cannot load font: %w", err)
	}
	return src, nil
}

// imageSurface draws onto an ebiten image one logical unit per pixel.
type imageSurface struct {
	img  *ebiten.Image
	face *text.GoTextFaceSource
}

// Size implements core.Surface.
func (s imageSurface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect implements core.Surface. Translucent colors blend.
func (s imageSurface) FillRect(r core.Rect, c color.RGBA) {
	if r.Empty() {
		return
	}
	vector.DrawFilledRect(s.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// FillText implements core.Surface with the text baseline at y.
func (s imageSurface) FillText(x, y float64, str string, style core.TextStyle) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color)
	op.SecondaryAlign = text.AlignEnd
	if style.Align == core.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.img, str, &text.GoTextFace{
		Source: s.face,
		Size:   style.Size,
	}, op)
}
