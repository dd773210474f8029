package core

import "image/color"

// Palette used by the game renderers. Colors are alpha-premultiplied,
// matching image/color.RGBA.
var (
	ColorSky      = color.RGBA{0x87, 0xce, 0xeb, 0xff}
	ColorObstacle = color.RGBA{0x8b, 0x45, 0x13, 0xff}
	ColorKite     = color.RGBA{0xff, 0x45, 0x00, 0xff}
	ColorInk      = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColorWhite    = color.RGBA{0xff, 0xff, 0xff, 0xff}
	ColorShade    = color.RGBA{0x00, 0x00, 0x00, 0x80} // 50% black overlay
)

// Blend composites src over dst. Both are alpha-premultiplied.
func Blend(dst, src color.RGBA) color.RGBA {
	if src.A == 0xff {
		return src
	}
	inv := 0xff - uint32(src.A)
	mix := func(d, s uint8) uint8 {
		return uint8(uint32(s) + uint32(d)*inv/0xff)
	}
	return color.RGBA{
		R: mix(dst.R, src.R),
		G: mix(dst.G, src.G),
		B: mix(dst.B, src.B),
		A: mix(dst.A, src.A),
	}
}

// Hex formats a color as #rrggbb, ignoring alpha.
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}
