package render

import "image/color"

// Color is an opaque 8-bit RGB triple. It satisfies color.Color with a
// fixed alpha of 0xff.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// ToRGBA converts c to the standard library's color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 0xff}
}

// RGB creates a color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// Gray replicates v across all three channels.
func Gray(v uint8) Color {
	return Color{v, v, v}
}

// Colors for convenience
var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorRed   = Color{255, 0, 0}
	ColorGreen = Color{0, 255, 0}
	ColorBlue  = Color{0, 0, 255}
)

var _ color.Color = Color{}
