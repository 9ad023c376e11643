// Package render implements flatshade's software rasterization pipeline:
// a raster surface and depth buffer, line and triangle rasterizers, flat
// per-face shading and an orthographic object-to-screen projection, tied
// together by a single-owner render Pass.
package render

import (
	"image"
)

// Framebuffer is the raster surface: a fixed-size grid of RGB pixels
// addressed by integer (x, y) with y growing downward.
type Framebuffer struct {
	Width  int     // Width in pixels
	Height int     // Height in pixels
	Pixels []Color // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
// All pixels start black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

// Bounds returns the framebuffer rectangle.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Color) {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = c
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Writes outside the surface are dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// GetPixel returns the color at (x, y), or black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if !fb.InBounds(x, y) {
		return Color{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// FlipVertical mirrors the surface top to bottom in place.
func (fb *Framebuffer) FlipVertical() {
	w := fb.Width
	for top, bot := 0, fb.Height-1; top < bot; top, bot = top+1, bot-1 {
		a := fb.Pixels[top*w : (top+1)*w]
		b := fb.Pixels[bot*w : (bot+1)*w]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for i, c := range fb.Pixels {
		o := i * 4
		img.Pix[o+0] = c.R
		img.Pix[o+1] = c.G
		img.Pix[o+2] = c.B
		img.Pix[o+3] = 0xff
	}
	return img
}
