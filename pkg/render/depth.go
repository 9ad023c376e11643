package render

import "math"

// Depth convention, used by everything in this package: larger z is nearer
// the viewer and a fragment passes only when strictly nearer than what is
// stored. Cleared cells hold DepthFar, which every finite z beats.
var DepthFar = math.Inf(-1)

// DepthPasses reports whether a fragment at depth z replaces stored.
// Equal depths never pass, so redrawing the same triangle changes nothing.
func DepthPasses(z, stored float64) bool {
	return z > stored
}

// DepthBuffer stores one depth per raster cell, indexed x + y*Width.
type DepthBuffer struct {
	Width  int
	Height int
	Values []float64
}

// NewDepthBuffer creates a cleared depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
	d.Clear()
	return d
}

// Clear resets every cell to DepthFar.
func (d *DepthBuffer) Clear() {
	// Use copy-doubling for faster clearing
	n := len(d.Values)
	if n == 0 {
		return
	}
	d.Values[0] = DepthFar
	for i := 1; i < n; i *= 2 {
		copy(d.Values[i:], d.Values[:i])
	}
}

// At returns the stored depth at (x, y), or DepthFar if out of bounds.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return DepthFar
	}
	return d.Values[x+y*d.Width]
}

// Test runs the depth test at (x, y) and stores z when it passes.
// Out-of-bounds cells never pass.
func (d *DepthBuffer) Test(x, y int, z float64) bool {
	if x < 0 || x >= d.Width || y < 0 || y >= d.Height {
		return false
	}
	i := x + y*d.Width
	if !DepthPasses(z, d.Values[i]) {
		return false
	}
	d.Values[i] = z
	return true
}

// Matches reports whether d has the same dimensions as fb.
func (d *DepthBuffer) Matches(fb *Framebuffer) bool {
	return d.Width == fb.Width && d.Height == fb.Height
}
