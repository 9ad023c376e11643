package render

import (
	"image"
	"math"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// degenerateBary is returned by barycentric for triangles with less than
// one unit of signed area in pixel space. Its negative weight makes every
// pixel fail the containment test.
var degenerateBary = math3d.V3(-1, 1, 1)

// DrawTriangle fills the screen-space triangle (v0, v1, v2) with c, keeping
// only fragments nearer than the depth buffer. X and Y are pixel
// coordinates; Z is the depth interpolated across the face. It returns the
// number of pixels written.
//
// fb and zb must have identical dimensions.
func DrawTriangle(fb *Framebuffer, zb *DepthBuffer, v0, v1, v2 math3d.Vec3, c Color) int {
	return DrawTriangleClip(fb, zb, v0, v1, v2, c, fb.Bounds())
}

// DrawTriangleClip is DrawTriangle restricted to the pixels inside clip.
func DrawTriangleClip(fb *Framebuffer, zb *DepthBuffer, v0, v1, v2 math3d.Vec3, c Color, clip image.Rectangle) int {
	if !zb.Matches(fb) {
		panic("render: framebuffer and depth buffer dimensions differ")
	}
	if !v0.IsFinite() || !v1.IsFinite() || !v2.IsFinite() {
		return 0
	}
	if screenDegenerate(v0, v1, v2) {
		return 0
	}

	clip = clip.Intersect(fb.Bounds())
	if clip.Empty() {
		return 0
	}

	// Bounding box, clamped in float space so far-off vertices cannot
	// overflow the int conversion.
	minX := clampToInt(math.Floor(min3(v0.X, v1.X, v2.X)), clip.Min.X, clip.Max.X-1)
	maxX := clampToInt(math.Ceil(max3(v0.X, v1.X, v2.X)), clip.Min.X, clip.Max.X-1)
	minY := clampToInt(math.Floor(min3(v0.Y, v1.Y, v2.Y)), clip.Min.Y, clip.Max.Y-1)
	maxY := clampToInt(math.Ceil(max3(v0.Y, v1.Y, v2.Y)), clip.Min.Y, clip.Max.Y-1)

	written := 0
	for y := minY; y <= maxY; y++ {
		row := y * fb.Width
		for x := minX; x <= maxX; x++ {
			bc := barycentric(v0, v1, v2, float64(x), float64(y))
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}

			z := v0.Z*bc.X + v1.Z*bc.Y + v2.Z*bc.Z
			if !zb.Test(x, y, z) {
				continue
			}
			fb.Pixels[row+x] = c
			written++
		}
	}
	return written
}

// barycentric returns the weights of pixel (px, py) with respect to
// (a, b, c), in that order, using the cross-product construction.
func barycentric(a, b, c math3d.Vec3, px, py float64) math3d.Vec3 {
	s0 := math3d.V3(c.X-a.X, b.X-a.X, a.X-px)
	s1 := math3d.V3(c.Y-a.Y, b.Y-a.Y, a.Y-py)
	u := s0.Cross(s1)
	if math.Abs(u.Z) < 1 {
		return degenerateBary
	}
	return math3d.V3(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z)
}

// screenDegenerate reports whether the triangle's doubled pixel-space area
// is below one, the same threshold barycentric rejects on.
func screenDegenerate(a, b, c math3d.Vec3) bool {
	area := (c.X-a.X)*(b.Y-a.Y) - (b.X-a.X)*(c.Y-a.Y)
	return math.Abs(area) < 1
}

func clampToInt(f float64, lo, hi int) int {
	if f <= float64(lo) {
		return lo
	}
	if f >= float64(hi) {
		return hi
	}
	return int(f)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
