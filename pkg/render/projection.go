package render

import "github.com/taigrr/flatshade/pkg/math3d"

// Projector maps object-space vertices, normalized to roughly [-1, 1] per
// axis, onto a square (Scale+1)×(Scale+1) raster.
//
// Orientation: coordinates are never negated here. Object-space +Y lands on
// increasing row indices, and Pass.Finish flips the finished surface once so
// that +Y reads as up in the saved image.
type Projector struct {
	Scale float64
}

// NewProjector returns a projector for the given scale.
func NewProjector(scale int) Projector {
	return Projector{Scale: float64(scale)}
}

// Project converts v to screen space. X and Y are rounded to whole pixels;
// Z is carried through for depth comparison.
func (p Projector) Project(v math3d.Vec3) math3d.Vec3 {
	return v.ToScreen(p.Scale)
}

// Size returns the raster edge length in pixels.
func (p Projector) Size() int {
	return int(p.Scale) + 1
}
