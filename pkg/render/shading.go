package render

import (
	"github.com/taigrr/flatshade/pkg/math3d"
)

// DefaultBrightness scales the lambert term down a little for contrast.
const DefaultBrightness = 0.85

// FaceNormal returns the unit normal cross(v2-v0, v1-v0). Vertex order sets
// its sign. ok is false when the vertices are collinear (zero-length
// normal), in which case the face must be skipped.
func FaceNormal(v0, v1, v2 math3d.Vec3) (n math3d.Vec3, ok bool) {
	n = v2.Sub(v0).Cross(v1.Sub(v0))
	if n.Magnitude() == 0 {
		return math3d.Vec3{}, false
	}
	n.NormalizeInPlace()
	if !n.IsFinite() {
		return math3d.Vec3{}, false
	}
	return n, true
}

// Intensity returns the flat lighting term dot(normal, light) * k for a
// face given in object space. ok is false for degenerate faces.
func Intensity(v0, v1, v2, light math3d.Vec3, k float64) (intensity float64, ok bool) {
	n, ok := FaceNormal(v0, v1, v2)
	if !ok {
		return 0, false
	}
	return n.Dot(light) * k, true
}

// Lit reports whether a face with the given intensity is rasterized.
// Faces turned away from or edge-on to the light are culled.
func Lit(intensity float64) bool {
	return intensity > 0
}

// ColorFor maps an intensity to a greyscale color, clamping to [0, 1] and
// truncating intensity*255.
func ColorFor(intensity float64) Color {
	switch {
	case intensity <= 0:
		return Gray(0)
	case intensity >= 1:
		return Gray(255)
	}
	return Gray(uint8(intensity * 255))
}
