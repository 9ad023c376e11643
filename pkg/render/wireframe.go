package render

import (
	"github.com/taigrr/flatshade/pkg/math3d"
)

// boxEdges indexes the corners produced by boxCorners.
var boxEdges = [12][2]int{
	// Back face
	{0, 1},
	{1, 2},
	{2, 3},
	{3, 0},
	// Front face
	{4, 5},
	{5, 6},
	{6, 7},
	{7, 4},
	// Connecting edges
	{0, 4},
	{1, 5},
	{2, 6},
	{3, 7},
}

// Overlay draws object-space guide geometry (boxes, axes) on top of a
// pass's surface. Overlay lines ignore the depth buffer. Draw before
// Finish so the guides are flipped along with the faces.
type Overlay struct {
	proj Projector
	fb   *Framebuffer
	line LineAlgorithm
}

// Overlay returns an overlay bound to the pass's surface and projection.
func (p *Pass) Overlay() *Overlay {
	return &Overlay{proj: p.proj, fb: p.fb, line: p.cfg.Line}
}

// DrawLine3D projects both endpoints and draws the segment between them.
// Segments with a non-finite endpoint are dropped.
func (o *Overlay) DrawLine3D(p1, p2 math3d.Vec3, c Color) {
	if !p1.IsFinite() || !p2.IsFinite() {
		return
	}
	a := o.proj.Project(p1)
	b := o.proj.Project(p2)
	o.fb.DrawSegment(o.line, math3d.XY(a), math3d.XY(b), c)
}

// DrawBox draws the twelve edges of the axis-aligned box [lo, hi].
func (o *Overlay) DrawBox(lo, hi math3d.Vec3, c Color) {
	corners := boxCorners(lo, hi)
	for _, e := range boxEdges {
		o.DrawLine3D(corners[e[0]], corners[e[1]], c)
	}
}

// DrawTransformedBox draws the box [lo, hi] after applying transform to
// each corner.
func (o *Overlay) DrawTransformedBox(transform math3d.Mat4, lo, hi math3d.Vec3, c Color) {
	corners := boxCorners(lo, hi)
	for i, v := range corners {
		corners[i] = transform.MulVec3(v)
	}
	for _, e := range boxEdges {
		o.DrawLine3D(corners[e[0]], corners[e[1]], c)
	}
}

// DrawAxes draws the object-space axes from the origin: X red, Y green,
// Z blue.
func (o *Overlay) DrawAxes(length float64) {
	origin := math3d.Zero3()
	o.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)
	o.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen)
	o.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)
}

func boxCorners(lo, hi math3d.Vec3) [8]math3d.Vec3 {
	return [8]math3d.Vec3{
		{X: lo.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: lo.Y, Z: lo.Z},
		{X: hi.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: hi.Y, Z: lo.Z},
		{X: lo.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: lo.Y, Z: hi.Z},
		{X: hi.X, Y: hi.Y, Z: hi.Z},
		{X: lo.X, Y: hi.Y, Z: hi.Z},
	}
}
