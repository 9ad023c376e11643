// Package models loads meshes for flatshade from Wavefront OBJ and glTF
// files and exposes them as face sources for the render pass.
package models

import (
	"math"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// Mesh is an indexed polygon mesh. Polygons are usually triangles, but a
// mesh loaded without triangulation keeps quads and n-gons as they appear
// in the file.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Polygons [][]int // Indices into Vertices

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddPolygon appends a polygon given by vertex indices.
func (m *Mesh) AddPolygon(idx ...int) {
	m.Polygons = append(m.Polygons, idx)
}

// CalculateBounds computes the axis-aligned bounding box over finite
// vertices.
func (m *Mesh) CalculateBounds() {
	first := true
	for _, v := range m.Vertices {
		if !v.IsFinite() {
			continue
		}
		if first {
			m.BoundsMin, m.BoundsMax = v, v
			first = false
			continue
		}
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
	if first {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i, v := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(v)
	}
	m.CalculateBounds()
}

// NormalizeToUnit centers the mesh on the origin and scales it uniformly so
// its largest extent spans [-1, 1]. Flat or empty meshes are only centered.
func (m *Mesh) NormalizeToUnit() {
	m.CalculateBounds()
	center := m.Center()
	size := m.Size()
	maxDim := math.Max(size.X, math.Max(size.Y, size.Z))

	transform := math3d.Translate(center.Scale(-1))
	if maxDim > 0 {
		transform = math3d.ScaleUniform(2 / maxDim).Mul(transform)
	}
	m.Transform(transform)
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Polygons:  make([][]int, len(m.Polygons)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	for i, p := range m.Polygons {
		clone.Polygons[i] = append([]int(nil), p...)
	}
	return clone
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of three-vertex polygons.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, p := range m.Polygons {
		if len(p) == 3 {
			n++
		}
	}
	return n
}

// FaceCount returns the number of polygons.
// Implements render.FaceSource.
func (m *Mesh) FaceCount() int {
	return len(m.Polygons)
}

// Face returns the vertex positions of polygon i. Indices that fall outside
// the vertex list resolve to NaN so the renderer rejects the face.
// Implements render.FaceSource.
func (m *Mesh) Face(i int) []math3d.Vec3 {
	poly := m.Polygons[i]
	out := make([]math3d.Vec3, len(poly))
	for j, idx := range poly {
		if idx < 0 || idx >= len(m.Vertices) {
			nan := math.NaN()
			out[j] = math3d.V3(nan, nan, nan)
			continue
		}
		out[j] = m.Vertices[idx]
	}
	return out
}

// Triangulate splits every polygon with more than three vertices into a
// fan around its first vertex. Polygons with fewer than three vertices are
// kept so the renderer can report them.
func (m *Mesh) Triangulate() {
	out := make([][]int, 0, len(m.Polygons))
	for _, p := range m.Polygons {
		out = append(out, fan(p)...)
	}
	m.Polygons = out
}

func fan(p []int) [][]int {
	if len(p) <= 3 {
		return [][]int{p}
	}
	tris := make([][]int, 0, len(p)-2)
	for i := 1; i+1 < len(p); i++ {
		tris = append(tris, []int{p[0], p[i], p[i+1]})
	}
	return tris
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}
