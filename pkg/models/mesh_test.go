package models

import (
	"math"
	"testing"

	"github.com/taigrr/flatshade/pkg/math3d"
)

func TestMeshBounds(t *testing.T) {
	m := NewMesh("test")
	m.AddVertex(math3d.V3(-1, 2, 3))
	m.AddVertex(math3d.V3(4, -5, 0))
	m.AddVertex(math3d.V3(math.NaN(), 100, 100))
	m.CalculateBounds()

	if lo, hi := m.GetBounds(); lo != math3d.V3(-1, -5, 0) || hi != math3d.V3(4, 2, 3) {
		t.Errorf("bounds = %v..%v", lo, hi)
	}
	if got := m.Center(); got != math3d.V3(1.5, -1.5, 1.5) {
		t.Errorf("Center() = %v", got)
	}
}

func TestMeshNormalizeToUnit(t *testing.T) {
	m := NewMesh("box")
	m.AddVertex(math3d.V3(10, 10, 10))
	m.AddVertex(math3d.V3(14, 12, 11))
	m.NormalizeToUnit()

	const tol = 1e-12
	if d := m.BoundsMin.Sub(math3d.V3(-1, -0.5, -0.25)).Magnitude(); d > tol {
		t.Errorf("min = %v", m.BoundsMin)
	}
	if d := m.BoundsMax.Sub(math3d.V3(1, 0.5, 0.25)).Magnitude(); d > tol {
		t.Errorf("max = %v", m.BoundsMax)
	}

	flat := NewMesh("point")
	flat.AddVertex(math3d.V3(3, 3, 3))
	flat.NormalizeToUnit()
	if flat.Vertices[0] != math3d.Zero3() {
		t.Errorf("single vertex normalized to %v, want origin", flat.Vertices[0])
	}
}

func TestMeshFaceSource(t *testing.T) {
	m := NewMesh("tri")
	a := m.AddVertex(math3d.V3(0, 0, 0))
	b := m.AddVertex(math3d.V3(1, 0, 0))
	c := m.AddVertex(math3d.V3(0, 1, 0))
	m.AddPolygon(a, b, c)
	m.AddPolygon(a, b)

	if m.FaceCount() != 2 || m.TriangleCount() != 1 {
		t.Fatalf("FaceCount = %d, TriangleCount = %d", m.FaceCount(), m.TriangleCount())
	}
	f := m.Face(0)
	if len(f) != 3 || f[1] != math3d.V3(1, 0, 0) {
		t.Errorf("Face(0) = %v", f)
	}
	if len(m.Face(1)) != 2 {
		t.Error("short polygon should be passed through unchanged")
	}
}

func TestMeshTriangulate(t *testing.T) {
	m := NewMesh("pentagon")
	for range 5 {
		m.AddVertex(math3d.Zero3())
	}
	m.AddPolygon(0, 1, 2, 3, 4)
	m.AddPolygon(0)
	m.Triangulate()

	if m.FaceCount() != 4 || m.TriangleCount() != 3 {
		t.Errorf("FaceCount = %d, TriangleCount = %d; want 4, 3", m.FaceCount(), m.TriangleCount())
	}
}

func TestMeshClone(t *testing.T) {
	m := NewMesh("orig")
	m.AddVertex(math3d.V3(1, 2, 3))
	m.AddPolygon(0, 0, 0)
	c := m.Clone()
	c.Vertices[0] = math3d.Zero3()
	c.Polygons[0][0] = 7
	if m.Vertices[0] != math3d.V3(1, 2, 3) || m.Polygons[0][0] != 0 {
		t.Error("Clone shares storage with the original")
	}
}

func TestMeshTransform(t *testing.T) {
	m := NewMesh("t")
	m.AddVertex(math3d.V3(1, 0, 0))
	m.Transform(math3d.Translate(math3d.V3(0, 2, 0)))
	if m.Vertices[0] != math3d.V3(1, 2, 0) || m.BoundsMax != math3d.V3(1, 2, 0) {
		t.Errorf("vertex = %v, bounds max = %v", m.Vertices[0], m.BoundsMax)
	}
}
