package models

import (
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// quadDocument builds a two-triangle quad in memory.
func quadDocument(indexed bool) *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	})
	prim := &gltf.Primitive{Mode: gltf.PrimitiveTriangles}
	prim.Attributes = map[string]int{gltf.POSITION: pos}
	if indexed {
		idx := modeler.WriteIndices(doc, []uint16{0, 1, 2, 0, 2, 3})
		prim.Indices = gltf.Index(idx)
	}
	doc.Meshes = []*gltf.Mesh{{Name: "quad", Primitives: []*gltf.Primitive{prim}}}
	return doc
}

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLTF("/nonexistent/path.glb")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestGLTFFromDocument(t *testing.T) {
	mesh, err := NewGLTFLoader().FromDocument(quadDocument(true))
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	if mesh.VertexCount() != 4 || mesh.FaceCount() != 2 {
		t.Fatalf("got %d vertices, %d faces; want 4, 2", mesh.VertexCount(), mesh.FaceCount())
	}
	if got := mesh.Polygons[1]; got[0] != 0 || got[1] != 2 || got[2] != 3 {
		t.Errorf("second triangle = %v, want [0 2 3]", got)
	}
	if mesh.BoundsMax.X != 1 || mesh.BoundsMax.Y != 1 {
		t.Errorf("bounds max = %v", mesh.BoundsMax)
	}
}

func TestGLTFSequential(t *testing.T) {
	mesh, err := NewGLTFLoader().FromDocument(quadDocument(false))
	if err != nil {
		t.Fatalf("FromDocument: %v", err)
	}
	// Four vertices without indices make one triangle; the leftover is
	// dropped.
	if mesh.FaceCount() != 1 {
		t.Errorf("faces = %d, want 1", mesh.FaceCount())
	}
}

func TestGLTFFlipWinding(t *testing.T) {
	mesh, err := (&GLTFLoader{FlipWinding: true}).FromDocument(quadDocument(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := mesh.Polygons[0]; got[0] != 0 || got[1] != 2 || got[2] != 1 {
		t.Errorf("flipped triangle = %v, want [0 2 1]", got)
	}
}

func TestGLTFRoundTripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	if err := gltf.SaveBinary(quadDocument(true), path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	mesh, err := Load(path, Options{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if mesh.Name != "quad.glb" || mesh.TriangleCount() != 2 {
		t.Errorf("mesh %q with %d triangles", mesh.Name, mesh.TriangleCount())
	}
}
