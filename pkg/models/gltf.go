package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// GLTFLoader loads GLTF/GLB files into Mesh format.
type GLTFLoader struct {
	// FlipWinding reverses every triangle's vertex order.
	FlipWinding bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{}
}

// LoadGLTF loads a .gltf or .glb file.
func LoadGLTF(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens a GLTF or GLB file and merges the triangle primitives of all of
// its meshes into one Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	mesh, err := l.FromDocument(doc)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// FromDocument converts an already decoded document.
func (l *GLTFLoader) FromDocument(doc *gltf.Document) (*Mesh, error) {
	mesh := NewMesh("")
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Skip non-triangle primitives (lines, points, strips)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if posIdx >= len(doc.Accessors) {
			return fmt.Errorf("position accessor %d out of range", posIdx)
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		base := len(mesh.Vertices)
		for _, p := range positions {
			mesh.AddVertex(math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		var indices []uint32
		if prim.Indices != nil {
			if *prim.Indices >= len(doc.Accessors) {
				return fmt.Errorf("index accessor %d out of range", *prim.Indices)
			}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := base+int(indices[i]), base+int(indices[i+1]), base+int(indices[i+2])
			if l.FlipWinding {
				b, c = c, b
			}
			mesh.AddPolygon(a, b, c)
		}
	}
	return nil
}
