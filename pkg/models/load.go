package models

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Load for unknown file extensions.
var ErrUnsupportedFormat = errors.New("unsupported model format")

// Options controls Load.
type Options struct {
	// Triangulate fans OBJ polygons into triangles. glTF triangle
	// primitives are always triangles.
	Triangulate bool
}

// Load reads a mesh, choosing the loader by file extension: .obj, .gltf
// or .glb.
func Load(path string, opts Options) (*Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return (&OBJLoader{Triangulate: opts.Triangulate}).Load(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	default:
		return nil, fmt.Errorf("%w: %q (use .obj, .gltf or .glb)", ErrUnsupportedFormat, ext)
	}
}
