package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/flatshade/pkg/math3d"
)

// OBJLoader reads Wavefront OBJ geometry. Only vertex positions and faces
// are used; texture coordinates, normals, groups and materials are
// skipped.
type OBJLoader struct {
	// Triangulate fans polygons with more than three vertices into
	// triangles. When false, quads and n-gons are kept as-is.
	Triangulate bool
}

// NewOBJLoader creates an OBJ loader with default options.
func NewOBJLoader() *OBJLoader {
	return &OBJLoader{}
}

// LoadOBJ loads an OBJ file without triangulation.
func LoadOBJ(path string) (*Mesh, error) {
	return NewOBJLoader().Load(path)
}

// Load reads the OBJ file at path.
func (l *OBJLoader) Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := l.Read(f)
	if err != nil {
		return nil, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// Read parses OBJ data from r.
func (l *OBJLoader) Read(r io.Reader) (*Mesh, error) {
	mesh := NewMesh("")
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			mesh.AddVertex(v)
		case "f":
			poly, err := parseFace(fields[1:], len(mesh.Vertices))
			if err != nil {
				return nil, fmt.Errorf("obj line %d: %w", line, err)
			}
			if l.Triangulate {
				mesh.Polygons = append(mesh.Polygons, fan(poly)...)
			} else {
				mesh.Polygons = append(mesh.Polygons, poly)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var xyz [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("parse vertex: %w", err)
		}
		xyz[i] = f
	}
	return math3d.V3(xyz[0], xyz[1], xyz[2]), nil
}

// parseFace resolves face references (i, i/t, i//n, i/t/n) to zero-based
// vertex indices. Negative references count back from the last vertex
// read so far.
func parseFace(fields []string, nverts int) ([]int, error) {
	poly := make([]int, 0, len(fields))
	for _, ref := range fields {
		vi, _, _ := strings.Cut(ref, "/")
		n, err := strconv.Atoi(vi)
		if err != nil {
			return nil, fmt.Errorf("parse face index %q: %w", ref, err)
		}
		switch {
		case n > 0:
			n--
		case n < 0:
			n += nverts
		default:
			return nil, fmt.Errorf("face index 0 is invalid")
		}
		poly = append(poly, n)
	}
	return poly, nil
}
