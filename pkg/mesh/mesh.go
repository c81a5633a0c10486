// Package mesh turns triangle soup into an indexed mesh.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/geodome/pkg/geometry"
)

var (
	// ErrDegenerateVertex is returned for a vertex that cannot be used, such
	// as a NaN coordinate or a zero vector that has to be normalized
	ErrDegenerateVertex = errors.New("degenerate vertex")
	// ErrInvalidMesh is returned when a mesh breaks its indexing invariants
	ErrInvalidMesh = errors.New("invalid mesh")
)

// Face holds three vertex indices in winding order
type Face [3]int

// IndexedMesh is a list of distinct vertices plus faces that reference them
type IndexedMesh struct {
	Vertices []geometry.Vector3
	Faces    []Face
}

// Weld merges equal corners of the triangles into shared vertices.
// Vertices are numbered in the order they are first seen and every face
// keeps the corner order of its triangle. Corners are equal only when
// all coordinates compare equal; nearby points are never merged.
func Weld(tris []geometry.Triangle) (*IndexedMesh, error) {
	m := &IndexedMesh{
		Vertices: make([]geometry.Vector3, 0, len(tris)/2+2),
		Faces:    make([]Face, 0, len(tris)),
	}
	index := make(map[geometry.Vector3]int, len(tris)/2+2)

	for i, tri := range tris {
		var face Face
		for j, v := range tri.Vertices() {
			if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
				return nil, fmt.Errorf("%w: NaN in triangle %d corner %d", ErrDegenerateVertex, i, j)
			}
			idx, ok := index[v]
			if !ok {
				idx = len(m.Vertices)
				index[v] = idx
				m.Vertices = append(m.Vertices, v)
			}
			face[j] = idx
		}
		if face[0] == face[1] || face[1] == face[2] || face[0] == face[2] {
			return nil, fmt.Errorf("%w: triangle %d has coincident corners", ErrInvalidMesh, i)
		}
		m.Faces = append(m.Faces, face)
	}

	return m, nil
}

// Triangles expands the faces back into free-standing triangles
func (m *IndexedMesh) Triangles() []geometry.Triangle {
	tris := make([]geometry.Triangle, len(m.Faces))
	for i, f := range m.Faces {
		tris[i] = geometry.NewTriangle(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
	}
	return tris
}

// Triangle returns face i as a free-standing triangle
func (m *IndexedMesh) Triangle(i int) geometry.Triangle {
	f := m.Faces[i]
	return geometry.NewTriangle(m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]])
}

// BoundingBox returns the bounds of all vertices
func (m *IndexedMesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundsOf(m.Vertices)
}

// Validate checks that vertices are distinct and every face references
// three different, existing vertices
func (m *IndexedMesh) Validate() error {
	seen := make(map[geometry.Vector3]int, len(m.Vertices))
	for i, v := range m.Vertices {
		if j, dup := seen[v]; dup {
			return fmt.Errorf("%w: vertices %d and %d are equal", ErrInvalidMesh, j, i)
		}
		seen[v] = i
	}

	for i, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("%w: face %d references vertex %d of %d", ErrInvalidMesh, i, idx, len(m.Vertices))
			}
		}
		if f[0] == f[1] || f[1] == f[2] || f[0] == f[2] {
			return fmt.Errorf("%w: face %d repeats a vertex: %v", ErrInvalidMesh, i, f)
		}
	}
	return nil
}
