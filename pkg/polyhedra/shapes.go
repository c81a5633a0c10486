// Package polyhedra holds the seed solids that geodesic domes are grown from.
package polyhedra

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/geodome/pkg/geometry"
)

// ErrInvalidBase is returned for an unknown base shape
var ErrInvalidBase = errors.New("invalid base shape")

// Shape selects one of the seed solids
type Shape int

// Shapes in menu order. The numeric values are the public selector ids.
const (
	Icosahedron Shape = iota + 1
	Octahedron
	Tetrahedron
	Triangle
)

// Shapes lists every valid shape
var Shapes = []Shape{Icosahedron, Octahedron, Tetrahedron, Triangle}

var shapeNames = map[Shape]string{
	Icosahedron: "icosahedron",
	Octahedron:  "octahedron",
	Tetrahedron: "tetrahedron",
	Triangle:    "triangle",
}

var shapeAliases = map[string]Shape{
	"icosahedron": Icosahedron,
	"icosa":       Icosahedron,
	"octahedron":  Octahedron,
	"octa":        Octahedron,
	"tetrahedron": Tetrahedron,
	"tetra":       Tetrahedron,
	"triangle":    Triangle,
	"tri":         Triangle,
}

// String returns the canonical lower-case name
func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Valid reports whether s names a known shape
func (s Shape) Valid() bool {
	_, ok := shapeNames[s]
	return ok
}

// ParseShape accepts a selector id ("1".."4") or a shape name
func ParseShape(value string) (Shape, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if id, err := strconv.Atoi(v); err == nil {
		s := Shape(id)
		if !s.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrInvalidBase, id)
		}
		return s, nil
	}
	if s, ok := shapeAliases[v]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBase, value)
}

// Face indexes three vertices of a base solid. On the solids and half
// domes the cross product of (b-a) and (c-a) points away from the origin.
type Face [3]int

// Base is the vertex and face table of a seed solid
type Base struct {
	Vertices []geometry.Vector3
	Faces    []Face
}

// Triangles expands the face table into free-standing triangles
func (b Base) Triangles() []geometry.Triangle {
	tris := make([]geometry.Triangle, len(b.Faces))
	for i, f := range b.Faces {
		tris[i] = geometry.NewTriangle(b.Vertices[f[0]], b.Vertices[f[1]], b.Vertices[f[2]])
	}
	return tris
}

// Get returns a copy of the table for shape. The half-dome variant keeps
// only the upper hemisphere. The single triangle has no half variant and
// ignores halfDome.
func Get(shape Shape, halfDome bool) (Base, error) {
	var t *table
	switch shape {
	case Icosahedron:
		t = &icosahedronFull
		if halfDome {
			t = &icosahedronHalf
		}
	case Octahedron:
		t = &octahedronFull
		if halfDome {
			t = &octahedronHalf
		}
	case Tetrahedron:
		t = &tetrahedronFull
		if halfDome {
			t = &tetrahedronHalf
		}
	case Triangle:
		t = &triangleFull
	default:
		return Base{}, fmt.Errorf("%w: %d", ErrInvalidBase, int(shape))
	}
	return t.base(), nil
}

type table struct {
	verts [][3]float64
	faces []Face
}

func (t *table) base() Base {
	b := Base{
		Vertices: make([]geometry.Vector3, len(t.verts)),
		Faces:    make([]Face, len(t.faces)),
	}
	for i, v := range t.verts {
		b.Vertices[i] = geometry.NewVector3(v[0], v[1], v[2])
	}
	copy(b.Faces, t.faces)
	return b
}
