package mesh

import (
	"fmt"

	"github.com/philipparndt/geodome/pkg/geometry"
)

// Spherize projects every vertex onto the unit sphere around the origin.
// It returns a new mesh; faces are copied unchanged.
func Spherize(m *IndexedMesh) (*IndexedMesh, error) {
	out := &IndexedMesh{
		Vertices: make([]geometry.Vector3, len(m.Vertices)),
		Faces:    make([]Face, len(m.Faces)),
	}
	copy(out.Faces, m.Faces)

	for i, v := range m.Vertices {
		unit, err := unitVector(v)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		out.Vertices[i] = unit
	}
	return out, nil
}

func unitVector(v geometry.Vector3) (geometry.Vector3, error) {
	if !v.IsFinite() {
		return geometry.Vector3{}, fmt.Errorf("%w: %v is not finite", ErrDegenerateVertex, v)
	}
	length := v.Length()
	if length == 0 {
		return geometry.Vector3{}, fmt.Errorf("%w: cannot normalize the zero vector", ErrDegenerateVertex)
	}
	return v.Mul(1 / length), nil
}
