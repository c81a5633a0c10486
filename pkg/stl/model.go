package stl

import (
	"github.com/philipparndt/geodome/pkg/geometry"
	"github.com/philipparndt/geodome/pkg/mesh"
)

// Facet is one STL triangle with its stored normal
type Facet struct {
	Normal geometry.Vector3
	geometry.Triangle
}

// Model represents a complete STL model
type Model struct {
	Name   string
	Facets []Facet
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:   name,
		Facets: make([]Facet, 0),
	}
}

// FromMesh expands an indexed mesh into facets. Normals follow the face winding.
func FromMesh(name string, m *mesh.IndexedMesh) *Model {
	model := &Model{
		Name:   name,
		Facets: make([]Facet, len(m.Faces)),
	}
	for i := range m.Faces {
		tri := m.Triangle(i)
		model.Facets[i] = Facet{Normal: tri.CalculateNormal(), Triangle: tri}
	}
	return model
}

// AddFacet adds a triangle to the model
func (m *Model) AddFacet(normal geometry.Vector3, triangle geometry.Triangle) {
	m.Facets = append(m.Facets, Facet{Normal: normal, Triangle: triangle})
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Facets)
}

// Triangles returns the facets without their normals
func (m *Model) Triangles() []geometry.Triangle {
	tris := make([]geometry.Triangle, len(m.Facets))
	for i, f := range m.Facets {
		tris[i] = f.Triangle
	}
	return tris
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, f := range m.Facets {
		bbox.Extend(f.V1)
		bbox.Extend(f.V2)
		bbox.Extend(f.V3)
	}
	return bbox
}

// SurfaceArea calculates the total surface area of the model
func (m *Model) SurfaceArea() float64 {
	totalArea := 0.0
	for _, f := range m.Facets {
		totalArea += f.Area()
	}
	return totalArea
}
