package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/geodome/pkg/geometry"
	"github.com/philipparndt/geodome/pkg/mesh"
)

// DefaultStrutTolerance is the length difference below which two edges
// count as the same strut
const DefaultStrutTolerance = 1e-5

// EdgeInfo contains information about an edge in the mesh
type EdgeInfo struct {
	A, B   int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Faces  int
}

// StrutClass groups edges of (nearly) equal length
type StrutClass struct {
	Label       string
	Length      float64
	ChordFactor float64
	Count       int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox         geometry.BoundingBox
	Dimensions          geometry.Vector3
	SurfaceArea         float64
	VertexCount         int
	TriangleCount       int
	EdgeCount           int
	BoundaryEdgeCount   int
	EulerCharacteristic int
	MeanRadius          float64
	MinEdgeLength       float64
	MaxEdgeLength       float64
	AvgEdgeLength       float64
	AllEdges            []EdgeInfo
	Struts              []StrutClass
}

// AnalyzeMesh measures an indexed mesh. Every shared edge is counted once.
func AnalyzeMesh(m *mesh.IndexedMesh) *MeasurementResult {
	edges := m.Edges()
	result := &MeasurementResult{
		BoundingBox:   m.BoundingBox(),
		VertexCount:   len(m.Vertices),
		TriangleCount: len(m.Faces),
		EdgeCount:     len(edges),
		AllEdges:      make([]EdgeInfo, 0, len(edges)),
	}
	result.Dimensions = result.BoundingBox.Size()
	result.EulerCharacteristic = result.VertexCount - result.EdgeCount + result.TriangleCount

	for _, tri := range m.Triangles() {
		result.SurfaceArea += tri.Area()
	}

	for _, v := range m.Vertices {
		result.MeanRadius += v.Length()
	}
	if len(m.Vertices) > 0 {
		result.MeanRadius /= float64(len(m.Vertices))
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, e := range edges {
		start, end := m.Vertices[e.A], m.Vertices[e.B]
		length := start.Distance(end)

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			A:      e.A,
			B:      e.B,
			Start:  start,
			End:    end,
			Length: length,
			Faces:  e.Faces,
		})
		if e.Faces == 1 {
			result.BoundaryEdgeCount++
		}

		totalLength += length
		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}
	}

	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	result.Struts = StrutClasses(result.AllEdges, result.MeanRadius, DefaultStrutTolerance)
	return result
}

// StrutClasses sorts edges by length and groups them into classes labelled
// A, B, C, ... from shortest to longest. A class starts at its shortest edge
// and takes every edge within tolerance of it. ChordFactor is the length
// divided by radius (zero when radius is zero).
func StrutClasses(edges []EdgeInfo, radius, tolerance float64) []StrutClass {
	lengths := make([]float64, len(edges))
	for i, e := range edges {
		lengths[i] = e.Length
	}
	sort.Float64s(lengths)

	var classes []StrutClass
	for _, l := range lengths {
		if n := len(classes); n > 0 && l-classes[n-1].Length <= tolerance {
			classes[n-1].Count++
			continue
		}
		classes = append(classes, StrutClass{
			Label:  strutLabel(len(classes)),
			Length: l,
			Count:  1,
		})
	}

	if radius > 0 {
		for i := range classes {
			classes[i].ChordFactor = classes[i].Length / radius
		}
	}
	return classes
}

// strutLabel returns A..Z, then AA, AB, ...
func strutLabel(i int) string {
	label := ""
	for {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
		if i < 0 {
			return label
		}
	}
}

// FaceInfo describes one panel of the mesh
type FaceInfo struct {
	Index     int
	Triangle  geometry.Triangle
	Area      float64
	Perimeter float64
}

// Faces lists every face with its area and perimeter, in mesh order
func Faces(m *mesh.IndexedMesh) []FaceInfo {
	faces := make([]FaceInfo, len(m.Faces))
	for i := range m.Faces {
		tri := m.Triangle(i)
		faces[i] = FaceInfo{
			Index:     i,
			Triangle:  tri,
			Area:      tri.Area(),
			Perimeter: tri.Perimeter(),
		}
	}
	return faces
}

// SortFacesByArea orders faces by area, largest first when descending
func SortFacesByArea(faces []FaceInfo, descending bool) {
	sort.SliceStable(faces, func(i, j int) bool {
		if descending {
			return faces[i].Area > faces[j].Area
		}
		return faces[i].Area < faces[j].Area
	})
}

// FindNearestVertex returns the index of the vertex nearest to point and
// its distance, or -1 for an empty mesh
func FindNearestVertex(m *mesh.IndexedMesh, point geometry.Vector3) (int, float64) {
	nearest := -1
	minDistance := math.MaxFloat64

	for i, vertex := range m.Vertices {
		if distance := point.Distance(vertex); distance < minDistance {
			minDistance = distance
			nearest = i
		}
	}

	return nearest, minDistance
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	if count > len(edges) {
		count = len(edges)
	}

	return edges[:count]
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
