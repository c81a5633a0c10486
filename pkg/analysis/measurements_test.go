package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/geodome/pkg/geodome"
	"github.com/philipparndt/geodome/pkg/geometry"
	"github.com/philipparndt/geodome/pkg/mesh"
	"github.com/philipparndt/geodome/pkg/polyhedra"
)

func sphere(t *testing.T, frequency int, half bool) *mesh.IndexedMesh {
	t.Helper()
	m, err := geodome.Generate(geodome.Params{
		Base:       polyhedra.Icosahedron,
		Resolution: frequency,
		Algorithm:  geodome.Frequency,
		Spherize:   true,
		HalfDome:   half,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return m
}

func TestAnalyzeMeshCounts(t *testing.T) {
	result := AnalyzeMesh(sphere(t, 3, false))

	if result.VertexCount != 92 {
		t.Errorf("expected 92 vertices, got %d", result.VertexCount)
	}
	if result.TriangleCount != 180 {
		t.Errorf("expected 180 triangles, got %d", result.TriangleCount)
	}
	if result.EdgeCount != 270 {
		t.Errorf("expected 270 edges, got %d", result.EdgeCount)
	}
	if result.BoundaryEdgeCount != 0 {
		t.Errorf("expected no boundary edges, got %d", result.BoundaryEdgeCount)
	}
	if result.EulerCharacteristic != 2 {
		t.Errorf("expected Euler characteristic 2, got %d", result.EulerCharacteristic)
	}
	if math.Abs(result.MeanRadius-1) > 1e-12 {
		t.Errorf("expected mean radius 1, got %v", result.MeanRadius)
	}
	if result.MinEdgeLength > result.AvgEdgeLength || result.AvgEdgeLength > result.MaxEdgeLength {
		t.Errorf("edge statistics out of order: %v %v %v", result.MinEdgeLength, result.AvgEdgeLength, result.MaxEdgeLength)
	}
}

func TestAnalyzeHalfDome(t *testing.T) {
	result := AnalyzeMesh(sphere(t, 2, true))

	if result.BoundaryEdgeCount != 20 {
		t.Errorf("expected 20 boundary edges, got %d", result.BoundaryEdgeCount)
	}
	if result.EulerCharacteristic != 1 {
		t.Errorf("expected Euler characteristic 1, got %d", result.EulerCharacteristic)
	}
	if result.BoundingBox.Min.Z < -1e-12 {
		t.Errorf("half dome reaches below the equator: %v", result.BoundingBox.Min.Z)
	}
}

func TestStrutClassesTwoFrequency(t *testing.T) {
	result := AnalyzeMesh(sphere(t, 2, false))

	expected := []StrutClass{
		{Label: "A", ChordFactor: 0.54653, Count: 60},
		{Label: "B", ChordFactor: 0.61803, Count: 60},
	}
	if len(result.Struts) != len(expected) {
		t.Fatalf("expected %d strut classes, got %d: %+v", len(expected), len(result.Struts), result.Struts)
	}
	for i, want := range expected {
		got := result.Struts[i]
		if got.Label != want.Label || got.Count != want.Count {
			t.Errorf("strut %d: expected %s x%d, got %s x%d", i, want.Label, want.Count, got.Label, got.Count)
		}
		if math.Abs(got.ChordFactor-want.ChordFactor) > 1e-5 {
			t.Errorf("strut %d: expected chord factor %v, got %v", i, want.ChordFactor, got.ChordFactor)
		}
	}
}

func TestStrutClassesThreeFrequency(t *testing.T) {
	result := AnalyzeMesh(sphere(t, 3, false))

	counts := []int{60, 90, 120}
	if len(result.Struts) != len(counts) {
		t.Fatalf("expected %d strut classes, got %d", len(counts), len(result.Struts))
	}
	total := 0
	for i, c := range counts {
		if result.Struts[i].Count != c {
			t.Errorf("strut %s: expected %d, got %d", result.Struts[i].Label, c, result.Struts[i].Count)
		}
		total += result.Struts[i].Count
	}
	if total != result.EdgeCount {
		t.Errorf("strut counts add up to %d, expected %d", total, result.EdgeCount)
	}
}

func TestStrutLabel(t *testing.T) {
	tests := map[int]string{0: "A", 1: "B", 25: "Z", 26: "AA", 27: "AB", 52: "BA"}
	for i, want := range tests {
		if got := strutLabel(i); got != want {
			t.Errorf("strutLabel(%d): expected %s, got %s", i, want, got)
		}
	}
}

func TestFindEdges(t *testing.T) {
	result := AnalyzeMesh(sphere(t, 2, false))

	longest := FindLongestEdges(result, 5)
	if len(longest) != 5 {
		t.Fatalf("expected 5 edges, got %d", len(longest))
	}
	if longest[0].Length != result.MaxEdgeLength {
		t.Errorf("expected longest %v, got %v", result.MaxEdgeLength, longest[0].Length)
	}

	shortest := FindShortestEdges(result, 1000)
	if len(shortest) != result.EdgeCount {
		t.Errorf("expected count clamped to %d, got %d", result.EdgeCount, len(shortest))
	}
	if shortest[0].Length != result.MinEdgeLength {
		t.Errorf("expected shortest %v, got %v", result.MinEdgeLength, shortest[0].Length)
	}

	a := result.Struts[0]
	inRange := FindEdgesByLength(result, a.Length-1e-4, a.Length+1e-4)
	if len(inRange) != a.Count {
		t.Errorf("expected %d edges of class A, got %d", a.Count, len(inRange))
	}
}

func TestFormatVector(t *testing.T) {
	got := FormatVector(geometry.NewVector3(1, -0.5, 0.25))
	if got != "(1.000000, -0.500000, 0.250000)" {
		t.Errorf("unexpected format %q", got)
	}
	if FormatMeasurement(2, "") != "2.000000 units" {
		t.Errorf("unexpected measurement format %q", FormatMeasurement(2, ""))
	}
}

func TestFaces(t *testing.T) {
	m := sphere(t, 2, false)
	faces := Faces(m)
	if len(faces) != len(m.Faces) {
		t.Fatalf("expected %d faces, got %d", len(m.Faces), len(faces))
	}

	total := 0.0
	for i, f := range faces {
		if f.Index != i {
			t.Errorf("face %d has index %d", i, f.Index)
		}
		total += f.Area
	}
	if math.Abs(total-AnalyzeMesh(m).SurfaceArea) > 1e-9 {
		t.Errorf("face areas add up to %v", total)
	}

	SortFacesByArea(faces, true)
	for i := 1; i < len(faces); i++ {
		if faces[i].Area > faces[i-1].Area {
			t.Fatalf("faces not sorted descending at %d", i)
		}
	}
	SortFacesByArea(faces, false)
	if faces[0].Area > faces[len(faces)-1].Area {
		t.Error("faces not sorted ascending")
	}
}

func TestFindNearestVertex(t *testing.T) {
	m := sphere(t, 2, false)

	idx, dist := FindNearestVertex(m, m.Vertices[7].Mul(1.5))
	if idx != 7 {
		t.Errorf("expected vertex 7, got %d", idx)
	}
	if math.Abs(dist-0.5) > 1e-9 {
		t.Errorf("expected distance 0.5, got %v", dist)
	}

	if idx, _ := FindNearestVertex(&mesh.IndexedMesh{}, geometry.Vector3{}); idx != -1 {
		t.Errorf("expected -1 for an empty mesh, got %d", idx)
	}
}
