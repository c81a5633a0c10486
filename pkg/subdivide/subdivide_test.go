package subdivide

import (
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/geodome/pkg/geometry"
)

// Corners of an icosahedron face; awkward values on purpose.
var (
	p = geometry.NewVector3(0.850651, 0.276393, 0.447214)
	q = geometry.NewVector3(0.000000, 0.894427, 0.447214)
	r = geometry.NewVector3(0.000000, 0.000000, 1.000000)
	s = geometry.NewVector3(0.525731, 0.723607, -0.447214)
)

func sumArea(tris []geometry.Triangle) float64 {
	total := 0.0
	for _, tri := range tris {
		total += tri.Area()
	}
	return total
}

func TestFrequencyCounts(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	for f := 1; f <= 12; f++ {
		tris, err := Frequency(tri, f)
		if err != nil {
			t.Fatalf("Frequency(%d) failed: %v", f, err)
		}
		if len(tris) != f*f {
			t.Errorf("Frequency(%d): expected %d triangles, got %d", f, f*f, len(tris))
		}

		points := Lattice(p, q, r, f)
		expected := (f + 1) * (f + 2) / 2
		if len(points) != expected {
			t.Errorf("Lattice(%d): expected %d points, got %d", f, expected, len(points))
		}
		if LatticePointCount(f) != expected {
			t.Errorf("LatticePointCount(%d): expected %d, got %d", f, expected, LatticePointCount(f))
		}
	}
}

func TestFrequencyOneIsIdentity(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	tris, err := Frequency(tri, 1)
	if err != nil {
		t.Fatalf("Frequency(1) failed: %v", err)
	}
	if len(tris) != 1 || tris[0] != tri {
		t.Errorf("Frequency(1): expected the input triangle, got %v", tris)
	}
}

func TestFrequencyInvalid(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	for _, f := range []int{0, -3, MaxFrequency + 1} {
		if _, err := Frequency(tri, f); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Frequency(%d): expected ErrInvalidParameter, got %v", f, err)
		}
		if _, err := ByFrequency([]geometry.Triangle{tri}, f); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ByFrequency(%d): expected ErrInvalidParameter, got %v", f, err)
		}
	}
}

func TestEdgeCutEndpoints(t *testing.T) {
	for n := 1; n <= 9; n++ {
		points := EdgeCut(p, q, n)
		if len(points) != n+1 {
			t.Fatalf("EdgeCut(%d): expected %d points, got %d", n, n+1, len(points))
		}
		if points[0] != p || points[n] != q {
			t.Errorf("EdgeCut(%d): endpoints changed: %v, %v", n, points[0], points[n])
		}
	}
}

func TestEdgeCutIsSymmetric(t *testing.T) {
	for n := 1; n <= 20; n++ {
		forward := EdgeCut(p, s, n)
		backward := EdgeCut(s, p, n)
		for k := 0; k <= n; k++ {
			if forward[k] != backward[n-k] {
				t.Errorf("EdgeCut(%d) point %d: %v != %v", n, k, forward[k], backward[n-k])
			}
		}
	}
}

func TestEdgeCutEvenlySpaced(t *testing.T) {
	n := 7
	points := EdgeCut(p, q, n)
	want := p.Distance(q) / float64(n)
	for k := 1; k <= n; k++ {
		if d := points[k-1].Distance(points[k]); math.Abs(d-want) > 1e-12 {
			t.Errorf("segment %d: expected length %v, got %v", k, want, d)
		}
	}
}

func sharedPoints(a, b []geometry.Vector3) int {
	seen := make(map[geometry.Vector3]bool, len(a))
	for _, v := range a {
		seen[v] = true
	}
	shared := make(map[geometry.Vector3]bool)
	for _, v := range b {
		if seen[v] {
			shared[v] = true
		}
	}
	return len(shared)
}

func TestSharedEdgeBitIdentical(t *testing.T) {
	for f := 2; f <= 10; f++ {
		// p-q is v1-v2 in the first face and v2-v1 in the second.
		first := Lattice(p, q, r, f)
		second := Lattice(q, p, s, f)
		if got := sharedPoints(first, second); got != f+1 {
			t.Errorf("frequency %d, edge v1-v2: expected %d shared points, got %d", f, f+1, got)
		}

		// r-q is the last row (v3 to v2) of the first face and v1-v3 of the third.
		third := Lattice(r, s, q, f)
		if got := sharedPoints(first, third); got != f+1 {
			t.Errorf("frequency %d, edge v3-v2: expected %d shared points, got %d", f, f+1, got)
		}
	}
}

func TestLatticeRows(t *testing.T) {
	f := 4
	points := Lattice(p, q, r, f)
	if points[0] != p {
		t.Errorf("row 0: expected %v, got %v", p, points[0])
	}

	last := points[len(points)-f-1:]
	if last[0] != r || last[f] != q {
		t.Errorf("last row: expected %v..%v, got %v..%v", r, q, last[0], last[f])
	}
}

func TestLatticeFaces(t *testing.T) {
	expected := [][3]int{{0, 2, 1}, {1, 4, 3}, {2, 5, 4}, {1, 2, 4}}
	faces := LatticeFaces(2)
	if len(faces) != len(expected) {
		t.Fatalf("LatticeFaces(2): expected %d faces, got %d", len(expected), len(faces))
	}
	for i := range expected {
		if faces[i] != expected[i] {
			t.Errorf("LatticeFaces(2) face %d: expected %v, got %v", i, expected[i], faces[i])
		}
	}

	for f := 2; f <= 10; f++ {
		n := LatticePointCount(f)
		for i, face := range LatticeFaces(f) {
			for _, idx := range face {
				if idx < 0 || idx >= n {
					t.Errorf("LatticeFaces(%d) face %d: index %d out of range", f, i, idx)
				}
			}
		}
	}
}

func TestFrequencyTilesAndKeepsWinding(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	normal := tri.CalculateNormal()

	for _, f := range []int{2, 3, 6} {
		tris, _ := Frequency(tri, f)
		if got := sumArea(tris); math.Abs(got-tri.Area()) > 1e-9 {
			t.Errorf("frequency %d: expected area %v, got %v", f, tri.Area(), got)
		}
		for i, sub := range tris {
			if sub.CalculateNormal().Dot(normal) <= 0 {
				t.Errorf("frequency %d triangle %d: winding flipped", f, i)
			}
		}
	}
}

func TestByFrequency(t *testing.T) {
	tris := []geometry.Triangle{
		geometry.NewTriangle(p, q, r),
		geometry.NewTriangle(q, p, s),
	}
	out, err := ByFrequency(tris, 3)
	if err != nil {
		t.Fatalf("ByFrequency failed: %v", err)
	}
	if len(out) != 18 {
		t.Errorf("expected 18 triangles, got %d", len(out))
	}

	single, _ := Frequency(tris[1], 3)
	for i := range single {
		if out[9+i] != single[i] {
			t.Errorf("triangle %d of second face differs from Frequency", i)
		}
	}
}

func TestDepthCounts(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	for d := 1; d <= 6; d++ {
		tris, err := Depth(tri, d)
		if err != nil {
			t.Fatalf("Depth(%d) failed: %v", d, err)
		}
		expected := int(math.Pow(4, float64(d-1)))
		if len(tris) != expected {
			t.Errorf("Depth(%d): expected %d triangles, got %d", d, expected, len(tris))
		}
		if DepthTriangleCount(d) != expected {
			t.Errorf("DepthTriangleCount(%d): expected %d, got %d", d, expected, DepthTriangleCount(d))
		}
	}
}

func TestDepthOrder(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	tris, _ := Depth(tri, 2)

	a := p.Midpoint(q)
	b := q.Midpoint(r)
	c := r.Midpoint(p)
	expected := []geometry.Triangle{
		geometry.NewTriangle(p, a, c),
		geometry.NewTriangle(q, b, a),
		geometry.NewTriangle(r, c, b),
		geometry.NewTriangle(a, b, c),
	}
	for i := range expected {
		if tris[i] != expected[i] {
			t.Errorf("triangle %d: expected %v, got %v", i, expected[i], tris[i])
		}
	}

	// Depth-first: the first four of depth 3 split the first of depth 2.
	deeper, _ := Depth(tri, 3)
	corner, _ := Depth(expected[0], 2)
	for i := range corner {
		if deeper[i] != corner[i] {
			t.Errorf("depth 3 triangle %d: expected %v, got %v", i, corner[i], deeper[i])
		}
	}
}

func TestDepthOneIsIdentity(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	tris, _ := Depth(tri, 1)
	if len(tris) != 1 || tris[0] != tri {
		t.Errorf("Depth(1): expected the input triangle, got %v", tris)
	}
}

func TestDepthTilesAndKeepsWinding(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	normal := tri.CalculateNormal()
	tris, _ := Depth(tri, 4)

	if got := sumArea(tris); math.Abs(got-tri.Area()) > 1e-9 {
		t.Errorf("expected area %v, got %v", tri.Area(), got)
	}
	for i, sub := range tris {
		if sub.CalculateNormal().Dot(normal) <= 0 {
			t.Errorf("triangle %d: winding flipped", i)
		}
	}
}

func TestDepthInvalid(t *testing.T) {
	tri := geometry.NewTriangle(p, q, r)
	for _, d := range []int{0, -1, MaxDepth + 1} {
		if _, err := Depth(tri, d); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("Depth(%d): expected ErrInvalidParameter, got %v", d, err)
		}
		if _, err := ByDepth([]geometry.Triangle{tri}, d); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ByDepth(%d): expected ErrInvalidParameter, got %v", d, err)
		}
	}
}

func TestByDepth(t *testing.T) {
	tris := []geometry.Triangle{
		geometry.NewTriangle(p, q, r),
		geometry.NewTriangle(q, p, s),
	}
	out, err := ByDepth(tris, 3)
	if err != nil {
		t.Fatalf("ByDepth failed: %v", err)
	}
	if len(out) != 32 {
		t.Errorf("expected 32 triangles, got %d", len(out))
	}
}
