package subdivide

import (
	"github.com/philipparndt/geodome/pkg/geometry"
)

// EdgeCut returns n+1 points evenly spaced from a to b, both ends included.
//
// Every point is the average of the walk from a towards b and the walk from
// b towards a, so EdgeCut(b, a, n) is exactly EdgeCut(a, b, n) reversed.
// Neighbouring faces therefore produce bit-identical points on a shared edge.
func EdgeCut(a, b geometry.Vector3, n int) []geometry.Vector3 {
	ab := b.Sub(a)
	ba := a.Sub(b)

	points := make([]geometry.Vector3, n+1)
	for k := 0; k <= n; k++ {
		forward := step(a, b, ab, k, n)
		backward := step(b, a, ba, n-k, n)
		points[k] = forward.Midpoint(backward)
	}
	return points
}

// step returns the k-th of n+1 points from "from" to "to"
func step(from, to, dir geometry.Vector3, k, n int) geometry.Vector3 {
	switch k {
	case 0:
		return from
	case n:
		return to
	}
	return from.Add(dir.Mul(float64(k) / float64(n)))
}

// Lattice returns the barycentric lattice of triangle (v1, v2, v3) at the
// given frequency, row by row. Row 0 is v1 alone; row i holds i+1 points
// running from the v1-v3 edge to the v1-v2 edge; the last row is the
// v3-v2 edge.
func Lattice(v1, v2, v3 geometry.Vector3, frequency int) []geometry.Vector3 {
	left := EdgeCut(v1, v3, frequency)
	right := EdgeCut(v1, v2, frequency)

	points := make([]geometry.Vector3, 0, LatticePointCount(frequency))
	points = append(points, v1)
	for row := 1; row <= frequency; row++ {
		points = append(points, EdgeCut(left[row], right[row], row)...)
	}
	return points
}

// LatticeFaces connects a lattice of the given frequency into triangles.
// All downward triangles come first, row by row, then all upward ones.
// Each face keeps the winding of the source triangle.
func LatticeFaces(frequency int) [][3]int {
	faces := make([][3]int, 0, FrequencyTriangleCount(frequency))

	for row := 0; row < frequency; row++ {
		start := row * (row + 1) / 2
		length := row + 1
		for i := start; i < start+length; i++ {
			faces = append(faces, [3]int{i, i + length + 1, i + length})
		}
	}

	for row := 0; row < frequency-1; row++ {
		start := row * (row + 1) / 2
		length := row + 1
		for i := start; i < start+length; i++ {
			faces = append(faces, [3]int{i + length, i + length + 1, i + 2*length + 2})
		}
	}

	return faces
}

// Frequency splits a triangle into frequency² triangles
func Frequency(tri geometry.Triangle, frequency int) ([]geometry.Triangle, error) {
	if err := CheckFrequency(frequency); err != nil {
		return nil, err
	}
	return appendFrequency(nil, tri, frequency, LatticeFaces(frequency)), nil
}

// ByFrequency applies Frequency to every triangle and concatenates the results
func ByFrequency(tris []geometry.Triangle, frequency int) ([]geometry.Triangle, error) {
	if err := CheckFrequency(frequency); err != nil {
		return nil, err
	}

	out := make([]geometry.Triangle, 0, len(tris)*FrequencyTriangleCount(frequency))
	faces := LatticeFaces(frequency)
	for _, tri := range tris {
		out = appendFrequency(out, tri, frequency, faces)
	}
	return out, nil
}

// appendFrequency appends the split of one triangle to out
func appendFrequency(out []geometry.Triangle, tri geometry.Triangle, frequency int, faces [][3]int) []geometry.Triangle {
	if frequency == 1 {
		return append(out, tri)
	}

	points := Lattice(tri.V1, tri.V2, tri.V3, frequency)
	for _, f := range faces {
		out = append(out, geometry.NewTriangle(points[f[0]], points[f[1]], points[f[2]]))
	}
	return out
}
