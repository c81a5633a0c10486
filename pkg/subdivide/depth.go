package subdivide

import (
	"github.com/philipparndt/geodome/pkg/geometry"
)

type pending struct {
	tri   geometry.Triangle
	depth int
}

// Depth splits a triangle into 4^(depth-1) triangles by repeated midpoint
// subdivision. Each round replaces (v1, v2, v3) with the corner triangles
// (v1, a, c), (v2, b, a), (v3, c, b) and the centre (a, b, c), where a, b
// and c are the midpoints of v1-v2, v2-v3 and v3-v1. Output is in
// depth-first order.
func Depth(tri geometry.Triangle, depth int) ([]geometry.Triangle, error) {
	if err := CheckDepth(depth); err != nil {
		return nil, err
	}
	return appendDepth(make([]geometry.Triangle, 0, DepthTriangleCount(depth)), tri, depth), nil
}

// ByDepth applies Depth to every triangle and concatenates the results
func ByDepth(tris []geometry.Triangle, depth int) ([]geometry.Triangle, error) {
	if err := CheckDepth(depth); err != nil {
		return nil, err
	}

	out := make([]geometry.Triangle, 0, len(tris)*DepthTriangleCount(depth))
	for _, tri := range tris {
		out = appendDepth(out, tri, depth)
	}
	return out, nil
}

// appendDepth walks the split tree with an explicit stack. The stack never
// holds more than 3*(depth-1)+1 entries.
func appendDepth(out []geometry.Triangle, tri geometry.Triangle, depth int) []geometry.Triangle {
	stack := make([]pending, 0, 3*depth+1)
	stack = append(stack, pending{tri: tri, depth: depth})

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.depth == 1 {
			out = append(out, p.tri)
			continue
		}

		v1, v2, v3 := p.tri.V1, p.tri.V2, p.tri.V3
		a := v1.Midpoint(v2)
		b := v2.Midpoint(v3)
		c := v3.Midpoint(v1)
		next := p.depth - 1

		// Pushed in reverse so they pop as v1, v2, v3 corner, then centre.
		stack = append(stack,
			pending{geometry.NewTriangle(a, b, c), next},
			pending{geometry.NewTriangle(v3, c, b), next},
			pending{geometry.NewTriangle(v2, b, a), next},
			pending{geometry.NewTriangle(v1, a, c), next},
		)
	}

	return out
}
