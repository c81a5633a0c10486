// Package subdivide splits triangles into smaller triangles, either on a
// regular edge-cut lattice (frequency) or by repeated midpoint splits (depth).
package subdivide

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned for a frequency or depth outside its valid range
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	// MaxFrequency bounds edge-cut subdivision to MaxFrequency² triangles per face
	MaxFrequency = 256
	// MaxDepth bounds midpoint subdivision to 4^(MaxDepth-1) triangles per face
	MaxDepth = 9
)

// CheckFrequency validates an edge-cut frequency
func CheckFrequency(frequency int) error {
	if frequency < 1 || frequency > MaxFrequency {
		return fmt.Errorf("%w: frequency %d not in [1, %d]", ErrInvalidParameter, frequency, MaxFrequency)
	}
	return nil
}

// CheckDepth validates a recursion depth
func CheckDepth(depth int) error {
	if depth < 1 || depth > MaxDepth {
		return fmt.Errorf("%w: depth %d not in [1, %d]", ErrInvalidParameter, depth, MaxDepth)
	}
	return nil
}

// FrequencyTriangleCount is the number of triangles one face splits into
func FrequencyTriangleCount(frequency int) int {
	return frequency * frequency
}

// LatticePointCount is the number of lattice points generated for one face
func LatticePointCount(frequency int) int {
	return (frequency + 1) * (frequency + 2) / 2
}

// DepthTriangleCount is the number of triangles one face splits into
func DepthTriangleCount(depth int) int {
	return 1 << (2 * uint(depth-1))
}
