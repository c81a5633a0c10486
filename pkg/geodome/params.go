package geodome

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/geodome/pkg/polyhedra"
	"github.com/philipparndt/geodome/pkg/subdivide"
)

// Algorithm selects how the resolution is applied to each face
type Algorithm int

const (
	// Frequency splits each face into resolution² triangles (edge-cut)
	Frequency Algorithm = iota + 1
	// Depth splits each face into 4^(resolution-1) triangles (recursive midpoint)
	Depth
)

// String returns the canonical lower-case name
func (a Algorithm) String() string {
	switch a {
	case Frequency:
		return "frequency"
	case Depth:
		return "depth"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm accepts "1"/"2" or a name
func ParseAlgorithm(value string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "frequency", "freq", "edge-cut":
		return Frequency, nil
	case "2", "depth", "recursive":
		return Depth, nil
	}
	return 0, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParameter, value)
}

// Resolution range of the interactive slider and the keypad presets
const (
	MinResolution       = 1
	MaxSliderResolution = 20
)

// Presets are the resolutions bound to keypad keys 1 to 9
var Presets = []int{1, 3, 5, 7, 9, 11, 13, 15, 17}

// Params describes one dome. Resolution is read as a frequency or as a
// depth depending on Algorithm.
type Params struct {
	Base       polyhedra.Shape
	Resolution int
	Algorithm  Algorithm
	Spherize   bool
	HalfDome   bool
}

// DefaultParams returns a spherized frequency-3 icosahedron
func DefaultParams() Params {
	return Params{
		Base:       polyhedra.Icosahedron,
		Resolution: 3,
		Algorithm:  Frequency,
		Spherize:   true,
		HalfDome:   false,
	}
}

// Validate checks every field without generating anything
func (p Params) Validate() error {
	if !p.Base.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidBase, int(p.Base))
	}
	switch p.Algorithm {
	case Frequency:
		return subdivide.CheckFrequency(p.Resolution)
	case Depth:
		return subdivide.CheckDepth(p.Resolution)
	}
	return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidParameter, int(p.Algorithm))
}

// FacesPerBaseFace is how many triangles each base face turns into
func (p Params) FacesPerBaseFace() int {
	if p.Algorithm == Depth {
		return subdivide.DepthTriangleCount(p.Resolution)
	}
	return subdivide.FrequencyTriangleCount(p.Resolution)
}

// String gives a short human readable summary
func (p Params) String() string {
	var b strings.Builder
	b.WriteString(p.Base.String())
	b.WriteString(" ")
	b.WriteString(p.Algorithm.String())
	b.WriteString("=")
	b.WriteString(strconv.Itoa(p.Resolution))
	if p.HalfDome {
		b.WriteString(" half")
	}
	if p.Spherize {
		b.WriteString(" spherized")
	}
	return b.String()
}
