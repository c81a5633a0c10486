// Package geodome builds geodesic spheres and domes: a seed solid is
// subdivided face by face, the pieces are welded into an indexed mesh and
// optionally pushed out onto the unit sphere.
package geodome

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/philipparndt/geodome/pkg/geometry"
	"github.com/philipparndt/geodome/pkg/mesh"
	"github.com/philipparndt/geodome/pkg/polyhedra"
	"github.com/philipparndt/geodome/pkg/subdivide"
)

// Errors reported by Generate
var (
	ErrInvalidBase      = polyhedra.ErrInvalidBase
	ErrInvalidParameter = subdivide.ErrInvalidParameter
	ErrDegenerateVertex = mesh.ErrDegenerateVertex
)

// Stage names a step of the pipeline for progress reports
type Stage string

// Pipeline stages in order
const (
	StageBase      Stage = "base"
	StageSubdivide Stage = "subdivide"
	StageWeld      Stage = "weld"
	StageSpherize  Stage = "spherize"
	StageDone      Stage = "done"
)

// ProgressFunc receives the finished stage and the overall fraction done
type ProgressFunc func(stage Stage, fraction float64)

// Generator runs the pipeline. The zero value is ready to use.
type Generator struct {
	Logger   *zap.Logger
	Progress ProgressFunc
}

// NewGenerator creates a generator that logs to logger
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{Logger: logger}
}

// Generate builds the mesh described by p with a default generator
func Generate(p Params) (*mesh.IndexedMesh, error) {
	return (&Generator{}).Generate(p)
}

// Generate builds the mesh described by p. No mesh is returned on error.
func (g *Generator) Generate(p Params) (*mesh.IndexedMesh, error) {
	log := g.logger()

	if err := p.Validate(); err != nil {
		return nil, err
	}

	base, err := polyhedra.Get(p.Base, p.HalfDome)
	if err != nil {
		return nil, err
	}
	raw := base.Triangles()
	log.Debug("base fetched",
		zap.Stringer("base", p.Base),
		zap.Bool("half_dome", p.HalfDome),
		zap.Int("vertices", len(base.Vertices)),
		zap.Int("faces", len(base.Faces)))
	g.report(StageBase, 0.1)

	raw, err = subdivideAll(raw, p)
	if err != nil {
		return nil, err
	}
	log.Debug("faces subdivided",
		zap.Stringer("algorithm", p.Algorithm),
		zap.Int("resolution", p.Resolution),
		zap.Int("triangles", len(raw)))
	g.report(StageSubdivide, 0.6)

	m, err := mesh.Weld(raw)
	if err != nil {
		return nil, fmt.Errorf("welding %s: %w", p, err)
	}
	log.Debug("vertices welded",
		zap.Int("raw_corners", 3*len(raw)),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)))
	g.report(StageWeld, 0.9)

	if p.Spherize {
		m, err = mesh.Spherize(m)
		if err != nil {
			return nil, fmt.Errorf("spherizing %s: %w", p, err)
		}
		log.Debug("vertices spherized", zap.Int("vertices", len(m.Vertices)))
		g.report(StageSpherize, 0.95)
	}

	g.report(StageDone, 1.0)
	return m, nil
}

func subdivideAll(raw []geometry.Triangle, p Params) ([]geometry.Triangle, error) {
	switch p.Algorithm {
	case Frequency:
		return subdivide.ByFrequency(raw, p.Resolution)
	case Depth:
		return subdivide.ByDepth(raw, p.Resolution)
	}
	return nil, fmt.Errorf("%w: unknown algorithm %d", ErrInvalidParameter, int(p.Algorithm))
}

// FaceCount predicts the number of faces Generate will produce
func FaceCount(p Params) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	base, err := polyhedra.Get(p.Base, p.HalfDome)
	if err != nil {
		return 0, err
	}
	return len(base.Faces) * p.FacesPerBaseFace(), nil
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) report(stage Stage, fraction float64) {
	if g.Progress != nil {
		g.Progress(stage, fraction)
	}
}
