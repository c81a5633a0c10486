package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/internal/logger"
	"github.com/philipparndt/geodome/pkg/geodome"
	"github.com/philipparndt/geodome/pkg/mesh"
	"github.com/philipparndt/geodome/pkg/stl"
)

// setup loads the effective configuration and starts logging
func setup(flags *config.Flags) (*config.Config, error) {
	cfg, err := config.Load(flags)
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, err
	}
	if path := config.Path(flags); path != "" {
		logger.Debug("config loaded", zap.String("path", path))
	}
	return cfg, nil
}

// buildDome generates the dome described by cfg
func buildDome(cfg *config.Config) (*mesh.IndexedMesh, geodome.Params, error) {
	p, err := cfg.Dome.Params()
	if err != nil {
		return nil, p, err
	}
	m, err := geodome.NewGenerator(logger.Log).Generate(p)
	if err != nil {
		return nil, p, fmt.Errorf("generating %s: %w", p, err)
	}
	logger.Info("dome generated",
		zap.Stringer("params", p),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)))
	return m, p, nil
}

// loadMesh reads and welds an STL file when path is set, otherwise it
// generates the configured dome. The returned label names the source.
func loadMesh(cfg *config.Config, path string) (*mesh.IndexedMesh, string, error) {
	if path == "" {
		m, p, err := buildDome(cfg)
		if err != nil {
			return nil, "", err
		}
		return m, p.String(), nil
	}

	model, err := stl.Parse(path)
	if err != nil {
		return nil, "", fmt.Errorf("parsing %s: %w", path, err)
	}
	m, err := mesh.Weld(model.Triangles())
	if err != nil {
		return nil, "", fmt.Errorf("indexing %s: %w", path, err)
	}
	logger.Debug("stl loaded",
		zap.String("path", path),
		zap.Int("triangles", model.TriangleCount()),
		zap.Int("vertices", len(m.Vertices)))
	return m, path, nil
}

// writeDome converts m to STL and saves it as configured
func writeDome(cfg *config.Config, m *mesh.IndexedMesh) error {
	format, err := stl.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	model := stl.FromMesh(cfg.Output.Name, m)
	if err := stl.Save(cfg.Output.Path, model, format); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output.Path, err)
	}
	logger.Debug("stl written",
		zap.String("path", cfg.Output.Path),
		zap.String("format", string(format)),
		zap.Int("facets", model.TriangleCount()))
	return nil
}
