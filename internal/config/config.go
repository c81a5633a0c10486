// Package config handles geodome configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/philipparndt/geodome/pkg/geodome"
	"github.com/philipparndt/geodome/pkg/polyhedra"
	"github.com/philipparndt/geodome/pkg/stl"
)

// FileName is the name looked up in the working and config directories.
const FileName = "geodome.yaml"

// Config holds all settings.
type Config struct {
	Dome    DomeConfig    `yaml:"dome"`
	Output  OutputConfig  `yaml:"output"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// DomeConfig holds the generation parameters. Base and algorithm accept
// either names or numeric selector ids.
type DomeConfig struct {
	Base       string `yaml:"base"`
	Resolution int    `yaml:"resolution"`
	Algorithm  string `yaml:"algorithm"`
	Spherize   bool   `yaml:"spherize"`
	HalfDome   bool   `yaml:"half_dome"`
}

// OutputConfig holds STL output settings.
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format"`
	Name   string `yaml:"name"`
}

// WatchConfig holds settings for regenerating on config changes.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	p := geodome.DefaultParams()
	return &Config{
		Dome: DomeConfig{
			Base:       p.Base.String(),
			Resolution: p.Resolution,
			Algorithm:  p.Algorithm.String(),
			Spherize:   p.Spherize,
			HalfDome:   p.HalfDome,
		},
		Output: OutputConfig{
			Path:   "geodome.stl",
			Format: string(stl.FormatBinary),
			Name:   "GeoDome",
		},
		Watch: WatchConfig{
			Debounce: 200 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Params converts the dome section into validated generation parameters.
func (d DomeConfig) Params() (geodome.Params, error) {
	base, err := polyhedra.ParseShape(d.Base)
	if err != nil {
		return geodome.Params{}, err
	}
	alg, err := geodome.ParseAlgorithm(d.Algorithm)
	if err != nil {
		return geodome.Params{}, err
	}
	p := geodome.Params{
		Base:       base,
		Resolution: d.Resolution,
		Algorithm:  alg,
		Spherize:   d.Spherize,
		HalfDome:   d.HalfDome,
	}
	if err := p.Validate(); err != nil {
		return geodome.Params{}, err
	}
	return p, nil
}

// SetParams stores p in the dome section using canonical names.
func (d *DomeConfig) SetParams(p geodome.Params) {
	d.Base = p.Base.String()
	d.Resolution = p.Resolution
	d.Algorithm = p.Algorithm.String()
	d.Spherize = p.Spherize
	d.HalfDome = p.HalfDome
}

// Validate checks the values that cannot be checked by the YAML decoder.
func (c *Config) Validate() error {
	if _, err := c.Dome.Params(); err != nil {
		return fmt.Errorf("dome: %w", err)
	}
	if _, err := stl.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch: negative debounce %v", c.Watch.Debounce)
	}
	return nil
}
