package config

import (
	"github.com/spf13/pflag"
)

// Flags holds command-line overrides. Only flags the user actually set
// override file values.
type Flags struct {
	ConfigPath string

	Base       string
	Resolution int
	Algorithm  string
	Spherize   bool
	Flat       bool
	HalfDome   bool
	FullDome   bool

	Output string
	Format string
	Name   string

	LogLevel string
	LogFile  string
	Debug    bool

	fs *pflag.FlagSet
}

// Register adds the dome, output and logging flags to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	f.fs = fs
	f.RegisterConfig(fs)

	fs.StringVarP(&f.Base, "base", "b", "", "Base solid: icosahedron, octahedron, tetrahedron, triangle (or 1-4)")
	fs.IntVarP(&f.Resolution, "resolution", "r", 0, "Frequency or depth, depending on --algorithm")
	fs.StringVarP(&f.Algorithm, "algorithm", "a", "", "Subdivision algorithm: frequency or depth (or 1-2)")
	fs.BoolVar(&f.Spherize, "spherize", false, "Project vertices onto the unit sphere")
	fs.BoolVar(&f.Flat, "flat", false, "Keep vertices on the base faces")
	fs.BoolVar(&f.HalfDome, "half-dome", false, "Use the upper half of the base solid")
	fs.BoolVar(&f.FullDome, "full-dome", false, "Use the whole base solid")
	fs.BoolVarP(&f.Debug, "debug", "d", false, "Enable debug logging")

	f.RegisterOutput(fs)
}

// RegisterConfig adds only the --config and logging flags to fs.
func (f *Flags) RegisterConfig(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.LogFile, "log-file", "", "Also write logs to this file (rotated)")
}

// RegisterOutput adds the STL output flags to fs.
func (f *Flags) RegisterOutput(fs *pflag.FlagSet) {
	f.fs = fs
	fs.StringVarP(&f.Output, "output", "o", "", "Output STL file")
	fs.StringVarP(&f.Format, "format", "f", "", "STL format: binary or ascii")
	fs.StringVar(&f.Name, "name", "", "Solid name written to the STL header")
}

func (f *Flags) changed(name string) bool {
	if f.fs == nil {
		return false
	}
	flag := f.fs.Lookup(name)
	return flag != nil && flag.Changed
}

// applyTo applies CLI flag overrides to the config.
func (f *Flags) applyTo(cfg *Config) {
	if f.changed("base") {
		cfg.Dome.Base = f.Base
	}
	if f.changed("resolution") {
		cfg.Dome.Resolution = f.Resolution
	}
	if f.changed("algorithm") {
		cfg.Dome.Algorithm = f.Algorithm
	}
	if f.changed("spherize") {
		cfg.Dome.Spherize = f.Spherize
	}
	if f.changed("flat") && f.Flat {
		cfg.Dome.Spherize = false
	}
	if f.changed("half-dome") {
		cfg.Dome.HalfDome = f.HalfDome
	}
	if f.changed("full-dome") && f.FullDome {
		cfg.Dome.HalfDome = false
	}
	if f.changed("output") {
		cfg.Output.Path = f.Output
	}
	if f.changed("format") {
		cfg.Output.Format = f.Format
	}
	if f.changed("name") {
		cfg.Output.Name = f.Name
	}
	if f.changed("log-level") {
		cfg.Logging.Level = f.LogLevel
	}
	if f.changed("log-file") {
		cfg.Logging.LogFile = f.LogFile
	}
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
}
