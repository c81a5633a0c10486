package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/philipparndt/geodome/pkg/geodome"
	"github.com/philipparndt/geodome/pkg/polyhedra"
)

// isolate keeps Load away from config files on the host.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
}

func parseFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := &Flags{}
	flags.Register(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	return flags
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dome.Base != "icosahedron" {
		t.Errorf("expected base icosahedron, got %s", cfg.Dome.Base)
	}
	if cfg.Dome.Resolution != 3 {
		t.Errorf("expected resolution 3, got %d", cfg.Dome.Resolution)
	}
	if cfg.Dome.Algorithm != "frequency" {
		t.Errorf("expected algorithm frequency, got %s", cfg.Dome.Algorithm)
	}
	if !cfg.Dome.Spherize {
		t.Error("expected spherize to be true by default")
	}
	if cfg.Dome.HalfDome {
		t.Error("expected half_dome to be false by default")
	}

	if cfg.Output.Path != "geodome.stl" {
		t.Errorf("expected output geodome.stl, got %s", cfg.Output.Path)
	}
	if cfg.Output.Format != "binary" {
		t.Errorf("expected binary format, got %s", cfg.Output.Format)
	}
	if cfg.Watch.Debounce != 200*time.Millisecond {
		t.Errorf("expected debounce 200ms, got %v", cfg.Watch.Debounce)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	p, err := cfg.Dome.Params()
	if err != nil {
		t.Fatalf("default params invalid: %v", err)
	}
	if p != geodome.DefaultParams() {
		t.Errorf("expected %v, got %v", geodome.DefaultParams(), p)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "geodome.yaml")

	yamlContent := `
dome:
  base: octahedron
  resolution: 4
  algorithm: depth
  spherize: false
  half_dome: true

output:
  path: "out/dome.stl"
  format: ascii
  name: "Greenhouse"

watch:
  debounce: 1s

logging:
  level: "debug"
  log_file: "geodome.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	p, err := cfg.Dome.Params()
	if err != nil {
		t.Fatalf("invalid params: %v", err)
	}
	want := geodome.Params{
		Base:       polyhedra.Octahedron,
		Resolution: 4,
		Algorithm:  geodome.Depth,
		Spherize:   false,
		HalfDome:   true,
	}
	if p != want {
		t.Errorf("expected %v, got %v", want, p)
	}
	if cfg.Output.Path != "out/dome.stl" || cfg.Output.Format != "ascii" || cfg.Output.Name != "Greenhouse" {
		t.Errorf("unexpected output section %+v", cfg.Output)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected debounce 1s, got %v", cfg.Watch.Debounce)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "geodome.log" {
		t.Errorf("unexpected logging section %+v", cfg.Logging)
	}
}

func TestPartialConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "geodome.yaml")

	yamlContent := `
dome:
  resolution: 5
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Dome.Resolution != 5 {
		t.Errorf("expected resolution 5, got %d", cfg.Dome.Resolution)
	}
	if cfg.Dome.Base != "icosahedron" {
		t.Errorf("expected default base icosahedron, got %s", cfg.Dome.Base)
	}
	if !cfg.Dome.Spherize {
		t.Error("expected spherize default to survive a partial file")
	}
	if cfg.Output.Path != "geodome.stl" {
		t.Errorf("expected default output, got %s", cfg.Output.Path)
	}
}

func TestLoadPrecedence(t *testing.T) {
	isolate(t)

	configPath := filepath.Join(t.TempDir(), "custom.yaml")
	yamlContent := `
dome:
  base: tetrahedron
  resolution: 4
  spherize: false
output:
  format: ascii
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	flags := parseFlags(t, "--config", configPath, "--resolution", "6", "--spherize", "--half-dome")
	cfg, err := Load(flags)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Dome.Base != "tetrahedron" {
		t.Errorf("expected base from file, got %s", cfg.Dome.Base)
	}
	if cfg.Dome.Resolution != 6 {
		t.Errorf("expected resolution from flag, got %d", cfg.Dome.Resolution)
	}
	if !cfg.Dome.Spherize {
		t.Error("expected --spherize to override the file")
	}
	if !cfg.Dome.HalfDome {
		t.Error("expected --half-dome to be applied")
	}
	if cfg.Output.Format != "ascii" {
		t.Errorf("expected format from file, got %s", cfg.Output.Format)
	}
	if cfg.Output.Path != "geodome.stl" {
		t.Errorf("expected default output path, got %s", cfg.Output.Path)
	}
}

func TestLoadDiscoversWorkingDirectoryFile(t *testing.T) {
	isolate(t)

	if err := os.WriteFile(FileName, []byte("dome:\n  base: triangle\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if got := Path(nil); got != filepath.Join(".", FileName) {
		t.Errorf("expected discovered path %s, got %s", FileName, got)
	}

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dome.Base != "triangle" {
		t.Errorf("expected base triangle, got %s", cfg.Dome.Base)
	}
}

func TestUnsetFlagsKeepDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(parseFlags(t))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestNegativeFlags(t *testing.T) {
	isolate(t)

	cfg, err := Load(parseFlags(t, "--flat", "--full-dome", "--debug", "-b", "2", "-a", "2", "-r", "4"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dome.Spherize {
		t.Error("expected --flat to disable spherize")
	}
	if cfg.Dome.HalfDome {
		t.Error("expected --full-dome to clear half dome")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Logging.Level)
	}

	p, err := cfg.Dome.Params()
	if err != nil {
		t.Fatalf("invalid params: %v", err)
	}
	if p.Base != polyhedra.Octahedron || p.Algorithm != geodome.Depth || p.Resolution != 4 {
		t.Errorf("unexpected params %v", p)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"base", []string{"--base", "cube"}, polyhedra.ErrInvalidBase},
		{"resolution", []string{"--resolution", "0"}, geodome.ErrInvalidParameter},
		{"depth", []string{"--algorithm", "depth", "--resolution", "10"}, geodome.ErrInvalidParameter},
		{"algorithm", []string{"--algorithm", "spiral"}, geodome.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(parseFlags(t, tt.args...))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(parseFlags(t, "--format", "obj")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(parseFlags(t, "--config", filepath.Join(t.TempDir(), "missing.yaml")))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "subdir", "geodome.yaml")

	cfg := Default()
	cfg.Dome.SetParams(geodome.Params{
		Base:       polyhedra.Tetrahedron,
		Resolution: 7,
		Algorithm:  geodome.Frequency,
		Spherize:   true,
		HalfDome:   true,
	})
	cfg.Watch.Debounce = 750 * time.Millisecond

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded := Default()
	if err := loadFromFile(loaded, configPath); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("expected %+v, got %+v", cfg, loaded)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
