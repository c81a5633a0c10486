package main

import (
	"testing"

	"fyne.io/fyne/v2"

	"github.com/philipparndt/geodome/pkg/geodome"
	"github.com/philipparndt/geodome/pkg/polyhedra"
)

func TestTypedRuneResolution(t *testing.T) {
	c := &controls{params: geodome.DefaultParams()}

	if got := c.typedRune('+'); got != actionRegenerate {
		t.Errorf("expected regenerate, got %v", got)
	}
	if c.params.Resolution != 4 {
		t.Errorf("expected resolution 4, got %d", c.params.Resolution)
	}

	for i := 0; i < 10; i++ {
		c.typedRune('-')
	}
	if c.params.Resolution != geodome.MinResolution {
		t.Errorf("expected resolution clamped to %d, got %d", geodome.MinResolution, c.params.Resolution)
	}
	if got := c.typedRune('-'); got != actionNone {
		t.Errorf("expected no action at the lower bound, got %v", got)
	}

	for i := 0; i < 30; i++ {
		c.typedRune('+')
	}
	if c.params.Resolution != geodome.MaxSliderResolution {
		t.Errorf("expected resolution clamped to %d, got %d", geodome.MaxSliderResolution, c.params.Resolution)
	}
}

func TestTypedRuneBase(t *testing.T) {
	c := &controls{params: geodome.DefaultParams()}

	tests := map[rune]polyhedra.Shape{
		'2': polyhedra.Octahedron,
		'3': polyhedra.Tetrahedron,
		'4': polyhedra.Triangle,
		'1': polyhedra.Icosahedron,
	}
	for _, r := range []rune{'2', '3', '4', '1'} {
		if got := c.typedRune(r); got != actionRegenerate {
			t.Errorf("key %c: expected regenerate, got %v", r, got)
		}
		if c.params.Base != tests[r] {
			t.Errorf("key %c: expected %v, got %v", r, tests[r], c.params.Base)
		}
	}

	if got := c.typedRune('1'); got != actionNone {
		t.Errorf("expected no action for the current base, got %v", got)
	}
	if got := c.typedRune('5'); got != actionNone {
		t.Errorf("expected no action for key 5, got %v", got)
	}
}

func TestQuitKeys(t *testing.T) {
	c := &controls{params: geodome.DefaultParams()}
	if c.typedRune('q') != actionQuit || c.typedRune('Q') != actionQuit {
		t.Error("expected q to quit")
	}
	if c.typedKey(fyne.KeyEscape) != actionQuit {
		t.Error("expected Escape to quit")
	}
}

func TestPresetKeys(t *testing.T) {
	c := &controls{params: geodome.DefaultParams()}

	for i, key := range presetKeys {
		c.typedKey(key)
		if c.params.Resolution != geodome.Presets[i] {
			t.Errorf("%s: expected resolution %d, got %d", key, geodome.Presets[i], c.params.Resolution)
		}
	}
	if got := c.typedKey(fyne.KeyF9); got != actionNone {
		t.Errorf("expected no action when the preset is already active, got %v", got)
	}
}
