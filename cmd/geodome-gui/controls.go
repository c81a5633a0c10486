package main

import (
	"fyne.io/fyne/v2"

	"github.com/philipparndt/geodome/pkg/geodome"
	"github.com/philipparndt/geodome/pkg/polyhedra"
)

// action is what a key press asks the window to do
type action int

const (
	actionNone action = iota
	actionRegenerate
	actionQuit
)

// controls holds the panel state shared by widgets and keyboard shortcuts
type controls struct {
	params geodome.Params
}

// presetKeys maps F1..F9 to the resolution presets
var presetKeys = []fyne.KeyName{
	fyne.KeyF1, fyne.KeyF2, fyne.KeyF3, fyne.KeyF4, fyne.KeyF5,
	fyne.KeyF6, fyne.KeyF7, fyne.KeyF8, fyne.KeyF9,
}

// setResolution clamps to the slider range and reports whether it changed
func (c *controls) setResolution(r int) bool {
	r = max(geodome.MinResolution, min(geodome.MaxSliderResolution, r))
	if r == c.params.Resolution {
		return false
	}
	c.params.Resolution = r
	return true
}

func (c *controls) setBase(s polyhedra.Shape) bool {
	if !s.Valid() || s == c.params.Base {
		return false
	}
	c.params.Base = s
	return true
}

// typedRune handles printable shortcuts: + and - step the resolution,
// 1 to 4 pick the base, q quits
func (c *controls) typedRune(r rune) action {
	changed := false
	switch r {
	case '+', '=':
		changed = c.setResolution(c.params.Resolution + 1)
	case '-', '_':
		changed = c.setResolution(c.params.Resolution - 1)
	case '1', '2', '3', '4':
		changed = c.setBase(polyhedra.Shape(r - '0'))
	case 'q', 'Q':
		return actionQuit
	}
	if changed {
		return actionRegenerate
	}
	return actionNone
}

// typedKey handles named keys: Escape quits, F1 to F9 pick a preset
func (c *controls) typedKey(key fyne.KeyName) action {
	if key == fyne.KeyEscape {
		return actionQuit
	}
	for i, k := range presetKeys {
		if k == key && i < len(geodome.Presets) {
			if c.setResolution(geodome.Presets[i]) {
				return actionRegenerate
			}
			return actionNone
		}
	}
	return actionNone
}
