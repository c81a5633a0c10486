package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/internal/logger"
	"github.com/philipparndt/geodome/pkg/analysis"
	"github.com/philipparndt/geodome/pkg/geodome"
	"github.com/philipparndt/geodome/pkg/geometry"
	"github.com/philipparndt/geodome/pkg/mesh"
	"github.com/philipparndt/geodome/pkg/polyhedra"
	"github.com/philipparndt/geodome/pkg/stl"
	"github.com/philipparndt/geodome/pkg/viewer"
)

var algorithmLabels = []string{"Frequency (edge-cut)", "Depth (recursive)"}

// maxStrutLines caps the strut list in the side panel
const maxStrutLines = 12

// domeApp is the control surface: the panel widgets, the preview and the
// generation requests in flight
type domeApp struct {
	app    fyne.App
	window fyne.Window
	cfg    *config.Config

	controls controls
	mesh     *mesh.IndexedMesh

	renderer        *viewer.MeshRenderer
	baseSelect      *widget.Select
	resolution      *widget.Slider
	resolutionLabel *widget.Label
	algorithm       *widget.RadioGroup
	spherize        *widget.Check
	halfDome        *widget.Check
	progress        *widget.ProgressBar
	status          *widget.Label
	struts          *widget.Label
	measurement     *widget.Label

	// syncing suppresses widget callbacks while widgets are set from state
	syncing bool
	// generation identifies the newest request; older results are dropped
	generation int
}

func newDomeApp(a fyne.App, w fyne.Window, cfg *config.Config, params geodome.Params) *domeApp {
	return &domeApp{
		app:      a,
		window:   w,
		cfg:      cfg,
		controls: controls{params: params},
	}
}

func (d *domeApp) build() fyne.CanvasObject {
	names := make([]string, len(polyhedra.Shapes))
	for i, s := range polyhedra.Shapes {
		names[i] = shapeLabel(s)
	}
	d.baseSelect = widget.NewSelect(names, func(selected string) {
		if d.syncing {
			return
		}
		for _, s := range polyhedra.Shapes {
			if shapeLabel(s) == selected && d.controls.setBase(s) {
				d.regenerate()
			}
		}
	})

	d.resolutionLabel = widget.NewLabel("")
	d.resolution = widget.NewSlider(geodome.MinResolution, geodome.MaxSliderResolution)
	d.resolution.Step = 1
	d.resolution.OnChanged = func(v float64) {
		d.resolutionLabel.SetText(fmt.Sprintf("Resolution: %d", int(v)))
	}
	d.resolution.OnChangeEnded = func(v float64) {
		if d.syncing {
			return
		}
		if d.controls.setResolution(int(v)) {
			d.regenerate()
		}
	}

	d.algorithm = widget.NewRadioGroup(algorithmLabels, func(selected string) {
		if d.syncing || selected == "" {
			return
		}
		alg := geodome.Frequency
		if selected == algorithmLabels[1] {
			alg = geodome.Depth
		}
		if alg != d.controls.params.Algorithm {
			d.controls.params.Algorithm = alg
			d.regenerate()
		}
	})
	d.algorithm.Required = true

	d.spherize = widget.NewCheck("Spherize", func(on bool) {
		if d.syncing {
			return
		}
		d.controls.params.Spherize = on
		d.regenerate()
	})
	d.halfDome = widget.NewCheck("Half Dome", func(on bool) {
		if d.syncing {
			return
		}
		d.controls.params.HalfDome = on
		d.regenerate()
	})

	d.progress = widget.NewProgressBar()
	d.status = widget.NewLabel("")
	d.status.Wrapping = fyne.TextWrapWord
	d.struts = widget.NewLabel("")
	d.struts.TextStyle = fyne.TextStyle{Monospace: true}
	d.measurement = widget.NewLabel("Tap two vertices to measure")
	d.measurement.Wrapping = fyne.TextWrapWord

	d.renderer = viewer.NewMeshRenderer(nil)
	d.renderer.SetOnPointSelect(func(geometry.Vector3) { d.updateMeasurement() })

	filled := widget.NewCheck("Show Panels", d.renderer.SetFilledMode)
	filled.SetChecked(true)
	wireframe := widget.NewCheck("Show Struts", d.renderer.SetWireframe)
	wireframe.SetChecked(true)

	saveSTL := widget.NewButton("Export STL...", d.exportSTL)
	saveSettings := widget.NewButton("Save Settings", d.saveSettings)
	resetView := widget.NewButton("Reset View", d.renderer.ResetView)
	clearSelection := widget.NewButton("Clear Selection", func() {
		d.renderer.ClearSelection()
		d.updateMeasurement()
	})

	help := widget.NewLabel("Keys: +/- resolution, 1-4 base,\nF1-F9 resolution presets, Q/Esc quit.\nDrag to rotate, scroll to zoom.")

	panel := container.NewVBox(
		widget.NewLabelWithStyle("Geodesic Dome", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewSeparator(),
		widget.NewLabel("Base:"),
		d.baseSelect,
		d.resolutionLabel,
		d.resolution,
		widget.NewLabel("Algorithm:"),
		d.algorithm,
		d.spherize,
		d.halfDome,
		widget.NewSeparator(),
		d.progress,
		d.status,
		widget.NewSeparator(),
		widget.NewLabel("Struts:"),
		d.struts,
		widget.NewSeparator(),
		d.measurement,
		widget.NewSeparator(),
		filled,
		wireframe,
		resetView,
		clearSelection,
		widget.NewSeparator(),
		saveSTL,
		saveSettings,
		widget.NewSeparator(),
		help,
	)

	scroll := container.NewVScroll(panel)
	scroll.SetMinSize(fyne.NewSize(300, 0))

	d.window.Canvas().SetOnTypedRune(func(r rune) { d.handle(d.controls.typedRune(r)) })
	d.window.Canvas().SetOnTypedKey(func(e *fyne.KeyEvent) { d.handle(d.controls.typedKey(e.Name)) })

	d.syncWidgets()
	return container.NewBorder(nil, nil, scroll, nil, d.renderer)
}

func shapeLabel(s polyhedra.Shape) string {
	name := s.String()
	return fmt.Sprintf("%d. %s%s", int(s), strings.ToUpper(name[:1]), name[1:])
}

// syncWidgets shows the current parameters without triggering callbacks
func (d *domeApp) syncWidgets() {
	d.syncing = true
	defer func() { d.syncing = false }()

	p := d.controls.params
	d.baseSelect.SetSelected(shapeLabel(p.Base))
	d.resolution.SetValue(float64(p.Resolution))
	d.resolutionLabel.SetText(fmt.Sprintf("Resolution: %d", p.Resolution))
	d.algorithm.SetSelected(algorithmLabels[p.Algorithm-geodome.Frequency])
	d.spherize.SetChecked(p.Spherize)
	d.halfDome.SetChecked(p.HalfDome)
}

func (d *domeApp) handle(a action) {
	switch a {
	case actionRegenerate:
		d.syncWidgets()
		d.regenerate()
	case actionQuit:
		d.app.Quit()
	}
}

// regenerate builds the current parameters in the background
func (d *domeApp) regenerate() {
	d.generation++
	id := d.generation
	p := d.controls.params

	d.progress.SetValue(0)
	d.status.SetText("Generating " + p.String() + "...")

	go func() {
		g := geodome.NewGenerator(logger.Log)
		g.Progress = func(_ geodome.Stage, fraction float64) {
			fyne.Do(func() {
				if id == d.generation {
					d.progress.SetValue(fraction)
				}
			})
		}

		m, err := g.Generate(p)
		var result *analysis.MeasurementResult
		if err == nil {
			result = analysis.AnalyzeMesh(m)
		}

		fyne.Do(func() {
			if id != d.generation {
				return
			}
			d.show(p, m, result, err)
		})
	}()
}

func (d *domeApp) show(p geodome.Params, m *mesh.IndexedMesh, result *analysis.MeasurementResult, err error) {
	if err != nil {
		logger.Warn("generation failed", zap.Stringer("params", p), zap.Error(err))
		d.progress.SetValue(0)
		d.status.SetText("Error: " + err.Error())
		return
	}

	d.mesh = m
	d.renderer.SetMesh(m, false)
	d.updateMeasurement()

	d.status.SetText(fmt.Sprintf("%s\n%d vertices, %d faces, %d edges",
		p, result.VertexCount, result.TriangleCount, result.EdgeCount))

	var b strings.Builder
	for i, s := range result.Struts {
		if i == maxStrutLines {
			fmt.Fprintf(&b, "... %d more", len(result.Struts)-i)
			break
		}
		fmt.Fprintf(&b, "%-3s %.5f x%d\n", s.Label, s.ChordFactor, s.Count)
	}
	d.struts.SetText(strings.TrimRight(b.String(), "\n"))
}

func (d *domeApp) updateMeasurement() {
	points := d.renderer.GetSelectedPoints()
	switch len(points) {
	case 0:
		d.measurement.SetText("Tap two vertices to measure")
	case 1:
		d.measurement.SetText("Point 1: " + analysis.FormatVector(points[0]))
	default:
		d.measurement.SetText(fmt.Sprintf("Point 1: %s\nPoint 2: %s\nDistance: %.6f",
			analysis.FormatVector(points[0]),
			analysis.FormatVector(points[1]),
			points[0].Distance(points[1])))
	}
}

func (d *domeApp) exportSTL() {
	if d.mesh == nil {
		return
	}
	m := d.mesh

	save := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, d.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		format, err := stl.ParseFormat(d.cfg.Output.Format)
		if err == nil {
			err = stl.Write(writer, stl.FromMesh(d.cfg.Output.Name, m), format)
		}
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to export STL: %w", err), d.window)
			return
		}
		logger.Info("stl exported", zap.String("uri", writer.URI().String()))
	}, d.window)
	save.SetFileName(filepath.Base(d.cfg.Output.Path))
	save.Show()
}

func (d *domeApp) saveSettings() {
	d.cfg.Dome.SetParams(d.controls.params)
	if err := d.cfg.Save(); err != nil {
		dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), d.window)
		return
	}
	d.status.SetText("Settings saved to " + config.ConfigDir())
}
