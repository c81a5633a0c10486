// Package viewer draws indexed meshes in a fyne widget.
package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/geodome/pkg/geometry"
	"github.com/philipparndt/geodome/pkg/mesh"
)

// MeshRenderer renders an indexed mesh in 3D. Drag to orbit, scroll to
// zoom, tap near a vertex to select it.
type MeshRenderer struct {
	widget.BaseWidget
	mesh           *mesh.IndexedMesh
	camera         *Camera
	style          Style
	raster         *canvas.Raster
	selectedPoints []geometry.Vector3
	pointMarkers   []*canvas.Circle
	dragStart      *fyne.Position
	isDragging     bool
	onPointSelect  func(point geometry.Vector3)
}

// NewMeshRenderer creates a new 3D mesh renderer. m may be nil.
func NewMeshRenderer(m *mesh.IndexedMesh) *MeshRenderer {
	r := &MeshRenderer{
		mesh:  m,
		style: DefaultStyle(),
	}
	r.camera = NewCamera(r.bounds())
	r.raster = canvas.NewRaster(r.draw)
	r.ExtendBaseWidget(r)
	return r
}

func (r *MeshRenderer) bounds() geometry.BoundingBox {
	if r.mesh == nil {
		return geometry.NewBoundingBox()
	}
	return r.mesh.BoundingBox()
}

func (r *MeshRenderer) draw(w, h int) image.Image {
	return Rasterize(r.mesh, r.camera, w, h, r.style)
}

// SetMesh replaces the displayed mesh and clears the selection. The view
// angle is kept; resetCamera also refits the distance to the new bounds.
func (r *MeshRenderer) SetMesh(m *mesh.IndexedMesh, resetCamera bool) {
	r.mesh = m
	if resetCamera {
		rx, ry := r.camera.RotationX, r.camera.RotationY
		r.camera = NewCamera(r.bounds())
		r.camera.RotationX, r.camera.RotationY = rx, ry
		r.camera.UpdatePosition()
	}
	r.selectedPoints = nil
	r.Render()
}

// Mesh returns the displayed mesh
func (r *MeshRenderer) Mesh() *mesh.IndexedMesh {
	return r.mesh
}

// SetFilledMode toggles shaded panels
func (r *MeshRenderer) SetFilledMode(filled bool) {
	r.style.Filled = filled
	r.Render()
}

// SetWireframe toggles strut lines
func (r *MeshRenderer) SetWireframe(wireframe bool) {
	r.style.Wireframe = wireframe
	r.Render()
}

// SetOnPointSelect sets the callback for when a point is selected
func (r *MeshRenderer) SetOnPointSelect(callback func(point geometry.Vector3)) {
	r.onPointSelect = callback
}

// ResetView restores the default view angle and distance
func (r *MeshRenderer) ResetView() {
	r.camera = NewCamera(r.bounds())
	r.Render()
}

// CreateRenderer creates the renderer for the widget
func (r *MeshRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &meshWidgetRenderer{renderer: r}
}

// Render redraws the view
func (r *MeshRenderer) Render() {
	r.updatePointMarkers()
	r.Refresh()
}

// updatePointMarkers updates the visual markers for selected points
func (r *MeshRenderer) updatePointMarkers() {
	r.pointMarkers = r.pointMarkers[:0]

	colors := []color.Color{
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
	}

	size := r.Size()
	if size.Width <= 0 || size.Height <= 0 {
		return
	}

	for i, point := range r.selectedPoints {
		x, y, _ := r.camera.Project(point, float64(size.Width), float64(size.Height))

		marker := canvas.NewCircle(colors[i%len(colors)])
		marker.StrokeColor = color.White
		marker.StrokeWidth = 2
		d := float32(10)
		marker.Resize(fyne.NewSize(d, d))
		marker.Move(fyne.NewPos(float32(x)-d/2, float32(y)-d/2))

		r.pointMarkers = append(r.pointMarkers, marker)
	}
}

// Dragged handles mouse drag events for rotation
func (r *MeshRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(deltaY)*0.01, float64(-deltaX)*0.01)
		r.Render()
	}
	pos := event.Position
	r.dragStart = &pos
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *MeshRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Tapped handles tap events for point selection
func (r *MeshRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging || r.mesh == nil {
		return
	}

	size := r.Size()
	nearest, dist := FindNearestVertex(r.mesh, r.camera,
		float64(event.Position.X), float64(event.Position.Y),
		float64(size.Width), float64(size.Height))

	// Only select if reasonably close (within 20 pixels)
	if nearest >= 0 && dist < 20 {
		r.addSelectedPoint(r.mesh.Vertices[nearest])
	}
}

// FindNearestVertex returns the index of the vertex projected closest to
// the screen position and its distance in pixels, or -1 if none is in
// front of the camera.
func FindNearestVertex(m *mesh.IndexedMesh, cam *Camera, screenX, screenY, width, height float64) (int, float64) {
	nearest := -1
	minDist := math.MaxFloat64

	forward := cam.Forward()
	for i, v := range m.Vertices {
		if v.Sub(cam.Position).Dot(forward) <= 0 {
			continue
		}
		x, y, _ := cam.Project(v, width, height)
		if dist := math.Hypot(x-screenX, y-screenY); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest, minDist
}

// addSelectedPoint adds a point to the selection
func (r *MeshRenderer) addSelectedPoint(point geometry.Vector3) {
	r.selectedPoints = append(r.selectedPoints, point)

	// Keep only last 2 points
	if len(r.selectedPoints) > 2 {
		r.selectedPoints = r.selectedPoints[len(r.selectedPoints)-2:]
	}

	r.Render()

	if r.onPointSelect != nil {
		r.onPointSelect(point)
	}
}

// GetSelectedPoints returns the currently selected points
func (r *MeshRenderer) GetSelectedPoints() []geometry.Vector3 {
	return r.selectedPoints
}

// ClearSelection clears all selected points
func (r *MeshRenderer) ClearSelection() {
	r.selectedPoints = nil
	r.Render()
}

// Scrolled handles scroll events for zooming
func (r *MeshRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render()
}

// meshWidgetRenderer implements fyne.WidgetRenderer
type meshWidgetRenderer struct {
	renderer *MeshRenderer
	objects  []fyne.CanvasObject
}

func (m *meshWidgetRenderer) Layout(size fyne.Size) {
	m.renderer.raster.Resize(size)
	m.renderer.updatePointMarkers()
	m.collect()
}

func (m *meshWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (m *meshWidgetRenderer) collect() {
	m.objects = m.objects[:0]
	m.objects = append(m.objects, m.renderer.raster)
	for _, marker := range m.renderer.pointMarkers {
		m.objects = append(m.objects, marker)
	}
}

func (m *meshWidgetRenderer) Refresh() {
	m.collect()
	m.renderer.raster.Refresh()
	canvas.Refresh(m.renderer)
}

func (m *meshWidgetRenderer) Objects() []fyne.CanvasObject {
	if len(m.objects) == 0 {
		m.collect()
	}
	return m.objects
}

func (m *meshWidgetRenderer) Destroy() {}
