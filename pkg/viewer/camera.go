package viewer

import (
	"math"

	"github.com/philipparndt/geodome/pkg/geometry"
)

// Default view angles: slightly above the equator, turned off the x axis
const (
	DefaultElevation = 0.35
	DefaultAzimuth   = 0.6
)

// Camera orbits a target point. Z is up, so domes stand on their base.
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Elevation above the XY plane
	RotationY float64 // Azimuth around the Z axis
}

// NewCamera creates a new camera positioned to view a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	center := geometry.Vector3{}
	distance := 4.0
	if !bbox.IsEmpty() {
		center = bbox.Center()
		size := bbox.Size()
		if d := math.Max(size.X, math.Max(size.Y, size.Z)) * 2.0; d > 0 {
			distance = d
		}
	}

	c := &Camera{
		Target:    center,
		Up:        geometry.NewVector3(0, 0, 1),
		FOV:       math.Pi / 4, // 45 degrees
		Distance:  distance,
		RotationX: DefaultElevation,
		RotationY: DefaultAzimuth,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := -c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)
	z := c.Distance * math.Sin(c.RotationX)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Keep away from the poles where the view direction meets Up
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Forward returns the unit view direction
func (c *Camera) Forward() geometry.Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

func (c *Camera) basis() (forward, right, up geometry.Vector3) {
	forward = c.Forward()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return forward, right, up
}

// Project projects a 3D point to 2D screen coordinates. The third value is
// the depth along the view direction.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	forward, right, up := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	if z <= 0.01 {
		z = 0.01
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(z*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// Unproject converts 2D screen coordinates back to a 3D ray
func (c *Camera) Unproject(screenX, screenY, width, height float64) (origin, direction geometry.Vector3) {
	ndcX := (2.0 * screenX / width) - 1.0
	ndcY := 1.0 - (2.0 * screenY / height)

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	forward, right, up := c.basis()

	rayDir := forward.Add(right.Mul(ndcX * fovScale * aspect)).Add(up.Mul(ndcY * fovScale))
	return c.Position, rayDir.Normalize()
}
