package viewer

import (
	"image"
	"image/color"
	"math"

	"github.com/philipparndt/geodome/pkg/mesh"
)

// Style controls how a mesh is rasterized
type Style struct {
	Filled     bool
	Wireframe  bool
	Background color.RGBA
	Face       color.RGBA
	Edge       color.RGBA
	Boundary   color.RGBA
}

// DefaultStyle draws light struts over dark shaded panels
func DefaultStyle() Style {
	return Style{
		Filled:     true,
		Wireframe:  true,
		Background: color.RGBA{30, 30, 36, 255},
		Face:       color.RGBA{70, 120, 170, 255},
		Edge:       color.RGBA{230, 230, 230, 255},
		Boundary:   color.RGBA{255, 170, 60, 255},
	}
}

type projected struct {
	x, y, z float64
}

// Rasterize draws m as seen by cam into a new width x height image.
// Panels are flat shaded by how squarely they face the camera, from either
// side, so the inside of a half dome stays visible.
func Rasterize(m *mesh.IndexedMesh, cam *Camera, width, height int, style Style) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i] = style.Background.R
		img.Pix[i+1] = style.Background.G
		img.Pix[i+2] = style.Background.B
		img.Pix[i+3] = style.Background.A
	}
	if m == nil || width <= 0 || height <= 0 {
		return img
	}

	zbuffer := make([]float64, width*height)
	for i := range zbuffer {
		zbuffer[i] = math.Inf(1)
	}

	w, h := float64(width), float64(height)
	points := make([]projected, len(m.Vertices))
	for i, v := range m.Vertices {
		x, y, z := cam.Project(v, w, h)
		points[i] = projected{x, y, z}
	}

	if style.Filled {
		forward := cam.Forward()
		for i, f := range m.Faces {
			normal := m.Triangle(i).CalculateNormal()
			light := 0.25 + 0.75*math.Abs(normal.Dot(forward))
			col := shade(style.Face, light)

			a, b, c := points[f[0]], points[f[1]], points[f[2]]
			fillTriangleWithDepth(img, zbuffer, a.x, a.y, a.z, b.x, b.y, b.z, c.x, c.y, c.z, col)
		}
	}

	if style.Wireframe {
		for _, e := range m.Edges() {
			col := style.Edge
			if e.Faces == 1 {
				col = style.Boundary
			}
			a, b := points[e.A], points[e.B]
			drawLineWithDepth(img, zbuffer, a, b, col)
		}
	}

	return img
}

func shade(c color.RGBA, light float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*light))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

// fillTriangleWithDepth fills a triangle with depth testing
func fillTriangleWithDepth(img *image.RGBA, zbuffer []float64, x1, y1, z1, x2, y2, z2, x3, y3, z3 float64, col color.RGBA) {
	vertices := [][3]float64{
		{x1, y1, z1},
		{x2, y2, z2},
		{x3, y3, z3},
	}

	// Sort vertices by Y coordinate (top to bottom)
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}
	if vertices[1][1] > vertices[2][1] {
		vertices[1], vertices[2] = vertices[2], vertices[1]
	}
	if vertices[0][1] > vertices[1][1] {
		vertices[0], vertices[1] = vertices[1], vertices[0]
	}

	x1, y1, z1 = vertices[0][0], vertices[0][1], vertices[0][2]
	x2, y2, z2 = vertices[1][0], vertices[1][1], vertices[1][2]
	x3, y3, z3 = vertices[2][0], vertices[2][1], vertices[2][2]

	if y3 == y1 {
		return
	}

	bounds := img.Bounds()
	width := bounds.Max.X

	for y := int(math.Max(0, math.Ceil(y1))); y <= int(math.Min(float64(bounds.Max.Y-1), y3)); y++ {
		fy := float64(y)

		// The long edge 1-3 always spans the scanline; the other side is
		// 1-2 above the middle vertex and 2-3 below it
		t := (fy - y1) / (y3 - y1)
		xa, za := x1+t*(x3-x1), z1+t*(z3-z1)

		var xb, zb float64
		if fy < y2 {
			t = (fy - y1) / (y2 - y1)
			xb, zb = x1+t*(x2-x1), z1+t*(z2-z1)
		} else if y3 != y2 {
			t = (fy - y2) / (y3 - y2)
			xb, zb = x2+t*(x3-x2), z2+t*(z3-z2)
		} else {
			xb, zb = x2, z2
		}

		if xa > xb {
			xa, xb = xb, xa
			za, zb = zb, za
		}

		xStart := int(math.Max(0, math.Ceil(xa)))
		xEnd := int(math.Min(float64(width-1), xb))

		for x := xStart; x <= xEnd; x++ {
			s := 0.0
			if xb != xa {
				s = (float64(x) - xa) / (xb - xa)
			}
			z := za + s*(zb-za)

			idx := y*width + x
			if z < zbuffer[idx] {
				zbuffer[idx] = z
				img.SetRGBA(x, y, col)
			}
		}
	}
}

// drawLineWithDepth draws a line using Bresenham's algorithm. Pixels hidden
// behind a filled panel are skipped; a small relative bias keeps a panel's
// own edges visible.
func drawLineWithDepth(img *image.RGBA, zbuffer []float64, a, b projected, col color.RGBA) {
	bounds := img.Bounds()
	width := bounds.Max.X

	// Lines far outside the view are skipped rather than walked
	limit := float64(4 * (bounds.Max.X + bounds.Max.Y))
	if math.Abs(a.x) > limit || math.Abs(a.y) > limit || math.Abs(b.x) > limit || math.Abs(b.y) > limit {
		return
	}

	x1, y1 := int(math.Round(a.x)), int(math.Round(a.y))
	x2, y2 := int(math.Round(b.x)), int(math.Round(b.y))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	steps := max(dx, dy)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy
	for i := 0; ; i++ {
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			t := 0.0
			if steps > 0 {
				t = float64(i) / float64(steps)
			}
			z := a.z + t*(b.z-a.z)
			idx := y1*width + x1
			if z <= zbuffer[idx]*1.01 {
				img.SetRGBA(x1, y1, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
