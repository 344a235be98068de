package internal

import (
	"io"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	gmath "github.com/quasilyte/gmath"
)

// Rendering of point sets, hulls and meshes to PNG. Meshes are drawn as their
// projection onto the xy plane.

// Padding around the drawing so points on the hull are not clipped
const drawPadding = 20

const pointRadius = 3

// Bounding box of the points in the xy plane.
func boundsOf(points []*Vector) gmath.Rect {
	if len(points) == 0 {
		return gmath.Rect{}
	}
	bounds := gmath.Rect{
		Min: gmath.Vec{X: math.Inf(1), Y: math.Inf(1)},
		Max: gmath.Vec{X: math.Inf(-1), Y: math.Inf(-1)},
	}
	for _, p := range points {
		bounds.Min.X = math.Min(bounds.Min.X, p.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, p.Y)
		bounds.Max.X = math.Max(bounds.Max.X, p.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, p.Y)
	}
	return bounds
}

// A black canvas scaled so that bounds fills it, with the origin at the
// bottom left.
func newCanvas(bounds gmath.Rect, scale float64) *gg.Context {
	size := bounds.Size().Mulf(scale)
	width := int(size.X) + drawPadding*2
	height := int(size.Y) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)
	return c
}

// Draw the input points in white and the hull outline in cyan over a filled
// green interior. The hull may be nil.
func DrawHull(points []*Vector, hull *Polygon, scale float64) *gg.Context {
	c := newCanvas(boundsOf(points), scale)

	if hull != nil && hull.Len() > 0 {
		c.MoveTo(hull.Vertices[0].X, hull.Vertices[0].Y)
		for _, v := range hull.Vertices[1:] {
			c.LineTo(v.X, v.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(2 / scale)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, pointRadius/scale)
		c.Fill()
	}
	if hull != nil {
		c.SetRGB(1, 0.3, 0.2)
		for _, v := range hull.Vertices {
			c.DrawCircle(v.X, v.Y, pointRadius/scale)
			c.Fill()
		}
	}
	return c
}

// Draw every mesh edge, projected onto the xy plane. Edges whose face points
// toward the viewer (+z) are bright; the rest are dim.
func DrawMesh(m *Mesh, scale float64) *gg.Context {
	points := make([]*Vector, len(m.Vertices))
	for i := range m.Vertices {
		points[i] = &m.Vertices[i].Point
	}
	c := newCanvas(boundsOf(points), scale)
	c.SetLineWidth(1.5 / scale)

	for _, front := range []bool{false, true} {
		for i := range m.Faces {
			face := FaceIndex(i)
			if (m.FaceNormal(face).Z > 0) != front {
				continue
			}
			corners := m.FacePoints(face)
			c.MoveTo(corners[0].X, corners[0].Y)
			c.LineTo(corners[1].X, corners[1].Y)
			c.LineTo(corners[2].X, corners[2].Y)
			c.ClosePath()
			if front {
				c.SetRGB(0, 1, 1)
			} else {
				c.SetRGBA(0, 0.4, 0.4, 0.6)
			}
			c.Stroke()
		}
	}
	return c
}

func WritePNG(c *gg.Context, w io.Writer) error {
	return c.EncodePNG(w)
}

// Print a PNG file to the terminal (iTerm only).
func CatPNG(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

// Helper to draw and print a hull in the terminal for debugging.
func (poly *Polygon) dbgDraw(points []*Vector, scale float64) {
	c := DrawHull(points, poly, scale)
	// Save to temp file
	c.SavePNG("/tmp/hull.png")
	// Print to terminal
	CatPNG("/tmp/hull.png", os.Stdout)
}
