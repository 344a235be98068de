package internal

import (
	"fmt"
	"strings"
)

// A convex hull boundary: a cyclic ring of vertices with implicit edges
// (v[i], v[i+1 mod n]).
//
// Hulls are wound so that every vertex turns with OrientationSign < 0, which
// is counterclockwise on a y-down screen and clockwise with y pointing up.
// Everything in this package agrees on that winding, so Contains and the
// tangent tests below depend on it.
type Polygon struct {
	Vertices []*Vector
}

func NewPolygon(vertices ...*Vector) *Polygon {
	return &Polygon{Vertices: vertices}
}

func (poly *Polygon) Len() int {
	return len(poly.Vertices)
}

// Vertex with circular indexing, so -1 is the last vertex.
func (poly *Polygon) Vertex(i int) *Vector {
	return poly.Vertices[CircularIndex(i, len(poly.Vertices))]
}

// The point is inside or on the boundary if it is never strictly on the
// outer side of an edge.
func (poly *Polygon) Contains(p *Vector) bool {
	n := len(poly.Vertices)
	for i, current := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		if OrientationSign(current, next, p) > 0 {
			return false
		}
	}
	return true
}

// Index of the lexicographically greatest vertex (largest x, then y).
func (poly *Polygon) IndexOfRightmostVertex() int {
	best := 0
	for i, v := range poly.Vertices {
		if Compare(v, poly.Vertices[best]) > 0 {
			best = i
		}
	}
	return best
}

// Index of the lexicographically smallest vertex.
func (poly *Polygon) IndexOfLeftmostVertex() int {
	best := 0
	for i, v := range poly.Vertices {
		if Compare(v, poly.Vertices[best]) < 0 {
			best = i
		}
	}
	return best
}

// Shallow copy. The vertex pointers are shared.
func (poly *Polygon) Copy() *Polygon {
	vertices := make([]*Vector, len(poly.Vertices))
	copy(vertices, poly.Vertices)
	return &Polygon{Vertices: vertices}
}

// Signed area by the shoelace formula. Hulls in this package have negative
// area in y-up coordinates.
func (poly *Polygon) Area() float64 {
	var sum float64
	n := len(poly.Vertices)
	for i, current := range poly.Vertices {
		next := poly.Vertices[CircularIndex(i+1, n)]
		sum += current.X*next.Y - next.X*current.Y
	}
	return sum / 2
}

// Strictly convex with hull winding: every consecutive triple turns with
// OrientationSign < 0.
func (poly *Polygon) IsConvex() bool {
	n := len(poly.Vertices)
	if n < 3 {
		return false
	}
	for i := range poly.Vertices {
		if OrientationSign(poly.Vertex(i-1), poly.Vertex(i), poly.Vertex(i+1)) >= 0 {
			return false
		}
	}
	return true
}

func (poly *Polygon) String() string {
	parts := make([]string, len(poly.Vertices))
	for i, v := range poly.Vertices {
		parts[i] = v.String()
	}
	return fmt.Sprintf("Polygon[%s]", strings.Join(parts, " "))
}
