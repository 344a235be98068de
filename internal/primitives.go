package internal

import (
	"sort"

	"github.com/pkg/errors"
)

// Procedures shared by the 2D hull algorithms. Every turn decision is made
// with OrientationSign, never with raw coordinate comparisons.

// Every 2D algorithm needs at least a triangle's worth of points.
func ValidateInput(points []*Vector) error {
	if len(points) < 3 {
		return errors.Wrapf(ErrInvalidInput, "need at least 3 points, got %d", len(points))
	}
	return nil
}

// If two points have the same Y value, the one with the smaller X value is
// "lower". This simulates a slightly rotated coordinate system, so the lowest
// point is unique.
func (v *Vector) Below(other *Vector) bool {
	if equalWithin(v.Y, other.Y, Epsilon) {
		return v.X < other.X
	}
	return v.Y < other.Y
}

// The lexicographically smallest and largest points. Every algorithm returns
// this segment when all the points are collinear.
func CollinearExtremes(points []*Vector) *Polygon {
	first, last := points[0], points[0]
	for _, p := range points {
		if Compare(p, first) < 0 {
			first = p
		}
		if Compare(p, last) > 0 {
			last = p
		}
	}
	if Equal(first, last) {
		fatalf("all %d points coincide with %v", len(points), *first)
	}
	return NewPolygon(first, last)
}

func IndexOfLowestY(points []*Vector) int {
	lowest := 0
	for i, p := range points {
		if p.Below(points[lowest]) {
			lowest = i
		}
	}
	return lowest
}

// Build a triangle in hull winding. If abc already turns with a negative
// sign it is kept, otherwise b and c are swapped.
func MakeTriangle(a, b, c *Vector) *Polygon {
	if OrientationSign(a, b, c) < 0 {
		return NewPolygon(a, b, c)
	}
	return NewPolygon(a, c, b)
}

type TangentSide int

const (
	// The line from the origin touches the hull with the hull on its right.
	LeftTangent TangentSide = iota
	// The line from the origin touches the hull with the hull on its left.
	RightTangent
)

func (side TangentSide) String() string {
	if side == LeftTangent {
		return "left"
	}
	return "right"
}

// Is the directed line origin->hull[indexOfEnd] a supporting line of the hull
// on the given side?
//
// Both neighbors of the end vertex must fall on the same side of the line:
// positive turns for a left tangent, negative for a right one. A neighbor on
// the line only passes if it is nearer to the origin than the end vertex, so
// of several collinear vertices only the farthest is a tangent point.
//
// The hull may also be a two-vertex segment. Seen from a point on its line,
// the far endpoint is then both tangents.
func IsTangentLine(origin *Vector, hull *Polygon, indexOfEnd int, side TangentSide) bool {
	end := hull.Vertex(indexOfEnd)
	want := 1
	if side == RightTangent {
		want = -1
	}
	return neighborSupports(origin, end, hull.Vertex(indexOfEnd-1), want) &&
		neighborSupports(origin, end, hull.Vertex(indexOfEnd+1), want)
}

func neighborSupports(origin, end, neighbor *Vector, want int) bool {
	turn := OrientationSign(origin, end, neighbor)
	if turn == want {
		return true
	}
	return turn == 0 && distanceSquared(origin, neighbor) < distanceSquared(origin, end)
}

// A 2D convex hull algorithm. Run returns nil when there are too few points.
type Hull2D interface {
	Name() string
	Run(points []*Vector) *Polygon
}

var Algorithms2D = map[string]Hull2D{}

func registerAlgorithm(algorithm Hull2D) {
	Algorithms2D[algorithm.Name()] = algorithm
}

// Look up a 2D algorithm by name.
func Algorithm2D(name string) (Hull2D, error) {
	algorithm, ok := Algorithms2D[name]
	if !ok {
		return nil, errors.Errorf("unknown algorithm %q", name)
	}
	return algorithm, nil
}

// Sorted names of the registered 2D algorithms.
func AlgorithmNames() []string {
	names := make([]string, 0, len(Algorithms2D))
	for name := range Algorithms2D {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
