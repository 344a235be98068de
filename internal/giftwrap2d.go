package internal

// Jarvis march. Starting from the lowest point, repeatedly step to the point
// that leaves every other input point on the inner side of the new edge.
type GiftWrapping2D struct{}

func init() {
	registerAlgorithm(GiftWrapping2D{})
}

func (GiftWrapping2D) Name() string {
	return "giftwrap"
}

func (GiftWrapping2D) Run(points []*Vector) *Polygon {
	if ValidateInput(points) != nil {
		return nil
	}

	first := points[IndexOfLowestY(points)]
	hull := NewPolygon(first)
	last := first
	// Each step adds a distinct hull vertex, so a closed hull never needs more
	// steps than there are points. Running past that means the epsilon
	// comparisons disagree with each other.
	for steps := 0; ; steps++ {
		if steps > len(points) {
			fatalf("gift wrapping did not close after %d steps", steps)
		}
		next := nextWrappingPoint(points, last)
		if Equal(next, first) {
			break
		}
		hull.Vertices = append(hull.Vertices, next)
		last = next
	}
	return hull
}

// The point p such that no input point lies strictly outside last->p. On a
// collinear tie the farther point wins, so points lying along a hull edge are
// skipped.
func nextWrappingPoint(points []*Vector, last *Vector) *Vector {
	var candidate *Vector
	for _, p := range points {
		if Equal(p, last) {
			continue
		}
		if candidate == nil {
			candidate = p
			continue
		}
		switch OrientationSign(last, candidate, p) {
		case 1:
			candidate = p
		case 0:
			if distanceSquared(last, p) > distanceSquared(last, candidate) {
				candidate = p
			}
		}
	}
	if candidate == nil {
		fatalf("all points coincide with %v", *last)
	}
	return candidate
}

func distanceSquared(a, b *Vector) float64 {
	d := a.Sub(*b)
	return d.Dot(d)
}
