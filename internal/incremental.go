package internal

// Incremental hull: start from a triangle and grow it one point at a time,
// replacing the chain of edges visible from each new outside point.
type Incremental struct{}

func init() {
	registerAlgorithm(Incremental{})
}

func (Incremental) Name() string {
	return "incremental"
}

func (Incremental) Run(points []*Vector) *Polygon {
	if ValidateInput(points) != nil {
		return nil
	}

	hull, seed := IncrementalSeed(points)
	if hull.Len() < 3 {
		return hull
	}
	for i, p := range points {
		if seed.Has(i) || hull.Contains(p) {
			continue
		}
		AppendPoint(hull, p)
	}
	return hull
}

// Indices of the points that make up the starting triangle.
type SeedIndices [3]int

func (s SeedIndices) Has(i int) bool {
	return s[0] == i || s[1] == i || s[2] == i
}

// The starting hull: the first point, the next one distinct from it, and the
// next one off the line through both. Points skipped along the way are added
// later like any other. If every point is collinear there is no triangle, and
// the hull is the segment between the extremes, with every seed index -1.
func IncrementalSeed(points []*Vector) (*Polygon, SeedIndices) {
	seed := SeedIndices{0, -1, -1}
	for i := 1; i < len(points); i++ {
		if seed[1] < 0 {
			if !Equal(points[i], points[0]) {
				seed[1] = i
			}
		} else if !Collinear(points[0], points[seed[1]], points[i]) {
			seed[2] = i
			break
		}
	}
	if seed[2] < 0 {
		return CollinearExtremes(points), SeedIndices{-1, -1, -1}
	}
	return MakeTriangle(points[seed[0]], points[seed[1]], points[seed[2]]), seed
}

// Index of the first hull vertex where a line from p is tangent on the given
// side, or -1 if there is none (p is inside the hull).
func IndexOfSupportVertex(hull *Polygon, p *Vector, side TangentSide) int {
	for i := range hull.Vertices {
		if IsTangentLine(p, hull, i, side) {
			return i
		}
	}
	return -1
}

// Splice p into the hull in place, replacing the vertices between its two
// support vertices. Returns the support indices in the hull as it was before
// the splice. A point already inside leaves the hull untouched and gives -1
// for both.
func AppendPoint(hull *Polygon, p *Vector) (left, right int) {
	if hull.Contains(p) {
		return -1, -1
	}

	left = IndexOfSupportVertex(hull, p, LeftTangent)
	right = IndexOfSupportVertex(hull, p, RightTangent)
	if left < 0 || right < 0 {
		fatalf("no support vertices from %v to %s", *p, hull)
	}

	vertices := hull.Vertices
	var spliced []*Vector
	if left < right {
		// The visible chain lies inside the array: drop what is strictly
		// between the supports and put p there.
		spliced = make([]*Vector, 0, len(vertices)-(right-left-1)+1)
		spliced = append(spliced, vertices[:left+1]...)
		spliced = append(spliced, p)
		spliced = append(spliced, vertices[right:]...)
	} else {
		// The visible chain wraps past the end. What survives is the run from
		// the right support forward to the left one, and p closes the ring.
		spliced = make([]*Vector, 0, left-right+2)
		spliced = append(spliced, vertices[right:left+1]...)
		spliced = append(spliced, p)
	}
	hull.Vertices = spliced
	return left, right
}
