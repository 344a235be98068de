package internal

import "sort"

// Divide and conquer: sort lexicographically, hull small runs directly, and
// merge neighboring hulls by finding the two bridges between them.
//
// The recursion over ranges is driven by an explicit stack, so the depth of
// the Go stack does not grow with the input.
type MergeHull struct{}

func init() {
	registerAlgorithm(MergeHull{})
}

func (MergeHull) Name() string {
	return "mergehull"
}

// Weight of each corner in the synthesized centroid for two-point ranges.
const dummyWeight = 1.0 / 3.0

func (MergeHull) Run(points []*Vector) *Polygon {
	if ValidateInput(points) != nil {
		return nil
	}

	sorted := make([]*Vector, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})
	// Duplicates are neighbors after sorting. The first of each run is kept.
	unique := sorted[:1]
	for _, p := range sorted[1:] {
		if !Equal(p, unique[len(unique)-1]) {
			unique = append(unique, p)
		}
	}
	if len(unique) < 2 {
		fatalf("all %d points coincide with %v", len(points), *unique[0])
	}

	hull := hullOfRange(unique, 0, len(unique)-1)

	// Drop the padding points that two-point ranges introduced.
	input := NewPointSet(points)
	vertices := make([]*Vector, 0, len(hull.Vertices))
	for _, v := range hull.Vertices {
		if input.Has(v) {
			vertices = append(vertices, v)
		}
	}
	hull.Vertices = vertices
	return hull
}

type mergeFrame struct {
	start, end int
	// Both halves are already on the hull stack
	split bool
}

// Hull of sorted[start..end] inclusive.
func hullOfRange(sorted []*Vector, start, end int) *Polygon {
	frames := []mergeFrame{{start: start, end: end}}
	var hulls []*Polygon

	for len(frames) > 0 {
		frame := frames[len(frames)-1]
		frames = frames[:len(frames)-1]

		size := frame.end - frame.start + 1
		if size <= 3 {
			hulls = append(hulls, baseHull(sorted, frame.start, frame.end))
			continue
		}

		middle := size/2 + frame.start
		if !frame.split {
			// Pushed in reverse so the left half is built first
			frames = append(frames,
				mergeFrame{start: frame.start, end: frame.end, split: true},
				mergeFrame{start: middle, end: frame.end},
				mergeFrame{start: frame.start, end: middle - 1},
			)
			continue
		}

		right := hulls[len(hulls)-1]
		left := hulls[len(hulls)-2]
		hulls = hulls[:len(hulls)-2]
		hulls = append(hulls, MergeHulls(left, right))
	}
	return hulls[0]
}

// The hull of a run of two or three points. A triangle is used as is. A
// collinear triple keeps only its ends, and two points get a third one at the
// centroid of themselves and a neighbor from just outside the run, so that
// the base case is still a triangle. The centroid lies inside the hull of the
// input, so it never survives as a real hull vertex.
//
// The neighbor has to be adjacent to the run, or the centroid could land
// past the next run's first point and the hulls would no longer be separated
// by x. When both neighbors are on the line through the pair, the base hull
// is the bare segment.
func baseHull(sorted []*Vector, start, end int) *Polygon {
	p := sorted[start]
	q := sorted[end]
	if end-start == 2 && !Collinear(p, sorted[start+1], q) {
		return MakeTriangle(p, sorted[start+1], q)
	}

	for _, i := range [2]int{end + 1, start - 1} {
		if i < 0 || i >= len(sorted) || Collinear(p, q, sorted[i]) {
			continue
		}
		neighbor := sorted[i]
		dummy := &Vector{}
		dummy.AddInPlace(p.Scale(dummyWeight)).
			AddInPlace(q.Scale(dummyWeight)).
			AddInPlace(neighbor.Scale(dummyWeight))
		return MakeTriangle(p, q, dummy)
	}
	return NewPolygon(p, q)
}

// Merge two hulls where every vertex of left is lexicographically before
// every vertex of right. Either may be a two-vertex segment, and so may the
// result when everything so far is collinear.
//
// Upper and lower are meant in screen coordinates with y pointing down, where
// the hull winding is counterclockwise. The result is left forward from the
// upper bridge to the lower bridge, then right forward from the lower bridge
// back to the upper one.
func MergeHulls(left, right *Polygon) *Polygon {
	leftStart := left.IndexOfRightmostVertex()
	rightStart := right.IndexOfLeftmostVertex()

	lowerLeft, lowerRight := findBridge(left, right, leftStart, rightStart, LeftTangent, RightTangent)
	upperLeft, upperRight := findBridge(left, right, leftStart, rightStart, RightTangent, LeftTangent)

	merged := make([]*Vector, 0, left.Len()+right.Len())
	for i := upperLeft; ; i = CircularIndex(i+1, left.Len()) {
		merged = append(merged, left.Vertices[i])
		if i == lowerLeft {
			break
		}
	}
	for i := lowerRight; ; i = CircularIndex(i+1, right.Len()) {
		merged = append(merged, right.Vertices[i])
		if i == upperRight {
			break
		}
	}
	return NewPolygon(merged...)
}

// Preparata-Hong walk. Left moves until the line from the current right vertex
// touches it on leftSide, then right moves until the line from the current
// left vertex touches it on rightSide, and so on until both hold at once.
//
// The side also fixes the walk direction: a vertex that fails the left test
// is beaten by the one before it, and a vertex failing the right test by the
// one after it.
func findBridge(left, right *Polygon, leftIndex, rightIndex int, leftSide, rightSide TangentSide) (int, int) {
	maxRounds := left.Len() + right.Len() + 2
	for round := 0; ; round++ {
		if round > maxRounds {
			fatalf("bridge between %s and %s did not settle", left, right)
		}
		leftIndex = walkToTangent(right.Vertex(rightIndex), left, leftIndex, leftSide)
		if IsTangentLine(left.Vertex(leftIndex), right, rightIndex, rightSide) {
			return leftIndex, rightIndex
		}
		rightIndex = walkToTangent(left.Vertex(leftIndex), right, rightIndex, rightSide)
		if IsTangentLine(right.Vertex(rightIndex), left, leftIndex, leftSide) {
			return leftIndex, rightIndex
		}
	}
}

func walkToTangent(origin *Vector, hull *Polygon, index int, side TangentSide) int {
	direction := 1
	if side == LeftTangent {
		direction = -1
	}
	for steps := 0; !IsTangentLine(origin, hull, index, side); steps++ {
		if steps >= hull.Len() {
			fatalf("no %s tangent from %v to %s", side, *origin, hull)
		}
		index = CircularIndex(index+direction, hull.Len())
	}
	return index
}
