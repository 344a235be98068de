package internal

import "sort"

// Graham scan: sort by polar angle around the lowest point, then keep a stack
// of vertices that always turn the right way.
type GrahamScan struct{}

func init() {
	registerAlgorithm(GrahamScan{})
}

func (GrahamScan) Name() string {
	return "graham"
}

func (GrahamScan) Run(points []*Vector) *Polygon {
	if ValidateInput(points) != nil {
		return nil
	}

	pivotIndex := IndexOfLowestY(points)
	pivot := points[pivotIndex]
	sorted := sortAroundPivot(pivot, points, pivotIndex)

	stack := PointStack{pivot}
	for _, candidate := range sorted {
		// Pop every vertex that would not make a strict turn toward the
		// candidate. Collinear vertices go too, so the hull is strictly convex.
		for len(stack) >= 2 && OrientationSign(stack.PeekSecond(), stack.Peek(), candidate) >= 0 {
			stack.Pop()
		}
		stack.Push(candidate)
	}
	return NewPolygon(stack...)
}

// The points other than the pivot, ordered by decreasing polar angle. The
// orientation test is the comparator. Points sharing a ray from the pivot
// collapse to the farthest one, since the nearer ones lie on the segment to
// it and can never be hull vertices.
func sortAroundPivot(pivot *Vector, points []*Vector, pivotIndex int) []*Vector {
	rest := make([]*Vector, 0, len(points)-1)
	for i, p := range points {
		if i == pivotIndex || Equal(p, pivot) {
			continue
		}
		rest = append(rest, p)
	}

	sort.SliceStable(rest, func(i, j int) bool {
		if sign := OrientationSign(pivot, rest[i], rest[j]); sign != 0 {
			return sign < 0
		}
		return distanceSquared(pivot, rest[i]) < distanceSquared(pivot, rest[j])
	})

	result := make([]*Vector, 0, len(rest))
	for _, p := range rest {
		if len(result) > 0 && OrientationSign(pivot, result[len(result)-1], p) == 0 {
			// Nearer first, so p is at least as far as what we kept
			result[len(result)-1] = p
			continue
		}
		result = append(result, p)
	}
	return result
}
