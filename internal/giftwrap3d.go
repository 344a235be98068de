package internal

import (
	"math"
	"slices"
)

// Gift wrapping in 3D. A seed face is found on the hull, and then each open
// half-edge is wrapped by rotating a plane about it until it meets a point.
// That plane holds a new face. The mesh is done once every half-edge has its
// twin.
//
// A face with four or more coplanar points is taken whole: its points are
// hulled in the plane and the polygon is split into a fan of triangles, so
// the split never depends on which edge the face was reached from.
type GiftWrapping3D struct{}

// Two candidates whose wrapping angles differ by less than this are treated
// as coplanar with the edge. It is also the largest angle a point may make
// with a face's plane and still count as lying in it.
const angleTolerance = 1e-9

// Returns nil for fewer than 4 points.
func (GiftWrapping3D) Run(points []*Vector) *Mesh {
	if len(points) < 4 {
		return nil
	}

	w := wrapping{
		points:  points,
		mesh:    NewMesh(),
		pending: make(PendingEdges),
		// A closed triangulated hull with V vertices has 2V-4 faces.
		maxFaces: 2 * len(points),
	}
	a, b, c := seedFace(points)
	w.addFan(planarRing(points, a, b, c), a, nil)

	mesh := w.mesh
	for len(w.queue) > 0 {
		edge := w.queue[0]
		w.queue = w.queue[1:]

		he := mesh.HalfEdges[edge]
		if he.Twin != EmptyEdge {
			continue
		}

		origin := &mesh.Vertices[he.Origin].Point
		end := &mesh.Vertices[he.End].Point
		apex := &mesh.Vertices[mesh.HalfEdges[he.Next].End].Point
		next := wrapAroundEdge(points, origin, end, apex)

		// The new face is wound next->end->origin, so its ring runs from end
		// straight to origin and the fan closes over this half-edge.
		w.addFan(planarRing(points, next, end, origin), origin, end)
	}

	if euler := mesh.EulerCharacteristic(); euler != 2 {
		fatalf("wrapping produced a mesh with Euler characteristic %d", euler)
	}
	return mesh
}

// State of one run. Half-edges still without a twin wait in the queue.
type wrapping struct {
	points   []*Vector
	mesh     *Mesh
	pending  PendingEdges
	queue    []EdgeIndex
	maxFaces int
}

// Add the convex ring as a fan of triangles around pivot. If end is given, it
// must come right before pivot on the ring.
func (w *wrapping) addFan(ring []*Vector, pivot, end *Vector) {
	n := len(ring)
	first := -1
	for i, v := range ring {
		if EqualMesh(v, pivot) {
			first = i
			break
		}
	}
	if first < 0 {
		fatalf("face %s does not contain %v", NewPolygon(ring...), *pivot)
	}
	if end != nil && !EqualMesh(ring[CircularIndex(first-1, n)], end) {
		fatalf("face %s does not contain the edge %v->%v", NewPolygon(ring...), *end, *pivot)
	}

	indices := make([]VertexIndex, n)
	for i := range ring {
		indices[i] = w.mesh.AddVertex(ring[CircularIndex(first+i, n)])
	}

	for i := 1; i+1 < n; i++ {
		face := w.mesh.AddFace(indices[0], indices[i], indices[i+1])
		if len(w.mesh.Faces) > w.maxFaces {
			fatalf("wrapping produced %d faces for %d points", len(w.mesh.Faces), len(w.points))
		}
		for _, edge := range w.mesh.Faces[face].Edges {
			if !w.mesh.MatchTwinHalfEdge(edge, w.pending) {
				w.queue = append(w.queue, edge)
			}
		}
	}
}

// The hull face lying in the plane of abc, as a strictly convex ring wound
// the same way as abc. Points within angleTolerance of the plane belong to
// the face; those inside it or on its edges are left out.
func planarRing(points []*Vector, a, b, c *Vector) []*Vector {
	normal := b.Sub(*a).Cross(c.Sub(*a))
	unit := normal.Normalize()
	axis := dominantAxis(normal)

	// Hull the face in 2D by dropping the normal's largest axis. The
	// projection keeps collinear points collinear, and integer coordinates
	// stay exact.
	var flat []*Vector
	source := make(map[*Vector]*Vector)
	for _, p := range points {
		offset := p.Sub(*a)
		if math.Abs(unit.Dot(offset)) > angleTolerance*offset.Length() {
			continue
		}
		q := dropAxis(p, axis)
		flat = append(flat, q)
		source[q] = p
	}
	hull := GrahamScan{}.Run(flat)
	if hull == nil || hull.Len() < 3 {
		fatalf("face through %v, %v and %v is flat", *a, *b, *c)
	}

	// The 2D hull winding is clockwise. Seen from the side the normal points
	// to, the projection is mirrored when that axis component is negative.
	ring := make([]*Vector, hull.Len())
	for i, q := range hull.Vertices {
		ring[i] = source[q]
	}
	if normal.component(axis) > 0 {
		slices.Reverse(ring)
	}
	return ring
}

func dominantAxis(v Vector) int {
	axis := 0
	for i := 1; i < 3; i++ {
		if math.Abs(v.component(i)) > math.Abs(v.component(axis)) {
			axis = i
		}
	}
	return axis
}

func (v Vector) component(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// The other two coordinates, in the cyclic order that keeps the projection
// right-handed about the dropped axis.
func dropAxis(p *Vector, axis int) *Vector {
	switch axis {
	case 0:
		return NewVector2(p.Y, p.Z)
	case 1:
		return NewVector2(p.Z, p.X)
	}
	return NewVector2(p.X, p.Y)
}

func indexOfLowestZ(points []*Vector) int {
	lowest := 0
	for i, p := range points {
		if equalWithin(p.Z, points[lowest].Z, MeshEpsilon) {
			if Compare(p, points[lowest]) < 0 {
				lowest = i
			}
		} else if p.Z < points[lowest].Z {
			lowest = i
		}
	}
	return lowest
}

// Three hull vertices forming a face, wound so that every point lies behind
// the face (SignedVolume3 >= 0).
func seedFace(points []*Vector) (*Vector, *Vector, *Vector) {
	a := points[indexOfLowestZ(points)]

	// The horizontal plane through a supports the whole set. Rotating it about
	// the x axis through a finds a supporting plane through a second vertex.
	xAxisEnd := &Vector{X: a.X + 1, Y: a.Y, Z: a.Z}
	yAxisEnd := &Vector{X: a.X, Y: a.Y + 1, Z: a.Z}
	c := wrapAroundEdge(points, a, xAxisEnd, yAxisEnd)

	// That plane contains the x axis, so the axis end works as the apex of a
	// face on the other side of a->c. If c happens to lie on the axis, the
	// horizontal plane itself is the supporting one and the y axis does.
	reference := xAxisEnd
	if projectOntoEdgePlane(a, c, xAxisEnd).Length() < MeshEpsilon {
		reference = yAxisEnd
	}
	b := wrapAroundEdge(points, a, c, reference)

	// Orient by the point farthest from the seed plane
	var farthest float64
	for _, p := range points {
		volume := SignedVolume3(a, c, b, p)
		if math.Abs(volume) > math.Abs(farthest) {
			farthest = volume
		}
	}
	if math.Abs(farthest) <= MeshEpsilon {
		fatalf("all %d points are coplanar", len(points))
	}
	if farthest < 0 {
		return a, b, c
	}
	return a, c, b
}

// p - origin with its component along the edge removed.
func projectOntoEdgePlane(origin, end, p *Vector) Vector {
	axis := end.Sub(*origin).Normalize()
	offset := p.Sub(*origin)
	return offset.Sub(axis.Scale(offset.Dot(axis)))
}

// The point that a plane rotating about origin->end meets first, when it
// starts out containing apex and turns away from it.
//
// Seen along the edge, the points fill a wedge with its tip on the edge and
// the apex direction on one boundary. The other boundary is the point at the
// widest angle from the apex. Points on the same boundary go to the farthest
// one.
func wrapAroundEdge(points []*Vector, origin, end, apex *Vector) *Vector {
	reference := projectOntoEdgePlane(origin, end, apex)

	var (
		best       *Vector
		bestAngle  float64
		bestLength float64
	)
	for _, p := range points {
		if EqualMesh(p, origin) || EqualMesh(p, end) {
			continue
		}
		projected := projectOntoEdgePlane(origin, end, p)
		length := projected.Length()
		if length < MeshEpsilon {
			// On the line through the edge
			continue
		}

		angle := math.Atan2(reference.Cross(projected).Length(), reference.Dot(projected))
		switch {
		case best == nil, angle > bestAngle+angleTolerance:
		case angle > bestAngle-angleTolerance && length > bestLength:
		default:
			continue
		}
		best, bestAngle, bestLength = p, angle, length
	}

	if best == nil {
		fatalf("no point to wrap around edge %v->%v", *origin, *end)
	}
	return best
}
