package internal

import (
	"sort"

	"github.com/pkg/errors"
)

// Doubly connected edge list for triangulated polyhedra.
//
// Vertices, half-edges and faces live in flat slices, and every link between
// them is an index into those slices. Nothing is ever removed, so an index
// stays valid for the life of the mesh.

type VertexIndex int
type EdgeIndex int
type FaceIndex int

const (
	EmptyVertex = VertexIndex(-1)
	EmptyEdge   = EdgeIndex(-1)
	EmptyFace   = FaceIndex(-1)
)

type Vertex struct {
	Point Vector
	// Any one half-edge leaving this vertex
	IncidentEdge EdgeIndex
}

type HalfEdge struct {
	Origin, End VertexIndex
	Twin        EdgeIndex
	Prev, Next  EdgeIndex
	Face        FaceIndex
}

// Faces are always triangles. The edges run around the face by the right-hand
// rule about its outward normal.
type Face struct {
	Edges [3]EdgeIndex
}

type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Faces     []Face

	// Vertex indices ordered by Compare, for binary search
	sorted []VertexIndex
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Position in m.sorted where p is or would be inserted.
func (m *Mesh) searchVertex(p *Vector) int {
	return sort.Search(len(m.sorted), func(i int) bool {
		return Compare(&m.Vertices[m.sorted[i]].Point, p) >= 0
	})
}

// Index of the vertex equal to p within MeshEpsilon, or EmptyVertex.
func (m *Mesh) IndexOfVertex(p *Vector) VertexIndex {
	i := m.searchVertex(p)
	if i < len(m.sorted) && EqualMesh(&m.Vertices[m.sorted[i]].Point, p) {
		return m.sorted[i]
	}
	return EmptyVertex
}

// Add p unless an equal vertex is already present. Either way, return its
// index.
func (m *Mesh) AddVertex(p *Vector) VertexIndex {
	i := m.searchVertex(p)
	if i < len(m.sorted) && EqualMesh(&m.Vertices[m.sorted[i]].Point, p) {
		return m.sorted[i]
	}

	index := VertexIndex(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Point: *p, IncidentEdge: EmptyEdge})

	m.sorted = append(m.sorted, EmptyVertex)
	copy(m.sorted[i+1:], m.sorted[i:])
	m.sorted[i] = index
	return index
}

// Add an unlinked half-edge from origin to end.
func (m *Mesh) AddHalfEdge(origin, end VertexIndex) EdgeIndex {
	index := EdgeIndex(len(m.HalfEdges))
	m.HalfEdges = append(m.HalfEdges, HalfEdge{
		Origin: origin,
		End:    end,
		Twin:   EmptyEdge,
		Prev:   EmptyEdge,
		Next:   EmptyEdge,
		Face:   EmptyFace,
	})
	if m.Vertices[origin].IncidentEdge == EmptyEdge {
		m.Vertices[origin].IncidentEdge = index
	}
	return index
}

// Add the triangle a->b->c with its three half-edges linked in a cycle.
// Twins are not matched here.
func (m *Mesh) AddFace(a, b, c VertexIndex) FaceIndex {
	face := FaceIndex(len(m.Faces))
	edges := [3]EdgeIndex{
		m.AddHalfEdge(a, b),
		m.AddHalfEdge(b, c),
		m.AddHalfEdge(c, a),
	}
	for i, edge := range edges {
		he := &m.HalfEdges[edge]
		he.Next = edges[CircularIndex(i+1, 3)]
		he.Prev = edges[CircularIndex(i-1, 3)]
		he.Face = face
	}
	m.Faces = append(m.Faces, Face{Edges: edges})
	return face
}

// Identifies a directed edge by its endpoints.
type EdgeKey struct {
	Origin, End VertexIndex
}

// Half-edges still waiting for their twin, by their own key.
type PendingEdges map[EdgeKey]EdgeIndex

// Pair edge with its twin if the reverse edge is already pending, otherwise
// leave edge pending. Reports whether a twin was found.
func (m *Mesh) MatchTwinHalfEdge(edge EdgeIndex, pending PendingEdges) bool {
	he := &m.HalfEdges[edge]
	key := EdgeKey{Origin: he.Origin, End: he.End}
	reverse := EdgeKey{Origin: he.End, End: he.Origin}

	if twin, ok := pending[reverse]; ok {
		he.Twin = twin
		m.HalfEdges[twin].Twin = edge
		delete(pending, reverse)
		return true
	}

	if existing, ok := pending[key]; ok {
		// Two faces claiming the same side of an edge means the surface is not
		// a manifold
		fatalf("half-edges %d and %d both run %d->%d", existing, edge, key.Origin, key.End)
	}
	pending[key] = edge
	return false
}

func (m *Mesh) FaceVertices(face FaceIndex) [3]VertexIndex {
	var result [3]VertexIndex
	for i, edge := range m.Faces[face].Edges {
		result[i] = m.HalfEdges[edge].Origin
	}
	return result
}

func (m *Mesh) FacePoints(face FaceIndex) [3]*Vector {
	var result [3]*Vector
	for i, v := range m.FaceVertices(face) {
		result[i] = &m.Vertices[v].Point
	}
	return result
}

// Outward normal by the right-hand rule, not normalized.
func (m *Mesh) FaceNormal(face FaceIndex) Vector {
	p := m.FacePoints(face)
	return p[1].Sub(*p[0]).Cross(p[2].Sub(*p[0]))
}

// V - E + F. A closed hull is a topological sphere, which gives 2.
func (m *Mesh) EulerCharacteristic() int {
	return len(m.Vertices) - len(m.HalfEdges)/2 + len(m.Faces)
}

// Every half-edge has a twin.
func (m *Mesh) IsClosed() bool {
	for _, he := range m.HalfEdges {
		if he.Twin == EmptyEdge {
			return false
		}
	}
	return true
}

// Check the link invariants: twins point back at each other with swapped
// endpoints, and each face's edges form a closed next/prev cycle that
// belongs to that face.
func (m *Mesh) Validate() error {
	for i, he := range m.HalfEdges {
		edge := EdgeIndex(i)
		if he.Twin != EmptyEdge {
			twin := m.HalfEdges[he.Twin]
			if twin.Twin != edge {
				return errors.Errorf("half-edge %d: twin %d points back at %d", edge, he.Twin, twin.Twin)
			}
			if twin.Origin != he.End || twin.End != he.Origin {
				return errors.Errorf("half-edge %d (%d->%d): twin runs %d->%d", edge, he.Origin, he.End, twin.Origin, twin.End)
			}
		}
		if he.Next == EmptyEdge || he.Prev == EmptyEdge || he.Face == EmptyFace {
			return errors.Errorf("half-edge %d is not part of a face", edge)
		}
		if m.HalfEdges[he.Next].Prev != edge || m.HalfEdges[he.Prev].Next != edge {
			return errors.Errorf("half-edge %d: next/prev links disagree", edge)
		}
		if m.HalfEdges[he.Next].Origin != he.End {
			return errors.Errorf("half-edge %d: next starts at %d, not %d", edge, m.HalfEdges[he.Next].Origin, he.End)
		}
	}

	for i, face := range m.Faces {
		first := face.Edges[0]
		edge := first
		for j := 0; j < 3; j++ {
			if m.HalfEdges[edge].Face != FaceIndex(i) {
				return errors.Errorf("face %d: half-edge %d belongs to face %d", i, edge, m.HalfEdges[edge].Face)
			}
			edge = m.HalfEdges[edge].Next
		}
		if edge != first {
			return errors.Errorf("face %d: edge cycle does not close after 3 steps", i)
		}
	}
	return nil
}

// Build a mesh from indexed triangles, deduplicating vertices and matching
// all twins. Faces are taken as given: they must already be wound outward.
func MeshFromTriangles(points []*Vector, triangles [][3]int) *Mesh {
	m := NewMesh()
	indices := make([]VertexIndex, len(points))
	for i, p := range points {
		indices[i] = m.AddVertex(p)
	}

	pending := make(PendingEdges)
	for _, triangle := range triangles {
		for _, corner := range triangle {
			if corner < 0 || corner >= len(points) {
				invalidf("triangle %v refers to vertex %d of %d", triangle, corner, len(points))
			}
		}
		face := m.AddFace(indices[triangle[0]], indices[triangle[1]], indices[triangle[2]])
		for _, edge := range m.Faces[face].Edges {
			m.MatchTwinHalfEdge(edge, pending)
		}
	}
	return m
}
