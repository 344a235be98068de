package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/convexhull/dbg"
)

// Human readable dumps of a mesh for debugging.

func (m *Mesh) VertexName(v VertexIndex) string {
	return aurora.Cyan(dbg.Name("vertex", int(v))).String()
}

// Twinned half-edges are green, open ones red.
func (m *Mesh) EdgeName(e EdgeIndex) string {
	name := dbg.Name("edge", int(e))
	if e == EmptyEdge {
		return name
	}
	if m.HalfEdges[e].Twin == EmptyEdge {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}

func (m *Mesh) FaceName(f FaceIndex) string {
	return aurora.Magenta(dbg.Name("face", int(f))).String()
}

func (m *Mesh) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Mesh { V: %d, E: %d, F: %d, χ: %d }",
		len(m.Vertices), len(m.HalfEdges)/2, len(m.Faces), m.EulerCharacteristic()))

	for i, v := range m.Vertices {
		lines = append(lines, fmt.Sprintf("  vertex %s %v leaving: %s",
			m.VertexName(VertexIndex(i)), v.Point, m.EdgeName(v.IncidentEdge)))
	}
	for i := range m.Faces {
		face := FaceIndex(i)
		var parts []string
		for _, edge := range m.Faces[face].Edges {
			he := m.HalfEdges[edge]
			parts = append(parts, fmt.Sprintf("%s(%s→%s, twin %s)",
				m.EdgeName(edge), m.VertexName(he.Origin), m.VertexName(he.End), m.EdgeName(he.Twin)))
		}
		lines = append(lines, fmt.Sprintf("  face %s [%s]", m.FaceName(face), strings.Join(parts, ", ")))
	}
	return strings.Join(lines, "\n")
}
