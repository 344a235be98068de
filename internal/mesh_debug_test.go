package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMesh_String(t *testing.T) {
	points, faces := tetrahedron()
	m := MeshFromTriangles(points, faces)

	lines := strings.Split(m.String(), "\n")
	assert.Equal(t, "Mesh { V: 4, E: 6, F: 4, χ: 2 }", lines[0])
	// A line per vertex, then a line per face
	assert.Len(t, lines, 1+4+4)
	assert.Contains(t, lines[1], "(0, 0)")
	assert.Contains(t, lines[4], "(0, 0, 10)")

	// Names are stable within a run
	assert.Equal(t, m.FaceName(2), m.FaceName(2))
	assert.Contains(t, m.EdgeName(EmptyEdge), "Ø")
}
