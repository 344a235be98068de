package internal

// This contains no actual tests. It is just a helper for testing hull
// validity.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to check that a 2D hull is valid. The rules are:
// 1. Every hull vertex is one of the input points (by identity), used once.
// 2. The hull is strictly convex in hull winding.
// 3. Every input point is inside the hull or on its boundary.
func AssertValidHull(t *testing.T, points []*Vector, hull *Polygon) {
	t.Helper()
	require.NotNil(t, hull)

	input := NewPointSet(points)
	seen := make(PointSet)
	for _, v := range hull.Vertices {
		require.True(t, input.Has(v), "hull vertex %v is not an input point", v)
		require.False(t, seen.Has(v), "hull vertex %v appears twice", v)
		seen.Add(v)
	}

	if !assert.True(t, hull.IsConvex(), "hull is not strictly convex: %s", hull) {
		hull.dbgDraw(points, 5)
	}
	for _, p := range points {
		assert.True(t, hull.Contains(p), "point %v is outside %s", p, hull)
	}
}

// Helper to check a 3D hull:
// 1. The link invariants hold and every half-edge has a twin.
// 2. It is a topological sphere with 2V-4 triangles.
// 3. No input point is in front of any face.
// 4. Every mesh vertex is one of the input points.
func AssertValidMesh(t *testing.T, points []*Vector, mesh *Mesh) {
	t.Helper()
	require.NotNil(t, mesh)
	require.NoError(t, mesh.Validate())
	require.True(t, mesh.IsClosed(), "mesh has open half-edges:\n%s", mesh)
	assert.Equal(t, 2, mesh.EulerCharacteristic())
	assert.Len(t, mesh.Faces, 2*len(mesh.Vertices)-4)

	for i := range mesh.Faces {
		corners := mesh.FacePoints(FaceIndex(i))
		for _, p := range points {
			assert.GreaterOrEqual(t, SignedVolume3(corners[0], corners[1], corners[2], p), -VolumeTolerance,
				"point %v is in front of face %d", p, i)
		}
	}

	for _, v := range mesh.Vertices {
		found := false
		for _, p := range points {
			if EqualMesh(&v.Point, p) {
				found = true
				break
			}
		}
		assert.True(t, found, "mesh vertex %v is not an input point", v.Point)
	}
}

// Run a hull algorithm, converting a hull panic to an error the way the
// public API does.
func runRecovered(algorithm Hull2D, points []*Vector) (result *Polygon, err error) {
	defer func() {
		recoveredErr := HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return algorithm.Run(points), nil
}

func vertexSet(poly *Polygon) PointSet {
	return NewPointSet(poly.Vertices)
}
