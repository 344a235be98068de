package internal

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wrap3D(points []*Vector) (*Mesh, error) {
	return recoverMesh(func() *Mesh {
		return GiftWrapping3D{}.Run(points)
	})
}

func TestGiftWrapping3D_Tetrahedron(t *testing.T) {
	points, _ := tetrahedron()
	points = append(points, NewVector3(2, 2, 2))

	mesh, err := wrap3D(points)
	require.NoError(t, err)
	AssertValidMesh(t, points, mesh)
	assert.Len(t, mesh.Vertices, 4)
	assert.Len(t, mesh.Faces, 4)
	assert.Len(t, mesh.HalfEdges, 12)
	assert.Equal(t, EmptyVertex, mesh.IndexOfVertex(points[4]))
}

func TestGiftWrapping3D_Octahedron(t *testing.T) {
	points := Octahedron(10)
	mesh, err := wrap3D(points)
	require.NoError(t, err)
	AssertValidMesh(t, points, mesh)
	assert.Len(t, mesh.Vertices, 6)
	assert.Len(t, mesh.Faces, 8)
}

func TestGiftWrapping3D_Cube(t *testing.T) {
	// Four coplanar points per side, so every side is split into two triangles.
	points := Cube(10)
	points = append(points, NewVector3(5, 5, 5), NewVector3(3, 7, 4))

	mesh, err := wrap3D(points)
	require.NoError(t, err)
	AssertValidMesh(t, points, mesh)
	assert.Len(t, mesh.Vertices, 8)
	assert.Len(t, mesh.Faces, 12)
}

func TestGiftWrapping3D_RandomPoints(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := RandWithSeed(seed)
			var points []*Vector
			var err error
			if seed%2 == 0 {
				points, err = RandomPointsInSphere(rng, Vector{X: 50, Y: -20, Z: 5}, 100, 30, true)
			} else {
				points, err = RandomPointsInBox(rng, Vector{}, Vector{X: 200, Y: 100, Z: 150}, 30, true)
			}
			require.NoError(t, err)

			mesh, err := wrap3D(points)
			require.NoError(t, err)
			AssertValidMesh(t, points, mesh)

			// Starting elsewhere in the input gives the same hull
			shuffled, err := wrap3D(Shuffled(rng, points))
			require.NoError(t, err)
			assert.Len(t, shuffled.Vertices, len(mesh.Vertices))
			for _, v := range mesh.Vertices {
				assert.NotEqual(t, EmptyVertex, shuffled.IndexOfVertex(&v.Point))
			}
		})
	}
}

// Faces with four or more coplanar points, including points inside a face or
// on its edges.
func TestGiftWrapping3D_CoplanarFaces(t *testing.T) {
	cases := []struct {
		name     string
		points   []*Vector
		vertices int
	}{
		{"square pyramid", SquarePyramid(2, 2), 5},
		{"pyramid with base center", append(SquarePyramid(2, 2), NewVector3(1, 1, 0)), 5},
		{"pyramid with base edge midpoints", append(SquarePyramid(2, 2),
			NewVector3(1, 0, 0), NewVector3(2, 1, 0), NewVector3(1, 2, 0), NewVector3(0, 1, 0)), 5},
		{"cube with face centers", append(append(Cube(10), CubeFaceCenters(10)...), NewVector3(5, 5, 5)), 8},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, points := range [][]*Vector{c.points, Shuffled(RandWithSeed(9), c.points)} {
				mesh, err := wrap3D(points)
				require.NoError(t, err)
				AssertValidMesh(t, points, mesh)
				assert.Equal(t, 2, mesh.EulerCharacteristic())
				assert.Len(t, mesh.Vertices, c.vertices)
				assert.Len(t, mesh.Faces, 2*c.vertices-4)
			}
		})
	}

	t.Run("face center is not a vertex", func(t *testing.T) {
		points := append(SquarePyramid(2, 2), NewVector3(1, 1, 0))
		mesh, err := wrap3D(points)
		require.NoError(t, err)
		assert.Equal(t, EmptyVertex, mesh.IndexOfVertex(points[5]))
	})
}

// Small integer grids, with no general position filtering.
func TestGiftWrapping3D_GridPoints(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		t.Run(fmt.Sprintf("seed %d", seed), func(t *testing.T) {
			rng := RandWithSeed(seed)
			points := GridPoints3D(rng, 4, 5+rng.IntN(20))
			if allCoplanar(points) {
				t.Skip("all points are coplanar")
			}

			mesh, err := wrap3D(points)
			require.NoError(t, err, "points %v", points)
			AssertValidMesh(t, points, mesh)
			assert.Equal(t, 2, mesh.EulerCharacteristic())

			shuffled, err := wrap3D(Shuffled(rng, points))
			require.NoError(t, err)
			assert.Len(t, shuffled.Vertices, len(mesh.Vertices))
			for _, v := range mesh.Vertices {
				assert.NotEqual(t, EmptyVertex, shuffled.IndexOfVertex(&v.Point))
			}
		})
	}
}

func TestPlanarRing(t *testing.T) {
	square := []*Vector{
		NewVector3(0, 0, 0),
		NewVector3(2, 0, 0),
		NewVector3(2, 2, 0),
		NewVector3(0, 2, 0),
		NewVector3(1, 0, 0),
		NewVector3(1, 1, 0),
		NewVector3(1, 1, 5),
	}
	corners := square[:4]

	for _, tc := range []struct {
		name    string
		a, b, c *Vector
		upward  bool
	}{
		{"wound up", square[0], square[1], square[2], true},
		{"wound down", square[0], square[2], square[1], false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ring := planarRing(square, tc.a, tc.b, tc.c)
			assert.ElementsMatch(t, corners, ring)
			for i := range ring {
				a, b, next := ring[i], ring[CircularIndex(i+1, len(ring))], ring[CircularIndex(i+2, len(ring))]
				turn := b.Sub(*a).Cross(next.Sub(*b)).Z
				assert.Equal(t, tc.upward, turn > 0, "turn at %v", b)
			}
		})
	}
}

func TestGiftWrapping3D_Degenerate(t *testing.T) {
	t.Run("too few points", func(t *testing.T) {
		points, _ := tetrahedron()
		assert.Nil(t, GiftWrapping3D{}.Run(points[:3]))
	})

	t.Run("coplanar", func(t *testing.T) {
		points := []*Vector{
			NewVector3(0, 0, 0),
			NewVector3(10, 0, 0),
			NewVector3(0, 10, 0),
			NewVector3(10, 10, 0),
			NewVector3(5, 3, 0),
		}
		_, err := wrap3D(points)
		assert.True(t, errors.Is(err, ErrDegenerate), "got %v", err)
	})
}

func allCoplanar(points []*Vector) bool {
	a := points[0]
	for _, b := range points {
		for _, c := range points {
			if b.Sub(*a).Cross(c.Sub(*a)).Length() == 0 {
				continue
			}
			for _, p := range points {
				if !Coplanar(a, b, c, p) {
					return false
				}
			}
			return true
		}
	}
	return true
}
