package internal

import (
	"embed"
	"log"
	"math"
	"math/rand/v2"
)

// Fixtures are point clouds drawn as SVG: circle centers and polygon vertices
// become points. If anything goes wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []*Vector {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	points, err := ReadSVGPoints(fixture)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	return points
}

// Some ad hoc code specified fixtures

// Square with an interior point at its center.
func SquareWithCenter() []*Vector {
	return []*Vector{
		NewVector2(0, 0),
		NewVector2(4, 0),
		NewVector2(4, 4),
		NewVector2(0, 4),
		NewVector2(2, 2),
	}
}

// Star with n spikes. The inner points are never on the hull.
func SimpleStar(n int) []*Vector {
	var points []*Vector
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 2*n; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / float64(2*n)
		points = append(points, NewVector2(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return points
}

// Regular octahedron of the given radius.
func Octahedron(r float64) []*Vector {
	return []*Vector{
		NewVector3(r, 0, 0),
		NewVector3(-r, 0, 0),
		NewVector3(0, r, 0),
		NewVector3(0, -r, 0),
		NewVector3(0, 0, r),
		NewVector3(0, 0, -r),
	}
}

func Cube(side float64) []*Vector {
	var points []*Vector
	for _, x := range []float64{0, side} {
		for _, y := range []float64{0, side} {
			for _, z := range []float64{0, side} {
				points = append(points, NewVector3(x, y, z))
			}
		}
	}
	return points
}

// Square pyramid with its apex over the center of the base, so the base is a
// face with four coplanar corners.
func SquarePyramid(side, height float64) []*Vector {
	return []*Vector{
		NewVector3(0, 0, 0),
		NewVector3(side, 0, 0),
		NewVector3(side, side, 0),
		NewVector3(0, side, 0),
		NewVector3(side/2, side/2, height),
	}
}

// The center of each face of Cube(side).
func CubeFaceCenters(side float64) []*Vector {
	half := side / 2
	return []*Vector{
		NewVector3(half, half, 0),
		NewVector3(half, half, side),
		NewVector3(half, 0, half),
		NewVector3(half, side, half),
		NewVector3(0, half, half),
		NewVector3(side, half, half),
	}
}

// n distinct points with integer coordinates in [0, size). Small grids are
// full of collinear triples.
func GridPoints2D(rng *rand.Rand, size, n int) []*Vector {
	var points []*Vector
	for _, cell := range rng.Perm(size * size)[:n] {
		points = append(points, NewVector2(float64(cell%size), float64(cell/size)))
	}
	return points
}

// n distinct points with integer coordinates in [0, size) on each axis, full
// of coplanar quadruples.
func GridPoints3D(rng *rand.Rand, size, n int) []*Vector {
	var points []*Vector
	for _, cell := range rng.Perm(size * size * size)[:n] {
		points = append(points, NewVector3(
			float64(cell%size),
			float64(cell/size%size),
			float64(cell/(size*size)),
		))
	}
	return points
}
