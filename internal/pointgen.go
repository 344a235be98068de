package internal

import (
	"math"
	"math/rand/v2"

	"github.com/pkg/errors"
	gmath "github.com/quasilyte/gmath"
)

// Random point clouds for tests and the demo. With generalPosition set, a
// candidate is rejected if it would make three points collinear (2D) or four
// points coplanar (3D) with points already chosen.

// Give up on general position after this many rejections per point.
const maxRejectionsPerPoint = 1000

func RandWithSeed(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func randf(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// A copy of values in random order.
func Shuffled[T any](rng *rand.Rand, values []T) []T {
	values = append([]T(nil), values...)
	rng.Shuffle(len(values), func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})
	return values
}

// Spherical coordinates: alpha is the longitude in the xy plane and beta the
// angle from the z axis.
func VectorFromPolar(r, alpha, beta float64) Vector {
	return Vector{
		X: r * math.Sin(beta) * math.Cos(alpha),
		Y: r * math.Sin(beta) * math.Sin(alpha),
		Z: r * math.Cos(beta),
	}
}

func RandomPointsInRect(rng *rand.Rand, clip gmath.Rect, n int, generalPosition bool) ([]*Vector, error) {
	return collectPoints(n, generalPosition, true, func() *Vector {
		return NewVector2(randf(rng, clip.Min.X, clip.Max.X), randf(rng, clip.Min.Y, clip.Max.Y))
	})
}

// Uniform in the disc, by rejection from its bounding square.
func RandomPointsInCircle(rng *rand.Rand, center gmath.Vec, radius float64, n int, generalPosition bool) ([]*Vector, error) {
	corner := gmath.Vec{X: radius, Y: radius}
	bounds := gmath.Rect{Min: center.Sub(corner), Max: center.Add(corner)}
	return collectPoints(n, generalPosition, true, func() *Vector {
		for {
			p := gmath.Vec{
				X: randf(rng, bounds.Min.X, bounds.Max.X),
				Y: randf(rng, bounds.Min.Y, bounds.Max.Y),
			}
			if p.Sub(center).Len() <= radius {
				return NewVector2(p.X, p.Y)
			}
		}
	})
}

func RandomPointsInBox(rng *rand.Rand, min, max Vector, n int, generalPosition bool) ([]*Vector, error) {
	return collectPoints(n, generalPosition, false, func() *Vector {
		return NewVector3(randf(rng, min.X, max.X), randf(rng, min.Y, max.Y), randf(rng, min.Z, max.Z))
	})
}

func RandomPointsInSphere(rng *rand.Rand, center Vector, radius float64, n int, generalPosition bool) ([]*Vector, error) {
	return collectPoints(n, generalPosition, false, func() *Vector {
		p := VectorFromPolar(randf(rng, 0, radius), randf(rng, 0, 2*math.Pi), randf(rng, 0, math.Pi))
		return p.AddInPlace(center)
	})
}

func collectPoints(n int, generalPosition, in2D bool, sample func() *Vector) ([]*Vector, error) {
	if n < 0 {
		return nil, errors.Errorf("cannot generate %d points", n)
	}

	points := make([]*Vector, 0, n)
	rejections := 0
	for len(points) < n {
		p := sample()
		if generalPosition && !keepsGeneralPosition(points, p, in2D) {
			rejections++
			if rejections > maxRejectionsPerPoint*n {
				return nil, errors.Errorf("could not place %d points in general position", n)
			}
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

func keepsGeneralPosition(points []*Vector, p *Vector, in2D bool) bool {
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			if in2D {
				if Collinear(points[i], points[j], p) {
					return false
				}
				continue
			}
			for k := j + 1; k < len(points); k++ {
				if Coplanar(points[i], points[j], points[k], p) {
					return false
				}
			}
		}
	}
	return true
}
