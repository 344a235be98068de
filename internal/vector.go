package internal

import (
	"fmt"
	"math"
)

// Tolerances. Orientation tests in the plane are tight; the mesh works at a
// coarser scale and its volume sign absorbs much more noise.
const (
	Epsilon         = 1e-12
	MeshEpsilon     = 1e-10
	VolumeTolerance = 0.5
)

// A point or free vector. For 2D work Z is left at zero.
//
// Hull algorithms hold pointers to the caller's vectors and never write
// through them, so pointer identity can be used to map results back to the
// input.
type Vector struct {
	X, Y, Z float64
}

func NewVector2(x, y float64) *Vector {
	return &Vector{X: x, Y: y}
}

func NewVector3(x, y, z float64) *Vector {
	return &Vector{X: x, Y: y, Z: z}
}

func equalWithin(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

// Two vectors are the same point if every coordinate matches within Epsilon.
func Equal(a, b *Vector) bool {
	return equalWithin(a.X, b.X, Epsilon) &&
		equalWithin(a.Y, b.Y, Epsilon) &&
		equalWithin(a.Z, b.Z, Epsilon)
}

// Coarser equality used to deduplicate mesh vertices.
func EqualMesh(a, b *Vector) bool {
	return equalWithin(a.X, b.X, MeshEpsilon) &&
		equalWithin(a.Y, b.Y, MeshEpsilon) &&
		equalWithin(a.Z, b.Z, MeshEpsilon)
}

// Lexicographic order on (x, y, z), with mesh tolerance on each coordinate.
func Compare(a, b *Vector) int {
	for _, pair := range [3][2]float64{{a.X, b.X}, {a.Y, b.Y}, {a.Z, b.Z}} {
		if equalWithin(pair[0], pair[1], MeshEpsilon) {
			continue
		}
		if pair[0] < pair[1] {
			return -1
		}
		return 1
	}
	return 0
}

func (v Vector) Add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Accumulate o into v. Only used on vectors the caller owns.
func (v *Vector) AddInPlace(o Vector) *Vector {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{v.X * s, v.Y * s, v.Z * s}
}

func (v Vector) Dot(o Vector) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector) Cross(o Vector) Vector {
	return Vector{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Unit vector in the same direction. The zero vector stays zero.
func (v Vector) Normalize() Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

// Linear interpolation from v (t=0) to o (t=1).
func (v Vector) Lerp(o Vector, t float64) Vector {
	return v.Add(o.Sub(v).Scale(t))
}

func (v Vector) String() string {
	if v.Z == 0 {
		return fmt.Sprintf("(%g, %g)", v.X, v.Y)
	}
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Twice the signed area of the triangle abc, as the cross product of (a-c)
// and (b-c). Positive means c is to the left of the directed line a->b,
// negative means it is to the right, and zero means the three are collinear.
func SignedArea2(a, b, c *Vector) float64 {
	return (a.X-c.X)*(b.Y-c.Y) - (a.Y-c.Y)*(b.X-c.X)
}

// Classify SignedArea2 as -1, 0 or +1. Anything within Epsilon of zero is
// collinear.
func OrientationSign(a, b, c *Vector) int {
	area := SignedArea2(a, b, c)
	if area > Epsilon {
		return 1
	}
	if area < -Epsilon {
		return -1
	}
	return 0
}

func Collinear(a, b, c *Vector) bool {
	return OrientationSign(a, b, c) == 0
}

// Scalar triple product (a-d)·((b-d)×(c-d)). It is negative when d lies on
// the side of plane abc that the right-hand-rule normal of abc points to,
// and positive behind it.
func SignedVolume3(a, b, c, d *Vector) float64 {
	ad := a.Sub(*d)
	bd := b.Sub(*d)
	cd := c.Sub(*d)
	return ad.Dot(bd.Cross(cd))
}

func VolumeSign(a, b, c, d *Vector) int {
	volume := SignedVolume3(a, b, c, d)
	if volume > VolumeTolerance {
		return 1
	}
	if volume < -VolumeTolerance {
		return -1
	}
	return 0
}

func Coplanar(a, b, c, d *Vector) bool {
	return VolumeSign(a, b, c, d) == 0
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Stack of points used by the Graham scan.
type PointStack []*Vector

func (s *PointStack) Push(p *Vector) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() *Vector {
	if len(*s) == 0 {
		return nil
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() *Vector {
	if len(*s) == 0 {
		return nil
	}
	return (*s)[len(*s)-1]
}

// The element under the top, or nil.
func (s *PointStack) PeekSecond() *Vector {
	if len(*s) < 2 {
		return nil
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Set of input points keyed by identity.
type PointSet map[*Vector]struct{}

func NewPointSet(points []*Vector) PointSet {
	set := make(PointSet, len(points))
	for _, p := range points {
		set.Add(p)
	}
	return set
}

func (s PointSet) Add(p *Vector) {
	s[p] = struct{}{}
}

func (s PointSet) Has(p *Vector) bool {
	_, ok := s[p]
	return ok
}
