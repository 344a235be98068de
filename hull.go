// Convex hulls of point sets in two and three dimensions.
//
// Four 2D algorithms (gift wrapping, Graham scan, incremental and merge hull)
// return the hull as a Polygon, and 3D gift wrapping returns a closed
// triangle mesh in half-edge form. All predicates are double precision with
// small tolerances; there is no exact arithmetic.
//
// 2D hulls are wound so that each vertex turns right in y-up coordinates
// (counterclockwise on a y-down screen). Mesh faces are wound
// counterclockwise about their outward normals.
package convexhull

import (
	"github.com/osuushi/convexhull/advanced"
	"github.com/pkg/errors"
)

type Vector = advanced.Vector
type Polygon = advanced.Polygon
type Mesh = advanced.Mesh

var (
	// Too few points: 3 in 2D, 4 in 3D.
	ErrInvalidInput = advanced.ErrInvalidInput
	// The points are arranged so that the algorithm cannot resolve them, for
	// example all collinear or coplanar.
	ErrDegenerate = advanced.ErrDegenerate
)

// Names of the 2D algorithms, for ConvexHull2D.
func Algorithms() []string {
	return advanced.AlgorithmNames()
}

// Hull of the points by the named 2D algorithm. The input slice and points
// are not modified, and the hull's vertices are pointers into it.
func ConvexHull2D(algorithm string, points []*Vector) (*Polygon, error) {
	hull2D, err := advanced.Algorithm2D(algorithm)
	if err != nil {
		return nil, err
	}
	return run2D(hull2D, points)
}

func GiftWrapping2D(points []*Vector) (*Polygon, error) {
	return run2D(advanced.GiftWrapping2D{}, points)
}

func GrahamScan(points []*Vector) (*Polygon, error) {
	return run2D(advanced.GrahamScan{}, points)
}

func Incremental(points []*Vector) (*Polygon, error) {
	return run2D(advanced.Incremental{}, points)
}

func MergeHull(points []*Vector) (*Polygon, error) {
	return run2D(advanced.MergeHull{}, points)
}

func run2D(algorithm advanced.Hull2D, points []*Vector) (result *Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if err := advanced.ValidateInput(points); err != nil {
		return nil, err
	}
	return algorithm.Run(points), nil
}

// Hull of the points as a closed triangle mesh.
func GiftWrapping3D(points []*Vector) (result *Mesh, err error) {
	defer func() {
		recoveredErr := advanced.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	mesh := advanced.GiftWrapping3D{}.Run(points)
	if mesh == nil {
		return nil, errors.Wrapf(ErrInvalidInput, "need at least 4 points, got %d", len(points))
	}
	return mesh, nil
}
