// Lower-level access to the hull machinery: the shared 2D primitives, the
// half-edge mesh, point generators and file formats. Most users want the
// top-level convexhull package instead.
//
// Functions here panic with a HullError on failure, like the algorithms
// themselves. Recover with HandleHullPanicRecover, or use the wrappers in the
// top-level package, which do it for you.
package advanced

import "github.com/osuushi/convexhull/internal"

type (
	Vector      = internal.Vector
	Polygon     = internal.Polygon
	TangentSide = internal.TangentSide
	Hull2D      = internal.Hull2D

	GiftWrapping2D = internal.GiftWrapping2D
	GrahamScan     = internal.GrahamScan
	Incremental    = internal.Incremental
	MergeHull      = internal.MergeHull
	GiftWrapping3D = internal.GiftWrapping3D

	Mesh         = internal.Mesh
	Vertex       = internal.Vertex
	HalfEdge     = internal.HalfEdge
	Face         = internal.Face
	VertexIndex  = internal.VertexIndex
	EdgeIndex    = internal.EdgeIndex
	FaceIndex    = internal.FaceIndex
	EdgeKey      = internal.EdgeKey
	PendingEdges = internal.PendingEdges
	HullError    = internal.HullError
	SeedIndices  = internal.SeedIndices
)

const (
	Epsilon         = internal.Epsilon
	MeshEpsilon     = internal.MeshEpsilon
	VolumeTolerance = internal.VolumeTolerance

	LeftTangent  = internal.LeftTangent
	RightTangent = internal.RightTangent

	EmptyVertex = internal.EmptyVertex
	EmptyEdge   = internal.EmptyEdge
	EmptyFace   = internal.EmptyFace
)

var (
	ErrInvalidInput = internal.ErrInvalidInput
	ErrDegenerate   = internal.ErrDegenerate

	HandleHullPanicRecover = internal.HandleHullPanicRecover

	SignedArea2     = internal.SignedArea2
	OrientationSign = internal.OrientationSign
	SignedVolume3   = internal.SignedVolume3
	VolumeSign      = internal.VolumeSign

	ValidateInput        = internal.ValidateInput
	IndexOfLowestY       = internal.IndexOfLowestY
	MakeTriangle         = internal.MakeTriangle
	IsTangentLine        = internal.IsTangentLine
	IndexOfSupportVertex = internal.IndexOfSupportVertex
	AppendPoint          = internal.AppendPoint
	IncrementalSeed      = internal.IncrementalSeed
	CollinearExtremes    = internal.CollinearExtremes
	MergeHulls           = internal.MergeHulls
	Algorithm2D          = internal.Algorithm2D
	AlgorithmNames       = internal.AlgorithmNames

	NewMesh           = internal.NewMesh
	MeshFromTriangles = internal.MeshFromTriangles
	ReadOBJ           = internal.ReadOBJ
	WriteOBJ          = internal.WriteOBJ
	ReadSVGPoints     = internal.ReadSVGPoints
	ReadTextPoints    = internal.ReadTextPoints
	WriteTextPoints   = internal.WriteTextPoints

	RandWithSeed         = internal.RandWithSeed
	RandomPointsInRect   = internal.RandomPointsInRect
	RandomPointsInCircle = internal.RandomPointsInCircle
	RandomPointsInBox    = internal.RandomPointsInBox
	RandomPointsInSphere = internal.RandomPointsInSphere
	VectorFromPolar      = internal.VectorFromPolar

	DrawHull = internal.DrawHull
	DrawMesh = internal.DrawMesh
	WritePNG = internal.WritePNG
	CatPNG   = internal.CatPNG
)
