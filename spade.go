// A robust 2D Delaunay triangulation package for Go.
//
// This package maintains a triangulation under incremental insertion and
// removal of points, supports constraint edges (turning it into a constrained
// Delaunay triangulation), and answers nearest neighbor, point location,
// Voronoi cell and natural neighbor interpolation queries. All orientation
// and circumcircle decisions run on adaptive precision arithmetic, so the
// topology stays sound for any finite input.
package spade

import "github.com/yvind/spade/delaunay"

type Point = delaunay.Point
type Triangulation = delaunay.Triangulation
type VertexHandle = delaunay.VertexHandle
type DirectedEdgeHandle = delaunay.DirectedEdgeHandle
type UndirectedEdgeHandle = delaunay.UndirectedEdgeHandle
type FaceHandle = delaunay.FaceHandle
type PositionInTriangulation = delaunay.PositionInTriangulation
type ConstraintViolationError = delaunay.ConstraintViolationError
type PositionKind = delaunay.PositionKind

const (
	NoTriangulation   = delaunay.NoTriangulation
	OnVertex          = delaunay.OnVertex
	OnEdge            = delaunay.OnEdge
	OnFace            = delaunay.OnFace
	OutsideConvexHull = delaunay.OutsideConvexHull
)

// ErrInvalidCoordinate is returned when NaN or infinite coordinates reach a
// mutating operation.
var ErrInvalidCoordinate = delaunay.ErrInvalidCoordinate

// New creates an empty triangulation with a hierarchy hint generator, the
// right default for arbitrary query and insertion orders.
func New() *Triangulation {
	return delaunay.New()
}

// BulkLoad triangulates a batch of points at once, much faster than a loop
// of Insert calls.
func BulkLoad(points []Point) (*Triangulation, error) {
	return delaunay.BulkLoad(points)
}

// Triangulate is the one-call convenience entry: it bulk loads the points
// and returns the corner coordinates of every triangle.
func Triangulate(points []Point) ([][3]Point, error) {
	t, err := delaunay.BulkLoad(points)
	if err != nil {
		return nil, err
	}
	result := make([][3]Point, 0, t.NumInnerFaces())
	faces := t.InnerFaces()
	for f, ok := faces.Next(); ok; f, ok = faces.Next() {
		result = append(result, t.FacePositions(f))
	}
	return result, nil
}
