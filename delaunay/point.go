package delaunay

import "math"

// Point is a position in the plane. Points are plain values; the
// triangulation copies them on insertion and never mutates them afterwards.
type Point struct {
	X, Y float64
}

// IsFinite reports whether both coordinates are ordinary finite floats.
// NaN and infinite coordinates are rejected before any mutation happens.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

func (p Point) sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) add(other Point) Point {
	return Point{p.X + other.X, p.Y + other.Y}
}

func (p Point) scale(f float64) Point {
	return Point{p.X * f, p.Y * f}
}

// distance2 is the squared euclidean distance between a and b. Distances
// are only ever compared against each other, so the square root is never
// taken.
func distance2(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// lexSmaller orders points by X, breaking ties by Y. Used to order the
// vertices of a fully collinear triangulation along their common line.
func lexSmaller(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// lexBetween reports whether q lies strictly between a and b in
// lexicographic order. Only meaningful when all three points are collinear.
func lexBetween(q, a, b Point) bool {
	if lexSmaller(a, b) {
		return lexSmaller(a, q) && lexSmaller(q, b)
	}
	return lexSmaller(b, q) && lexSmaller(q, a)
}

// circumcenter returns the center of the circle through a, b and c. The
// result is a derived coordinate, not a predicate: plain floating point is
// fine here because no topological decision ever depends on it.
func circumcenter(a, b, c Point) Point {
	bx := b.X - a.X
	by := b.Y - a.Y
	cx := c.X - a.X
	cy := c.Y - a.Y
	d := 2 * (bx*cy - by*cx)
	ux := (cy*(bx*bx+by*by) - by*(cx*cx+cy*cy)) / d
	uy := (bx*(cx*cx+cy*cy) - cx*(bx*bx+by*by)) / d
	return Point{a.X + ux, a.Y + uy}
}

// triangleArea2 is twice the signed area of the triangle abc, positive for
// counterclockwise winding. Only used for derived quantities (interpolation
// weights), never for orientation decisions.
func triangleArea2(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}
