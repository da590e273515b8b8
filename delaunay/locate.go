package delaunay

// PositionKind classifies the result of a point location query.
type PositionKind int

const (
	// NoTriangulation means the query could not be answered because the
	// triangulation has no geometry to compare against.
	NoTriangulation PositionKind = iota
	// OnVertex means the query point coincides exactly with a vertex.
	OnVertex
	// OnEdge means the query point lies in the interior of an edge.
	OnEdge
	// OnFace means the query point lies strictly inside an inner face.
	OnFace
	// OutsideConvexHull means the query point lies strictly outside the
	// convex hull, or off the supporting line of a degenerate
	// triangulation.
	OutsideConvexHull
)

func (k PositionKind) String() string {
	switch k {
	case NoTriangulation:
		return "NoTriangulation"
	case OnVertex:
		return "OnVertex"
	case OnEdge:
		return "OnEdge"
	case OnFace:
		return "OnFace"
	case OutsideConvexHull:
		return "OutsideConvexHull"
	}
	return "Unknown"
}

// PositionInTriangulation is the result of Locate. Only the fields implied
// by Kind are meaningful:
//
//	OnVertex          -> Vertex
//	OnEdge            -> Edge, the directed edge containing the point
//	OnFace            -> Face
//	OutsideConvexHull -> Edge, an outer edge the point is visible from, or
//	                     the edge pointing at the nearest chain endpoint if
//	                     all vertices are collinear
type PositionInTriangulation struct {
	Kind   PositionKind
	Vertex VertexHandle
	Edge   DirectedEdgeHandle
	Face   FaceHandle
}

func positionNone() PositionInTriangulation {
	return PositionInTriangulation{Kind: NoTriangulation, Vertex: EmptyVertex, Edge: EmptyEdge, Face: EmptyFace}
}

// Locate finds where p lies relative to the triangulation. The walk starts
// near the hint generator's guess, so repeated queries with spatial locality
// are close to constant time.
func (t *Triangulation) Locate(p Point) PositionInTriangulation {
	return t.locateWithHintFixed(p, t.hinter.getHint(p))
}

// LocateWithHint behaves like Locate but starts walking at the given vertex.
func (t *Triangulation) LocateWithHint(p Point, hint VertexHandle) PositionInTriangulation {
	return t.locateWithHintFixed(p, hint)
}

func (t *Triangulation) locateWithHintFixed(p Point, hint VertexHandle) PositionInTriangulation {
	n := t.dcel.numVertices()
	// NaN and infinite queries relate to nothing; the predicates must never
	// see them.
	if n == 0 || !p.IsFinite() {
		return positionNone()
	}
	if !t.handleValid(hint) {
		hint = 0
	}
	if n == 1 {
		if t.dcel.pos(0) == p {
			return PositionInTriangulation{Kind: OnVertex, Vertex: 0, Edge: EmptyEdge, Face: EmptyFace}
		}
		return positionNone()
	}
	if t.AllVerticesOnLine() {
		return t.locateWhenAllVerticesOnLine(p, hint)
	}

	start := t.walkToNearestNeighbor(hint, p)
	t.hinter.notifyVertexLookup(start)
	if t.dcel.pos(start) == p {
		return PositionInTriangulation{Kind: OnVertex, Vertex: start, Edge: EmptyEdge, Face: EmptyFace}
	}

	// Visibility walk: starting from a face at the nearest vertex, cross
	// any edge the target lies strictly right of until no such edge is
	// left or the outer face is reached.
	face := t.anyInnerFaceAt(start)
	for {
		e1 := t.dcel.faces[face].adjacentEdge
		e2 := t.dcel.next(e1)
		e3 := t.dcel.next(e2)
		o1 := t.sideQuery(e1, p)
		o2 := t.sideQuery(e2, p)
		o3 := t.sideQuery(e3, p)
		crossed := EmptyEdge
		switch {
		case o1 == RightTurn:
			crossed = e1
		case o2 == RightTurn:
			crossed = e2
		case o3 == RightTurn:
			crossed = e3
		}
		if !crossed.Valid() {
			return t.classifyInsideFace(face, e1, e2, e3, o1, o2, o3, p)
		}
		beyond := t.dcel.face(crossed.Rev())
		if beyond.IsOuter() {
			return PositionInTriangulation{Kind: OutsideConvexHull, Vertex: EmptyVertex, Edge: crossed.Rev(), Face: EmptyFace}
		}
		face = beyond
	}
}

// classifyInsideFace resolves a point known to lie in the closure of face.
func (t *Triangulation) classifyInsideFace(face FaceHandle, e1, e2, e3 DirectedEdgeHandle, o1, o2, o3 Orientation, p Point) PositionInTriangulation {
	onLine := 0
	var collinearEdge DirectedEdgeHandle = EmptyEdge
	for _, pair := range []struct {
		e DirectedEdgeHandle
		o Orientation
	}{{e1, o1}, {e2, o2}, {e3, o3}} {
		if pair.o == Collinear {
			onLine++
			collinearEdge = pair.e
		}
	}
	switch onLine {
	case 0:
		return PositionInTriangulation{Kind: OnFace, Vertex: EmptyVertex, Edge: EmptyEdge, Face: face}
	case 1:
		return PositionInTriangulation{Kind: OnEdge, Vertex: EmptyVertex, Edge: collinearEdge, Face: EmptyFace}
	default:
		// On two edge lines at once: the point is a corner.
		for _, e := range []DirectedEdgeHandle{e1, e2, e3} {
			if t.dcel.pos(t.dcel.from(e)) == p {
				return PositionInTriangulation{Kind: OnVertex, Vertex: t.dcel.from(e), Edge: EmptyEdge, Face: EmptyFace}
			}
		}
		invariantf("point on two edge lines of face %d but on no corner", face)
		return positionNone()
	}
}

// anyInnerFaceAt returns some inner face incident to v. The triangulation
// must not be degenerate.
func (t *Triangulation) anyInnerFaceAt(v VertexHandle) FaceHandle {
	start := t.dcel.outEdge(v)
	e := start
	for {
		if f := t.dcel.face(e); !f.IsOuter() {
			return f
		}
		e = t.dcel.ccw(e)
		if e == start {
			invariantf("vertex %d has no inner face in a non degenerate triangulation", v)
		}
	}
}

// walkToNearestNeighbor moves greedily from start to the vertex closest to
// p. The result is the true nearest neighbor while the Delaunay property
// holds.
func (t *Triangulation) walkToNearestNeighbor(start VertexHandle, p Point) VertexHandle {
	cur := start
	curDist := distance2(t.dcel.pos(cur), p)
	for {
		improved := false
		startEdge := t.dcel.outEdge(cur)
		if !startEdge.Valid() {
			return cur
		}
		e := startEdge
		for {
			candidate := t.dcel.to(e)
			if d := distance2(t.dcel.pos(candidate), p); d < curDist {
				cur, curDist = candidate, d
				improved = true
				break
			}
			e = t.dcel.ccw(e)
			if e == startEdge {
				break
			}
		}
		if !improved {
			return cur
		}
	}
}

// locateWhenAllVerticesOnLine handles the degenerate state. All vertices lie
// on one line, so lexicographic point order is a consistent linear order
// along the chain.
func (t *Triangulation) locateWhenAllVerticesOnLine(p Point, hint VertexHandle) PositionInTriangulation {
	anyEdge := DirectedEdgeHandle(0)
	if t.sideQuery(anyEdge, p) != Collinear {
		// Off the supporting line: report an edge p is strictly left of
		// so exterior insertion can grow the first triangles from it.
		e := anyEdge
		if t.sideQuery(e, p) == RightTurn {
			e = e.Rev()
		}
		return PositionInTriangulation{Kind: OutsideConvexHull, Vertex: EmptyVertex, Edge: e, Face: EmptyFace}
	}

	cur := hint
	if t.dcel.pos(cur) == p {
		return PositionInTriangulation{Kind: OnVertex, Vertex: cur, Edge: EmptyEdge, Face: EmptyFace}
	}
	towardsP := func(from VertexHandle) bool { return lexSmaller(t.dcel.pos(from), p) }
	direction := towardsP(cur)
	for {
		// Pick the neighbor on p's side of cur, if any.
		next := EmptyEdge
		startEdge := t.dcel.outEdge(cur)
		e := startEdge
		for {
			if lexSmaller(t.dcel.pos(cur), t.dcel.pos(t.dcel.to(e))) == direction {
				next = e
				break
			}
			e = t.dcel.ccw(e)
			if e == startEdge {
				break
			}
		}
		if !next.Valid() {
			// p lies beyond the chain endpoint cur, which therefore has
			// a single neighbor. Return the edge pointing at cur;
			// extending the chain hangs the new vertex off exactly
			// that edge.
			return PositionInTriangulation{Kind: OutsideConvexHull, Vertex: EmptyVertex, Edge: startEdge.Rev(), Face: EmptyFace}
		}
		target := t.dcel.to(next)
		targetPos := t.dcel.pos(target)
		if targetPos == p {
			return PositionInTriangulation{Kind: OnVertex, Vertex: target, Edge: EmptyEdge, Face: EmptyFace}
		}
		if lexSmaller(t.dcel.pos(cur), p) != lexSmaller(targetPos, p) {
			// cur and the neighbor straddle p.
			return PositionInTriangulation{Kind: OnEdge, Vertex: EmptyVertex, Edge: next, Face: EmptyFace}
		}
		cur = target
	}
}
