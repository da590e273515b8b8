package delaunay

import "github.com/pkg/errors"

// Constraint edges pin a connection between two vertices into the
// triangulation: legalization never flips them and removal refuses to delete
// their endpoints. Adding a constraint re-triangulates the corridor of
// triangles its segment crosses; the result is no longer globally Delaunay,
// only constrained Delaunay.

// conflictSegment is one straight stretch of a constraint between
// consecutive vertices that lie exactly on the segment.
type conflictSegment struct {
	source, target VertexHandle
	// existing is set when the stretch is already present as an edge.
	existing DirectedEdgeHandle
	// conflicts lists, in crossing order, the reversal of every edge the
	// open segment intersects. Each handle lives in the triangle entered
	// by crossing that edge.
	conflicts []DirectedEdgeHandle
}

// AddConstraint pins the segment between two existing vertices. Vertices
// lying exactly on the segment split the constraint into parts; every part
// becomes its own constraint edge. It returns true if at least one edge
// changed into a constraint.
//
// If the segment crosses an existing constraint edge a
// ConstraintViolationError is returned and the triangulation stays
// untouched.
func (t *Triangulation) AddConstraint(a, b VertexHandle) (added bool, err error) {
	defer func() { err = recoverRaised(recover(), err) }()
	if !t.handleValid(a) || !t.handleValid(b) {
		return false, errors.Errorf("vertex handles %d, %d out of range", a, b)
	}
	if a == b {
		return false, nil
	}
	// Collect first, mutate after: collection raises on any crossed
	// constraint before the mesh has been touched.
	segments := t.collectConstraintPath(a, b)
	for _, seg := range segments {
		if seg.existing.Valid() {
			added = t.makeConstraintEdge(seg.existing.Undirected()) || added
			continue
		}
		t.resolveConflictRegion(seg)
		added = true
	}
	return added, nil
}

// AddConstraintSegment inserts both endpoints, then constrains the segment
// between them.
func (t *Triangulation) AddConstraintSegment(from, to Point) (VertexHandle, VertexHandle, error) {
	a, err := t.Insert(from)
	if err != nil {
		return EmptyVertex, EmptyVertex, err
	}
	b, err := t.Insert(to)
	if err != nil {
		return EmptyVertex, EmptyVertex, err
	}
	_, err = t.AddConstraint(a, b)
	return a, b, err
}

// CanAddConstraint reports whether AddConstraint(a, b) would succeed. It
// never modifies the triangulation.
func (t *Triangulation) CanAddConstraint(a, b VertexHandle) bool {
	if !t.handleValid(a) || !t.handleValid(b) || a == b {
		return false
	}
	ok := true
	func() {
		defer func() {
			if recoverRaised(recover(), nil) != nil {
				ok = false
			}
		}()
		t.collectConstraintPath(a, b)
	}()
	return ok
}

// ExistsConstraint reports whether a constraint edge runs between a and b.
func (t *Triangulation) ExistsConstraint(a, b VertexHandle) bool {
	e, ok := t.EdgeBetween(a, b)
	return ok && t.dcel.isConstraint(e.Undirected())
}

// RemoveConstraint clears the constraint flag of the edge between a and b.
// The edge stays in the triangulation and simply becomes flippable again;
// following legalizations may or may not keep it.
func (t *Triangulation) RemoveConstraint(a, b VertexHandle) bool {
	e, ok := t.EdgeBetween(a, b)
	if !ok {
		return false
	}
	return t.RemoveConstraintEdge(e.Undirected())
}

// RemoveConstraintEdge clears the constraint flag of an undirected edge and
// reports whether it was set.
func (t *Triangulation) RemoveConstraintEdge(u UndirectedEdgeHandle) bool {
	if u < 0 || int(u) >= t.dcel.numUndirectedEdges() || !t.dcel.isConstraint(u) {
		return false
	}
	t.dcel.setConstraint(u, false)
	t.numConstraints--
	return true
}

func (t *Triangulation) makeConstraintEdge(u UndirectedEdgeHandle) bool {
	if t.dcel.isConstraint(u) {
		return false
	}
	t.dcel.setConstraint(u, true)
	t.numConstraints++
	return true
}

// collectConstraintPath walks the straight line from a to b and splits it
// into conflict segments at every vertex lying exactly on it. The walk is
// read only; it raises a ConstraintViolationError when the line crosses a
// constraint edge.
func (t *Triangulation) collectConstraintPath(a, b VertexHandle) []conflictSegment {
	if t.AllVerticesOnLine() {
		return t.collectDegenerateConstraintPath(a, b)
	}
	target := t.dcel.pos(b)
	var segments []conflictSegment
	cur := a
	for cur != b {
		seg, next := t.collectConflictSegment(cur, b, target)
		segments = append(segments, seg)
		cur = next
	}
	return segments
}

// collectDegenerateConstraintPath handles the collinear chain: a constraint
// between chain vertices is just the run of edges between them.
func (t *Triangulation) collectDegenerateConstraintPath(a, b VertexHandle) []conflictSegment {
	towardsB := lexSmaller(t.dcel.pos(a), t.dcel.pos(b))
	var segments []conflictSegment
	cur := a
	for cur != b {
		found := EmptyEdge
		start := t.dcel.outEdge(cur)
		e := start
		for {
			if lexSmaller(t.dcel.pos(cur), t.dcel.pos(t.dcel.to(e))) == towardsB {
				found = e
				break
			}
			e = t.dcel.ccw(e)
			if e == start {
				break
			}
		}
		if !found.Valid() {
			invariantf("chain walk from %d towards %d fell off the chain", a, b)
		}
		segments = append(segments, conflictSegment{source: cur, target: t.dcel.to(found), existing: found})
		cur = t.dcel.to(found)
	}
	return segments
}

// collectConflictSegment gathers one conflict segment starting at cur,
// heading towards the final target position. Returns the segment and the
// vertex the next segment starts from.
func (t *Triangulation) collectConflictSegment(cur, b VertexHandle, target Point) (conflictSegment, VertexHandle) {
	curPos := t.dcel.pos(cur)

	// An out-edge may already run along the segment.
	start := t.dcel.outEdge(cur)
	e := start
	for {
		to := t.dcel.to(e)
		if to == b {
			return conflictSegment{source: cur, target: b, existing: e}, b
		}
		toPos := t.dcel.pos(to)
		if orient2d(curPos, target, toPos) == Collinear && lexBetween(toPos, curPos, target) {
			return conflictSegment{source: cur, target: to, existing: e}, to
		}
		e = t.dcel.ccw(e)
		if e == start {
			break
		}
	}

	// Find the triangle whose wedge at cur contains the segment
	// direction; its far edge is the first crossing.
	first := EmptyEdge
	e = start
	for {
		if !t.dcel.face(e).IsOuter() {
			x := t.dcel.pos(t.dcel.to(e))
			w := t.dcel.pos(t.dcel.apex(e))
			if orient2d(curPos, x, target) == LeftTurn && orient2d(curPos, w, target) == RightTurn {
				first = t.dcel.next(e)
				break
			}
		}
		e = t.dcel.ccw(e)
		if e == start {
			break
		}
	}
	if !first.Valid() {
		invariantf("no wedge at vertex %d contains the constraint direction", cur)
	}

	seg := conflictSegment{source: cur, target: b}
	crossed := first.Rev()
	for {
		t.checkConflictEdge(crossed, cur, b)
		seg.conflicts = append(seg.conflicts, crossed)
		// Invariant along the march: from(crossed) is left of the
		// segment, to(crossed) is right, and face(crossed) is the
		// triangle just entered.
		apex := t.dcel.apex(crossed)
		if apex == b {
			return seg, b
		}
		switch orient2d(curPos, target, t.dcel.pos(apex)) {
		case Collinear:
			seg.target = apex
			return seg, apex
		case LeftTurn:
			crossed = t.dcel.next(crossed).Rev()
		case RightTurn:
			crossed = t.dcel.prev(crossed).Rev()
		}
	}
}

func (t *Triangulation) checkConflictEdge(crossed DirectedEdgeHandle, a, b VertexHandle) {
	if t.dcel.face(crossed).IsOuter() {
		invariantf("constraint between %d and %d left the convex hull", a, b)
	}
	if t.dcel.isConstraint(crossed.Undirected()) {
		raise(&ConstraintViolationError{
			From:   a,
			To:     b,
			Reason: "the segment intersects an existing constraint edge",
		})
	}
}

// resolveConflictRegion flips every crossed edge, in crossing order, until
// the constraint edge appears as a fan edge of the source vertex. The
// region border is pinned with temporary constraint marks so the closing
// legalization cannot leak out of the corridor.
func (t *Triangulation) resolveConflictRegion(seg conflictSegment) DirectedEdgeHandle {
	first := seg.conflicts[0]
	firstBorderEdge := t.dcel.prev(first.Rev())
	lastBorderEdge := t.dcel.next(first.Rev())

	for _, conflict := range seg.conflicts {
		t.dcel.flip(conflict)
	}

	var temps []UndirectedEdgeHandle
	mark := func(u UndirectedEdgeHandle) {
		if !t.dcel.isConstraint(u) {
			t.dcel.setConstraint(u, true)
			temps = append(temps, u)
		}
	}
	mark(firstBorderEdge.Undirected())
	mark(lastBorderEdge.Undirected())

	result := EmptyEdge
	end := lastBorderEdge.Rev()
	current := firstBorderEdge
	for {
		if t.dcel.to(current) == seg.target {
			result = current
		}
		if current == end {
			break
		}
		mark(t.dcel.next(current).Undirected())
		current = t.dcel.ccw(current)
	}
	if !result.Valid() {
		invariantf("conflict region of %d -> %d resolved without producing the constraint edge",
			seg.source, seg.target)
	}
	// Pin the fresh constraint before legalizing, so the quadrilateral
	// revisits cannot flip it away again.
	t.makeConstraintEdge(result.Undirected())

	worklist := make([]UndirectedEdgeHandle, 0, len(seg.conflicts))
	for _, conflict := range seg.conflicts {
		if u := conflict.Undirected(); u != result.Undirected() {
			worklist = append(worklist, u)
		}
	}
	t.legalizeUndirected(worklist)

	for _, u := range temps {
		t.dcel.setConstraint(u, false)
	}
	return result
}

// legalizeUndirected is the flavor of Lawson flipping used after conflict
// region resolution: all four quadrilateral edges of a flip are revisited.
func (t *Triangulation) legalizeUndirected(work []UndirectedEdgeHandle) {
	for len(work) > 0 {
		u := work[len(work)-1]
		work = work[:len(work)-1]
		if t.dcel.isConstraint(u) {
			continue
		}
		e := u.Directed()
		if t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter() {
			continue
		}
		if !t.edgeIsIllegal(e) {
			continue
		}
		rev := e.Rev()
		work = append(work,
			t.dcel.next(e).Undirected(), t.dcel.prev(e).Undirected(),
			t.dcel.next(rev).Undirected(), t.dcel.prev(rev).Undirected(),
		)
		t.dcel.flip(e)
	}
}
