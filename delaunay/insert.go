package delaunay

// Insert adds p to the triangulation and restores the Delaunay property
// around it. If a vertex already exists at exactly p, its handle is returned
// and nothing changes. Inserting never invalidates vertex handles.
func (t *Triangulation) Insert(p Point) (VertexHandle, error) {
	return t.InsertWithData(p, nil)
}

// InsertWithData behaves like Insert and attaches a payload to the vertex.
// Inserting onto an existing vertex replaces its payload.
func (t *Triangulation) InsertWithData(p Point, data interface{}) (VertexHandle, error) {
	return t.insertCore(p, data, t.hinter.getHint(p))
}

// InsertWithHint behaves like InsertWithData but starts the location walk at
// the given vertex. A hint close to p makes the walk nearly constant time;
// a bad hint only costs speed, never correctness.
func (t *Triangulation) InsertWithHint(p Point, data interface{}, hint VertexHandle) (VertexHandle, error) {
	return t.insertCore(p, data, hint)
}

func (t *Triangulation) insertCore(p Point, data interface{}, hint VertexHandle) (VertexHandle, error) {
	if !p.IsFinite() {
		return EmptyVertex, ErrInvalidCoordinate
	}
	var v VertexHandle
	switch t.dcel.numVertices() {
	case 0:
		v = t.dcel.insertFirstVertex(p, data)
	case 1:
		if t.dcel.pos(0) == p {
			t.dcel.setVertexData(0, data)
			return 0, nil
		}
		v = t.dcel.insertSecondVertex(p, data)
	default:
		loc := t.locateWithHintFixed(p, hint)
		switch loc.Kind {
		case OnVertex:
			t.dcel.setVertexData(loc.Vertex, data)
			return loc.Vertex, nil
		case OnFace:
			v = t.dcel.insertIntoTriangle(loc.Face, p, data)
			t.legalizeVertex(v)
		case OnEdge:
			v = t.insertOnEdge(loc.Edge, p, data)
			if !t.AllVerticesOnLine() {
				t.legalizeVertex(v)
			}
		case OutsideConvexHull:
			if t.AllVerticesOnLine() && t.sideQuery(loc.Edge, p) == Collinear {
				v = t.dcel.extendLine(loc.Edge, p, data)
			} else {
				v = t.insertOutsideConvexHull(loc.Edge, p, data)
				t.legalizeVertex(v)
			}
		default:
			invariantf("unlocatable point in a triangulation with %d vertices", t.dcel.numVertices())
		}
	}
	t.hinter.notifyVertexInserted(v, p)
	return v, nil
}

// insertOnEdge splits the edge under p. If the edge was a constraint, both
// halves inherit the constraint flag.
func (t *Triangulation) insertOnEdge(e DirectedEdgeHandle, p Point, data interface{}) VertexHandle {
	wasConstraint := t.dcel.isConstraint(e.Undirected())
	var v VertexHandle
	var halves [2]DirectedEdgeHandle
	switch {
	case t.AllVerticesOnLine():
		v, halves = t.dcel.splitEdgeWhenAllVerticesOnLine(e, p, data)
	default:
		if t.dcel.face(e).IsOuter() {
			e = e.Rev()
		}
		if t.dcel.face(e.Rev()).IsOuter() {
			v, halves = t.dcel.splitHalfEdge(e, p, data)
		} else {
			v, halves = t.dcel.splitEdge(e, p, data)
		}
	}
	if wasConstraint {
		for _, half := range halves {
			t.dcel.setConstraint(half.Undirected(), true)
		}
		// Two constraint edges where one used to be.
		t.numConstraints++
	}
	return v
}

// insertOutsideConvexHull connects p to every hull edge it is visible from.
// The edge e must border the outer face with p strictly to its left.
func (t *Triangulation) insertOutsideConvexHull(e DirectedEdgeHandle, p Point, data interface{}) VertexHandle {
	v := t.dcel.createNewFaceAdjacentToEdge(e, p, data)
	// e is the base of the first new triangle now; sweep both ways along
	// the hull and keep closing the notch while p can see the next edge.
	cwEdge := t.dcel.prev(e).Rev()
	for {
		candidate := t.dcel.prev(cwEdge)
		if t.sideQuery(candidate, p) != LeftTurn {
			break
		}
		cwEdge = t.dcel.createSingleFaceBetweenEdgeAndNext(candidate)
	}
	ccwEdge := t.dcel.next(e).Rev()
	for {
		candidate := t.dcel.next(ccwEdge)
		if t.sideQuery(candidate, p) != LeftTurn {
			break
		}
		ccwEdge = t.dcel.createSingleFaceBetweenEdgeAndNext(ccwEdge)
	}
	return v
}

// legalizeVertex restores the Delaunay property after v has been connected
// to its surrounding polygon: every edge opposite v is a flip candidate.
func (t *Triangulation) legalizeVertex(v VertexHandle) {
	var edges []DirectedEdgeHandle
	for _, out := range t.dcel.outEdges(v) {
		if !t.dcel.face(out).IsOuter() {
			edges = append(edges, t.dcel.next(out))
		}
	}
	t.legalizeEdges(edges)
}

// legalizeEdges runs Lawson flips until every edge on the work list is
// legal. Constraint edges and hull edges are never flipped. Each popped edge
// is the edge opposite the freshly connected vertex, so after a flip only
// the two far edges of the former quadrilateral need revisiting.
func (t *Triangulation) legalizeEdges(edges []DirectedEdgeHandle) {
	for len(edges) > 0 {
		e := edges[len(edges)-1]
		edges = edges[:len(edges)-1]
		if t.dcel.isConstraint(e.Undirected()) {
			continue
		}
		if t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter() {
			continue
		}
		if !t.edgeIsIllegal(e) {
			continue
		}
		rev := e.Rev()
		edges = append(edges, t.dcel.next(rev), t.dcel.prev(rev))
		t.dcel.flip(e)
	}
}

// edgeIsIllegal reports whether the Delaunay criterion requires flipping e.
// Both adjacent faces must be inner. Cocircular configurations count as
// legal, which keeps flipping deterministic and terminating.
func (t *Triangulation) edgeIsIllegal(e DirectedEdgeHandle) bool {
	from := t.dcel.pos(t.dcel.from(e))
	to := t.dcel.pos(t.dcel.to(e))
	own := t.dcel.pos(t.dcel.apex(e))
	other := t.dcel.pos(t.dcel.apex(e.Rev()))
	return inCircle(other, to, from, own) == InsideCircle
}
