package delaunay

import "github.com/pkg/errors"

// sanityCheck verifies the structural invariants of the mesh: linkage
// symmetry, face loop lengths, winding, the Euler characteristic and the
// shape of the outer loop. Tests run it after every kind of mutation; it is
// deliberately thorough rather than fast.
func (t *Triangulation) sanityCheck() error {
	d := &t.dcel
	numV := d.numVertices()
	numE := d.numUndirectedEdges()
	numF := d.numInnerFaces()

	if len(d.constraint) != numE {
		return errors.Errorf("constraint flags out of sync: %d flags for %d edges", len(d.constraint), numE)
	}
	constraintCount := 0
	for _, c := range d.constraint {
		if c {
			constraintCount++
		}
	}
	if constraintCount != t.numConstraints {
		return errors.Errorf("constraint count %d does not match %d flagged edges", t.numConstraints, constraintCount)
	}

	for e := DirectedEdgeHandle(0); int(e) < d.numDirectedEdges(); e++ {
		entry := d.halfEdges[e]
		if !entry.next.Valid() || !entry.prev.Valid() {
			return errors.Errorf("edge %d has unlinked neighbors", e)
		}
		if d.prev(entry.next) != e {
			return errors.Errorf("edge %d: next/prev asymmetry", e)
		}
		if d.next(entry.prev) != e {
			return errors.Errorf("edge %d: prev/next asymmetry", e)
		}
		if d.face(entry.next) != entry.face {
			return errors.Errorf("edge %d and its successor disagree on their face", e)
		}
		if entry.origin == d.from(e.Rev()) {
			return errors.Errorf("edge %d is a loop on vertex %d", e, entry.origin)
		}
		if d.from(entry.next) != d.to(e) {
			return errors.Errorf("edge %d does not meet its successor", e)
		}
	}

	for v := VertexHandle(0); int(v) < numV; v++ {
		out := d.outEdge(v)
		if !out.Valid() {
			if numV > 1 {
				return errors.Errorf("vertex %d is isolated in a connected triangulation", v)
			}
			continue
		}
		if d.from(out) != v {
			return errors.Errorf("vertex %d points at edge %d which starts elsewhere", v, out)
		}
		if deg := d.degree(v); deg < 1 || deg > 2*numE {
			return errors.Errorf("vertex %d rotation does not close", v)
		}
	}

	// No duplicate connections.
	seen := make(map[[2]VertexHandle]bool, numE)
	for u := UndirectedEdgeHandle(0); int(u) < numE; u++ {
		e := u.Directed()
		key := pairKey(d.from(e), d.to(e))
		if seen[key] {
			return errors.Errorf("vertices %d and %d are connected twice", key[0], key[1])
		}
		seen[key] = true
	}

	// Inner faces are counterclockwise triangles.
	for f := FaceHandle(1); int(f) < len(d.faces); f++ {
		e1 := d.faces[f].adjacentEdge
		if d.face(e1) != f {
			return errors.Errorf("face %d points at edge %d which borders face %d", f, e1, d.face(e1))
		}
		e2 := d.next(e1)
		e3 := d.next(e2)
		if d.next(e3) != e1 {
			return errors.Errorf("face %d loop is not a triangle", f)
		}
		a := d.pos(d.from(e1))
		b := d.pos(d.from(e2))
		c := d.pos(d.from(e3))
		if orient2d(a, b, c) != LeftTurn {
			return errors.Errorf("face %d has non positive orientation", f)
		}
	}

	// The outer face is one loop covering every outer directed edge.
	outerTotal := 0
	for e := DirectedEdgeHandle(0); int(e) < d.numDirectedEdges(); e++ {
		if d.face(e).IsOuter() {
			outerTotal++
		}
	}
	start := d.faces[OuterFace].adjacentEdge
	if !start.Valid() {
		if outerTotal != 0 {
			return errors.Errorf("outer face lost its %d edges", outerTotal)
		}
	} else {
		if !d.face(start).IsOuter() {
			return errors.Errorf("outer face adjacency points at inner edge %d", start)
		}
		loopLen := 0
		e := start
		for {
			loopLen++
			if loopLen > outerTotal {
				return errors.New("outer loop does not close")
			}
			e = d.next(e)
			if e == start {
				break
			}
		}
		if loopLen != outerTotal {
			return errors.Errorf("outer loop visits %d of %d outer edges", loopLen, outerTotal)
		}
	}

	// Euler characteristic, counting the outer face.
	if numF > 0 && numV-numE+numF+1 != 2 {
		return errors.Errorf("euler characteristic broken: V=%d E=%d F=%d", numV, numE, numF)
	}
	if numF == 0 && numV >= 2 && numE != numV-1 {
		return errors.Errorf("degenerate chain with %d vertices has %d edges", numV, numE)
	}
	return nil
}

// delaunayCheck verifies the (constrained) Delaunay property: no vertex
// lies strictly inside the circumcircle of a neighboring triangle, unless a
// constraint edge separates them.
func (t *Triangulation) delaunayCheck() error {
	for u := UndirectedEdgeHandle(0); int(u) < t.dcel.numUndirectedEdges(); u++ {
		if t.dcel.isConstraint(u) {
			continue
		}
		e := u.Directed()
		if t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter() {
			continue
		}
		if t.edgeIsIllegal(e) {
			return errors.Errorf("edge %d between vertices %d and %d violates the Delaunay property",
				u, t.dcel.from(e), t.dcel.to(e))
		}
	}
	return nil
}
