package delaunay

import "github.com/pkg/errors"

// Remove deletes v and re-triangulates the hole it leaves, returning the
// vertex payload. Removing the endpoint of a constraint edge is rejected
// with a ConstraintViolationError.
//
// Removal keeps the vertex arena dense by moving the last vertex into the
// freed slot: after a successful call the previously highest vertex handle
// now refers to that moved vertex, and all other handles stay unchanged.
func (t *Triangulation) Remove(v VertexHandle) (interface{}, error) {
	if !t.handleValid(v) {
		return nil, errors.Errorf("vertex handle %d is out of range", v)
	}
	for _, e := range t.dcel.outEdges(v) {
		if t.dcel.isConstraint(e.Undirected()) {
			return nil, &ConstraintViolationError{
				From:   v,
				To:     t.dcel.to(e),
				Reason: "cannot remove the endpoint of a constraint edge",
			}
		}
	}
	data := t.dcel.vertexData(v)
	p := t.dcel.pos(v)
	swappedOld, hadSwap := t.removeCore(v)
	t.hinter.notifyVertexRemoved(p, v, swappedOld, hadSwap)
	return data, nil
}

// UpdatePosition moves a vertex by removing and reinserting it, keeping its
// payload. The returned handle may differ from v.
func (t *Triangulation) UpdatePosition(v VertexHandle, p Point) (VertexHandle, error) {
	if !p.IsFinite() {
		return EmptyVertex, ErrInvalidCoordinate
	}
	data, err := t.Remove(v)
	if err != nil {
		return EmptyVertex, err
	}
	return t.InsertWithData(p, data)
}

func (t *Triangulation) removeCore(v VertexHandle) (VertexHandle, bool) {
	if t.AllVerticesOnLine() {
		return t.removeWhenDegenerate(v)
	}
	for _, e := range t.dcel.outEdges(v) {
		if t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter() {
			return t.removeFromHull(v)
		}
	}
	return t.removeInterior(v)
}

// removeWhenDegenerate handles removal while all vertices are collinear:
// the vertex is unhooked from the chain and the chain is stitched shut.
func (t *Triangulation) removeWhenDegenerate(v VertexHandle) (VertexHandle, bool) {
	switch t.dcel.degree(v) {
	case 0:
		return t.dcel.swapRemoveVertex(v)
	case 1:
		out := t.dcel.outEdge(v)
		in := out.Rev()
		u := t.dcel.to(out)
		before := t.dcel.prev(in)
		after := t.dcel.next(out)
		if before == out {
			// Two vertex chain; u ends up isolated.
			t.dcel.vertices[u].outEdge = EmptyEdge
			t.dcel.faces[OuterFace].adjacentEdge = EmptyEdge
		} else {
			t.dcel.link(before, after)
			if t.dcel.vertices[u].outEdge == in {
				t.dcel.vertices[u].outEdge = after
			}
			t.dcel.faces[OuterFace].adjacentEdge = after
		}
		t.dcel.vertices[v].outEdge = EmptyEdge
		t.dcel.swapRemoveUndirectedEdge(out.Undirected())
		return t.dcel.swapRemoveVertex(v)
	case 2:
		outs := t.dcel.outEdges(v)
		keep := outs[0].Rev() // a -> v, becomes a -> b
		drop := outs[1]       // v -> b
		b := t.dcel.to(drop)

		after := t.dcel.next(drop)
		beforeRev := t.dcel.prev(drop.Rev())
		t.dcel.setOrigin(keep.Rev(), b)
		if after == drop.Rev() {
			// b is a chain endpoint; the loop turns around at b.
			t.dcel.link(keep, keep.Rev())
		} else {
			t.dcel.link(keep, after)
			t.dcel.link(beforeRev, keep.Rev())
		}
		t.dcel.faces[OuterFace].adjacentEdge = keep
		t.dcel.vertices[v].outEdge = EmptyEdge
		t.dcel.swapRemoveUndirectedEdge(drop.Undirected())
		return t.dcel.swapRemoveVertex(v)
	}
	invariantf("vertex %d has degree > 2 in a degenerate triangulation", v)
	return EmptyVertex, false
}

// removeInterior removes a vertex fully surrounded by triangles: flip its
// degree down to three, merge the remaining fan into a single face, then
// restore the Delaunay property on the freshly created diagonals.
func (t *Triangulation) removeInterior(v VertexHandle) (VertexHandle, bool) {
	outs := t.dcel.outEdges(v)
	border := make(map[[2]VertexHandle]bool, len(outs))
	ring := make([]VertexHandle, len(outs))
	for i, e := range outs {
		ring[i] = t.dcel.to(e)
	}
	for i := range ring {
		border[pairKey(ring[i], ring[(i+1)%len(ring)])] = true
	}

	var newPairs [][2]VertexHandle
	for t.dcel.degree(v) > 3 {
		outs = t.dcel.outEdges(v)
		n := len(outs)
		flipped := false
		for i, e := range outs {
			u := t.dcel.to(e)
			uPrev := t.dcel.to(outs[(i+n-1)%n])
			uNext := t.dcel.to(outs[(i+1)%n])
			// Both triangles replacing the spoke must keep positive
			// orientation.
			if orient2d(t.dcel.pos(uPrev), t.dcel.pos(u), t.dcel.pos(uNext)) != LeftTurn {
				continue
			}
			if orient2d(t.dcel.pos(v), t.dcel.pos(uPrev), t.dcel.pos(uNext)) != LeftTurn {
				continue
			}
			newPairs = append(newPairs, pairKey(uPrev, uNext))
			t.dcel.flip(e)
			flipped = true
			break
		}
		if !flipped {
			invariantf("no flippable spoke while reducing vertex %d of degree %d", v, n)
		}
	}

	swappedOld, hadSwap := t.dcel.removeDegree3Vertex(v)
	if hadSwap {
		newPairs, border = remapPairs(newPairs, border, swappedOld, v)
	}
	t.legalizePairs(newPairs, border)
	return swappedOld, hadSwap
}

// removeFromHull removes a vertex on the convex hull. The neighbor chain is
// first flipped free of dents so the remaining fan can be disconnected
// wholesale, then the hull loop is stitched across the gap.
func (t *Triangulation) removeFromHull(v VertexHandle) (VertexHandle, bool) {
	outs := t.hullOutEdges(v)
	chain := make([]VertexHandle, len(outs))
	for i, e := range outs {
		chain[i] = t.dcel.to(e)
	}
	border := make(map[[2]VertexHandle]bool, len(chain))
	for i := 0; i+1 < len(chain); i++ {
		border[pairKey(chain[i], chain[i+1])] = true
	}

	// Flip away dents. A flip may invert the triangle at v; that is fine,
	// it gets deleted below and no predicate ever consults it.
	var newPairs [][2]VertexHandle
	for i := 1; i < len(chain)-1; {
		if orient2d(t.dcel.pos(chain[i-1]), t.dcel.pos(chain[i]), t.dcel.pos(chain[i+1])) != LeftTurn {
			i++
			continue
		}
		spoke, ok := t.dcel.edgeBetween(v, chain[i])
		if !ok {
			invariantf("chain vertex %d lost its spoke", chain[i])
		}
		newPairs = append(newPairs, pairKey(chain[i-1], chain[i+1]))
		t.dcel.flip(spoke)
		chain = append(chain[:i], chain[i+1:]...)
		if i > 1 {
			i--
		}
	}

	outs = t.hullOutEdges(v)
	m := len(outs) - 1
	if m < 1 {
		invariantf("hull vertex %d with a single neighbor", v)
	}
	chainEdges := make([]DirectedEdgeHandle, m)
	deadFaces := make([]FaceHandle, m)
	deadEdges := make([]UndirectedEdgeHandle, 0, m+1)
	for i := 0; i < m; i++ {
		chainEdges[i] = t.dcel.next(outs[i])
		deadFaces[i] = t.dcel.face(outs[i])
	}
	for _, e := range outs {
		deadEdges = append(deadEdges, e.Undirected())
	}

	before := t.dcel.prev(outs[0].Rev())
	after := t.dcel.next(outs[m])
	t.dcel.link(before, chainEdges[0])
	for i := 0; i+1 < m; i++ {
		t.dcel.link(chainEdges[i], chainEdges[i+1])
	}
	t.dcel.link(chainEdges[m-1], after)
	for _, ce := range chainEdges {
		t.dcel.setFace(ce, OuterFace)
		t.dcel.vertices[t.dcel.from(ce)].outEdge = ce
	}
	t.dcel.vertices[t.dcel.to(chainEdges[m-1])].outEdge = chainEdges[m-1].Rev()
	t.dcel.faces[OuterFace].adjacentEdge = chainEdges[0]
	t.dcel.vertices[v].outEdge = EmptyEdge

	t.dcel.dropFacesAndEdges(deadFaces, deadEdges)
	swappedOld, hadSwap := t.dcel.swapRemoveVertex(v)
	if hadSwap {
		newPairs, border = remapPairs(newPairs, border, swappedOld, v)
	}
	t.legalizePairs(newPairs, border)
	return swappedOld, hadSwap
}

// hullOutEdges returns the out-edges of a hull vertex in counterclockwise
// order, starting at the edge whose reversal borders the outer face and
// ending at the edge that borders it directly.
func (t *Triangulation) hullOutEdges(v VertexHandle) []DirectedEdgeHandle {
	outs := t.dcel.outEdges(v)
	start := -1
	for i, e := range outs {
		if t.dcel.face(e.Rev()).IsOuter() {
			start = i
			break
		}
	}
	if start < 0 {
		invariantf("vertex %d is not on the convex hull", v)
	}
	rotated := make([]DirectedEdgeHandle, 0, len(outs))
	rotated = append(rotated, outs[start:]...)
	rotated = append(rotated, outs[:start]...)
	if !t.dcel.face(rotated[len(rotated)-1]).IsOuter() {
		invariantf("out edges of hull vertex %d do not end at the outer face", v)
	}
	return rotated
}

func pairKey(a, b VertexHandle) [2]VertexHandle {
	if a > b {
		a, b = b, a
	}
	return [2]VertexHandle{a, b}
}

func remapPairs(pairs [][2]VertexHandle, border map[[2]VertexHandle]bool, old, renamed VertexHandle) ([][2]VertexHandle, map[[2]VertexHandle]bool) {
	remap := func(pr [2]VertexHandle) [2]VertexHandle {
		if pr[0] == old {
			pr[0] = renamed
		}
		if pr[1] == old {
			pr[1] = renamed
		}
		return pairKey(pr[0], pr[1])
	}
	for i := range pairs {
		pairs[i] = remap(pairs[i])
	}
	rebuilt := make(map[[2]VertexHandle]bool, len(border))
	for pr := range border {
		rebuilt[remap(pr)] = true
	}
	return pairs, rebuilt
}

// legalizePairs restores the Delaunay property on edges named by their
// endpoints. Pairs are resilient against the handle churn removal causes: a
// pair whose edge has since vanished is simply skipped.
func (t *Triangulation) legalizePairs(work [][2]VertexHandle, border map[[2]VertexHandle]bool) {
	for len(work) > 0 {
		pr := work[len(work)-1]
		work = work[:len(work)-1]
		if border[pr] {
			continue
		}
		e, ok := t.dcel.edgeBetween(pr[0], pr[1])
		if !ok {
			continue
		}
		if t.dcel.isConstraint(e.Undirected()) {
			continue
		}
		if t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter() {
			continue
		}
		if !t.edgeIsIllegal(e) {
			continue
		}
		from, to := t.dcel.from(e), t.dcel.to(e)
		own := t.dcel.apex(e)
		other := t.dcel.apex(e.Rev())
		for _, quad := range [4][2]VertexHandle{
			pairKey(from, other), pairKey(other, to), pairKey(to, own), pairKey(own, from),
		} {
			if !border[quad] {
				work = append(work, quad)
			}
		}
		t.dcel.flip(e)
	}
}
