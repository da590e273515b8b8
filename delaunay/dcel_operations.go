package delaunay

import "sort"

// Primitive topology mutations. These adjust linkage only; they never call
// predicates and never decide where a point belongs. The insertion, removal
// and constraint engines drive them.
//
// Orientation conventions:
//   - inner faces are counterclockwise triangles
//   - the outer face forms a single clockwise loop along the convex hull
//   - while all vertices are collinear no inner face exists and the edge
//     chain doubles back on itself, visiting every undirected edge twice

// insertFirstVertex handles the transition from the empty mesh.
func (d *dcel) insertFirstVertex(p Point, data interface{}) VertexHandle {
	return d.makeVertex(p, data)
}

// insertSecondVertex connects the only two vertices with a single edge whose
// both sides are the outer face.
func (d *dcel) insertSecondVertex(p Point, data interface{}) VertexHandle {
	v := d.makeVertex(p, data)
	e := d.makeEdgePair(0, v)
	d.link(e, e.Rev())
	d.link(e.Rev(), e)
	d.setFace(e, OuterFace)
	d.setFace(e.Rev(), OuterFace)
	d.faces[OuterFace].adjacentEdge = e
	return v
}

// extendLine appends a new vertex beyond an endpoint of the degenerate edge
// chain. endEdge must point at the chain endpoint, i.e. next(endEdge) must be
// its own reversal's successor through that endpoint.
func (d *dcel) extendLine(endEdge DirectedEdgeHandle, p Point, data interface{}) VertexHandle {
	end := d.to(endEdge)
	v := d.makeVertex(p, data)
	e := d.makeEdgePair(end, v)
	follower := d.next(endEdge)
	d.link(endEdge, e)
	d.link(e, e.Rev())
	d.link(e.Rev(), follower)
	d.setFace(e, OuterFace)
	d.setFace(e.Rev(), OuterFace)
	return v
}

// splitEdgeWhenAllVerticesOnLine splits edge e (a -> b) at p while the mesh
// is still fully collinear. The original edge keeps the a -> p half; the new
// pair covers p -> b. Both halves are returned.
func (d *dcel) splitEdgeWhenAllVerticesOnLine(e DirectedEdgeHandle, p Point, data interface{}) (VertexHandle, [2]DirectedEdgeHandle) {
	b := d.to(e)
	v := d.makeVertex(p, data)
	e2 := d.makeEdgePair(v, b)
	d.setFace(e2, OuterFace)
	d.setFace(e2.Rev(), OuterFace)

	afterE := d.next(e)
	beforeRev := d.prev(e.Rev())
	d.setOrigin(e.Rev(), v)
	if afterE == e.Rev() {
		// b is the chain endpoint; the loop turns around at v's new edge.
		d.link(e, e2)
		d.link(e2, e2.Rev())
		d.link(e2.Rev(), e.Rev())
	} else {
		d.link(e, e2)
		d.link(e2, afterE)
		d.link(beforeRev, e2.Rev())
		d.link(e2.Rev(), e.Rev())
	}
	if d.vertices[b].outEdge == e.Rev() {
		d.vertices[b].outEdge = e2.Rev()
	}
	return v, [2]DirectedEdgeHandle{e, e2}
}

// insertIntoTriangle splits an inner face into three by connecting p to its
// corners.
func (d *dcel) insertIntoTriangle(f FaceHandle, p Point, data interface{}) VertexHandle {
	e1 := d.faces[f].adjacentEdge
	e2 := d.next(e1)
	e3 := d.next(e2)
	a, b, c := d.from(e1), d.from(e2), d.from(e3)

	v := d.makeVertex(p, data)
	av := d.makeEdgePair(a, v)
	bv := d.makeEdgePair(b, v)
	cv := d.makeEdgePair(c, v)

	f2 := d.makeFace(e2)
	f3 := d.makeFace(e3)
	d.faces[f].adjacentEdge = e1

	d.assembleTriangle(f, e1, bv, av.Rev())
	d.assembleTriangle(f2, e2, cv, bv.Rev())
	d.assembleTriangle(f3, e3, av, cv.Rev())
	return v
}

func (d *dcel) assembleTriangle(f FaceHandle, e1, e2, e3 DirectedEdgeHandle) {
	d.link(e1, e2)
	d.link(e2, e3)
	d.link(e3, e1)
	d.setFace(e1, f)
	d.setFace(e2, f)
	d.setFace(e3, f)
}

// splitEdge splits edge e (a -> b) at p. Both adjacent faces must be inner.
// Returns the new vertex and the two halves a -> p, p -> b.
func (d *dcel) splitEdge(e DirectedEdgeHandle, p Point, data interface{}) (VertexHandle, [2]DirectedEdgeHandle) {
	t := e.Rev()
	en, ep := d.next(e), d.prev(e)
	tn, tp := d.next(t), d.prev(t)
	f, g := d.face(e), d.face(t)
	b := d.to(e)
	c := d.apex(e)
	da := d.apex(t)

	v := d.makeVertex(p, data)
	e2 := d.makeEdgePair(v, b)
	vc := d.makeEdgePair(v, c)
	vd := d.makeEdgePair(v, da)

	d.setOrigin(t, v)
	if d.vertices[b].outEdge == t {
		d.vertices[b].outEdge = e2.Rev()
	}

	f2 := d.makeFace(e2)
	g2 := d.makeFace(t)
	d.faces[f].adjacentEdge = e
	d.faces[g].adjacentEdge = e2.Rev()

	d.assembleTriangle(f, e, vc, ep)
	d.assembleTriangle(f2, e2, en, vc.Rev())
	d.assembleTriangle(g, e2.Rev(), vd, tp)
	d.assembleTriangle(g2, t, tn, vd.Rev())
	return v, [2]DirectedEdgeHandle{e, e2}
}

// splitHalfEdge splits a hull edge e (a -> b) whose reversal borders the
// outer face. Returns the new vertex and the halves a -> p, p -> b.
func (d *dcel) splitHalfEdge(e DirectedEdgeHandle, p Point, data interface{}) (VertexHandle, [2]DirectedEdgeHandle) {
	t := e.Rev()
	en, ep := d.next(e), d.prev(e)
	outerPrev, outerNext := d.prev(t), d.next(t)
	f := d.face(e)
	b := d.to(e)
	c := d.apex(e)

	v := d.makeVertex(p, data)
	e2 := d.makeEdgePair(v, b)
	vc := d.makeEdgePair(v, c)

	d.setOrigin(t, v)
	if d.vertices[b].outEdge == t {
		d.vertices[b].outEdge = e2.Rev()
	}

	f2 := d.makeFace(e2)
	d.faces[f].adjacentEdge = e
	d.assembleTriangle(f, e, vc, ep)
	d.assembleTriangle(f2, e2, en, vc.Rev())

	d.setFace(e2.Rev(), OuterFace)
	d.link(outerPrev, e2.Rev())
	d.link(e2.Rev(), t)
	d.link(t, outerNext)
	return v, [2]DirectedEdgeHandle{e, e2}
}

// createNewFaceAdjacentToEdge grows a triangle outward from hull edge e
// (a -> b, bordering the outer face) to the new vertex at p, which must lie
// strictly left of e.
func (d *dcel) createNewFaceAdjacentToEdge(e DirectedEdgeHandle, p Point, data interface{}) VertexHandle {
	a, b := d.from(e), d.to(e)
	outerPrev, outerNext := d.prev(e), d.next(e)

	v := d.makeVertex(p, data)
	bv := d.makeEdgePair(b, v)
	va := d.makeEdgePair(v, a)

	f := d.makeFace(e)
	d.assembleTriangle(f, e, bv, va)

	d.setFace(va.Rev(), OuterFace)
	d.setFace(bv.Rev(), OuterFace)
	d.link(outerPrev, va.Rev())
	d.link(va.Rev(), bv.Rev())
	d.link(bv.Rev(), outerNext)
	d.faces[OuterFace].adjacentEdge = va.Rev()
	return v
}

// createSingleFaceBetweenEdgeAndNext closes the hull notch formed by outer
// edge e (x -> a) and its successor (a -> y) with a new triangle. y must lie
// strictly left of e. Returns the new hull edge x -> y seen from outside.
func (d *dcel) createSingleFaceBetweenEdgeAndNext(e DirectedEdgeHandle) DirectedEdgeHandle {
	f := d.next(e)
	x := d.from(e)
	y := d.to(f)
	outerPrev, outerNext := d.prev(e), d.next(f)

	yx := d.makeEdgePair(y, x)
	inner := d.makeFace(e)
	d.assembleTriangle(inner, e, f, yx)

	d.setFace(yx.Rev(), OuterFace)
	d.link(outerPrev, yx.Rev())
	d.link(yx.Rev(), outerNext)
	d.faces[OuterFace].adjacentEdge = yx.Rev()
	return yx.Rev()
}

// flip rotates the diagonal of the quadrilateral formed by the two inner
// faces of e. If e runs a -> b with apexes c (left) and d (right), the edge
// afterwards runs d -> c. The edge pair and both faces are reused in place,
// so handles stay valid; only their incidences change.
func (d *dcel) flip(e DirectedEdgeHandle) {
	t := e.Rev()
	en, ep := d.next(e), d.prev(e)
	tn, tp := d.next(t), d.prev(t)
	f, g := d.face(e), d.face(t)
	a, b := d.from(e), d.to(e)
	c := d.apex(e)
	apexD := d.apex(t)

	d.setOrigin(e, apexD)
	d.setOrigin(t, c)
	if d.vertices[a].outEdge == e {
		d.vertices[a].outEdge = tn
	}
	if d.vertices[b].outEdge == t {
		d.vertices[b].outEdge = en
	}

	d.assembleTriangle(f, tn, e, ep)
	d.assembleTriangle(g, tp, en, t)
	d.faces[f].adjacentEdge = e
	d.faces[g].adjacentEdge = t
}

// removeDegree3Vertex removes an interior vertex with exactly three
// neighbors, merging its three faces into one.
func (d *dcel) removeDegree3Vertex(v VertexHandle) (VertexHandle, bool) {
	out := d.outEdges(v)
	if len(out) != 3 {
		invariantf("degree 3 removal on vertex %d with degree %d", v, len(out))
	}
	// Fan faces in ccw order; border edge of face(out[i]) is next(out[i]).
	border := [3]DirectedEdgeHandle{d.next(out[0]), d.next(out[1]), d.next(out[2])}
	keep := d.face(out[0])
	drop := []FaceHandle{d.face(out[1]), d.face(out[2])}

	d.assembleTriangle(keep, border[0], border[1], border[2])
	d.faces[keep].adjacentEdge = border[0]
	// The neighbors may have pointed their out edge at a deleted spoke.
	for _, e := range border {
		d.vertices[d.from(e)].outEdge = e
	}
	d.vertices[v].outEdge = EmptyEdge

	d.dropFacesAndEdges(drop, []UndirectedEdgeHandle{
		out[0].Undirected(), out[1].Undirected(), out[2].Undirected(),
	})
	return d.swapRemoveVertex(v)
}

// dropFacesAndEdges swap-removes the given faces and undirected edges. The
// handles must be fully unlinked from all surviving structure. Deletion runs
// in descending handle order so pending handles stay stable.
func (d *dcel) dropFacesAndEdges(faces []FaceHandle, edges []UndirectedEdgeHandle) {
	sort.Slice(faces, func(i, j int) bool { return faces[i] > faces[j] })
	for _, f := range faces {
		d.swapRemoveFace(f)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] > edges[j] })
	for _, u := range edges {
		d.swapRemoveUndirectedEdge(u)
	}
}
