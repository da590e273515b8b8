package delaunay

// The mesh is a doubly connected edge list stored in flat arenas. All handles
// are plain indices; the two directions of an undirected edge always occupy
// adjacent slots, so reversal and the undirected view are bit operations on
// the handle and need no storage at all.
//
// Removal swaps the last element into the freed slot and truncates, so the
// arenas stay dense but a removal may rename the last handle. Callers that
// cache handles across removals must account for this.

type vertexEntry struct {
	pos     Point
	data    interface{}
	outEdge DirectedEdgeHandle // EmptyEdge while the vertex is isolated
}

type halfEdgeEntry struct {
	origin VertexHandle
	next   DirectedEdgeHandle
	prev   DirectedEdgeHandle
	face   FaceHandle
}

type faceEntry struct {
	adjacentEdge DirectedEdgeHandle
}

type dcel struct {
	vertices  []vertexEntry
	halfEdges []halfEdgeEntry
	faces     []faceEntry

	// One flag per undirected edge. Kept in a parallel slice so the half
	// edge entries stay symmetric.
	constraint []bool
}

func newDcel() dcel {
	return dcel{
		// The outer face always exists, even for an empty mesh.
		faces: []faceEntry{{adjacentEdge: EmptyEdge}},
	}
}

func (d *dcel) numVertices() int        { return len(d.vertices) }
func (d *dcel) numUndirectedEdges() int { return len(d.halfEdges) / 2 }
func (d *dcel) numDirectedEdges() int   { return len(d.halfEdges) }

// numInnerFaces excludes the outer face.
func (d *dcel) numInnerFaces() int { return len(d.faces) - 1 }

func (d *dcel) pos(v VertexHandle) Point                    { return d.vertices[v].pos }
func (d *dcel) vertexData(v VertexHandle) interface{}       { return d.vertices[v].data }
func (d *dcel) setVertexData(v VertexHandle, x interface{}) { d.vertices[v].data = x }
func (d *dcel) outEdge(v VertexHandle) DirectedEdgeHandle   { return d.vertices[v].outEdge }

func (d *dcel) from(e DirectedEdgeHandle) VertexHandle { return d.halfEdges[e].origin }
func (d *dcel) to(e DirectedEdgeHandle) VertexHandle   { return d.halfEdges[e.Rev()].origin }
func (d *dcel) next(e DirectedEdgeHandle) DirectedEdgeHandle { return d.halfEdges[e].next }
func (d *dcel) prev(e DirectedEdgeHandle) DirectedEdgeHandle { return d.halfEdges[e].prev }
func (d *dcel) face(e DirectedEdgeHandle) FaceHandle         { return d.halfEdges[e].face }

// ccw returns the next out-edge counterclockwise around the origin of e.
func (d *dcel) ccw(e DirectedEdgeHandle) DirectedEdgeHandle { return d.prev(e).Rev() }

// cw returns the next out-edge clockwise around the origin of e.
func (d *dcel) cw(e DirectedEdgeHandle) DirectedEdgeHandle { return d.next(e.Rev()) }

func (d *dcel) isConstraint(u UndirectedEdgeHandle) bool { return d.constraint[u] }

func (d *dcel) setConstraint(u UndirectedEdgeHandle, value bool) {
	d.constraint[u] = value
}

// apex returns the vertex of e's face that is not an endpoint of e. Only
// meaningful for inner faces.
func (d *dcel) apex(e DirectedEdgeHandle) VertexHandle {
	return d.to(d.next(e))
}

func (d *dcel) link(a, b DirectedEdgeHandle) {
	d.halfEdges[a].next = b
	d.halfEdges[b].prev = a
}

func (d *dcel) setFace(e DirectedEdgeHandle, f FaceHandle) {
	d.halfEdges[e].face = f
}

func (d *dcel) setOrigin(e DirectedEdgeHandle, v VertexHandle) {
	d.halfEdges[e].origin = v
	d.vertices[v].outEdge = e
}

func (d *dcel) makeVertex(p Point, data interface{}) VertexHandle {
	d.vertices = append(d.vertices, vertexEntry{pos: p, data: data, outEdge: EmptyEdge})
	return VertexHandle(len(d.vertices) - 1)
}

// makeEdgePair allocates both directions of a new undirected edge. Linkage
// and faces are left for the caller to wire up.
func (d *dcel) makeEdgePair(from, to VertexHandle) DirectedEdgeHandle {
	e := DirectedEdgeHandle(len(d.halfEdges))
	d.halfEdges = append(d.halfEdges,
		halfEdgeEntry{origin: from, next: EmptyEdge, prev: EmptyEdge, face: EmptyFace},
		halfEdgeEntry{origin: to, next: EmptyEdge, prev: EmptyEdge, face: EmptyFace},
	)
	d.constraint = append(d.constraint, false)
	d.vertices[from].outEdge = e
	d.vertices[to].outEdge = e.Rev()
	return e
}

func (d *dcel) makeFace(adjacent DirectedEdgeHandle) FaceHandle {
	d.faces = append(d.faces, faceEntry{adjacentEdge: adjacent})
	return FaceHandle(len(d.faces) - 1)
}

// edgeBetween finds the directed edge from a to b, if the two vertices are
// connected.
func (d *dcel) edgeBetween(a, b VertexHandle) (DirectedEdgeHandle, bool) {
	start := d.outEdge(a)
	if !start.Valid() {
		return EmptyEdge, false
	}
	e := start
	for {
		if d.to(e) == b {
			return e, true
		}
		e = d.ccw(e)
		if e == start {
			return EmptyEdge, false
		}
	}
}

// degree counts the edges incident to v.
func (d *dcel) degree(v VertexHandle) int {
	start := d.outEdge(v)
	if !start.Valid() {
		return 0
	}
	n := 0
	e := start
	for {
		n++
		e = d.ccw(e)
		if e == start {
			return n
		}
	}
}

// outEdges collects all out-edges of v in counterclockwise order.
func (d *dcel) outEdges(v VertexHandle) []DirectedEdgeHandle {
	start := d.outEdge(v)
	if !start.Valid() {
		return nil
	}
	var result []DirectedEdgeHandle
	e := start
	for {
		result = append(result, e)
		e = d.ccw(e)
		if e == start {
			return result
		}
	}
}

// swapRemoveVertex deletes v, which must already be isolated. If another
// vertex is renamed to fill the slot, its old handle is returned.
func (d *dcel) swapRemoveVertex(v VertexHandle) (VertexHandle, bool) {
	if d.vertices[v].outEdge.Valid() {
		invariantf("removing vertex %d which still has incident edges", v)
	}
	last := VertexHandle(len(d.vertices) - 1)
	if v != last {
		d.vertices[v] = d.vertices[last]
		start := d.vertices[v].outEdge
		if start.Valid() {
			e := start
			for {
				d.halfEdges[e].origin = v
				e = d.ccw(e)
				if e == start {
					break
				}
			}
		}
	}
	d.vertices = d.vertices[:last]
	return last, v != last
}

// swapRemoveUndirectedEdge deletes both directions of u. The edge must
// already be unlinked from any surviving loop: callers splice around it
// first. The last undirected edge is renamed to fill the slot.
func (d *dcel) swapRemoveUndirectedEdge(u UndirectedEdgeHandle) {
	last := UndirectedEdgeHandle(d.numUndirectedEdges() - 1)
	if u != last {
		oldPrimary := last.Directed()
		newPrimary := u.Directed()
		d.halfEdges[newPrimary] = d.halfEdges[oldPrimary]
		d.halfEdges[newPrimary.Rev()] = d.halfEdges[oldPrimary.Rev()]
		d.constraint[u] = d.constraint[last]
		for _, directed := range []DirectedEdgeHandle{newPrimary, newPrimary.Rev()} {
			entry := d.halfEdges[directed]
			old := oldPrimary + (directed - newPrimary)
			// Self references survive the copy with stale indices.
			if entry.next.Undirected() == last {
				entry.next = newPrimary + (entry.next - oldPrimary)
				d.halfEdges[directed].next = entry.next
			}
			if entry.prev.Undirected() == last {
				entry.prev = newPrimary + (entry.prev - oldPrimary)
				d.halfEdges[directed].prev = entry.prev
			}
			d.halfEdges[entry.next].prev = directed
			d.halfEdges[entry.prev].next = directed
			if d.vertices[entry.origin].outEdge == old {
				d.vertices[entry.origin].outEdge = directed
			}
			if entry.face.Valid() && d.faces[entry.face].adjacentEdge == old {
				d.faces[entry.face].adjacentEdge = directed
			}
		}
	}
	d.halfEdges = d.halfEdges[:2*int(last)]
	d.constraint = d.constraint[:last]
}

// swapRemoveFace deletes an inner face. Boundary edges must already point
// elsewhere. The last face is renamed to fill the slot.
func (d *dcel) swapRemoveFace(f FaceHandle) {
	if f.IsOuter() {
		invariantf("outer face cannot be removed")
	}
	last := FaceHandle(len(d.faces) - 1)
	if f != last {
		d.faces[f] = d.faces[last]
		start := d.faces[f].adjacentEdge
		e := start
		for {
			d.halfEdges[e].face = f
			e = d.next(e)
			if e == start {
				break
			}
		}
	}
	d.faces = d.faces[:last]
}
