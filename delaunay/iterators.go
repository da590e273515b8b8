package delaunay

// Handle iterators. Handles are dense indices, so iteration is a counting
// loop; the iterator types exist to keep call sites readable and to leave
// room for skipping (the face iterator hides the outer face).

// VertexIterator walks all vertex handles in arena order.
type VertexIterator struct {
	t *Triangulation
	i VertexHandle
}

// Vertices iterates over every vertex.
func (t *Triangulation) Vertices() *VertexIterator { return &VertexIterator{t: t} }

// Reset restarts the iteration from the first vertex.
func (it *VertexIterator) Reset() { it.i = 0 }

func (it *VertexIterator) Next() (VertexHandle, bool) {
	if int(it.i) >= it.t.dcel.numVertices() {
		return EmptyVertex, false
	}
	v := it.i
	it.i++
	return v, true
}

// UndirectedEdgeIterator walks all undirected edge handles.
type UndirectedEdgeIterator struct {
	t *Triangulation
	i UndirectedEdgeHandle
}

// UndirectedEdges iterates over every undirected edge.
func (t *Triangulation) UndirectedEdges() *UndirectedEdgeIterator {
	return &UndirectedEdgeIterator{t: t}
}

// Reset restarts the iteration from the first edge.
func (it *UndirectedEdgeIterator) Reset() { it.i = 0 }

func (it *UndirectedEdgeIterator) Next() (UndirectedEdgeHandle, bool) {
	if int(it.i) >= it.t.dcel.numUndirectedEdges() {
		return UndirectedEdgeHandle(-1), false
	}
	u := it.i
	it.i++
	return u, true
}

// DirectedEdgeIterator walks all directed edge handles.
type DirectedEdgeIterator struct {
	t *Triangulation
	i DirectedEdgeHandle
}

// DirectedEdges iterates over every directed edge; each undirected edge
// shows up twice, once per direction.
func (t *Triangulation) DirectedEdges() *DirectedEdgeIterator {
	return &DirectedEdgeIterator{t: t}
}

// Reset restarts the iteration from the first edge.
func (it *DirectedEdgeIterator) Reset() { it.i = 0 }

func (it *DirectedEdgeIterator) Next() (DirectedEdgeHandle, bool) {
	if int(it.i) >= it.t.dcel.numDirectedEdges() {
		return EmptyEdge, false
	}
	e := it.i
	it.i++
	return e, true
}

// InnerFaceIterator walks all triangles.
type InnerFaceIterator struct {
	t *Triangulation
	i FaceHandle
}

// InnerFaces iterates over every triangle. The outer face is skipped.
func (t *Triangulation) InnerFaces() *InnerFaceIterator {
	return &InnerFaceIterator{t: t, i: OuterFace + 1}
}

// Reset restarts the iteration from the first triangle.
func (it *InnerFaceIterator) Reset() { it.i = OuterFace + 1 }

func (it *InnerFaceIterator) Next() (FaceHandle, bool) {
	if int(it.i) >= len(it.t.dcel.faces) {
		return EmptyFace, false
	}
	f := it.i
	it.i++
	return f, true
}

// ConvexHull returns the directed edges of the convex hull in clockwise
// order, each with the outer face to its left. While all vertices are
// collinear the loop runs down the chain and back, so every edge appears in
// both directions.
func (t *Triangulation) ConvexHull() []DirectedEdgeHandle {
	start := t.dcel.faces[OuterFace].adjacentEdge
	if !start.Valid() {
		return nil
	}
	var hull []DirectedEdgeHandle
	e := start
	for {
		hull = append(hull, e)
		e = t.dcel.next(e)
		if e == start {
			return hull
		}
	}
}

// ConvexHullSize returns the number of edges of the convex hull loop.
func (t *Triangulation) ConvexHullSize() int {
	return len(t.ConvexHull())
}
