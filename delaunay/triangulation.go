package delaunay

// Triangulation is a two dimensional Delaunay triangulation that supports
// incremental insertion, removal, constraint edges and spatial queries. The
// zero value is not usable; create instances with New.
//
// A Triangulation is not safe for concurrent mutation. Read only queries may
// run concurrently.
type Triangulation struct {
	dcel           dcel
	hinter         hintGenerator
	numConstraints int
}

// New creates an empty triangulation. Point location uses a hierarchy of
// sampled sub triangulations, which keeps uniformly distributed lookups
// close to O(log n) without any locality assumptions.
func New() *Triangulation {
	t := &Triangulation{dcel: newDcel()}
	t.hinter = newHierarchyHintGenerator()
	return t
}

// newSubTriangulation creates the cheap flavor used for the hint hierarchy
// levels themselves: locality of successive lookups is guaranteed there, so
// a last-used-vertex hint suffices.
func newSubTriangulation() *Triangulation {
	t := &Triangulation{dcel: newDcel()}
	t.hinter = &lastUsedVertexHintGenerator{}
	return t
}

// NumVertices returns the number of vertices.
func (t *Triangulation) NumVertices() int { return t.dcel.numVertices() }

// NumUndirectedEdges returns the number of undirected edges.
func (t *Triangulation) NumUndirectedEdges() int { return t.dcel.numUndirectedEdges() }

// NumDirectedEdges returns the number of directed edges, which is always
// twice the undirected count.
func (t *Triangulation) NumDirectedEdges() int { return t.dcel.numDirectedEdges() }

// NumInnerFaces returns the number of triangles, excluding the outer face.
func (t *Triangulation) NumInnerFaces() int { return t.dcel.numInnerFaces() }

// NumConstraints returns the number of undirected edges currently marked as
// constraints.
func (t *Triangulation) NumConstraints() int { return t.numConstraints }

// AllVerticesOnLine reports whether the triangulation is degenerate: fewer
// than three vertices, or all vertices collinear. No inner face exists in
// that state.
func (t *Triangulation) AllVerticesOnLine() bool { return t.dcel.numInnerFaces() == 0 }

// Position returns the coordinates of v.
func (t *Triangulation) Position(v VertexHandle) Point { return t.dcel.pos(v) }

// Data returns the payload stored with v.
func (t *Triangulation) Data(v VertexHandle) interface{} { return t.dcel.vertexData(v) }

// SetData replaces the payload stored with v.
func (t *Triangulation) SetData(v VertexHandle, data interface{}) { t.dcel.setVertexData(v, data) }

// From returns the origin vertex of a directed edge.
func (t *Triangulation) From(e DirectedEdgeHandle) VertexHandle { return t.dcel.from(e) }

// To returns the destination vertex of a directed edge.
func (t *Triangulation) To(e DirectedEdgeHandle) VertexHandle { return t.dcel.to(e) }

// Next returns the successor of e along its face loop.
func (t *Triangulation) Next(e DirectedEdgeHandle) DirectedEdgeHandle { return t.dcel.next(e) }

// Prev returns the predecessor of e along its face loop.
func (t *Triangulation) Prev(e DirectedEdgeHandle) DirectedEdgeHandle { return t.dcel.prev(e) }

// Face returns the face left of e.
func (t *Triangulation) Face(e DirectedEdgeHandle) FaceHandle { return t.dcel.face(e) }

// CCW returns the next out-edge counterclockwise around the origin of e.
func (t *Triangulation) CCW(e DirectedEdgeHandle) DirectedEdgeHandle { return t.dcel.ccw(e) }

// CW returns the next out-edge clockwise around the origin of e.
func (t *Triangulation) CW(e DirectedEdgeHandle) DirectedEdgeHandle { return t.dcel.cw(e) }

// OutEdge returns an arbitrary directed edge originating at v, or an invalid
// handle for an isolated vertex.
func (t *Triangulation) OutEdge(v VertexHandle) DirectedEdgeHandle { return t.dcel.outEdge(v) }

// Degree returns the number of edges incident to v.
func (t *Triangulation) Degree(v VertexHandle) int { return t.dcel.degree(v) }

// EdgeBetween returns the directed edge from a to b if the vertices are
// connected.
func (t *Triangulation) EdgeBetween(a, b VertexHandle) (DirectedEdgeHandle, bool) {
	if !t.handleValid(a) || !t.handleValid(b) {
		return EmptyEdge, false
	}
	return t.dcel.edgeBetween(a, b)
}

// IsConstraintEdge reports whether the undirected edge is a constraint.
func (t *Triangulation) IsConstraintEdge(u UndirectedEdgeHandle) bool {
	return t.dcel.isConstraint(u)
}

// FaceVertices returns the three corners of an inner face in
// counterclockwise order.
func (t *Triangulation) FaceVertices(f FaceHandle) [3]VertexHandle {
	if f.IsOuter() {
		invariantf("outer face has no vertex triple")
	}
	e := t.dcel.faces[f].adjacentEdge
	return [3]VertexHandle{t.dcel.from(e), t.dcel.to(e), t.dcel.apex(e)}
}

// FacePositions returns the corner coordinates of an inner face in
// counterclockwise order.
func (t *Triangulation) FacePositions(f FaceHandle) [3]Point {
	vs := t.FaceVertices(f)
	return [3]Point{t.dcel.pos(vs[0]), t.dcel.pos(vs[1]), t.dcel.pos(vs[2])}
}

// FaceAdjacentEdge returns a directed edge whose left face is f.
func (t *Triangulation) FaceAdjacentEdge(f FaceHandle) DirectedEdgeHandle {
	return t.dcel.faces[f].adjacentEdge
}

func (t *Triangulation) handleValid(v VertexHandle) bool {
	return v >= 0 && int(v) < t.dcel.numVertices()
}

// sideQuery returns the orientation of p relative to the directed edge e.
// LeftTurn means p lies strictly left of e.
func (t *Triangulation) sideQuery(e DirectedEdgeHandle, p Point) Orientation {
	return orient2d(t.dcel.pos(t.dcel.from(e)), t.dcel.pos(t.dcel.to(e)), p)
}
