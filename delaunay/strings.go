package delaunay

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/yvind/spade/dbg"
)

func (v VertexHandle) String() string {
	if !v.Valid() {
		return "Vertex(Ø)"
	}
	return fmt.Sprintf("Vertex(%d)", int(v))
}

func (e DirectedEdgeHandle) String() string {
	if !e.Valid() {
		return "Edge(Ø)"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

func (u UndirectedEdgeHandle) String() string {
	if u < 0 {
		return "UndirectedEdge(Ø)"
	}
	return fmt.Sprintf("UndirectedEdge(%d)", int(u))
}

func (f FaceHandle) String() string {
	switch {
	case !f.Valid():
		return "Face(Ø)"
	case f.IsOuter():
		return "Face(outer)"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

func (loc PositionInTriangulation) String() string {
	switch loc.Kind {
	case OnVertex:
		return fmt.Sprintf("OnVertex(%d)", int(loc.Vertex))
	case OnEdge:
		return fmt.Sprintf("OnEdge(%d)", int(loc.Edge))
	case OnFace:
		return fmt.Sprintf("OnFace(%d)", int(loc.Face))
	case OutsideConvexHull:
		return fmt.Sprintf("OutsideConvexHull(%d)", int(loc.Edge))
	}
	return "NoTriangulation"
}

// DbgEdgeName colors a readable name for an edge by its role: constraints
// red, hull edges cyan, everything else green.
func (t *Triangulation) DbgEdgeName(e DirectedEdgeHandle) string {
	name := dbg.Name("edge", int(e.Undirected()))
	switch {
	case t.dcel.isConstraint(e.Undirected()):
		name = aurora.Red(name).String()
	case t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter():
		name = aurora.Cyan(name).String()
	default:
		name = aurora.Green(name).String()
	}
	return name
}

// DescribeEdge renders an edge with its colored name and endpoint
// coordinates, for log lines while debugging.
func (t *Triangulation) DescribeEdge(e DirectedEdgeHandle) string {
	return fmt.Sprintf("%s %v -> %v",
		t.DbgEdgeName(e), t.dcel.pos(t.dcel.from(e)), t.dcel.pos(t.dcel.to(e)))
}

// DbgVertexName returns the readable name of a vertex.
func (t *Triangulation) DbgVertexName(v VertexHandle) string {
	return dbg.Name("vertex", int(v))
}
