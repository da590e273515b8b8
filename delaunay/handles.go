package delaunay

// All mesh entities are referenced by index into flat arenas owned by the
// triangulation (see dcel.go). The connectivity graph is full of cycles, so
// entities never reference each other directly; handles keep the
// representation tight and make the relations trivially copyable.

type VertexHandle int
type DirectedEdgeHandle int
type UndirectedEdgeHandle int
type FaceHandle int

const (
	EmptyVertex VertexHandle       = -1
	EmptyEdge   DirectedEdgeHandle = -1
	EmptyFace   FaceHandle         = -1

	// The sentinel face bordered by every edge on the outer boundary of the
	// triangulated region. It is always stored at index 0 and never removed.
	OuterFace FaceHandle = 0
)

func (v VertexHandle) Valid() bool { return v >= 0 }

func (e DirectedEdgeHandle) Valid() bool { return e >= 0 }

// Rev returns the opposite (reverse) directed edge. The two directions of an
// undirected edge are always stored as an adjacent pair, so reversal is a
// single bit toggle.
func (e DirectedEdgeHandle) Rev() DirectedEdgeHandle { return e ^ 1 }

// Undirected returns the undirected edge this direction belongs to.
func (e DirectedEdgeHandle) Undirected() UndirectedEdgeHandle {
	return UndirectedEdgeHandle(e >> 1)
}

// isPrimary reports whether this is the even-indexed direction of its
// undirected pair. Exactly one direction of every edge is primary, which
// gives iteration over undirected edges a canonical representative.
func (e DirectedEdgeHandle) isPrimary() bool { return e&1 == 0 }

func (u UndirectedEdgeHandle) Valid() bool { return u >= 0 }

// Directed returns the primary direction of this undirected edge.
func (u UndirectedEdgeHandle) Directed() DirectedEdgeHandle {
	return DirectedEdgeHandle(u << 1)
}

func (f FaceHandle) Valid() bool { return f >= 0 }

// IsOuter reports whether this is the sentinel outer face.
func (f FaceHandle) IsOuter() bool { return f == OuterFace }
