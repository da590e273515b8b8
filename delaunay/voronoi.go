package delaunay

import "math"

// The Voronoi diagram is the dual of the triangulation: every inner face
// contributes its circumcenter as a Voronoi vertex and every triangulation
// vertex owns the cell around it. Nothing of this is stored; cells are
// walked lazily off the live topology.

// VoronoiCellIterator yields the circumcenters bounding the Voronoi cell of
// one vertex, in counterclockwise order. Cells of convex hull vertices are
// unbounded; the iterator yields only the finite corners in that case.
type VoronoiCellIterator struct {
	t       *Triangulation
	start   DirectedEdgeHandle
	current DirectedEdgeHandle
	done    bool
}

// VoronoiCell starts a lazy walk around the Voronoi cell of v.
func (t *Triangulation) VoronoiCell(v VertexHandle) *VoronoiCellIterator {
	start := t.dcel.outEdge(v)
	return &VoronoiCellIterator{t: t, start: start, current: start, done: !start.Valid()}
}

// Reset restarts the walk at the first cell corner.
func (it *VoronoiCellIterator) Reset() {
	it.current = it.start
	it.done = !it.start.Valid()
}

// Next returns the following cell corner, or false when the walk is done.
func (it *VoronoiCellIterator) Next() (Point, bool) {
	for !it.done {
		e := it.current
		it.current = it.t.dcel.ccw(e)
		if it.current == it.start {
			it.done = true
		}
		if f := it.t.dcel.face(e); !f.IsOuter() {
			ps := it.t.FacePositions(f)
			return circumcenter(ps[0], ps[1], ps[2]), true
		}
	}
	return Point{}, false
}

// IsBounded reports whether the cell being walked is a bounded polygon,
// which is the case exactly when its vertex does not lie on the convex
// hull.
func (it *VoronoiCellIterator) IsBounded() bool {
	if !it.start.Valid() {
		return false
	}
	e := it.start
	for {
		if it.t.dcel.face(e).IsOuter() {
			return false
		}
		e = it.t.dcel.ccw(e)
		if e == it.start {
			return true
		}
	}
}

// NearestNeighbor returns the vertex closest to p. The second return value
// is false for an empty triangulation or a non finite query point.
func (t *Triangulation) NearestNeighbor(p Point) (VertexHandle, bool) {
	if t.dcel.numVertices() == 0 || !p.IsFinite() {
		return EmptyVertex, false
	}
	hint := t.hinter.getHint(p)
	if !t.handleValid(hint) {
		hint = 0
	}
	v := t.walkToNearestNeighbor(hint, p)
	t.hinter.notifyVertexLookup(v)
	return v, true
}

// NaturalNeighborWeights computes the Sibson coordinates of p: one weight
// per natural neighbor, positive and summing to one, varying continuously
// with p. Outside the convex hull, and in a degenerate triangulation, no
// weights exist and an empty map is returned.
func (t *Triangulation) NaturalNeighborWeights(p Point) (map[VertexHandle]float64, error) {
	if !p.IsFinite() {
		return nil, ErrInvalidCoordinate
	}
	weights := make(map[VertexHandle]float64)
	if t.AllVerticesOnLine() {
		loc := t.Locate(p)
		if loc.Kind == OnVertex {
			weights[loc.Vertex] = 1
		}
		return weights, nil
	}
	loc := t.Locate(p)
	switch loc.Kind {
	case OnVertex:
		weights[loc.Vertex] = 1
		return weights, nil
	case OutsideConvexHull, NoTriangulation:
		return weights, nil
	case OnEdge:
		e := loc.Edge
		if t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter() {
			// On a hull edge the cavity based weights degenerate;
			// the limit is linear interpolation along the edge.
			t.linearEdgeWeights(e, p, weights)
			return weights, nil
		}
		t.sibsonWeights(p, []FaceHandle{t.dcel.face(e), t.dcel.face(e.Rev())}, weights)
		return weights, nil
	default:
		t.sibsonWeights(p, []FaceHandle{loc.Face}, weights)
		return weights, nil
	}
}

// InterpolateNaturalNeighbor evaluates value at the natural neighbors of p
// and blends the results with Sibson weights. Returns false where no
// weights exist.
func (t *Triangulation) InterpolateNaturalNeighbor(p Point, value func(VertexHandle) float64) (float64, bool) {
	weights, err := t.NaturalNeighborWeights(p)
	if err != nil || len(weights) == 0 {
		return 0, false
	}
	result := 0.0
	for v, w := range weights {
		result += w * value(v)
	}
	return result, true
}

func (t *Triangulation) linearEdgeWeights(e DirectedEdgeHandle, p Point, weights map[VertexHandle]float64) {
	a, b := t.dcel.from(e), t.dcel.to(e)
	pa, pb := t.dcel.pos(a), t.dcel.pos(b)
	direction := pb.sub(pa)
	span := direction.X*direction.X + direction.Y*direction.Y
	fraction := ((p.X-pa.X)*direction.X + (p.Y-pa.Y)*direction.Y) / span
	weights[a] = 1 - fraction
	weights[b] = fraction
}

// sibsonWeights grows the conflict cavity of p from the seed faces, walks
// its boundary and assigns every boundary vertex the area its Voronoi cell
// would lose to p upon insertion.
func (t *Triangulation) sibsonWeights(p Point, seeds []FaceHandle, weights map[VertexHandle]float64) {
	inCavity := make(map[FaceHandle]bool, len(seeds))
	stack := append([]FaceHandle(nil), seeds...)
	for _, f := range seeds {
		inCavity[f] = true
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e := t.dcel.faces[f].adjacentEdge
		for i := 0; i < 3; i++ {
			beyond := t.dcel.face(e.Rev())
			if !beyond.IsOuter() && !inCavity[beyond] {
				ps := t.FacePositions(beyond)
				if inCircle(ps[0], ps[1], ps[2], p) == InsideCircle {
					inCavity[beyond] = true
					stack = append(stack, beyond)
				}
			}
			e = t.dcel.next(e)
		}
	}

	boundaryStart := t.cavityBoundaryEdge(seeds[0], inCavity)
	total := 0.0
	e := boundaryStart
	for {
		v := t.dcel.to(e)
		u := t.dcel.from(e)
		polygon := []Point{circumcenter(p, t.dcel.pos(u), t.dcel.pos(v))}
		// Rotate through the cavity faces around v, collecting their
		// circumcenters, until the boundary continues.
		cur := e
		var next DirectedEdgeHandle
		for {
			ps := t.FacePositions(t.dcel.face(cur))
			polygon = append(polygon, circumcenter(ps[0], ps[1], ps[2]))
			candidate := t.dcel.next(cur)
			if !inCavity[t.dcel.face(candidate.Rev())] {
				polygon = append(polygon, circumcenter(p, t.dcel.pos(v), t.dcel.pos(t.dcel.to(candidate))))
				next = candidate
				break
			}
			cur = candidate.Rev()
		}
		area := math.Abs(shoelace(polygon))
		weights[v] += area
		total += area
		e = next
		if e == boundaryStart {
			break
		}
	}

	if total <= 0 {
		// All stolen areas vanished, which only happens in near
		// degenerate cavities; fall back to an even blend.
		for v := range weights {
			weights[v] = 1 / float64(len(weights))
		}
		return
	}
	for v := range weights {
		weights[v] /= total
	}
}

// cavityBoundaryEdge finds a directed edge with the cavity on its left and
// the outside (or outer face) on its right.
func (t *Triangulation) cavityBoundaryEdge(seed FaceHandle, inCavity map[FaceHandle]bool) DirectedEdgeHandle {
	var frontier []FaceHandle
	visited := map[FaceHandle]bool{seed: true}
	frontier = append(frontier, seed)
	for len(frontier) > 0 {
		f := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		e := t.dcel.faces[f].adjacentEdge
		for i := 0; i < 3; i++ {
			beyond := t.dcel.face(e.Rev())
			if beyond.IsOuter() || !inCavity[beyond] {
				return e
			}
			if !visited[beyond] {
				visited[beyond] = true
				frontier = append(frontier, beyond)
			}
			e = t.dcel.next(e)
		}
	}
	invariantf("conflict cavity without boundary")
	return EmptyEdge
}

// shoelace is the signed area of a polygon, positive for counterclockwise
// winding.
func shoelace(polygon []Point) float64 {
	sum := 0.0
	for i, p := range polygon {
		q := polygon[(i+1)%len(polygon)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}
