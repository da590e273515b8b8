package delaunay

import (
	"math/rand"
	"sync/atomic"
)

// hintGenerator supplies starting vertices for location walks and is kept in
// sync with every mutation.
type hintGenerator interface {
	getHint(p Point) VertexHandle
	notifyVertexLookup(v VertexHandle)
	notifyVertexInserted(v VertexHandle, p Point)
	// notifyVertexRemoved reports a completed removal: the position that
	// vanished, the handle it occupied, and which old handle got renamed
	// to fill the slot, if any.
	notifyVertexRemoved(p Point, v VertexHandle, swappedOld VertexHandle, hadSwap bool)
}

// lastUsedVertexHintGenerator returns whatever vertex was touched last. It
// is only a good strategy when consecutive queries are spatially close,
// which holds for the hierarchy levels below.
type lastUsedVertexHintGenerator struct {
	last VertexHandle
}

func (g *lastUsedVertexHintGenerator) getHint(Point) VertexHandle { return g.last }

func (g *lastUsedVertexHintGenerator) notifyVertexLookup(v VertexHandle) { g.last = v }

func (g *lastUsedVertexHintGenerator) notifyVertexInserted(v VertexHandle, _ Point) { g.last = v }

func (g *lastUsedVertexHintGenerator) notifyVertexRemoved(Point, VertexHandle, VertexHandle, bool) {
	// The stored handle may have been renamed or deleted; start from
	// scratch rather than track it.
	g.last = 0
}

// hierarchyRatio is the sampling divisor between hierarchy levels: a vertex
// reaches level k with probability hierarchyRatio^-(k+1).
const hierarchyRatio = 16

// hierarchyHintGenerator keeps a stack of ever sparser copies of the vertex
// set, each one a triangulation of its own. A lookup walks the coarsest
// level to its nearest neighbor, hops down one level through the stored
// link, and repeats, giving expected logarithmic lookups regardless of query
// order.
//
// A level vertex stores the matching handle one level below as its payload;
// level zero stores handles of the primary triangulation.
type hierarchyHintGenerator struct {
	levels []*Triangulation
	rng    *rand.Rand
	// last caches the most recently touched vertex of the primary
	// triangulation. Read-only queries may run concurrently and update it
	// as a side effect, so all access is atomic.
	last int64
}

func newHierarchyHintGenerator() *hierarchyHintGenerator {
	// Deterministic sampling keeps runs reproducible; the quality of the
	// hierarchy does not depend on the seed.
	return &hierarchyHintGenerator{rng: rand.New(rand.NewSource(0x5ADE))}
}

func (h *hierarchyHintGenerator) getHint(p Point) VertexHandle {
	cur := VertexHandle(0)
	for level := len(h.levels) - 1; level >= 0; level-- {
		sub := h.levels[level]
		if sub.NumVertices() == 0 {
			cur = 0
			continue
		}
		if !sub.handleValid(cur) {
			cur = 0
		}
		nearest := sub.walkToNearestNeighbor(cur, p)
		cur = sub.Data(nearest).(VertexHandle)
	}
	if len(h.levels) == 0 {
		return VertexHandle(atomic.LoadInt64(&h.last))
	}
	return cur
}

func (h *hierarchyHintGenerator) notifyVertexLookup(v VertexHandle) {
	atomic.StoreInt64(&h.last, int64(v))
}

func (h *hierarchyHintGenerator) notifyVertexInserted(v VertexHandle, p Point) {
	atomic.StoreInt64(&h.last, int64(v))
	link := v
	for level := 0; h.rng.Intn(hierarchyRatio) == 0; level++ {
		if len(h.levels) <= level {
			h.levels = append(h.levels, newSubTriangulation())
		}
		inserted, err := h.levels[level].InsertWithData(p, link)
		if err != nil {
			// The primary insert already validated the coordinates.
			invariantf("hierarchy level %d rejected a validated point: %v", level, err)
		}
		link = inserted
	}
}

func (h *hierarchyHintGenerator) notifyVertexRemoved(p Point, v VertexHandle, swappedOld VertexHandle, hadSwap bool) {
	atomic.StoreInt64(&h.last, 0)
	if hadSwap {
		h.relinkLevel(0, swappedOld, v)
	}
	for level := 0; level < len(h.levels); level++ {
		sub := h.levels[level]
		loc := sub.locateWithHintFixed(p, 0)
		if loc.Kind != OnVertex {
			// Not sampled into this level, so not into any above it.
			break
		}
		subSwappedOld, subHadSwap := sub.removeCore(loc.Vertex)
		sub.hinter.notifyVertexRemoved(p, loc.Vertex, subSwappedOld, subHadSwap)
		if subHadSwap {
			h.relinkLevel(level+1, subSwappedOld, loc.Vertex)
		}
	}
}

// relinkLevel rewrites payload links of the given level after a handle one
// level below was renamed from old to new. Level sizes shrink geometrically,
// so the linear scan is cheap.
func (h *hierarchyHintGenerator) relinkLevel(level int, old, renamed VertexHandle) {
	if level >= len(h.levels) {
		return
	}
	sub := h.levels[level]
	for v := VertexHandle(0); int(v) < sub.NumVertices(); v++ {
		if sub.Data(v).(VertexHandle) == old {
			sub.SetData(v, renamed)
			return
		}
	}
}
