package delaunay

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkHierarchy walks every hierarchy level and verifies its payload links
// resolve to a vertex with the same position one level below.
func checkHierarchy(t *testing.T, tr *Triangulation) {
	t.Helper()
	h, ok := tr.hinter.(*hierarchyHintGenerator)
	require.True(t, ok)
	below := tr
	for level, sub := range h.levels {
		require.NoError(t, sub.sanityCheck(), "level %d", level)
		for v := VertexHandle(0); int(v) < sub.NumVertices(); v++ {
			link, ok := sub.Data(v).(VertexHandle)
			require.True(t, ok, "level %d vertex %d carries no link", level, v)
			require.True(t, below.handleValid(link), "level %d vertex %d links to stale %d", level, v, link)
			assert.Equal(t, below.Position(link), sub.Position(v), "level %d vertex %d", level, v)
		}
		below = sub
	}
}

func TestHierarchyStaysLinked(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	tr := New()
	for i := 0; i < 600; i++ {
		_, err := tr.Insert(Point{rng.Float64() * 100, rng.Float64() * 100})
		require.NoError(t, err)
	}
	requireDelaunay(t, tr)
	checkHierarchy(t, tr)

	// With 600 samples and ratio 16 at least one level must exist.
	h := tr.hinter.(*hierarchyHintGenerator)
	assert.NotEmpty(t, h.levels)
	if len(h.levels) > 0 {
		assert.Less(t, h.levels[0].NumVertices(), 600/8)
	}
}

func TestHierarchySurvivesRemovals(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tr := New()
	for i := 0; i < 400; i++ {
		_, err := tr.Insert(Point{rng.Float64() * 100, rng.Float64() * 100})
		require.NoError(t, err)
	}
	for tr.NumVertices() > 50 {
		v := VertexHandle(rng.Intn(tr.NumVertices()))
		_, err := tr.Remove(v)
		require.NoError(t, err)
	}
	requireDelaunay(t, tr)
	checkHierarchy(t, tr)

	// Locates still answer correctly after all the churn.
	for v := VertexHandle(0); int(v) < tr.NumVertices(); v++ {
		loc := tr.Locate(tr.Position(v))
		require.Equal(t, OnVertex, loc.Kind)
		assert.Equal(t, v, loc.Vertex)
	}
}

func TestHierarchyMixedChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	tr := New()
	for round := 0; round < 30; round++ {
		for i := 0; i < 20; i++ {
			_, err := tr.Insert(Point{rng.Float64() * 50, rng.Float64() * 50})
			require.NoError(t, err)
		}
		for i := 0; i < 10 && tr.NumVertices() > 3; i++ {
			_, err := tr.Remove(VertexHandle(rng.Intn(tr.NumVertices())))
			require.NoError(t, err)
		}
	}
	requireDelaunay(t, tr)
	checkHierarchy(t, tr)
}

func TestConcurrentQueries(t *testing.T) {
	// Read-only queries are documented as safe to run concurrently; they
	// share the hint cache, so this is what the race detector watches.
	rng := rand.New(rand.NewSource(9))
	tr := New()
	for i := 0; i < 200; i++ {
		_, err := tr.Insert(Point{rng.Float64() * 100, rng.Float64() * 100})
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			local := rand.New(rand.NewSource(seed))
			for i := 0; i < 500; i++ {
				p := Point{local.Float64() * 100, local.Float64() * 100}
				tr.Locate(p)
				if v, ok := tr.NearestNeighbor(p); ok {
					_ = tr.Position(v)
				}
			}
		}(int64(g))
	}
	wg.Wait()
	requireDelaunay(t, tr)
}

func TestLastUsedHintGenerator(t *testing.T) {
	// Sub triangulations use the cheap last-used strategy; exercised here
	// directly for its bookkeeping.
	g := &lastUsedVertexHintGenerator{}
	assert.Equal(t, VertexHandle(0), g.getHint(Point{1, 1}))
	g.notifyVertexInserted(4, Point{2, 2})
	assert.Equal(t, VertexHandle(4), g.getHint(Point{0, 0}))
	g.notifyVertexLookup(2)
	assert.Equal(t, VertexHandle(2), g.getHint(Point{0, 0}))
	g.notifyVertexRemoved(Point{}, 2, 3, true)
	assert.Equal(t, VertexHandle(0), g.getHint(Point{0, 0}))
}
