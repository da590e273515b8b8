package delaunay

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireHealthy(t *testing.T, tr *Triangulation) {
	t.Helper()
	require.NoError(t, tr.sanityCheck())
}

func requireDelaunay(t *testing.T, tr *Triangulation) {
	t.Helper()
	require.NoError(t, tr.sanityCheck())
	require.NoError(t, tr.delaunayCheck())
}

func insertAll(t *testing.T, tr *Triangulation, points []Point) []VertexHandle {
	t.Helper()
	handles := make([]VertexHandle, len(points))
	for i, p := range points {
		v, err := tr.Insert(p)
		require.NoError(t, err)
		handles[i] = v
	}
	return handles
}

func TestInsertBasic(t *testing.T) {
	t.Run("empty and single vertex", func(t *testing.T) {
		tr := New()
		assert.Equal(t, 0, tr.NumVertices())
		v, err := tr.Insert(Point{1, 2})
		require.NoError(t, err)
		assert.Equal(t, VertexHandle(0), v)
		assert.Equal(t, 1, tr.NumVertices())
		assert.True(t, tr.AllVerticesOnLine())
		requireHealthy(t, tr)
	})

	t.Run("first triangle", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {2, 0}, {1, 2}})
		assert.Equal(t, 3, tr.NumVertices())
		assert.Equal(t, 3, tr.NumUndirectedEdges())
		assert.Equal(t, 1, tr.NumInnerFaces())
		assert.False(t, tr.AllVerticesOnLine())
		requireDelaunay(t, tr)
	})

	t.Run("inside a face", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {4, 0}, {2, 4}, {2, 1}})
		assert.Equal(t, 3, tr.NumInnerFaces())
		assert.Equal(t, 6, tr.NumUndirectedEdges())
		requireDelaunay(t, tr)
	})

	t.Run("outside of the hull", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {2, 0}, {1, 2}, {1, -2}})
		assert.Equal(t, 2, tr.NumInnerFaces())
		requireDelaunay(t, tr)
		// From far away, visible to several hull edges at once.
		insertAll(t, tr, []Point{{10, 0}})
		requireDelaunay(t, tr)
		assert.Equal(t, 5, tr.NumVertices())
	})

	t.Run("onto an existing vertex", func(t *testing.T) {
		tr := New()
		handles := insertAll(t, tr, []Point{{0, 0}, {2, 0}, {1, 2}})
		again, err := tr.InsertWithData(Point{2, 0}, "updated")
		require.NoError(t, err)
		assert.Equal(t, handles[1], again)
		assert.Equal(t, 3, tr.NumVertices())
		assert.Equal(t, "updated", tr.Data(again))
		requireDelaunay(t, tr)
	})

	t.Run("onto an edge", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {4, 0}, {0, 4}, {4, 4}})
		requireDelaunay(t, tr)
		edges := tr.NumUndirectedEdges()
		// The diagonal runs between (0,4) and (4,0); its midpoint splits it.
		insertAll(t, tr, []Point{{2, 2}})
		assert.Equal(t, edges+3, tr.NumUndirectedEdges())
		requireDelaunay(t, tr)
	})

	t.Run("onto a hull edge", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {4, 0}, {2, 3}})
		insertAll(t, tr, []Point{{2, 0}})
		assert.Equal(t, 2, tr.NumInnerFaces())
		requireDelaunay(t, tr)
	})

	t.Run("rejects non finite coordinates", func(t *testing.T) {
		tr := New()
		for _, p := range []Point{
			{math.NaN(), 0},
			{0, math.NaN()},
			{math.Inf(1), 0},
			{0, math.Inf(-1)},
		} {
			_, err := tr.Insert(p)
			assert.ErrorIs(t, err, ErrInvalidCoordinate)
		}
		assert.Equal(t, 0, tr.NumVertices())
	})
}

func TestInsertCollinear(t *testing.T) {
	t.Run("chain stays degenerate", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
		assert.True(t, tr.AllVerticesOnLine())
		assert.Equal(t, 3, tr.NumUndirectedEdges())
		assert.Equal(t, 0, tr.NumInnerFaces())
		requireHealthy(t, tr)
	})

	t.Run("extending at both ends", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{1, 0}, {2, 0}, {0, 0}, {5, 0}, {-3, 0}})
		assert.True(t, tr.AllVerticesOnLine())
		assert.Equal(t, 4, tr.NumUndirectedEdges())
		requireHealthy(t, tr)
	})

	t.Run("splitting a chain edge", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {4, 0}, {1, 0}})
		assert.True(t, tr.AllVerticesOnLine())
		assert.Equal(t, 2, tr.NumUndirectedEdges())
		requireHealthy(t, tr)
	})

	t.Run("vertical chain", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 2}, {0, 0}, {0, 1}, {0, 5}})
		assert.True(t, tr.AllVerticesOnLine())
		requireHealthy(t, tr)
	})

	t.Run("first off line point triangulates everything", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
		insertAll(t, tr, []Point{{1.5, 2}})
		assert.False(t, tr.AllVerticesOnLine())
		assert.Equal(t, 3, tr.NumInnerFaces())
		requireDelaunay(t, tr)
	})

	t.Run("off line point below the chain", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {1, 0}, {2, 0}})
		insertAll(t, tr, []Point{{1, -1}})
		assert.False(t, tr.AllVerticesOnLine())
		assert.Equal(t, 2, tr.NumInnerFaces())
		requireDelaunay(t, tr)
	})
}

func TestInsertRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))
	tr := New()
	for i := 0; i < 300; i++ {
		p := Point{rng.Float64() * 100, rng.Float64() * 100}
		_, err := tr.Insert(p)
		require.NoError(t, err)
	}
	assert.Equal(t, 300, tr.NumVertices())
	requireDelaunay(t, tr)

	// Euler with the hull: E = 3V - 3 - H, F = 2V - 2 - H.
	hull := tr.ConvexHullSize()
	assert.Equal(t, 3*300-3-hull, tr.NumUndirectedEdges())
	assert.Equal(t, 2*300-2-hull, tr.NumInnerFaces())
}

func TestInsertGridWithCocircularPoints(t *testing.T) {
	// A grid is the worst case for the incircle predicate: every quad of
	// neighbors is exactly cocircular.
	tr := New()
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			_, err := tr.Insert(Point{float64(x), float64(y)})
			require.NoError(t, err)
		}
	}
	assert.Equal(t, 64, tr.NumVertices())
	requireDelaunay(t, tr)
}

func TestInsertWithHint(t *testing.T) {
	tr := New()
	points := make([]Point, 0, 100)
	for i := 0; i < 100; i++ {
		points = append(points, Point{float64(i % 10), float64(i / 10)})
	}
	hint := VertexHandle(0)
	for _, p := range points {
		v, err := tr.InsertWithHint(p, nil, hint)
		require.NoError(t, err)
		hint = v
	}
	requireDelaunay(t, tr)

	// A wildly wrong hint must not affect the result.
	v, err := tr.InsertWithHint(Point{4.5, 4.5}, nil, VertexHandle(9999))
	require.NoError(t, err)
	assert.True(t, v.Valid())
	requireDelaunay(t, tr)
}
