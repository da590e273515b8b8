package delaunay

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBulkLoad(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		tr, err := BulkLoad(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, tr.NumVertices())
	})

	t.Run("random batch", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		points := make([]Point, 0, 500)
		for i := 0; i < 500; i++ {
			points = append(points, Point{rng.Float64() * 1000, rng.Float64() * 1000})
		}
		tr, err := BulkLoad(points)
		require.NoError(t, err)
		assert.Equal(t, 500, tr.NumVertices())
		requireDelaunay(t, tr)

		hull := tr.ConvexHullSize()
		assert.Equal(t, 3*500-3-hull, tr.NumUndirectedEdges())
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		points := []Point{{0, 0}, {1, 0}, {0, 1}, {1, 0}, {0, 0}}
		tr, err := BulkLoad(points)
		require.NoError(t, err)
		assert.Equal(t, 3, tr.NumVertices())
		requireDelaunay(t, tr)
	})

	t.Run("collinear batch", func(t *testing.T) {
		points := []Point{{0, 0}, {3, 0}, {1, 0}, {2, 0}}
		tr, err := BulkLoad(points)
		require.NoError(t, err)
		assert.True(t, tr.AllVerticesOnLine())
		assert.Equal(t, 3, tr.NumUndirectedEdges())
		requireHealthy(t, tr)
	})

	t.Run("identical points only", func(t *testing.T) {
		tr, err := BulkLoad([]Point{{2, 2}, {2, 2}, {2, 2}})
		require.NoError(t, err)
		assert.Equal(t, 1, tr.NumVertices())
	})

	t.Run("rejects non finite points", func(t *testing.T) {
		_, err := BulkLoad([]Point{{0, 0}, {math.Inf(1), 0}})
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})

	t.Run("matches plain insertion", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5150))
		points := make([]Point, 0, 100)
		for i := 0; i < 100; i++ {
			points = append(points, Point{rng.Float64() * 10, rng.Float64() * 10})
		}
		bulk, err := BulkLoad(points)
		require.NoError(t, err)
		plain := New()
		insertAll(t, plain, points)

		// The Delaunay triangulation of a point set in general position is
		// unique, so both builds agree on the counts.
		assert.Equal(t, plain.NumVertices(), bulk.NumVertices())
		assert.Equal(t, plain.NumUndirectedEdges(), bulk.NumUndirectedEdges())
		assert.Equal(t, plain.NumInnerFaces(), bulk.NumInnerFaces())
		requireDelaunay(t, bulk)
	})
}

func TestHilbertIndexLocality(t *testing.T) {
	// Consecutive indices must belong to adjacent grid cells.
	assert.Equal(t, uint64(0), hilbertIndex(0, 0))
	a := hilbertIndex(100, 200)
	b := hilbertIndex(101, 200)
	c := hilbertIndex(30000, 60000)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)

	// The curve visits every cell of a small block exactly once.
	seen := make(map[uint64]bool)
	for x := uint32(0); x < 16; x++ {
		for y := uint32(0); y < 16; y++ {
			idx := hilbertIndex(x, y)
			assert.False(t, seen[idx], "cell (%d,%d) reuses index %d", x, y, idx)
			seen[idx] = true
		}
	}
}
