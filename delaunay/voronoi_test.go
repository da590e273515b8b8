package delaunay

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestNeighbor(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tr := New()
		_, ok := tr.NearestNeighbor(Point{0, 0})
		assert.False(t, ok)
	})

	t.Run("single vertex", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{3, 3}})
		v, ok := tr.NearestNeighbor(Point{100, -40})
		require.True(t, ok)
		assert.Equal(t, VertexHandle(0), v)
	})

	t.Run("matches brute force", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2026))
		tr := New()
		points := make([]Point, 0, 150)
		for i := 0; i < 150; i++ {
			points = append(points, Point{rng.Float64() * 100, rng.Float64() * 100})
		}
		insertAll(t, tr, points)
		for i := 0; i < 100; i++ {
			q := Point{rng.Float64()*140 - 20, rng.Float64()*140 - 20}
			v, ok := tr.NearestNeighbor(q)
			require.True(t, ok)
			got := distance2(tr.Position(v), q)
			best := math.Inf(1)
			for _, p := range points {
				if d := distance2(p, q); d < best {
					best = d
				}
			}
			assert.Equal(t, best, got, "query %v", q)
		}
	})
}

func TestVoronoiCell(t *testing.T) {
	// Unit grid: the cell of an interior vertex is its surrounding unit
	// square of circumcenters.
	tr := New()
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			_, err := tr.Insert(Point{float64(x), float64(y)})
			require.NoError(t, err)
		}
	}
	requireDelaunay(t, tr)

	center, ok := tr.NearestNeighbor(Point{1, 1})
	require.True(t, ok)
	require.Equal(t, Point{1, 1}, tr.Position(center))

	it := tr.VoronoiCell(center)
	assert.True(t, it.IsBounded())
	var corners []Point
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		corners = append(corners, c)
	}
	// Grid circumcenters sit at the square centers; duplicates are possible
	// because the cocircular quads triangulate arbitrarily.
	for _, c := range corners {
		assert.InDelta(t, 0.5, math.Abs(c.X-1), 1e-12)
		assert.InDelta(t, 0.5, math.Abs(c.Y-1), 1e-12)
	}
	assert.GreaterOrEqual(t, len(corners), 4)

	cornerVertex, ok := tr.NearestNeighbor(Point{0, 0})
	require.True(t, ok)
	assert.False(t, tr.VoronoiCell(cornerVertex).IsBounded())
}

func TestNaturalNeighborWeights(t *testing.T) {
	buildGrid := func(t *testing.T) *Triangulation {
		tr := New()
		for x := -2; x <= 2; x++ {
			for y := -2; y <= 2; y++ {
				_, err := tr.Insert(Point{float64(x), float64(y)})
				require.NoError(t, err)
			}
		}
		return tr
	}

	t.Run("on a vertex", func(t *testing.T) {
		tr := buildGrid(t)
		weights, err := tr.NaturalNeighborWeights(Point{1, 1})
		require.NoError(t, err)
		require.Len(t, weights, 1)
		for v, w := range weights {
			assert.Equal(t, Point{1, 1}, tr.Position(v))
			assert.Equal(t, 1.0, w)
		}
	})

	t.Run("outside the hull", func(t *testing.T) {
		tr := buildGrid(t)
		weights, err := tr.NaturalNeighborWeights(Point{5, 0})
		require.NoError(t, err)
		assert.Empty(t, weights)
	})

	t.Run("weights are positive and sum to one", func(t *testing.T) {
		tr := buildGrid(t)
		rng := rand.New(rand.NewSource(8))
		for i := 0; i < 50; i++ {
			q := Point{rng.Float64()*3.6 - 1.8, rng.Float64()*3.6 - 1.8}
			weights, err := tr.NaturalNeighborWeights(q)
			require.NoError(t, err)
			require.NotEmpty(t, weights)
			sum := 0.0
			for _, w := range weights {
				assert.Greater(t, w, 0.0)
				sum += w
			}
			assert.InDelta(t, 1.0, sum, 1e-9)
		}
	})

	t.Run("symmetry at a cell midpoint", func(t *testing.T) {
		tr := buildGrid(t)
		// Dead center between four grid vertices: by symmetry the four
		// nearest neighbors carry equal weight.
		weights, err := tr.NaturalNeighborWeights(Point{0.5, 0.5})
		require.NoError(t, err)
		near := 0
		for v, w := range weights {
			p := tr.Position(v)
			if distance2(p, Point{0.5, 0.5}) < 0.51 {
				near++
				assert.InDelta(t, 0.25, w, 1e-9)
			} else {
				assert.InDelta(t, 0.0, w, 1e-9)
			}
		}
		assert.Equal(t, 4, near)
	})

	t.Run("on a hull edge", func(t *testing.T) {
		tr := buildGrid(t)
		weights, err := tr.NaturalNeighborWeights(Point{-1.5, -2})
		require.NoError(t, err)
		require.Len(t, weights, 2)
		sum := 0.0
		for v, w := range weights {
			assert.InDelta(t, 0.5, w, 1e-12)
			assert.Equal(t, -2.0, tr.Position(v).Y)
			sum += w
		}
		assert.InDelta(t, 1.0, sum, 1e-12)
	})

	t.Run("degenerate triangulation", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {1, 0}, {2, 0}})
		weights, err := tr.NaturalNeighborWeights(Point{1, 0})
		require.NoError(t, err)
		require.Len(t, weights, 1)
		weights, err = tr.NaturalNeighborWeights(Point{0.5, 0})
		require.NoError(t, err)
		assert.Empty(t, weights)
	})

	t.Run("rejects non finite points", func(t *testing.T) {
		tr := buildGrid(t)
		_, err := tr.NaturalNeighborWeights(Point{math.NaN(), 0})
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}

func TestInterpolateNaturalNeighbor(t *testing.T) {
	tr := New()
	rng := rand.New(rand.NewSource(64))
	for i := 0; i < 80; i++ {
		_, err := tr.Insert(Point{rng.Float64() * 10, rng.Float64() * 10})
		require.NoError(t, err)
	}
	// Sibson interpolation reproduces linear functions exactly.
	plane := func(v VertexHandle) float64 {
		p := tr.Position(v)
		return 3*p.X - 2*p.Y + 7
	}
	for i := 0; i < 40; i++ {
		q := Point{1 + rng.Float64()*8, 1 + rng.Float64()*8}
		if tr.Locate(q).Kind == OutsideConvexHull {
			continue
		}
		got, ok := tr.InterpolateNaturalNeighbor(q, plane)
		require.True(t, ok)
		assert.InDelta(t, 3*q.X-2*q.Y+7, got, 1e-6, "query %v", q)
	}

	_, ok := tr.InterpolateNaturalNeighbor(Point{-100, -100}, plane)
	assert.False(t, ok)
}
