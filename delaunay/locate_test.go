package delaunay

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateTrivialCases(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		tr := New()
		assert.Equal(t, NoTriangulation, tr.Locate(Point{1, 1}).Kind)
	})

	t.Run("single vertex", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{3, 4}})
		loc := tr.Locate(Point{3, 4})
		assert.Equal(t, OnVertex, loc.Kind)
		assert.Equal(t, VertexHandle(0), loc.Vertex)
		assert.Equal(t, NoTriangulation, tr.Locate(Point{0, 0}).Kind)
	})

	t.Run("non finite query", func(t *testing.T) {
		tr := New()
		insertAll(t, tr, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}})
		for _, q := range []Point{
			{math.NaN(), 1},
			{1, math.NaN()},
			{math.Inf(1), 1},
			{1, math.Inf(-1)},
		} {
			assert.Equal(t, NoTriangulation, tr.Locate(q).Kind)
		}
	})
}

func TestLocateInTriangulation(t *testing.T) {
	tr := New()
	insertAll(t, tr, []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {5, 5}})
	requireDelaunay(t, tr)

	t.Run("on vertex", func(t *testing.T) {
		loc := tr.Locate(Point{5, 5})
		require.Equal(t, OnVertex, loc.Kind)
		assert.Equal(t, Point{5, 5}, tr.Position(loc.Vertex))
	})

	t.Run("on inner edge", func(t *testing.T) {
		loc := tr.Locate(Point{2.5, 2.5})
		require.Equal(t, OnEdge, loc.Kind)
		a, b := tr.Position(tr.From(loc.Edge)), tr.Position(tr.To(loc.Edge))
		assert.Equal(t, Collinear, orient2d(a, b, Point{2.5, 2.5}))
	})

	t.Run("on hull edge", func(t *testing.T) {
		loc := tr.Locate(Point{5, 0})
		require.Equal(t, OnEdge, loc.Kind)
	})

	t.Run("inside a face", func(t *testing.T) {
		loc := tr.Locate(Point{1, 5})
		require.Equal(t, OnFace, loc.Kind)
		corners := tr.FacePositions(loc.Face)
		for i := 0; i < 3; i++ {
			assert.Equal(t, LeftTurn, orient2d(corners[i], corners[(i+1)%3], Point{1, 5}))
		}
	})

	t.Run("outside the hull", func(t *testing.T) {
		loc := tr.Locate(Point{20, 5})
		require.Equal(t, OutsideConvexHull, loc.Kind)
		// The reported edge is an outer edge the point can see.
		assert.Equal(t, OuterFace, tr.Face(loc.Edge))
		a, b := tr.Position(tr.From(loc.Edge)), tr.Position(tr.To(loc.Edge))
		assert.Equal(t, LeftTurn, orient2d(a, b, Point{20, 5}))
	})
}

func TestLocateDegenerate(t *testing.T) {
	tr := New()
	insertAll(t, tr, []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}})
	require.True(t, tr.AllVerticesOnLine())

	t.Run("on chain vertex", func(t *testing.T) {
		loc := tr.Locate(Point{2, 0})
		require.Equal(t, OnVertex, loc.Kind)
		assert.Equal(t, Point{2, 0}, tr.Position(loc.Vertex))
	})

	t.Run("on chain edge", func(t *testing.T) {
		loc := tr.Locate(Point{1.5, 0})
		require.Equal(t, OnEdge, loc.Kind)
		a, b := tr.Position(tr.From(loc.Edge)), tr.Position(tr.To(loc.Edge))
		assert.True(t, lexBetween(Point{1.5, 0}, a, b))
	})

	t.Run("past the chain ends", func(t *testing.T) {
		for _, q := range []Point{{-1, 0}, {7, 0}} {
			loc := tr.Locate(q)
			assert.Equal(t, OutsideConvexHull, loc.Kind)
		}
	})

	t.Run("off the supporting line", func(t *testing.T) {
		loc := tr.Locate(Point{1.5, 3})
		require.Equal(t, OutsideConvexHull, loc.Kind)
		a, b := tr.Position(tr.From(loc.Edge)), tr.Position(tr.To(loc.Edge))
		assert.Equal(t, LeftTurn, orient2d(a, b, Point{1.5, 3}))
	})
}

func TestLocateAgreesWithInsertion(t *testing.T) {
	// Every inserted point must afterwards be located exactly on its vertex,
	// no matter which hint the walk starts from.
	rng := rand.New(rand.NewSource(99))
	tr := New()
	points := make([]Point, 0, 120)
	for i := 0; i < 120; i++ {
		points = append(points, Point{rng.Float64() * 50, rng.Float64() * 50})
	}
	handles := insertAll(t, tr, points)
	requireDelaunay(t, tr)
	for i, p := range points {
		loc := tr.LocateWithHint(p, handles[(i*7)%len(handles)])
		require.Equal(t, OnVertex, loc.Kind)
		assert.Equal(t, p, tr.Position(loc.Vertex))
	}
}
