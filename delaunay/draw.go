package delaunay

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// Padding around the point set so hull edges don't hug the image border
const drawPadding = 100

// Draw strokes the triangulation into an existing drawing context, assuming
// the context is already transformed to world coordinates. Triangles are
// filled dark, ordinary edges drawn green, hull edges cyan and constraint
// edges red on top.
func (t *Triangulation) Draw(c *gg.Context) {
	for f := FaceHandle(1); int(f) < len(t.dcel.faces); f++ {
		ps := t.FacePositions(f)
		c.MoveTo(ps[0].X, ps[0].Y)
		c.LineTo(ps[1].X, ps[1].Y)
		c.LineTo(ps[2].X, ps[2].Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.2, 0)
	c.Fill()

	stroke := func(pick func(u UndirectedEdgeHandle) bool) {
		for u := UndirectedEdgeHandle(0); int(u) < t.dcel.numUndirectedEdges(); u++ {
			if !pick(u) {
				continue
			}
			e := u.Directed()
			from := t.dcel.pos(t.dcel.from(e))
			to := t.dcel.pos(t.dcel.to(e))
			c.DrawLine(from.X, from.Y, to.X, to.Y)
		}
		c.Stroke()
	}
	c.SetRGB(0, 1, 0)
	stroke(func(u UndirectedEdgeHandle) bool {
		e := u.Directed()
		return !t.dcel.isConstraint(u) &&
			!t.dcel.face(e).IsOuter() && !t.dcel.face(e.Rev()).IsOuter()
	})
	c.SetRGB(0, 1, 1)
	stroke(func(u UndirectedEdgeHandle) bool {
		e := u.Directed()
		return !t.dcel.isConstraint(u) &&
			(t.dcel.face(e).IsOuter() || t.dcel.face(e.Rev()).IsOuter())
	})
	c.SetRGB(1, 0, 0)
	stroke(func(u UndirectedEdgeHandle) bool { return t.dcel.isConstraint(u) })

	c.SetRGB(1, 1, 1)
	for v := VertexHandle(0); int(v) < t.dcel.numVertices(); v++ {
		p := t.dcel.pos(v)
		c.DrawCircle(p.X, p.Y, 2.5)
	}
	c.Fill()
}

// SavePNG renders the triangulation scaled into a fresh image and writes it
// to path.
func (t *Triangulation) SavePNG(path string, scale float64) error {
	c := t.newScaledContext(scale)
	t.Draw(c)
	return c.SavePNG(path)
}

func (t *Triangulation) newScaledContext(scale float64) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for v := VertexHandle(0); int(v) < t.dcel.numVertices(); v++ {
		p := t.dcel.pos(v)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if t.dcel.numVertices() == 0 {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)
	c.SetLineWidth(2)
	return c
}

// Preview renders to a scratch file and prints it inline in the terminal
// (iTerm only). For poking at a mesh in a debugging session.
func (t *Triangulation) Preview(scale float64) error {
	if err := t.SavePNG("/tmp/triangulation.png", scale); err != nil {
		return err
	}
	imgcat.CatFile("/tmp/triangulation.png", os.Stdout)
	return nil
}
