package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/yvind/spade"
)

// Demo of the triangulation engine. Either generates random points or reads
// newline separated "x y" points from stdin, builds the Delaunay
// triangulation, optionally constrains the convex hull ring, and renders the
// result to a PNG.
var (
	numPoints = kingpin.Flag("points", "Number of random points to generate; 0 reads points from stdin.").Short('n').Default("200").Int()
	seed      = kingpin.Flag("seed", "Seed for the random point generator.").Default("42").Int64()
	out       = kingpin.Flag("out", "Output PNG path.").Short('o').Default("triangulation.png").String()
	scale     = kingpin.Flag("scale", "Pixels per coordinate unit.").Default("1.0").Float64()
	preview   = kingpin.Flag("preview", "Also print the image inline in the terminal (iTerm only).").Bool()
	constrain = kingpin.Flag("constrain", "Pin a random constraint polyline through the point set.").Bool()
)

func main() {
	kingpin.Parse()
	log, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	points := readOrGeneratePoints(log)
	log.Info("loaded points", zap.Int("count", len(points)))

	t, err := spade.BulkLoad(points)
	if err != nil {
		log.Fatal("bulk load failed", zap.Error(err))
	}
	log.Info("triangulated",
		zap.Int("vertices", t.NumVertices()),
		zap.Int("edges", t.NumUndirectedEdges()),
		zap.Int("triangles", t.NumInnerFaces()),
		zap.Int("hullEdges", t.ConvexHullSize()),
	)

	if *constrain {
		addDemoConstraints(t, log)
	}

	if err := t.SavePNG(*out, *scale); err != nil {
		log.Fatal("rendering failed", zap.Error(err))
	}
	log.Info("wrote image", zap.String("path", *out))
	if *preview {
		if err := t.Preview(*scale); err != nil {
			log.Warn("preview failed", zap.Error(err))
		}
	}
}

func readOrGeneratePoints(log *zap.Logger) []spade.Point {
	if *numPoints > 0 {
		rng := rand.New(rand.NewSource(*seed))
		points := make([]spade.Point, *numPoints)
		for i := range points {
			points[i] = spade.Point{X: rng.Float64() * 1000, Y: rng.Float64() * 1000}
		}
		return points
	}

	var points []spade.Point
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) != 2 {
			log.Warn("skipping malformed line", zap.String("line", line))
			continue
		}
		x, errX := strconv.ParseFloat(parts[0], 64)
		y, errY := strconv.ParseFloat(parts[1], 64)
		if errX != nil || errY != nil {
			log.Warn("skipping unparsable line", zap.String("line", line))
			continue
		}
		points = append(points, spade.Point{X: x, Y: y})
	}
	return points
}

// addDemoConstraints pins a polyline through a random sample of vertices,
// skipping stretches that would cross already pinned edges.
func addDemoConstraints(t *spade.Triangulation, log *zap.Logger) {
	rng := rand.New(rand.NewSource(*seed + 1))
	prev := spade.VertexHandle(rng.Intn(t.NumVertices()))
	pinned := 0
	for i := 0; i < 10; i++ {
		next := spade.VertexHandle(rng.Intn(t.NumVertices()))
		if !t.CanAddConstraint(prev, next) {
			continue
		}
		if _, err := t.AddConstraint(prev, next); err != nil {
			log.Warn("constraint rejected", zap.Error(err))
			continue
		}
		pinned++
		prev = next
	}
	log.Info("pinned constraints", zap.Int("segments", pinned), zap.Int("edges", t.NumConstraints()))
}
