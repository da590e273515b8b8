package delaunay

import "sort"

// BulkLoad builds a triangulation from a batch of points considerably
// faster than naive repeated insertion: the points are ordered along a
// Hilbert curve first, which gives consecutive insertions near perfect
// spatial locality, so every location walk starts next to its target.
//
// Duplicate points collapse onto a single vertex, exactly as with Insert.
func BulkLoad(points []Point) (*Triangulation, error) {
	t := New()
	if len(points) == 0 {
		return t, nil
	}
	for _, p := range points {
		if !p.IsFinite() {
			return nil, ErrInvalidCoordinate
		}
	}
	ordered := hilbertSorted(points)
	hint := VertexHandle(0)
	for _, p := range ordered {
		v, err := t.InsertWithHint(p, nil, hint)
		if err != nil {
			return nil, err
		}
		hint = v
	}
	return t, nil
}

// hilbertOrder is the subdivision depth of the curve; 2^hilbertOrder cells
// per axis is plenty to separate any realistic point set.
const hilbertOrder = 16

func hilbertSorted(points []Point) []Point {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX <= 0 {
		spanX = 1
	}
	if spanY <= 0 {
		spanY = 1
	}

	side := uint32(1) << hilbertOrder
	type keyed struct {
		key uint64
		p   Point
	}
	items := make([]keyed, len(points))
	for i, p := range points {
		x := uint32(float64(side-1) * (p.X - minX) / spanX)
		y := uint32(float64(side-1) * (p.Y - minY) / spanY)
		items[i] = keyed{key: hilbertIndex(x, y), p: p}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].key < items[j].key })
	ordered := make([]Point, len(items))
	for i, item := range items {
		ordered[i] = item.p
	}
	return ordered
}

// hilbertIndex maps grid coordinates to their position along the Hilbert
// curve of order hilbertOrder.
func hilbertIndex(x, y uint32) uint64 {
	var index uint64
	for s := uint32(1) << (hilbertOrder - 1); s > 0; s >>= 1 {
		var rx, ry uint32
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		index += uint64(s) * uint64(s) * uint64((3*rx)^ry)
		// Rotate the quadrant so the curve stays continuous.
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
	}
	return index
}
