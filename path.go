package stage

import (
	"math"
	"sort"
)

// Path is an ordered sequence of world-space points, optionally closed
// (the last point connecting back to the first). Paths are transient
// values built per draw call; the Stage never retains them.
//
// Filling assumes a simple, non-self-intersecting polygon and uses the
// even-odd rule on scanline crossings.
type Path struct {
	nodes  []Point
	closed bool
}

// NewPath creates a path from the given world-space points.
func NewPath(nodes []Point, closed bool) *Path {
	return &Path{nodes: nodes, closed: closed}
}

// Closed reports whether the path connects its last point to its first.
func (p *Path) Closed() bool {
	return p.closed
}

// Render draws the path onto the stage. Closed paths are filled first
// (when the style has a fill), then the stroke is drawn on top. If any
// vertex is unrepresentable in pixel space the whole path is skipped;
// there are no partial renders.
func (p *Path) Render(st *Stage, style Style) {
	if style.empty() {
		return
	}

	nodes, ok := p.toPixels(st)
	if !ok {
		return
	}

	if p.closed && style.Fill != nil {
		fillPolygon(st, nodes, style.Fill.color())
	}

	if s := style.Stroke; s != nil {
		strokePolyline(st, nodes, p.closed, s.Width, s.color())
	}
}

// toPixels converts every node to pixel coordinates, bailing out on the
// first unrepresentable one.
func (p *Path) toPixels(st *Stage) ([]pixel, bool) {
	out := make([]pixel, 0, len(p.nodes))
	for _, n := range p.nodes {
		x, y, ok := st.worldToPixel(n)
		if !ok {
			return nil, false
		}
		out = append(out, pixel{x, y})
	}
	return out, true
}

// fillPolygon scan-fills a closed polygon with the even-odd rule.
//
// For each row, the crossings of every non-horizontal edge are collected
// (half-open in y, so a vertex shared by two edges counts once), sorted,
// and consumed in pairs. Each pair's span is inset by one pixel per side
// so the interior never overwrites the boundary pixels the stroke pass
// owns.
func fillPolygon(st *Stage, nodes []pixel, col Color) {
	if len(nodes) < 3 {
		return
	}

	ymin, ymax := nodes[0].y, nodes[0].y
	for _, n := range nodes[1:] {
		if n.y < ymin {
			ymin = n.y
		}
		if n.y > ymax {
			ymax = n.y
		}
	}
	if ymin >= ymax {
		return
	}

	y0 := ymin
	if y0 < 0 {
		y0 = 0
	}
	y1 := ymax
	if y1 > st.height-1 {
		y1 = st.height - 1
	}
	if y0 > y1 {
		return
	}

	crossings := make([]int, 0, len(nodes))

	for y := y0; y <= y1; y++ {
		crossings = crossings[:0]

		for i := range nodes {
			a := nodes[i]
			b := nodes[(i+1)%len(nodes)]
			if a.y == b.y {
				continue
			}

			ylo, yhi := a.y, b.y
			if ylo > yhi {
				ylo, yhi = yhi, ylo
			}
			if y < ylo || y >= yhi {
				continue
			}

			x := float64(a.x) + float64(y-a.y)*float64(b.x-a.x)/float64(b.y-a.y)
			crossings = append(crossings, int(math.Floor(x)))
		}

		sort.Ints(crossings)

		for j := 0; j+1 < len(crossings); j += 2 {
			l := crossings[j] + 1
			r := crossings[j+1] - 1

			if l <= r {
				st.FillSpan(y, l, r, col)
			}
		}
	}
}

// strokePolyline strokes each edge of the polyline (plus the closing edge
// for closed paths). Widths up to one device pixel draw as single-pixel
// Bresenham lines; wider strokes fill an offset quadrilateral per edge.
// A non-finite or non-positive width strokes nothing.
func strokePolyline(st *Stage, nodes []pixel, closed bool, width float64, col Color) {
	if len(nodes) < 2 {
		return
	}
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return
	}

	edge := func(a, b pixel) {
		if width <= 1 {
			strokeLine(st, a.x, a.y, b.x, b.y, col)
			return
		}
		if quad, ok := strokeCorners(a, b, width); ok {
			fillTriangle(st, quad[0], quad[1], quad[2], col)
			fillTriangle(st, quad[0], quad[2], quad[3], col)
		}
	}

	for i := 0; i+1 < len(nodes); i++ {
		edge(nodes[i], nodes[i+1])
	}
	if closed {
		edge(nodes[len(nodes)-1], nodes[0])
	}
}

// strokeCorners returns the corners of the quadrilateral covering one
// thick edge: the segment offset by half the width along its normal on
// both sides, and extended by half the width along its tangent at both
// ends so adjacent edges visually close their joins. Corner order is
// a+o, b+o, b-o, a-o. A zero-length edge yields no quadrilateral.
func strokeCorners(a, b pixel, width float64) ([4]pixel, bool) {
	x1, y1 := float64(a.x), float64(a.y)
	x2, y2 := float64(b.x), float64(b.y)

	dx := x2 - x1
	dy := y2 - y1

	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return [4]pixel{}, false
	}

	invLen := 1 / math.Sqrt(len2)
	r := width * 0.5

	// Unit tangent and normal, scaled to the half width.
	tx := dx * invLen * r
	ty := dy * invLen * r
	ox := -dy * invLen * r
	oy := dx * invLen * r

	// Extend the segment ends along the tangent.
	x1 -= tx
	y1 -= ty
	x2 += tx
	y2 += ty

	quad := [4]pixel{
		{int(math.Round(x1 + ox)), int(math.Round(y1 + oy))},
		{int(math.Round(x2 + ox)), int(math.Round(y2 + oy))},
		{int(math.Round(x2 - ox)), int(math.Round(y2 - oy))},
		{int(math.Round(x1 - ox)), int(math.Round(y1 - oy))},
	}
	return quad, true
}
