package stage

import "math"

const sqrt3 = 1.7320508075688772

// Triangle draws a triangle from three world coordinates. The interior is
// filled with a direct scanline rasterizer; the edges are stroked at the
// style's stroke width, like any closed path. For equilateral triangles
// see EquilateralTriangle.
func Triangle(st *Stage, p1, p2, p3 Point, style Style) {
	if style.empty() {
		return
	}

	x1, y1, ok := st.worldToPixel(p1)
	if !ok {
		return
	}
	x2, y2, ok := st.worldToPixel(p2)
	if !ok {
		return
	}
	x3, y3, ok := st.worldToPixel(p3)
	if !ok {
		return
	}

	drawTrianglePixels(st, pixel{x1, y1}, pixel{x2, y2}, pixel{x3, y3}, style)
}

// EquilateralTriangle draws an equilateral triangle centered on a world
// coordinate with the given side length, apex up. For arbitrary triangles
// use Triangle.
func EquilateralTriangle(st *Stage, center Point, sideLength float64, style Style) {
	if math.IsNaN(sideLength) || math.IsInf(sideLength, 0) || sideLength <= 0 {
		return
	}

	// Distances from the centroid to the apex and to the base.
	apexDY := sideLength * sqrt3 / 3
	baseDY := sideLength * sqrt3 / 6

	p1 := Pt(center.X, center.Y+apexDY)
	p2 := Pt(center.X-sideLength*0.5, center.Y-baseDY)
	p3 := Pt(center.X+sideLength*0.5, center.Y-baseDY)

	Triangle(st, p1, p2, p3, style)
}

// pixel is a discrete framebuffer coordinate, origin top-left, Y down.
type pixel struct {
	x, y int
}

// drawTrianglePixels renders a triangle in pixel coordinates: fill via the
// scanline rasterizer, then the three edges stroked on top as a closed
// polyline honoring the stroke width.
func drawTrianglePixels(st *Stage, v1, v2, v3 pixel, style Style) {
	if style.Fill != nil {
		fillTriangle(st, v1, v2, v3, style.Fill.color())
	}

	if s := style.Stroke; s != nil {
		strokePolyline(st, []pixel{v1, v2, v3}, true, s.Width, s.color())
	}
}

// fillTriangle fills an arbitrary triangle by flat-top/flat-bottom
// decomposition. A triangle whose vertices share one row is degenerate
// and fills nothing.
func fillTriangle(st *Stage, a, b, c pixel, col Color) {
	v1, v2, v3 := sortVertices(a, b, c)

	switch {
	case v1.y == v3.y:
		return
	case v2.y == v3.y:
		fillFlatBottom(st, v1, v2, v3, col)
	case v1.y == v2.y:
		fillFlatTop(st, v1, v2, v3, col)
	default:
		// Split on the long edge at v2's row. The interpolation runs in
		// 16.16 fixed point so the split point agrees with the edge walk.
		t := (int64(v2.y-v1.y) << 16) / int64(v3.y-v1.y)
		x4 := v1.x + int((t*int64(v3.x-v1.x))>>16)
		v4 := pixel{x4, v2.y}

		fillFlatBottom(st, v1, v2, v4, col)
		fillFlatTop(st, v2, v4, v3, col)
	}
}

// sortVertices orders three vertices by ascending y.
func sortVertices(a, b, c pixel) (pixel, pixel, pixel) {
	if b.y < a.y {
		a, b = b, a
	}
	if c.y < b.y {
		b, c = c, b
	}
	if b.y < a.y {
		a, b = b, a
	}
	return a, b, c
}

// invSlopeFP returns dx/dy as a 16.16 fixed-point x increment per scanline.
func invSlopeFP(dx, dy int) int64 {
	return (int64(dx) << 16) / int64(dy)
}

// fpCeil rounds a 16.16 fixed-point value up to the next integer.
func fpCeil(v int64) int {
	return int((v + 0xFFFF) >> 16)
}

// fillFlatBottom fills a triangle where v1.y <= v2.y == v3.y, walking
// scanlines from the apex row (inclusive) to the flat row (exclusive).
func fillFlatBottom(st *Stage, v1, v2, v3 pixel, col Color) {
	dy1 := v2.y - v1.y
	dy2 := v3.y - v1.y
	if dy1 == 0 || dy2 == 0 {
		return
	}

	dxdy1 := invSlopeFP(v2.x-v1.x, dy1)
	dxdy2 := invSlopeFP(v3.x-v1.x, dy2)

	curx1 := int64(v1.x) << 16
	curx2 := int64(v1.x) << 16

	for y := v1.y; y < v2.y; y++ {
		spanFP(st, y, curx1, curx2, col)
		curx1 += dxdy1
		curx2 += dxdy2
	}
}

// fillFlatTop fills a triangle where v1.y == v2.y <= v3.y, walking
// scanlines from the flat row (inclusive) to the apex row (exclusive).
func fillFlatTop(st *Stage, v1, v2, v3 pixel, col Color) {
	dy1 := v3.y - v1.y
	dy2 := v3.y - v2.y
	if dy1 == 0 || dy2 == 0 {
		return
	}

	dxdy1 := invSlopeFP(v3.x-v1.x, dy1)
	dxdy2 := invSlopeFP(v3.x-v2.x, dy2)

	curx1 := int64(v1.x) << 16
	curx2 := int64(v2.x) << 16

	for y := v1.y; y < v3.y; y++ {
		spanFP(st, y, curx1, curx2, col)
		curx1 += dxdy1
		curx2 += dxdy2
	}
}

// spanFP fills one scanline between two 16.16 edge positions. Bounds are
// ceiling-rounded and the right bound is decremented so spans stay
// exclusive-right and adjacent fills never overlap.
func spanFP(st *Stage, y int, edge1, edge2 int64, col Color) {
	xa := fpCeil(edge1)
	xb := fpCeil(edge2)

	x0, x1 := xa, xb
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	x1--

	// An empty span must not reach FillSpan, whose bounds are
	// order-independent and would fill the reversed range.
	if x0 <= x1 {
		st.FillSpan(y, x0, x1, col)
	}
}
