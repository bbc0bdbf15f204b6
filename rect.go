package stage

import "math"

// Rectangle draws an axis-aligned rectangle centered on a world coordinate
// with the given width and height in world units, clamped to the stage's
// world extent. Non-finite or non-positive dimensions skip the draw.
func Rectangle(st *Stage, center Point, width, height float64, style Style) {
	if math.IsNaN(width) || math.IsInf(width, 0) || width <= 0 {
		return
	}
	if math.IsNaN(height) || math.IsInf(height, 0) || height <= 0 {
		return
	}

	sw, sh := st.Dimensions()
	xmin, xmax := -float64(sw)/2, float64(sw)/2
	ymin, ymax := -float64(sh)/2, float64(sh)/2

	halfW := width / 2
	halfH := height / 2

	l := math.Max(center.X-halfW, xmin)
	r := math.Min(center.X+halfW, xmax)
	t := math.Min(center.Y+halfH, ymax)
	b := math.Max(center.Y-halfH, ymin)

	nodes := []Point{
		{X: l, Y: t},
		{X: r, Y: t},
		{X: r, Y: b},
		{X: l, Y: b},
	}
	NewPath(nodes, true).Render(st, style)
}

// Square draws a square centered on a world coordinate with the given side
// length. Equivalent to Rectangle with equal width and height.
func Square(st *Stage, center Point, sideLength float64, style Style) {
	Rectangle(st, center, sideLength, sideLength, style)
}
