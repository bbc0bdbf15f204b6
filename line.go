package stage

// Line draws a single-pixel line between two world coordinates.
// Lines use only the style's stroke color; fill and stroke width are
// ignored. A missing stroke or an unrepresentable endpoint skips the draw.
func Line(st *Stage, p1, p2 Point, style Style) {
	if style.Stroke == nil {
		return
	}

	x0, y0, ok := st.worldToPixel(p1)
	if !ok {
		return
	}
	x1, y1, ok := st.worldToPixel(p2)
	if !ok {
		return
	}

	strokeLine(st, x0, y0, x1, y1, style.Stroke.color())
}

// strokeLine rasterizes a line in pixel coordinates with the integer
// Bresenham algorithm, clipping to the stage first so the step count is
// bounded by the stage size. A zero-length segment plots its single pixel.
func strokeLine(st *Stage, x0, y0, x1, y1 int, c Color) {
	x0, y0, x1, y1, ok := clipLine(st.width, st.height, x0, y0, x1, y1)
	if !ok {
		return
	}

	x, y := x0, y0

	dx := iabs(x1 - x0)
	dy := iabs(y1 - y0)

	sx := isign(x1 - x0)
	sy := isign(y1 - y0)

	if dx >= dy {
		err := 2*dy - dx

		for i := 0; i <= dx; i++ {
			st.SetPixel(x, y, c)

			if err >= 0 {
				y += sy
				err -= 2 * dx
			}

			x += sx
			err += 2 * dy
		}
	} else {
		err := 2*dx - dy

		for i := 0; i <= dy; i++ {
			st.SetPixel(x, y, c)

			if err >= 0 {
				x += sx
				err -= 2 * dy
			}

			y += sy
			err += 2 * dx
		}
	}
}

// Cohen-Sutherland outcodes.
const (
	outLeft   = 1
	outRight  = 2
	outTop    = 4
	outBottom = 8
)

func outCode(x, y, xmin, ymin, xmax, ymax int) int {
	c := 0
	if x < xmin {
		c |= outLeft
	} else if x > xmax {
		c |= outRight
	}
	if y < ymin {
		c |= outTop
	} else if y > ymax {
		c |= outBottom
	}
	return c
}

// clipLine clips a segment to the stage rectangle with the Cohen-Sutherland
// algorithm. Intersections are computed in int64 so the multiply in the
// intersection formula cannot overflow for far off-screen endpoints.
// ok is false when the segment lies fully outside the stage.
func clipLine(width, height, x0, y0, x1, y1 int) (cx0, cy0, cx1, cy1 int, ok bool) {
	xmin, ymin := 0, 0
	xmax, ymax := width-1, height-1

	c0 := outCode(x0, y0, xmin, ymin, xmax, ymax)
	c1 := outCode(x1, y1, xmin, ymin, xmax, ymax)

	for {
		if c0|c1 == 0 {
			return x0, y0, x1, y1, true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}

		cOut := c0
		if cOut == 0 {
			cOut = c1
		}

		dx := int64(x1) - int64(x0)
		dy := int64(y1) - int64(y0)

		var xi, yi int64

		switch {
		case cOut&outBottom != 0:
			if dy == 0 {
				return 0, 0, 0, 0, false
			}
			yi = int64(ymax)
			xi = int64(x0) + dx*(yi-int64(y0))/dy
		case cOut&outTop != 0:
			if dy == 0 {
				return 0, 0, 0, 0, false
			}
			yi = int64(ymin)
			xi = int64(x0) + dx*(yi-int64(y0))/dy
		case cOut&outRight != 0:
			if dx == 0 {
				return 0, 0, 0, 0, false
			}
			xi = int64(xmax)
			yi = int64(y0) + dy*(xi-int64(x0))/dx
		default:
			if dx == 0 {
				return 0, 0, 0, 0, false
			}
			xi = int64(xmin)
			yi = int64(y0) + dy*(xi-int64(x0))/dx
		}

		if cOut == c0 {
			x0, y0 = int(xi), int(yi)
			c0 = outCode(x0, y0, xmin, ymin, xmax, ymax)
		} else {
			x1, y1 = int(xi), int(yi)
			c1 = outCode(x1, y1, xmin, ymin, xmax, ymax)
		}
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
