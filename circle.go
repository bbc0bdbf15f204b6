package stage

import "math"

// Circle draws a circle centered at a world coordinate with the given
// radius in world units. The interior uses the style's fill; the boundary
// ring uses the stroke, widened to the stroke width. When both are present
// the fill stops where the stroke begins. A non-finite or non-positive
// radius, an empty style, or an unrepresentable center skips the draw.
func Circle(st *Stage, center Point, radius float64, style Style) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return
	}

	xc, yc, ok := st.worldToPixel(center)
	if !ok {
		return
	}

	r := int(math.Ceil(radius))
	if r < 1 {
		r = 1
	}
	circlePixels(st, xc, yc, r, style)
}

// circlePixels scan-converts a circle in pixel coordinates with nominal
// radius r.
//
// Three concentric radii drive the per-row spans: the outer and inner
// radii bound the stroke annulus, and the fill radius bounds the interior
// disk. For each row offset the three horizontal half-extents shrink
// monotonically by squared-distance comparison, so no square roots are
// taken anywhere.
func circlePixels(st *Stage, xc, yc, r int, style Style) {
	if style.empty() || r <= 0 {
		return
	}

	rOut, rIn := r, r
	if s := style.Stroke; s != nil {
		if w := s.Width; !math.IsNaN(w) && !math.IsInf(w, 0) && w > 0 {
			rOut = r + int(math.Ceil(0.5*w))
			rIn = r - int(math.Floor(0.5*w))
			if rIn < 0 {
				rIn = 0
			}
		}
	}

	rFill := 0
	if style.Fill != nil {
		if style.Stroke != nil {
			rFill = rIn
		} else {
			rFill = r
		}
	}

	var fillColor, strokeColor Color
	if style.Fill != nil {
		fillColor = style.Fill.color()
	}
	if style.Stroke != nil {
		strokeColor = style.Stroke.color()
	}

	rOut2 := int64(rOut) * int64(rOut)
	rIn2 := int64(rIn) * int64(rIn)
	rFill2 := int64(rFill) * int64(rFill)

	xOut, xOut2 := rOut, rOut2
	xIn, xIn2 := rIn, rIn2
	xFill, xFill2 := rFill, rFill2

	// shrink decrements the half-extent while x^2 + y^2 > limit^2,
	// updating the running x^2 incrementally.
	shrink := func(x int, x2, y2, limit2 int64) (int, int64) {
		for x > 0 && x2+y2 > limit2 {
			x2 -= 2*int64(x) - 1
			x--
		}
		return x, x2
	}

	var y2 int64

	for y := 0; y <= rOut; y++ {
		xOut, xOut2 = shrink(xOut, xOut2, y2, rOut2)

		// Per-row extents; -1 marks a row the inner/fill circle misses.
		xInRow := -1
		if style.Stroke != nil && rIn > 0 {
			xIn, xIn2 = shrink(xIn, xIn2, y2, rIn2)
			if xIn2+y2 <= rIn2 {
				xInRow = xIn
			}
		}

		xFillRow := -1
		if style.Fill != nil && rFill > 0 {
			xFill, xFill2 = shrink(xFill, xFill2, y2, rFill2)
			if xFill2+y2 <= rFill2 {
				xFillRow = xFill
			}
		}

		yTop := yc - y
		yBot := yc + y

		if style.Fill != nil && xFillRow >= 0 {
			st.FillSpan(yTop, xc-xFillRow, xc+xFillRow, fillColor)
			if y != 0 {
				st.FillSpan(yBot, xc-xFillRow, xc+xFillRow, fillColor)
			}
		}

		if style.Stroke != nil {
			a := xInRow + 1
			if a <= xOut {
				if a <= 0 {
					// Row crosses no inner circle: the stroke span is solid.
					st.FillSpan(yTop, xc-xOut, xc+xOut, strokeColor)
					if y != 0 {
						st.FillSpan(yBot, xc-xOut, xc+xOut, strokeColor)
					}
				} else {
					st.FillSpan(yTop, xc-xOut, xc-a, strokeColor)
					st.FillSpan(yTop, xc+a, xc+xOut, strokeColor)
					if y != 0 {
						st.FillSpan(yBot, xc-xOut, xc-a, strokeColor)
						st.FillSpan(yBot, xc+a, xc+xOut, strokeColor)
					}
				}
			}
		}

		y2 += 2*int64(y) + 1
	}
}
