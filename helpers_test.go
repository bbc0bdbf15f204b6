package stage

import "strings"

// gridString renders the stage as one character per pixel for readable
// test diffs: '.' transparent, 'S' stroke color, 'F' fill color,
// '#' anything else.
func gridString(st *Stage, stroke, fill Color) string {
	var b strings.Builder
	for y := 0; y < st.Height(); y++ {
		for x := 0; x < st.Width(); x++ {
			c, _ := st.GetPixel(x, y)
			switch {
			case c.A == 0:
				b.WriteByte('.')
			case c == stroke:
				b.WriteByte('S')
			case c == fill:
				b.WriteByte('F')
			default:
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// countColor returns how many pixels currently hold exactly c.
func countColor(st *Stage, c Color) int {
	n := 0
	for y := 0; y < st.Height(); y++ {
		for x := 0; x < st.Width(); x++ {
			if got, _ := st.GetPixel(x, y); got == c {
				n++
			}
		}
	}
	return n
}

// snapshot copies the stage's pixel bytes.
func snapshot(st *Stage) []uint8 {
	out := make([]uint8, len(st.Bytes()))
	copy(out, st.Bytes())
	return out
}
