package stage

import "math"

// Stage is a fixed-size row-major RGBA8 framebuffer. All shape entry points
// draw into a Stage; the Stage itself performs no blending and holds no
// external resources. A Stage must not be shared between goroutines without
// external synchronization.
type Stage struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// New creates a width x height Stage cleared to transparent black.
//
// New panics when either dimension is not strictly positive or when the
// byte count width*height*4 overflows int. Invalid dimensions are a
// programming error, unlike bad runtime geometry, which every draw call
// skips silently.
func New(width, height int) *Stage {
	if width <= 0 || height <= 0 {
		panic("stage: dimensions must be strictly positive")
	}
	if width > math.MaxInt/4/height {
		panic("stage: dimensions overflow")
	}
	return &Stage{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the stage in pixels.
func (s *Stage) Width() int {
	return s.width
}

// Height returns the height of the stage in pixels.
func (s *Stage) Height() int {
	return s.height
}

// Dimensions returns the width and height of the stage.
func (s *Stage) Dimensions() (width, height int) {
	return s.width, s.height
}

// Len returns the number of pixels in the stage.
func (s *Stage) Len() int {
	return s.width * s.height
}

// IsEmpty reports whether the stage holds no pixels. A Stage built with
// New is never empty; only the zero value is.
func (s *Stage) IsEmpty() bool {
	return len(s.data) == 0
}

// Pixels returns a copy of the framebuffer as one Color per pixel in
// row-major order. Mutating the returned slice does not affect the stage;
// write through SetPixel or Bytes instead.
func (s *Stage) Pixels() []Color {
	out := make([]Color, s.Len())
	for i := range out {
		j := i * 4
		out[i] = Color{R: s.data[j], G: s.data[j+1], B: s.data[j+2], A: s.data[j+3]}
	}
	return out
}

// Bytes returns the packed row-major RGBA pixel data. The slice has length
// Len()*4 and aliases the stage's storage: writes through it are visible to
// subsequent reads, and encoders may consume it directly.
func (s *Stage) Bytes() []uint8 {
	return s.data
}

// SetPixel sets the color of a single pixel.
// Out-of-bounds coordinates, including negative ones, are silently ignored.
func (s *Stage) SetPixel(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.data[i+0] = c.R
	s.data[i+1] = c.G
	s.data[i+2] = c.B
	s.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel and whether the coordinate
// is in bounds.
func (s *Stage) GetPixel(x, y int) (Color, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent, false
	}
	i := (y*s.width + x) * 4
	return Color{
		R: s.data[i+0],
		G: s.data[i+1],
		B: s.data[i+2],
		A: s.data[i+3],
	}, true
}

// Clear fills the entire stage with a color.
func (s *Stage) Clear(c Color) {
	for i := 0; i < len(s.data); i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// FillSpan fills the inclusive pixel range between x0 and x1 at row y.
// The bounds may be given in either order. The span is clipped to the
// stage; a row out of bounds or a span fully off-canvas is a no-op.
func (s *Stage) FillSpan(y, x0, x1 int, c Color) {
	if y < 0 || y >= s.height {
		return
	}

	a, b := x0, x1
	if a > b {
		a, b = b, a
	}
	if b < 0 || a >= s.width {
		return
	}
	if a < 0 {
		a = 0
	}
	if b > s.width-1 {
		b = s.width - 1
	}

	row := y * s.width
	for i := (row + a) * 4; i <= (row+b)*4; i += 4 {
		s.data[i+0] = c.R
		s.data[i+1] = c.G
		s.data[i+2] = c.B
		s.data[i+3] = c.A
	}
}

// worldToPixel converts a world coordinate (origin at the stage center,
// Y up) into pixel coordinates (origin top-left, Y down), rounding to the
// nearest pixel. ok is false when either component is non-finite or the
// rounded result is not representable as an int; callers abandon the
// whole draw in that case.
func (s *Stage) worldToPixel(p Point) (px, py int, ok bool) {
	if !p.finite() {
		return 0, 0, false
	}

	centerX := (float64(s.width) - 1) * 0.5
	centerY := (float64(s.height) - 1) * 0.5

	fx := math.Round(p.X + centerX)
	fy := math.Round(centerY - p.Y)

	// float64(math.MaxInt) rounds up to 2^63, hence the exclusive bound.
	if fx < float64(math.MinInt) || fx >= float64(math.MaxInt) {
		return 0, 0, false
	}
	if fy < float64(math.MinInt) || fy >= float64(math.MaxInt) {
		return 0, 0, false
	}

	return int(fx), int(fy), true
}
