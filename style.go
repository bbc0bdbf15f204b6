package stage

// Opacity is a per-draw alpha multiplier in [0, 255], applied on top of a
// color's own alpha. 255 leaves the color's alpha unchanged.
type Opacity uint8

// Opaque is the default opacity.
const Opaque Opacity = 255

// Fill describes the interior paint of a shape.
type Fill struct {
	// Color is the intrinsic fill color.
	Color Color

	// Opacity multiplies the color's alpha. Default: Opaque.
	Opacity Opacity
}

// NewFill returns a fully opaque fill of the given color.
func NewFill(c Color) *Fill {
	return &Fill{Color: c, Opacity: Opaque}
}

// WithOpacity returns a copy of the Fill with the given opacity.
func (f Fill) WithOpacity(o Opacity) *Fill {
	f.Opacity = o
	return &f
}

// color resolves the effective color written into the framebuffer.
func (f *Fill) color() Color {
	return resolveAlpha(f.Color, f.Opacity)
}

// Stroke describes the outline paint of a shape.
type Stroke struct {
	// Color is the intrinsic stroke color.
	Color Color

	// Opacity multiplies the color's alpha. Default: Opaque.
	Opacity Opacity

	// Width is the stroke width in device pixels. Default: 1.0
	Width float64
}

// NewStroke returns a fully opaque one-pixel stroke of the given color.
func NewStroke(c Color) *Stroke {
	return &Stroke{Color: c, Opacity: Opaque, Width: 1.0}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) *Stroke {
	s.Width = w
	return &s
}

// WithOpacity returns a copy of the Stroke with the given opacity.
func (s Stroke) WithOpacity(o Opacity) *Stroke {
	s.Opacity = o
	return &s
}

// color resolves the effective color written into the framebuffer.
func (s *Stroke) color() Color {
	return resolveAlpha(s.Color, s.Opacity)
}

// Style carries the optional fill and optional stroke for one draw call.
// A Style with neither present makes every shape call a no-op.
type Style struct {
	Fill   *Fill
	Stroke *Stroke
}

// NewStyle combines an optional fill and an optional stroke.
// Either argument may be nil.
func NewStyle(fill *Fill, stroke *Stroke) Style {
	return Style{Fill: fill, Stroke: stroke}
}

// FillOnly returns a fill-only style of the given color.
func FillOnly(c Color) Style {
	return Style{Fill: NewFill(c)}
}

// StrokeOnly returns a stroke-only style of the given color.
func StrokeOnly(c Color) Style {
	return Style{Stroke: NewStroke(c)}
}

// empty reports whether the style paints nothing.
func (s Style) empty() bool {
	return s.Fill == nil && s.Stroke == nil
}

// resolveAlpha replaces the color's alpha with round(alpha * opacity / 255).
// The product is computed in uint32 so it cannot overflow the byte range
// before narrowing.
func resolveAlpha(c Color, o Opacity) Color {
	a := uint32(c.A) * uint32(o)
	c.A = uint8((a + 127) / 255)
	return c
}
