// Package stage provides a CPU-side 2D rasterizer for Go.
//
// # Overview
//
// stage converts continuous world-space shape descriptions (points,
// circles, polygons) into discrete colored pixels in an owned RGBA8
// framebuffer. Rendering is pure Go, single-threaded, and synchronous:
// every draw call mutates the Stage's pixel array directly and returns
// nothing. Malformed geometry (non-finite coordinates, non-positive radii,
// off-canvas shapes) is skipped silently so that one bad shape in a sequence
// of draws never aborts the others.
//
// # Quick Start
//
//	import "github.com/gogpu/stage"
//
//	// Create a 256x256 framebuffer, transparent black.
//	st := stage.New(256, 256)
//
//	// Draw a red disk with a white outline at the world origin.
//	style := stage.NewStyle(stage.NewFill(stage.Red), stage.NewStroke(stage.White))
//	stage.Circle(st, stage.Pt(0, 0), 48, style)
//
//	// Save to PNG.
//	st.SavePNG("disk.png")
//
// # Coordinate System
//
// Shape entry points take world coordinates: origin at the center of the
// stage, X increasing right, Y increasing up. Pixel coordinates (used by
// the Stage primitives SetPixel, GetPixel and FillSpan) have the origin at
// the top-left with Y increasing down, the usual raster convention.
//
// # Styling
//
// A Style carries an optional Fill and an optional Stroke, each pairing a
// Color with an Opacity multiplier. The effective alpha written into the
// framebuffer is round(color.A * opacity / 255); the framebuffer itself
// never blends, the last write to a pixel wins.
//
// # Limitations
//
// No anti-aliasing, no transform matrices, no text. Rendering onto one
// Stage from multiple goroutines is not supported; use one Stage per
// goroutine or synchronize externally.
package stage

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
