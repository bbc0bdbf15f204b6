package stage

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// ToImage copies the stage into an image.NRGBA.
func (s *Stage) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.data)
	return img
}

// FromImage creates a stage from an image. The image must not be empty.
func FromImage(img image.Image) *Stage {
	bounds := img.Bounds()
	st := New(bounds.Dx(), bounds.Dy())

	for y := 0; y < st.height; y++ {
		for x := 0; x < st.width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			st.SetPixel(x, y, FromColor(c))
		}
	}

	return st
}

// SavePNG saves the stage to a PNG file.
func (s *Stage) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("stage: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, s.ToImage()); err != nil {
		return fmt.Errorf("stage: encode png: %w", err)
	}

	Logger().Debug("stage: saved PNG", "path", path, "width", s.width, "height", s.height)
	return nil
}

// SaveBMP saves the stage to a BMP file. BMP stores no alpha channel;
// pixel colors are written as-is without compositing.
func (s *Stage) SaveBMP(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("stage: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := bmp.Encode(f, s.ToImage()); err != nil {
		return fmt.Errorf("stage: encode bmp: %w", err)
	}

	Logger().Debug("stage: saved BMP", "path", path, "width", s.width, "height", s.height)
	return nil
}

// At implements the image.Image interface.
func (s *Stage) At(x, y int) color.Color {
	c, _ := s.GetPixel(x, y)
	return c.NRGBA()
}

// Bounds implements the image.Image interface.
func (s *Stage) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Stage) ColorModel() color.Model {
	return color.NRGBAModel
}
