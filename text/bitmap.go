package text

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Bitmap is a single-channel, row-major pixel buffer.
// Each byte is one coverage value; Stride always equals Width.
//
// Bitmap implements image.Image and draw.Image, so glyph masks can be
// composited onto it with golang.org/x/image/draw.
type Bitmap struct {
	Width  int
	Height int
	Pix    []byte
}

// NewBitmap creates a zeroed bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height),
	}
}

// Stride returns the distance in bytes between vertically adjacent pixels.
func (b *Bitmap) Stride() int {
	return b.Width
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.AlphaModel
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return color.Alpha{A: b.Value(x, y)}
}

// Set implements the draw.Image interface.
func (b *Bitmap) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	b.Pix[y*b.Width+x] = color.AlphaModel.Convert(c).(color.Alpha).A
}

// Value returns the coverage at (x, y), or 0 outside the bitmap.
func (b *Bitmap) Value(x, y int) byte {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Alpha returns an *image.Alpha that shares the bitmap's pixels.
// Writes through the returned image are visible in the bitmap.
func (b *Bitmap) Alpha() *image.Alpha {
	return &image.Alpha{Pix: b.Pix, Stride: b.Width, Rect: b.Bounds()}
}

// Gray returns an *image.Gray that shares the bitmap's pixels, with
// coverage rendered as white on black.
func (b *Bitmap) Gray() *image.Gray {
	return &image.Gray{Pix: b.Pix, Stride: b.Width, Rect: b.Bounds()}
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	c := &Bitmap{Width: b.Width, Height: b.Height, Pix: make([]byte, len(b.Pix))}
	copy(c.Pix, b.Pix)
	return c
}

// WritePNG encodes the bitmap as an 8-bit grayscale PNG.
func (b *Bitmap) WritePNG(w io.Writer) error {
	if b.Width == 0 || b.Height == 0 {
		return fmt.Errorf("text: cannot encode empty %dx%d bitmap", b.Width, b.Height)
	}
	return png.Encode(w, b.Gray())
}

// SavePNG saves the bitmap to a grayscale PNG file.
func (b *Bitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
