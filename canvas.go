package fontkit

import (
	"fmt"
	"image"
)

// Format is the pixel format of a Canvas.
type Format uint8

const (
	// FormatA8 is 8-bit alpha coverage, one byte per pixel.
	FormatA8 Format = iota
	// FormatA1 is bilevel (black and white) coverage, one bit per pixel,
	// packed most significant bit first.
	FormatA1
	// FormatRGBA32 is 32-bit RGBA, four bytes per pixel.
	FormatRGBA32
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatA8:
		return "A8"
	case FormatA1:
		return "A1"
	case FormatRGBA32:
		return "RGBA32"
	default:
		return "Unknown"
	}
}

// BytesPerRow returns the minimal stride for a row of the given width.
func (f Format) BytesPerRow(width int) int {
	switch f {
	case FormatA1:
		return (width + 7) / 8
	case FormatRGBA32:
		return width * 4
	default:
		return width
	}
}

// RasterizationOptions selects the antialiasing mode used when
// rasterizing glyphs.
type RasterizationOptions uint8

const (
	// RasterGrayscaleAA requests grayscale antialiasing.
	RasterGrayscaleAA RasterizationOptions = iota
	// RasterBilevel requests monochrome (thresholded) coverage.
	RasterBilevel
	// RasterSubpixelAA requests subpixel antialiasing. Neither pure Go
	// engine produces true subpixel coverage; it renders as grayscale.
	RasterSubpixelAA
)

// String returns the string representation of the rasterization mode.
func (r RasterizationOptions) String() string {
	switch r {
	case RasterGrayscaleAA:
		return "GrayscaleAA"
	case RasterBilevel:
		return "Bilevel"
	case RasterSubpixelAA:
		return "SubpixelAA"
	default:
		return "Unknown"
	}
}

// Canvas is a caller-owned pixel buffer that rasterization mutates in
// place. The declared format need not match the requested rasterization
// mode; coverage is converted on the fly.
type Canvas struct {
	// Pixels is the raw pixel storage, Stride bytes per row.
	Pixels []byte

	// Width and Height are the canvas dimensions in pixels.
	Width, Height int

	// Stride is the number of bytes between vertically adjacent pixels.
	Stride int

	// Format is the pixel format of Pixels.
	Format Format
}

// NewCanvas creates a zeroed canvas with the minimal stride for the
// given format.
func NewCanvas(width, height int, format Format) *Canvas {
	stride := format.BytesPerRow(width)
	return &Canvas{
		Pixels: make([]byte, stride*height),
		Width:  width,
		Height: height,
		Stride: stride,
		Format: format,
	}
}

// Validate checks that the buffer, stride and dimensions are consistent.
func (c *Canvas) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("fontkit: negative canvas dimensions %dx%d", c.Width, c.Height)
	}
	if min := c.Format.BytesPerRow(c.Width); c.Stride < min {
		return fmt.Errorf("fontkit: canvas stride %d below minimum %d", c.Stride, min)
	}
	if len(c.Pixels) < c.Stride*c.Height {
		return fmt.Errorf("fontkit: canvas buffer too small: %d < %d", len(c.Pixels), c.Stride*c.Height)
	}
	return nil
}

// AlphaAt returns the coverage value stored at (x, y), expanded to the
// 0-255 range regardless of format. Out-of-bounds coordinates return 0.
func (c *Canvas) AlphaAt(x, y int) uint8 {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0
	}
	switch c.Format {
	case FormatA1:
		b := c.Pixels[y*c.Stride+x/8]
		if b&(0x80>>uint(x%8)) != 0 {
			return 0xFF
		}
		return 0
	case FormatRGBA32:
		return c.Pixels[y*c.Stride+x*4+3]
	default:
		return c.Pixels[y*c.Stride+x]
	}
}

// setAlpha writes a coverage value at (x, y), converting to the canvas
// format. Coverage accumulates with max blending so overlapping glyphs
// do not punch holes in each other.
func (c *Canvas) setAlpha(x, y int, a uint8) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height || a == 0 {
		return
	}
	switch c.Format {
	case FormatA1:
		if a >= 0x80 {
			c.Pixels[y*c.Stride+x/8] |= 0x80 >> uint(x%8)
		}
	case FormatRGBA32:
		i := y*c.Stride + x*4
		if a > c.Pixels[i+3] {
			// Opaque white modulated by coverage, premultiplied.
			c.Pixels[i+0] = a
			c.Pixels[i+1] = a
			c.Pixels[i+2] = a
			c.Pixels[i+3] = a
		}
	default:
		i := y*c.Stride + x
		if a > c.Pixels[i] {
			c.Pixels[i] = a
		}
	}
}

// blitMask composites an 8-bit coverage mask into the canvas, applying
// the requested rasterization mode. The mask rectangle is in canvas
// pixel coordinates.
func (c *Canvas) blitMask(mask *image.Alpha, opts RasterizationOptions) {
	b := mask.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			a := mask.AlphaAt(x, y).A
			if opts == RasterBilevel {
				if a >= 0x80 {
					a = 0xFF
				} else {
					a = 0
				}
			}
			c.setAlpha(x, y, a)
		}
	}
}
