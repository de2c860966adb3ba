package gotext

import (
	"image"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/cache"
)

// newOutlineCache builds the per-font outline memo.
func newOutlineCache() *cache.Sharded[fontkit.GlyphID, *fontkit.Outline] {
	return cache.NewSharded[fontkit.GlyphID, *fontkit.Outline](cache.DefaultCapacity, cache.Uint32Hasher)
}

// Outline streams the glyph's path into sink, in font units with Y up.
// The go-text engine does not hint, so any mode other than HintingNone
// is rejected.
func (f *Font) Outline(glyph fontkit.GlyphID, hinting fontkit.HintingOptions, sink fontkit.OutlineSink) error {
	o, err := f.cachedOutline(glyph, hinting)
	if err != nil {
		return err
	}
	o.Replay(sink)
	return nil
}

// cachedOutline returns the recorded outline for glyph, extracting it
// from the engine on first use. Cached outlines must not be mutated.
func (f *Font) cachedOutline(glyph fontkit.GlyphID, hinting fontkit.HintingOptions) (*fontkit.Outline, error) {
	if err := f.validGlyph(glyph); err != nil {
		return nil, err
	}
	if hinting.Mode != fontkit.HintingNone {
		return nil, fontkit.ErrUnsupportedHinting
	}
	return f.outlines.GetOrLoad(glyph, func() (*fontkit.Outline, error) {
		var o fontkit.Outline
		f.extractOutline(glyph, &o)
		return &o, nil
	})
}

// extractOutline decodes the glyph's path from the engine into sink.
func (f *Font) extractOutline(glyph fontkit.GlyphID, sink fontkit.OutlineSink) {
	outline, ok := f.face.GlyphData(gid(glyph)).(font.GlyphOutline)
	if !ok {
		// Bitmap-only glyphs have no outline to report.
		return
	}

	open := false
	for _, seg := range outline.Segments {
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			sink.MoveTo(segPoint(seg.Args[0]))
			open = true
		case ot.SegmentOpLineTo:
			sink.LineTo(segPoint(seg.Args[0]))
		case ot.SegmentOpQuadTo:
			sink.QuadTo(segPoint(seg.Args[0]), segPoint(seg.Args[1]))
		case ot.SegmentOpCubeTo:
			sink.CubeTo(segPoint(seg.Args[0]), segPoint(seg.Args[1]), segPoint(seg.Args[2]))
		}
	}
	if open {
		sink.Close()
	}
}

// TypographicBounds returns the glyph's bounding rectangle in font
// units.
func (f *Font) TypographicBounds(glyph fontkit.GlyphID) (fontkit.Rect, error) {
	if err := f.validGlyph(glyph); err != nil {
		return fontkit.Rect{}, err
	}
	ext, ok := f.face.GlyphExtents(gid(glyph))
	if !ok {
		return fontkit.Rect{}, nil
	}
	// YBearing is the top edge and Height extends downward from it.
	x0, x1 := float64(ext.XBearing), float64(ext.XBearing+ext.Width)
	y0, y1 := float64(ext.YBearing), float64(ext.YBearing+ext.Height)
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return fontkit.Rect{MinX: x0, MinY: y0, MaxX: x1, MaxY: y1}, nil
}

// Advance returns the glyph's horizontal advance in font units.
func (f *Font) Advance(glyph fontkit.GlyphID) (fontkit.Vector, error) {
	if err := f.validGlyph(glyph); err != nil {
		return fontkit.Vector{}, err
	}
	return fontkit.Vec(float64(f.face.HorizontalAdvance(gid(glyph))), 0), nil
}

// Origin returns the glyph's origin offset. Outlines produced by this
// engine are already expressed relative to their origin.
func (f *Font) Origin(glyph fontkit.GlyphID) (fontkit.Vector, error) {
	if err := f.validGlyph(glyph); err != nil {
		return fontkit.Vector{}, err
	}
	return fontkit.Vector{}, nil
}

// SupportsHintingOptions reports whether the engine honors the given
// hinting mode. Only unhinted loading is supported.
func (f *Font) SupportsHintingOptions(hinting fontkit.HintingOptions, forRasterization bool) bool {
	return hinting.Mode == fontkit.HintingNone
}

// RasterBounds returns the pixel rectangle the glyph covers at
// pointSize under the given transform.
func (f *Font) RasterBounds(glyph fontkit.GlyphID, pointSize float64, transform fontkit.Matrix, hinting fontkit.HintingOptions, opts fontkit.RasterizationOptions) (image.Rectangle, error) {
	outline, err := f.cachedOutline(glyph, hinting)
	if err != nil {
		return image.Rectangle{}, err
	}
	return fontkit.RasterBoundsOf(outline, deviceMatrix(f, pointSize, transform)), nil
}

// RasterizeGlyph renders the glyph into canvas at pointSize under the
// given transform.
func (f *Font) RasterizeGlyph(canvas *fontkit.Canvas, glyph fontkit.GlyphID, pointSize float64, transform fontkit.Matrix, hinting fontkit.HintingOptions, opts fontkit.RasterizationOptions) error {
	outline, err := f.cachedOutline(glyph, hinting)
	if err != nil {
		return err
	}
	return fontkit.RasterizeOutline(canvas, outline, deviceMatrix(f, pointSize, transform), opts)
}

// deviceMatrix composes the font-units-to-pixels scale with the
// caller's transform.
func deviceMatrix(f *Font, pointSize float64, transform fontkit.Matrix) fontkit.Matrix {
	upem := float64(f.face.Upem())
	if upem == 0 {
		upem = 1000
	}
	s := pointSize / upem
	return transform.Multiply(fontkit.Scale(s, s))
}

func segPoint(p ot.SegmentPoint) fontkit.Vector {
	return fontkit.Vec(float64(p.X), float64(p.Y))
}
