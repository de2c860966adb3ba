package ximage

import (
	"errors"
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/cache"
)

// upem returns the em size as a 26.6 ppem value. Loading glyphs at
// ppem == unitsPerEm keeps all coordinates in font units.
func (f *Font) upem() fixed.Int26_6 {
	u := int32(f.font.UnitsPerEm())
	if u == 0 {
		u = 1000
	}
	return fixed.I(int(u))
}

// newOutlineCache builds the per-font outline memo.
func newOutlineCache() *cache.Sharded[fontkit.GlyphID, *fontkit.Outline] {
	return cache.NewSharded[fontkit.GlyphID, *fontkit.Outline](cache.DefaultCapacity, cache.Uint32Hasher)
}

// Outline streams the glyph's path into sink, in font units with Y up.
// The sfnt engine loads unhinted outlines only.
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
		if err := f.extractOutline(glyph, &o); err != nil {
			return nil, err
		}
		return &o, nil
	})
}

// extractOutline decodes the glyph's path from the engine into sink.
func (f *Font) extractOutline(glyph fontkit.GlyphID, sink fontkit.OutlineSink) error {
	segments, err := f.font.LoadGlyph(&f.buf, sfnt.GlyphIndex(glyph), f.upem(), nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return fontkit.ErrNoSuchGlyph
		}
		// Colored and bitmap glyphs have no outline to report.
		return nil
	}

	// LoadGlyph yields 26.6 coordinates with Y growing downward;
	// convert to font units with Y up.
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				sink.Close()
			}
			sink.MoveTo(segPoint(seg.Args[0]))
			open = true
		case sfnt.SegmentOpLineTo:
			sink.LineTo(segPoint(seg.Args[0]))
		case sfnt.SegmentOpQuadTo:
			sink.QuadTo(segPoint(seg.Args[0]), segPoint(seg.Args[1]))
		case sfnt.SegmentOpCubeTo:
			sink.CubeTo(segPoint(seg.Args[0]), segPoint(seg.Args[1]), segPoint(seg.Args[2]))
		}
	}
	if open {
		sink.Close()
	}
	return nil
}

// TypographicBounds returns the glyph's bounding rectangle in font
// units.
func (f *Font) TypographicBounds(glyph fontkit.GlyphID) (fontkit.Rect, error) {
	if err := f.validGlyph(glyph); err != nil {
		return fontkit.Rect{}, err
	}
	bounds, _, err := f.font.GlyphBounds(&f.buf, sfnt.GlyphIndex(glyph), f.upem(), xfont.HintingNone)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return fontkit.Rect{}, fontkit.ErrNoSuchGlyph
		}
		return fontkit.Rect{}, nil
	}
	// Flip from y-down to y-up.
	return fontkit.Rect{
		MinX: fixedToFloat(bounds.Min.X),
		MinY: -fixedToFloat(bounds.Max.Y),
		MaxX: fixedToFloat(bounds.Max.X),
		MaxY: -fixedToFloat(bounds.Min.Y),
	}, nil
}

// Advance returns the glyph's horizontal advance in font units.
func (f *Font) Advance(glyph fontkit.GlyphID) (fontkit.Vector, error) {
	if err := f.validGlyph(glyph); err != nil {
		return fontkit.Vector{}, err
	}
	adv, err := f.font.GlyphAdvance(&f.buf, sfnt.GlyphIndex(glyph), f.upem(), xfont.HintingNone)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return fontkit.Vector{}, fontkit.ErrNoSuchGlyph
		}
		return fontkit.Vector{}, nil
	}
	return fontkit.Vec(fixedToFloat(adv), 0), nil
}

// Origin returns the glyph's origin offset. Outlines from this engine
// are already expressed relative to their origin.
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
	return fontkit.RasterBoundsOf(outline, f.deviceMatrix(pointSize, transform)), nil
}

// RasterizeGlyph renders the glyph into canvas at pointSize under the
// given transform.
func (f *Font) RasterizeGlyph(canvas *fontkit.Canvas, glyph fontkit.GlyphID, pointSize float64, transform fontkit.Matrix, hinting fontkit.HintingOptions, opts fontkit.RasterizationOptions) error {
	outline, err := f.cachedOutline(glyph, hinting)
	if err != nil {
		return err
	}
	return fontkit.RasterizeOutline(canvas, outline, f.deviceMatrix(pointSize, transform), opts)
}

func (f *Font) deviceMatrix(pointSize float64, transform fontkit.Matrix) fontkit.Matrix {
	s := pointSize / fixedToFloat(f.upem())
	return transform.Multiply(fontkit.Scale(s, s))
}

func segPoint(p fixed.Point26_6) fontkit.Vector {
	return fontkit.Vec(fixedToFloat(p.X), -fixedToFloat(p.Y))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
