package fontkit

import "image"

// GlyphID identifies a glyph within a font by its index.
type GlyphID = uint32

// Tag is a four-byte OpenType table identifier, such as 'cmap' or 'GSUB'.
type Tag uint32

// MakeTag builds a Tag from four ASCII bytes.
func MakeTag(a, b, c, d byte) Tag {
	return Tag(uint32(a)<<24 | uint32(b)<<16 | uint32(c)<<8 | uint32(d))
}

// String returns the four-character form of the tag.
func (t Tag) String() string {
	return string([]byte{byte(t >> 24), byte(t >> 16), byte(t >> 8), byte(t)})
}

// FallbackResult reports fonts suitable for rendering a run of text
// that the primary font cannot cover.
type FallbackResult struct {
	// Fonts lists candidate fallback fonts, best match first.
	Fonts []FallbackFont

	// ValidLen is the number of bytes of the query text for which the
	// suggested fonts apply.
	ValidLen int
}

// FallbackFont is a single fallback candidate.
type FallbackFont struct {
	// Font is the loaded fallback face.
	Font Face

	// ScaleFactor adjusts the fallback's rendered size so its visual
	// density matches the primary font. It is 1 unless the platform
	// catalog says otherwise.
	ScaleFactor float64
}

// Face is a loaded font understood by one of the font engines. Every
// engine exposes the same capability surface so that callers can swap
// engines without code changes.
//
// Descriptive queries (names, properties, metrics) do not fail: a
// malformed or absent table degrades to a zero value or a default.
// Glyph-indexed operations validate their glyph ID and report
// ErrNoSuchGlyph, and reject hinting modes the engine cannot honor
// with ErrUnsupportedHinting.
type Face interface {
	// PostscriptName returns the font's PostScript name, or "" when the
	// name table lacks one.
	PostscriptName() string

	// FullName returns the font's full display name, falling back to
	// the family name when absent.
	FullName() string

	// FamilyName returns the font's family name.
	FamilyName() string

	// IsMonospace reports whether the font advertises fixed-pitch
	// glyph advances.
	IsMonospace() bool

	// Properties returns the style, weight and stretch the font
	// advertises. Missing tables yield DefaultProperties.
	Properties() Properties

	// GlyphCount returns the number of glyphs in the font.
	GlyphCount() uint32

	// GlyphForChar maps a Unicode code point to a glyph ID. The second
	// result is false when the cmap has no mapping.
	GlyphForChar(r rune) (GlyphID, bool)

	// GlyphByName maps a PostScript glyph name to a glyph ID. The
	// second result is false when the font carries no glyph names or
	// the name is unknown.
	GlyphByName(name string) (GlyphID, bool)

	// Outline streams the glyph's path into sink, in font units with Y
	// up. Hinting modes the engine does not support yield
	// ErrUnsupportedHinting.
	Outline(glyph GlyphID, hinting HintingOptions, sink OutlineSink) error

	// TypographicBounds returns the glyph's bounding rectangle in font
	// units.
	TypographicBounds(glyph GlyphID) (Rect, error)

	// Advance returns the glyph's advance vector in font units.
	Advance(glyph GlyphID) (Vector, error)

	// Origin returns the glyph's origin offset in font units.
	Origin(glyph GlyphID) (Vector, error)

	// Metrics returns the font's global typographic metrics in font
	// units. Descent is negative for below-baseline extent.
	Metrics() Metrics

	// SupportsHintingOptions reports whether the engine can honor the
	// given hinting mode, optionally for rasterization as well as
	// outline extraction.
	SupportsHintingOptions(hinting HintingOptions, forRasterization bool) bool

	// RasterBounds returns the pixel rectangle the glyph covers when
	// rendered at pointSize with the given transform.
	RasterBounds(glyph GlyphID, pointSize float64, transform Matrix, hinting HintingOptions, opts RasterizationOptions) (image.Rectangle, error)

	// RasterizeGlyph renders the glyph into canvas at pointSize under
	// the given transform.
	RasterizeGlyph(canvas *Canvas, glyph GlyphID, pointSize float64, transform Matrix, hinting HintingOptions, opts RasterizationOptions) error

	// Handle returns a handle that reloads this exact font, when one
	// can be constructed.
	Handle() (Handle, bool)

	// CopyFontData returns the raw bytes of the font file, when
	// available.
	CopyFontData() ([]byte, bool)

	// FontTable returns the raw bytes of the named OpenType table, or
	// false when the font has no such table.
	FontTable(tag Tag) ([]byte, bool)

	// Fallbacks suggests fonts for text the face cannot render, using
	// the platform font catalog. locale is a BCP 47 tag and may be "".
	Fallbacks(text string, locale string) *FallbackResult
}
