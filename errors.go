package fontkit

import "errors"

// Font loading errors, returned by the open and analyze operations of a
// loader backend. I/O failures are wrapped with %w so the underlying
// error remains reachable through errors.Is / errors.As.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("fontkit: empty font data")

	// ErrUnrecognizedFormat is returned when data does not look like a
	// supported font container.
	ErrUnrecognizedFormat = errors.New("fontkit: unrecognized font format")

	// ErrNoSuchFontInCollection is returned when the font index is out of
	// range for the collection (or nonzero for a single-font container).
	ErrNoSuchFontInCollection = errors.New("fontkit: no font with the given index in the collection")
)

// Glyph loading errors, returned by glyph-indexed operations. Unlike the
// descriptive metadata queries, which degrade to defaults, an invalid
// glyph index is a caller programming error and is surfaced explicitly.
var (
	// ErrNoSuchGlyph is returned when a glyph ID is not in [0, GlyphCount).
	ErrNoSuchGlyph = errors.New("fontkit: no such glyph")

	// ErrUnsupportedHinting is returned when the requested hinting mode is
	// not supported by the loader. Check SupportsHintingOptions first.
	ErrUnsupportedHinting = errors.New("fontkit: hinting mode not supported by this loader")
)
