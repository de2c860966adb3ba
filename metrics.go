package fontkit

// Metrics holds various metrics that apply to the entire font.
//
// All values are in font design units, the coordinate space the font was
// designed in; divide by UnitsPerEm and multiply by the em size in
// pixels to convert to pixels. For OpenType fonts these values mostly
// come from the OS/2, hhea and post tables.
type Metrics struct {
	// UnitsPerEm is the number of font units per em.
	UnitsPerEm uint32

	// Ascent is the maximum amount the font rises above the baseline.
	Ascent float32

	// Descent is the maximum amount the font descends below the baseline.
	//
	// This is typically a negative value, matching the definition of
	// sTypoDescender in the OpenType OS/2 table. Windows and macOS APIs
	// report the same quantity with the sign reversed; beware when
	// porting code from either.
	Descent float32

	// LineGap is the recommended extra gap between lines.
	LineGap float32

	// UnderlinePosition is the suggested position of the top of the
	// underline relative to the baseline.
	UnderlinePosition float32

	// UnderlineThickness is the suggested thickness of the underline.
	UnderlineThickness float32

	// CapHeight is the approximate amount that uppercase letters rise
	// above the baseline.
	CapHeight float32

	// XHeight is the approximate amount that non-ascending lowercase
	// letters rise above the baseline.
	XHeight float32
}

// LineHeight returns the recommended baseline-to-baseline distance,
// in font units.
func (m Metrics) LineHeight() float32 {
	return m.Ascent - m.Descent + m.LineGap
}
