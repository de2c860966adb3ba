package fontkit

// HintingMode specifies the degree of grid fitting applied to glyph
// outlines or raster output.
type HintingMode uint8

const (
	// HintingNone requests no hinting.
	HintingNone HintingMode = iota
	// HintingVertical requests hinting of the vertical direction only.
	HintingVertical
	// HintingVerticalSubpixel requests vertical hinting with horizontal
	// placement snapped to subpixel boundaries.
	HintingVerticalSubpixel
	// HintingFull requests full hinting in both directions.
	HintingFull
)

// String returns the string representation of the hinting mode.
func (m HintingMode) String() string {
	switch m {
	case HintingNone:
		return "None"
	case HintingVertical:
		return "Vertical"
	case HintingVerticalSubpixel:
		return "VerticalSubpixel"
	case HintingFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// HintingOptions selects the hinting mode and, for every mode other
// than HintingNone, the point size the grid fitting targets.
//
// Loader support for hinting varies; call Face.SupportsHintingOptions
// before relying on hinted output.
type HintingOptions struct {
	Mode HintingMode

	// PointSize is the size the grid fitting targets, in points.
	// Ignored when Mode is HintingNone.
	PointSize float64
}
