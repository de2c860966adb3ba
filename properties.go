package fontkit

import "fmt"

// Style allows italic or oblique faces to be selected.
type Style uint8

const (
	// StyleNormal is a face that is neither italic nor obliqued.
	StyleNormal Style = iota
	// StyleItalic is a form that is commonly cursive in nature.
	StyleItalic
	// StyleOblique is a typically-sloped version of the regular face.
	StyleOblique
)

// String returns the string representation of the style.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "Normal"
	case StyleItalic:
		return "Italic"
	case StyleOblique:
		return "Oblique"
	default:
		return "Unknown"
	}
}

// Weight is the degree of blackness or stroke thickness of a font,
// on the usual CSS scale from 100 (thinnest) to 900 (blackest).
type Weight float32

// Standard CSS font-weight values.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Stretch is the width of a font as an approximate fraction of the
// normal width, from 0.5 (ultra-condensed) to 2.0 (ultra-expanded).
type Stretch float32

// Standard CSS font-stretch values.
const (
	StretchUltraCondensed Stretch = 0.5
	StretchExtraCondensed Stretch = 0.625
	StretchCondensed      Stretch = 0.75
	StretchSemiCondensed  Stretch = 0.875
	StretchNormal         Stretch = 1.0
	StretchSemiExpanded   Stretch = 1.125
	StretchExpanded       Stretch = 1.25
	StretchExtraExpanded  Stretch = 1.5
	StretchUltraExpanded  Stretch = 2.0
)

// Properties that specify which font in a family to use: e.g. style,
// weight, and stretchiness. The fields correspond to the CSS font
// properties of the same names.
type Properties struct {
	Style   Style
	Weight  Weight
	Stretch Stretch
}

// DefaultProperties returns normal style, weight and stretch.
func DefaultProperties() Properties {
	return Properties{
		Style:   StyleNormal,
		Weight:  WeightNormal,
		Stretch: StretchNormal,
	}
}

// WithStyle returns a copy of the properties with the given style.
func (p Properties) WithStyle(s Style) Properties {
	p.Style = s
	return p
}

// WithWeight returns a copy of the properties with the given weight.
func (p Properties) WithWeight(w Weight) Properties {
	p.Weight = w
	return p
}

// WithStretch returns a copy of the properties with the given stretch.
func (p Properties) WithStretch(s Stretch) Properties {
	p.Stretch = s
	return p
}

// String returns a short description like "Italic 700 1.0".
func (p Properties) String() string {
	return fmt.Sprintf("%s %g %g", p.Style, p.Weight, p.Stretch)
}
