package gotext

import (
	"github.com/go-text/typesetting/font"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/tables"
)

// Properties returns the style, weight and stretch the font advertises.
func (f *Font) Properties() fontkit.Properties {
	p := fontkit.DefaultProperties()

	aspect := f.face.Describe().Aspect
	if aspect.Style == font.StyleItalic {
		p.Style = fontkit.StyleItalic
	}
	if aspect.Weight != 0 {
		p.Weight = fontkit.Weight(aspect.Weight)
	}
	if aspect.Stretch != 0 {
		p.Stretch = fontkit.Stretch(aspect.Stretch)
	}

	// The engine folds oblique into italic; the OS/2 fsSelection bit
	// still tells them apart.
	if f.sfnt != nil {
		if os2, ok := tables.DecodeOS2(f.sfnt); ok && os2.Oblique {
			p.Style = fontkit.StyleOblique
		}
	}
	return p
}

// Metrics returns the font's global metrics in font units. Missing
// tables degrade to zero values.
func (f *Font) Metrics() fontkit.Metrics {
	var m fontkit.Metrics
	m.UnitsPerEm = uint32(f.face.Upem())

	if ext, ok := f.face.FontHExtents(); ok {
		m.Ascent = ext.Ascender
		m.Descent = ext.Descender
		m.LineGap = ext.LineGap
	}

	if f.sfnt != nil {
		if p, ok := tables.DecodePost(f.sfnt); ok {
			m.UnderlinePosition = float32(p.UnderlinePosition)
			m.UnderlineThickness = float32(p.UnderlineThickness)
		}
		if os2, ok := tables.DecodeOS2(f.sfnt); ok {
			if m.Ascent == 0 && m.Descent == 0 {
				m.Ascent = float32(os2.TypoAscender)
				m.Descent = float32(os2.TypoDescender)
				m.LineGap = float32(os2.TypoLineGap)
			}
			m.CapHeight = float32(os2.CapHeight)
			m.XHeight = float32(os2.XHeight)
		}
	}
	return m
}
