package ximage

import (
	xfont "golang.org/x/image/font"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/tables"
)

// Properties returns the style, weight and stretch from the OS/2
// table, falling back to the post table's italic angle.
func (f *Font) Properties() fontkit.Properties {
	p := fontkit.DefaultProperties()
	if f.sfnt == nil {
		if pt := f.font.PostTable(); pt != nil && pt.ItalicAngle != 0 {
			p.Style = fontkit.StyleItalic
		}
		return p
	}

	if os2, ok := tables.DecodeOS2(f.sfnt); ok {
		switch {
		case os2.Oblique:
			p.Style = fontkit.StyleOblique
		case os2.Italic:
			p.Style = fontkit.StyleItalic
		}
		if os2.WeightClass != 0 {
			p.Weight = fontkit.Weight(os2.WeightClass)
		}
		p.Stretch = fontkit.Stretch(os2.Stretch())
		return p
	}

	if post, ok := tables.DecodePost(f.sfnt); ok && post.ItalicAngle != 0 {
		p.Style = fontkit.StyleItalic
	}
	return p
}

// Metrics returns the font's global metrics in font units.
func (f *Font) Metrics() fontkit.Metrics {
	var m fontkit.Metrics
	m.UnitsPerEm = uint32(f.font.UnitsPerEm())

	// Loading metrics at ppem == unitsPerEm keeps values in font units.
	// The engine reports ascent and descent as positive distances from
	// the baseline; descent becomes negative in the portable form.
	if em, err := f.font.Metrics(&f.buf, f.upem(), xfont.HintingNone); err == nil {
		m.Ascent = float32(fixedToFloat(em.Ascent))
		m.Descent = float32(-fixedToFloat(em.Descent))
		m.LineGap = float32(fixedToFloat(em.Height) - fixedToFloat(em.Ascent) - fixedToFloat(em.Descent))
		m.XHeight = float32(fixedToFloat(em.XHeight))
		m.CapHeight = float32(fixedToFloat(em.CapHeight))
	}

	if f.sfnt != nil {
		if p, ok := tables.DecodePost(f.sfnt); ok {
			m.UnderlinePosition = float32(p.UnderlinePosition)
			m.UnderlineThickness = float32(p.UnderlineThickness)
		}
		if os2, ok := tables.DecodeOS2(f.sfnt); ok {
			if m.CapHeight == 0 {
				m.CapHeight = float32(os2.CapHeight)
			}
			if m.XHeight == 0 {
				m.XHeight = float32(os2.XHeight)
			}
		}
	}
	return m
}
