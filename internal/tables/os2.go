package tables

import "encoding/binary"

// fsSelection bits.
const (
	fsSelectionItalic  = 1 << 0
	fsSelectionBold    = 1 << 5
	fsSelectionOblique = 1 << 9
)

// OS2 holds the OS/2 table fields used for properties and metrics.
type OS2 struct {
	Version     uint16
	WeightClass uint16
	WidthClass  uint16

	Italic  bool
	Oblique bool
	Bold    bool

	TypoAscender  int16
	TypoDescender int16
	TypoLineGap   int16

	// XHeight and CapHeight are zero for table versions before 2.
	XHeight   int16
	CapHeight int16
}

// DecodeOS2 extracts the OS/2 table fields.
func DecodeOS2(f *Font) (OS2, bool) {
	t, ok := f.Table(TagOS2)
	if !ok || len(t) < 74 {
		return OS2{}, false
	}
	sel := binary.BigEndian.Uint16(t[62:])
	o := OS2{
		Version:       binary.BigEndian.Uint16(t),
		WeightClass:   binary.BigEndian.Uint16(t[4:]),
		WidthClass:    binary.BigEndian.Uint16(t[6:]),
		Italic:        sel&fsSelectionItalic != 0,
		Oblique:       sel&fsSelectionOblique != 0,
		Bold:          sel&fsSelectionBold != 0,
		TypoAscender:  int16(binary.BigEndian.Uint16(t[68:])),
		TypoDescender: int16(binary.BigEndian.Uint16(t[70:])),
		TypoLineGap:   int16(binary.BigEndian.Uint16(t[72:])),
	}
	if o.Version >= 2 && len(t) >= 90 {
		o.XHeight = int16(binary.BigEndian.Uint16(t[86:]))
		o.CapHeight = int16(binary.BigEndian.Uint16(t[88:]))
	}
	return o, true
}

// widthClassStretch maps OS/2 usWidthClass values 1 through 9 to the
// CSS font-stretch scale.
var widthClassStretch = [10]float32{
	0: 1.0,
	1: 0.5, 2: 0.625, 3: 0.75, 4: 0.875, 5: 1.0,
	6: 1.125, 7: 1.25, 8: 1.5, 9: 2.0,
}

// Stretch converts the usWidthClass to the CSS stretch scale, where
// 1.0 is normal width.
func (o OS2) Stretch() float32 {
	if o.WidthClass >= 1 && o.WidthClass <= 9 {
		return widthClassStretch[o.WidthClass]
	}
	return 1.0
}
