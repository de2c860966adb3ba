package tables

import (
	"encoding/binary"
	"unicode/utf16"
)

// Name IDs defined by the OpenType name table.
const (
	NameIDFamily        = 1
	NameIDSubfamily     = 2
	NameIDFull          = 4
	NameIDPostScript    = 6
	NameIDTypoFamily    = 16
	NameIDTypoSubfamily = 17
)

// Names holds the decoded entries of a name table that callers care
// about. Absent entries are empty strings.
type Names struct {
	Family     string
	Subfamily  string
	Full       string
	PostScript string
}

// DecodeNames extracts the family, subfamily, full and PostScript names
// from a font's name table. The typographic family and subfamily
// (IDs 16 and 17) take precedence over the legacy IDs when present.
func DecodeNames(f *Font) Names {
	t, ok := f.Table(TagName)
	if !ok {
		return Names{}
	}
	var n Names
	n.Family = lookupName(t, NameIDTypoFamily)
	if n.Family == "" {
		n.Family = lookupName(t, NameIDFamily)
	}
	n.Subfamily = lookupName(t, NameIDTypoSubfamily)
	if n.Subfamily == "" {
		n.Subfamily = lookupName(t, NameIDSubfamily)
	}
	n.Full = lookupName(t, NameIDFull)
	n.PostScript = lookupName(t, NameIDPostScript)
	return n
}

// lookupName finds the best record for a name ID. Windows Unicode
// records (platform 3, encodings 1 and 10) win over Unicode platform
// records, which win over Macintosh Roman.
func lookupName(t []byte, nameID uint16) string {
	if len(t) < 6 {
		return ""
	}
	count := int(binary.BigEndian.Uint16(t[2:]))
	strOff := int(binary.BigEndian.Uint16(t[4:]))

	best := -1
	bestScore := 0
	for i := 0; i < count; i++ {
		rec := 6 + i*12
		if rec+12 > len(t) {
			break
		}
		if binary.BigEndian.Uint16(t[rec+6:]) != nameID {
			continue
		}
		platform := binary.BigEndian.Uint16(t[rec:])
		encoding := binary.BigEndian.Uint16(t[rec+2:])
		score := 0
		switch {
		case platform == 3 && (encoding == 1 || encoding == 10):
			score = 3
		case platform == 0:
			score = 2
		case platform == 1 && encoding == 0:
			score = 1
		}
		if score > bestScore {
			best, bestScore = rec, score
		}
	}
	if best < 0 {
		return ""
	}

	length := int(binary.BigEndian.Uint16(t[best+8:]))
	off := strOff + int(binary.BigEndian.Uint16(t[best+10:]))
	if off+length > len(t) {
		return ""
	}
	raw := t[off : off+length]
	if bestScore >= 2 {
		return decodeUTF16BE(raw)
	}
	// Macintosh Roman; keep the ASCII subset as-is.
	return string(raw)
}

func decodeUTF16BE(b []byte) string {
	u := make([]uint16, 0, len(b)/2)
	for i := 0; i+1 < len(b); i += 2 {
		u = append(u, binary.BigEndian.Uint16(b[i:]))
	}
	return string(utf16.Decode(u))
}
