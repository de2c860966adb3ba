package tables

import "encoding/binary"

// Post holds the fields of the post table used for metrics and
// properties.
type Post struct {
	// ItalicAngle is the caret slant in degrees, negative for fonts
	// that lean to the right.
	ItalicAngle float64

	// UnderlinePosition and UnderlineThickness are in font units.
	UnderlinePosition  int16
	UnderlineThickness int16

	// IsFixedPitch reports whether the font declares itself monospaced.
	IsFixedPitch bool
}

// DecodePost extracts the header fields of the post table.
func DecodePost(f *Font) (Post, bool) {
	t, ok := f.Table(TagPost)
	if !ok || len(t) < 16 {
		return Post{}, false
	}
	return Post{
		ItalicAngle:        fixedToFloat(binary.BigEndian.Uint32(t[4:])),
		UnderlinePosition:  int16(binary.BigEndian.Uint16(t[8:])),
		UnderlineThickness: int16(binary.BigEndian.Uint16(t[10:])),
		IsFixedPitch:       binary.BigEndian.Uint32(t[12:]) != 0,
	}, true
}

// fixedToFloat converts a 16.16 fixed-point value.
func fixedToFloat(v uint32) float64 {
	return float64(int32(v)) / 65536
}

// GlyphNames decodes the glyph name mapping from a version 2.0 post
// table. The result maps PostScript glyph names to glyph indices; it
// is nil when the table carries no names.
func GlyphNames(f *Font) map[string]uint32 {
	t, ok := f.Table(TagPost)
	if !ok || len(t) < 34 {
		return nil
	}
	if binary.BigEndian.Uint32(t) != 0x00020000 {
		return nil
	}
	numGlyphs := int(binary.BigEndian.Uint16(t[32:]))
	if len(t) < 34+numGlyphs*2 {
		return nil
	}

	// Custom names follow the index array as Pascal strings.
	var custom []string
	for p := 34 + numGlyphs*2; p < len(t); {
		n := int(t[p])
		p++
		if p+n > len(t) {
			break
		}
		custom = append(custom, string(t[p:p+n]))
		p += n
	}

	names := make(map[string]uint32, numGlyphs)
	for gid := 0; gid < numGlyphs; gid++ {
		idx := int(binary.BigEndian.Uint16(t[34+gid*2:]))
		var name string
		if idx < len(macGlyphNames) {
			name = macGlyphNames[idx]
		} else if c := idx - 258; c < len(custom) {
			name = custom[c]
		}
		if name == "" {
			continue
		}
		if _, dup := names[name]; !dup {
			names[name] = uint32(gid)
		}
	}
	return names
}
