// Package tables decodes the handful of sfnt tables that the font
// engines do not expose directly: the table directory itself, the name
// table, post, OS/2 and maxp. Decoding is lenient; a truncated or
// malformed table yields zero values rather than an error wherever the
// caller treats the data as descriptive metadata.
package tables

import (
	"encoding/binary"
	"errors"
)

// Table tags used by the decoders in this package.
const (
	TagName = 0x6E616D65 // 'name'
	TagPost = 0x706F7374 // 'post'
	TagOS2  = 0x4F532F32 // 'OS/2'
	TagMaxp = 0x6D617870 // 'maxp'
	TagHead = 0x68656164 // 'head'
)

const (
	sigTrueType      = 0x00010000
	sigOpenType      = 0x4F54544F // 'OTTO'
	sigAppleTrueType = 0x74727565 // 'true'
	sigCollection    = 0x74746366 // 'ttcf'
)

var (
	// ErrInvalid marks data that is not an sfnt container.
	ErrInvalid = errors.New("tables: not an sfnt font")

	// ErrIndex marks a face index past the end of a collection.
	ErrIndex = errors.New("tables: font index out of range")
)

// Font provides raw access to the tables of one face within an sfnt
// container. The underlying data is shared, not copied.
type Font struct {
	data    []byte
	entries map[uint32]span
}

type span struct {
	off, len uint32
}

// NumFonts returns the number of faces in an sfnt container: the ttcf
// face count for collections, 1 for single fonts, 0 for anything else.
func NumFonts(data []byte) int {
	if len(data) < 4 {
		return 0
	}
	switch binary.BigEndian.Uint32(data) {
	case sigCollection:
		if len(data) < 12 {
			return 0
		}
		return int(binary.BigEndian.Uint32(data[8:]))
	case sigTrueType, sigOpenType, sigAppleTrueType:
		return 1
	}
	return 0
}

// Parse indexes the table directory of face number index within data.
func Parse(data []byte, index int) (*Font, error) {
	if len(data) < 12 {
		return nil, ErrInvalid
	}
	base := uint32(0)
	switch binary.BigEndian.Uint32(data) {
	case sigCollection:
		n := NumFonts(data)
		if index < 0 || index >= n {
			return nil, ErrIndex
		}
		off := 12 + 4*index
		if len(data) < off+4 {
			return nil, ErrInvalid
		}
		base = binary.BigEndian.Uint32(data[off:])
		if uint64(base)+12 > uint64(len(data)) {
			return nil, ErrInvalid
		}
	case sigTrueType, sigOpenType, sigAppleTrueType:
		if index != 0 {
			return nil, ErrIndex
		}
	default:
		return nil, ErrInvalid
	}

	numTables := binary.BigEndian.Uint16(data[base+4:])
	dir := uint64(base) + 12
	if dir+uint64(numTables)*16 > uint64(len(data)) {
		return nil, ErrInvalid
	}
	f := &Font{data: data, entries: make(map[uint32]span, numTables)}
	for i := 0; i < int(numTables); i++ {
		rec := data[dir+uint64(i)*16:]
		tag := binary.BigEndian.Uint32(rec)
		off := binary.BigEndian.Uint32(rec[8:])
		length := binary.BigEndian.Uint32(rec[12:])
		if uint64(off)+uint64(length) > uint64(len(data)) {
			continue
		}
		f.entries[tag] = span{off: off, len: length}
	}
	return f, nil
}

// Table returns the raw bytes of the tagged table.
func (f *Font) Table(tag uint32) ([]byte, bool) {
	s, ok := f.entries[tag]
	if !ok {
		return nil, false
	}
	return f.data[s.off : s.off+s.len], true
}

// NumGlyphs reads the glyph count from maxp, or 0 when absent.
func (f *Font) NumGlyphs() int {
	t, ok := f.Table(TagMaxp)
	if !ok || len(t) < 6 {
		return 0
	}
	return int(binary.BigEndian.Uint16(t[4:]))
}

// UnitsPerEm reads the em size from head, or 0 when absent.
func (f *Font) UnitsPerEm() uint16 {
	t, ok := f.Table(TagHead)
	if !ok || len(t) < 20 {
		return 0
	}
	return binary.BigEndian.Uint16(t[18:])
}
