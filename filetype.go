package fontkit

import (
	"encoding/binary"
	"fmt"
	"os"
)

// FileType tags a byte stream as a single-font container or a collection
// holding several faces.
//
// A FileType is produced by sniffing the container's magic number, not
// by parsing the font: a stream recognized here may still fail to load
// if the selected engine does not support the format.
type FileType struct {
	// Collection reports whether the container holds multiple faces.
	Collection bool

	// Count is the number of faces in the container; 1 for single fonts.
	Count uint32
}

// String returns "single font" or "collection of N fonts".
func (t FileType) String() string {
	if t.Collection {
		return fmt.Sprintf("collection of %d fonts", t.Count)
	}
	return "single font"
}

// Container magic numbers. Sniffing recognizes every format the native
// engines of the original platform backends accept, including bitmap and
// PostScript containers that the pure Go engines cannot open.
const (
	magicOpenType           = 0x4F54544F // 'OTTO'
	magicTrueType           = 0x00010000
	magicAppleTrueType      = 0x74727565 // 'true'
	magicAppleType1         = 0x74797031 // 'typ1'
	magicTrueTypeCollection = 0x74746366 // 'ttcf'
	magicWOFF               = 0x774F4646 // 'wOFF'
	magicWOFF2              = 0x774F4632 // 'wOF2'
	magicPCF                = 0x70636601 // '\x01fcp', little-endian on disk
	magicPFB                = 0x8001
)

// AnalyzeBytes determines whether a blob of raw font data represents a
// supported font container and, if so, whether it is a single font or a
// collection. Returns ErrUnrecognizedFormat for anything else.
func AnalyzeBytes(data []byte) (FileType, error) {
	if len(data) == 0 {
		return FileType{}, ErrEmptyFontData
	}
	if len(data) < 4 {
		return FileType{}, ErrUnrecognizedFormat
	}

	switch binary.BigEndian.Uint32(data) {
	case magicOpenType, magicTrueType, magicAppleTrueType, magicAppleType1:
		return FileType{Count: 1}, nil
	case magicWOFF, magicWOFF2:
		// The wrapped face count is behind the compressed payload, so a
		// WOFF stream is reported as a single-font container.
		return FileType{Count: 1}, nil
	case magicTrueTypeCollection:
		// The face count is the big-endian u32 at offset 8 of the ttcf
		// header (after the tag and version).
		if len(data) < 12 {
			return FileType{}, ErrUnrecognizedFormat
		}
		return FileType{Collection: true, Count: binary.BigEndian.Uint32(data[8:12])}, nil
	}

	// PCF stores its magic little-endian.
	if binary.LittleEndian.Uint32(data) == magicPCF {
		return FileType{Count: 1}, nil
	}
	// BDF is a text format starting with the STARTFONT keyword.
	if len(data) >= 9 && string(data[:9]) == "STARTFONT" {
		return FileType{Count: 1}, nil
	}
	// PFB segment header, or a bare PFA/Type 1 program.
	if binary.BigEndian.Uint16(data) == magicPFB {
		return FileType{Count: 1}, nil
	}
	if len(data) >= 2 && string(data[:2]) == "%!" {
		return FileType{Count: 1}, nil
	}

	return FileType{}, ErrUnrecognizedFormat
}

// AnalyzeFile determines whether a file represents a supported font
// container. Only the header is read; the file position is unchanged.
func AnalyzeFile(f *os.File) (FileType, error) {
	header := make([]byte, 16)
	n, err := f.ReadAt(header, 0)
	if n == 0 && err != nil {
		return FileType{}, fmt.Errorf("fontkit: failed to read font header: %w", err)
	}
	return AnalyzeBytes(header[:n])
}

// AnalyzePath determines whether the file at path represents a
// supported font container.
func AnalyzePath(path string) (FileType, error) {
	f, err := os.Open(path)
	if err != nil {
		return FileType{}, fmt.Errorf("fontkit: failed to open font file: %w", err)
	}
	defer f.Close()
	return AnalyzeFile(f)
}
