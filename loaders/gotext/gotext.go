// Package gotext implements font loading on top of the
// go-text/typesetting engine. It is the default engine: it parses
// TrueType and OpenType fonts and collections, including variable
// fonts, entirely in Go.
package gotext

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/cache"
	"github.com/gogpu/fontkit/internal/tables"
)

// Font is a single face loaded by the go-text engine.
//
// The parsed font data is immutable and shared between clones; the
// per-Font glyph caches are not, so a Font must not be used from
// multiple goroutines at once. Use Clone to hand an independent view
// to another goroutine.
type Font struct {
	face  *font.Face
	data  []byte
	path  string
	index uint32

	sfnt  *tables.Font
	names tables.Names

	glyphNames map[string]uint32
	namesBuilt bool

	// outlines memoizes extracted glyph outlines. The recorded outlines
	// are immutable, so the cache is shared between clones.
	outlines *cache.Sharded[fontkit.GlyphID, *fontkit.Outline]
}

// FromBytes loads the font at index from raw font data. The data is
// retained, not copied.
func FromBytes(data []byte, index uint32) (*Font, error) {
	ft, err := fontkit.AnalyzeBytes(data)
	if err != nil {
		return nil, err
	}

	var face *font.Face
	if ft.Collection {
		faces, err := font.ParseTTC(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", fontkit.ErrUnrecognizedFormat, err)
		}
		if index >= uint32(len(faces)) {
			return nil, fontkit.ErrNoSuchFontInCollection
		}
		face = faces[index]
	} else {
		if index != 0 {
			return nil, fontkit.ErrNoSuchFontInCollection
		}
		face, err = font.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", fontkit.ErrUnrecognizedFormat, err)
		}
	}

	f := &Font{face: face, data: data, index: index, outlines: newOutlineCache()}
	// The raw table directory backs name lookups and FontTable. A
	// failure here is not fatal: the engine parsed the font, so the
	// descriptive queries just degrade to their defaults.
	if sf, err := tables.Parse(data, int(index)); err == nil {
		f.sfnt = sf
		f.names = tables.DecodeNames(sf)
	} else {
		fontkit.Logger().Warn("font table directory unreadable", "index", index, "err", err)
	}
	return f, nil
}

// FromFile loads the font at index from an open file. The file is read
// eagerly; the caller keeps ownership of the handle.
func FromFile(file *os.File, index uint32) (*Font, error) {
	data, err := readAll(file)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, index)
}

// FromPath loads the font at index from the file at path.
func FromPath(path string, index uint32) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fontkit: failed to read font file: %w", err)
	}
	f, err := FromBytes(data, index)
	if err != nil {
		return nil, err
	}
	f.path = path
	return f, nil
}

// FromHandle loads the font a handle points to.
func FromHandle(h fontkit.Handle) (*Font, error) {
	if h.IsMemory() {
		return FromBytes(h.Bytes, h.Index)
	}
	return FromPath(h.Path, h.Index)
}

// FromNative wraps an already-parsed engine font. The caller keeps
// whatever guarantees the engine object's validity; nothing is
// re-validated. No byte buffer or table directory is retained, so
// Handle, CopyFontData, FontTable and glyph-name queries report
// absence and GlyphCount reports zero.
func FromNative(nf *font.Font) *Font {
	return &Font{face: font.NewFace(nf), outlines: newOutlineCache()}
}

// Clone returns an independent view of the same font. The underlying
// parsed data and the outline cache are shared; the clone gets its own
// name caches and is safe to use from another goroutine.
func (f *Font) Clone() *Font {
	clone := *f
	clone.face = font.NewFace(f.face.Font)
	clone.glyphNames = nil
	clone.namesBuilt = false
	return &clone
}

// AnalyzeBytes determines whether raw data is a font the engine could
// load and whether it is a collection.
func AnalyzeBytes(data []byte) (fontkit.FileType, error) {
	return fontkit.AnalyzeBytes(data)
}

// AnalyzeFile determines whether an open file is a loadable font.
func AnalyzeFile(file *os.File) (fontkit.FileType, error) {
	return fontkit.AnalyzeFile(file)
}

// AnalyzePath determines whether the file at path is a loadable font.
func AnalyzePath(path string) (fontkit.FileType, error) {
	return fontkit.AnalyzePath(path)
}

// PostscriptName returns the PostScript name from the name table.
func (f *Font) PostscriptName() string {
	return f.names.PostScript
}

// FullName returns the full display name, falling back to the family
// name.
func (f *Font) FullName() string {
	if f.names.Full != "" {
		return f.names.Full
	}
	return f.FamilyName()
}

// FamilyName returns the family name the engine reports.
func (f *Font) FamilyName() string {
	if family := f.face.Describe().Family; family != "" {
		return family
	}
	return f.names.Family
}

// IsMonospace reports whether the post table declares fixed pitch.
func (f *Font) IsMonospace() bool {
	if f.sfnt == nil {
		return false
	}
	p, ok := tables.DecodePost(f.sfnt)
	return ok && p.IsFixedPitch
}

// GlyphCount returns the number of glyphs in the font.
func (f *Font) GlyphCount() uint32 {
	if f.sfnt == nil {
		return 0
	}
	return uint32(f.sfnt.NumGlyphs())
}

// GlyphForChar maps a code point through the cmap.
func (f *Font) GlyphForChar(r rune) (fontkit.GlyphID, bool) {
	gid, ok := f.face.NominalGlyph(r)
	return fontkit.GlyphID(gid), ok
}

// GlyphByName maps a PostScript glyph name to a glyph, using the
// version 2.0 post table. Fonts without glyph names report false.
func (f *Font) GlyphByName(name string) (fontkit.GlyphID, bool) {
	if !f.namesBuilt {
		f.namesBuilt = true
		if f.sfnt != nil {
			f.glyphNames = tables.GlyphNames(f.sfnt)
		}
	}
	gid, ok := f.glyphNames[name]
	return gid, ok
}

// Handle returns a handle that reloads this font.
func (f *Font) Handle() (fontkit.Handle, bool) {
	if f.path != "" {
		return fontkit.NewPathHandle(f.path, f.index), true
	}
	if f.data != nil {
		return fontkit.NewMemoryHandle(f.data, f.index), true
	}
	return fontkit.Handle{}, false
}

// CopyFontData returns a copy of the raw font file bytes.
func (f *Font) CopyFontData() ([]byte, bool) {
	if f.data == nil {
		return nil, false
	}
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, true
}

// FontTable returns the raw bytes of an OpenType table.
func (f *Font) FontTable(tag fontkit.Tag) ([]byte, bool) {
	if f.sfnt == nil {
		return nil, false
	}
	return f.sfnt.Table(uint32(tag))
}

// NativeFont exposes the engine's parsed font for interoperability
// with go-text shaping.
func (f *Font) NativeFont() *font.Font {
	return f.face.Font
}

func (f *Font) validGlyph(glyph fontkit.GlyphID) error {
	if f.sfnt == nil {
		// No table directory (native-wrapped font): the glyph count is
		// unknown, so range misses surface as empty engine results.
		return nil
	}
	if n := f.GlyphCount(); glyph >= n {
		return fontkit.ErrNoSuchGlyph
	}
	return nil
}

func readAll(file *os.File) ([]byte, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("fontkit: failed to stat font file: %w", err)
	}
	data := make([]byte, info.Size())
	if _, err := file.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("fontkit: failed to read font file: %w", err)
	}
	return data, nil
}

var _ fontkit.Face = (*Font)(nil)

// gid converts a portable glyph ID to the engine's type.
func gid(glyph fontkit.GlyphID) ot.GID {
	return ot.GID(glyph)
}
