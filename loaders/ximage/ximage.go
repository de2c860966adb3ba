// Package ximage implements font loading on top of the
// golang.org/x/image/font/sfnt engine. It handles TrueType and
// OpenType fonts and collections, including CFF outlines, but not
// variable font instancing.
package ximage

import (
	"fmt"
	"os"

	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/cache"
	"github.com/gogpu/fontkit/internal/tables"
)

// Font is a single face loaded by the x/image sfnt engine.
//
// The sfnt working buffer is per-Font state, so a Font must not be
// used from multiple goroutines at once. Use Clone to hand an
// independent view to another goroutine.
type Font struct {
	font  *sfnt.Font
	buf   sfnt.Buffer
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

	var parsed *sfnt.Font
	if ft.Collection {
		coll, err := sfnt.ParseCollection(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", fontkit.ErrUnrecognizedFormat, err)
		}
		if index >= uint32(coll.NumFonts()) {
			return nil, fontkit.ErrNoSuchFontInCollection
		}
		parsed, err = coll.Font(int(index))
		if err != nil {
			return nil, fmt.Errorf("%w: %v", fontkit.ErrUnrecognizedFormat, err)
		}
	} else {
		if index != 0 {
			return nil, fontkit.ErrNoSuchFontInCollection
		}
		parsed, err = sfnt.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", fontkit.ErrUnrecognizedFormat, err)
		}
	}

	f := &Font{font: parsed, data: data, index: index, outlines: newOutlineCache()}
	if sf, err := tables.Parse(data, int(index)); err == nil {
		f.sfnt = sf
		f.names = tables.DecodeNames(sf)
	} else {
		fontkit.Logger().Warn("font table directory unreadable", "index", index, "err", err)
	}
	return f, nil
}

// FromFile loads the font at index from an open file.
func FromFile(file *os.File, index uint32) (*Font, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("fontkit: failed to stat font file: %w", err)
	}
	data := make([]byte, info.Size())
	if _, err := file.ReadAt(data, 0); err != nil {
		return nil, fmt.Errorf("fontkit: failed to read font file: %w", err)
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
// re-validated. No byte buffer is retained, so Handle, CopyFontData,
// FontTable and glyph-name queries report absence.
func FromNative(nf *sfnt.Font) *Font {
	return &Font{font: nf, outlines: newOutlineCache()}
}

// Clone returns an independent view of the same font with its own
// working buffer.
func (f *Font) Clone() *Font {
	clone := *f
	clone.buf = sfnt.Buffer{}
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
	if name, err := f.font.Name(&f.buf, sfnt.NameIDPostScript); err == nil {
		return name
	}
	return f.names.PostScript
}

// FullName returns the full display name, falling back to the family
// name.
func (f *Font) FullName() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return f.FamilyName()
}

// FamilyName returns the family name.
func (f *Font) FamilyName() string {
	if name, err := f.font.Name(&f.buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	return f.names.Family
}

// IsMonospace reports whether the post table declares fixed pitch.
func (f *Font) IsMonospace() bool {
	if pt := f.font.PostTable(); pt != nil {
		return pt.IsFixedPitch
	}
	if f.sfnt == nil {
		return false
	}
	p, ok := tables.DecodePost(f.sfnt)
	return ok && p.IsFixedPitch
}

// GlyphCount returns the number of glyphs in the font.
func (f *Font) GlyphCount() uint32 {
	return uint32(f.font.NumGlyphs())
}

// GlyphForChar maps a code point through the cmap. Code points that
// map to the .notdef glyph report false.
func (f *Font) GlyphForChar(r rune) (fontkit.GlyphID, bool) {
	idx, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return fontkit.GlyphID(idx), true
}

// GlyphByName maps a PostScript glyph name to a glyph, using the
// version 2.0 post table.
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
// with x/image text drawing.
func (f *Font) NativeFont() *sfnt.Font {
	return f.font
}

func (f *Font) validGlyph(glyph fontkit.GlyphID) error {
	if glyph >= f.GlyphCount() {
		return fontkit.ErrNoSuchGlyph
	}
	return nil
}

var _ fontkit.Face = (*Font)(nil)
