package tables

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func parse(t *testing.T, data []byte) *Font {
	t.Helper()
	f, err := Parse(data, 0)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return f
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("junk"), 0); err != ErrInvalid {
		t.Fatalf("junk: got %v, want ErrInvalid", err)
	}
	if _, err := Parse(goregular.TTF, 1); err != ErrIndex {
		t.Fatalf("index 1 of single font: got %v, want ErrIndex", err)
	}
	if n := NumFonts(goregular.TTF); n != 1 {
		t.Fatalf("NumFonts = %d, want 1", n)
	}
}

func TestDirectory(t *testing.T) {
	f := parse(t, goregular.TTF)
	for _, tag := range []uint32{TagName, TagPost, TagOS2, TagMaxp, TagHead} {
		if _, ok := f.Table(tag); !ok {
			t.Errorf("table %08x missing", tag)
		}
	}
	if _, ok := f.Table(0x12345678); ok {
		t.Error("bogus tag found")
	}
	if f.NumGlyphs() == 0 {
		t.Error("NumGlyphs = 0")
	}
	if f.UnitsPerEm() == 0 {
		t.Error("UnitsPerEm = 0")
	}
}

func TestDecodeNames(t *testing.T) {
	n := DecodeNames(parse(t, goregular.TTF))
	if n.Family == "" || n.Full == "" || n.PostScript == "" {
		t.Fatalf("missing names: %+v", n)
	}
}

func TestDecodePost(t *testing.T) {
	p, ok := DecodePost(parse(t, gomono.TTF))
	if !ok {
		t.Fatal("post table missing")
	}
	if !p.IsFixedPitch {
		t.Error("Go Mono not reported fixed pitch")
	}
	if p.UnderlineThickness == 0 {
		t.Error("UnderlineThickness = 0")
	}
}

func TestGlyphNames(t *testing.T) {
	names := GlyphNames(parse(t, goregular.TTF))
	if names == nil {
		t.Skip("font carries no post v2 glyph names")
	}
	if _, ok := names["A"]; !ok {
		t.Error(`glyph name "A" not found`)
	}
}

func TestDecodeOS2(t *testing.T) {
	o, ok := DecodeOS2(parse(t, goregular.TTF))
	if !ok {
		t.Fatal("OS/2 table missing")
	}
	if o.WeightClass != 400 {
		t.Errorf("WeightClass = %d, want 400", o.WeightClass)
	}
	if o.Italic || o.Bold {
		t.Errorf("regular face flagged italic=%v bold=%v", o.Italic, o.Bold)
	}
	if o.Stretch() != 1.0 {
		t.Errorf("Stretch = %g, want 1", o.Stretch())
	}
	if o.TypoAscender <= 0 || o.TypoDescender >= 0 {
		t.Errorf("typo metrics: asc=%d desc=%d", o.TypoAscender, o.TypoDescender)
	}
}
