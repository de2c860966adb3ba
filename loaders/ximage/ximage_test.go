package ximage

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/fontkit"
)

func load(t *testing.T, data []byte) *Font {
	t.Helper()
	f, err := FromBytes(data, 0)
	if err != nil {
		t.Fatalf("FromBytes: %v", err)
	}
	return f
}

func TestFromBytesErrors(t *testing.T) {
	if _, err := FromBytes(nil, 0); !errors.Is(err, fontkit.ErrEmptyFontData) {
		t.Fatalf("empty: got %v", err)
	}
	if _, err := FromBytes([]byte("definitely not a font"), 0); !errors.Is(err, fontkit.ErrUnrecognizedFormat) {
		t.Fatalf("junk: got %v", err)
	}
	if _, err := FromBytes(goregular.TTF, 7); !errors.Is(err, fontkit.ErrNoSuchFontInCollection) {
		t.Fatalf("index 7 of single font: got %v", err)
	}
}

func TestNames(t *testing.T) {
	f := load(t, goregular.TTF)
	if fam := f.FamilyName(); !strings.Contains(fam, "Go") {
		t.Errorf("FamilyName = %q", fam)
	}
	if f.PostscriptName() == "" {
		t.Error("PostscriptName empty")
	}
	if f.FullName() == "" {
		t.Error("FullName empty")
	}
}

func TestPropertiesAndMonospace(t *testing.T) {
	regular := load(t, goregular.TTF)
	if p := regular.Properties(); p.Weight != fontkit.WeightNormal || p.Style != fontkit.StyleNormal {
		t.Errorf("regular properties = %v", p)
	}
	if p := load(t, gobold.TTF).Properties(); p.Weight != fontkit.WeightBold {
		t.Errorf("bold weight = %g", p.Weight)
	}
	if regular.IsMonospace() {
		t.Error("Go Regular reported monospace")
	}
	if !load(t, gomono.TTF).IsMonospace() {
		t.Error("Go Mono not reported monospace")
	}
}

func TestGlyphLookup(t *testing.T) {
	f := load(t, goregular.TTF)
	gid, ok := f.GlyphForChar('A')
	if !ok || gid == 0 {
		t.Fatalf("GlyphForChar('A') = %d, %v", gid, ok)
	}
	if _, ok := f.GlyphForChar(''); ok {
		t.Error("private use rune unexpectedly mapped")
	}
	if named, ok := f.GlyphByName("A"); ok && named != gid {
		t.Errorf("GlyphByName(A) = %d, want %d", named, gid)
	}
}

func TestOutline(t *testing.T) {
	f := load(t, goregular.TTF)
	gid, _ := f.GlyphForChar('A')

	var outline fontkit.Outline
	if err := f.Outline(gid, fontkit.HintingOptions{}, &outline); err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if outline.IsEmpty() {
		t.Fatal("empty outline for 'A'")
	}
	// Font units, Y up: the glyph extends above the baseline.
	if b := outline.Bounds(); b.MaxY <= 0 {
		t.Fatalf("outline not above baseline: %+v", b)
	}

	if err := f.Outline(f.GlyphCount(), fontkit.HintingOptions{}, &outline); !errors.Is(err, fontkit.ErrNoSuchGlyph) {
		t.Fatalf("bad glyph: got %v", err)
	}
	hinted := fontkit.HintingOptions{Mode: fontkit.HintingVertical, PointSize: 12}
	if err := f.Outline(gid, hinted, &outline); !errors.Is(err, fontkit.ErrUnsupportedHinting) {
		t.Fatalf("hinted: got %v", err)
	}
	if f.SupportsHintingOptions(hinted, false) {
		t.Error("vertical hinting reported as supported")
	}
}

func TestAdvanceAndBounds(t *testing.T) {
	f := load(t, goregular.TTF)
	gid, _ := f.GlyphForChar('M')

	adv, err := f.Advance(gid)
	if err != nil || adv.X <= 0 || adv.Y != 0 {
		t.Fatalf("Advance = %+v, %v", adv, err)
	}
	bounds, err := f.TypographicBounds(gid)
	if err != nil {
		t.Fatalf("TypographicBounds: %v", err)
	}
	if bounds.Width() <= 0 || bounds.MaxY <= 0 {
		t.Fatalf("bounds = %+v", bounds)
	}
	if origin, err := f.Origin(gid); err != nil || origin != (fontkit.Vector{}) {
		t.Fatalf("Origin = %+v, %v", origin, err)
	}
}

func TestMetrics(t *testing.T) {
	m := load(t, goregular.TTF).Metrics()
	if m.UnitsPerEm == 0 {
		t.Fatal("UnitsPerEm = 0")
	}
	if m.Ascent <= 0 {
		t.Errorf("Ascent = %g", m.Ascent)
	}
	if m.Descent >= 0 {
		t.Errorf("Descent = %g, want negative", m.Descent)
	}
	if m.UnderlineThickness == 0 {
		t.Error("UnderlineThickness = 0")
	}
}

func TestRasterizeGlyph(t *testing.T) {
	f := load(t, goregular.TTF)
	gid, _ := f.GlyphForChar('A')

	canvas := fontkit.NewCanvas(32, 32, fontkit.FormatA8)
	transform := fontkit.Translate(2, 6)
	if err := f.RasterizeGlyph(canvas, gid, 24, transform, fontkit.HintingOptions{}, fontkit.RasterGrayscaleAA); err != nil {
		t.Fatalf("RasterizeGlyph: %v", err)
	}
	covered := false
	for _, a := range canvas.Pixels {
		if a > 0 {
			covered = true
			break
		}
	}
	if !covered {
		t.Fatal("rasterization produced no coverage")
	}

	bounds, err := f.RasterBounds(gid, 24, transform, fontkit.HintingOptions{}, fontkit.RasterGrayscaleAA)
	if err != nil || bounds.Empty() {
		t.Fatalf("RasterBounds = %v, %v", bounds, err)
	}
}

func TestHandleAndData(t *testing.T) {
	f := load(t, goregular.TTF)
	h, ok := f.Handle()
	if !ok || !h.IsMemory() {
		t.Fatalf("Handle = %+v, %v", h, ok)
	}
	reloaded, err := FromHandle(h)
	if err != nil {
		t.Fatalf("FromHandle: %v", err)
	}
	if reloaded.FamilyName() != f.FamilyName() {
		t.Fatal("reload changed identity")
	}
	if cmap, ok := f.FontTable(fontkit.MakeTag('c', 'm', 'a', 'p')); !ok || len(cmap) == 0 {
		t.Fatal("cmap table missing")
	}
}

func TestFallbacksCoveredText(t *testing.T) {
	res := load(t, goregular.TTF).Fallbacks("sample", "")
	if res.ValidLen != len("sample") || len(res.Fonts) != 0 {
		t.Fatalf("FallbackResult = %+v", res)
	}
}

func TestFromNative(t *testing.T) {
	f := load(t, goregular.TTF)
	nf := FromNative(f.NativeFont())

	if nf.GlyphCount() != f.GlyphCount() {
		t.Fatalf("GlyphCount = %d, want %d", nf.GlyphCount(), f.GlyphCount())
	}
	if nf.FamilyName() != f.FamilyName() {
		t.Fatalf("FamilyName = %q, want %q", nf.FamilyName(), f.FamilyName())
	}
	ga, ok := nf.GlyphForChar('A')
	if !ok || ga == 0 {
		t.Fatalf("GlyphForChar('A') = %d, %v", ga, ok)
	}
	var outline fontkit.Outline
	if err := nf.Outline(ga, fontkit.HintingOptions{}, &outline); err != nil {
		t.Fatalf("Outline: %v", err)
	}
	if outline.IsEmpty() {
		t.Fatal("empty outline from native-wrapped font")
	}

	// Nothing but the engine object is retained.
	if _, ok := nf.Handle(); ok {
		t.Fatal("Handle() should report absence")
	}
	if _, ok := nf.CopyFontData(); ok {
		t.Fatal("CopyFontData() should report absence")
	}
	if _, ok := nf.FontTable(fontkit.MakeTag('c', 'm', 'a', 'p')); ok {
		t.Fatal("FontTable() should report absence")
	}
}

func TestOutlineReuse(t *testing.T) {
	f := load(t, goregular.TTF)
	g, ok := f.GlyphForChar('A')
	if !ok {
		t.Fatal("no glyph for 'A'")
	}

	o1, err := f.cachedOutline(g, fontkit.HintingOptions{})
	if err != nil {
		t.Fatalf("cachedOutline: %v", err)
	}
	o2, err := f.cachedOutline(g, fontkit.HintingOptions{})
	if err != nil {
		t.Fatalf("cachedOutline: %v", err)
	}
	if o1 != o2 {
		t.Fatal("second extraction was not served from the cache")
	}
	if hits, _ := f.outlines.Stats(); hits == 0 {
		t.Fatal("outline cache recorded no hits")
	}

	// Clones share the cache, so a clone reuses the same outline.
	o3, err := f.Clone().cachedOutline(g, fontkit.HintingOptions{})
	if err != nil {
		t.Fatalf("clone cachedOutline: %v", err)
	}
	if o3 != o1 {
		t.Fatal("clone extracted a fresh outline")
	}

	// Rasterization goes through the same memo.
	canvas := fontkit.NewCanvas(16, 16, fontkit.FormatA8)
	if err := f.RasterizeGlyph(canvas, g, 12, fontkit.Translate(1, 13), fontkit.HintingOptions{}, fontkit.RasterGrayscaleAA); err != nil {
		t.Fatalf("RasterizeGlyph: %v", err)
	}
	if f.outlines.Len() != 1 {
		t.Fatalf("cache holds %d outlines, want 1", f.outlines.Len())
	}
}
