package gotext

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
	if _, err := FromBytes(goregular.TTF, 3); !errors.Is(err, fontkit.ErrNoSuchFontInCollection) {
		t.Fatalf("index 3 of single font: got %v", err)
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

func TestProperties(t *testing.T) {
	regular := load(t, goregular.TTF).Properties()
	if regular.Style != fontkit.StyleNormal || regular.Weight != fontkit.WeightNormal {
		t.Errorf("regular properties = %v", regular)
	}
	bold := load(t, gobold.TTF).Properties()
	if bold.Weight != fontkit.WeightBold {
		t.Errorf("bold weight = %g", bold.Weight)
	}
}

func TestIsMonospace(t *testing.T) {
	if load(t, goregular.TTF).IsMonospace() {
		t.Error("Go Regular reported monospace")
	}
	if !load(t, gomono.TTF).IsMonospace() {
		t.Error("Go Mono not reported monospace")
	}
}

func TestGlyphLookup(t *testing.T) {
	f := load(t, goregular.TTF)
	if f.GlyphCount() == 0 {
		t.Fatal("GlyphCount = 0")
	}
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
	b := outline.Bounds()
	if b.Width() <= 0 || b.Height() <= 0 {
		t.Fatalf("degenerate outline bounds %+v", b)
	}
	// Font units, Y up: the glyph sits on or above the baseline.
	if b.MaxY <= 0 {
		t.Fatalf("outline below baseline: %+v", b)
	}
}

func TestOutlineErrors(t *testing.T) {
	f := load(t, goregular.TTF)
	var sink fontkit.Outline
	if err := f.Outline(f.GlyphCount()+10, fontkit.HintingOptions{}, &sink); !errors.Is(err, fontkit.ErrNoSuchGlyph) {
		t.Fatalf("bad glyph: got %v", err)
	}
	gid, _ := f.GlyphForChar('A')
	opts := fontkit.HintingOptions{Mode: fontkit.HintingFull, PointSize: 12}
	if err := f.Outline(gid, opts, &sink); !errors.Is(err, fontkit.ErrUnsupportedHinting) {
		t.Fatalf("hinted: got %v", err)
	}
	if f.SupportsHintingOptions(opts, true) {
		t.Error("full hinting reported as supported")
	}
	if !f.SupportsHintingOptions(fontkit.HintingOptions{}, true) {
		t.Error("unhinted loading reported as unsupported")
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
	if err != nil || bounds.Width() <= 0 {
		t.Fatalf("TypographicBounds = %+v, %v", bounds, err)
	}
	origin, err := f.Origin(gid)
	if err != nil || origin != (fontkit.Vector{}) {
		t.Fatalf("Origin = %+v, %v", origin, err)
	}
	if _, err := f.Advance(f.GlyphCount()); !errors.Is(err, fontkit.ErrNoSuchGlyph) {
		t.Fatalf("bad glyph advance: got %v", err)
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
	if m.LineHeight() <= 0 {
		t.Errorf("LineHeight = %g", m.LineHeight())
	}
}

func TestRasterizeGlyph(t *testing.T) {
	f := load(t, goregular.TTF)
	gid, _ := f.GlyphForChar('A')

	const size = 32
	canvas := fontkit.NewCanvas(size, size, fontkit.FormatA8)
	// Place the baseline near the bottom of the canvas.
	transform := fontkit.Translate(2, 6)
	err := f.RasterizeGlyph(canvas, gid, 24, transform, fontkit.HintingOptions{}, fontkit.RasterGrayscaleAA)
	if err != nil {
		t.Fatalf("RasterizeGlyph: %v", err)
	}
	covered := 0
	for _, a := range canvas.Pixels {
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Fatal("rasterization produced no coverage")
	}

	bounds, err := f.RasterBounds(gid, 24, transform, fontkit.HintingOptions{}, fontkit.RasterGrayscaleAA)
	if err != nil {
		t.Fatalf("RasterBounds: %v", err)
	}
	if bounds.Empty() {
		t.Fatal("empty raster bounds")
	}
}

func TestHandleRoundTrip(t *testing.T) {
	f := load(t, goregular.TTF)
	h, ok := f.Handle()
	if !ok || !h.IsMemory() {
		t.Fatalf("Handle = %+v, %v", h, ok)
	}
	reloaded, err := FromHandle(h)
	if err != nil {
		t.Fatalf("FromHandle: %v", err)
	}
	if reloaded.PostscriptName() != f.PostscriptName() {
		t.Fatalf("reload changed identity: %q vs %q", reloaded.PostscriptName(), f.PostscriptName())
	}

	data, ok := f.CopyFontData()
	if !ok || len(data) != len(goregular.TTF) {
		t.Fatalf("CopyFontData: ok=%v len=%d", ok, len(data))
	}
	data[0] = 0xFF
	if goregular.TTF[0] == 0xFF {
		t.Fatal("CopyFontData returned shared storage")
	}
}

func TestFontTable(t *testing.T) {
	f := load(t, goregular.TTF)
	cmap, ok := f.FontTable(fontkit.MakeTag('c', 'm', 'a', 'p'))
	if !ok || len(cmap) == 0 {
		t.Fatalf("cmap table: ok=%v len=%d", ok, len(cmap))
	}
	if _, ok := f.FontTable(fontkit.MakeTag('Z', 'Z', 'Z', 'Z')); ok {
		t.Error("bogus table found")
	}
}

func TestClone(t *testing.T) {
	f := load(t, goregular.TTF)
	clone := f.Clone()
	if clone.FamilyName() != f.FamilyName() {
		t.Fatal("clone names differ")
	}
	ga, _ := f.GlyphForChar('A')
	gb, _ := clone.GlyphForChar('A')
	if ga != gb {
		t.Fatal("clone cmap differs")
	}
}

func TestFallbacksCoveredText(t *testing.T) {
	f := load(t, goregular.TTF)
	res := f.Fallbacks("hello", "en")
	if res.ValidLen != len("hello") {
		t.Fatalf("ValidLen = %d", res.ValidLen)
	}
	// Fully covered text needs no fallback fonts.
	if len(res.Fonts) != 0 {
		t.Fatalf("got %d fallbacks for covered text", len(res.Fonts))
	}
}

func TestFromNative(t *testing.T) {
	f := load(t, goregular.TTF)
	nf := FromNative(f.NativeFont())

	if nf.FamilyName() != f.FamilyName() {
		t.Fatalf("FamilyName = %q, want %q", nf.FamilyName(), f.FamilyName())
	}
	if got, want := nf.Metrics().UnitsPerEm, f.Metrics().UnitsPerEm; got != want {
		t.Fatalf("UnitsPerEm = %d, want %d", got, want)
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
