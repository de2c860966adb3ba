// Package fontkit provides a uniform interface for locating, loading,
// querying and rasterizing fonts.
//
// The package itself defines the value types (Handle, FamilyHandle,
// Properties, Metrics, FileType, Canvas) and the Face capability
// interface. Concrete font engines live in subpackages:
//
//   - loaders/gotext delegates to github.com/go-text/typesetting
//   - loaders/ximage delegates to golang.org/x/image/font/sfnt
//
// Exactly one of them is wired as the default at build time; the
// loaders package re-exports the default set of constructors. Catalogs
// of installed fonts are provided by the sources package.
//
// # Design
//
// A caller obtains a Handle (from a sources.Source, or by constructing
// one directly), opens it through a loader to get a live Face, and then
// queries metrics and properties or requests outline and rasterization
// output, supplying an OutlineSink or Canvas as the output collector.
//
// The error policy is deliberately two-tiered: descriptive metadata
// queries (names, properties, metrics) never fail and degrade to
// defaults, while glyph-indexed operations return an error for an
// out-of-range glyph ID or an unsupported hinting mode.
//
// # Example usage
//
//	face, err := loaders.FromPath("Roboto-Regular.ttf", 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(face.PostscriptName())
//
//	canvas := fontkit.NewCanvas(32, 32, fontkit.FormatA8)
//	gid, _ := face.GlyphForChar('A')
//	err = face.RasterizeGlyph(canvas, gid, 24,
//	    fontkit.Translate(4, 28), fontkit.HintingOptions{}, fontkit.RasterGrayscaleAA)
package fontkit
