// Command fontls lists installed fonts and inspects font files.
//
// With no arguments it prints every font family the system source
// knows about. Given file paths it loads each font and prints its
// names, properties and metrics.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loaders"
	"github.com/gogpu/fontkit/sources"
)

func main() {
	var (
		family   = flag.String("family", "", "list the faces of one family")
		postName = flag.String("ps", "", "look up a font by PostScript name")
		verbose  = flag.Bool("v", false, "log font scanning problems")
	)
	flag.Parse()

	if *verbose {
		fontkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	switch {
	case flag.NArg() > 0:
		for _, path := range flag.Args() {
			if err := inspect(path); err != nil {
				log.Fatalf("%s: %v", path, err)
			}
		}
	case *postName != "":
		h, err := sources.System().SelectByPostScriptName(*postName)
		if err != nil {
			log.Fatalf("%s: %v", *postName, err)
		}
		fmt.Println(h)
	case *family != "":
		listFamily(*family)
	default:
		listFamilies()
	}
}

func listFamilies() {
	families, err := sources.System().AllFamilies()
	if err != nil {
		log.Fatalf("font scan failed: %v", err)
	}
	for _, f := range families {
		fmt.Println(f)
	}
}

func listFamily(name string) {
	fam, err := sources.System().SelectFamilyByName(name)
	if err != nil {
		log.Fatalf("%s: %v", name, err)
	}
	for _, h := range fam.Fonts() {
		face, err := loaders.Load(h)
		if err != nil {
			log.Printf("%s: %v", h, err)
			continue
		}
		fmt.Printf("%s\t%s\t%s\n", face.FullName(), face.Properties(), h)
	}
}

func inspect(path string) error {
	ft, err := fontkit.AnalyzePath(path)
	if err != nil {
		return err
	}
	count := uint32(1)
	if ft.Collection {
		count = ft.Count
	}
	for i := uint32(0); i < count; i++ {
		face, err := loaders.FromPath(path, i)
		if err != nil {
			return err
		}
		m := face.Metrics()
		fmt.Printf("%s [%d] %s\n", path, i, ft)
		fmt.Printf("  family:     %s\n", face.FamilyName())
		fmt.Printf("  full name:  %s\n", face.FullName())
		fmt.Printf("  postscript: %s\n", face.PostscriptName())
		fmt.Printf("  properties: %s\n", face.Properties())
		fmt.Printf("  monospace:  %v\n", face.IsMonospace())
		fmt.Printf("  glyphs:     %d\n", face.GlyphCount())
		fmt.Printf("  metrics:    %d upem, ascent %.0f, descent %.0f, line gap %.0f\n",
			m.UnitsPerEm, m.Ascent, m.Descent, m.LineGap)
	}
	return nil
}
