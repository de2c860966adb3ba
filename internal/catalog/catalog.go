// Package catalog wraps the platform font scan shared by the engine
// backends. Scanning walks the system font directories once per
// process and persists an index in the user cache directory.
package catalog

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/fontkit"
)

var (
	once       sync.Once
	footprints []fontscan.Footprint
)

// CacheDir returns the directory used to persist the font index.
func CacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "fontkit")
}

// Footprints returns the footprints of every installed system font.
// The scan runs once; later calls return the cached slice. Callers
// must not mutate the result.
func Footprints() []fontscan.Footprint {
	once.Do(func() {
		fps, err := fontscan.SystemFonts(nil, CacheDir())
		if err != nil {
			fontkit.Logger().Warn("system font scan failed", "err", err)
			return
		}
		footprints = fps
	})
	return footprints
}

// Covers reports whether a footprint's character coverage includes
// every rune in runes.
func Covers(fp fontscan.Footprint, runes []rune) bool {
	for _, r := range runes {
		if !fp.Runes.Contains(r) {
			return false
		}
	}
	return true
}

// Properties converts a footprint's aspect to portable font properties.
func Properties(fp fontscan.Footprint) fontkit.Properties {
	p := fontkit.DefaultProperties()
	if fp.Aspect.Style == font.StyleItalic {
		p.Style = fontkit.StyleItalic
	}
	if fp.Aspect.Weight != 0 {
		p.Weight = fontkit.Weight(fp.Aspect.Weight)
	}
	if fp.Aspect.Stretch != 0 {
		p.Stretch = fontkit.Stretch(fp.Aspect.Stretch)
	}
	return p
}
