package ximage

import (
	"fmt"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/cache"
	"github.com/gogpu/fontkit/internal/catalog"
)

const maxFallbacks = 8

var fallbackFaces = cache.NewSharded[string, *Font](16, cache.StringHasher)

// Fallbacks suggests system fonts able to render text that this font
// cannot cover. locale is accepted for interface compatibility; this
// engine ranks candidates by style alone.
func (f *Font) Fallbacks(text string, locale string) *fontkit.FallbackResult {
	result := &fontkit.FallbackResult{ValidLen: len(text)}

	var missing []rune
	for _, r := range text {
		if _, ok := f.GlyphForChar(r); !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return result
	}

	props := f.Properties()
	seen := make(map[string]bool)
	for _, fp := range catalog.Footprints() {
		if seen[fp.Family] {
			continue
		}
		if !catalog.Covers(fp, missing) {
			continue
		}
		seen[fp.Family] = true

		key := fmt.Sprintf("%s#%d", fp.Location.File, fp.Location.Index)
		face, err := fallbackFaces.GetOrLoad(key, func() (*Font, error) {
			return FromPath(fp.Location.File, uint32(fp.Location.Index))
		})
		if err != nil {
			// The catalog may index formats this engine cannot parse.
			fontkit.Logger().Debug("fallback font skipped",
				"file", fp.Location.File, "err", err)
			continue
		}
		result.Fonts = append(result.Fonts, fontkit.FallbackFont{
			Font:        face,
			ScaleFactor: 1,
		})
		if len(result.Fonts) >= maxFallbacks {
			break
		}
	}

	if len(result.Fonts) > 1 {
		candidates := make([]fontkit.Properties, len(result.Fonts))
		for i, ff := range result.Fonts {
			candidates[i] = ff.Font.Properties()
		}
		if best, ok := fontkit.Match(candidates, props); ok && best > 0 {
			result.Fonts[0], result.Fonts[best] = result.Fonts[best], result.Fonts[0]
		}
	}
	return result
}
