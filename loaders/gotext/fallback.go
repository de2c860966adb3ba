package gotext

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/cache"
	"github.com/gogpu/fontkit/internal/catalog"
)

// maxFallbacks bounds the number of fonts suggested per query.
const maxFallbacks = 8

// fallbackFaces memoizes fallback fonts across queries so a page of
// mixed-script text does not reparse the same files repeatedly.
var fallbackFaces = cache.NewSharded[string, *Font](16, cache.StringHasher)

// Fallbacks suggests system fonts able to render text that this font
// cannot cover. locale is a BCP 47 tag and may be empty. The result
// applies to the whole query text.
func (f *Font) Fallbacks(text string, locale string) *fontkit.FallbackResult {
	result := &fontkit.FallbackResult{ValidLen: len(text)}

	// Runes the primary font cannot map are the ones a fallback must
	// cover.
	var missing []rune
	for _, r := range text {
		if _, ok := f.GlyphForChar(r); !ok {
			missing = append(missing, r)
		}
	}
	if len(missing) == 0 {
		return result
	}

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
			fontkit.Logger().Warn("fallback font unreadable",
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

	// Rank by closeness to the primary font's style, then let the
	// locale preference win for CJK families where the same code points
	// are shared across languages.
	sortFallbacks(result.Fonts, f.Properties())
	preferLocaleFamily(result.Fonts, locale)
	return result
}

// localeFamilyHints maps base languages to substrings of family names
// that should win for that language. Han unification means Chinese,
// Japanese and Korean text maps to the same code points; the locale is
// the only way to pick the right regional design.
var localeFamilyHints = map[string][]string{
	"zh": {"SC", "TC", "CJK"},
	"ja": {"JP", "CJK"},
	"ko": {"KR", "CJK"},
}

// preferLocaleFamily moves the first candidate whose family matches the
// locale's preferred naming to the front.
func preferLocaleFamily(fonts []fontkit.FallbackFont, locale string) {
	if len(fonts) < 2 || locale == "" {
		return
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return
	}
	base, _ := tag.Base()
	hints, ok := localeFamilyHints[base.String()]
	if !ok {
		return
	}
	for i, ff := range fonts {
		family := ff.Font.FamilyName()
		for _, hint := range hints {
			if strings.Contains(family, hint) {
				fonts[0], fonts[i] = fonts[i], fonts[0]
				return
			}
		}
	}
}

// sortFallbacks orders candidates so that faces matching the primary
// font's properties come first, using the same rules as font selection.
func sortFallbacks(fonts []fontkit.FallbackFont, query fontkit.Properties) {
	if len(fonts) < 2 {
		return
	}
	candidates := make([]fontkit.Properties, len(fonts))
	for i, ff := range fonts {
		candidates[i] = ff.Font.Properties()
	}
	if best, ok := fontkit.Match(candidates, query); ok && best > 0 {
		fonts[0], fonts[best] = fonts[best], fonts[0]
	}
}
