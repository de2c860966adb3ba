// Package sources enumerates and queries font catalogs: system font
// databases, directories, and in-memory collections. A Source answers
// lookups with handles; loading the selected font is the loaders
// package's job.
package sources

import (
	"errors"
	"strings"

	"github.com/gogpu/fontkit"
)

// ErrNotFound reports that no font in the source satisfies the query.
var ErrNotFound = errors.New("fontkit: no matching font found")

// Source is a queryable collection of fonts.
type Source interface {
	// All returns a handle for every font in the source.
	All() ([]fontkit.Handle, error)

	// AllFamilies returns the distinct family names in the source.
	AllFamilies() ([]string, error)

	// SelectFamilyByName returns every face of the named family.
	// Generic CSS family names (serif, sans-serif, monospace, cursive,
	// fantasy) resolve to a platform-typical concrete family.
	SelectFamilyByName(name string) (fontkit.FamilyHandle, error)

	// SelectByPostScriptName returns the font with the given
	// PostScript name.
	SelectByPostScriptName(name string) (fontkit.Handle, error)

	// SelectBestMatch tries each family in order and returns the face
	// best matching the requested properties.
	SelectBestMatch(families []string, query fontkit.Properties) (fontkit.Handle, error)
}

// genericFamilies maps the CSS generic family names to concrete
// families commonly installed across platforms, in preference order.
var genericFamilies = map[string][]string{
	"serif": {
		"Times New Roman", "Times", "Noto Serif", "DejaVu Serif",
		"Liberation Serif", "Georgia",
	},
	"sans-serif": {
		"Arial", "Helvetica", "Segoe UI", "Noto Sans", "DejaVu Sans",
		"Liberation Sans", "Roboto",
	},
	"monospace": {
		"Courier New", "Courier", "Consolas", "Menlo", "Noto Sans Mono",
		"DejaVu Sans Mono", "Liberation Mono",
	},
	"cursive": {"Comic Sans MS", "Apple Chancery"},
	"fantasy": {"Impact", "Papyrus"},
}

// expandFamily resolves a queried family name to the candidate names
// to try, handling the CSS generics.
func expandFamily(name string) []string {
	if concrete, ok := genericFamilies[strings.ToLower(name)]; ok {
		return concrete
	}
	return []string{name}
}

// record is one indexed face.
type record struct {
	handle     fontkit.Handle
	family     string
	postScript string
	props      fontkit.Properties
}

// index is the in-memory catalog shared by the concrete sources.
type index struct {
	records  []record
	families []string
}

func (ix *index) add(r record) {
	for _, f := range ix.families {
		if strings.EqualFold(f, r.family) {
			ix.records = append(ix.records, r)
			return
		}
	}
	ix.families = append(ix.families, r.family)
	ix.records = append(ix.records, r)
}

func (ix *index) all() []fontkit.Handle {
	handles := make([]fontkit.Handle, len(ix.records))
	for i, r := range ix.records {
		handles[i] = r.handle
	}
	return handles
}

func (ix *index) family(name string) (fontkit.FamilyHandle, error) {
	for _, candidate := range expandFamily(name) {
		var fam fontkit.FamilyHandle
		for _, r := range ix.records {
			if strings.EqualFold(r.family, candidate) {
				fam.Push(r.handle)
			}
		}
		if !fam.IsEmpty() {
			return fam, nil
		}
	}
	return fontkit.FamilyHandle{}, ErrNotFound
}

func (ix *index) byPostScriptName(name string) (fontkit.Handle, error) {
	for _, r := range ix.records {
		if r.postScript == name {
			return r.handle, nil
		}
	}
	return fontkit.Handle{}, ErrNotFound
}

func (ix *index) bestMatch(families []string, query fontkit.Properties) (fontkit.Handle, error) {
	for _, name := range families {
		for _, candidate := range expandFamily(name) {
			var members []record
			for _, r := range ix.records {
				if strings.EqualFold(r.family, candidate) {
					members = append(members, r)
				}
			}
			if len(members) == 0 {
				continue
			}
			props := make([]fontkit.Properties, len(members))
			for i, m := range members {
				props[i] = m.props
			}
			if best, ok := fontkit.Match(props, query); ok {
				return members[best].handle, nil
			}
		}
	}
	return fontkit.Handle{}, ErrNotFound
}

// indexFace loads the descriptive metadata for one handle into the
// index. Unreadable fonts are skipped with a log entry rather than
// failing the whole scan.
func (ix *index) indexFace(h fontkit.Handle, face fontkit.Face) {
	ix.add(record{
		handle:     h,
		family:     face.FamilyName(),
		postScript: face.PostscriptName(),
		props:      face.Properties(),
	})
}
