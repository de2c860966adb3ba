package sources

import (
	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loaders"
)

// Mem is a source over a fixed set of fonts supplied by the caller.
type Mem struct {
	ix index
}

// NewMem builds a source from the given handles. Each font is loaded
// once to read its metadata; handles that fail to load are skipped.
func NewMem(handles []fontkit.Handle) *Mem {
	m := &Mem{}
	for _, h := range handles {
		face, err := loaders.Load(h)
		if err != nil {
			fontkit.Logger().Warn("skipping unreadable font", "handle", h.String(), "err", err)
			continue
		}
		m.ix.indexFace(h, face)
	}
	return m
}

// Add indexes one more font.
func (m *Mem) Add(h fontkit.Handle) error {
	face, err := loaders.Load(h)
	if err != nil {
		return err
	}
	m.ix.indexFace(h, face)
	return nil
}

// All returns a handle for every font in the source.
func (m *Mem) All() ([]fontkit.Handle, error) {
	return m.ix.all(), nil
}

// AllFamilies returns the distinct family names in the source.
func (m *Mem) AllFamilies() ([]string, error) {
	return append([]string(nil), m.ix.families...), nil
}

// SelectFamilyByName returns every face of the named family.
func (m *Mem) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	return m.ix.family(name)
}

// SelectByPostScriptName returns the font with the given PostScript
// name.
func (m *Mem) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	return m.ix.byPostScriptName(name)
}

// SelectBestMatch tries each family in order and returns the best
// property match.
func (m *Mem) SelectBestMatch(families []string, query fontkit.Properties) (fontkit.Handle, error) {
	return m.ix.bestMatch(families, query)
}

var _ Source = (*Mem)(nil)
