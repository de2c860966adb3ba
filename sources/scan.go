package sources

import (
	"sync"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/internal/catalog"
	"github.com/gogpu/fontkit/loaders"
)

// Scan is a source over the installed system fonts, backed by the
// engine's font directory scanner. The scan result is indexed from
// footprint metadata, so construction does not parse any font files.
type Scan struct {
	once sync.Once
	ix   index

	psMu    sync.Mutex
	psNames map[int]string
}

// NewScan creates a system font source. The directory walk happens on
// first use.
func NewScan() *Scan {
	return &Scan{}
}

func (s *Scan) load() {
	s.once.Do(func() {
		for _, fp := range catalog.Footprints() {
			s.ix.add(record{
				handle: fontkit.NewPathHandle(fp.Location.File, uint32(fp.Location.Index)),
				family: fp.Family,
				props:  catalog.Properties(fp),
			})
		}
		s.psNames = make(map[int]string)
	})
}

// All returns a handle for every installed font.
func (s *Scan) All() ([]fontkit.Handle, error) {
	s.load()
	return s.ix.all(), nil
}

// AllFamilies returns the distinct installed family names.
func (s *Scan) AllFamilies() ([]string, error) {
	s.load()
	return append([]string(nil), s.ix.families...), nil
}

// SelectFamilyByName returns every face of the named family.
func (s *Scan) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	s.load()
	return s.ix.family(name)
}

// SelectByPostScriptName returns the font with the given PostScript
// name. The footprint index does not carry PostScript names, so
// candidates are loaded on demand and the answers memoized.
func (s *Scan) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	s.load()
	s.psMu.Lock()
	defer s.psMu.Unlock()

	for i, r := range s.ix.records {
		ps, known := s.psNames[i]
		if !known {
			face, err := loaders.Load(r.handle)
			if err != nil {
				s.psNames[i] = ""
				continue
			}
			ps = face.PostscriptName()
			s.psNames[i] = ps
		}
		if ps == name {
			return r.handle, nil
		}
	}
	return fontkit.Handle{}, ErrNotFound
}

// SelectBestMatch tries each family in order and returns the best
// property match.
func (s *Scan) SelectBestMatch(families []string, query fontkit.Properties) (fontkit.Handle, error) {
	s.load()
	return s.ix.bestMatch(families, query)
}

var _ Source = (*Scan)(nil)
