package sources

import (
	"sync"

	"github.com/flopp/go-findfont"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loaders"
)

// Findfont is a system font source backed by the go-findfont locator.
// It indexes every font file the locator can see, which includes the
// platform font directories and any paths in FINDFONT_PATH.
//
// Unlike Scan, it has no persisted index: every face is parsed once on
// first use to read its metadata.
type Findfont struct {
	once sync.Once
	ix   index
}

// NewFindfont creates a system font source. The font files are
// enumerated and parsed on first use.
func NewFindfont() *Findfont {
	return &Findfont{}
}

func (f *Findfont) load() {
	f.once.Do(func() {
		for _, path := range findfont.List() {
			ft, err := fontkit.AnalyzePath(path)
			if err != nil {
				continue
			}
			count := uint32(1)
			if ft.Collection {
				count = ft.Count
			}
			for i := uint32(0); i < count; i++ {
				h := fontkit.NewPathHandle(path, i)
				face, err := loaders.Load(h)
				if err != nil {
					fontkit.Logger().Debug("skipping unreadable font", "path", path, "err", err)
					continue
				}
				f.ix.indexFace(h, face)
			}
		}
	})
}

// All returns a handle for every font the locator found.
func (f *Findfont) All() ([]fontkit.Handle, error) {
	f.load()
	return f.ix.all(), nil
}

// AllFamilies returns the distinct family names found.
func (f *Findfont) AllFamilies() ([]string, error) {
	f.load()
	return append([]string(nil), f.ix.families...), nil
}

// SelectFamilyByName returns every face of the named family.
func (f *Findfont) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	f.load()
	return f.ix.family(name)
}

// SelectByPostScriptName returns the font with the given PostScript
// name.
func (f *Findfont) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	f.load()
	return f.ix.byPostScriptName(name)
}

// SelectBestMatch tries each family in order and returns the best
// property match.
func (f *Findfont) SelectBestMatch(families []string, query fontkit.Properties) (fontkit.Handle, error) {
	f.load()
	return f.ix.bestMatch(families, query)
}

// FindFile resolves a font file by name fragment, the locator's native
// lookup. It is a convenience for callers that know the file name
// rather than the family.
func FindFile(name string) (string, error) {
	path, err := findfont.Find(name)
	if err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

var _ Source = (*Findfont)(nil)
