package sources

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loaders"
)

// Dir is a source over all fonts found under a directory tree.
type Dir struct {
	root string
	ix   index
}

// NewDir walks root recursively, sniffing every regular file and
// indexing each face it can load. Collections contribute one handle
// per member face.
func NewDir(root string) (*Dir, error) {
	d := &Dir{root: root}
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		ft, err := fontkit.AnalyzePath(path)
		if err != nil {
			// Not a font; directories routinely hold other files.
			return nil
		}
		count := uint32(1)
		if ft.Collection {
			count = ft.Count
		}
		for i := uint32(0); i < count; i++ {
			h := fontkit.NewPathHandle(path, i)
			face, err := loaders.Load(h)
			if err != nil {
				fontkit.Logger().Warn("skipping unreadable font", "path", path, "index", i, "err", err)
				continue
			}
			d.ix.indexFace(h, face)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fontkit: directory scan failed: %w", err)
	}
	return d, nil
}

// Root returns the directory the source was built from.
func (d *Dir) Root() string {
	return d.root
}

// All returns a handle for every font found under the root.
func (d *Dir) All() ([]fontkit.Handle, error) {
	return d.ix.all(), nil
}

// AllFamilies returns the distinct family names found under the root.
func (d *Dir) AllFamilies() ([]string, error) {
	return append([]string(nil), d.ix.families...), nil
}

// SelectFamilyByName returns every face of the named family.
func (d *Dir) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	return d.ix.family(name)
}

// SelectByPostScriptName returns the font with the given PostScript
// name.
func (d *Dir) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	return d.ix.byPostScriptName(name)
}

// SelectBestMatch tries each family in order and returns the best
// property match.
func (d *Dir) SelectBestMatch(families []string, query fontkit.Properties) (fontkit.Handle, error) {
	return d.ix.bestMatch(families, query)
}

var _ Source = (*Dir)(nil)
