package sources

import (
	"errors"

	"github.com/gogpu/fontkit"
)

// Multi queries several sources as one, in order. Enumeration
// concatenates; selection returns the first source's answer.
type Multi struct {
	sources []Source
}

// NewMulti builds a combined source. Earlier sources take precedence.
func NewMulti(srcs ...Source) *Multi {
	return &Multi{sources: srcs}
}

// All concatenates the handles of every member source.
func (m *Multi) All() ([]fontkit.Handle, error) {
	var out []fontkit.Handle
	for _, s := range m.sources {
		handles, err := s.All()
		if err != nil {
			return nil, err
		}
		out = append(out, handles...)
	}
	return out, nil
}

// AllFamilies returns the distinct family names across all member
// sources.
func (m *Multi) AllFamilies() ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, s := range m.sources {
		families, err := s.AllFamilies()
		if err != nil {
			return nil, err
		}
		for _, f := range families {
			if !seen[f] {
				seen[f] = true
				out = append(out, f)
			}
		}
	}
	return out, nil
}

// SelectFamilyByName returns the named family from the first source
// that has it.
func (m *Multi) SelectFamilyByName(name string) (fontkit.FamilyHandle, error) {
	for _, s := range m.sources {
		fam, err := s.SelectFamilyByName(name)
		if err == nil {
			return fam, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return fontkit.FamilyHandle{}, err
		}
	}
	return fontkit.FamilyHandle{}, ErrNotFound
}

// SelectByPostScriptName returns the named font from the first source
// that has it.
func (m *Multi) SelectByPostScriptName(name string) (fontkit.Handle, error) {
	for _, s := range m.sources {
		h, err := s.SelectByPostScriptName(name)
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return fontkit.Handle{}, err
		}
	}
	return fontkit.Handle{}, ErrNotFound
}

// SelectBestMatch returns the best property match from the first
// source that matches any requested family.
func (m *Multi) SelectBestMatch(families []string, query fontkit.Properties) (fontkit.Handle, error) {
	for _, s := range m.sources {
		h, err := s.SelectBestMatch(families, query)
		if err == nil {
			return h, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return fontkit.Handle{}, err
		}
	}
	return fontkit.Handle{}, ErrNotFound
}

var _ Source = (*Multi)(nil)
