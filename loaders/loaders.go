// Package loaders selects the default font engine at compile time and
// exposes engine-independent loading entry points.
//
// The default engine is go-text/typesetting. Building with the
// fontkit_ximage tag selects the x/image sfnt engine instead:
//
//	go build -tags fontkit_ximage ./...
//
// Code that needs a specific engine regardless of build tags imports
// the engine package directly.
package loaders

import (
	"os"

	"github.com/gogpu/fontkit"
)

// Load loads the font a handle points to with the default engine.
func Load(h fontkit.Handle) (fontkit.Face, error) {
	if h.IsMemory() {
		return FromBytes(h.Bytes, h.Index)
	}
	return FromPath(h.Path, h.Index)
}

// Analyze determines the container type of the font a handle points
// to.
func Analyze(h fontkit.Handle) (fontkit.FileType, error) {
	if h.IsMemory() {
		return fontkit.AnalyzeBytes(h.Bytes)
	}
	return fontkit.AnalyzePath(h.Path)
}

// LoadAll loads every font in the container a handle points to. For
// single fonts the result has one face.
func LoadAll(h fontkit.Handle) ([]fontkit.Face, error) {
	ft, err := Analyze(h)
	if err != nil {
		return nil, err
	}
	count := uint32(1)
	if ft.Collection {
		count = ft.Count
	}
	faces := make([]fontkit.Face, 0, count)
	for i := uint32(0); i < count; i++ {
		indexed := h
		indexed.Index = i
		face, err := Load(indexed)
		if err != nil {
			return nil, err
		}
		faces = append(faces, face)
	}
	return faces, nil
}

// FromFile loads the font at index from an open file with the default
// engine.
func FromFile(file *os.File, index uint32) (fontkit.Face, error) {
	return fromFile(file, index)
}

// FromBytes loads the font at index from raw data with the default
// engine.
func FromBytes(data []byte, index uint32) (fontkit.Face, error) {
	return fromBytes(data, index)
}

// FromPath loads the font at index from a file path with the default
// engine.
func FromPath(path string, index uint32) (fontkit.Face, error) {
	return fromPath(path, index)
}
