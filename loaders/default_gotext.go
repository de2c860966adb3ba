//go:build !fontkit_ximage

package loaders

import (
	"os"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loaders/gotext"
)

// DefaultEngine names the engine selected at build time.
const DefaultEngine = "gotext"

func fromBytes(data []byte, index uint32) (fontkit.Face, error) {
	return gotext.FromBytes(data, index)
}

func fromFile(file *os.File, index uint32) (fontkit.Face, error) {
	return gotext.FromFile(file, index)
}

func fromPath(path string, index uint32) (fontkit.Face, error) {
	return gotext.FromPath(path, index)
}
