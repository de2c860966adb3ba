//go:build fontkit_ximage

package loaders

import (
	"os"

	"github.com/gogpu/fontkit"
	"github.com/gogpu/fontkit/loaders/ximage"
)

// DefaultEngine names the engine selected at build time.
const DefaultEngine = "ximage"

func fromBytes(data []byte, index uint32) (fontkit.Face, error) {
	return ximage.FromBytes(data, index)
}

func fromFile(file *os.File, index uint32) (fontkit.Face, error) {
	return ximage.FromFile(file, index)
}

func fromPath(path string, index uint32) (fontkit.Face, error) {
	return ximage.FromPath(path, index)
}
