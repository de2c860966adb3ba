//go:build fontkit_findfont

package sources

// System returns the default source for installed system fonts. This
// build uses the go-findfont locator.
func System() Source {
	return NewFindfont()
}
