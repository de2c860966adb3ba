//go:build !fontkit_findfont

package sources

// System returns the default source for installed system fonts. The
// default build uses the footprint scanner; building with the
// fontkit_findfont tag selects the go-findfont locator instead.
func System() Source {
	return NewScan()
}
