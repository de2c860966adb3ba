package fontkit

import "fmt"

// Handle encapsulates the information needed to locate and open a font.
//
// A Handle identifies a font either by a path on the filesystem or by an
// in-memory byte buffer, together with the index of the face inside a
// collection container (.ttc/.otc). For single-font containers the index
// must be 0.
//
// Handles are plain immutable values: construct one with NewPathHandle
// or NewMemoryHandle and never modify it afterwards. The byte buffer of
// a memory handle is shared, not copied; callers must treat it as
// immutable for the lifetime of every Face opened from it.
type Handle struct {
	// Path is the filesystem location of the font, for path handles.
	Path string

	// Bytes is the raw font file contents, for memory handles.
	Bytes []byte

	// Index selects a face within a collection container.
	Index uint32
}

// NewPathHandle creates a handle referencing a font file on disk.
func NewPathHandle(path string, index uint32) Handle {
	return Handle{Path: path, Index: index}
}

// NewMemoryHandle creates a handle referencing in-memory font data.
// The data is shared, not copied.
func NewMemoryHandle(data []byte, index uint32) Handle {
	return Handle{Bytes: data, Index: index}
}

// IsMemory reports whether the handle references in-memory data rather
// than a file path.
func (h Handle) IsMemory() bool {
	return h.Bytes != nil
}

// Equal reports whether two handles identify the same font.
//
// Path handles compare by path and index. Memory handles compare by
// byte-buffer identity (not content) and index, matching the semantics
// of sharing the same underlying buffer.
func (h Handle) Equal(other Handle) bool {
	if h.Index != other.Index {
		return false
	}
	if h.IsMemory() != other.IsMemory() {
		return false
	}
	if h.IsMemory() {
		if len(h.Bytes) != len(other.Bytes) {
			return false
		}
		if len(h.Bytes) == 0 {
			return true
		}
		return &h.Bytes[0] == &other.Bytes[0]
	}
	return h.Path == other.Path
}

// String returns a short description of the handle.
func (h Handle) String() string {
	if h.IsMemory() {
		return fmt.Sprintf("memory font (%d bytes) #%d", len(h.Bytes), h.Index)
	}
	return fmt.Sprintf("%s#%d", h.Path, h.Index)
}
