package fontkit

// FamilyHandle is the set of handles pointing to the fonts in a family.
//
// Insertion order is preserved and is semantically meaningful: sources
// list the regular face first when they can determine it. Handles are
// only ever appended; a FamilyHandle never shrinks.
type FamilyHandle struct {
	fonts []Handle
}

// NewFamilyHandle creates an empty set of family handles.
func NewFamilyHandle() *FamilyHandle {
	return &FamilyHandle{}
}

// FamilyHandleFrom creates a set of family handles from a handle slice.
// The slice is shared, not copied.
func FamilyHandleFrom(fonts []Handle) *FamilyHandle {
	return &FamilyHandle{fonts: fonts}
}

// Push adds a new handle to this set.
func (f *FamilyHandle) Push(font Handle) {
	f.fonts = append(f.fonts, font)
}

// IsEmpty reports whether this set has no fonts in it.
func (f *FamilyHandle) IsEmpty() bool {
	return len(f.fonts) == 0
}

// Len returns the number of handles in this set.
func (f *FamilyHandle) Len() int {
	return len(f.fonts)
}

// Fonts returns all the handles in this set, in insertion order.
// The returned slice is the backing store; callers must not modify it.
func (f *FamilyHandle) Fonts() []Handle {
	return f.fonts
}
