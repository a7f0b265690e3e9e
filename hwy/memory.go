package hwy

import "unsafe"

// Alignment is the byte alignment of slices returned by AllocAligned. It is
// the natural alignment of the widest register the dispatcher selects
// (AVX-512), so any pack of a power-of-two lane count starts on its own
// register boundary.
const Alignment = 64

// AllocAligned allocates a zeroed slice of n elements whose first element
// is Alignment-byte aligned.
//
// It over-allocates by up to Alignment bytes and slices forward to the
// first aligned address; the returned slice keeps the whole array alive.
func AllocAligned[T Floats](n int) []T {
	if n <= 0 {
		return nil
	}

	var dummy T
	elemSize := int(unsafe.Sizeof(dummy))
	pad := Alignment / elemSize
	buf := make([]T, n+pad)

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	offset := int((Alignment-(addr&(Alignment-1)))&(Alignment-1)) / elemSize

	return buf[offset : offset+n : offset+n]
}

// IsAlignedPtr reports whether the first element of s sits on an
// Alignment-byte boundary. Empty slices are considered aligned.
func IsAlignedPtr[T Floats](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))&(Alignment-1) == 0
}
