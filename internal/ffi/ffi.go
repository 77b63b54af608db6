// Package ffi provides pointer and length views over typed values for the
// sockaddr copy paths. Views are only valid while the value they reference
// is live; callers must not retain them.
package ffi

import "unsafe"

// Pointer returns an untyped view of v and its size in bytes.
func Pointer[T any](v *T) (unsafe.Pointer, uint32) {
	return unsafe.Pointer(v), uint32(unsafe.Sizeof(*v))
}

// Bytes reinterprets n bytes at ptr as a byte slice.
func Bytes(ptr unsafe.Pointer, n uint32) []byte {
	return unsafe.Slice((*byte)(ptr), n)
}

// Copy moves n bytes from src to dst. The regions must not overlap and both
// must be readable/writable for n bytes.
func Copy(dst, src unsafe.Pointer, n uint32) uint32 {
	return uint32(copy(Bytes(dst, n), Bytes(src, n)))
}

// String reinterprets n bytes at ptr as a string, copying them out so the
// result outlives the view.
func String(ptr unsafe.Pointer, n uint32) string {
	return string(Bytes(ptr, n))
}
