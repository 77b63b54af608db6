package ffi_test

import (
	"testing"

	"github.com/egdaemon/sockaddr/internal/ffi"
	"github.com/stretchr/testify/require"
)

func TestPointerCopy(t *testing.T) {
	type m struct {
		Foo int32
		Bar uint16
	}
	var (
		src = m{Foo: 512, Bar: 7}
		dst m
	)

	sptr, slen := ffi.Pointer(&src)
	dptr, dlen := ffi.Pointer(&dst)
	require.Equal(t, slen, dlen)
	require.Equal(t, slen, ffi.Copy(dptr, sptr, slen))
	require.Equal(t, src, dst)
}

func TestBytesView(t *testing.T) {
	var v uint32 = 0x01020304
	ptr, n := ffi.Pointer(&v)
	b := ffi.Bytes(ptr, n)
	require.Len(t, b, 4)

	// the view aliases the value.
	v = 0
	require.Equal(t, []byte{0, 0, 0, 0}, b)
}

func TestString(t *testing.T) {
	buf := [5]byte{'h', 'e', 'l', 'l', 'o'}
	ptr, n := ffi.Pointer(&buf)
	s := ffi.String(ptr, n)
	require.Equal(t, "hello", s)

	// the string is copied out of the view.
	buf[0] = 'y'
	require.Equal(t, "hello", s)
}
