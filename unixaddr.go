//go:build unix

package sockaddr

import (
	"bytes"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	// PathMax is the capacity of sun_path on the target platform.
	PathMax = len(unix.RawSockaddrUnix{}.Path)

	unixHdrLen = uint32(unsafe.Offsetof(unix.RawSockaddrUnix{}.Path))
)

// UnixAddr is a struct sockaddr_un. Unlike the fixed-size families it
// retains the native layout plus its valid length, because the length is
// what distinguishes unnamed, pathname, and abstract addresses.
//
// The zero value is the unnamed address. Abstract names begin with a NUL
// byte and may contain further NUL bytes; they are kept verbatim.
type UnixAddr struct {
	raw unix.RawSockaddrUnix
	len uint32
}

// NewUnixAddr builds an address from a pathname or abstract name. Names
// longer than PathMax fail with ErrPathTooLong; the empty name yields the
// unnamed address.
func NewUnixAddr(name string) (UnixAddr, error) {
	return newUnixAddr([]byte(name))
}

func newUnixAddr(name []byte) (zero UnixAddr, err error) {
	if len(name) > PathMax {
		return zero, errors.Wrapf(ErrPathTooLong, "%d bytes over a %d byte sun_path", len(name), PathMax)
	}

	a := UnixAddr{len: unixHdrLen + uint32(len(name))}
	if len(name) > 0 && name[0] != 0 && len(name) < PathMax {
		// pathname addresses carry the conventional terminating NUL when
		// there is room for it; the length field disambiguates otherwise.
		a.len++
	}
	initUnix(&a.raw, a.len)
	for i, c := range name {
		a.raw.Path[i] = int8(c)
	}

	return a, nil
}

// Name returns the pathname or abstract name, exactly as constructed or
// decoded. Abstract names keep their leading NUL.
func (a UnixAddr) Name() string {
	return string(a.name())
}

// IsUnnamed reports whether the address has a zero-length name.
func (a UnixAddr) IsUnnamed() bool {
	return a.len <= unixHdrLen
}

// IsAbstract reports whether the name lives in the abstract namespace.
func (a UnixAddr) IsAbstract() bool {
	return a.len > unixHdrLen && a.raw.Path[0] == 0
}

// Raw returns the retained OS layout and the number of significant bytes.
func (a UnixAddr) Raw() (unix.RawSockaddrUnix, uint32) {
	a = a.canonical()
	return a.raw, a.len
}

func (a UnixAddr) Family() Family {
	return Unix
}

func (a UnixAddr) WithSockaddr(fn func(ptr unsafe.Pointer, addrlen uint32)) {
	a = a.canonical()
	fn(unsafe.Pointer(&a.raw), a.len)
}

func (a UnixAddr) String() string {
	name := a.name()
	switch {
	case len(name) == 0:
		return "@"
	case name[0] == 0:
		return "@" + string(name[1:])
	default:
		return string(name)
	}
}

func (a UnixAddr) compare(other Sockaddr) int {
	o := other.(UnixAddr)
	return bytes.Compare(a.name(), o.name())
}

// canonical gives the zero value the header of a constructed unnamed
// address so its encoding carries the family discriminant.
func (a UnixAddr) canonical() UnixAddr {
	if a.len == 0 {
		a.len = unixHdrLen
		initUnix(&a.raw, a.len)
	}

	return a
}

func (a UnixAddr) name() []byte {
	n := int(a.len) - int(unixHdrLen)
	if n <= 0 {
		return nil
	}

	name := make([]byte, n)
	for i := range name {
		name[i] = byte(a.raw.Path[i])
	}
	if name[0] != 0 && name[n-1] == 0 {
		// strip the pathname terminator; it is not part of the name.
		name = name[:n-1]
	}

	return name
}

func readUnix(src *Storage, addrlen uint32) (Sockaddr, error) {
	if addrlen < unixHdrLen {
		return nil, ErrTooShort
	}

	raw := (*unix.RawSockaddrUnix)(unsafe.Pointer(src))
	n := int(addrlen - unixHdrLen)
	if n > PathMax {
		// only the buffer's capacity worth of name bytes is significant.
		n = PathMax
	}

	name := make([]byte, n)
	for i := range name {
		name[i] = byte(raw.Path[i])
	}
	if n > 0 && name[0] != 0 && name[n-1] == 0 {
		// some kernels include the pathname terminator in the reported
		// length; normalize so equality is structural over the name.
		name = name[:n-1]
	}

	return newUnixAddr(name)
}
