//go:build unix

package sockaddr

import (
	"unsafe"

	"github.com/egdaemon/sockaddr/internal/ffi"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// Storage is struct sockaddr_storage: a buffer with capacity for the largest
// supported family's layout. It carries no intrinsic length; every read must
// be parameterized by the length an earlier system call reported.
type Storage unix.RawSockaddrAny

// SizeofStorage is the capacity callers hand to length-reporting syscalls.
const SizeofStorage = uint32(unsafe.Sizeof(Storage{}))

// Write encodes the address into dst and returns the number of significant
// bytes, the value to pass as the address length at the syscall boundary.
func Write(sa Sockaddr, dst *Storage) (addrlen uint32) {
	sa.WithSockaddr(func(ptr unsafe.Pointer, n uint32) {
		ffi.Copy(unsafe.Pointer(dst), ptr, n)
		addrlen = n
	})

	return addrlen
}

// Read interprets addrlen bytes of src as the layout named by its family
// discriminant. Unknown discriminants fail with ErrUnsupportedFamily and
// lengths below the family's minimum with ErrTooShort; neither is fatal.
func Read(src *Storage, addrlen uint32) (Sockaddr, error) {
	addrlen = min(addrlen, SizeofStorage)
	if addrlen < uint32(rawHdrLen) {
		return nil, ErrTooShort
	}

	switch fam := Family(src.Addr.Family); fam {
	case Inet:
		return readInet4(src, addrlen)
	case Inet6:
		return readInet6(src, addrlen)
	case Unix:
		return readUnix(src, addrlen)
	default:
		return readPlatform(src, addrlen, fam)
	}
}

// WriteBytes is the bounds-checked form of Write: it fails with
// ErrShortBuffer instead of assuming dst has storage capacity.
func WriteBytes(sa Sockaddr, dst []byte) (n int, err error) {
	sa.WithSockaddr(func(ptr unsafe.Pointer, addrlen uint32) {
		if uint32(len(dst)) < addrlen {
			err = errors.Wrapf(ErrShortBuffer, "%d bytes into %d", addrlen, len(dst))
			return
		}

		n = copy(dst, ffi.Bytes(ptr, addrlen))
	})

	return n, err
}

// ReadBytes decodes a sockaddr layout from a byte slice, using len(src) as
// the address length.
func ReadBytes(src []byte) (Sockaddr, error) {
	var storage Storage
	n := copy(ffi.Bytes(unsafe.Pointer(&storage), SizeofStorage), src)
	return Read(&storage, uint32(n))
}

// the discriminant must be readable before anything else is; both sockaddr
// header shapes place it within the first two bytes.
const rawHdrLen = unsafe.Offsetof(unix.RawSockaddr{}.Data)
