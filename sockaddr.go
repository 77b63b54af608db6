//go:build unix

// Package sockaddr encodes and decodes socket addresses between typed Go
// values and the raw struct sockaddr_* layouts consumed by the operating
// system's socket API. It prepares and interprets the buffers handed to
// address-consuming system calls; the calls themselves belong to the caller.
package sockaddr

import (
	"cmp"
	"unsafe"
)

// Sockaddr is implemented by every address type that has a struct sockaddr_*
// representation. The set of implementations is closed and varies by target
// platform; all of them are comparable value types usable as map keys.
type Sockaddr interface {
	// Family returns the address family discriminant of this address.
	Family() Family

	// WithSockaddr invokes fn with a pointer and length describing this
	// address's OS layout. The pointer is readable for exactly addrlen bytes
	// and only for the duration of the call; fn must not retain it.
	WithSockaddr(fn func(ptr unsafe.Pointer, addrlen uint32))

	// compare orders two addresses of the same family. it also seals the
	// interface to the compiled-in variant set.
	compare(other Sockaddr) int
}

// Compare orders two addresses by family discriminant and then structurally
// by field, giving a deterministic total order across every variant.
func Compare(a, b Sockaddr) int {
	if c := cmp.Compare(a.Family(), b.Family()); c != 0 {
		return c
	}

	return a.compare(b)
}

// Equal reports structural equality; addresses of different families are
// never equal.
func Equal(a, b Sockaddr) bool {
	return Compare(a, b) == 0
}
