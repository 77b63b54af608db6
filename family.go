//go:build unix

package sockaddr

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Family is an address family discriminant. Values are the platform's AF_*
// constants; it is always the first field interpreted when reading an
// untyped sockaddr buffer.
type Family uint16

const (
	Unspec Family = unix.AF_UNSPEC
	Inet   Family = unix.AF_INET
	Inet6  Family = unix.AF_INET6
	Unix   Family = unix.AF_UNIX
)

func (f Family) String() string {
	switch f {
	case Unspec:
		return "AF_UNSPEC"
	case Inet:
		return "AF_INET"
	case Inet6:
		return "AF_INET6"
	case Unix:
		return "AF_UNIX"
	default:
		return familyString(f)
	}
}

func familyUnknown(f Family) string {
	return fmt.Sprintf("AF(%d)", uint16(f))
}
