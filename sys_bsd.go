//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package sockaddr

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// the BSD sockaddr header carries a length byte ahead of the family.

func initInet4(raw *unix.RawSockaddrInet4) {
	raw.Len = unix.SizeofSockaddrInet4
	raw.Family = unix.AF_INET
}

func initInet6(raw *unix.RawSockaddrInet6) {
	raw.Len = unix.SizeofSockaddrInet6
	raw.Family = unix.AF_INET6
}

func initUnix(raw *unix.RawSockaddrUnix, addrlen uint32) {
	raw.Len = uint8(addrlen)
	raw.Family = unix.AF_UNIX
}

func readPlatform(src *Storage, addrlen uint32, fam Family) (Sockaddr, error) {
	return nil, errors.Wrapf(ErrUnsupportedFamily, "%v", fam)
}

func familyString(f Family) string {
	return familyUnknown(f)
}
