//go:build linux

package sockaddr

import "golang.org/x/sys/unix"

func initInet4(raw *unix.RawSockaddrInet4) {
	raw.Family = unix.AF_INET
}

func initInet6(raw *unix.RawSockaddrInet6) {
	raw.Family = unix.AF_INET6
}

func initUnix(raw *unix.RawSockaddrUnix, addrlen uint32) {
	raw.Family = unix.AF_UNIX
}
