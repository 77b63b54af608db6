//go:build unix

package sockaddr

import (
	"bytes"
	"cmp"
	"encoding/binary"
	"net/netip"
	"strconv"
	"unsafe"

	"github.com/egdaemon/sockaddr/internal/ffi"
	"golang.org/x/sys/unix"
)

// Inet4Addr is a struct sockaddr_in: a 4 byte network address and a port.
// The zero value is 0.0.0.0:0, the wildcard address.
type Inet4Addr struct {
	Addr [4]byte
	Port uint16
}

// Raw encodes the address into its OS layout. Encoding is total; every
// Inet4Addr has exactly one representation.
func (a Inet4Addr) Raw() (raw unix.RawSockaddrInet4) {
	initInet4(&raw)
	raw.Port = htons(a.Port)
	raw.Addr = a.Addr
	return raw
}

func (a Inet4Addr) Family() Family {
	return Inet
}

func (a Inet4Addr) WithSockaddr(fn func(ptr unsafe.Pointer, addrlen uint32)) {
	raw := a.Raw()
	ptr, _ := ffi.Pointer(&raw)
	fn(ptr, unix.SizeofSockaddrInet4)
}

func (a Inet4Addr) AddrPort() netip.AddrPort {
	return netip.AddrPortFrom(netip.AddrFrom4(a.Addr), a.Port)
}

func (a Inet4Addr) String() string {
	return a.AddrPort().String()
}

func (a Inet4Addr) compare(other Sockaddr) int {
	o := other.(Inet4Addr)
	if c := bytes.Compare(a.Addr[:], o.Addr[:]); c != 0 {
		return c
	}

	return cmp.Compare(a.Port, o.Port)
}

// Inet6Addr is a struct sockaddr_in6: a 16 byte network address, port, flow
// label, and scope id. The zero value is [::]:0.
type Inet6Addr struct {
	Addr     [16]byte
	Port     uint16
	Flowinfo uint32
	ZoneID   uint32
}

// Raw encodes the address into its OS layout. Port and flow label are stored
// in network byte order; the scope id stays in host order, matching what the
// kernel expects for sin6_scope_id.
func (a Inet6Addr) Raw() (raw unix.RawSockaddrInet6) {
	initInet6(&raw)
	raw.Port = htons(a.Port)
	raw.Flowinfo = htonl(a.Flowinfo)
	raw.Addr = a.Addr
	raw.Scope_id = a.ZoneID
	return raw
}

func (a Inet6Addr) Family() Family {
	return Inet6
}

func (a Inet6Addr) WithSockaddr(fn func(ptr unsafe.Pointer, addrlen uint32)) {
	raw := a.Raw()
	ptr, _ := ffi.Pointer(&raw)
	fn(ptr, unix.SizeofSockaddrInet6)
}

func (a Inet6Addr) AddrPort() netip.AddrPort {
	addr := netip.AddrFrom16(a.Addr)
	if a.ZoneID != 0 {
		addr = addr.WithZone(strconv.FormatUint(uint64(a.ZoneID), 10))
	}

	return netip.AddrPortFrom(addr, a.Port)
}

func (a Inet6Addr) String() string {
	return a.AddrPort().String()
}

func (a Inet6Addr) compare(other Sockaddr) int {
	o := other.(Inet6Addr)
	if c := bytes.Compare(a.Addr[:], o.Addr[:]); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Port, o.Port); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Flowinfo, o.Flowinfo); c != 0 {
		return c
	}

	return cmp.Compare(a.ZoneID, o.ZoneID)
}

func readInet4(src *Storage, addrlen uint32) (Sockaddr, error) {
	if addrlen < unix.SizeofSockaddrInet4 {
		return nil, ErrTooShort
	}

	raw := (*unix.RawSockaddrInet4)(unsafe.Pointer(src))
	return Inet4Addr{Addr: raw.Addr, Port: ntohs(raw.Port)}, nil
}

func readInet6(src *Storage, addrlen uint32) (Sockaddr, error) {
	if addrlen < unix.SizeofSockaddrInet6 {
		return nil, ErrTooShort
	}

	raw := (*unix.RawSockaddrInet6)(unsafe.Pointer(src))
	return Inet6Addr{
		Addr:     raw.Addr,
		Port:     ntohs(raw.Port),
		Flowinfo: ntohl(raw.Flowinfo),
		ZoneID:   raw.Scope_id,
	}, nil
}

func htons(v uint16) uint16 {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return binary.NativeEndian.Uint16(b[:])
}

func ntohs(v uint16) uint16 {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return binary.BigEndian.Uint16(b[:])
}

func htonl(v uint32) uint32 {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return binary.NativeEndian.Uint32(b[:])
}

func ntohl(v uint32) uint32 {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	return binary.BigEndian.Uint32(b[:])
}
