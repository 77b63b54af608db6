//go:build linux

package sockaddr

import (
	"bytes"
	"cmp"
	"fmt"
	"net"
	"unsafe"

	"github.com/egdaemon/sockaddr/internal/ffi"
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const (
	Packet  Family = unix.AF_PACKET
	Netlink Family = unix.AF_NETLINK
)

// PacketAddr is a struct sockaddr_ll: a link-layer endpoint bound to an
// interface. Protocol is the ethernet protocol in host order; it crosses the
// boundary big-endian like a port does.
type PacketAddr struct {
	Protocol uint16
	Ifindex  int32
	Hatype   uint16
	Pkttype  uint8
	Halen    uint8
	Addr     [8]byte
}

func (a PacketAddr) Raw() (raw unix.RawSockaddrLinklayer) {
	raw.Family = unix.AF_PACKET
	raw.Protocol = htons(a.Protocol)
	raw.Ifindex = a.Ifindex
	raw.Hatype = a.Hatype
	raw.Pkttype = a.Pkttype
	raw.Halen = a.Halen
	raw.Addr = a.Addr
	return raw
}

func (a PacketAddr) Family() Family {
	return Packet
}

func (a PacketAddr) WithSockaddr(fn func(ptr unsafe.Pointer, addrlen uint32)) {
	raw := a.Raw()
	ptr, _ := ffi.Pointer(&raw)
	fn(ptr, unix.SizeofSockaddrLinklayer)
}

// HardwareAddr returns the significant bytes of the link-layer address.
func (a PacketAddr) HardwareAddr() net.HardwareAddr {
	n := min(int(a.Halen), len(a.Addr))
	return net.HardwareAddr(a.Addr[:n])
}

func (a PacketAddr) String() string {
	return fmt.Sprintf("%s@if%d:0x%04x", a.HardwareAddr(), a.Ifindex, a.Protocol)
}

func (a PacketAddr) compare(other Sockaddr) int {
	o := other.(PacketAddr)
	if c := cmp.Compare(a.Protocol, o.Protocol); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Ifindex, o.Ifindex); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Hatype, o.Hatype); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Pkttype, o.Pkttype); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Halen, o.Halen); c != 0 {
		return c
	}

	return bytes.Compare(a.Addr[:], o.Addr[:])
}

// NetlinkAddr is a struct sockaddr_nl. Pid is the unicast port id and Groups
// the multicast group mask; both stay in host order.
type NetlinkAddr struct {
	Pid    uint32
	Groups uint32
}

func (a NetlinkAddr) Raw() (raw unix.RawSockaddrNetlink) {
	raw.Family = unix.AF_NETLINK
	raw.Pid = a.Pid
	raw.Groups = a.Groups
	return raw
}

func (a NetlinkAddr) Family() Family {
	return Netlink
}

func (a NetlinkAddr) WithSockaddr(fn func(ptr unsafe.Pointer, addrlen uint32)) {
	raw := a.Raw()
	ptr, _ := ffi.Pointer(&raw)
	fn(ptr, unix.SizeofSockaddrNetlink)
}

func (a NetlinkAddr) String() string {
	return fmt.Sprintf("netlink:%d:0x%x", a.Pid, a.Groups)
}

func (a NetlinkAddr) compare(other Sockaddr) int {
	o := other.(NetlinkAddr)
	if c := cmp.Compare(a.Pid, o.Pid); c != 0 {
		return c
	}

	return cmp.Compare(a.Groups, o.Groups)
}

func readPlatform(src *Storage, addrlen uint32, fam Family) (Sockaddr, error) {
	switch fam {
	case Packet:
		return readPacket(src, addrlen)
	case Netlink:
		return readNetlink(src, addrlen)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFamily, "%v", fam)
	}
}

func readPacket(src *Storage, addrlen uint32) (Sockaddr, error) {
	if addrlen < unix.SizeofSockaddrLinklayer {
		return nil, ErrTooShort
	}

	raw := (*unix.RawSockaddrLinklayer)(unsafe.Pointer(src))
	return PacketAddr{
		Protocol: ntohs(raw.Protocol),
		Ifindex:  raw.Ifindex,
		Hatype:   raw.Hatype,
		Pkttype:  raw.Pkttype,
		Halen:    raw.Halen,
		Addr:     raw.Addr,
	}, nil
}

func readNetlink(src *Storage, addrlen uint32) (Sockaddr, error) {
	if addrlen < unix.SizeofSockaddrNetlink {
		return nil, ErrTooShort
	}

	raw := (*unix.RawSockaddrNetlink)(unsafe.Pointer(src))
	return NetlinkAddr{Pid: raw.Pid, Groups: raw.Groups}, nil
}

func familyString(f Family) string {
	switch f {
	case Packet:
		return "AF_PACKET"
	case Netlink:
		return "AF_NETLINK"
	default:
		return familyUnknown(f)
	}
}
