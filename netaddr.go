//go:build unix

package sockaddr

import (
	"log/slog"
	"net"
	"net/netip"
	"strconv"

	"github.com/pkg/errors"
)

// FromAddrPort converts a netip address and port into its typed sockaddr.
// 4-in-6 mapped addresses become Inet4Addr so they round-trip through the
// kernel's v4 layout.
func FromAddrPort(ap netip.AddrPort) Sockaddr {
	if ap.Addr().Is4() || ap.Addr().Is4In6() {
		return Inet4Addr{Addr: ap.Addr().As4(), Port: ap.Port()}
	}

	return Inet6Addr{Addr: ap.Addr().As16(), Port: ap.Port(), ZoneID: zoneID(ap.Addr().Zone())}
}

// AddrPort converts an IP family sockaddr back into netip currency. Other
// families have no AddrPort form and report ErrUnsupportedFamily.
func AddrPort(sa Sockaddr) (zero netip.AddrPort, err error) {
	switch t := sa.(type) {
	case Inet4Addr:
		return t.AddrPort(), nil
	case Inet6Addr:
		return t.AddrPort(), nil
	default:
		slog.Debug("sockaddr has no netip form", slog.Any("family", sa.Family()))
		return zero, errors.Wrapf(ErrUnsupportedFamily, "%v", sa.Family())
	}
}

// FromNetAddr converts the net package's address types into their typed
// sockaddr equivalents.
func FromNetAddr(addr net.Addr) (Sockaddr, error) {
	ipaddr := func(ip net.IP, zone string, port int) (Sockaddr, error) {
		if ipv4 := ip.To4(); ipv4 != nil {
			return Inet4Addr{Addr: [4]byte(ipv4), Port: uint16(port)}, nil
		} else if len(ip) == net.IPv6len {
			return Inet6Addr{Addr: [16]byte(ip), Port: uint16(port), ZoneID: zoneID(zone)}, nil
		} else {
			return nil, &net.AddrError{Err: "unsupported address type", Addr: addr.String()}
		}
	}

	switch a := addr.(type) {
	case *net.IPAddr:
		return ipaddr(a.IP, a.Zone, 0)
	case *net.TCPAddr:
		return ipaddr(a.IP, a.Zone, a.Port)
	case *net.UDPAddr:
		return ipaddr(a.IP, a.Zone, a.Port)
	case *net.UnixAddr:
		name := a.Name
		if len(name) > 0 && name[0] == '@' {
			// On Linux, addresses where the first byte is a null byte are
			// considered abstract unix sockets, and the net package renders
			// that first byte as @.
			name = "\x00" + name[1:]
		}
		return NewUnixAddr(name)
	}

	slog.Debug("unsupported net.Addr", slog.Any("addr", addr))
	return nil, &net.AddrError{Err: "unsupported address type", Addr: addr.String()}
}

// NetAddr renders a sockaddr as the net.Addr for the given network, or nil
// when the family and network disagree.
func NetAddr(sa Sockaddr, network string) net.Addr {
	switch network {
	case "tcp", "tcp4", "tcp6":
		if ap, err := AddrPort(sa); err == nil {
			return net.TCPAddrFromAddrPort(ap)
		}
	case "udp", "udp4", "udp6":
		if ap, err := AddrPort(sa); err == nil {
			return net.UDPAddrFromAddrPort(ap)
		}
	case "ip", "ip4", "ip6":
		if ap, err := AddrPort(sa); err == nil {
			return &net.IPAddr{IP: ap.Addr().AsSlice(), Zone: ap.Addr().Zone()}
		}
	case "unix", "unixgram", "unixpacket":
		if ua, ok := sa.(UnixAddr); ok {
			name := ua.Name()
			if len(name) > 0 && name[0] == 0 {
				name = "@" + name[1:]
			}
			return &net.UnixAddr{Name: name, Net: network}
		}
	}

	return nil
}

func zoneID(zone string) uint32 {
	if zone == "" {
		return 0
	}
	if n, err := strconv.ParseUint(zone, 10, 32); err == nil {
		return uint32(n)
	}
	if ifi, err := net.InterfaceByName(zone); err == nil {
		return uint32(ifi.Index)
	}

	return 0
}
