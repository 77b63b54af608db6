//go:build linux

package sockaddr_test

import (
	"encoding/binary"
	"testing"

	"github.com/egdaemon/sockaddr"
	"github.com/egdaemon/sockaddr/internal/bytesx"
	"github.com/egdaemon/sockaddr/internal/errorsx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/sys/unix"
)

// the exact byte layout produced for 127.0.0.1:8080: INET discriminant,
// big-endian port, then the four address bytes.
func TestInet4WireLayout(t *testing.T) {
	buf := make([]byte, sockaddr.SizeofStorage)
	n, err := sockaddr.WriteBytes(sockaddr.Inet4Addr{Addr: [4]byte{127, 0, 0, 1}, Port: 8080}, buf)
	require.NoError(t, err)
	require.Equal(t, int(unix.SizeofSockaddrInet4), n)

	assert.Equal(t, uint16(unix.AF_INET), binary.NativeEndian.Uint16(buf[0:2]), bytesx.Debug(buf[:n]))
	assert.Equal(t, uint16(8080), binary.BigEndian.Uint16(buf[2:4]))
	assert.Equal(t, []byte{127, 0, 0, 1}, buf[4:8])

	decoded, err := sockaddr.ReadBytes(buf[:n])
	require.NoError(t, err)
	require.Equal(t, sockaddr.Inet4Addr{Addr: [4]byte{127, 0, 0, 1}, Port: 8080}, decoded)
}

func TestInet6WireLayout(t *testing.T) {
	buf := make([]byte, sockaddr.SizeofStorage)
	n, err := sockaddr.WriteBytes(sockaddr.Inet6Addr{Addr: [16]byte{15: 0x01}, Port: 443, Flowinfo: 7, ZoneID: 2}, buf)
	require.NoError(t, err)
	require.Equal(t, int(unix.SizeofSockaddrInet6), n)

	assert.Equal(t, uint16(unix.AF_INET6), binary.NativeEndian.Uint16(buf[0:2]))
	assert.Equal(t, uint16(443), binary.BigEndian.Uint16(buf[2:4]))
	assert.Equal(t, uint32(7), binary.BigEndian.Uint32(buf[4:8]))
	assert.Equal(t, byte(0x01), buf[23])
	assert.Equal(t, uint32(2), binary.NativeEndian.Uint32(buf[24:28]))
}

func TestUnixWireLayout(t *testing.T) {
	buf := make([]byte, sockaddr.SizeofStorage)
	n, err := sockaddr.WriteBytes(errorsx.Must(sockaddr.NewUnixAddr("/tmp/sock")), buf)
	require.NoError(t, err)
	require.Equal(t, 2+9+1, n, bytesx.Debug(buf[:n]))

	assert.Equal(t, uint16(unix.AF_UNIX), binary.NativeEndian.Uint16(buf[0:2]))
	assert.Equal(t, "/tmp/sock", string(buf[2:11]))
	assert.Equal(t, byte(0), buf[11])

	decoded, err := sockaddr.ReadBytes(buf[:n])
	require.NoError(t, err)
	require.Equal(t, "/tmp/sock", decoded.(sockaddr.UnixAddr).Name())
}

func TestRoundTripPacket(t *testing.T) {
	addr := sockaddr.PacketAddr{
		Protocol: 0x0806,
		Ifindex:  2,
		Hatype:   1,
		Pkttype:  0,
		Halen:    6,
		Addr:     [8]byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01},
	}
	decoded := roundtrip(t, addr).(sockaddr.PacketAddr)
	assert.Equal(t, "de:ad:be:ef:00:01", decoded.HardwareAddr().String())
	assert.Equal(t, sockaddr.Packet, decoded.Family())
}

func TestPacketWireProtocolOrder(t *testing.T) {
	buf := make([]byte, sockaddr.SizeofStorage)
	n, err := sockaddr.WriteBytes(sockaddr.PacketAddr{Protocol: 0x0806, Ifindex: 1}, buf)
	require.NoError(t, err)
	require.Equal(t, int(unix.SizeofSockaddrLinklayer), n)

	// sll_protocol is big-endian on the wire.
	assert.Equal(t, uint16(0x0806), binary.BigEndian.Uint16(buf[2:4]))
}

func TestRoundTripNetlink(t *testing.T) {
	decoded := roundtrip(t, sockaddr.NetlinkAddr{Pid: 1234, Groups: 0x11}).(sockaddr.NetlinkAddr)
	assert.Equal(t, sockaddr.Netlink, decoded.Family())
}

func TestLinuxTooShort(t *testing.T) {
	var storage sockaddr.Storage

	addrlen := sockaddr.Write(sockaddr.PacketAddr{Halen: 6}, &storage)
	_, err := sockaddr.Read(&storage, addrlen-1)
	require.ErrorIs(t, err, sockaddr.ErrTooShort)

	addrlen = sockaddr.Write(sockaddr.NetlinkAddr{Pid: 1}, &storage)
	_, err = sockaddr.Read(&storage, addrlen-1)
	require.ErrorIs(t, err, sockaddr.ErrTooShort)
}

func TestLinuxFamilyStrings(t *testing.T) {
	assert.Equal(t, "AF_PACKET", sockaddr.Packet.String())
	assert.Equal(t, "AF_NETLINK", sockaddr.Netlink.String())
}
