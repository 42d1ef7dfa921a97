package wol

import (
	"net"

	"golang.org/x/sys/unix"
)

// udpConn adapts *net.UDPConn to the Conn interface.
type udpConn struct {
	*net.UDPConn
}

// bindUDP binds a UDP socket to an unspecified local address and an
// ephemeral port, the 0.0.0.0:0 equivalent.
func bindUDP() (Conn, error) {
	c, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4zero, Port: 0})
	if err != nil {
		return nil, err
	}
	return &udpConn{UDPConn: c}, nil
}

// EnableBroadcast sets SO_BROADCAST on the underlying socket so the payload
// may be sent to a broadcast address.
func (c *udpConn) EnableBroadcast() error {
	raw, err := c.SyscallConn()
	if err != nil {
		return err
	}
	var optErr error
	if err := raw.Control(func(fd uintptr) {
		optErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
	}); err != nil {
		return err
	}
	return optErr
}

func (c *udpConn) WriteTo(b []byte, addr *net.UDPAddr) (int, error) {
	return c.UDPConn.WriteToUDP(b, addr)
}
