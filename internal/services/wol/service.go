package wol

import (
	"context"
	"fmt"
	"net"

	"github.com/dhallas/wake-on-lan/internal/models"
	"github.com/rs/zerolog"
)

// Service defines the interface for sending wake packets.
type Service interface {
	Wake(ctx context.Context, cfg models.WakeConfig) (*models.WakeResult, error)
}

// Conn is the minimal socket surface the transmitter needs. It is satisfied
// by the real UDP socket and mocked in tests.
type Conn interface {
	EnableBroadcast() error
	WriteTo(b []byte, addr *net.UDPAddr) (int, error)
	Close() error
}

// Dialer binds a fresh UDP socket on an ephemeral local port.
type Dialer func() (Conn, error)

// Impl implements the wake Service interface.
type Impl struct {
	dial   Dialer
	logger zerolog.Logger
}

// New creates a wake service backed by a real UDP socket.
func New(logger zerolog.Logger) *Impl {
	return &Impl{dial: bindUDP, logger: logger}
}

// NewWithDialer creates a wake service with a custom socket factory (for testing).
func NewWithDialer(logger zerolog.Logger, dial Dialer) *Impl {
	return &Impl{dial: dial, logger: logger}
}

// Wake sends one magic packet for cfg.MACAddress to cfg.BroadcastAddr:cfg.Port.
// Exactly one bind, one broadcast enable, and one send are performed; nothing
// is awaited afterwards, WoL has no acknowledgment.
func (s *Impl) Wake(ctx context.Context, cfg models.WakeConfig) (*models.WakeResult, error) {
	mac, err := ParseMAC(cfg.MACAddress)
	if err != nil {
		return nil, err
	}

	dest := fmt.Sprintf("%s:%d", cfg.BroadcastAddr, cfg.Port)
	addr, err := net.ResolveUDPAddr("udp4", dest)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve destination %s: %w", dest, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("mac", mac.String()).
		Str("destination", dest).
		Msg("binding UDP socket")

	conn, err := s.dial()
	if err != nil {
		return nil, fmt.Errorf("failed to bind socket: %w", err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.EnableBroadcast(); err != nil {
		return nil, fmt.Errorf("failed to enable broadcast: %w", err)
	}

	packet := NewMagicPacket(mac)
	n, err := conn.WriteTo(packet.Bytes(), addr)
	if err != nil {
		return nil, fmt.Errorf("failed to send packet to %s: %w", dest, err)
	}
	if n != MagicPacketSize {
		return nil, fmt.Errorf("short write to %s: sent %d of %d bytes", dest, n, MagicPacketSize)
	}

	s.logger.Info().
		Str("mac", mac.String()).
		Str("destination", dest).
		Int("bytes", n).
		Msg("magic packet sent")

	return &models.WakeResult{
		PacketSent:  true,
		Destination: dest,
		BytesSent:   n,
	}, nil
}
