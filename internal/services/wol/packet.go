package wol

const (
	// DefaultPort is the conventional Wake-on-LAN UDP port (discard).
	DefaultPort = 9

	// DefaultBroadcastAddr is the limited broadcast address.
	DefaultBroadcastAddr = "255.255.255.255"

	// MagicPacketSize is 6 bytes of 0xFF plus 16 repetitions of the MAC.
	MagicPacketSize = 6 + 16*6
)

// MagicPacket is the fixed 102-byte Wake-on-LAN payload.
type MagicPacket [MagicPacketSize]byte

// NewMagicPacket builds the magic packet for mac: 6 bytes of 0xFF followed
// by the address repeated 16 times.
func NewMagicPacket(mac MACAddress) MagicPacket {
	var p MagicPacket
	for i := 0; i < 6; i++ {
		p[i] = 0xFF
	}
	for i := 0; i < 16; i++ {
		copy(p[6+i*6:], mac[:])
	}
	return p
}

// Bytes returns the payload as a slice.
func (p MagicPacket) Bytes() []byte {
	return p[:]
}
