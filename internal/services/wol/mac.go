// Package wol implements Wake-on-LAN magic packet construction and transmission.
package wol

import (
	"fmt"
	"strconv"
	"strings"
)

// MACAddress is a validated EUI-48 hardware address.
type MACAddress [6]byte

// ParseMAC parses a MAC address of the form "aa:bb:cc:dd:ee:ff". Each group
// must be exactly two hexadecimal digits; both letter cases are accepted.
// This is deliberately stricter than net.ParseMAC, which also accepts dash
// and dot delimiters and longer address forms.
func ParseMAC(raw string) (MACAddress, error) {
	var mac MACAddress

	parts := strings.Split(raw, ":")
	if len(parts) != 6 {
		return MACAddress{}, fmt.Errorf("invalid MAC address %q: expected 6 colon-separated groups, got %d", raw, len(parts))
	}

	for i, part := range parts {
		if len(part) != 2 {
			return MACAddress{}, fmt.Errorf("invalid MAC address %q: group %q must be exactly 2 hex digits", raw, part)
		}
		b, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return MACAddress{}, fmt.Errorf("invalid MAC address %q: group %q is not hexadecimal", raw, part)
		}
		mac[i] = byte(b)
	}

	return mac, nil
}

// String renders the address in canonical lower-case colon form.
func (m MACAddress) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x", m[0], m[1], m[2], m[3], m[4], m[5])
}
