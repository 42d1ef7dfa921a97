package wol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMAC_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  MACAddress
	}{
		{"00:11:22:33:44:55", MACAddress{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}},
		{"b8:ae:ed:9c:c7:89", MACAddress{0xb8, 0xae, 0xed, 0x9c, 0xc7, 0x89}},
		{"ff:ff:ff:ff:ff:ff", MACAddress{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{"AA:BB:CC:DD:EE:FF", MACAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}},
		{"Aa:bB:0c:D0:e9:9F", MACAddress{0xaa, 0xbb, 0x0c, 0xd0, 0xe9, 0x9f}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mac, err := ParseMAC(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, mac)
		})
	}
}

func TestParseMAC_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"too few groups", "00:11:22:33:44"},
		{"too many groups", "00:11:22:33:44:55:66"},
		{"non-hex characters", "00:11:22:33:44:GG"},
		{"wrong delimiter", "00-11-22-33-44-55"},
		{"single digit groups", "0:1:2:3:4:5"},
		{"three digit group", "000:11:22:33:44:55"},
		{"signed group", "-1:11:22:33:44:55"},
		{"group with space", " 0:11:22:33:44:55"},
		{"trailing colon", "00:11:22:33:44:55:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMAC(tt.input)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid MAC address")
		})
	}
}

func TestMACAddress_String(t *testing.T) {
	mac, err := ParseMAC("AA:BB:CC:dd:ee:0F")
	require.NoError(t, err)
	assert.Equal(t, "aa:bb:cc:dd:ee:0f", mac.String())
}
