// Package models contains the data structures used throughout wakecast.
package models

// WakeConfig holds the parameters for a single wake operation.
type WakeConfig struct {
	MACAddress    string
	BroadcastAddr string // destination host or broadcast address
	Port          uint16 // destination UDP port
}

// WakeResult holds the outcome of a wake operation.
type WakeResult struct {
	PacketSent  bool
	Destination string // resolved "host:port" the packet was sent to
	BytesSent   int
}
