// Package types defines common types used across the application.
package types

// RawInterface is a single interface as reported by the host before any
// classification has been applied.
type RawInterface struct {
	Name          string // BSD device name (e.g., "en5") or kernel link name
	HardwarePort  string // Human-readable hardware port label (e.g., "USB 10/100/1000 LAN")
	MACAddress    string
	IPAddress     string // First IPv4 address, empty when unconfigured
	IsActive      bool   // Carrier present / "status: active"
	Index         int    // Enumeration index; -1 when unknown
	Driver        string // Driver or vendor string when the platform exposes one
	BusInfo       string // Bus location (e.g., "usb-0000:00:14.0-1")
	LinkSpeedMbps uint32
}

// NetworkInterface is a classified interface produced by a detection pass.
// Values are never mutated in place; scoring returns a copy.
type NetworkInterface struct {
	Name          string `yaml:"name"`
	HardwarePort  string `yaml:"hardware_port"`
	IPAddress     string `yaml:"ip_address,omitempty"`
	MACAddress    string `yaml:"mac_address"`
	IsActive      bool   `yaml:"is_active"`
	IsUSB         bool   `yaml:"is_usb"`
	IsWifi        bool   `yaml:"is_wifi"`
	IsProtected   bool   `yaml:"is_protected"`
	Score         int    `yaml:"score"`
	Index         int    `yaml:"index"`
	Vendor        string `yaml:"vendor,omitempty"` // Canonical vendor name, empty unless a known vendor matched
	LinkSpeedMbps uint32 `yaml:"link_speed_mbps,omitempty"`
}

// WithScore returns a copy of the interface carrying the given score.
func (n NetworkInterface) WithScore(score int) NetworkInterface {
	n.Score = score
	return n
}
