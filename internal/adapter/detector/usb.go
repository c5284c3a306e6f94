package detector

import (
	"strings"

	"darwin-nic/internal/adapter/gate"
)

// MinUSBInterfaceIndex is the lowest enumeration index treated as a likely
// hot-plugged adapter. Built-in ports occupy the indices below it.
const MinUSBInterfaceIndex = 5

type vendorKeyword struct {
	keyword string
	vendor  string
}

// knownVendors maps lowercase substrings of a vendor or hardware-port string
// to a canonical vendor name. Longer keywords come first.
var knownVendors = []vendorKeyword{
	{"apple usb ethernet", "Apple"},
	{"cable matters", "Cable Matters"},
	{"startech", "StarTech"},
	{"realtek", "Realtek"},
	{"tp-link", "TP-Link"},
	{"tplink", "TP-Link"},
	{"belkin", "Belkin"},
	{"asix", "ASIX"},
	{"ax88179", "ASIX"},
}

const genericUSBToken = "usb"

var wifiKeywords = []string{"wi-fi", "wifi", "airport", "wireless", "802.11"}

// MatchVendor returns the canonical vendor named in s, or "" when none matched.
// The generic USB token alone is not a vendor.
func MatchVendor(s string) string {
	lower := strings.ToLower(s)
	for _, kv := range knownVendors {
		if strings.Contains(lower, kv.keyword) {
			return kv.vendor
		}
	}
	return ""
}

// IsUSBAdapter classifies an interface as a USB candidate when the vendor
// string names a known vendor or the generic USB token, or when the interface
// was enumerated at or above MinUSBInterfaceIndex and carries a port label.
func IsUSBAdapter(vendor string, index int, hardwarePort string) bool {
	if MatchVendor(vendor) != "" || strings.Contains(strings.ToLower(vendor), genericUSBToken) {
		return true
	}
	return index >= MinUSBInterfaceIndex && strings.TrimSpace(hardwarePort) != ""
}

// IsWifiPort reports whether a hardware port label names a wireless adapter.
func IsWifiPort(hardwarePort string) bool {
	lower := strings.ToLower(hardwarePort)
	for _, kw := range wifiKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// IsProtectedInterface reports membership in the protected set.
func IsProtectedInterface(name string) bool {
	return gate.IsProtected(name)
}
