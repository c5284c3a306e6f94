// Package gate holds the protected-interface safety check that runs before
// any mutation is considered.
package gate

import (
	"sort"

	"darwin-nic/internal/types"
)

// protected lists interfaces and services that carry the host's own
// connectivity. It is never modified at runtime.
var protected = map[string]struct{}{
	"en0":      {},
	"en1":      {},
	"lo0":      {},
	"awdl0":    {},
	"llw0":     {},
	"utun0":    {},
	"utun1":    {},
	"utun2":    {},
	"eth0":     {},
	"wlan0":    {},
	"lo":       {},
	"Ethernet": {},
	"Wi-Fi":    {},
}

// IsProtected reports whether name belongs to the protected set.
func IsProtected(name string) bool {
	_, ok := protected[name]
	return ok
}

// Protected returns the protected set in sorted order.
func Protected() []string {
	names := make([]string, 0, len(protected))
	for name := range protected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateInterfaceForConfig is the only gate for mutation requests. Protection
// is checked first and wins over USB classification.
func ValidateInterfaceForConfig(iface types.NetworkInterface) error {
	if iface.IsProtected || IsProtected(iface.Name) || IsProtected(iface.HardwarePort) {
		return &types.ProtectedInterfaceError{Interface: iface.Name}
	}
	if !iface.IsUSB {
		return &types.NotUSBError{Interface: iface.Name}
	}
	return nil
}
