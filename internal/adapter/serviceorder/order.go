package serviceorder

import "darwin-nic/internal/types"

// ConventionalSecondary is the service order macOS ships with after the
// primary path. It is the only content restore ever assumes.
var ConventionalSecondary = []string{
	"Thunderbolt Bridge",
	"Ethernet",
	"USB 10/100/1000 LAN",
	"iPhone USB",
	"Bluetooth PAN",
}

// PreserveWifiPriority moves primary services to the front and the USB
// service to the end. Everything else keeps its relative order in between.
// Names absent from current are ignored, so the result is always a
// permutation of current.
func PreserveWifiPriority(current types.ServiceOrder, primary []string, usb string) types.ServiceOrder {
	primarySet := make(map[string]struct{}, len(primary))
	for _, name := range primary {
		if name != usb {
			primarySet[name] = struct{}{}
		}
	}

	front := make(types.ServiceOrder, 0, len(current))
	middle := make(types.ServiceOrder, 0, len(current))
	var tail types.ServiceOrder
	for _, name := range current {
		switch {
		case usb != "" && name == usb:
			tail = append(tail, name)
		case isMember(primarySet, name):
			front = append(front, name)
		default:
			middle = append(middle, name)
		}
	}

	out := append(front, middle...)
	return append(out, tail...)
}

// Reconcile drops snapshot entries that no longer exist and appends live
// services the snapshot did not know about.
func Reconcile(snapshot, live types.ServiceOrder) types.ServiceOrder {
	liveSet := toSet(live)
	out := make(types.ServiceOrder, 0, len(live))
	seen := make(map[string]struct{}, len(live))
	for _, name := range snapshot {
		if isMember(liveSet, name) && !isMember(seen, name) {
			out = append(out, name)
			seen[name] = struct{}{}
		}
	}
	for _, name := range live {
		if !isMember(seen, name) {
			out = append(out, name)
			seen[name] = struct{}{}
		}
	}
	return out
}

// DefaultOrder builds the fallback order used when no snapshot exists:
// primaries, then the conventional secondary list, then any remaining live
// services. A nil live order means the host could not be read, and the list
// is returned verbatim.
func DefaultOrder(primary []string, live types.ServiceOrder) types.ServiceOrder {
	var candidates types.ServiceOrder
	candidates = append(candidates, primary...)
	candidates = append(candidates, ConventionalSecondary...)

	if live == nil {
		return dedupe(candidates)
	}

	liveSet := toSet(live)
	out := make(types.ServiceOrder, 0, len(live))
	for _, name := range dedupe(candidates) {
		if isMember(liveSet, name) {
			out = append(out, name)
		}
	}
	return Reconcile(out, live)
}

func dedupe(names types.ServiceOrder) types.ServiceOrder {
	seen := make(map[string]struct{}, len(names))
	out := make(types.ServiceOrder, 0, len(names))
	for _, n := range names {
		if !isMember(seen, n) {
			out = append(out, n)
			seen[n] = struct{}{}
		}
	}
	return out
}

func toSet(names types.ServiceOrder) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

func isMember(set map[string]struct{}, name string) bool {
	_, ok := set[name]
	return ok
}
