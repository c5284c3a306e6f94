// Package scorer ranks USB candidate interfaces by suitability.
package scorer

import (
	"sort"
	"strings"

	"darwin-nic/internal/adapter/detector"
	"darwin-nic/internal/adapter/gate"
	"darwin-nic/internal/types"
)

const (
	WeightActive    = 50
	WeightVendor    = 30
	WeightIndex     = 10
	WeightPort      = 10
	WeightLinkSpeed = 5

	// HighSpeedMbps is the negotiated speed treated as a USB3-class link.
	HighSpeedMbps = 1000
)

// Score is a pure function of the interface attributes.
func Score(iface types.NetworkInterface) int {
	score := 0
	if iface.IsActive {
		score += WeightActive
	}
	if iface.Vendor != "" {
		score += WeightVendor
	}
	if iface.Index >= detector.MinUSBInterfaceIndex {
		score += WeightIndex
	}
	if strings.TrimSpace(iface.HardwarePort) != "" {
		score += WeightPort
	}
	if iface.LinkSpeedMbps >= HighSpeedMbps {
		score += WeightLinkSpeed
	}
	return score
}

// Eligible reports whether the interface may be ranked at all.
func Eligible(iface types.NetworkInterface) bool {
	return iface.IsUSB && !iface.IsProtected && !gate.IsProtected(iface.Name)
}

// Rank scores the eligible interfaces and orders them by descending score.
// Ties go to the lower enumeration index, then to the name.
func Rank(ifaces []types.NetworkInterface) []types.NetworkInterface {
	ranked := make([]types.NetworkInterface, 0, len(ifaces))
	for _, iface := range ifaces {
		if !Eligible(iface) {
			continue
		}
		ranked = append(ranked, iface.WithScore(Score(iface)))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Index != b.Index {
			return indexKey(a.Index) < indexKey(b.Index)
		}
		return a.Name < b.Name
	})
	return ranked
}

// indexKey sorts unknown indices after every known one.
func indexKey(index int) int {
	if index < 0 {
		return int(^uint(0) >> 1)
	}
	return index
}
