package detector

import (
	"context"
	"regexp"
	"strconv"

	"darwin-nic/internal/adapter/gate"
	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/port"
	"darwin-nic/internal/types"
)

var bsdIndex = regexp.MustCompile(`^en(\d+)$`)

type darwinDetector struct {
	commander port.NetworkCommander
}

func newDarwinDetector(commander port.NetworkCommander) port.Detector {
	return &darwinDetector{commander: commander}
}

func (d *darwinDetector) Platform() string { return string(Darwin) }

func (d *darwinDetector) DetectInterfaces(ctx context.Context) ([]types.NetworkInterface, error) {
	raws, err := d.commander.ListInterfaces(ctx)
	if err != nil {
		return nil, &types.DetectionError{Platform: d.Platform(), Err: err}
	}

	logger := logging.WithComponent("detector").WithField("platform", d.Platform())
	ifaces := make([]types.NetworkInterface, 0, len(raws))
	for _, raw := range raws {
		index := enumerationIndex(raw.Name)
		vendorString := raw.HardwarePort + " " + raw.Driver

		iface := types.NetworkInterface{
			Name:          raw.Name,
			HardwarePort:  raw.HardwarePort,
			IPAddress:     raw.IPAddress,
			MACAddress:    raw.MACAddress,
			IsActive:      raw.IsActive,
			IsUSB:         IsUSBAdapter(vendorString, index, raw.HardwarePort),
			IsWifi:        IsWifiPort(raw.HardwarePort),
			IsProtected:   gate.IsProtected(raw.Name) || gate.IsProtected(raw.HardwarePort),
			Index:         index,
			Vendor:        MatchVendor(vendorString),
			LinkSpeedMbps: raw.LinkSpeedMbps,
		}
		logger.WithFields(map[string]interface{}{
			"interface": iface.Name,
			"port":      iface.HardwarePort,
			"usb":       iface.IsUSB,
			"protected": iface.IsProtected,
		}).Debug("Classified interface")
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}

// enumerationIndex extracts N from BSD "enN" names, or -1.
func enumerationIndex(name string) int {
	m := bsdIndex.FindStringSubmatch(name)
	if m == nil {
		return -1
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return n
}
