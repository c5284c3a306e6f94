package detector

import (
	"context"
	"strings"

	"darwin-nic/internal/adapter/gate"
	"darwin-nic/internal/port"
	"darwin-nic/internal/types"
)

// usbDrivers maps kernel drivers that only bind USB NICs to their vendor.
// An empty vendor means the driver is a generic class driver.
var usbDrivers = map[string]string{
	"r8152":        "Realtek",
	"r8153_ecm":    "Realtek",
	"ax88179_178a": "ASIX",
	"asix":         "ASIX",
	"cdc_ether":    "",
	"cdc_ncm":      "",
	"rndis_host":   "",
}

// linuxDetector classifies links from driver and bus information. Kernel
// ifindex values say nothing about hot-plugging, so the index heuristic is
// not applied on this platform.
type linuxDetector struct {
	commander port.NetworkCommander
}

func newLinuxDetector(commander port.NetworkCommander) port.Detector {
	return &linuxDetector{commander: commander}
}

func (d *linuxDetector) Platform() string { return string(Linux) }

func (d *linuxDetector) DetectInterfaces(ctx context.Context) ([]types.NetworkInterface, error) {
	raws, err := d.commander.ListInterfaces(ctx)
	if err != nil {
		return nil, &types.DetectionError{Platform: d.Platform(), Err: err}
	}

	ifaces := make([]types.NetworkInterface, 0, len(raws))
	for _, raw := range raws {
		vendorString := raw.HardwarePort + " " + raw.Driver
		driverVendor, usbDriver := usbDrivers[raw.Driver]

		vendor := MatchVendor(vendorString)
		if vendor == "" {
			vendor = driverVendor
		}

		ifaces = append(ifaces, types.NetworkInterface{
			Name:          raw.Name,
			HardwarePort:  raw.HardwarePort,
			IPAddress:     raw.IPAddress,
			MACAddress:    raw.MACAddress,
			IsActive:      raw.IsActive,
			IsUSB:         usbDriver || strings.Contains(strings.ToLower(raw.BusInfo), genericUSBToken) || IsUSBAdapter(vendorString, -1, ""),
			IsWifi:        IsWifiPort(raw.HardwarePort) || strings.HasPrefix(raw.Name, "wl"),
			IsProtected:   gate.IsProtected(raw.Name) || gate.IsProtected(raw.HardwarePort),
			Index:         raw.Index,
			Vendor:        vendor,
			LinkSpeedMbps: raw.LinkSpeedMbps,
		})
	}
	return ifaces, nil
}
