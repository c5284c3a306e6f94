//go:build linux

// Package linkinfo provides NIC driver queries through the ethtool ioctl interface.
package linkinfo

import (
	"fmt"

	"darwin-nic/internal/port"
	"darwin-nic/internal/types"

	"github.com/safchain/ethtool"
)

// ReaderAdapter implements the LinkInfoReader port using safchain/ethtool.
type ReaderAdapter struct {
	handle *ethtool.Ethtool
}

// Ensure ReaderAdapter implements the LinkInfoReader port
var _ port.LinkInfoReader = (*ReaderAdapter)(nil)

// NewReaderAdapter opens an ethtool handle.
func NewReaderAdapter() (*ReaderAdapter, error) {
	h, err := ethtool.NewEthtool()
	if err != nil {
		return nil, fmt.Errorf("failed to open ethtool handle: %w", err)
	}
	return &ReaderAdapter{handle: h}, nil
}

// Close closes the ethtool handle.
func (r *ReaderAdapter) Close() {
	r.handle.Close()
}

// LinkInfo returns driver, bus location and negotiated speed.
// Speed stays zero when the link is down or the driver does not report it.
func (r *ReaderAdapter) LinkInfo(interfaceName string) (types.LinkInfo, error) {
	drv, err := r.handle.DriverInfo(interfaceName)
	if err != nil {
		return types.LinkInfo{}, fmt.Errorf("failed to read driver info for %s: %w", interfaceName, err)
	}

	info := types.LinkInfo{
		Driver:  drv.Driver,
		BusInfo: drv.BusInfo,
	}

	if settings, err := r.handle.GetLinkSettings(interfaceName); err == nil && settings.Speed != ^uint32(0) {
		info.SpeedMbps = settings.Speed
	}
	return info, nil
}
