package network

import (
	"context"
	"fmt"

	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/port"
	"darwin-nic/internal/types"

	"github.com/vishvananda/netlink"
)

// CommanderAdapter implements the NetworkCommander port for Linux hosts.
// Discovery is supported; every mutation returns types.ErrUnsupportedPlatform.
type CommanderAdapter struct {
	networkMgr port.NetworkManager
	linkInfo   port.LinkInfoReader
}

// Ensure CommanderAdapter implements the NetworkCommander port
var _ port.NetworkCommander = (*CommanderAdapter)(nil)

// NewCommanderAdapter creates a Linux commander. linkInfo may be nil.
func NewCommanderAdapter(networkMgr port.NetworkManager, linkInfo port.LinkInfoReader) *CommanderAdapter {
	return &CommanderAdapter{networkMgr: networkMgr, linkInfo: linkInfo}
}

// ListInterfaces returns physical links with their first IPv4 address and driver details.
func (c *CommanderAdapter) ListInterfaces(ctx context.Context) ([]types.RawInterface, error) {
	logger := logging.WithComponent("netlink")

	links, err := c.networkMgr.ListLinks()
	if err != nil {
		return nil, fmt.Errorf("failed to list interfaces: %w", err)
	}

	ifaces := make([]types.RawInterface, 0, len(links))
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if link.Type() != "device" {
			continue
		}
		attrs := link.Attrs()
		raw := types.RawInterface{
			Name:         attrs.Name,
			HardwarePort: attrs.Alias,
			IsActive:     attrs.OperState == netlink.OperUp,
			Index:        attrs.Index,
		}
		if attrs.HardwareAddr != nil {
			raw.MACAddress = attrs.HardwareAddr.String()
		}

		addrs, err := c.networkMgr.ListAddresses(link)
		if err != nil {
			logger.WithError(err).WithField("interface", attrs.Name).Warn("Failed to list addresses")
		} else if len(addrs) > 0 && addrs[0].IPNet != nil {
			raw.IPAddress = addrs[0].IPNet.IP.String()
		}

		if c.linkInfo != nil {
			info, err := c.linkInfo.LinkInfo(attrs.Name)
			if err != nil {
				logger.WithError(err).WithField("interface", attrs.Name).Debug("Link info unavailable")
			} else {
				raw.Driver = info.Driver
				raw.BusInfo = info.BusInfo
				raw.LinkSpeedMbps = info.SpeedMbps
			}
		}
		ifaces = append(ifaces, raw)
	}
	return ifaces, nil
}

func (c *CommanderAdapter) SetInterfaceAddress(ctx context.Context, name, ip, netmask string) error {
	return fmt.Errorf("set address on %s: %w", name, types.ErrUnsupportedPlatform)
}

func (c *CommanderAdapter) DisableInterface(ctx context.Context, name string) error {
	return fmt.Errorf("disable %s: %w", name, types.ErrUnsupportedPlatform)
}

func (c *CommanderAdapter) GetServiceOrder(ctx context.Context) ([]types.NetworkService, error) {
	return nil, fmt.Errorf("service order: %w", types.ErrUnsupportedPlatform)
}

func (c *CommanderAdapter) SetServiceOrder(ctx context.Context, order types.ServiceOrder) error {
	return fmt.Errorf("service order: %w", types.ErrUnsupportedPlatform)
}

func (c *CommanderAdapter) SetWifiPower(ctx context.Context, device string, on bool) error {
	return fmt.Errorf("wifi power on %s: %w", device, types.ErrUnsupportedPlatform)
}
