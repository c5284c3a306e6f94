// Package networksetup provides the macOS network command adapter implementation,
// driving networksetup(8) and ifconfig(8).
package networksetup

import (
	"context"
	"fmt"
	"slices"

	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/port"
	"darwin-nic/internal/types"
)

const (
	networksetupBin = "networksetup"
	ifconfigBin     = "ifconfig"
)

// CommanderAdapter is an adapter that implements the NetworkCommander port on macOS.
type CommanderAdapter struct {
	runner port.CommandRunner
}

// Ensure CommanderAdapter implements the NetworkCommander port
var _ port.NetworkCommander = (*CommanderAdapter)(nil)

// NewCommanderAdapter creates a new macOS network commander.
func NewCommanderAdapter(runner port.CommandRunner) *CommanderAdapter {
	return &CommanderAdapter{runner: runner}
}

// ListInterfaces combines the hardware port listing with per-device ifconfig output.
func (c *CommanderAdapter) ListInterfaces(ctx context.Context) ([]types.RawInterface, error) {
	logger := logging.WithComponent("networksetup")

	out, err := c.runner.Run(ctx, networksetupBin, "-listallhardwareports")
	if err != nil {
		return nil, fmt.Errorf("failed to list hardware ports: %w", err)
	}

	ports := ParseHardwarePorts(string(out))
	ifaces := make([]types.RawInterface, 0, len(ports))
	for _, hp := range ports {
		raw := types.RawInterface{
			Name:         hp.Device,
			HardwarePort: hp.Port,
			MACAddress:   hp.MACAddress,
			Index:        -1,
		}

		info, err := c.ifconfig(ctx, hp.Device)
		if err != nil {
			logger.WithError(err).WithField("interface", hp.Device).Warn("Failed to read interface details")
		} else {
			if len(info.IPv4) > 0 {
				raw.IPAddress = info.IPv4[0]
			}
			if info.MACAddress != "" {
				raw.MACAddress = info.MACAddress
			}
			raw.IsActive = info.Active
			raw.LinkSpeedMbps = info.LinkSpeedMbps
		}
		ifaces = append(ifaces, raw)
	}

	logger.WithField("count", len(ifaces)).Debug("Listed hardware ports")
	return ifaces, nil
}

// SetInterfaceAddress removes stale IPv4 aliases and assigns the requested address.
func (c *CommanderAdapter) SetInterfaceAddress(ctx context.Context, name, ip, netmask string) error {
	logger := logging.WithComponentAndInterface("networksetup", name)

	info, err := c.ifconfig(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read interface %s: %w", name, err)
	}

	for _, existing := range info.IPv4 {
		if existing == ip {
			continue
		}
		if _, err := c.runner.RunPrivileged(ctx, ifconfigBin, name, existing, "-alias"); err != nil {
			logger.WithError(err).WithField("address", existing).Warn("Failed to remove existing address")
		} else {
			logger.WithField("address", existing).Debug("Removed existing address")
		}
	}

	if _, err := c.runner.RunPrivileged(ctx, ifconfigBin, name, ip, "netmask", netmask, "up"); err != nil {
		return fmt.Errorf("failed to set address %s on %s: %w", ip, name, err)
	}

	// ifconfig can exit 0 without the address landing
	after, err := c.ifconfig(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to read back interface %s: %w", name, err)
	}
	if !slices.Contains(after.IPv4, ip) {
		return fmt.Errorf("address %s not present on %s after assignment (found %v)", ip, name, after.IPv4)
	}
	logger.WithField("ip", ip).Info("Successfully assigned IP address")
	return nil
}

// DisableInterface removes every IPv4 alias and takes the interface down.
func (c *CommanderAdapter) DisableInterface(ctx context.Context, name string) error {
	logger := logging.WithComponentAndInterface("networksetup", name)

	if info, err := c.ifconfig(ctx, name); err == nil {
		for _, addr := range info.IPv4 {
			if _, err := c.runner.RunPrivileged(ctx, ifconfigBin, name, addr, "-alias"); err != nil {
				logger.WithError(err).WithField("address", addr).Warn("Failed to remove address")
			}
		}
	}

	if _, err := c.runner.RunPrivileged(ctx, ifconfigBin, name, "down"); err != nil {
		return fmt.Errorf("failed to disable interface %s: %w", name, err)
	}
	logger.Info("Interface disabled")
	return nil
}

// GetServiceOrder returns network services in priority order.
func (c *CommanderAdapter) GetServiceOrder(ctx context.Context) ([]types.NetworkService, error) {
	out, err := c.runner.Run(ctx, networksetupBin, "-listnetworkserviceorder")
	if err != nil {
		return nil, fmt.Errorf("failed to list network service order: %w", err)
	}
	services := ParseServiceOrder(string(out))
	if len(services) == 0 {
		return nil, fmt.Errorf("network service order is empty")
	}
	return services, nil
}

// SetServiceOrder rewrites the service priority list.
func (c *CommanderAdapter) SetServiceOrder(ctx context.Context, order types.ServiceOrder) error {
	if len(order) == 0 {
		return fmt.Errorf("refusing to apply an empty service order")
	}
	args := append([]string{"-ordernetworkservices"}, order...)
	if _, err := c.runner.RunPrivileged(ctx, networksetupBin, args...); err != nil {
		return fmt.Errorf("failed to order network services: %w", err)
	}
	logging.WithComponent("networksetup").WithField("order", order).Info("Network service order applied")
	return nil
}

// SetWifiPower turns the AirPort radio on the given device on or off.
func (c *CommanderAdapter) SetWifiPower(ctx context.Context, device string, on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	if _, err := c.runner.RunPrivileged(ctx, networksetupBin, "-setairportpower", device, state); err != nil {
		return fmt.Errorf("failed to set wifi power %s on %s: %w", state, device, err)
	}
	logging.WithComponentAndInterface("networksetup", device).WithField("power", state).Info("WiFi power set")
	return nil
}

func (c *CommanderAdapter) ifconfig(ctx context.Context, device string) (IfconfigInfo, error) {
	out, err := c.runner.Run(ctx, ifconfigBin, device)
	if err != nil {
		return IfconfigInfo{}, err
	}
	return ParseIfconfig(string(out)), nil
}
