package port

//go:generate mockgen -source=network.go -destination=../mock/network.go -package=mock

import (
	"context"

	"darwin-nic/internal/types"
)

// NetworkCommander is the OS network command interface.
// It is the only path through which host network state is read or mutated;
// platforms that cannot mutate return types.ErrUnsupportedPlatform.
type NetworkCommander interface {
	// ListInterfaces returns the raw attributes of every physical interface
	ListInterfaces(ctx context.Context) ([]types.RawInterface, error)

	// SetInterfaceAddress assigns a static IPv4 address and brings the interface up
	SetInterfaceAddress(ctx context.Context, name, ip, netmask string) error

	// DisableInterface takes the interface down, dropping its address
	DisableInterface(ctx context.Context, name string) error

	// GetServiceOrder returns network services in priority order
	GetServiceOrder(ctx context.Context) ([]types.NetworkService, error)

	// SetServiceOrder rewrites the service priority list
	SetServiceOrder(ctx context.Context, order types.ServiceOrder) error

	// SetWifiPower turns the wireless radio on the given device on or off
	SetWifiPower(ctx context.Context, device string, on bool) error
}

// Detector classifies the host's interfaces for one platform.
type Detector interface {
	// DetectInterfaces runs one detection pass
	DetectInterfaces(ctx context.Context) ([]types.NetworkInterface, error)

	// Platform returns the platform identifier this detector serves
	Platform() string
}

// SnapshotStore holds the single restore slot for the service order.
type SnapshotStore interface {
	// Save overwrites the slot
	Save(snapshot types.Snapshot) error

	// Load returns the slot contents, or nil when empty
	Load() (*types.Snapshot, error)
}
