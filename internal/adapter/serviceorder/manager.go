// Package serviceorder reads and rewrites the host network service priority
// while keeping the primary path (WiFi) first.
package serviceorder

import (
	"context"
	"fmt"
	"time"

	"darwin-nic/internal/adapter/detector"
	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/port"
	"darwin-nic/internal/types"
)

// DefaultWifiDevice is the AirPort device on every Mac with built-in WiFi.
const DefaultWifiDevice = "en0"

// Options configure a Manager.
type Options struct {
	// PrimaryServices are always kept first, in this order.
	PrimaryServices []string
	// WifiDevice overrides the radio toggled by Restore.
	WifiDevice string
}

// Manager owns the restore slot and every service order mutation.
type Manager struct {
	commander port.NetworkCommander
	store     port.SnapshotStore
	opts      Options
	now       func() time.Time
}

// Plan is a computed reorder that has not been applied yet.
type Plan struct {
	Old        types.ServiceOrder
	New        types.ServiceOrder
	Primary    []string
	USBService string
}

// Changed reports whether applying the plan alters the host.
func (p Plan) Changed() bool {
	return !p.Old.Equal(p.New)
}

// NewManager creates a service order manager.
func NewManager(commander port.NetworkCommander, store port.SnapshotStore, opts Options) *Manager {
	if len(opts.PrimaryServices) == 0 {
		opts.PrimaryServices = []string{"Wi-Fi"}
	}
	return &Manager{commander: commander, store: store, opts: opts, now: time.Now}
}

// Services reads the live service listing.
func (m *Manager) Services(ctx context.Context) ([]types.NetworkService, error) {
	services, err := m.commander.GetServiceOrder(ctx)
	if err != nil {
		return nil, &types.ReorderError{Err: err}
	}
	return services, nil
}

// PlanFor computes the reorder that keeps primaries first and moves the
// service bound to usb to the end.
func (m *Manager) PlanFor(services []types.NetworkService, usb types.NetworkInterface) Plan {
	current := types.ServicesToOrder(services)
	primary := m.primaryServices(services)
	usbService := usbServiceName(services, usb)

	return Plan{
		Old:        current,
		New:        PreserveWifiPriority(current, primary, usbService),
		Primary:    primary,
		USBService: usbService,
	}
}

// Capture overwrites the restore slot with order.
func (m *Manager) Capture(order types.ServiceOrder, transactionID string) error {
	err := m.store.Save(types.Snapshot{
		Order:         order.Clone(),
		CapturedAt:    m.now().UTC(),
		TransactionID: transactionID,
	})
	if err != nil {
		return fmt.Errorf("failed to capture service order: %w", err)
	}
	return nil
}

// Reorder captures the live order and applies the WiFi-preserving order.
// A failure after capture leaves the restore slot populated; there is no retry.
func (m *Manager) Reorder(ctx context.Context, usb types.NetworkInterface, transactionID string) (Plan, error) {
	logger := logging.WithComponentAndInterface("serviceorder", usb.Name)

	services, err := m.Services(ctx)
	if err != nil {
		return Plan{}, err
	}

	plan := m.PlanFor(services, usb)
	if plan.USBService == "" {
		logger.Warn("No network service bound to interface, keeping primaries first only")
	}

	if err := m.Capture(plan.Old, transactionID); err != nil {
		return plan, &types.ReorderError{Err: err}
	}

	if !plan.Changed() {
		logger.WithField("order", plan.New).Info("Service order already correct, skipping")
		return plan, nil
	}

	if err := m.commander.SetServiceOrder(ctx, plan.New); err != nil {
		return plan, &types.ReorderError{Err: err}
	}
	logger.WithFields(map[string]interface{}{
		"old":     plan.Old,
		"new":     plan.New,
		"primary": plan.Primary,
	}).Info("Service order updated")
	return plan, nil
}

// Rollback re-applies a previously captured order exactly.
func (m *Manager) Rollback(ctx context.Context, order types.ServiceOrder) error {
	if len(order) == 0 {
		return fmt.Errorf("no captured service order to roll back to")
	}
	if err := m.commander.SetServiceOrder(ctx, order); err != nil {
		return &types.ReorderError{Err: err}
	}
	logging.WithComponent("serviceorder").WithField("order", order).Info("Service order rolled back")
	return nil
}

// Restore re-applies the last captured order, switches the WiFi radio back on
// and re-asserts primary-first ordering. Without a snapshot it falls back to
// DefaultOrder.
func (m *Manager) Restore(ctx context.Context) (types.ServiceOrder, error) {
	logger := logging.WithComponent("serviceorder")

	services, liveErr := m.commander.GetServiceOrder(ctx)
	var live types.ServiceOrder
	if liveErr != nil {
		logger.WithError(liveErr).Warn("Failed to read live service order, restoring without reconciliation")
	} else {
		live = types.ServicesToOrder(services)
	}

	snapshot, err := m.store.Load()
	if err != nil {
		logger.WithError(err).Warn("Failed to load service order snapshot, using default order")
		snapshot = nil
	}

	primary := m.primaryServices(services)

	var order types.ServiceOrder
	switch {
	case snapshot != nil && live != nil:
		order = Reconcile(snapshot.Order, live)
		logger.WithField("captured_at", snapshot.CapturedAt).Info("Restoring captured service order")
	case snapshot != nil:
		order = snapshot.Order.Clone()
		logger.WithField("captured_at", snapshot.CapturedAt).Info("Restoring captured service order")
	default:
		order = DefaultOrder(primary, live)
		logger.Info("No service order snapshot found, restoring default order")
	}
	order = PreserveWifiPriority(order, primary, "")

	wifiDevice := m.wifiDevice(services)
	if err := m.commander.SetWifiPower(ctx, wifiDevice, true); err != nil {
		logger.WithError(err).WithField("interface", wifiDevice).Warn("Failed to enable WiFi")
	}

	if err := m.commander.SetServiceOrder(ctx, order); err != nil {
		return nil, &types.ReorderError{Err: err}
	}
	logger.WithField("order", order).Info("Service order restored")
	return order, nil
}

// primaryServices returns the configured primaries followed by any wireless
// service found in the listing.
func (m *Manager) primaryServices(services []types.NetworkService) []string {
	primary := append([]string(nil), m.opts.PrimaryServices...)
	seen := make(map[string]struct{}, len(primary))
	for _, p := range primary {
		seen[p] = struct{}{}
	}
	for _, s := range services {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		if detector.IsWifiPort(s.Name) || detector.IsWifiPort(s.HardwarePort) {
			primary = append(primary, s.Name)
			seen[s.Name] = struct{}{}
		}
	}
	return primary
}

func (m *Manager) wifiDevice(services []types.NetworkService) string {
	if m.opts.WifiDevice != "" {
		return m.opts.WifiDevice
	}
	for _, s := range services {
		if s.Device != "" && (detector.IsWifiPort(s.HardwarePort) || detector.IsWifiPort(s.Name)) {
			return s.Device
		}
	}
	return DefaultWifiDevice
}

// usbServiceName finds the service bound to the interface device, falling
// back to a service named after its hardware port.
func usbServiceName(services []types.NetworkService, usb types.NetworkInterface) string {
	for _, s := range services {
		if usb.Name != "" && s.Device == usb.Name {
			return s.Name
		}
	}
	for _, s := range services {
		if usb.HardwarePort != "" && s.Name == usb.HardwarePort {
			return s.Name
		}
	}
	return ""
}
