//go:build integration

package test

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"darwin-nic/internal/adapter/configurator"
	"darwin-nic/internal/adapter/detector"
	"darwin-nic/internal/adapter/infrastructure/file"
	"darwin-nic/internal/adapter/infrastructure/networksetup"
	"darwin-nic/internal/adapter/serviceorder"
	"darwin-nic/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type hostPort struct {
	port   string
	device string
	mac    string
	active bool
	speed  string
}

// fakeMac answers networksetup and ifconfig the way a MacBook with a
// Realtek USB adapter on en5 does.
type fakeMac struct {
	mu        sync.Mutex
	ports     []hostPort
	addrs     map[string][]string
	up        map[string]bool
	services  []string
	airport   bool
	failOrder bool
	mutations []string
}

func newFakeMac() *fakeMac {
	return &fakeMac{
		ports: []hostPort{
			{port: "Wi-Fi", device: "en0", mac: "a4:83:e7:11:22:33", active: true},
			{port: "Thunderbolt Bridge", device: "bridge0", mac: "N/A"},
			{port: "Thunderbolt 1", device: "en1", mac: "82:0a:31:aa:bb:01"},
			{port: "USB 10/100/1000 LAN", device: "en5", mac: "00:e0:4c:68:01:02", active: true, speed: "1000baseT"},
		},
		addrs:    map[string][]string{"en0": {"10.0.0.5"}, "en5": {"169.254.10.20"}},
		up:       map[string]bool{"en0": true, "en5": true},
		services: []string{"USB 10/100/1000 LAN", "Wi-Fi", "Thunderbolt Bridge"},
		airport:  false,
	}
}

func (m *fakeMac) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case name == "networksetup" && len(args) == 1 && args[0] == "-listallhardwareports":
		var b strings.Builder
		for _, p := range m.ports {
			fmt.Fprintf(&b, "\nHardware Port: %s\nDevice: %s\nEthernet Address: %s\n", p.port, p.device, p.mac)
		}
		return []byte(b.String()), nil
	case name == "networksetup" && len(args) == 1 && args[0] == "-listnetworkserviceorder":
		var b strings.Builder
		b.WriteString("An asterisk (*) denotes that a network service is disabled.\n")
		for i, s := range m.services {
			fmt.Fprintf(&b, "(%d) %s\n(Hardware Port: %s, Device: %s)\n\n", i+1, s, s, m.deviceFor(s))
		}
		return []byte(b.String()), nil
	case name == "ifconfig" && len(args) == 1:
		return m.ifconfig(args[0])
	}
	return nil, fmt.Errorf("unexpected command %s %v", name, args)
}

func (m *fakeMac) RunPrivileged(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations = append(m.mutations, name+" "+strings.Join(args, " "))

	switch {
	case name == "ifconfig" && len(args) == 3 && args[2] == "-alias":
		m.removeAddr(args[0], args[1])
		return nil, nil
	case name == "ifconfig" && len(args) == 5 && args[2] == "netmask":
		m.addrs[args[0]] = append(m.addrs[args[0]], args[1])
		m.up[args[0]] = true
		return nil, nil
	case name == "ifconfig" && len(args) == 2 && args[1] == "down":
		m.up[args[0]] = false
		return nil, nil
	case name == "networksetup" && len(args) > 1 && args[0] == "-ordernetworkservices":
		if m.failOrder {
			return nil, errors.New("exit status 4")
		}
		m.services = append([]string(nil), args[1:]...)
		return nil, nil
	case name == "networksetup" && len(args) == 3 && args[0] == "-setairportpower":
		m.airport = args[2] == "on"
		return nil, nil
	}
	return nil, fmt.Errorf("unexpected privileged command %s %v", name, args)
}

func (m *fakeMac) ifconfig(device string) ([]byte, error) {
	for _, p := range m.ports {
		if p.device != device {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s: flags=8863<UP,BROADCAST,SMART,RUNNING,SIMPLEX,MULTICAST> mtu 1500\n", device)
		if p.mac != "N/A" {
			fmt.Fprintf(&b, "\tether %s\n", p.mac)
		}
		for _, a := range m.addrs[device] {
			fmt.Fprintf(&b, "\tinet %s netmask 0xffffff00 broadcast 0.0.0.0\n", a)
		}
		if p.speed != "" {
			fmt.Fprintf(&b, "\tmedia: autoselect (%s <full-duplex>)\n", p.speed)
		}
		status := "inactive"
		if p.active && m.up[device] {
			status = "active"
		}
		fmt.Fprintf(&b, "\tstatus: %s\n", status)
		return []byte(b.String()), nil
	}
	return nil, fmt.Errorf("ifconfig: interface %s does not exist", device)
}

func (m *fakeMac) deviceFor(service string) string {
	for _, p := range m.ports {
		if p.port == service {
			return p.device
		}
	}
	return ""
}

func (m *fakeMac) removeAddr(device, addr string) {
	kept := m.addrs[device][:0]
	for _, a := range m.addrs[device] {
		if a != addr {
			kept = append(kept, a)
		}
	}
	m.addrs[device] = kept
}

func (m *fakeMac) snapshot() (services []string, en5 []string, en5Up bool, airport bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.services...), append([]string(nil), m.addrs["en5"]...), m.up["en5"], m.airport
}

type reachable struct{}

func (reachable) Ping(ctx context.Context, target string, timeout time.Duration) (time.Duration, error) {
	return time.Millisecond, nil
}

func (reachable) Resolve(ctx context.Context, name, server string, timeout time.Duration) ([]string, error) {
	return []string{"17.253.144.10"}, nil
}

func networkConfig(t *testing.T, dryRun bool) types.NetworkConfig {
	t.Helper()
	cfg, err := types.NewNetworkConfig(types.NetworkConfigParams{
		DeviceIP:     "192.0.2.1",
		LaptopIP:     "192.0.2.100",
		Netmask:      "255.255.255.0",
		MgmtNetwork:  "198.51.100.0/24",
		DeviceName:   "Core switch",
		PreserveWifi: true,
		DryRun:       dryRun,
	})
	require.NoError(t, err)
	return cfg
}

type stack struct {
	host         *fakeMac
	configurator *configurator.Configurator
	orders       *serviceorder.Manager
}

func newStack(t *testing.T) *stack {
	host := newFakeMac()
	commander := networksetup.NewCommanderAdapter(host)
	store := serviceorder.NewFileStore(filepath.Join(t.TempDir(), "darwin-nic", "service-order.yaml"), file.NewManagerAdapter())

	return &stack{
		host: host,
		configurator: configurator.New(configurator.Config{
			Detector:    detector.New(detector.Darwin, commander),
			Commander:   commander,
			Store:       store,
			Prober:      reachable{},
			StepTimeout: 2 * time.Second,
		}),
		orders: serviceorder.NewManager(commander, store, serviceorder.Options{}),
	}
}

// TestConfigureAndRestore drives the full configure and restore cycle
// against a simulated macOS host.
func TestConfigureAndRestore(t *testing.T) {
	s := newStack(t)
	ctx := context.Background()

	t.Run("Configure", func(t *testing.T) {
		result, err := s.configurator.Run(ctx, networkConfig(t, false), configurator.RunOptions{})
		require.NoError(t, err)
		assert.Equal(t, types.StateCommitted, result.State)
		require.NotNil(t, result.Selected)
		assert.Equal(t, "en5", result.Selected.Name)
		assert.True(t, result.Verification.Passed())

		services, en5, up, _ := s.host.snapshot()
		assert.Equal(t, []string{"Wi-Fi", "Thunderbolt Bridge", "USB 10/100/1000 LAN"}, services)
		assert.Equal(t, []string{"192.0.2.100"}, en5)
		assert.True(t, up)
	})

	t.Run("ConfigureAgainIsIdempotent", func(t *testing.T) {
		before := len(s.host.mutations)
		result, err := s.configurator.Run(ctx, networkConfig(t, false), configurator.RunOptions{})
		require.NoError(t, err)
		require.NotEmpty(t, result.Actions)
		assert.True(t, result.Actions[0].Skipped)
		assert.Equal(t, before, len(s.host.mutations))
	})

	t.Run("Restore", func(t *testing.T) {
		order, err := s.orders.Restore(ctx)
		require.NoError(t, err)
		assert.Equal(t, types.ServiceOrder{"Wi-Fi", "Thunderbolt Bridge", "USB 10/100/1000 LAN"}, order)

		services, _, _, airport := s.host.snapshot()
		assert.Equal(t, []string(order), services)
		assert.True(t, airport)
	})
}

func TestReorderFailureRollsBack(t *testing.T) {
	s := newStack(t)
	s.host.failOrder = true

	result, err := s.configurator.Run(context.Background(), networkConfig(t, false), configurator.RunOptions{})
	var rerr *types.ReorderError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, types.StateFailed, result.State)
	assert.True(t, result.Rollback.InterfaceReset)

	services, en5, up, _ := s.host.snapshot()
	assert.Equal(t, []string{"USB 10/100/1000 LAN", "Wi-Fi", "Thunderbolt Bridge"}, services)
	assert.Empty(t, en5)
	assert.False(t, up)
}

func TestDryRunLeavesHostUntouched(t *testing.T) {
	s := newStack(t)

	result, err := s.configurator.Run(context.Background(), networkConfig(t, true), configurator.RunOptions{})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.NotEmpty(t, result.Actions)
	assert.Empty(t, s.host.mutations)
}

func TestProtectedInterfaceNeverTouched(t *testing.T) {
	s := newStack(t)

	_, err := s.configurator.Run(context.Background(), networkConfig(t, false), configurator.RunOptions{Interface: "en0"})
	var perr *types.ProtectedInterfaceError
	require.ErrorAs(t, err, &perr)
	assert.Empty(t, s.host.mutations)
}
