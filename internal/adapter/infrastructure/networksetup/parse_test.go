//go:build unit

package networksetup

import (
	"testing"

	"darwin-nic/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hardwarePortsOutput = `
Hardware Port: Wi-Fi
Device: en0
Ethernet Address: A4:83:E7:00:00:01

Hardware Port: Thunderbolt Bridge
Device: bridge0
Ethernet Address: N/A

Hardware Port: USB 10/100/1000 LAN
Device: en5
Ethernet Address: 00:e0:4c:68:01:02

VLAN Configurations
===================
`

const ifconfigActiveOutput = `en5: flags=8863<UP,BROADCAST,SMART,RUNNING,SIMPLEX,MULTICAST> mtu 1500
	options=6467<RXCSUM,TXCSUM,VLAN_MTU,TSO4,TSO6,CHANNEL_IO,PARTIAL_CSUM,ZEROINVERT_CSUM>
	ether 00:E0:4C:68:01:02
	inet6 fe80::1c2b:3a4d:5e6f:7081%en5 prefixlen 64 secured scopeid 0x9
	inet 192.0.2.100 netmask 0xffffff00 broadcast 192.0.2.255
	inet 169.254.10.20 netmask 0xffff0000 broadcast 169.254.255.255
	nd6 options=201<PERFORMNUD,DAD>
	media: autoselect (1000baseT <full-duplex>)
	status: active
`

const ifconfigInactiveOutput = `en6: flags=8822<BROADCAST,SMART,SIMPLEX,MULTICAST> mtu 1500
	ether 00:e0:4c:68:09:09
	media: autoselect (none)
	status: inactive
`

const serviceOrderOutput = `An asterisk (*) denotes that a network service is disabled.
(1) Wi-Fi
(Hardware Port: Wi-Fi, Device: en0)

(2) Thunderbolt Bridge
(Hardware Port: Thunderbolt Bridge, Device: bridge0)

(3) USB 10/100/1000 LAN
(Hardware Port: USB 10/100/1000 LAN, Device: en5)

(*) Bluetooth PAN
(Hardware Port: Bluetooth PAN, Device: en7)

(4) Corp VPN
(Hardware Port: com.wireguard.macos, Device: )
`

func TestParseHardwarePorts(t *testing.T) {
	ports := ParseHardwarePorts(hardwarePortsOutput)
	require.Len(t, ports, 3)

	assert.Equal(t, HardwarePort{Port: "Wi-Fi", Device: "en0", MACAddress: "a4:83:e7:00:00:01"}, ports[0])
	assert.Equal(t, "bridge0", ports[1].Device)
	assert.Empty(t, ports[1].MACAddress)
	assert.Equal(t, "USB 10/100/1000 LAN", ports[2].Port)
	assert.Equal(t, "en5", ports[2].Device)

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, ParseHardwarePorts(""))
	})
}

func TestParseIfconfig(t *testing.T) {
	t.Run("Active", func(t *testing.T) {
		info := ParseIfconfig(ifconfigActiveOutput)
		assert.Equal(t, []string{"192.0.2.100", "169.254.10.20"}, info.IPv4)
		assert.Equal(t, "00:e0:4c:68:01:02", info.MACAddress)
		assert.True(t, info.Active)
		assert.Equal(t, uint32(1000), info.LinkSpeedMbps)
	})

	t.Run("Inactive", func(t *testing.T) {
		info := ParseIfconfig(ifconfigInactiveOutput)
		assert.Empty(t, info.IPv4)
		assert.False(t, info.Active)
		assert.Zero(t, info.LinkSpeedMbps)
	})

	t.Run("MultiGigCapitalised", func(t *testing.T) {
		cases := map[string]uint32{
			"\tmedia: autoselect (2500Base-T <full-duplex>)\n": 2500,
			"\tmedia: autoselect (5000Base-T <full-duplex>)\n": 5000,
			"\tmedia: autoselect (10GBase-T <full-duplex>)\n":  10000,
		}
		for out, want := range cases {
			assert.Equal(t, want, ParseIfconfig(out).LinkSpeedMbps, out)
		}
	})

	t.Run("TenGig", func(t *testing.T) {
		info := ParseIfconfig("\tmedia: autoselect (10GbaseT <full-duplex>)\n")
		assert.Equal(t, uint32(10000), info.LinkSpeedMbps)
	})
}

func TestParseServiceOrder(t *testing.T) {
	services := ParseServiceOrder(serviceOrderOutput)
	require.Len(t, services, 5)

	assert.Equal(t, types.NetworkService{Name: "Wi-Fi", HardwarePort: "Wi-Fi", Device: "en0"}, services[0])
	assert.Equal(t, "en5", services[2].Device)
	assert.True(t, services[3].Disabled)
	assert.Equal(t, "Bluetooth PAN", services[3].Name)
	assert.Equal(t, "Corp VPN", services[4].Name)
	assert.Empty(t, services[4].Device)

	assert.Equal(t, types.ServiceOrder{"Wi-Fi", "Thunderbolt Bridge", "USB 10/100/1000 LAN", "Bluetooth PAN", "Corp VPN"},
		types.ServicesToOrder(services))
}
