//go:build unit

package scorer

import (
	"testing"

	"darwin-nic/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	t.Run("AllSignals", func(t *testing.T) {
		iface := types.NetworkInterface{IsActive: true, Vendor: "ASIX", Index: 6, HardwarePort: "AX88179A", LinkSpeedMbps: 1000}
		assert.Equal(t, 105, Score(iface))
	})

	t.Run("NoSignals", func(t *testing.T) {
		assert.Zero(t, Score(types.NetworkInterface{Index: -1}))
	})

	t.Run("PureFunction", func(t *testing.T) {
		iface := types.NetworkInterface{IsActive: true, Index: 7}
		before := iface
		assert.Equal(t, Score(iface), Score(iface))
		assert.Equal(t, before, iface)
	})
}

func TestRank(t *testing.T) {
	t.Run("SelectsRealtekOverProtected", func(t *testing.T) {
		ifaces := []types.NetworkInterface{
			{Name: "en0", HardwarePort: "Wi-Fi", IsActive: true, IsProtected: true, IsWifi: true, Index: 0},
			{Name: "en1", HardwarePort: "Thunderbolt 1", IsProtected: true, Index: 1},
			{Name: "en5", HardwarePort: "USB 10/100/1000 LAN", Vendor: "Realtek", IsActive: true, IsUSB: true, Index: 5},
		}

		ranked := Rank(ifaces)
		require.Len(t, ranked, 1)
		assert.Equal(t, "en5", ranked[0].Name)
		assert.Equal(t, 100, ranked[0].Score)

		// Input is untouched
		assert.Zero(t, ifaces[2].Score)
	})

	t.Run("ProtectedUSBExcluded", func(t *testing.T) {
		ranked := Rank([]types.NetworkInterface{
			{Name: "en0", IsUSB: true, IsActive: true, Vendor: "Realtek", Index: 0},
		})
		assert.Empty(t, ranked)
	})

	t.Run("NonUSBExcluded", func(t *testing.T) {
		ranked := Rank([]types.NetworkInterface{{Name: "bridge0", IsActive: true}})
		assert.Empty(t, ranked)
	})

	t.Run("TieGoesToLowerIndex", func(t *testing.T) {
		ranked := Rank([]types.NetworkInterface{
			{Name: "en9", HardwarePort: "USB LAN", IsUSB: true, IsActive: true, Index: 9},
			{Name: "en6", HardwarePort: "USB LAN", IsUSB: true, IsActive: true, Index: 6},
			{Name: "en7", HardwarePort: "USB LAN", IsUSB: true, Index: 7},
		})
		require.Len(t, ranked, 3)
		assert.Equal(t, []string{"en6", "en9", "en7"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
		assert.Equal(t, ranked[0].Score, ranked[1].Score)
	})

	t.Run("HigherScoreBeatsLowerIndex", func(t *testing.T) {
		ranked := Rank([]types.NetworkInterface{
			{Name: "en5", HardwarePort: "USB LAN", IsUSB: true, Index: 5},
			{Name: "en8", HardwarePort: "Belkin USB-C", Vendor: "Belkin", IsUSB: true, IsActive: true, Index: 8},
		})
		require.Len(t, ranked, 2)
		assert.Equal(t, "en8", ranked[0].Name)
	})

	t.Run("UnknownIndexSortsLast", func(t *testing.T) {
		ranked := Rank([]types.NetworkInterface{
			{Name: "usb-x", IsUSB: true, Index: -1},
			{Name: "en12", IsUSB: true, Index: 3},
		})
		require.Len(t, ranked, 2)
		assert.Equal(t, "en12", ranked[0].Name)
	})
}
