//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"darwin-nic/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlConfig = `default_profile = "lab"

[defaults]
device_name = "Core switch"
preserve_wifi = false

[profiles.lab]
device_ip = "10.99.0.1"
laptop_ip = "10.99.0.50"
mgmt_network = "10.99.0.0/24"
description = "Lab rack"
device_type = "switch"

[profiles.firewall]
device_ip = "172.16.0.1"
laptop_ip = "172.16.0.2"
netmask = "255.255.255.252"
mgmt_network = "172.16.0.0/30"

[logging]
level = "debug"
format = "compact"

[platform]
wifi_device = "en1"
primary_services = ["Wi-Fi", "Corp VPN"]
step_timeout = "5s"

[verify]
timeout = "2s"
endpoints = ["9.9.9.9"]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("TOML", func(t *testing.T) {
		cfg, err := LoadFile(writeFile(t, tempDir, "config.toml", tomlConfig))
		require.NoError(t, err)

		assert.Equal(t, "lab", cfg.DefaultProfile)
		assert.Equal(t, "Core switch", cfg.Defaults.DeviceName)
		assert.Equal(t, DefaultNetmask, cfg.Defaults.Netmask)
		require.NotNil(t, cfg.Defaults.PreserveWifi)
		assert.False(t, *cfg.Defaults.PreserveWifi)
		assert.Equal(t, []string{"firewall", "lab"}, cfg.ProfileNames())
		assert.Equal(t, "switch", cfg.Profiles["lab"].DeviceType)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "compact", cfg.Logging.Format)
		assert.Equal(t, "en1", cfg.Platform.WifiDevice)
		assert.Equal(t, []string{"Wi-Fi", "Corp VPN"}, cfg.Platform.PrimaryServices)
		assert.Equal(t, 5*time.Second, cfg.Platform.StepTimeout)
		assert.Equal(t, 2*time.Second, cfg.Verify.Timeout)
		assert.Equal(t, []string{"9.9.9.9"}, cfg.Verify.Endpoints)
	})

	t.Run("YAML", func(t *testing.T) {
		yamlConfig := `defaults:
  device_ip: 192.168.88.1
  laptop_ip: 192.168.88.20
profiles:
  mikrotik:
    device_name: hEX
logging:
  format: json
`
		cfg, err := LoadFile(writeFile(t, tempDir, "config.yaml", yamlConfig))
		require.NoError(t, err)
		assert.Equal(t, "192.168.88.1", cfg.Defaults.DeviceIP)
		assert.Equal(t, "192.168.88.20", cfg.Defaults.LaptopIP)
		assert.Equal(t, "hEX", cfg.Profiles["mikrotik"].DeviceName)
		assert.Equal(t, "json", cfg.Logging.Format)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(tempDir, "missing.toml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("InvalidTOML", func(t *testing.T) {
		_, err := LoadFile(writeFile(t, tempDir, "bad.toml", "[defaults\ndevice_ip ="))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "xdg"))

	require.NoError(t, os.MkdirAll(filepath.Join(home, "xdg", "darwin-nic"), 0755))
	writeFile(t, filepath.Join(home, "xdg", "darwin-nic"), "config.toml", "[defaults]\ndevice_ip = \"10.1.1.1\"\ndevice_name = \"From XDG\"\n")
	writeFile(t, home, ".darwin-nic.toml", "[defaults]\ndevice_name = \"From home\"\n")
	explicit := writeFile(t, home, "explicit.toml", "[logging]\nlevel = \"warn\"\n")

	t.Setenv("DARWIN_NIC_LAPTOP_IP", "10.1.1.9")
	t.Setenv("DARWIN_NIC_DRY_RUN", "true")

	cfg, err := Load(explicit)
	require.NoError(t, err)

	assert.Equal(t, "10.1.1.1", cfg.Defaults.DeviceIP)
	assert.Equal(t, "From home", cfg.Defaults.DeviceName)
	assert.Equal(t, "10.1.1.9", cfg.Defaults.LaptopIP)
	assert.True(t, cfg.Defaults.DryRun)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, explicit, cfg.Sources[len(cfg.Sources)-1])

	t.Run("MissingExplicit", func(t *testing.T) {
		_, err := Load(filepath.Join(home, "nope.toml"))
		assert.Error(t, err)
	})

	t.Run("InvalidEnvBool", func(t *testing.T) {
		t.Setenv("DARWIN_NIC_PRESERVE_WIFI", "sometimes")
		_, err := Load("")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DARWIN_NIC_PRESERVE_WIFI")
	})
}

func TestConfig_Resolve(t *testing.T) {
	cfg, err := LoadFile(writeFile(t, t.TempDir(), "config.toml", tomlConfig))
	require.NoError(t, err)

	t.Run("DefaultProfile", func(t *testing.T) {
		nc, err := cfg.Resolve(Overrides{})
		require.NoError(t, err)
		assert.Equal(t, "10.99.0.1", nc.DeviceIP())
		assert.Equal(t, "10.99.0.50", nc.LaptopIP())
		assert.Equal(t, DefaultNetmask, nc.Netmask())
		assert.Equal(t, "Core switch", nc.DeviceName())
		assert.False(t, nc.PreserveWifi())
	})

	t.Run("FlagsOverrideProfile", func(t *testing.T) {
		preserve, dry := true, true
		nc, err := cfg.Resolve(Overrides{
			Profile:      "firewall",
			LaptopIP:     "172.16.0.1",
			DeviceIP:     "172.16.0.2",
			PreserveWifi: &preserve,
			DryRun:       &dry,
		})
		require.NoError(t, err)
		assert.Equal(t, "172.16.0.1", nc.LaptopIP())
		assert.Equal(t, 30, nc.PrefixLength())
		assert.True(t, nc.PreserveWifi())
		assert.True(t, nc.DryRun())
	})

	t.Run("UnknownProfile", func(t *testing.T) {
		_, err := cfg.Resolve(Overrides{Profile: "datacenter"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "firewall, lab")
	})

	t.Run("InvalidValues", func(t *testing.T) {
		_, err := cfg.Resolve(Overrides{LaptopIP: "10.99.0.1"})
		var verr *types.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.True(t, verr.HasField("laptop_ip"))
	})

	t.Run("BuiltInDefaults", func(t *testing.T) {
		nc, err := New().Resolve(Overrides{})
		require.NoError(t, err)
		assert.Equal(t, DefaultDeviceIP, nc.DeviceIP())
		assert.Equal(t, DefaultMgmtNetwork, nc.MgmtNetwork())
		assert.True(t, nc.PreserveWifi())
	})
}
