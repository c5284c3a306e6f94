package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/types"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DARWIN_NIC_"

// Built-in network defaults, used when no file or flag sets a value.
const (
	DefaultDeviceIP    = "192.0.2.1"
	DefaultLaptopIP    = "192.0.2.100"
	DefaultNetmask     = "255.255.255.0"
	DefaultMgmtNetwork = "198.51.100.0/24"
	DefaultDeviceName  = "Network Device"
)

// Profile is a named set of network values. Empty fields inherit from the
// defaults section.
type Profile struct {
	DeviceIP    string `toml:"device_ip" yaml:"device_ip"`
	LaptopIP    string `toml:"laptop_ip" yaml:"laptop_ip"`
	Netmask     string `toml:"netmask" yaml:"netmask"`
	MgmtNetwork string `toml:"mgmt_network" yaml:"mgmt_network"`
	DeviceName  string `toml:"device_name" yaml:"device_name"`
	Description string `toml:"description" yaml:"description"`
	DeviceType  string `toml:"device_type" yaml:"device_type"`
}

// Defaults holds the values applied before any profile.
type Defaults struct {
	Profile      `yaml:",inline"`
	PreserveWifi *bool `toml:"preserve_wifi" yaml:"preserve_wifi"`
	DryRun       bool  `toml:"dry_run" yaml:"dry_run"`
}

// PlatformConfig tunes the host collaborators.
type PlatformConfig struct {
	WifiDevice      string        `toml:"wifi_device" yaml:"wifi_device"`
	PrimaryServices []string      `toml:"primary_services" yaml:"primary_services"`
	StepTimeout     time.Duration `toml:"step_timeout" yaml:"step_timeout"`
	SnapshotPath    string        `toml:"snapshot_path" yaml:"snapshot_path"`
}

// VerifyConfig tunes the post-configuration probes.
type VerifyConfig struct {
	Disabled  bool          `toml:"disabled" yaml:"disabled"`
	Timeout   time.Duration `toml:"timeout" yaml:"timeout"`
	Endpoints []string      `toml:"endpoints" yaml:"endpoints"`
	DNSName   string        `toml:"dns_name" yaml:"dns_name"`
	DNSServer string        `toml:"dns_server" yaml:"dns_server"`
}

// Config represents the merged configuration from every source
type Config struct {
	DefaultProfile string             `toml:"default_profile" yaml:"default_profile"`
	Defaults       Defaults           `toml:"defaults" yaml:"defaults"`
	Profiles       map[string]Profile `toml:"profiles" yaml:"profiles"`
	Logging        logging.LogConfig  `toml:"logging" yaml:"logging"`
	Platform       PlatformConfig     `toml:"platform" yaml:"platform"`
	Verify         VerifyConfig       `toml:"verify" yaml:"verify"`

	// Sources lists the files that contributed, in load order.
	Sources []string `toml:"-" yaml:"-"`
}

// Overrides are explicit values, typically from command line flags. Nil
// pointers leave the configured value alone.
type Overrides struct {
	Profile      string
	DeviceIP     string
	LaptopIP     string
	Netmask      string
	MgmtNetwork  string
	DeviceName   string
	PreserveWifi *bool
	DryRun       *bool
}

// New returns a configuration holding only the built-in defaults.
func New() *Config {
	preserve := true
	return &Config{
		Defaults: Defaults{
			Profile: Profile{
				DeviceIP:    DefaultDeviceIP,
				LaptopIP:    DefaultLaptopIP,
				Netmask:     DefaultNetmask,
				MgmtNetwork: DefaultMgmtNetwork,
				DeviceName:  DefaultDeviceName,
			},
			PreserveWifi: &preserve,
		},
		Profiles: map[string]Profile{},
		Logging:  logging.LogConfig{Level: "info", Format: "simple"},
	}
}

// SearchPaths returns the candidate files in ascending precedence.
func SearchPaths() []string {
	var paths []string
	paths = append(paths, "/etc/darwin-nic/config.toml")

	home, _ := os.UserHomeDir()
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" && home != "" {
		xdg = filepath.Join(home, ".config")
	}
	if xdg != "" {
		paths = append(paths, filepath.Join(xdg, "darwin-nic", "config.toml"))
	}
	if home != "" {
		paths = append(paths, filepath.Join(home, ".darwin-nic.toml"))
	}
	paths = append(paths, ".darwin-nic.toml", "darwin-nic.toml")
	return paths
}

// Load merges every file on the search path plus explicitPath, then applies
// environment overrides. A missing explicit path is an error; missing search
// path entries are skipped.
func Load(explicitPath string) (*Config, error) {
	cfg := New()

	for _, path := range SearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if explicitPath != "" {
		if err := cfg.mergeFile(explicitPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes a single file on top of the built-in defaults.
func LoadFile(path string) (*Config, error) {
	cfg := New()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var layer Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &layer)
	default:
		_, err = toml.Decode(string(data), &layer)
	}
	if err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.merge(&layer)
	c.Sources = append(c.Sources, path)
	return nil
}

// merge overlays every non-zero value of layer onto c.
func (c *Config) merge(layer *Config) {
	if layer.DefaultProfile != "" {
		c.DefaultProfile = layer.DefaultProfile
	}

	c.Defaults.Profile = mergeProfile(c.Defaults.Profile, layer.Defaults.Profile)
	if layer.Defaults.PreserveWifi != nil {
		v := *layer.Defaults.PreserveWifi
		c.Defaults.PreserveWifi = &v
	}
	if layer.Defaults.DryRun {
		c.Defaults.DryRun = true
	}

	for name, p := range layer.Profiles {
		c.Profiles[name] = mergeProfile(c.Profiles[name], p)
	}

	if layer.Logging.Level != "" {
		c.Logging.Level = layer.Logging.Level
	}
	if layer.Logging.Format != "" {
		c.Logging.Format = layer.Logging.Format
	}

	if layer.Platform.WifiDevice != "" {
		c.Platform.WifiDevice = layer.Platform.WifiDevice
	}
	if len(layer.Platform.PrimaryServices) > 0 {
		c.Platform.PrimaryServices = layer.Platform.PrimaryServices
	}
	if layer.Platform.StepTimeout > 0 {
		c.Platform.StepTimeout = layer.Platform.StepTimeout
	}
	if layer.Platform.SnapshotPath != "" {
		c.Platform.SnapshotPath = layer.Platform.SnapshotPath
	}

	if layer.Verify.Disabled {
		c.Verify.Disabled = true
	}
	if layer.Verify.Timeout > 0 {
		c.Verify.Timeout = layer.Verify.Timeout
	}
	if len(layer.Verify.Endpoints) > 0 {
		c.Verify.Endpoints = layer.Verify.Endpoints
	}
	if layer.Verify.DNSName != "" {
		c.Verify.DNSName = layer.Verify.DNSName
	}
	if layer.Verify.DNSServer != "" {
		c.Verify.DNSServer = layer.Verify.DNSServer
	}
}

func mergeProfile(base, over Profile) Profile {
	if over.DeviceIP != "" {
		base.DeviceIP = over.DeviceIP
	}
	if over.LaptopIP != "" {
		base.LaptopIP = over.LaptopIP
	}
	if over.Netmask != "" {
		base.Netmask = over.Netmask
	}
	if over.MgmtNetwork != "" {
		base.MgmtNetwork = over.MgmtNetwork
	}
	if over.DeviceName != "" {
		base.DeviceName = over.DeviceName
	}
	if over.Description != "" {
		base.Description = over.Description
	}
	if over.DeviceType != "" {
		base.DeviceType = over.DeviceType
	}
	return base
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"DEVICE_IP":    &c.Defaults.DeviceIP,
		"LAPTOP_IP":    &c.Defaults.LaptopIP,
		"NETMASK":      &c.Defaults.Netmask,
		"MGMT_NETWORK": &c.Defaults.MgmtNetwork,
		"DEVICE_NAME":  &c.Defaults.DeviceName,
		"PROFILE":      &c.DefaultProfile,
		"LOG_LEVEL":    &c.Logging.Level,
		"LOG_FORMAT":   &c.Logging.Format,
	}
	for key, dst := range str {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvPrefix + "PRESERVE_WIFI"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sPRESERVE_WIFI %q: %w", EnvPrefix, v, err)
		}
		c.Defaults.PreserveWifi = &b
	}
	if v, ok := lookup(EnvPrefix + "DRY_RUN"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sDRY_RUN %q: %w", EnvPrefix, v, err)
		}
		c.Defaults.DryRun = b
	}
	return nil
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve layers defaults, the selected profile and overrides into validated
// network intent. An empty profile name falls back to default_profile.
func (c *Config) Resolve(o Overrides) (types.NetworkConfig, error) {
	values := c.Defaults.Profile

	name := o.Profile
	if name == "" {
		name = c.DefaultProfile
	}
	if name != "" {
		p, ok := c.Profiles[name]
		if !ok {
			return types.NetworkConfig{}, fmt.Errorf("unknown profile %q (available: %s)", name, strings.Join(c.ProfileNames(), ", "))
		}
		values = mergeProfile(values, p)
	}

	values = mergeProfile(values, Profile{
		DeviceIP:    o.DeviceIP,
		LaptopIP:    o.LaptopIP,
		Netmask:     o.Netmask,
		MgmtNetwork: o.MgmtNetwork,
		DeviceName:  o.DeviceName,
	})

	preserve := true
	if c.Defaults.PreserveWifi != nil {
		preserve = *c.Defaults.PreserveWifi
	}
	if o.PreserveWifi != nil {
		preserve = *o.PreserveWifi
	}
	dryRun := c.Defaults.DryRun
	if o.DryRun != nil {
		dryRun = *o.DryRun
	}

	return types.NewNetworkConfig(types.NetworkConfigParams{
		DeviceIP:     values.DeviceIP,
		LaptopIP:     values.LaptopIP,
		Netmask:      values.Netmask,
		MgmtNetwork:  values.MgmtNetwork,
		DeviceName:   values.DeviceName,
		PreserveWifi: preserve,
		DryRun:       dryRun,
	})
}
