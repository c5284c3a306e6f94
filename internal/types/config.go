package types

import (
	"encoding/binary"
	"errors"
	"fmt"
	"net"
	"net/netip"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	if err := validate.RegisterValidation("netmask", validateNetmask); err != nil {
		panic(fmt.Sprintf("failed to register netmask validator: %v", err))
	}
	if err := validate.RegisterValidation("dotted4", validateDotted4); err != nil {
		panic(fmt.Sprintf("failed to register dotted4 validator: %v", err))
	}
}

// validateDotted4 accepts plain dotted-quad IPv4 only; IPv4-mapped IPv6
// text such as "::ffff:192.0.2.1" is rejected.
func validateDotted4(fl validator.FieldLevel) bool {
	addr, err := netip.ParseAddr(fl.Field().String())
	return err == nil && addr.Is4()
}

// validateNetmask accepts dotted-quad IPv4 masks with contiguous leading ones.
func validateNetmask(fl validator.FieldLevel) bool {
	ip := net.ParseIP(fl.Field().String())
	if ip == nil || ip.To4() == nil {
		return false
	}
	ones, bits := net.IPMask(ip.To4()).Size()
	return bits == 32 && ones > 0
}

// NetworkConfigParams carries the raw values used to build a NetworkConfig.
type NetworkConfigParams struct {
	DeviceIP     string `toml:"device_ip" validate:"required,dotted4"`
	LaptopIP     string `toml:"laptop_ip" validate:"required,dotted4"`
	Netmask      string `toml:"netmask" validate:"required,netmask"`
	MgmtNetwork  string `toml:"mgmt_network" validate:"required,cidrv4"`
	DeviceName   string `toml:"device_name" validate:"max=64"`
	PreserveWifi bool   `toml:"preserve_wifi"`
	DryRun       bool   `toml:"dry_run"`
}

// NetworkConfig is the validated, immutable intent for one transaction.
type NetworkConfig struct {
	deviceIP     string
	laptopIP     string
	netmask      string
	mgmtNetwork  string
	deviceName   string
	preserveWifi bool
	dryRun       bool
}

// NewNetworkConfig validates params and returns an immutable configuration.
// Any violation is reported as a *ValidationError.
func NewNetworkConfig(params NetworkConfigParams) (NetworkConfig, error) {
	params.DeviceIP = strings.TrimSpace(params.DeviceIP)
	params.LaptopIP = strings.TrimSpace(params.LaptopIP)
	params.Netmask = strings.TrimSpace(params.Netmask)
	params.MgmtNetwork = strings.TrimSpace(params.MgmtNetwork)

	if err := validate.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			out := &ValidationError{}
			for _, fe := range verrs {
				out.Fields = append(out.Fields, FieldError{
					Field:   fe.Field(),
					Message: validationMessage(fe),
				})
			}
			return NetworkConfig{}, out
		}
		return NetworkConfig{}, fmt.Errorf("failed to validate network configuration: %w", err)
	}

	// Both parse after validation; compare hosts, not spellings
	device := netip.MustParseAddr(params.DeviceIP)
	laptop := netip.MustParseAddr(params.LaptopIP)
	if device == laptop {
		return NetworkConfig{}, &ValidationError{Fields: []FieldError{{
			Field:   "laptop_ip",
			Message: "must differ from device_ip",
		}}}
	}
	params.DeviceIP = device.String()
	params.LaptopIP = laptop.String()

	return NetworkConfig{
		deviceIP:     params.DeviceIP,
		laptopIP:     params.LaptopIP,
		netmask:      params.Netmask,
		mgmtNetwork:  params.MgmtNetwork,
		deviceName:   params.DeviceName,
		preserveWifi: params.PreserveWifi,
		dryRun:       params.DryRun,
	}, nil
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "dotted4":
		return fmt.Sprintf("%q is not a dotted IPv4 address", fe.Value())
	case "netmask":
		return fmt.Sprintf("%q is not a valid IPv4 netmask", fe.Value())
	case "cidrv4":
		return fmt.Sprintf("%q is not a valid IPv4 CIDR", fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("validation failed: %s", fe.Tag())
	}
}

func (c NetworkConfig) DeviceIP() string    { return c.deviceIP }
func (c NetworkConfig) LaptopIP() string    { return c.laptopIP }
func (c NetworkConfig) Netmask() string     { return c.netmask }
func (c NetworkConfig) MgmtNetwork() string { return c.mgmtNetwork }
func (c NetworkConfig) DeviceName() string  { return c.deviceName }
func (c NetworkConfig) PreserveWifi() bool  { return c.preserveWifi }
func (c NetworkConfig) DryRun() bool        { return c.dryRun }

// PrefixLength returns the netmask as a prefix length (e.g., 24).
func (c NetworkConfig) PrefixLength() int {
	ones, _ := net.IPMask(net.ParseIP(c.netmask).To4()).Size()
	return ones
}

// MgmtGateway returns the first host address of the management network.
func (c NetworkConfig) MgmtGateway() string {
	return c.mgmtHost(1)
}

// MgmtTestIP returns the management address used for reachability checks,
// or "" when the management network is too small to hold it.
func (c NetworkConfig) MgmtTestIP() string {
	return c.mgmtHost(10)
}

func (c NetworkConfig) mgmtHost(offset uint32) string {
	_, ipNet, err := net.ParseCIDR(c.mgmtNetwork)
	if err != nil {
		return ""
	}
	base := binary.BigEndian.Uint32(ipNet.IP.To4())
	out := make(net.IP, 4)
	binary.BigEndian.PutUint32(out, base+offset)
	if !ipNet.Contains(out) {
		return ""
	}
	return out.String()
}
