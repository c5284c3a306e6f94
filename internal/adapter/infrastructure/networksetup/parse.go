package networksetup

import (
	"bufio"
	"regexp"
	"strconv"
	"strings"

	"darwin-nic/internal/types"
)

// HardwarePort is one block of `networksetup -listallhardwareports`.
type HardwarePort struct {
	Port       string
	Device     string
	MACAddress string
}

// IfconfigInfo is the subset of `ifconfig <device>` output used for detection.
type IfconfigInfo struct {
	IPv4          []string
	MACAddress    string
	Active        bool
	LinkSpeedMbps uint32
}

var (
	serviceLine = regexp.MustCompile(`^\((\d+|\*)\)\s+(.+)$`)
	portLine    = regexp.MustCompile(`^\(Hardware Port:\s*(.*?),\s*Device:\s*(.*?)\)$`)
	mediaSpeed  = regexp.MustCompile(`(?i)\((\d+)(G?)base`)
)

// ParseHardwarePorts parses `networksetup -listallhardwareports`.
func ParseHardwarePorts(output string) []HardwarePort {
	var ports []HardwarePort
	var cur *HardwarePort

	flush := func() {
		if cur != nil && cur.Device != "" {
			ports = append(ports, *cur)
		}
		cur = nil
	}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, "Hardware Port:"):
			flush()
			cur = &HardwarePort{Port: strings.TrimSpace(strings.TrimPrefix(line, "Hardware Port:"))}
		case cur == nil:
			continue
		case strings.HasPrefix(line, "Device:"):
			cur.Device = strings.TrimSpace(strings.TrimPrefix(line, "Device:"))
		case strings.HasPrefix(line, "Ethernet Address:"):
			mac := strings.TrimSpace(strings.TrimPrefix(line, "Ethernet Address:"))
			if mac != "N/A" {
				cur.MACAddress = strings.ToLower(mac)
			}
		case line == "":
			flush()
		}
	}
	flush()
	return ports
}

// ParseIfconfig parses the output of `ifconfig <device>`.
func ParseIfconfig(output string) IfconfigInfo {
	var info IfconfigInfo

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "inet":
			if len(fields) > 1 {
				info.IPv4 = append(info.IPv4, fields[1])
			}
		case "ether":
			if len(fields) > 1 {
				info.MACAddress = strings.ToLower(fields[1])
			}
		case "status:":
			info.Active = len(fields) > 1 && fields[1] == "active"
		case "media:":
			if m := mediaSpeed.FindStringSubmatch(scanner.Text()); m != nil {
				speed, err := strconv.ParseUint(m[1], 10, 32)
				if err == nil {
					if strings.EqualFold(m[2], "G") {
						speed *= 1000
					}
					info.LinkSpeedMbps = uint32(speed)
				}
			}
		}
	}
	return info
}

// ParseServiceOrder parses `networksetup -listnetworkserviceorder`.
func ParseServiceOrder(output string) []types.NetworkService {
	var services []types.NetworkService

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if m := serviceLine.FindStringSubmatch(line); m != nil {
			services = append(services, types.NetworkService{
				Name:     strings.TrimSpace(m[2]),
				Disabled: m[1] == "*",
			})
			continue
		}
		if m := portLine.FindStringSubmatch(line); m != nil && len(services) > 0 {
			last := &services[len(services)-1]
			last.HardwarePort = m[1]
			last.Device = m[2]
		}
	}
	return services
}
