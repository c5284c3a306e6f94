package types

import (
	"sort"
	"time"
)

// ServiceOrder is an ordered list of network service names, first entry has
// the highest priority.
type ServiceOrder []string

// NetworkService is one entry of the OS service order listing.
type NetworkService struct {
	Name         string `yaml:"name"`
	HardwarePort string `yaml:"hardware_port,omitempty"`
	Device       string `yaml:"device,omitempty"`
	Disabled     bool   `yaml:"disabled,omitempty"`
}

// ServicesToOrder returns the names of services in listing order.
func ServicesToOrder(services []NetworkService) ServiceOrder {
	order := make(ServiceOrder, 0, len(services))
	for _, s := range services {
		order = append(order, s.Name)
	}
	return order
}

// Clone returns an independent copy.
func (o ServiceOrder) Clone() ServiceOrder {
	if o == nil {
		return nil
	}
	out := make(ServiceOrder, len(o))
	copy(out, o)
	return out
}

// Equal reports whether both orders list the same names in the same order.
func (o ServiceOrder) Equal(other ServiceOrder) bool {
	if len(o) != len(other) {
		return false
	}
	for i := range o {
		if o[i] != other[i] {
			return false
		}
	}
	return true
}

// Contains reports whether name is present.
func (o ServiceOrder) Contains(name string) bool {
	for _, n := range o {
		if n == name {
			return true
		}
	}
	return false
}

// IsPermutationOf reports whether o holds exactly the same multiset of names
// as other.
func (o ServiceOrder) IsPermutationOf(other ServiceOrder) bool {
	if len(o) != len(other) {
		return false
	}
	a, b := o.Clone(), other.Clone()
	sort.Strings(a)
	sort.Strings(b)
	return a.Equal(b)
}

// Snapshot is the single last-known-good service order kept for restore.
type Snapshot struct {
	Order         ServiceOrder `yaml:"order"`
	CapturedAt    time.Time    `yaml:"captured_at"`
	TransactionID string       `yaml:"transaction_id,omitempty"`
}

// LinkInfo holds link-layer details read from the NIC driver.
type LinkInfo struct {
	SpeedMbps uint32
	Driver    string
	BusInfo   string
}
