// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

//go:generate mockgen -source=infrastructure.go -destination=../mock/infrastructure.go -package=mock

import (
	"context"
	"time"

	"darwin-nic/internal/types"

	"github.com/vishvananda/netlink"
)

// CommandRunner is a port for executing host commands.
// This interface abstracts process execution so command-driven adapters can be tested.
type CommandRunner interface {
	// Run executes a command and returns its combined output
	Run(ctx context.Context, name string, args ...string) ([]byte, error)

	// RunPrivileged executes a command with elevated privileges
	RunPrivileged(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NetworkManager is a port for read-only kernel link queries.
// This interface abstracts netlink operations used by interface discovery.
type NetworkManager interface {
	// ListLinks returns every link known to the kernel
	ListLinks() ([]netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)
}

// LinkInfoReader is a port for NIC driver queries.
type LinkInfoReader interface {
	// LinkInfo returns speed, driver and bus location for the interface
	LinkInfo(interfaceName string) (types.LinkInfo, error)
}

// Prober is a port for reachability checks.
type Prober interface {
	// Ping sends ICMP echo requests and returns the average round trip
	Ping(ctx context.Context, target string, timeout time.Duration) (time.Duration, error)

	// Resolve looks up an A record through the given DNS server
	Resolve(ctx context.Context, name, server string, timeout time.Duration) ([]string, error)
}

// FileManager is a port for file system operations.
// This interface abstracts file read/write operations.
type FileManager interface {
	// ReadFile reads the contents of a file
	ReadFile(filename string) ([]byte, error)

	// WriteFile writes data to a file with specified permissions
	WriteFile(filename string, data []byte, perm int) error

	// FileExists checks if a file exists
	FileExists(filename string) bool

	// MkdirAll creates a directory and any missing parents
	MkdirAll(path string, perm int) error
}
