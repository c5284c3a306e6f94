package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedPlatform is returned by every platform variant that cannot
// perform the requested operation.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// DetectionError is returned when interface discovery cannot run.
type DetectionError struct {
	Platform string
	Err      error
}

func (e *DetectionError) Error() string {
	return fmt.Sprintf("interface detection failed on %s: %v", e.Platform, e.Err)
}

func (e *DetectionError) Unwrap() error { return e.Err }

// ProtectedInterfaceError is returned for any mutation request targeting a
// member of the protected set.
type ProtectedInterfaceError struct {
	Interface string
}

func (e *ProtectedInterfaceError) Error() string {
	return fmt.Sprintf("interface %s is protected and cannot be configured", e.Interface)
}

// NotUSBError is returned when the requested interface was not classified as
// a USB adapter.
type NotUSBError struct {
	Interface string
}

func (e *NotUSBError) Error() string {
	return fmt.Sprintf("interface %s is not a USB network adapter", e.Interface)
}

// NoEligibleInterfaceError is returned when selection finds nothing safe to
// configure.
type NoEligibleInterfaceError struct {
	Requested string // Empty when no explicit interface was requested
	Reason    string
}

func (e *NoEligibleInterfaceError) Error() string {
	if e.Requested != "" {
		return fmt.Sprintf("no eligible interface: %s not found among detected interfaces", e.Requested)
	}
	if e.Reason != "" {
		return fmt.Sprintf("no eligible interface: %s", e.Reason)
	}
	return "no eligible USB network interface found"
}

// ValidationError describes one or more invalid NetworkConfig fields.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is a single invalid field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid network configuration"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid network configuration: " + strings.Join(parts, "; ")
}

// HasField reports whether the named field failed validation.
func (e *ValidationError) HasField(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// ApplyError is returned when the OS refuses an address assignment.
type ApplyError struct {
	Interface string
	Err       error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("failed to apply address to %s: %v", e.Interface, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// ReorderError is returned when the service order could not be read or
// written.
type ReorderError struct {
	Err error
}

func (e *ReorderError) Error() string {
	return fmt.Sprintf("failed to reorder network services: %v", e.Err)
}

func (e *ReorderError) Unwrap() error { return e.Err }

// ConnectivityWarning records a reachability probe that failed after a
// committed configuration. It never causes rollback.
type ConnectivityWarning struct {
	Target string
	Kind   string // "icmp" or "dns"
	Err    error
}

func (w *ConnectivityWarning) Error() string {
	return fmt.Sprintf("%s check to %s failed: %v", w.Kind, w.Target, w.Err)
}

func (w *ConnectivityWarning) Unwrap() error { return w.Err }
