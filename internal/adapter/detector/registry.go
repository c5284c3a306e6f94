// Package detector classifies host interfaces into USB candidates, one
// variant per platform.
package detector

import (
	"context"
	"fmt"
	"runtime"

	"darwin-nic/internal/port"
	"darwin-nic/internal/types"
)

// Platform identifies a detector variant.
type Platform string

const (
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
	Windows Platform = "windows"
)

type factory func(commander port.NetworkCommander) port.Detector

// registry is read-only after package initialisation.
var registry = map[Platform]factory{
	Darwin: newDarwinDetector,
	Linux:  newLinuxDetector,
}

// Current returns the platform of the running process.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// Supported returns true when a real detector exists for the platform.
func Supported(platform Platform) bool {
	_, ok := registry[platform]
	return ok
}

// New returns the detector for platform. Platforms without a variant get one
// that fails every detection pass with a DetectionError.
func New(platform Platform, commander port.NetworkCommander) port.Detector {
	if f, ok := registry[platform]; ok {
		return f(commander)
	}
	return &unsupportedDetector{platform: string(platform)}
}

type unsupportedDetector struct {
	platform string
}

func (d *unsupportedDetector) Platform() string { return d.platform }

func (d *unsupportedDetector) DetectInterfaces(ctx context.Context) ([]types.NetworkInterface, error) {
	return nil, &types.DetectionError{
		Platform: d.platform,
		Err:      fmt.Errorf("no interface detector for %s: %w", d.platform, types.ErrUnsupportedPlatform),
	}
}
