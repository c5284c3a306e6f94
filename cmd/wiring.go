package cmd

import (
	"fmt"
	"os"

	"darwin-nic/internal/adapter/configurator"
	"darwin-nic/internal/adapter/detector"
	"darwin-nic/internal/adapter/infrastructure/exec"
	"darwin-nic/internal/adapter/infrastructure/file"
	"darwin-nic/internal/adapter/infrastructure/linkinfo"
	"darwin-nic/internal/adapter/infrastructure/network"
	"darwin-nic/internal/adapter/infrastructure/networksetup"
	"darwin-nic/internal/adapter/infrastructure/probe"
	"darwin-nic/internal/adapter/serviceorder"
	"darwin-nic/internal/pkg/config"
	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/pkg/metrics"
	"darwin-nic/internal/port"
)

// pingCount is the number of echo requests per reachability probe.
const pingCount = 3

// platformStack bundles the platform specific collaborators.
type platformStack struct {
	platform  detector.Platform
	commander port.NetworkCommander
	detector  port.Detector
	closers   []func()
}

// Close releases handles opened for the stack.
func (s *platformStack) Close() {
	for _, c := range s.closers {
		c()
	}
}

func selectedPlatform() detector.Platform {
	if platformFlag != "" {
		return detector.Platform(platformFlag)
	}
	return detector.Current()
}

// createPlatformStack creates the commander and detector for the running (or requested) platform
func createPlatformStack(cfg *config.Config) *platformStack {
	logger := logging.WithComponent("wiring")
	platform := selectedPlatform()

	var commander port.NetworkCommander
	var closers []func()
	switch platform {
	case detector.Linux:
		var linkInfo port.LinkInfoReader
		if reader, err := linkinfo.NewReaderAdapter(); err != nil {
			logger.WithError(err).Debug("Link details unavailable, USB classification limited to link names")
		} else {
			linkInfo = reader
			closers = append(closers, reader.Close)
		}
		commander = network.NewCommanderAdapter(network.NewManagerAdapter(), linkInfo)
	default:
		// Unsupported platforms still get a commander; their detector refuses every pass
		commander = networksetup.NewCommanderAdapter(exec.NewRunnerAdapter(cfg.Platform.StepTimeout))
	}

	logger.WithFields(map[string]interface{}{
		"platform":  platform,
		"supported": detector.Supported(platform),
	}).Debug("Created platform adapters")

	return &platformStack{
		platform:  platform,
		commander: commander,
		detector:  detector.New(platform, commander),
		closers:   closers,
	}
}

func snapshotStore(cfg *config.Config) port.SnapshotStore {
	path := cfg.Platform.SnapshotPath
	if path == "" {
		path = serviceorder.DefaultSnapshotPath()
	}
	return serviceorder.NewFileStore(path, file.NewManagerAdapter())
}

func orderOptions(cfg *config.Config) serviceorder.Options {
	return serviceorder.Options{
		PrimaryServices: cfg.Platform.PrimaryServices,
		WifiDevice:      cfg.Platform.WifiDevice,
	}
}

// createConfigurator wires a Configurator from configuration and platform adapters
func createConfigurator(cfg *config.Config, stack *platformStack, recorder *metrics.Recorder) *configurator.Configurator {
	verify := configurator.DefaultVerifyOptions()
	verify.Disabled = cfg.Verify.Disabled
	if cfg.Verify.Timeout > 0 {
		verify.Timeout = cfg.Verify.Timeout
	}
	if len(cfg.Verify.Endpoints) > 0 {
		verify.Endpoints = cfg.Verify.Endpoints
	}
	if cfg.Verify.DNSName != "" {
		verify.DNSName = cfg.Verify.DNSName
	}
	if cfg.Verify.DNSServer != "" {
		verify.DNSServer = cfg.Verify.DNSServer
	}

	return configurator.New(configurator.Config{
		Detector:     stack.detector,
		Commander:    stack.commander,
		Store:        snapshotStore(cfg),
		Prober:       probe.NewProberAdapter(pingCount, os.Geteuid() == 0),
		OrderOptions: orderOptions(cfg),
		Verify:       verify,
		Metrics:      recorder,
		StepTimeout:  cfg.Platform.StepTimeout,
	})
}

func requireSupported(stack *platformStack) error {
	if !detector.Supported(stack.platform) {
		return fmt.Errorf("platform %s is not supported (supported: darwin, linux)", stack.platform)
	}
	return nil
}
