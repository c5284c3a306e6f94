package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"darwin-nic/internal/adapter/configurator"
	"darwin-nic/internal/pkg/config"
	"darwin-nic/internal/pkg/logging"
	"darwin-nic/internal/pkg/metrics"

	"github.com/spf13/cobra"
)

var (
	deviceIPFlag        string
	laptopIPFlag        string
	netmaskFlag         string
	mgmtNetworkFlag     string
	deviceNameFlag      string
	interfaceFlag       string
	dryRunFlag          bool
	preserveWifiFlag    bool
	metricsTextfileFlag string
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Assign the management address to the USB adapter, keeping WiFi first",
	Example: `  darwin-nic configure --profile lab
  darwin-nic configure --device-ip 10.0.0.1 --laptop-ip 10.0.0.2 --mgmt-network 10.0.0.0/24
  darwin-nic configure --interface en7 --dry-run`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := config.Overrides{
			Profile:     profileFlag,
			DeviceIP:    deviceIPFlag,
			LaptopIP:    laptopIPFlag,
			Netmask:     netmaskFlag,
			MgmtNetwork: mgmtNetworkFlag,
			DeviceName:  deviceNameFlag,
		}
		if cmd.Flags().Changed("preserve-wifi") {
			overrides.PreserveWifi = &preserveWifiFlag
		}
		if cmd.Flags().Changed("dry-run") {
			overrides.DryRun = &dryRunFlag
		}

		netCfg, err := appConfig.Resolve(overrides)
		if err != nil {
			return err
		}

		logger := logging.WithComponent("configure")
		logger.WithFields(map[string]interface{}{
			"device":       netCfg.DeviceName(),
			"device_ip":    netCfg.DeviceIP(),
			"laptop_ip":    fmt.Sprintf("%s/%d", netCfg.LaptopIP(), netCfg.PrefixLength()),
			"mgmt_network": netCfg.MgmtNetwork(),
			"mgmt_gateway": netCfg.MgmtGateway(),
			"dry_run":      netCfg.DryRun(),
		}).Info("Starting configuration")

		// Ctrl-C cancels until the first mutation
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		stack := createPlatformStack(appConfig)
		defer stack.Close()
		recorder := metrics.NewRecorder()
		c := createConfigurator(appConfig, stack, recorder)

		result, runErr := c.Run(ctx, netCfg, configurator.RunOptions{Interface: interfaceFlag})
		renderResult(cmd.OutOrStdout(), result)

		if metricsTextfileFlag != "" {
			if err := recorder.WriteTextfile(metricsTextfileFlag); err != nil {
				logger.WithError(err).Warn("Failed to write metrics")
			}
		}
		return runErr
	},
}

func init() {
	configureCmd.Flags().StringVar(&deviceIPFlag, "device-ip", "", "Address of the managed device")
	configureCmd.Flags().StringVar(&laptopIPFlag, "laptop-ip", "", "Address to assign to the USB adapter")
	configureCmd.Flags().StringVar(&netmaskFlag, "netmask", "", "Netmask for the management link")
	configureCmd.Flags().StringVar(&mgmtNetworkFlag, "mgmt-network", "", "Management network in CIDR form")
	configureCmd.Flags().StringVar(&deviceNameFlag, "device-name", "", "Display name of the managed device")
	configureCmd.Flags().StringVarP(&interfaceFlag, "interface", "i", "", "Configure this device instead of the best USB candidate")
	configureCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Show what would change without touching the host")
	configureCmd.Flags().BoolVar(&preserveWifiFlag, "preserve-wifi", true, "Keep WiFi ahead of the USB adapter in the service order")
	configureCmd.Flags().StringVar(&metricsTextfileFlag, "metrics-textfile", "", "Write Prometheus metrics to this file after the run")
	rootCmd.AddCommand(configureCmd)
}
