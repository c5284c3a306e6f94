package cmd

import (
	"darwin-nic/internal/pkg/config"
	"darwin-nic/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	configFlag    string
	profileFlag   string
	logLevelFlag  string
	logFormatFlag string
	platformFlag  string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "darwin-nic",
	Short: "darwin-nic configures a USB NIC for out-of-band management without losing WiFi",
	Long: `darwin-nic finds the USB Ethernet adapter plugged into this machine, gives it a
static address on the management network and keeps WiFi as the primary route.

Protected interfaces (en0, en1, Wi-Fi, loopback, bridges and tunnels) are never
touched. Other adapters are picked heuristically; run "detect" first and pass
--interface when the top candidate is not the USB adapter you expect.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		if logLevelFlag != "" {
			cfg.Logging.Level = logLevelFlag
		}
		if logFormatFlag != "" {
			cfg.Logging.Format = logFormatFlag
		}
		logging.InitLogger(cfg.Logging)
		if len(cfg.Sources) > 0 {
			logging.GetLogger().WithField("files", cfg.Sources).Debug("Configuration loaded")
		}
		appConfig = cfg
		return nil
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "f", "", "Path to config file (TOML or YAML)")
	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "", "Configuration profile to use")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (json, text, simple, compact)")
	rootCmd.PersistentFlags().StringVar(&platformFlag, "platform", "", "Override the detected platform (darwin, linux)")
}
