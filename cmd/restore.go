package cmd

import (
	"context"
	"fmt"
	"strings"

	"darwin-nic/internal/adapter/serviceorder"
	"darwin-nic/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the service order captured before the last configuration and re-enable WiFi",
	RunE: func(cmd *cobra.Command, args []string) error {
		stack := createPlatformStack(appConfig)
		defer stack.Close()
		if err := requireSupported(stack); err != nil {
			return err
		}

		manager := serviceorder.NewManager(stack.commander, snapshotStore(appConfig), orderOptions(appConfig))
		order, err := manager.Restore(context.Background())
		if err != nil {
			return err
		}

		logging.WithComponent("restore").WithField("order", order).Info("Restore complete")
		fmt.Fprintln(cmd.OutOrStdout(), styleTitle.Render("Service order restored"))
		line(cmd.OutOrStdout(), "Service order", strings.Join(order, " > "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
