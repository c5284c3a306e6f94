package cmd

import (
	"context"

	"darwin-nic/internal/adapter/scorer"

	"github.com/spf13/cobra"
)

var detectCmd = &cobra.Command{
	Use:     "detect",
	Aliases: []string{"list"},
	Short:   "List interfaces with their USB classification and score",
	RunE: func(cmd *cobra.Command, args []string) error {
		stack := createPlatformStack(appConfig)
		defer stack.Close()

		ifaces, err := stack.detector.DetectInterfaces(context.Background())
		if err != nil {
			return err
		}
		renderInterfaces(cmd.OutOrStdout(), ifaces, scorer.Rank(ifaces))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
