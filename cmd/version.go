package cmd

import (
	"fmt"

	"darwin-nic/internal/pkg/version"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and git info",
	// Skip config loading so version works on a broken config
	PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		info := version.GetGitInfo()
		fmt.Printf("Tag: %s\nBranch: %s\nCommit: %s\nDirty: %v\nGo: %s\n", info.Tag, info.Branch, info.Commit, info.Dirty, info.GoVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
