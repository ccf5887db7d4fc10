package cmd

import (
	"fmt"

	"github.com/caic-xyz/website/internal/config"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the app.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Version: %s\n", config.Version)
		fmt.Printf("Commit: %s\n", config.CommitHash)
		fmt.Printf("Build timestamp: %s\n", config.BuildTimestamp)
	},
}
