package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "career-navigator",
	Short: "Career Navigator backend API",
	Long: `Career Navigator backend: authentication, job and progress
tracking, and read-only career reference datasets.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
