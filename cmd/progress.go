package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// progressCmd prints the task progress split for a scope.
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show completed versus incomplete tasks for a scope.",
	Long: `Print how many tasks the scope completed and how many remain open
within the reporting window.

Examples:
  # Team task progress
  pulseboard progress --team platform

  # Collaborator progress as CSV
  pulseboard progress --team platform --collaborator jdoe --output csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteProgress(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot load progress", err)
		}
	},
}
