package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// portfolioCmd prints per-status portfolio counts for a scope.
var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Show portfolio item counts grouped by status.",
	Long: `Print how many portfolio items the scope holds in each lifecycle
status (for example draft, submitted, approved) within the reporting
window, plus the overall total.

Examples:
  # Team portfolio breakdown
  pulseboard portfolio --team platform

  # Collaborator portfolio as JSON
  pulseboard portfolio --team platform --collaborator jdoe --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePortfolio(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot load portfolio", err)
		}
	},
}
