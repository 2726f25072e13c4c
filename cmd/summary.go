package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd loads every metric category for the configured scope.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show every metric category for a team or collaborator.",
	Long: `Load all dashboard metrics for the configured scope in one pass.

Fetches and aggregates every category concurrently:
- Points (total, locked, unlocked)
- Progress (completed vs incomplete tasks)
- Productivity (per-action daily series totals)
- Portfolio (items grouped by lifecycle status)
- KPIs (values, targets and health labels)

A failure in one category is reported inline and never blocks the others.

Examples:
  # Team-wide summary over the default trailing window
  pulseboard summary --team platform

  # One collaborator over the last 90 days
  pulseboard summary --team platform --collaborator jdoe --window 90

  # Calendar view of last month, exported as JSON
  pulseboard summary --team platform --month 1 --output json --output-file summary.json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot load summary", err)
		}
	},
}
