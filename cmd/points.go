package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// pointsCmd prints the point totals for a scope.
var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Show point totals for a scope.",
	Long: `Print total, locked and unlocked points for the configured scope.

Locked points were earned inside the window but not yet released for
redemption. The total is always the sum of the scope's members, computed
from individual point records rather than the server-side aggregate.

Examples:
  # Team point totals
  pulseboard points --team platform

  # One collaborator over the trailing fortnight
  pulseboard points --team platform --collaborator jdoe --window 14`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePoints(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot load points", err)
		}
	},
}
