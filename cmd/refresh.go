package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// refreshCmd reloads every category, bypassing the record cache.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force-reload every metric category, bypassing the cache.",
	Long: `Reload all dashboard metrics from the remote source.

Cached record sets are skipped for this load only; the refreshed results
are written back to the cache for subsequent commands. Scope and window
are preserved exactly as configured.

Examples:
  # Refresh after a reporting data correction
  pulseboard refresh --team platform

  # Refresh one collaborator's metrics
  pulseboard refresh --team platform --collaborator jdoe`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRefresh(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot refresh metrics", err)
		}
	},
}
