package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// seriesCmd prints the day-by-day productivity series.
var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Show day-by-day productivity series for a scope.",
	Long: `Print the completed productivity series for the configured scope.

Each action type becomes one labeled series with exactly one point per
calendar day of the window, zero-filled where no activity was recorded.
Days line up across series so the output can feed charts directly.

Examples:
  # Daily activity for a team
  pulseboard series --team platform

  # One collaborator, calendar month view
  pulseboard series --team platform --collaborator jdoe --month 0

  # Long-format CSV for spreadsheets
  pulseboard series --team platform --output csv --output-file activity.csv

  # Columnar export for DuckDB/pandas
  pulseboard series --team platform --output parquet --output-file activity.parquet`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot load series", err)
		}
	},
}
