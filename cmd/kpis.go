package cmd

import (
	"github.com/pulseboard/pulseboard/core"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/spf13/cobra"
)

// kpisCmd prints KPI values with targets and health labels.
var kpisCmd = &cobra.Command{
	Use:   "kpis",
	Short: "Show KPI values with targets and health labels.",
	Long: `Print the key performance indicators for the configured scope.

Each KPI shows its current value, the target assigned by the reporting
source, the attainment percentage and a health label:
- Ahead   (at or above target)
- OnPace  (close to target)
- Behind  (clearly under target)
- Stalled (little to no progress)

Examples:
  # Team KPIs with colored labels
  pulseboard kpis --team platform

  # Collaborator KPIs as JSON
  pulseboard kpis --team platform --collaborator jdoe --output json`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteKPIs(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot load KPIs", err)
		}
	},
}
