// Package cmd defines the command-line interface for pulseboard.
package cmd

import (
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(portfolioCmd)
	rootCmd.AddCommand(kpisCmd)
	rootCmd.AddCommand(refreshCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(snapshotCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the snapshot subcommands to the parent snapshot command
	snapshotCmd.AddCommand(snapshotClearCmd)
	snapshotCmd.AddCommand(snapshotStatusCmd)
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("base-url", "", "Base URL of the reporting API")
	rootCmd.PersistentFlags().String("token", "", "Bearer token for the reporting API (prefer PULSEBOARD_TOKEN)")
	rootCmd.PersistentFlags().StringP("team", "t", "", "Team id to scope metrics to")
	rootCmd.PersistentFlags().StringP("collaborator", "c", "", "Collaborator id to narrow the scope to one member")
	rootCmd.PersistentFlags().IntP("window", "w", contract.DefaultWindowDays, "Trailing window size in days")
	rootCmd.PersistentFlags().Int("month", 0, "Calendar month view: months before now (0 = current month)")
	rootCmd.PersistentFlags().Int("batch-size", contract.DefaultBatchSize, "Page size for record fetches")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Record cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("snapshot-backend", "", "Scope load tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("snapshot-db-connect", "", "Database connection string for scope load tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in output headers (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of snapshotMigrateCmd to Viper
	snapshotMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(snapshotMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding snapshot migrate flags", err)
	}
}
