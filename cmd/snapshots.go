package cmd

import (
	"fmt"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/iocache"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// snapshotSetup loads minimal configuration needed for snapshot operations.
// This is used by commands that need snapshot access without full shared setup.
func snapshotSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize stores with the loaded config (no record caching for snapshot commands)
	if err := iocache.InitStores(schema.NoneBackend, "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize snapshots: %w", err)
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// snapshotSetupWrapper wraps snapshotSetup to provide PreRunE for snapshot commands.
func snapshotSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotSetup()
}

// snapshotMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func snapshotMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get snapshot-related config values
	backendStr := viper.GetString("snapshot-backend")
	connStr := viper.GetString("snapshot-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = iocache.GetSnapshotDBFilePath()
	}

	cfg.SnapshotBackend = backend
	cfg.SnapshotDBConnect = connStr

	return nil
}

// snapshotMigrateSetupWrapper wraps snapshotMigrateSetup to provide PreRunE for migrate command.
func snapshotMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return snapshotMigrateSetup()
}

// snapshotCmd focused on scope load tracking.
//
// Note: Snapshot subcommands use minimal initialization (snapshotSetup)
// instead of the full sharedSetup used by scope commands. This avoids API
// config validation for simple persistence operations.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Manage scope load history and exports",
	Long: `Manage historical scope load data used for trend tracking.

When enabled, Pulseboard tracks every scope load, storing:
- Load metadata (timestamp, scope, window, duration)
- Per-category outcomes (value or failure message)

This enables longitudinal dashboards and data export for BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show load tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  pulseboard snapshot status

  # Export for analysis in pandas/DuckDB
  pulseboard snapshot export --output-file loads.parquet`,
}

// snapshotClearCmd clears the snapshot data.
var snapshotClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all scope load history",
	Long: `Delete all stored scope loads and category results.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  pulseboard snapshot export --output-file backup.parquet
  pulseboard snapshot clear`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearSnapshots(cfg.SnapshotBackend, iocache.GetSnapshotDBFilePath(), cfg.SnapshotDBConnect); err != nil {
			contract.LogFatal("Failed to clear snapshot data", err)
		}
		fmt.Println("Snapshot data cleared successfully.")
	},
}

// snapshotStatusCmd shows snapshot status.
var snapshotStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display load tracking statistics and connection details",
	Long: `Show detailed information about scope load tracking.

Displays:
- Backend type and connection status
- Total number of scope loads stored
- Last and oldest load timestamps
- Database table sizes

Examples:
  # Check load tracking status
  pulseboard snapshot status`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetSnapshotStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get snapshot status", err)
		}
		iocache.PrintSnapshotStatus(status)
	},
}

// snapshotExportCmd exports snapshot data to Parquet files.
var snapshotExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export load history to Parquet for BI tools and analytics",
	Long: `Export all stored scope load data to Parquet format.

Exports two datasets:
- Scope loads - metadata about each load execution
- Category results - per-category values and failure messages

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  # Export all data
  pulseboard snapshot export --output-file pulseboard-data.parquet

  # Use with DuckDB for analysis
  pulseboard snapshot export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.scope_loads.parquet') LIMIT 10"`,
	PreRunE: snapshotSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteSnapshotExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export snapshot data", err)
		}
	},
}

// snapshotMigrateCmd runs database migrations for the snapshot store.
var snapshotMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the scope load store.

Migrations allow:
- Upgrading to new schema versions when Pulseboard is updated
- Safely modifying database structure without data loss
- Rolling back schema changes if needed

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  pulseboard snapshot migrate

  # Migrate to specific version
  pulseboard snapshot migrate --target-version 2

  # Rollback to previous version
  pulseboard snapshot migrate --target-version 0`,
	PreRunE: snapshotMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateSnapshots(cfg.SnapshotBackend, cfg.SnapshotDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
