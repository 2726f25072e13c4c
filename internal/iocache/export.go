package iocache

import (
	"errors"
	"fmt"

	"github.com/pulseboard/pulseboard/internal/parquet"
)

// ExecuteSnapshotExport performs the actual export of scope load history to
// Parquet files.
func ExecuteSnapshotExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the snapshot store
	store := Manager.GetSnapshotStore()
	if store == nil {
		return errors.New("snapshot tracking is not configured (set --snapshot-backend)")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get snapshot status: %w", err)
	}

	if status.TotalLoads == 0 {
		return errors.New("no scope load history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scope loads: %d\n", status.TotalLoads)
	fmt.Printf("Total category results: %d\n", status.TableSizes[categoryResultsTable])

	// Retrieve all scope loads
	scopeLoads, err := store.GetAllScopeLoads()
	if err != nil {
		return fmt.Errorf("failed to retrieve scope loads: %w", err)
	}

	// Retrieve all category results
	categoryResults, err := store.GetAllCategoryResults()
	if err != nil {
		return fmt.Errorf("failed to retrieve category results: %w", err)
	}

	// Convert to Parquet format
	parquetLoads := parquet.ConvertScopeLoadRecords(scopeLoads)
	parquetResults := parquet.ConvertCategoryResultRecords(categoryResults)

	// Write scope loads to Parquet
	scopeLoadsFile := outputFile + ".scope_loads.parquet"
	if err := parquet.WriteScopeLoadsParquet(parquetLoads, scopeLoadsFile); err != nil {
		return fmt.Errorf("failed to write scope loads: %w", err)
	}
	fmt.Printf("Exported %d scope loads to: %s\n", len(parquetLoads), scopeLoadsFile)

	// Write category results to Parquet
	categoryResultsFile := outputFile + ".category_results.parquet"
	if err := parquet.WriteCategoryResultsParquet(parquetResults, categoryResultsFile); err != nil {
		return fmt.Errorf("failed to write category results: %w", err)
	}
	fmt.Printf("Exported %d category results to: %s\n", len(parquetResults), categoryResultsFile)

	return nil
}
