// Package parquet provides data structures and functions for exporting
// pulseboard scope load history to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pulseboard/pulseboard/schema"
)

// ScopeLoad represents a single scope load with metadata.
// This struct maps to the pulseboard_scope_loads database table.
type ScopeLoad struct {
	// LoadID is the unique identifier for this scope load
	LoadID int64 `parquet:"load_id,snappy"`

	// StartTime is when the load began
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the load completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// DurationMs is the duration of the load in milliseconds (nullable)
	DurationMs *int32 `parquet:"duration_ms,optional,snappy"`

	// ScopeKind is the scope the load ran under (team, collaborator)
	ScopeKind string `parquet:"scope_kind,snappy"`

	// TeamID is the team the load was scoped to
	TeamID string `parquet:"team_id,snappy"`

	// Collaborator is the collaborator id when the scope was narrowed (nullable)
	Collaborator *string `parquet:"collaborator,optional,snappy"`

	// WindowStart is the inclusive start of the date window
	WindowStart time.Time `parquet:"window_start,snappy"`

	// WindowEnd is the inclusive end of the date window
	WindowEnd time.Time `parquet:"window_end,snappy"`
}

// CategoryResult represents one category's outcome within a scope load.
// This struct maps to the pulseboard_category_results database table.
type CategoryResult struct {
	// LoadID references the parent scope load
	LoadID int64 `parquet:"load_id,snappy"`

	// Category is the metric category (points, progress, productivity, portfolio, kpis)
	Category string `parquet:"category,snappy"`

	// RecordedAt is when the result was recorded
	RecordedAt time.Time `parquet:"recorded_at,snappy"`

	// Value is the category's scalar telemetry value
	Value float64 `parquet:"category_value,snappy"`

	// ErrMessage carries the failure message when the load failed (nullable)
	ErrMessage *string `parquet:"err_message,optional,snappy"`
}

// WriteScopeLoadsParquet writes a slice of ScopeLoad structs to a Parquet file.
func WriteScopeLoadsParquet(data []ScopeLoad, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ScopeLoad struct tags
	writer := parquet.NewGenericWriter[ScopeLoad](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCategoryResultsParquet writes a slice of CategoryResult structs to a Parquet file.
func WriteCategoryResultsParquet(data []CategoryResult, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the CategoryResult struct tags
	writer := parquet.NewGenericWriter[CategoryResult](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertScopeLoadRecords converts schema.ScopeLoadRecord to ScopeLoad for Parquet export.
func ConvertScopeLoadRecords(records []schema.ScopeLoadRecord) []ScopeLoad {
	result := make([]ScopeLoad, len(records))
	for i, record := range records {
		result[i] = ScopeLoad{
			LoadID:       record.LoadID,
			StartTime:    record.StartTime,
			EndTime:      record.EndTime,
			DurationMs:   record.DurationMs,
			ScopeKind:    record.ScopeKind,
			TeamID:       record.TeamID,
			Collaborator: record.Collaborator,
			WindowStart:  record.WindowStart,
			WindowEnd:    record.WindowEnd,
		}
	}
	return result
}

// ConvertCategoryResultRecords converts schema.CategoryResultRecord to CategoryResult for Parquet export.
func ConvertCategoryResultRecords(records []schema.CategoryResultRecord) []CategoryResult {
	result := make([]CategoryResult, len(records))
	for i, record := range records {
		result[i] = CategoryResult{
			LoadID:     record.LoadID,
			Category:   record.Category,
			RecordedAt: record.RecordedAt,
			Value:      record.Value,
			ErrMessage: record.ErrMessage,
		}
	}
	return result
}
