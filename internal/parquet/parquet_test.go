package parquet

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeLoadStructTags(t *testing.T) {
	// Verify struct tags are properly defined for parquet schema inference
	pqSchema := parquet.SchemaOf(new(ScopeLoad))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"load_id",
		"start_time",
		"end_time",
		"duration_ms",
		"scope_kind",
		"team_id",
		"collaborator",
		"window_start",
		"window_end",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestCategoryResultStructTags(t *testing.T) {
	pqSchema := parquet.SchemaOf(new(CategoryResult))
	require.NotNil(t, pqSchema)

	expectedColumns := []string{
		"load_id",
		"category",
		"recorded_at",
		"category_value",
		"err_message",
	}

	for _, colName := range expectedColumns {
		col, ok := pqSchema.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestConvertScopeLoadRecords(t *testing.T) {
	start := time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)
	end := start.Add(2 * time.Second)
	duration := int32(2000)
	collaborator := "alice"

	records := []schema.ScopeLoadRecord{
		{
			LoadID:       1,
			StartTime:    start,
			EndTime:      &end,
			DurationMs:   &duration,
			ScopeKind:    string(schema.CollaboratorScope),
			TeamID:       "platform",
			Collaborator: &collaborator,
			WindowStart:  start.AddDate(0, 0, -30),
			WindowEnd:    start,
		},
		{
			LoadID:    2,
			StartTime: start,
			ScopeKind: string(schema.TeamScope),
			TeamID:    "platform",
		},
	}

	converted := ConvertScopeLoadRecords(records)
	require.Len(t, converted, 2)

	assert.Equal(t, int64(1), converted[0].LoadID)
	require.NotNil(t, converted[0].Collaborator)
	assert.Equal(t, "alice", *converted[0].Collaborator)
	require.NotNil(t, converted[0].DurationMs)
	assert.Equal(t, int32(2000), *converted[0].DurationMs)

	assert.Nil(t, converted[1].EndTime)
	assert.Nil(t, converted[1].Collaborator)
}

func TestConvertNamedSeries(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	series := []schema.NamedSeries{
		{
			Label: "Commits",
			Points: []schema.TimePoint{
				{Date: day, Value: 3},
				{Date: day.AddDate(0, 0, 1), Value: 1},
			},
		},
		{
			Label: "Code Review",
			Points: []schema.TimePoint{
				{Date: day, Value: 2},
			},
		},
	}

	points := ConvertNamedSeries(series)
	require.Len(t, points, 3)
	assert.Equal(t, "Commits", points[0].Label)
	assert.Equal(t, 3.0, points[0].Value)
	assert.Equal(t, "Code Review", points[2].Label)
	assert.True(t, points[2].Date.Equal(day))

	assert.Empty(t, ConvertNamedSeries(nil))
}

func TestWriteSeriesParquet(t *testing.T) {
	tmpDir := t.TempDir()
	outputPath := filepath.Join(tmpDir, "series.parquet")

	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	data := []SeriesPoint{
		{Label: "Commits", Date: day, Value: 3},
		{Label: "Commits", Date: day.AddDate(0, 0, 1), Value: 1},
		{Label: "Code Review", Date: day, Value: 2},
	}

	err := WriteSeriesParquet(data, outputPath)
	require.NoError(t, err, "Writing Parquet file should not produce error")

	info, err := os.Stat(outputPath)
	require.NoError(t, err, "Output file should exist")
	assert.Greater(t, info.Size(), int64(0), "Output file should not be empty")

	// Read back and verify data
	file, err := os.Open(outputPath)
	require.NoError(t, err)
	defer file.Close()

	reader := parquet.NewGenericReader[SeriesPoint](file)
	defer reader.Close()

	readData := make([]SeriesPoint, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err, "Should be able to read data")
	}
	require.Equal(t, len(data), n, "Should read all records")

	for i := range data {
		assert.Equal(t, data[i].Label, readData[i].Label)
		assert.Equal(t, data[i].Value, readData[i].Value)
		assert.WithinDuration(t, data[i].Date, readData[i].Date, time.Millisecond)
	}
}
