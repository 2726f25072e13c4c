package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/pulseboard/pulseboard/schema"
)

// SeriesPoint represents one day of one productivity series, flattened for
// columnar export.
type SeriesPoint struct {
	// Label is the series the point belongs to
	Label string `parquet:"label,snappy"`

	// Date is the calendar day of the point
	Date time.Time `parquet:"date,snappy"`

	// Value is the per-day count
	Value float64 `parquet:"value,snappy"`
}

// WriteSeriesParquet writes flattened series points to a Parquet file.
func WriteSeriesParquet(data []SeriesPoint, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[SeriesPoint](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

// ConvertNamedSeries flattens completed series into per-day points.
func ConvertNamedSeries(series []schema.NamedSeries) []SeriesPoint {
	var points []SeriesPoint
	for _, s := range series {
		for _, p := range s.Points {
			points = append(points, SeriesPoint{
				Label: s.Label,
				Date:  p.Date,
				Value: p.Value,
			})
		}
	}
	return points
}
