package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/parquet"
	"github.com/pulseboard/pulseboard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteSeriesResults outputs completed productivity series, dispatching
// based on the output format configured.
func WriteSeriesResults(series []schema.NamedSeries, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, series)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForSeries(csvWriter, series, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeSeriesParquet(series, cfg)
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSeriesTable(w, series, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeSeriesTable generates the human-readable day-by-day table. Columns
// are one per series so days line up across labels.
func writeSeriesTable(w io.Writer, series []schema.NamedSeries, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)

	maxWidth := getMaxTableLabelWidth(cfg)
	headers := []string{"Date"}
	for _, s := range series {
		headers = append(headers, contract.TruncateLabel(s.Label, maxWidth))
	}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// Every completed series spans the same range, so the first series
	// drives the date column.
	var data [][]string
	if len(series) > 0 {
		for i, point := range series[0].Points {
			row := []string{point.Date.Format(contract.DateKeyFormat)}
			for _, s := range series {
				if i < len(s.Points) {
					row = append(row, fmtFloat(s.Points[i].Value))
				} else {
					row = append(row, fmtFloat(0))
				}
			}
			data = append(data, row)
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalDays := 0
	if len(series) > 0 {
		totalDays = len(series[0].Points)
	}
	if _, err := fmt.Fprintf(w, "Showing %d series over %d days\n", len(series), totalDays); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForSeries writes series points in long format, one row per
// label and day.
func writeCSVResultsForSeries(w *csv.Writer, series []schema.NamedSeries, fmtFloat func(float64) string) error {
	header := []string{"label", "date", "value"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, s := range series {
		for _, point := range s.Points {
			row := []string{
				s.Label,
				point.Date.Format(contract.DateKeyFormat),
				fmtFloat(point.Value),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSeriesParquet flattens the series and writes a single Parquet file.
func writeSeriesParquet(series []schema.NamedSeries, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}
	points := parquet.ConvertNamedSeries(series)
	if err := parquet.WriteSeriesParquet(points, cfg.OutputFile); err != nil {
		return fmt.Errorf("error writing Parquet output: %w", err)
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s\n", cfg.OutputFile)
	return nil
}
