package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WritePointsResults outputs the point totals for a scope, dispatching
// based on the output format configured.
func WritePointsResults(points schema.PointsSummary, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, points)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForPoints(csvWriter, points, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricTable(w, [][]string{
				{"total", fmtFloat(points.Total)},
				{"locked", fmtFloat(points.Locked)},
				{"unlocked", fmtFloat(points.Unlocked)},
			})
		}, "Wrote table")
	}
}

// WriteProgressResults outputs the task progress split for a scope,
// dispatching based on the output format configured.
func WriteProgressResults(progress schema.ProgressCounters, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, progress)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForProgress(csvWriter, progress)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMetricTable(w, [][]string{
				{"completed", fmt.Sprintf("%d", progress.Completed)},
				{"incomplete", fmt.Sprintf("%d", progress.Incomplete)},
			})
		}, "Wrote table")
	}
}

// WritePortfolioResults outputs per-status portfolio counts for a scope,
// dispatching based on the output format configured.
func WritePortfolioResults(portfolio schema.PortfolioSummary, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, portfolio)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForPortfolio(csvWriter, portfolio)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writePortfolioTable(w, portfolio)
		}, "Wrote table")
	}
}

// writeMetricTable renders a simple metric/value table for the single
// category commands.
func writeMetricTable(w io.Writer, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// writePortfolioTable generates the human-readable portfolio table.
func writePortfolioTable(w io.Writer, portfolio schema.PortfolioSummary) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Status", "Count"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, status := range sortedStatuses(portfolio.ByStatus) {
		data = append(data, []string{status, fmt.Sprintf("%d", portfolio.ByStatus[status])})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Total items: %d\n", portfolio.Total); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForPoints writes the point totals in CSV format.
func writeCSVResultsForPoints(w *csv.Writer, points schema.PointsSummary, fmtFloat func(float64) string) error {
	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	rows := [][]string{
		{"total", fmtFloat(points.Total)},
		{"locked", fmtFloat(points.Locked)},
		{"unlocked", fmtFloat(points.Unlocked)},
	}
	return w.WriteAll(rows)
}

// writeCSVResultsForProgress writes the progress counters in CSV format.
func writeCSVResultsForProgress(w *csv.Writer, progress schema.ProgressCounters) error {
	if err := w.Write([]string{"metric", "value"}); err != nil {
		return err
	}
	rows := [][]string{
		{"completed", fmt.Sprintf("%d", progress.Completed)},
		{"incomplete", fmt.Sprintf("%d", progress.Incomplete)},
	}
	return w.WriteAll(rows)
}

// writeCSVResultsForPortfolio writes per-status counts in CSV format.
func writeCSVResultsForPortfolio(w *csv.Writer, portfolio schema.PortfolioSummary) error {
	if err := w.Write([]string{"status", "count"}); err != nil {
		return err
	}
	for _, status := range sortedStatuses(portfolio.ByStatus) {
		if err := w.Write([]string{status, fmt.Sprintf("%d", portfolio.ByStatus[status])}); err != nil {
			return err
		}
	}
	return w.Write([]string{"total", fmt.Sprintf("%d", portfolio.Total)})
}
