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

// WriteSummaryResults outputs a full scope metrics snapshot, dispatching
// based on the output format configured.
func WriteSummaryResults(metrics schema.ScopeMetrics, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, metrics)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForSummary(csvWriter, metrics, fmtFloat, intFmt)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeSummaryTable(w, metrics, cfg, fmtFloat, intFmt)
		}, "Wrote table")
	}
}

// writeSummaryTable generates and writes the human-readable summary table,
// one row per displayed metric.
func writeSummaryTable(w io.Writer, metrics schema.ScopeMetrics, cfg *contract.Config, fmtFloat func(float64) string, intFmt string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Metric", "Value"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	appendRow := func(category schema.MetricCategory, metric, value string) {
		data = append(data, []string{string(category), metric, value})
	}

	for _, category := range schema.AllCategories {
		if state, ok := metrics.States[category]; ok && state.HasError {
			appendRow(category, "error", contract.TruncateLabel(state.ErrorMessage, getMaxTableLabelWidth(cfg)))
			continue
		}

		switch category {
		case schema.PointsCategory:
			appendRow(category, "total", fmtFloat(metrics.Points.Total))
			appendRow(category, "locked", fmtFloat(metrics.Points.Locked))
			appendRow(category, "unlocked", fmtFloat(metrics.Points.Unlocked))
		case schema.ProgressCategory:
			appendRow(category, "completed", fmt.Sprintf(intFmt, metrics.Progress.Completed))
			appendRow(category, "incomplete", fmt.Sprintf(intFmt, metrics.Progress.Incomplete))
		case schema.ProductivityCategory:
			for _, series := range metrics.Productivity {
				label := contract.TruncateLabel(series.Label, getMaxTableLabelWidth(cfg))
				appendRow(category, label, fmtFloat(sumSeries(series)))
			}
		case schema.PortfolioCategory:
			appendRow(category, "total", fmt.Sprintf(intFmt, metrics.Portfolio.Total))
			for _, status := range sortedStatuses(metrics.Portfolio.ByStatus) {
				appendRow(category, status, fmt.Sprintf(intFmt, metrics.Portfolio.ByStatus[status]))
			}
		case schema.KPIsCategory:
			for _, kpi := range metrics.KPIs {
				value := fmt.Sprintf("%s / %s (%s)",
					fmtFloat(kpi.Value), fmtFloat(kpi.Target), healthLabel(kpi.Attainment(), cfg))
				appendRow(category, kpi.Name, value)
			}
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(metrics.Roster) > 0 {
		if _, err := fmt.Fprintf(w, "Members: %s\n", schema.FormatMembers(metrics.Roster)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Last refresh: %s. Cache backend: %s\n",
		metrics.LastRefresh.Format("2006-01-02 15:04:05"), cfg.CacheBackend); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForSummary writes the summary rows in CSV format.
func writeCSVResultsForSummary(w *csv.Writer, metrics schema.ScopeMetrics, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"category", "metric", "value"}
	if err := w.Write(header); err != nil {
		return err
	}

	writeRow := func(category schema.MetricCategory, metric, value string) error {
		return w.Write([]string{string(category), metric, value})
	}

	for _, category := range schema.AllCategories {
		if state, ok := metrics.States[category]; ok && state.HasError {
			if err := writeRow(category, "error", state.ErrorMessage); err != nil {
				return err
			}
			continue
		}

		var err error
		switch category {
		case schema.PointsCategory:
			if err = writeRow(category, "total", fmtFloat(metrics.Points.Total)); err == nil {
				if err = writeRow(category, "locked", fmtFloat(metrics.Points.Locked)); err == nil {
					err = writeRow(category, "unlocked", fmtFloat(metrics.Points.Unlocked))
				}
			}
		case schema.ProgressCategory:
			if err = writeRow(category, "completed", fmt.Sprintf(intFmt, metrics.Progress.Completed)); err == nil {
				err = writeRow(category, "incomplete", fmt.Sprintf(intFmt, metrics.Progress.Incomplete))
			}
		case schema.ProductivityCategory:
			for _, series := range metrics.Productivity {
				if err = writeRow(category, series.Label, fmtFloat(sumSeries(series))); err != nil {
					break
				}
			}
		case schema.PortfolioCategory:
			if err = writeRow(category, "total", fmt.Sprintf(intFmt, metrics.Portfolio.Total)); err == nil {
				for _, status := range sortedStatuses(metrics.Portfolio.ByStatus) {
					if err = writeRow(category, status, fmt.Sprintf(intFmt, metrics.Portfolio.ByStatus[status])); err != nil {
						break
					}
				}
			}
		case schema.KPIsCategory:
			for _, kpi := range metrics.KPIs {
				value := fmt.Sprintf("%s/%s %s", fmtFloat(kpi.Value), fmtFloat(kpi.Target), contract.GetPlainLabel(kpi.Attainment()))
				if err = writeRow(category, kpi.Name, value); err != nil {
					break
				}
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// healthLabel picks colored or plain KPI labels based on config.
func healthLabel(attainment float64, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorLabel(attainment)
	}
	return contract.GetPlainLabel(attainment)
}

// sumSeries totals the daily values of one completed series.
func sumSeries(series schema.NamedSeries) float64 {
	var total float64
	for _, p := range series.Points {
		total += p.Value
	}
	return total
}
