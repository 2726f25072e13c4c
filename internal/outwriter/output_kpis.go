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

// WriteKPIResults outputs KPI values, dispatching based on the output
// format configured.
func WriteKPIResults(kpis []schema.KPIValue, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, kpis)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			csvWriter := csv.NewWriter(w)
			defer csvWriter.Flush()
			return writeCSVResultsForKPIs(csvWriter, kpis, fmtFloat)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeKPITable(w, kpis, cfg, fmtFloat)
		}, "Wrote table")
	}
}

// writeKPITable generates the human-readable KPI table.
func writeKPITable(w io.Writer, kpis []schema.KPIValue, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Name", "Value", "Target", "Attainment", "Health"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, kpi := range kpis {
		attainment := kpi.Attainment()
		row := []string{
			contract.TruncateLabel(kpi.Name, getMaxTableLabelWidth(cfg)),
			fmtFloat(kpi.Value),
			fmtFloat(kpi.Target),
			fmt.Sprintf("%.0f%%", attainment),
			healthLabel(attainment, cfg),
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Showing %d KPIs\n", len(kpis)); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForKPIs writes the KPI values in CSV format.
func writeCSVResultsForKPIs(w *csv.Writer, kpis []schema.KPIValue, fmtFloat func(float64) string) error {
	header := []string{"name", "value", "target", "attainment", "health"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, kpi := range kpis {
		attainment := kpi.Attainment()
		row := []string{
			kpi.Name,
			fmtFloat(kpi.Value),
			fmtFloat(kpi.Target),
			fmt.Sprintf("%.0f", attainment),
			contract.GetPlainLabel(attainment),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
