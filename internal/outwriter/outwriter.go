// Package outwriter has output and writer logic.
package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for
// the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints a full scope metrics snapshot using the configured
// output format.
func (ow *OutWriter) WriteSummary(metrics schema.ScopeMetrics, cfg *contract.Config) error {
	return WriteSummaryResults(metrics, cfg)
}

// WriteSeries prints productivity series using the configured output format.
func (ow *OutWriter) WriteSeries(series []schema.NamedSeries, cfg *contract.Config) error {
	return WriteSeriesResults(series, cfg)
}

// WriteKPIs prints KPI values using the configured output format.
func (ow *OutWriter) WriteKPIs(kpis []schema.KPIValue, cfg *contract.Config) error {
	return WriteKPIResults(kpis, cfg)
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// createFormatters creates the common formatter closures used across
// multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// getMaxTableLabelWidth calculates the maximum width for series labels in
// table output based on terminal width.
func getMaxTableLabelWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the date and value columns plus table borders
	available := termWidth - 40
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}

// sortedStatuses returns map keys in stable display order.
func sortedStatuses(byStatus map[string]int) []string {
	statuses := make([]string, 0, len(byStatus))
	for status := range byStatus {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	return statuses
}

// LogScopeHeader prints a concise, 2-line header describing the scope and
// window a command ran against.
func LogScopeHeader(cfg *contract.Config, scope schema.ScopeSelection, window schema.DateRange) {
	label := fmt.Sprintf("Team %s", scope.TeamID)
	if scope.IsCollaborator() {
		label = fmt.Sprintf("Collaborator %s (team %s)", scope.CollaboratorID, scope.TeamID)
	}

	scopeEmoji, rangeEmoji := "", ""
	if cfg.UseEmojis {
		scopeEmoji, rangeEmoji = "🔎 ", "📅 "
	}

	// Line 1: what the metrics are scoped to
	fmt.Printf("%sScope: %s\n", scopeEmoji, label)

	// Line 2: the actual date window being aggregated
	fmt.Printf("%sRange: %s → %s (%d days)\n",
		rangeEmoji,
		window.Start.Format(contract.DateKeyFormat),
		window.End.Format(contract.DateKeyFormat),
		window.Days())
}
