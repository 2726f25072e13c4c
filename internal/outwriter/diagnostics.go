package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// CLIDiagnostics prints aggregator events to stderr so warnings never mix
// with a command's data output on stdout. Successful loads stay quiet;
// failures and cross-check divergences are warned about.
type CLIDiagnostics struct {
	out       io.Writer
	useColors bool
}

var _ contract.Diagnostics = &CLIDiagnostics{} // Compile-time check

// NewCLIDiagnostics builds the diagnostics sink wired into the CLI and MCP
// entry points.
func NewCLIDiagnostics(cfg *contract.Config) *CLIDiagnostics {
	return &CLIDiagnostics{out: os.Stderr, useColors: cfg.UseColors}
}

// CategoryLoaded implements the contract.Diagnostics interface. A
// successful load is the normal case and produces no output.
func (d *CLIDiagnostics) CategoryLoaded(schema.ScopeSelection, schema.MetricCategory) {}

// CategoryFailed implements the contract.Diagnostics interface.
func (d *CLIDiagnostics) CategoryFailed(scope schema.ScopeSelection, category schema.MetricCategory, err error) {
	_, _ = fmt.Fprintf(d.out, "Warn loading %s for %s: %v\n", category, scopeLabel(scope), err)
}

// TotalMismatch implements the contract.Diagnostics interface.
func (d *CLIDiagnostics) TotalMismatch(teamID string, summed, aggregate float64) {
	msg := fmt.Sprintf("Warn team %s point totals diverge: members sum to %.2f, backend aggregate reports %.2f",
		teamID, summed, aggregate)
	if d.useColors {
		msg = contract.BehindColor.Sprint(msg)
	}
	_, _ = fmt.Fprintln(d.out, msg)
}

// scopeLabel renders a scope selection for log lines.
func scopeLabel(scope schema.ScopeSelection) string {
	if scope.IsCollaborator() {
		return fmt.Sprintf("collaborator %s (team %s)", scope.CollaboratorID, scope.TeamID)
	}
	return fmt.Sprintf("team %s", scope.TeamID)
}
