package schema

import "time"

// PointsSummary is the per-scope point totals shown on the dashboard.
// Locked points were earned but not yet released for redemption.
type PointsSummary struct {
	Total    float64 `json:"total"`
	Locked   float64 `json:"locked"`
	Unlocked float64 `json:"unlocked"`
}

// ProgressCounters is the per-scope task progress split.
type ProgressCounters struct {
	Incomplete int `json:"incomplete"`
	Completed  int `json:"completed"`
}

// PortfolioItem is one portfolio entry attributed to a scope, with a
// lifecycle status key (e.g. "draft", "submitted", "approved").
type PortfolioItem struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

// PortfolioSummary groups portfolio items by status for a scope.
type PortfolioSummary struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

// KPIValue is one named indicator with its current value and the target the
// business rules assigned to it. Targets arrive as data; thresholds and
// color policy belong to the caller.
type KPIValue struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Target float64 `json:"target"`
}

// Attainment returns Value/Target as a percentage, or 0 when no target is set.
func (k KPIValue) Attainment() float64 {
	if k.Target == 0 {
		return 0
	}
	return k.Value / k.Target * 100
}

// ScopeMetrics is the full result of one scope load: every category's value
// plus its load state, the scope and window they were computed for, and the
// refresh timestamp for display.
type ScopeMetrics struct {
	Scope        ScopeSelection                    `json:"scope"`
	Window       DateRange                         `json:"window"`
	Points       PointsSummary                     `json:"points"`
	Progress     ProgressCounters                  `json:"progress"`
	Productivity []NamedSeries                     `json:"productivity"`
	Portfolio    PortfolioSummary                  `json:"portfolio"`
	KPIs         []KPIValue                        `json:"kpis"`
	Roster       []Member                          `json:"roster,omitempty"`
	States       map[MetricCategory]CategoryState  `json:"states"`
	LastRefresh  time.Time                         `json:"last_refresh"`
}
