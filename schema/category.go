package schema

// MetricCategory identifies one independently loadable and failable group
// of displayed metrics. A failure in one category never blocks another.
type MetricCategory string

// All metric categories supported.
const (
	PointsCategory       MetricCategory = "points"
	ProgressCategory     MetricCategory = "progress"
	ProductivityCategory MetricCategory = "productivity"
	PortfolioCategory    MetricCategory = "portfolio"
	KPIsCategory         MetricCategory = "kpis"
)

// AllCategories lists every category in display order.
var AllCategories = []MetricCategory{
	PointsCategory,
	ProgressCategory,
	ProductivityCategory,
	PortfolioCategory,
	KPIsCategory,
}

// CategoryState is the per-category load state exposed to the presentation
// layer. Each category carries its own flags so the UI can render partial
// dashboards while other categories are still loading or have failed.
type CategoryState struct {
	IsLoading    bool   `json:"is_loading"`
	HasError     bool   `json:"has_error"`
	ErrorMessage string `json:"error_message,omitempty"`
}
