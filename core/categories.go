package core

import (
	"context"
	"fmt"
	"math"

	"github.com/pulseboard/pulseboard/core/dataset"
	"github.com/pulseboard/pulseboard/core/fetch"
	"github.com/pulseboard/pulseboard/core/timeline"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// pointsTolerance is the allowed drift between the summed member total and
// the backend aggregate before a mismatch is reported.
const pointsTolerance = 1e-6

// computeCategory dispatches one category load and returns the mutation to
// apply to the metrics snapshot, a scalar value for snapshot telemetry, and
// the load error if any. The mutation is only applied by the caller when
// the load's epoch is still current.
func (a *Aggregator) computeCategory(
	ctx context.Context,
	category schema.MetricCategory,
	scope schema.ScopeSelection,
	window schema.DateRange,
) (func(*schema.ScopeMetrics), float64, error) {
	switch category {
	case schema.PointsCategory:
		summary, roster, err := a.computePoints(ctx, scope, window)
		return func(m *schema.ScopeMetrics) {
			m.Points = summary
			m.Roster = roster
		}, summary.Total, err

	case schema.ProgressCategory:
		counters, err := a.computeProgress(ctx, scope, window)
		return func(m *schema.ScopeMetrics) { m.Progress = counters }, float64(counters.Completed), err

	case schema.ProductivityCategory:
		series, total, err := a.computeProductivity(ctx, scope, window)
		return func(m *schema.ScopeMetrics) { m.Productivity = series }, total, err

	case schema.PortfolioCategory:
		summary, err := a.computePortfolio(ctx, scope, window)
		return func(m *schema.ScopeMetrics) { m.Portfolio = summary }, float64(summary.Total), err

	case schema.KPIsCategory:
		kpis, err := a.computeKPIs(ctx, scope, window)
		return func(m *schema.ScopeMetrics) { m.KPIs = kpis }, float64(len(kpis)), err

	default:
		return func(*schema.ScopeMetrics) {}, 0, fmt.Errorf("unknown metric category: %s", category)
	}
}

// computePoints derives the point totals for the scope. Team scope uses the
// canonical sum-of-members derivation: each member's point records are
// fetched and summed, which guarantees a single member can never exceed the
// team total for the same window. The backend's own team aggregate is
// consulted only as a cross-check and reported through diagnostics when it
// diverges, never silently substituted.
func (a *Aggregator) computePoints(ctx context.Context, scope schema.ScopeSelection, window schema.DateRange) (schema.PointsSummary, []schema.Member, error) {
	q := queryFor(scope, window)

	if scope.IsCollaborator() {
		records, err := a.fetchPointRecords(ctx, q)
		if err != nil {
			return schema.PointsSummary{}, nil, err
		}
		return summarizePoints(records, window), nil, nil
	}

	members, err := a.roster.ListMembers(ctx, scope.TeamID)
	if err != nil {
		return schema.PointsSummary{}, nil, fmt.Errorf("roster unavailable for team %s: %w", scope.TeamID, err)
	}

	var summary schema.PointsSummary
	for _, member := range members {
		records, err := a.fetchPointRecords(ctx, q.ForCollaborator(member.ID))
		if err != nil {
			return schema.PointsSummary{}, nil, err
		}
		s := summarizePoints(records, window)
		summary.Total += s.Total
		summary.Locked += s.Locked
		summary.Unlocked += s.Unlocked
	}

	a.crossCheckTeamTotal(ctx, q, summary.Total)
	return summary, members, nil
}

// fetchPointRecords drains one scope's point feed through the cache,
// degrading to a partial result when pagination breaks mid-loop.
func (a *Aggregator) fetchPointRecords(ctx context.Context, q contract.RecordQuery) ([]schema.RawDatedRecord, error) {
	records, err := cachedRecordFetch(ctx, a.cache, schema.PointsCategory, q, a.batchSize,
		func(ctx context.Context, offset, limit int) ([]schema.RawDatedRecord, error) {
			return a.records.PointsPage(ctx, q, offset, limit)
		})
	if err != nil && len(records) == 0 {
		return nil, fmt.Errorf("point records unavailable: %w", err)
	}
	return records, nil
}

// crossCheckTeamTotal compares the summed member total against the
// backend's precomputed team aggregate. A cross-check failure is a
// diagnostics event, not a load error.
func (a *Aggregator) crossCheckTeamTotal(ctx context.Context, q contract.RecordQuery, summed float64) {
	aggregate, err := a.records.TeamPointsAggregate(ctx, q)
	if err != nil {
		return
	}
	if math.Abs(aggregate-summed) > pointsTolerance {
		a.diag.TotalMismatch(q.TeamID, summed, aggregate)
	}
}

// summarizePoints splits point records into total, locked and unlocked sums
// for the window.
func summarizePoints(records []schema.RawDatedRecord, window schema.DateRange) schema.PointsSummary {
	return schema.PointsSummary{
		Total:    timeline.SumRecords(records, window),
		Locked:   timeline.SumRecords(filterByKey(records, schema.LockedPointStatus), window),
		Unlocked: timeline.SumRecords(filterByKey(records, schema.UnlockedPointStatus), window),
	}
}

// computeProgress derives the completed/incomplete task split for the scope.
func (a *Aggregator) computeProgress(ctx context.Context, scope schema.ScopeSelection, window schema.DateRange) (schema.ProgressCounters, error) {
	q := queryFor(scope, window)
	records, err := cachedRecordFetch(ctx, a.cache, schema.ProgressCategory, q, a.batchSize,
		func(ctx context.Context, offset, limit int) ([]schema.RawDatedRecord, error) {
			return a.records.TasksPage(ctx, q, offset, limit)
		})
	if err != nil && len(records) == 0 {
		return schema.ProgressCounters{}, fmt.Errorf("task records unavailable: %w", err)
	}

	return schema.ProgressCounters{
		Completed:  int(math.Round(timeline.SumRecords(filterByKey(records, schema.CompletedTaskStatus), window))),
		Incomplete: int(math.Round(timeline.SumRecords(filterByKey(records, schema.PendingTaskStatus), window))),
	}, nil
}

// computeProductivity builds the per-action-type chart datasets for the
// scope, one completed series per record key.
func (a *Aggregator) computeProductivity(ctx context.Context, scope schema.ScopeSelection, window schema.DateRange) ([]schema.NamedSeries, float64, error) {
	q := queryFor(scope, window)
	records, err := cachedRecordFetch(ctx, a.cache, schema.ProductivityCategory, q, a.batchSize,
		func(ctx context.Context, offset, limit int) ([]schema.RawDatedRecord, error) {
			return a.records.ActivityPage(ctx, q, offset, limit)
		})
	if err != nil && len(records) == 0 {
		return nil, 0, fmt.Errorf("activity records unavailable: %w", err)
	}

	series := dataset.BuildPerKeyDatasets(records, window)
	return series, timeline.SumRecords(records, window), nil
}

// computePortfolio groups portfolio items by lifecycle status.
func (a *Aggregator) computePortfolio(ctx context.Context, scope schema.ScopeSelection, window schema.DateRange) (schema.PortfolioSummary, error) {
	q := queryFor(scope, window)
	items, err := fetch.All(ctx, a.batchSize,
		func(ctx context.Context, offset, limit int) ([]schema.PortfolioItem, error) {
			return a.records.PortfolioPage(ctx, q, offset, limit)
		})
	if err != nil && len(items) == 0 {
		return schema.PortfolioSummary{}, fmt.Errorf("portfolio items unavailable: %w", err)
	}

	summary := schema.PortfolioSummary{
		Total:    len(items),
		ByStatus: make(map[string]int),
	}
	for _, item := range items {
		summary.ByStatus[item.Status]++
	}
	return summary, nil
}

// computeKPIs fetches the named indicators for the scope. Targets arrive
// with the values; threshold policy stays with the presentation layer.
func (a *Aggregator) computeKPIs(ctx context.Context, scope schema.ScopeSelection, window schema.DateRange) ([]schema.KPIValue, error) {
	kpis, err := a.records.KPIValues(ctx, queryFor(scope, window))
	if err != nil {
		return nil, fmt.Errorf("key indicators unavailable: %w", err)
	}
	return kpis, nil
}

// filterByKey returns the records carrying the given discriminator key.
func filterByKey(records []schema.RawDatedRecord, key string) []schema.RawDatedRecord {
	filtered := make([]schema.RawDatedRecord, 0, len(records))
	for _, rec := range records {
		if rec.Key == key {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}
