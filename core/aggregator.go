// Package core has the scoped metrics aggregation logic for pulseboard.
package core

import (
	"context"
	"sync"
	"time"

	"github.com/pulseboard/pulseboard/core/timeline"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// Aggregator orchestrates scope selection and category loads. It is a state
// machine over ScopeSelection: Uninitialized until the first SelectTeam,
// then TeamScope or CollaboratorScope. Every scope or window change reloads
// all metric categories concurrently; each category carries its own loading
// and error state so one failing source never blocks the rest.
//
// Completions are applied under a per-category request epoch: a load result
// is discarded when a newer load for the same category was issued while it
// was in flight, so a slow stale response can never overwrite fresher data.
type Aggregator struct {
	records   contract.RecordSource
	roster    contract.RosterSource
	seasons   contract.SeasonSource
	cache     contract.CacheManager
	diag      contract.Diagnostics
	batchSize int

	mu          sync.Mutex
	scope       schema.ScopeSelection
	window      schema.DateRange
	epochs      map[schema.MetricCategory]uint64
	states      map[schema.MetricCategory]schema.CategoryState
	metrics     schema.ScopeMetrics
	lastRefresh time.Time
}

// NewAggregator wires an aggregator to its collaborators. The cache manager
// and diagnostics sink may be nil; batchSize falls back to the default when
// not positive.
func NewAggregator(
	records contract.RecordSource,
	roster contract.RosterSource,
	seasons contract.SeasonSource,
	cache contract.CacheManager,
	diag contract.Diagnostics,
	batchSize int,
) *Aggregator {
	if diag == nil {
		diag = contract.NopDiagnostics{}
	}
	if batchSize <= 0 {
		batchSize = contract.DefaultBatchSize
	}

	a := &Aggregator{
		records:   records,
		roster:    roster,
		seasons:   seasons,
		cache:     cache,
		diag:      diag,
		batchSize: batchSize,
		scope:     schema.ScopeSelection{Kind: schema.UninitializedScope},
		window:    timeline.RangeForTrailingDays(time.Now(), contract.DefaultWindowDays),
		epochs:    make(map[schema.MetricCategory]uint64),
		states:    make(map[schema.MetricCategory]schema.CategoryState),
	}
	return a
}

// SelectTeam switches to team scope for the given team, clearing any
// collaborator selection, and reloads every metric category.
func (a *Aggregator) SelectTeam(ctx context.Context, teamID string) schema.ScopeMetrics {
	a.mu.Lock()
	a.scope = schema.TeamScopeFor(teamID)
	a.mu.Unlock()
	return a.reloadAll(ctx)
}

// SelectCollaborator narrows the current team scope to one collaborator and
// reloads every category with collaborator-scoped queries. The id is
// accepted as given; an id the source does not recognize yields zero
// metrics rather than an error.
func (a *Aggregator) SelectCollaborator(ctx context.Context, collaboratorID string) schema.ScopeMetrics {
	a.mu.Lock()
	a.scope = schema.CollaboratorScopeFor(a.scope.TeamID, collaboratorID)
	a.mu.Unlock()
	return a.reloadAll(ctx)
}

// ClearCollaborator returns to team scope for the current team and reloads.
func (a *Aggregator) ClearCollaborator(ctx context.Context) schema.ScopeMetrics {
	a.mu.Lock()
	a.scope = schema.TeamScopeFor(a.scope.TeamID)
	a.mu.Unlock()
	return a.reloadAll(ctx)
}

// ChangeDateWindow reloads all categories under the current scope with a
// new date window. Scope is preserved.
func (a *Aggregator) ChangeDateWindow(ctx context.Context, window schema.DateRange) schema.ScopeMetrics {
	a.mu.Lock()
	a.window = schema.DateRange{
		Start: timeline.Midnight(window.Start),
		End:   timeline.Midnight(window.End),
	}
	a.mu.Unlock()
	return a.reloadAll(ctx)
}

// Refresh forces a re-fetch of every category, bypassing cached record
// sets, while deliberately preserving the current scope and window.
func (a *Aggregator) Refresh(ctx context.Context) schema.ScopeMetrics {
	a.mu.Lock()
	a.lastRefresh = time.Now()
	a.mu.Unlock()
	return a.reloadAll(withBypassCache(ctx))
}

// Retry re-issues only the given category's load under the current scope
// and window. Sibling categories are untouched.
func (a *Aggregator) Retry(ctx context.Context, category schema.MetricCategory) schema.ScopeMetrics {
	a.mu.Lock()
	scope, window := a.scope, a.window
	a.epochs[category]++
	epoch := a.epochs[category]
	a.states[category] = schema.CategoryState{IsLoading: true}
	a.mu.Unlock()

	a.loadCategory(ctx, category, scope, window, epoch, 0)
	return a.Metrics()
}

// Metrics returns a snapshot of the last computed metrics together with the
// current scope, window, per-category states and refresh timestamp.
func (a *Aggregator) Metrics() schema.ScopeMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()

	m := a.metrics
	m.Scope = a.scope
	m.Window = a.window
	m.LastRefresh = a.lastRefresh
	m.States = make(map[schema.MetricCategory]schema.CategoryState, len(a.states))
	for c, st := range a.states {
		m.States[c] = st
	}
	return m
}

// Scope returns the active scope selection.
func (a *Aggregator) Scope() schema.ScopeSelection {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.scope
}

// Window returns the active date window.
func (a *Aggregator) Window() schema.DateRange {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window
}

// LastRefresh returns the timestamp of the last explicit Refresh call.
func (a *Aggregator) LastRefresh() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastRefresh
}

// reloadAll fans out one load per category, joins them, and returns the
// resulting snapshot. Category loads run concurrently; a failure in one is
// recorded in its state and never cancels the others.
func (a *Aggregator) reloadAll(ctx context.Context) schema.ScopeMetrics {
	a.mu.Lock()
	scope, window := a.scope, a.window
	if scope.Kind == schema.UninitializedScope {
		// Nothing to load until the first team selection
		a.mu.Unlock()
		return a.Metrics()
	}
	epochs := make(map[schema.MetricCategory]uint64, len(schema.AllCategories))
	for _, category := range schema.AllCategories {
		a.epochs[category]++
		epochs[category] = a.epochs[category]
		a.states[category] = schema.CategoryState{IsLoading: true}
	}
	a.mu.Unlock()

	loadID := a.beginSnapshot(scope, window)

	var wg sync.WaitGroup
	for _, category := range schema.AllCategories {
		wg.Go(func() {
			a.loadCategory(ctx, category, scope, window, epochs[category], loadID)
		})
	}
	wg.Wait()

	a.endSnapshot(loadID)
	return a.Metrics()
}

// loadCategory computes one category and applies the outcome if its epoch
// is still current. Stale completions only clear their loading flag when no
// newer load has started; their values are dropped.
func (a *Aggregator) loadCategory(
	ctx context.Context,
	category schema.MetricCategory,
	scope schema.ScopeSelection,
	window schema.DateRange,
	epoch uint64,
	loadID int64,
) {
	apply, value, err := a.computeCategory(ctx, category, scope, window)

	a.mu.Lock()
	if a.epochs[category] == epoch {
		state := schema.CategoryState{}
		if err != nil {
			state.HasError = true
			state.ErrorMessage = categoryErrMessage(category)
		} else {
			apply(&a.metrics)
		}
		a.states[category] = state
	}
	a.mu.Unlock()

	if err != nil {
		a.diag.CategoryFailed(scope, category, err)
	} else {
		a.diag.CategoryLoaded(scope, category)
	}
	a.recordSnapshot(loadID, category, value, err)
}

// beginSnapshot opens a scope load row in the snapshot store, if one is
// configured. A zero id disables per-category recording for this load.
func (a *Aggregator) beginSnapshot(scope schema.ScopeSelection, window schema.DateRange) int64 {
	store := a.snapshotStore()
	if store == nil {
		return 0
	}
	loadID, err := store.BeginScopeLoad(scope, window)
	if err != nil {
		contract.LogWarn("Snapshot tracking initialization failed", err)
		return 0
	}
	return loadID
}

func (a *Aggregator) recordSnapshot(loadID int64, category schema.MetricCategory, value float64, loadErr error) {
	store := a.snapshotStore()
	if store == nil || loadID == 0 {
		return
	}
	if err := store.RecordCategoryResult(loadID, category, value, loadErr); err != nil {
		contract.LogWarn("Snapshot tracking failed for "+string(category), err)
	}
}

func (a *Aggregator) endSnapshot(loadID int64) {
	store := a.snapshotStore()
	if store == nil || loadID == 0 {
		return
	}
	if err := store.EndScopeLoad(loadID); err != nil {
		contract.LogWarn("Failed to finalize snapshot tracking", err)
	}
}

func (a *Aggregator) snapshotStore() contract.SnapshotStore {
	if a.cache == nil {
		return nil
	}
	return a.cache.GetSnapshotStore()
}

// queryFor builds the record query matching a scope and window.
func queryFor(scope schema.ScopeSelection, window schema.DateRange) contract.RecordQuery {
	q := contract.RecordQuery{TeamID: scope.TeamID, Window: window}
	if scope.IsCollaborator() {
		q.CollaboratorID = scope.CollaboratorID
	}
	return q
}

// categoryErrMessage maps a category to its user-facing failure message.
// The underlying error goes to the diagnostics sink, not the UI state.
func categoryErrMessage(category schema.MetricCategory) string {
	switch category {
	case schema.PointsCategory:
		return "Could not load point totals"
	case schema.ProgressCategory:
		return "Could not load task progress"
	case schema.ProductivityCategory:
		return "Could not load productivity series"
	case schema.PortfolioCategory:
		return "Could not load portfolio items"
	case schema.KPIsCategory:
		return "Could not load key indicators"
	default:
		return "Could not load metrics"
	}
}
