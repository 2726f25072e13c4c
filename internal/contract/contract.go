// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/pulseboard/pulseboard/schema"
)

// RecordQuery scopes a record-source request to a team or a single
// collaborator within it, over an inclusive date window. An empty
// CollaboratorID means team scope.
type RecordQuery struct {
	TeamID         string
	CollaboratorID string
	Window         schema.DateRange
}

// ForCollaborator returns a copy of the query narrowed to one collaborator.
func (q RecordQuery) ForCollaborator(id string) RecordQuery {
	q.CollaboratorID = id
	return q
}

// RecordSource defines the operations needed from the remote dashboard API.
// Page methods answer bounded batches using half-open [offset, offset+limit)
// addressing; a batch shorter than limit signals exhaustion. This allows the
// aggregation logic to be tested without a live API.
type RecordSource interface {
	// --- Paginated record feeds ---

	// ActivityPage returns one page of per-day action records. Key carries
	// the action type.
	ActivityPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error)

	// PointsPage returns one page of per-day point records. Key carries the
	// point status (locked, unlocked).
	PointsPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error)

	// TasksPage returns one page of per-day task records. Key carries the
	// task status (completed, pending).
	TasksPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error)

	// PortfolioPage returns one page of portfolio items for the scope.
	PortfolioPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.PortfolioItem, error)

	// --- One-shot aggregates ---

	// TeamPointsAggregate returns the backend's own precomputed point total
	// for the whole team. Used only as a cross-check against the canonical
	// sum-of-members derivation, never as the reported value.
	TeamPointsAggregate(ctx context.Context, q RecordQuery) (float64, error)

	// KPIValues returns the named indicators with their targets for the scope.
	KPIValues(ctx context.Context, q RecordQuery) ([]schema.KPIValue, error)
}

// RosterSource supplies team membership. This allows collaborator scoping
// and the sum-of-members team derivation to be tested with fixed rosters.
type RosterSource interface {
	// ListMembers returns the roster for a team.
	ListMembers(ctx context.Context, teamID string) ([]schema.Member, error)
}

// SeasonSource supplies the reporting season bounds used as the season floor.
type SeasonSource interface {
	// CurrentSeason returns the active season.
	CurrentSeason(ctx context.Context) (schema.Season, error)
}

// Diagnostics is the sink the aggregator reports load outcomes to. The
// presentation layer decides policy (toast, log, metrics); the aggregator
// only emits events.
type Diagnostics interface {
	// CategoryLoaded reports a successful category load.
	CategoryLoaded(scope schema.ScopeSelection, category schema.MetricCategory)

	// CategoryFailed reports a failed category load.
	CategoryFailed(scope schema.ScopeSelection, category schema.MetricCategory, err error)

	// TotalMismatch reports a divergence between the canonical sum-of-members
	// team total and the backend's own aggregate.
	TotalMismatch(teamID string, summed, aggregate float64)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetRecordStore() CacheStore
	GetSnapshotStore() SnapshotStore
}

// CacheStore defines the interface for cache data storage.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// SnapshotStore defines the interface for tracking scope loads and storing
// per-category results.
type SnapshotStore interface {
	// BeginScopeLoad creates a new scope load row and returns its unique ID.
	BeginScopeLoad(scope schema.ScopeSelection, window schema.DateRange) (int64, error)

	// EndScopeLoad updates the scope load row with completion data.
	EndScopeLoad(loadID int64) error

	// RecordCategoryResult stores one category's value (or error) for a load.
	RecordCategoryResult(loadID int64, category schema.MetricCategory, value float64, loadErr error) error

	// GetAllScopeLoads retrieves every scope load row, for export.
	GetAllScopeLoads() ([]schema.ScopeLoadRecord, error)

	// GetAllCategoryResults retrieves every category result row, for export.
	GetAllCategoryResults() ([]schema.CategoryResultRecord, error)

	// GetStatus returns status information about the snapshot store.
	GetStatus() (schema.SnapshotStatus, error)

	// Close closes the underlying connection.
	Close() error
}
