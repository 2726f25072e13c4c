package contract

import (
	"context"

	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/mock"
)

// MockRecordSource is a mock implementation of RecordSource for testing.
type MockRecordSource struct {
	mock.Mock
}

var _ RecordSource = &MockRecordSource{} // Compile-time check

// ActivityPage implements the RecordSource interface.
func (m *MockRecordSource) ActivityPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error) {
	ret := m.Called(ctx, q, offset, limit)
	records, _ := ret.Get(0).([]schema.RawDatedRecord)
	return records, ret.Error(1)
}

// PointsPage implements the RecordSource interface.
func (m *MockRecordSource) PointsPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error) {
	ret := m.Called(ctx, q, offset, limit)
	records, _ := ret.Get(0).([]schema.RawDatedRecord)
	return records, ret.Error(1)
}

// TasksPage implements the RecordSource interface.
func (m *MockRecordSource) TasksPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.RawDatedRecord, error) {
	ret := m.Called(ctx, q, offset, limit)
	records, _ := ret.Get(0).([]schema.RawDatedRecord)
	return records, ret.Error(1)
}

// PortfolioPage implements the RecordSource interface.
func (m *MockRecordSource) PortfolioPage(ctx context.Context, q RecordQuery, offset, limit int) ([]schema.PortfolioItem, error) {
	ret := m.Called(ctx, q, offset, limit)
	items, _ := ret.Get(0).([]schema.PortfolioItem)
	return items, ret.Error(1)
}

// TeamPointsAggregate implements the RecordSource interface.
func (m *MockRecordSource) TeamPointsAggregate(ctx context.Context, q RecordQuery) (float64, error) {
	ret := m.Called(ctx, q)
	total, _ := ret.Get(0).(float64)
	return total, ret.Error(1)
}

// KPIValues implements the RecordSource interface.
func (m *MockRecordSource) KPIValues(ctx context.Context, q RecordQuery) ([]schema.KPIValue, error) {
	ret := m.Called(ctx, q)
	kpis, _ := ret.Get(0).([]schema.KPIValue)
	return kpis, ret.Error(1)
}

// MockRosterSource is a mock implementation of RosterSource for testing.
type MockRosterSource struct {
	mock.Mock
}

var _ RosterSource = &MockRosterSource{} // Compile-time check

// ListMembers implements the RosterSource interface.
func (m *MockRosterSource) ListMembers(ctx context.Context, teamID string) ([]schema.Member, error) {
	ret := m.Called(ctx, teamID)
	members, _ := ret.Get(0).([]schema.Member)
	return members, ret.Error(1)
}

// MockSeasonSource is a mock implementation of SeasonSource for testing.
type MockSeasonSource struct {
	mock.Mock
}

var _ SeasonSource = &MockSeasonSource{} // Compile-time check

// CurrentSeason implements the SeasonSource interface.
func (m *MockSeasonSource) CurrentSeason(ctx context.Context) (schema.Season, error) {
	ret := m.Called(ctx)
	season, _ := ret.Get(0).(schema.Season)
	return season, ret.Error(1)
}

// NopDiagnostics discards every event. Useful as a default and in tests
// that do not assert on diagnostics.
type NopDiagnostics struct{}

var _ Diagnostics = NopDiagnostics{} // Compile-time check

// CategoryLoaded implements the Diagnostics interface.
func (NopDiagnostics) CategoryLoaded(schema.ScopeSelection, schema.MetricCategory) {}

// CategoryFailed implements the Diagnostics interface.
func (NopDiagnostics) CategoryFailed(schema.ScopeSelection, schema.MetricCategory, error) {}

// TotalMismatch implements the Diagnostics interface.
func (NopDiagnostics) TotalMismatch(string, float64, float64) {}

// MockDiagnostics is a mock implementation of Diagnostics for testing.
type MockDiagnostics struct {
	mock.Mock
}

var _ Diagnostics = &MockDiagnostics{} // Compile-time check

// CategoryLoaded implements the Diagnostics interface.
func (m *MockDiagnostics) CategoryLoaded(scope schema.ScopeSelection, category schema.MetricCategory) {
	m.Called(scope, category)
}

// CategoryFailed implements the Diagnostics interface.
func (m *MockDiagnostics) CategoryFailed(scope schema.ScopeSelection, category schema.MetricCategory, err error) {
	m.Called(scope, category, err)
}

// TotalMismatch implements the Diagnostics interface.
func (m *MockDiagnostics) TotalMismatch(teamID string, summed, aggregate float64) {
	m.Called(teamID, summed, aggregate)
}
