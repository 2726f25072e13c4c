package iocache

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteSnapshotStore(t *testing.T) *SnapshotStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "snapshots.db")
	store, err := NewSnapshotStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*SnapshotStoreImpl)
}

func testLoadWindow() schema.DateRange {
	start := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	return schema.DateRange{Start: start, End: start.AddDate(0, 0, 5)}
}

func TestSnapshotStoreLoadLifecycle(t *testing.T) {
	store := newSQLiteSnapshotStore(t)
	scope := schema.TeamScopeFor("platform")

	loadID, err := store.BeginScopeLoad(scope, testLoadWindow())
	require.NoError(t, err)
	assert.Positive(t, loadID)

	require.NoError(t, store.RecordCategoryResult(loadID, schema.PointsCategory, 30.0, nil))
	require.NoError(t, store.RecordCategoryResult(loadID, schema.KPIsCategory, 0,
		errors.New("Could not load key indicators")))
	require.NoError(t, store.EndScopeLoad(loadID))

	loads, err := store.GetAllScopeLoads()
	require.NoError(t, err)
	require.Len(t, loads, 1)

	load := loads[0]
	assert.Equal(t, loadID, load.LoadID)
	assert.Equal(t, string(schema.TeamScope), load.ScopeKind)
	assert.Equal(t, "platform", load.TeamID)
	assert.Nil(t, load.Collaborator)
	require.NotNil(t, load.EndTime)
	require.NotNil(t, load.DurationMs)
	assert.GreaterOrEqual(t, *load.DurationMs, int32(0))

	results, err := store.GetAllCategoryResults()
	require.NoError(t, err)
	require.Len(t, results, 2)

	byCategory := make(map[string]schema.CategoryResultRecord, len(results))
	for _, r := range results {
		byCategory[r.Category] = r
	}

	points := byCategory[string(schema.PointsCategory)]
	assert.Equal(t, loadID, points.LoadID)
	assert.Equal(t, 30.0, points.Value)
	assert.Nil(t, points.ErrMessage)

	kpis := byCategory[string(schema.KPIsCategory)]
	require.NotNil(t, kpis.ErrMessage)
	assert.Equal(t, "Could not load key indicators", *kpis.ErrMessage)
}

func TestSnapshotStoreCollaboratorScope(t *testing.T) {
	store := newSQLiteSnapshotStore(t)
	scope := schema.CollaboratorScopeFor("platform", "alice")

	loadID, err := store.BeginScopeLoad(scope, testLoadWindow())
	require.NoError(t, err)
	require.NoError(t, store.EndScopeLoad(loadID))

	loads, err := store.GetAllScopeLoads()
	require.NoError(t, err)
	require.Len(t, loads, 1)
	assert.Equal(t, string(schema.CollaboratorScope), loads[0].ScopeKind)
	require.NotNil(t, loads[0].Collaborator)
	assert.Equal(t, "alice", *loads[0].Collaborator)
}

func TestSnapshotStoreStatus(t *testing.T) {
	store := newSQLiteSnapshotStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Zero(t, status.TotalLoads)

	scope := schema.TeamScopeFor("platform")
	_, err = store.BeginScopeLoad(scope, testLoadWindow())
	require.NoError(t, err)
	second, err := store.BeginScopeLoad(scope, testLoadWindow())
	require.NoError(t, err)
	require.NoError(t, store.RecordCategoryResult(second, schema.PointsCategory, 10.0, nil))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalLoads)
	assert.Equal(t, second, status.LastLoadID)
	assert.False(t, status.LastLoadTime.IsZero())
	assert.False(t, status.OldestLoad.IsZero())
	assert.Equal(t, int64(2), status.TableSizes[scopeLoadsTable])
	assert.Equal(t, int64(1), status.TableSizes[categoryResultsTable])
}

func TestSnapshotStoreNoneBackend(t *testing.T) {
	store, err := NewSnapshotStore(schema.NoneBackend, "")
	require.NoError(t, err)

	loadID, err := store.BeginScopeLoad(schema.TeamScopeFor("platform"), testLoadWindow())
	require.NoError(t, err)
	assert.Zero(t, loadID)

	assert.NoError(t, store.RecordCategoryResult(loadID, schema.PointsCategory, 1.0, nil))
	assert.NoError(t, store.EndScopeLoad(loadID))

	loads, err := store.GetAllScopeLoads()
	require.NoError(t, err)
	assert.Empty(t, loads)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)

	assert.NoError(t, store.Close())
}
