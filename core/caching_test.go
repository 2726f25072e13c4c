package core

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/internal/iocache"
	"github.com/pulseboard/pulseboard/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testQuery() contract.RecordQuery {
	return contract.RecordQuery{
		TeamID: "platform",
		Window: testWindow(),
	}
}

func newMockManager(store *iocache.MockCacheStore) *iocache.MockCacheManager {
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetRecordStore").Return(store)
	mgr.On("GetSnapshotStore").Return(nil)
	return mgr
}

func singlePage(records []schema.RawDatedRecord, calls *int) func(context.Context, int, int) ([]schema.RawDatedRecord, error) {
	return func(_ context.Context, offset, _ int) ([]schema.RawDatedRecord, error) {
		*calls++
		if offset > 0 {
			return nil, nil
		}
		return records, nil
	}
}

func TestCachedRecordFetchHit(t *testing.T) {
	cached := []schema.RawDatedRecord{{Date: "2026-03-11", Count: 7}}
	data, err := json.Marshal(cached)
	require.NoError(t, err)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return(data, currentCacheVersion, time.Now().Unix(), nil)

	var calls int
	got, err := cachedRecordFetch(context.Background(), newMockManager(store), schema.PointsCategory, testQuery(), 100,
		singlePage(nil, &calls))
	require.NoError(t, err)
	assert.Equal(t, cached, got)

	// The remote source was never consulted
	assert.Zero(t, calls)
}

func TestCachedRecordFetchMissStoresResult(t *testing.T) {
	fresh := []schema.RawDatedRecord{{Date: "2026-03-11", Count: 3}}

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return([]byte(nil), 0, int64(0), assert.AnError)
	store.On("Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything).Return(nil)

	var calls int
	got, err := cachedRecordFetch(context.Background(), newMockManager(store), schema.PointsCategory, testQuery(), 100,
		singlePage(fresh, &calls))
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, calls)

	store.AssertCalled(t, "Set", mock.Anything, mock.Anything, currentCacheVersion, mock.Anything)
}

func TestCachedRecordFetchStaleEntryRefetched(t *testing.T) {
	stale := []schema.RawDatedRecord{{Date: "2026-03-01", Count: 99}}
	data, err := json.Marshal(stale)
	require.NoError(t, err)

	store := &iocache.MockCacheStore{}
	staleTS := time.Now().Add(-cacheStaleness - time.Minute).Unix()
	store.On("Get", mock.Anything).Return(data, currentCacheVersion, staleTS, nil)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	fresh := []schema.RawDatedRecord{{Date: "2026-03-11", Count: 1}}
	var calls int
	got, err := cachedRecordFetch(context.Background(), newMockManager(store), schema.PointsCategory, testQuery(), 100,
		singlePage(fresh, &calls))
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, calls)
}

func TestCachedRecordFetchVersionMismatchRefetched(t *testing.T) {
	data, err := json.Marshal([]schema.RawDatedRecord{{Date: "2026-03-01", Count: 99}})
	require.NoError(t, err)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return(data, currentCacheVersion+1, time.Now().Unix(), nil)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	var calls int
	_, err = cachedRecordFetch(context.Background(), newMockManager(store), schema.PointsCategory, testQuery(), 100,
		singlePage(nil, &calls))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCachedRecordFetchBypass(t *testing.T) {
	data, err := json.Marshal([]schema.RawDatedRecord{{Date: "2026-03-01", Count: 99}})
	require.NoError(t, err)

	store := &iocache.MockCacheStore{}
	store.On("Get", mock.Anything).Return(data, currentCacheVersion, time.Now().Unix(), nil)
	store.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	fresh := []schema.RawDatedRecord{{Date: "2026-03-11", Count: 1}}
	var calls int
	got, err := cachedRecordFetch(withBypassCache(context.Background()), newMockManager(store), schema.PointsCategory, testQuery(), 100,
		singlePage(fresh, &calls))
	require.NoError(t, err)

	// Bypass skips the valid cached entry but still writes the result back
	assert.Equal(t, fresh, got)
	assert.Equal(t, 1, calls)
	store.AssertNotCalled(t, "Get", mock.Anything)
	store.AssertCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedRecordFetchNilManager(t *testing.T) {
	fresh := []schema.RawDatedRecord{{Date: "2026-03-11", Count: 1}}
	var calls int
	got, err := cachedRecordFetch(context.Background(), nil, schema.PointsCategory, testQuery(), 100,
		singlePage(fresh, &calls))
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestRecordCacheKeyScoping(t *testing.T) {
	base := testQuery()

	sameAgain := recordCacheKey(schema.PointsCategory, base)
	assert.Equal(t, recordCacheKey(schema.PointsCategory, base), sameAgain)

	// Different category, collaborator or window must never collide
	assert.NotEqual(t, recordCacheKey(schema.PointsCategory, base), recordCacheKey(schema.ProgressCategory, base))
	assert.NotEqual(t, recordCacheKey(schema.PointsCategory, base), recordCacheKey(schema.PointsCategory, base.ForCollaborator("alice")))

	shifted := base
	shifted.Window.End = shifted.Window.End.AddDate(0, 0, 1)
	assert.NotEqual(t, recordCacheKey(schema.PointsCategory, base), recordCacheKey(schema.PointsCategory, shifted))
}
