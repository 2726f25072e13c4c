package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pulseboard/pulseboard/core/fetch"
	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// currentCacheVersion defines the version of the cache payload schema.
const currentCacheVersion = 1

// cacheStaleness bounds how old a cached record set may be before it is
// refetched. Dashboard data moves daily, so entries expire quickly.
const cacheStaleness = 15 * time.Minute

// cachedRecordFetch drains a paginated record feed through the cache. On a
// miss (or when the context bypasses the cache) it falls back to a full
// paginated fetch and stores the complete result. Partial results from a
// degraded fetch are returned but never cached; the error is passed through
// so the caller can tell an empty feed from an unreachable one.
func cachedRecordFetch(
	ctx context.Context,
	mgr contract.CacheManager,
	category schema.MetricCategory,
	q contract.RecordQuery,
	batchSize int,
	page fetch.PageFunc[schema.RawDatedRecord],
) ([]schema.RawDatedRecord, error) {
	var store contract.CacheStore
	if mgr != nil {
		store = mgr.GetRecordStore()
	}

	key := recordCacheKey(category, q)
	if store != nil && !shouldBypassCache(ctx) {
		if cached := checkCacheHit(store, key); cached != nil {
			return cached, nil
		}
	}

	records, err := fetch.All(ctx, batchSize, page)
	if err != nil {
		// Degraded fetch: downstream series are simply incomplete.
		return records, err
	}

	if store != nil {
		if data, err := json.Marshal(records); err == nil {
			_ = store.Set(key, data, currentCacheVersion, time.Now().Unix())
		}
	}
	return records, nil
}

// checkCacheHit attempts to retrieve and validate a cached record set.
func checkCacheHit(store contract.CacheStore, key string) []schema.RawDatedRecord {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	if version == currentCacheVersion && time.Since(time.Unix(ts, 0)) <= cacheStaleness {
		var records []schema.RawDatedRecord
		if err := json.Unmarshal(data, &records); err == nil {
			return records
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// recordCacheKey creates a unique key from the category and query scope.
func recordCacheKey(category schema.MetricCategory, q contract.RecordQuery) string {
	key := fmt.Sprintf("%s:%s:%s:%d:%d",
		category,
		q.TeamID,
		q.CollaboratorID,
		q.Window.Start.Unix(),
		q.Window.End.Unix(),
	)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}
