// Package iocache is for caching I/O calls and tracking scope loads.
package iocache

import (
	"fmt"
	"sync"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// CacheStoreManager manages the record cache and snapshot store instances.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	records      contract.CacheStore
	snapshots    contract.SnapshotStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetRecordStore returns the record CacheStore.
func (mgr *CacheStoreManager) GetRecordStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.records
}

// GetSnapshotStore returns the SnapshotStore.
func (mgr *CacheStoreManager) GetSnapshotStore() contract.SnapshotStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.snapshots
}

// validTableNames is the closed set of table names this package may touch.
// Table names are interpolated into SQL, so they never come from input.
var validTableNames = map[string]bool{
	recordCacheTable:     true,
	scopeLoadsTable:      true,
	categoryResultsTable: true,
}

// validateTableName rejects any table name outside the known set.
func validateTableName(name string) error {
	if !validTableNames[name] {
		return fmt.Errorf("invalid table name: %s", name)
	}
	return nil
}

// quoteTableName quotes a table name for the given backend.
func quoteTableName(name string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return "`" + name + "`"
	case schema.PostgreSQLBackend:
		return `"` + name + `"`
	default: // SQLite
		return `"` + name + `"`
	}
}
