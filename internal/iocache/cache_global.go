package iocache

import (
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// recordCacheTable is the name of the table for record caching.
const recordCacheTable = "record_cache"

// Global Manager instance for main logic.
var (
	Manager   = &CacheStoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for cache storage.
func GetDBFilePath() string {
	return contract.GetCacheDBFilePath()
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	return contract.GetSnapshotDBFilePath()
}

// InitStores initializes the global cache manager with separate record and
// snapshot stores. Either backend may be empty to disable that store.
func InitStores(cacheBackend schema.DatabaseBackend, cacheConnStr string, snapshotBackend schema.DatabaseBackend, snapshotConnStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var err error

		// Initialize record cache store only if backend is configured
		var recordStore contract.CacheStore
		if cacheBackend != "" {
			recordStore, err = NewCacheStore(recordCacheTable, cacheBackend, cacheConnStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize record caching: %w", err)
				return
			}
		}

		// Initialize snapshot store only if backend is configured
		var snapshotStore contract.SnapshotStore
		if snapshotBackend != "" {
			snapshotStore, err = NewSnapshotStore(snapshotBackend, snapshotConnStr)
			if err != nil {
				if recordStore != nil {
					_ = recordStore.Close()
				}
				initErr = fmt.Errorf("failed to initialize snapshot store: %w", err)
				return
			}
		}

		// Assign to global manager
		Manager.records = recordStore
		Manager.snapshots = snapshotStore
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called in main defer
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.records != nil {
			_ = Manager.records.Close()
		}
		if Manager.snapshots != nil {
			_ = Manager.snapshots.Close()
		}
	})
}

// ClearCache clears the record cache for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the table.
// For NoneBackend, it does nothing.
func ClearCache(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		return clearSQLTable("mysql", connStr, recordCacheTable)

	case schema.PostgreSQLBackend:
		return clearSQLTable("pgx", connStr, recordCacheTable)

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported cache backend for clearing: %s", backend)
	}
}

// ClearSnapshots clears the scope load history for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the snapshot tables.
// For NoneBackend, it does nothing.
func ClearSnapshots(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend:
		tables := []string{scopeLoadsTable, categoryResultsTable}
		for _, table := range tables {
			if err := clearSQLTable("mysql", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.PostgreSQLBackend:
		tables := []string{scopeLoadsTable, categoryResultsTable}
		for _, table := range tables {
			if err := clearSQLTable("pgx", connStr, table); err != nil {
				return err
			}
		}
		return nil

	case schema.NoneBackend:
		return nil

	default:
		return fmt.Errorf("unsupported snapshot backend for clearing: %s", backend)
	}
}

// clearSQLTable connects to the SQL database and drops the table if it exists.
func clearSQLTable(driverName, connStr, tableName string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", tableName)
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", tableName, err)
	}

	return nil
}
