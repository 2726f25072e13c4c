package iocache

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

func TestStores(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		tmpDir := t.TempDir()
		cachePath := filepath.Join(tmpDir, "cache.db")
		snapshotPath := filepath.Join(tmpDir, "snapshots.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, snapshotPath)
		if err != nil {
			t.Fatalf("Failed to initialize stores: %v", err)
		}

		if Manager == nil {
			t.Fatal("Manager is nil")
		}
		if Manager.GetRecordStore() == nil {
			t.Fatal("Record store is nil")
		}
		if Manager.GetSnapshotStore() == nil {
			t.Fatal("Snapshot store is nil")
		}

		CloseStores()

		if _, err := os.Stat(cachePath); os.IsNotExist(err) {
			t.Fatal("Cache database file was not created")
		}
		if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
			t.Fatal("Snapshot database file was not created")
		}
	})

	t.Run("idempotent setup", func(t *testing.T) {
		tmpDir := t.TempDir()
		cachePath := filepath.Join(tmpDir, "cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitStores(schema.SQLiteBackend, cachePath, "", "")
		err2 := InitStores(schema.SQLiteBackend, cachePath, "", "")
		err3 := InitStores(schema.SQLiteBackend, cachePath, "", "")

		if err1 != nil {
			t.Fatalf("First init failed: %v", err1)
		}
		if err2 != nil {
			t.Fatalf("Second init failed: %v", err2)
		}
		if err3 != nil {
			t.Fatalf("Third init failed: %v", err3)
		}

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitStores(schema.NoneBackend, "", schema.NoneBackend, "")
		if err != nil {
			t.Fatalf("Failed to initialize stores with none backend: %v", err)
		}

		if Manager.GetRecordStore() == nil {
			t.Fatal("Record store is nil")
		}
		if Manager.GetSnapshotStore() == nil {
			t.Fatal("Snapshot store is nil")
		}

		// Cleanup is safe even with no DB
		CloseStores()
	})

	t.Run("none backend operations", func(t *testing.T) {
		store, err := NewCacheStore(recordCacheTable, schema.NoneBackend, "")
		if err != nil {
			t.Fatalf("Failed to create none backend store: %v", err)
		}

		// Get returns not found
		_, _, _, err = store.Get("test_key")
		if err == nil {
			t.Fatal("Expected error from Get on none backend")
		}

		// Set is a no-op
		err = store.Set("test_key", []byte("test_value"), 1, 123456789)
		if err != nil {
			t.Fatalf("Set should not error on none backend: %v", err)
		}

		// Get still returns not found after Set
		_, _, _, err = store.Get("test_key")
		if err == nil {
			t.Fatal("Expected error from Get after Set on none backend")
		}

		if err := store.Close(); err != nil {
			t.Fatalf("Close should not error on none backend: %v", err)
		}
	})
}

// TestValidateTableName checks the closed set of table names against hostile inputs.
func TestValidateTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		wantErr   bool
	}{
		{
			name:      "record cache table",
			tableName: recordCacheTable,
			wantErr:   false,
		},
		{
			name:      "scope loads table",
			tableName: scopeLoadsTable,
			wantErr:   false,
		},
		{
			name:      "category results table",
			tableName: categoryResultsTable,
			wantErr:   false,
		},
		{
			name:      "empty name",
			tableName: "",
			wantErr:   true,
		},
		{
			name:      "unknown table",
			tableName: "users",
			wantErr:   true,
		},
		{
			name:      "sql injection attempt",
			tableName: "record_cache'; DROP TABLE users; --",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateTableName(%q) error = %v, wantErr %v", tt.tableName, err, tt.wantErr)
			}
		})
	}
}

// TestQuoteTableName tests the quoteTableName function for all backends.
func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		want    string
	}{
		{
			name:    "SQLite backend",
			backend: schema.SQLiteBackend,
			want:    `"record_cache"`,
		},
		{
			name:    "MySQL backend",
			backend: schema.MySQLBackend,
			want:    "`record_cache`",
		},
		{
			name:    "PostgreSQL backend",
			backend: schema.PostgreSQLBackend,
			want:    `"record_cache"`,
		},
		{
			name:    "None backend defaults to SQLite style",
			backend: schema.NoneBackend,
			want:    `"record_cache"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quoteTableName(recordCacheTable, tt.backend)
			if got != tt.want {
				t.Errorf("quoteTableName(%q, %q) = %q, want %q", recordCacheTable, tt.backend, got, tt.want)
			}
		})
	}
}

// TestSQLiteCacheStore tests the full lifecycle of SQLite cache operations.
func TestSQLiteCacheStore(t *testing.T) {
	newStore := func(t *testing.T) (contract.CacheStore, func()) {
		dbPath := filepath.Join(t.TempDir(), "cache.db")
		s, err := NewCacheStore(recordCacheTable, schema.SQLiteBackend, dbPath)
		if err != nil {
			t.Fatalf("Failed to create SQLite store: %v", err)
		}
		return s, func() { _ = s.Close() }
	}

	t.Run("set and get operations", func(t *testing.T) {
		store, cleanup := newStore(t)
		defer cleanup()

		testKey := "test_key"
		testValue := []byte("test_value_data")
		testVersion := 1
		testTimestamp := int64(1234567890)

		if err := store.Set(testKey, testValue, testVersion, testTimestamp); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		value, version, timestamp, err := store.Get(testKey)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}

		if string(value) != string(testValue) {
			t.Errorf("Get value = %q, want %q", string(value), string(testValue))
		}
		if version != testVersion {
			t.Errorf("Get version = %d, want %d", version, testVersion)
		}
		if timestamp != testTimestamp {
			t.Errorf("Get timestamp = %d, want %d", timestamp, testTimestamp)
		}
	})

	t.Run("upsert behavior", func(t *testing.T) {
		store, cleanup := newStore(t)
		defer cleanup()

		testKey := "upsert_key"
		if err := store.Set(testKey, []byte("initial_value"), 1, 1000); err != nil {
			t.Fatalf("Initial Set failed: %v", err)
		}
		if err := store.Set(testKey, []byte("updated_value"), 2, 2000); err != nil {
			t.Fatalf("Update Set failed: %v", err)
		}

		value, version, timestamp, err := store.Get(testKey)
		if err != nil {
			t.Fatalf("Get after update failed: %v", err)
		}

		if string(value) != "updated_value" {
			t.Errorf("After upsert, value = %q, want %q", string(value), "updated_value")
		}
		if version != 2 {
			t.Errorf("After upsert, version = %d, want %d", version, 2)
		}
		if timestamp != 2000 {
			t.Errorf("After upsert, timestamp = %d, want %d", timestamp, 2000)
		}
	})

	t.Run("get non-existent key", func(t *testing.T) {
		store, cleanup := newStore(t)
		defer cleanup()

		_, _, _, err := store.Get("non_existent_key")
		if err != sql.ErrNoRows {
			t.Errorf("Get non-existent key error = %v, want %v", err, sql.ErrNoRows)
		}
	})
}

// TestGetPlaceholder tests the parameter placeholder for each backend.
func TestGetPlaceholder(t *testing.T) {
	tests := []struct {
		name    string
		backend schema.DatabaseBackend
		want    string
	}{
		{
			name:    "SQLite backend",
			backend: schema.SQLiteBackend,
			want:    "?",
		},
		{
			name:    "MySQL backend",
			backend: schema.MySQLBackend,
			want:    "?",
		},
		{
			name:    "PostgreSQL backend",
			backend: schema.PostgreSQLBackend,
			want:    "$1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := &CacheStoreImpl{backend: tt.backend}
			if got := ps.getPlaceholder(); got != tt.want {
				t.Errorf("getPlaceholder() = %q, want %q", got, tt.want)
			}
		})
	}
}
