package schema

import "time"

// CacheStatus represents the status of the cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// SnapshotStatus represents the status of the snapshot store.
type SnapshotStatus struct {
	Backend       string           `json:"backend"`
	Connected     bool             `json:"connected"`
	TotalLoads    int              `json:"total_loads"`
	LastLoadID    int64            `json:"last_load_id"`
	LastLoadTime  time.Time        `json:"last_load_time"`
	OldestLoad    time.Time        `json:"oldest_load_time"`
	TableSizes    map[string]int64 `json:"table_sizes"`
}

// ScopeLoadRecord represents a row from the pulseboard_scope_loads table.
type ScopeLoadRecord struct {
	LoadID       int64
	StartTime    time.Time
	EndTime      *time.Time
	DurationMs   *int32
	ScopeKind    string
	TeamID       string
	Collaborator *string
	WindowStart  time.Time
	WindowEnd    time.Time
}

// CategoryResultRecord represents a row from the pulseboard_category_results table.
type CategoryResultRecord struct {
	LoadID     int64
	Category   string
	RecordedAt time.Time
	Value      float64
	ErrMessage *string
}
