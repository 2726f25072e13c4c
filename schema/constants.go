package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching and snapshots.
	DatabaseBackend string
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// Well-known record keys from the remote source.
const (
	// DefaultRecordKey marks records with no discriminator; datasets built
	// from it are labeled TotalSeriesLabel.
	DefaultRecordKey = "default"

	// TotalSeriesLabel is the display label for undiscriminated series.
	TotalSeriesLabel = "Total"
)

// Point statuses used by the points record source.
const (
	LockedPointStatus   = "locked"
	UnlockedPointStatus = "unlocked"
)

// Task statuses used by the progress record source.
const (
	CompletedTaskStatus = "completed"
	PendingTaskStatus   = "pending"
)
