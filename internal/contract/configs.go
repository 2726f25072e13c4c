package contract

import (
	"fmt"
	"strings"

	"github.com/pulseboard/pulseboard/schema"
)

// Default values for configuration.
const (
	DefaultWindowDays = 30
	MaxWindowDays     = 366
	DefaultBatchSize  = 100
	MaxBatchSize      = 500
	DefaultPrecision  = 1
	MaxMonthsAgo      = 24
)

// DateKeyFormat is the canonical calendar-day key layout.
const DateKeyFormat = "2006-01-02"

// Config holds the validated runtime configuration.
type Config struct {
	APIBaseURL     string
	APIToken       string
	TeamID         string
	CollaboratorID string

	// Window selection: trailing days by default, or a calendar month view
	// when MonthView is set (MonthsAgo months before the reference date).
	WindowDays int
	MonthView  bool
	MonthsAgo  int

	BatchSize int

	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	SnapshotBackend   schema.DatabaseBackend
	SnapshotDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// Clone returns a copy of the config for per-request overrides.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ConfigRawInput holds the raw values from all config sources (file, env,
// flags). Viper unmarshals into this struct; ProcessAndValidate turns it
// into a final Config.
type ConfigRawInput struct {
	BaseURL           string `mapstructure:"base-url"`
	Token             string `mapstructure:"token"`
	Team              string `mapstructure:"team"`
	Collaborator      string `mapstructure:"collaborator"`
	Window            int    `mapstructure:"window"`
	Month             int    `mapstructure:"month"`
	MonthSet          bool   `mapstructure:"month-view"`
	BatchSize         int    `mapstructure:"batch-size"`
	Output            string `mapstructure:"output"`
	OutputFile        string `mapstructure:"output-file"`
	Precision         int    `mapstructure:"precision"`
	Width             int    `mapstructure:"width"`
	CacheBackend      string `mapstructure:"cache-backend"`
	CacheDBConnect    string `mapstructure:"cache-db-connect"`
	SnapshotBackend   string `mapstructure:"snapshot-backend"`
	SnapshotDBConnect string `mapstructure:"snapshot-db-connect"`
	Emoji             string `mapstructure:"emoji"`
	Color             string `mapstructure:"color"`
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// --- 1. API endpoint ---
	baseURL := strings.TrimRight(strings.TrimSpace(input.BaseURL), "/")
	if baseURL == "" {
		return fmt.Errorf("base-url is required (set --base-url, PULSEBOARD_BASE_URL or the config file)")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return fmt.Errorf("base-url must start with http:// or https:// (received %q)", input.BaseURL)
	}
	cfg.APIBaseURL = baseURL
	cfg.APIToken = strings.TrimSpace(input.Token)

	// --- 2. Scope ---
	cfg.TeamID = strings.TrimSpace(input.Team)
	if cfg.TeamID == "" {
		return fmt.Errorf("team is required (set --team or PULSEBOARD_TEAM)")
	}
	cfg.CollaboratorID = strings.TrimSpace(input.Collaborator)

	// --- 3. Window Validation ---
	if input.Window <= 0 || input.Window > MaxWindowDays {
		return fmt.Errorf("window must be between 1 and %d days (received %d)", MaxWindowDays, input.Window)
	}
	cfg.WindowDays = input.Window

	if input.Month < 0 || input.Month > MaxMonthsAgo {
		return fmt.Errorf("month must be between 0 and %d (received %d)", MaxMonthsAgo, input.Month)
	}
	cfg.MonthsAgo = input.Month
	cfg.MonthView = input.MonthSet

	// --- 4. Batch Size Validation ---
	if input.BatchSize <= 0 || input.BatchSize > MaxBatchSize {
		return fmt.Errorf("batch-size must be between 1 and %d (received %d)", MaxBatchSize, input.BatchSize)
	}
	cfg.BatchSize = input.BatchSize

	// --- 5. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	switch cfg.Output {
	case schema.TextOut, schema.CSVOut, schema.JSONOut, schema.ParquetOut:
	default:
		return fmt.Errorf("invalid output format %q. must be text, csv, json, parquet", input.Output)
	}
	cfg.OutputFile = input.OutputFile

	if input.Width < 0 {
		return fmt.Errorf("width cannot be negative (received %d)", input.Width)
	}
	cfg.Width = input.Width

	// --- 6. Persistence backends ---
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if err := ValidateDatabaseConnectionString(cfg.CacheBackend, input.CacheDBConnect); err != nil {
		return err
	}
	cfg.CacheDBConnect = input.CacheDBConnect

	if input.SnapshotBackend != "" {
		cfg.SnapshotBackend = schema.DatabaseBackend(strings.ToLower(input.SnapshotBackend))
		if err := ValidateDatabaseConnectionString(cfg.SnapshotBackend, input.SnapshotDBConnect); err != nil {
			return err
		}
		cfg.SnapshotDBConnect = input.SnapshotDBConnect
	}

	// --- 7. Presentation toggles ---
	cfg.UseEmojis = parseYesNo(input.Emoji)
	cfg.UseColors = parseYesNo(input.Color)

	return nil
}

// ValidateDatabaseConnectionString checks backend/connection string pairing.
// SQLite accepts an empty string (default file path); server backends
// require an explicit connection string.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend, "":
		return nil
	case schema.MySQLBackend, schema.PostgreSQLBackend:
		if strings.TrimSpace(connStr) == "" {
			return fmt.Errorf("%s backend requires a connection string", backend)
		}
		return nil
	default:
		return fmt.Errorf("unsupported database backend: %s. Must be sqlite, mysql, postgresql, or none", backend)
	}
}

func parseYesNo(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "true", "1", "on", "":
		return true
	default:
		return false
	}
}
