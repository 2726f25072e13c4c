package contract

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
)

// KPI health label constants.
const (
	AheadValue   = "Ahead"   // at or above target
	OnPaceValue  = "OnPace"  // close to target
	BehindValue  = "Behind"  // clearly under target
	StalledValue = "Stalled" // little to no progress
)

// Color variables for console output.
var (
	AheadColor   = color.New(color.FgGreen, color.Bold)
	OnPaceColor  = color.New(color.FgCyan)
	BehindColor  = color.New(color.FgYellow)
	StalledColor = color.New(color.FgRed, color.Bold)
)

// GetPlainLabel returns a plain text health label for a KPI attainment
// percentage. This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(attainment float64) string {
	switch {
	case attainment >= 100:
		return AheadValue
	case attainment >= 70:
		return OnPaceValue
	case attainment >= 30:
		return BehindValue
	default:
		return StalledValue
	}
}

// GetColorLabel returns a colored health label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the
// appropriate color.
func GetColorLabel(attainment float64) string {
	text := GetPlainLabel(attainment)

	switch text {
	case AheadValue:
		return AheadColor.Sprint(text)
	case OnPaceValue:
		return OnPaceColor.Sprint(text)
	case BehindValue:
		return BehindColor.Sprint(text)
	default: // "Stalled"
		return StalledColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. An empty path means os.Stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pulseboard_cache.db"
	}
	return filepath.Join(homeDir, ".pulseboard_cache.db")
}

// GetSnapshotDBFilePath returns the path to the SQLite DB file for snapshot storage.
func GetSnapshotDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pulseboard_snapshots.db"
	}
	return filepath.Join(homeDir, ".pulseboard_snapshots.db")
}

// TruncateLabel truncates a label to a maximum width with ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and at least one
// character of content.
func TruncateLabel(label string, maxWidth int) string {
	if maxWidth <= 3 {
		return label
	}
	// Truncate on runes so a multibyte label never yields invalid UTF-8.
	runes := []rune(label)
	if len(runes) <= maxWidth {
		return label
	}
	return string(runes[:maxWidth-3]) + "..."
}
