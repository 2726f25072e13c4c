// Package schema has configs, models and shared constants for all parts of pulseboard.
package schema

import "time"

// RawDatedRecord is one raw entry from the remote record source: a per-day
// count of some action, optionally discriminated by Key (action type or
// member id). Records arrive sparse and unordered; multiple records may
// share a calendar day.
type RawDatedRecord struct {
	Date  string  `json:"date"`           // Wire-format date (see timeline.NormalizeDateKey)
	Key   string  `json:"key,omitempty"`  // Optional series discriminator
	Count float64 `json:"count"`          // Value for the day; absent on the wire means 0
}

// TimePoint is one day in a completed series. A completed series has
// exactly one point per calendar day of its range, ascending, zero-filled
// where the raw records had no data.
type TimePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// DateRange is an inclusive [Start, End] calendar range. Start <= End.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the number of whole days between Start and End.
// A single-day range returns 0.
func (r DateRange) Days() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// NamedSeries is a completed series ready for chart consumption: a label,
// the day-by-day points and a deterministic palette slot.
type NamedSeries struct {
	Label      string      `json:"label"`
	Points     []TimePoint `json:"points"`
	ColorIndex int         `json:"color_index"`
}

// Member is one collaborator in a team roster.
type Member struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// Season holds the reporting season bounds. Start acts as the season floor:
// no reporting window may begin before it.
type Season struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
