package timeline

import (
	"fmt"
	"time"

	"github.com/pulseboard/pulseboard/internal/contract"
	"github.com/pulseboard/pulseboard/schema"
)

// dateLayouts are the wire formats the record source is known to emit,
// tried in order. The first is the canonical key layout itself.
var dateLayouts = []string{
	contract.DateKeyFormat,
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// DateKey returns the canonical YYYY-MM-DD key for a native time value.
func DateKey(t time.Time) string {
	return t.UTC().Format(contract.DateKeyFormat)
}

// NormalizeDateKey converts any accepted wire representation of a date into
// the canonical YYYY-MM-DD key. Every representation of the same calendar
// day yields the same key.
func NormalizeDateKey(raw string) (string, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return DateKey(t), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", raw)
}

// GroupByDateKey sums record counts per normalized calendar day, collapsing
// parallel series (the Key field is ignored). Records whose date cannot be
// normalized are dropped. Nil or empty input yields an empty map.
func GroupByDateKey(records []schema.RawDatedRecord) map[string]float64 {
	grouped := make(map[string]float64, len(records))
	for _, rec := range records {
		key, err := NormalizeDateKey(rec.Date)
		if err != nil {
			continue
		}
		grouped[key] += rec.Count
	}
	return grouped
}

// FillRange walks every calendar day of the range inclusive and emits one
// TimePoint per day, using the grouped sum where present and zero elsewhere.
// For a range spanning D days the result has exactly D+1 points, ascending,
// each one day after the previous.
func FillRange(grouped map[string]float64, r schema.DateRange) []schema.TimePoint {
	start := Midnight(r.Start)
	end := Midnight(r.End)
	if end.Before(start) {
		return nil
	}

	points := make([]schema.TimePoint, 0, r.Days()+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		points = append(points, schema.TimePoint{
			Date:  day,
			Value: grouped[DateKey(day)],
		})
	}
	return points
}

// BuildSeries is the composed entry point: group raw records by day, then
// complete the requested range with zero-filled gaps.
func BuildSeries(records []schema.RawDatedRecord, r schema.DateRange) []schema.TimePoint {
	return FillRange(GroupByDateKey(records), r)
}

// SumRecords totals the counts of all records whose date normalizes and
// falls inside the range. Used for scalar category values.
func SumRecords(records []schema.RawDatedRecord, r schema.DateRange) float64 {
	startKey := DateKey(Midnight(r.Start))
	endKey := DateKey(Midnight(r.End))

	var total float64
	for key, value := range GroupByDateKey(records) {
		if key >= startKey && key <= endKey {
			total += value
		}
	}
	return total
}
