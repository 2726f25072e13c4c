// Package timeline has date-range and series completion logic for dashboard records.
package timeline

import (
	"time"

	"github.com/pulseboard/pulseboard/schema"
)

// Midnight truncates a time to its calendar day in UTC. All range and
// series arithmetic works on midnight-normalized days.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// RangeForTrailingDays returns the inclusive window ending at the reference
// date and starting the given number of days before it.
func RangeForTrailingDays(reference time.Time, days int) schema.DateRange {
	end := Midnight(reference)
	return schema.DateRange{
		Start: end.AddDate(0, 0, -days),
		End:   end,
	}
}

// RangeForCalendarMonth returns the first and last day of the month that is
// monthsAgo months before the reference date. The start is clamped so it
// never precedes the season floor, and when the target month immediately
// follows the floor's month the range is widened back to the floor, merging
// the two partial months into one view.
func RangeForCalendarMonth(monthsAgo int, reference time.Time, seasonFloor time.Time) schema.DateRange {
	ref := Midnight(reference)
	floor := Midnight(seasonFloor)

	// Month arithmetic on year*12+month avoids end-of-month normalization
	// surprises (Mar 31 minus one month must land in February).
	total := ref.Year()*12 + int(ref.Month()) - 1 - monthsAgo
	year, month := total/12, time.Month(total%12+1)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	floorMonth := time.Date(floor.Year(), floor.Month(), 1, 0, 0, 0, 0, time.UTC)
	switch {
	case !start.After(floorMonth):
		// Target month is the floor's month or earlier: never report
		// before the season started.
		start = floor
	case start.Equal(floorMonth.AddDate(0, 1, 0)):
		// Month right after the floor's month: widen to absorb the
		// partial first month of the season.
		start = floor
	}

	if end.Before(start) {
		end = start
	}
	return schema.DateRange{Start: start, End: end}
}
