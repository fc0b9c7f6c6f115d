// Package recurrence expands interval-based recurring series into
// concrete occurrence days.
package recurrence

import (
	"time"

	"github.com/ledgerline/ledgerline/internal/dateutil"
)

// Series describes a recurring event: it occurs on start and every
// intervalDays after it, on or before End when End is set.
type Series struct {
	Start        time.Time
	End          *time.Time
	IntervalDays int
}

// Occurrences returns the ascending occurrence days of s that fall inside
// the closed window [windowStart, windowEnd]. An interval below 1 yields
// no occurrences. All arithmetic is done on integer day offsets, so the
// result is identical regardless of the zone or clock time of the inputs.
func (s Series) Occurrences(windowStart, windowEnd time.Time) []time.Time {
	if s.IntervalDays < 1 {
		return nil
	}

	start := dateutil.Day(s.Start)
	windowStart = dateutil.Day(windowStart)
	windowEnd = dateutil.Day(windowEnd)

	last := windowEnd
	if s.End != nil {
		end := dateutil.Day(*s.End)
		if end.Before(last) {
			last = end
		}
	}

	if last.Before(windowStart) || last.Before(start) {
		return nil
	}

	// First occurrence on the interval grid at or after windowStart.
	first := start
	if gap := dateutil.DaysBetween(start, windowStart); gap > 0 {
		steps := (gap + s.IntervalDays - 1) / s.IntervalDays
		first = start.AddDate(0, 0, steps*s.IntervalDays)
	}

	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, s.IntervalDays) {
		days = append(days, d)
	}

	return days
}
