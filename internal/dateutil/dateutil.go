// Package dateutil provides calendar-day arithmetic.
//
// All dates in the planner are compared at day granularity. Every
// time.Time entering the core is truncated to UTC midnight so that day
// offsets are exact integers regardless of the wall-clock zone the value
// was created in.
package dateutil

import "time"

// Day truncates t to calendar-day granularity at UTC midnight.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DaysBetween returns the number of whole days from a to b (negative if b
// precedes a). Both arguments are day-truncated first, so the result is an
// exact integer day offset.
func DaysBetween(a, b time.Time) int {
	return int(Day(b).Sub(Day(a)).Hours() / 24)
}

// Key formats t as a YYYY-MM-DD string suitable for map keys with
// same-day equality semantics.
func Key(t time.Time) string {
	return t.Format(time.DateOnly)
}

// MonthWindow returns the first and last day of the given month, both at
// UTC midnight.
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// WeekStart returns the most recent day on or before d whose weekday is
// startOfWeek.
func WeekStart(d time.Time, startOfWeek time.Weekday) time.Time {
	d = Day(d)

	offset := int(d.Weekday()) - int(startOfWeek)
	if offset < 0 {
		offset += 7
	}

	return d.AddDate(0, 0, -offset)
}
