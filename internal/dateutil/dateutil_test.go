package dateutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/internal/dateutil"
)

func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2024, 3, 15, 23, 45, 12, 999, loc)

	got := dateutil.Day(in)

	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "SameDay",
			a:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "Forward",
			a:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			want: 14,
		},
		{
			name: "Backward",
			a:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			want: -1,
		},
		{
			name: "AcrossLeapDay",
			a:    time.Date(2024, 2, 28, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dateutil.DaysBetween(tt.a, tt.b))
		})
	}
}

func TestMonthWindow(t *testing.T) {
	start, end := dateutil.MonthWindow(2024, time.February)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), end)
}

func TestWeekStart(t *testing.T) {
	// 2024-01-10 is a Wednesday.
	wed := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), dateutil.WeekStart(wed, time.Monday))
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), dateutil.WeekStart(wed, time.Sunday))

	// A day that is already the week start maps to itself.
	mon := time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, mon, dateutil.WeekStart(mon, time.Monday))
}
