package recurrence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/recurrence"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeries_Occurrences(t *testing.T) {
	end := day(2024, 1, 20)

	tests := []struct {
		name        string
		series      recurrence.Series
		windowStart time.Time
		windowEnd   time.Time
		want        []time.Time
	}{
		{
			name:        "FirstOccurrenceSnapsToGrid",
			series:      recurrence.Series{Start: day(2024, 1, 1), IntervalDays: 7},
			windowStart: day(2024, 1, 10),
			windowEnd:   day(2024, 1, 31),
			want:        []time.Time{day(2024, 1, 15), day(2024, 1, 22), day(2024, 1, 29)},
		},
		{
			name:        "StartInsideWindow",
			series:      recurrence.Series{Start: day(2024, 1, 15), IntervalDays: 10},
			windowStart: day(2024, 1, 1),
			windowEnd:   day(2024, 1, 31),
			want:        []time.Time{day(2024, 1, 15), day(2024, 1, 25)},
		},
		{
			name:        "StartAfterWindow",
			series:      recurrence.Series{Start: day(2024, 2, 5), IntervalDays: 7},
			windowStart: day(2024, 1, 1),
			windowEnd:   day(2024, 1, 31),
			want:        nil,
		},
		{
			name:        "EndClipsSeries",
			series:      recurrence.Series{Start: day(2024, 1, 1), End: &end, IntervalDays: 7},
			windowStart: day(2024, 1, 1),
			windowEnd:   day(2024, 1, 31),
			want:        []time.Time{day(2024, 1, 1), day(2024, 1, 8), day(2024, 1, 15)},
		},
		{
			name:        "EndBeforeWindowStart",
			series:      recurrence.Series{Start: day(2023, 12, 1), End: &end, IntervalDays: 7},
			windowStart: day(2024, 2, 1),
			windowEnd:   day(2024, 2, 29),
			want:        nil,
		},
		{
			name:        "InvalidInterval",
			series:      recurrence.Series{Start: day(2024, 1, 1), IntervalDays: 0},
			windowStart: day(2024, 1, 1),
			windowEnd:   day(2024, 1, 31),
			want:        nil,
		},
		{
			name:        "DailyAcrossMonthBoundary",
			series:      recurrence.Series{Start: day(2024, 1, 30), IntervalDays: 1},
			windowStart: day(2024, 1, 29),
			windowEnd:   day(2024, 2, 1),
			want:        []time.Time{day(2024, 1, 30), day(2024, 1, 31), day(2024, 2, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.series.Occurrences(tt.windowStart, tt.windowEnd)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeries_Occurrences_Deterministic(t *testing.T) {
	s := recurrence.Series{Start: day(2023, 6, 3), IntervalDays: 14}

	first := s.Occurrences(day(2024, 1, 1), day(2024, 1, 31))
	second := s.Occurrences(day(2024, 1, 1), day(2024, 1, 31))

	assert.Equal(t, first, second)
}

func TestSeries_Occurrences_Bounds(t *testing.T) {
	windowStart := day(2024, 3, 1)
	windowEnd := day(2024, 3, 31)
	s := recurrence.Series{Start: day(2023, 11, 17), IntervalDays: 9}

	got := s.Occurrences(windowStart, windowEnd)
	require.NotEmpty(t, got)

	for i, d := range got {
		assert.False(t, d.Before(windowStart))
		assert.False(t, d.After(windowEnd))

		if i > 0 {
			assert.Equal(t, 9*24*time.Hour, d.Sub(got[i-1]))
		}
	}
}

func TestSeries_Occurrences_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	s := recurrence.Series{
		Start:        time.Date(2024, 1, 1, 22, 30, 0, 0, loc),
		IntervalDays: 7,
	}

	got := s.Occurrences(
		time.Date(2024, 1, 10, 8, 0, 0, 0, loc),
		time.Date(2024, 1, 31, 8, 0, 0, 0, loc),
	)

	// Day-truncated in the start's own calendar: Jan 1 grid, window [10, 31].
	assert.Equal(t, []time.Time{day(2024, 1, 15), day(2024, 1, 22), day(2024, 1, 29)}, got)
}
