package calendar_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/calendar"
	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func salaryJob(name string, start time.Time, interval int, perPeriod float64) income.Job {
	return income.Job{
		ID:       uuid.New(),
		Name:     name,
		Type:     income.JobTypeSalary,
		Schedule: recurrence.Series{Start: start, IntervalDays: interval},
		Salary:   &income.SalaryPay{PerPeriod: perPeriod},
	}
}

func TestMonthEvents_MergesAndSorts(t *testing.T) {
	job := salaryJob("Day Job", day(2024, 1, 5), 14, 1500) // Jan 5, 19

	passive := income.PassiveIncome{
		ID:              uuid.New(),
		Name:            "Dividends",
		AmountPerPeriod: 80,
		Schedule:        recurrence.Series{Start: day(2024, 1, 5), IntervalDays: 30}, // Jan 5
	}

	oneTime := income.NonRecurringIncome{
		ID:     uuid.New(),
		Name:   "Tax Refund",
		Amount: 320,
		Date:   day(2024, 1, 10),
	}

	outside := income.NonRecurringIncome{
		ID:     uuid.New(),
		Name:   "Old Bonus",
		Amount: 999,
		Date:   day(2023, 12, 28),
	}

	spans := calendar.MonthEvents(calendar.MonthInput{
		Jobs:     []income.Job{job},
		Passives: []income.PassiveIncome{passive},
		OneTimes: []income.NonRecurringIncome{oneTime, outside},
	}, 2024, time.January, false, time.Monday)

	var events []calendar.Event
	for _, s := range spans {
		events = append(events, s.Events...)
	}

	require.Len(t, events, 4)

	// Ascending by date; job before passive on the shared day.
	assert.Equal(t, day(2024, 1, 5), events[0].Date)
	assert.Equal(t, calendar.SourceJob, events[0].Source)
	assert.InDelta(t, 1500, events[0].Amount, 1e-9)

	assert.Equal(t, day(2024, 1, 5), events[1].Date)
	assert.Equal(t, calendar.SourcePassive, events[1].Source)

	assert.Equal(t, day(2024, 1, 10), events[2].Date)
	assert.Equal(t, calendar.SourceOneTime, events[2].Source)

	assert.Equal(t, day(2024, 1, 19), events[3].Date)
	assert.Equal(t, calendar.SourceJob, events[3].Source)
}

func TestMonthEvents_WeekSpans(t *testing.T) {
	// Jan 2024: the 1st is a Monday.
	job := salaryJob("Weekly", day(2024, 1, 3), 7, 100) // Jan 3, 10, 17, 24, 31

	spans := calendar.MonthEvents(calendar.MonthInput{
		Jobs: []income.Job{job},
	}, 2024, time.January, false, time.Monday)

	require.Len(t, spans, 5)

	assert.Equal(t, day(2024, 1, 1), spans[0].Start)
	assert.Equal(t, day(2024, 1, 7), spans[0].End)
	assert.Equal(t, day(2024, 1, 29), spans[4].Start)
	// Clipped to the month, not a full week.
	assert.Equal(t, day(2024, 1, 31), spans[4].End)

	for i, s := range spans {
		assert.Len(t, s.Events, 1)

		if i > 0 {
			assert.True(t, spans[i-1].Start.Before(s.Start))
		}
	}
}

func TestMonthEvents_ClipsFirstWeekToMonth(t *testing.T) {
	// March 2024 starts on a Friday; the first week span must not leak
	// into February.
	job := salaryJob("Weekly", day(2024, 3, 1), 7, 100)

	spans := calendar.MonthEvents(calendar.MonthInput{
		Jobs: []income.Job{job},
	}, 2024, time.March, false, time.Monday)

	require.NotEmpty(t, spans)
	assert.Equal(t, day(2024, 3, 1), spans[0].Start)
	assert.Equal(t, day(2024, 3, 3), spans[0].End)
}

func TestMonthEvents_EmptyWeeksDropped(t *testing.T) {
	// Single event at the end of the month: exactly one span comes back.
	oneTime := income.NonRecurringIncome{
		ID:     uuid.New(),
		Name:   "Gift",
		Amount: 50,
		Date:   day(2024, 1, 30),
	}

	spans := calendar.MonthEvents(calendar.MonthInput{
		OneTimes: []income.NonRecurringIncome{oneTime},
	}, 2024, time.January, false, time.Monday)

	require.Len(t, spans, 1)
	assert.Equal(t, day(2024, 1, 29), spans[0].Start)
}

func TestMonthEvents_AppliesOverrides(t *testing.T) {
	job := salaryJob("Day Job", day(2024, 1, 5), 14, 1500)
	job.Tax = income.Tax{Applies: true, Rate: 0.2}

	override := 2000.0
	ovs := income.IndexJobOverrides([]income.JobOverride{
		{JobID: job.ID, Date: day(2024, 1, 19), Amount: &override},
	})

	spans := calendar.MonthEvents(calendar.MonthInput{
		Jobs:         []income.Job{job},
		JobOverrides: ovs,
	}, 2024, time.January, true, time.Monday)

	var events []calendar.Event
	for _, s := range spans {
		events = append(events, s.Events...)
	}

	require.Len(t, events, 2)
	assert.InDelta(t, 1500*0.8, events[0].Amount, 1e-9)
	assert.InDelta(t, 2000*0.8, events[1].Amount, 1e-9)
}

func TestMonthEvents_SundayWeekStart(t *testing.T) {
	job := salaryJob("Weekly", day(2024, 1, 7), 7, 100) // Sundays: Jan 7, 14, 21, 28

	spans := calendar.MonthEvents(calendar.MonthInput{
		Jobs: []income.Job{job},
	}, 2024, time.January, false, time.Sunday)

	require.Len(t, spans, 4)
	// Each Sunday event opens its own week span.
	assert.Equal(t, day(2024, 1, 7), spans[0].Start)
	assert.Equal(t, day(2024, 1, 13), spans[0].End)
}
