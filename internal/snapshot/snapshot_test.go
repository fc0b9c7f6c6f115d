package snapshot_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
	"github.com/ledgerline/ledgerline/internal/savings"
	"github.com/ledgerline/ledgerline/internal/snapshot"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixtureDataset() *income.Dataset {
	end := day(2025, 6, 30)
	amount := 1800.0
	hours := 42.5

	return &income.Dataset{
		Jobs: []income.Job{
			{
				ID:   uuid.New(),
				Name: "Warehouse",
				Type: income.JobTypeHourly,
				Schedule: recurrence.Series{
					Start:        day(2024, 1, 5),
					End:          &end,
					IntervalDays: 14,
				},
				Tax: income.Tax{Applies: true, Rate: 0.21},
				Hourly: &income.HourlyPay{
					Rate:               22,
					PlannedHours:       80,
					UsesOvertime:       true,
					OvertimeThreshold:  80,
					OvertimeMultiplier: 1.5,
				},
			},
			{
				ID:       uuid.New(),
				Name:     "Consulting",
				Type:     income.JobTypeContract,
				Schedule: recurrence.Series{Start: day(2024, 3, 1), IntervalDays: 30},
				Contract: &income.ContractPay{RatePerUnit: 400, UnitsPerPeriod: 2},
			},
		},
		Passives: []income.PassiveIncome{
			{
				ID:              uuid.New(),
				Name:            "Dividends",
				AmountPerPeriod: 120,
				Schedule:        recurrence.Series{Start: day(2024, 1, 15), IntervalDays: 90},
			},
		},
		OneTimes: []income.NonRecurringIncome{
			{
				ID:     uuid.New(),
				Name:   "Tax Refund",
				Amount: 650,
				Date:   day(2024, 4, 20),
				Tax:    income.Tax{Applies: true, Rate: 0.1},
			},
		},
		JobOverrides: []income.JobOverride{
			{JobID: uuid.New(), Date: day(2024, 2, 2), Amount: &amount},
			{JobID: uuid.New(), Date: day(2024, 2, 16), HoursWorked: &hours},
		},
		PassiveOverrides: []income.PassiveOverride{
			{PassiveID: uuid.New(), Date: day(2024, 4, 15), Amount: &amount},
		},
		OneTimeOverrides: []income.OneTimeOverride{
			{IncomeID: uuid.New(), Date: day(2024, 4, 20), Amount: &amount},
		},
	}
}

func fixtureGoals() []savings.Goal {
	return []savings.Goal{
		{
			ID:     uuid.New(),
			Name:   "Emergency Fund",
			Target: 5000,
			Saved:  1200,
			Schedule: &savings.Schedule{
				IntervalDays: 14,
				Amount:       200,
				Start:        day(2024, 1, 1),
			},
			Entries: []savings.PlannedEntry{
				{ID: uuid.New(), Date: day(2024, 5, 1), Amount: 200},
				{ID: uuid.New(), Date: day(2024, 5, 15), Amount: 200},
			},
		},
		{
			ID:     uuid.New(),
			Name:   "No Schedule",
			Target: 300,
			Saved:  50,
		},
	}
}

func TestSnapshot_RoundTrip(t *testing.T) {
	ds := fixtureDataset()
	goals := fixtureGoals()

	snap := snapshot.Build(ds, goals)

	var buf bytes.Buffer
	require.NoError(t, snap.Encode(&buf))

	decoded, err := snapshot.Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, ds, decoded.IncomeDataset())
	assert.Equal(t, goals, decoded.SavingsGoals())
}

func TestSnapshot_DatesAreISO(t *testing.T) {
	snap := snapshot.Build(fixtureDataset(), nil)

	var buf bytes.Buffer
	require.NoError(t, snap.Encode(&buf))

	assert.Contains(t, buf.String(), `"start_date": "2024-01-05"`)
	assert.Contains(t, buf.String(), `"end_date": "2025-06-30"`)
	assert.NotContains(t, buf.String(), "T00:00:00")
}

func TestSnapshot_AbsentOptionalsStayAbsent(t *testing.T) {
	ds := &income.Dataset{
		Jobs: []income.Job{
			{
				ID:       uuid.New(),
				Name:     "Open Ended",
				Type:     income.JobTypeSalary,
				Schedule: recurrence.Series{Start: day(2024, 1, 1), IntervalDays: 14},
				Salary:   &income.SalaryPay{PerPeriod: 1000},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, snapshot.Build(ds, nil).Encode(&buf))

	decoded, err := snapshot.Decode(&buf)
	require.NoError(t, err)

	got := decoded.IncomeDataset()
	require.Len(t, got.Jobs, 1)
	assert.Nil(t, got.Jobs[0].Schedule.End)
	assert.Nil(t, got.Jobs[0].Hourly)
	assert.Nil(t, got.Jobs[0].Contract)
	assert.False(t, got.Jobs[0].Tax.Applies)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "NotJSON", input: "definitely not json"},
		{name: "Truncated", input: `{"version": 1, "jobs": [`},
		{name: "WrongVersion", input: `{"version": 99}`},
		{name: "BadDate", input: `{"version": 1, "jobs": [{"id": "00000000-0000-0000-0000-000000000000", "start_date": "yesterday"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := snapshot.Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
			assert.Nil(t, got)
		})
	}
}
