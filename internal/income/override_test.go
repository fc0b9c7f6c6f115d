package income_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/internal/income"
)

func TestJob_EffectiveAmount_Precedence(t *testing.T) {
	jobID := uuid.New()
	payDay := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)

	job := income.Job{
		ID:       jobID,
		Type:     income.JobTypeHourly,
		Schedule: biweekly(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		Tax:      income.Tax{Applies: true, Rate: 0.2},
		Hourly: &income.HourlyPay{
			Rate:               20,
			PlannedHours:       40,
			UsesOvertime:       true,
			OvertimeThreshold:  40,
			OvertimeMultiplier: 1.5,
		},
	}

	amount := 1234.0
	hours := 45.0

	tests := []struct {
		name      string
		overrides []income.JobOverride
		net       bool
		want      float64
	}{
		{
			name: "ExplicitAmountWins",
			overrides: []income.JobOverride{
				{JobID: jobID, Date: payDay, Amount: &amount, HoursWorked: &hours},
			},
			want: 1234,
		},
		{
			name: "ExplicitAmountNet",
			overrides: []income.JobOverride{
				{JobID: jobID, Date: payDay, Amount: &amount},
			},
			net:  true,
			want: 1234 * 0.8,
		},
		{
			name: "HoursRecompute",
			overrides: []income.JobOverride{
				{JobID: jobID, Date: payDay, HoursWorked: &hours},
			},
			want: 950, // 40*20 + 5*20*1.5
		},
		{
			name: "NoOverrideFallsBackToFormula",
			want: 800,
		},
		{
			name: "OverrideForOtherDayIgnored",
			overrides: []income.JobOverride{
				{JobID: jobID, Date: payDay.AddDate(0, 0, 1), Amount: &amount},
			},
			want: 800,
		},
		{
			name: "OverrideForOtherJobIgnored",
			overrides: []income.JobOverride{
				{JobID: uuid.New(), Date: payDay, Amount: &amount},
			},
			want: 800,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx := income.IndexJobOverrides(tt.overrides)
			assert.InDelta(t, tt.want, job.EffectiveAmount(payDay, idx, tt.net), 1e-9)
		})
	}
}

func TestJob_EffectiveAmount_SameDayIgnoresTimeOfDay(t *testing.T) {
	jobID := uuid.New()
	amount := 999.0

	job := income.Job{
		ID:       jobID,
		Type:     income.JobTypeSalary,
		Schedule: biweekly(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		Salary:   &income.SalaryPay{PerPeriod: 100},
	}

	idx := income.IndexJobOverrides([]income.JobOverride{
		{JobID: jobID, Date: time.Date(2024, 4, 5, 17, 30, 0, 0, time.UTC), Amount: &amount},
	})

	got := job.EffectiveAmount(time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), idx, false)

	assert.InDelta(t, 999, got, 1e-9)
}

func TestJob_EffectiveAmount_HoursIgnoredForSalary(t *testing.T) {
	jobID := uuid.New()
	hours := 60.0

	job := income.Job{
		ID:       jobID,
		Type:     income.JobTypeSalary,
		Schedule: biweekly(time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)),
		Salary:   &income.SalaryPay{PerPeriod: 100},
	}

	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	idx := income.IndexJobOverrides([]income.JobOverride{
		{JobID: jobID, Date: day, HoursWorked: &hours},
	})

	assert.InDelta(t, 100, job.EffectiveAmount(day, idx, false), 1e-9)
}

func TestIndexJobOverrides_LaterUpsertReplaces(t *testing.T) {
	jobID := uuid.New()
	day := time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC)
	first := 100.0
	second := 200.0

	job := income.Job{
		ID:       jobID,
		Type:     income.JobTypeSalary,
		Schedule: biweekly(day),
		Salary:   &income.SalaryPay{PerPeriod: 50},
	}

	idx := income.IndexJobOverrides([]income.JobOverride{
		{JobID: jobID, Date: day, Amount: &first},
		{JobID: jobID, Date: day, Amount: &second},
	})

	assert.InDelta(t, 200, job.EffectiveAmount(day, idx, false), 1e-9)
}

func TestPassiveIncome_EffectiveAmount(t *testing.T) {
	id := uuid.New()
	day := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	amount := 75.0

	p := income.PassiveIncome{
		ID:              id,
		AmountPerPeriod: 50,
		Schedule:        biweekly(day),
		Tax:             income.Tax{Applies: true, Rate: 0.1},
	}

	idx := income.IndexPassiveOverrides([]income.PassiveOverride{
		{PassiveID: id, Date: day, Amount: &amount},
	})

	assert.InDelta(t, 75, p.EffectiveAmount(day, idx, false), 1e-9)
	assert.InDelta(t, 67.5, p.EffectiveAmount(day, idx, true), 1e-9)
	assert.InDelta(t, 50, p.EffectiveAmount(day.AddDate(0, 0, 14), idx, false), 1e-9)
}

func TestNonRecurringIncome_EffectiveAmount(t *testing.T) {
	id := uuid.New()
	day := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	amount := 300.0

	n := income.NonRecurringIncome{
		ID:     id,
		Amount: 450,
		Date:   day,
	}

	idx := income.IndexOneTimeOverrides([]income.OneTimeOverride{
		{IncomeID: id, Date: day, Amount: &amount},
	})

	assert.InDelta(t, 300, n.EffectiveAmount(day, idx, false), 1e-9)
	assert.InDelta(t, 450, n.EffectiveAmount(day, income.IndexOneTimeOverrides(nil), false), 1e-9)
}
