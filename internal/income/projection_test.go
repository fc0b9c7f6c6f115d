package income_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
)

func biweekly(start time.Time) recurrence.Series {
	return recurrence.Series{Start: start, IntervalDays: 14}
}

func TestJob_GrossPerPeriod(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		job  income.Job
		want float64
	}{
		{
			name: "Salary",
			job: income.Job{
				Type:     income.JobTypeSalary,
				Schedule: biweekly(start),
				Salary:   &income.SalaryPay{PerPeriod: 2500},
			},
			want: 2500,
		},
		{
			name: "SalaryMissingPayload",
			job: income.Job{
				Type:     income.JobTypeSalary,
				Schedule: biweekly(start),
			},
			want: 0,
		},
		{
			name: "HourlyNoOvertime",
			job: income.Job{
				Type:     income.JobTypeHourly,
				Schedule: biweekly(start),
				Hourly:   &income.HourlyPay{Rate: 20, PlannedHours: 38},
			},
			want: 760,
		},
		{
			name: "HourlyWithOvertime",
			job: income.Job{
				Type:     income.JobTypeHourly,
				Schedule: biweekly(start),
				Hourly: &income.HourlyPay{
					Rate:               20,
					PlannedHours:       45,
					UsesOvertime:       true,
					OvertimeThreshold:  40,
					OvertimeMultiplier: 1.5,
				},
			},
			want: 950, // 40*20 + 5*20*1.5
		},
		{
			name: "HourlyUnderThreshold",
			job: income.Job{
				Type:     income.JobTypeHourly,
				Schedule: biweekly(start),
				Hourly: &income.HourlyPay{
					Rate:               20,
					PlannedHours:       35,
					UsesOvertime:       true,
					OvertimeThreshold:  40,
					OvertimeMultiplier: 1.5,
				},
			},
			want: 700,
		},
		{
			name: "Contract",
			job: income.Job{
				Type:     income.JobTypeContract,
				Schedule: biweekly(start),
				Contract: &income.ContractPay{RatePerUnit: 150, UnitsPerPeriod: 4},
			},
			want: 600,
		},
		{
			name: "ContractMissingPayload",
			job: income.Job{
				Type:     income.JobTypeContract,
				Schedule: biweekly(start),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.job.GrossPerPeriod(), 1e-9)
		})
	}
}

func TestJob_NetNeverExceedsGross(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	jobs := []income.Job{
		{
			Type:     income.JobTypeSalary,
			Schedule: biweekly(start),
			Tax:      income.Tax{Applies: true, Rate: 0.22},
			Salary:   &income.SalaryPay{PerPeriod: 3000},
		},
		{
			Type:     income.JobTypeHourly,
			Schedule: biweekly(start),
			Tax:      income.Tax{Applies: true, Rate: 0.3},
			Hourly:   &income.HourlyPay{Rate: 25, PlannedHours: 40},
		},
		{
			Type:     income.JobTypeContract,
			Schedule: biweekly(start),
			Tax:      income.Tax{Applies: true, Rate: 1},
			Contract: &income.ContractPay{RatePerUnit: 100, UnitsPerPeriod: 2},
		},
	}

	for _, j := range jobs {
		assert.Less(t, j.NetPerPeriod(), j.GrossPerPeriod())
	}

	// Tax disabled or zero-rate leaves net equal to gross.
	untaxed := income.Job{
		Type:     income.JobTypeSalary,
		Schedule: biweekly(start),
		Salary:   &income.SalaryPay{PerPeriod: 3000},
	}
	assert.Equal(t, untaxed.GrossPerPeriod(), untaxed.NetPerPeriod())

	zeroRate := untaxed
	zeroRate.Tax = income.Tax{Applies: true, Rate: 0}
	assert.Equal(t, zeroRate.GrossPerPeriod(), zeroRate.NetPerPeriod())
}

func TestPeriodsPerMonth(t *testing.T) {
	assert.InDelta(t, 2.174, income.PeriodsPerMonth(14), 0.001)
	assert.InDelta(t, 30.44, income.PeriodsPerMonth(1), 1e-9)
	assert.Zero(t, income.PeriodsPerMonth(0))
	assert.Zero(t, income.PeriodsPerMonth(-3))
}

func TestJob_PerMonth(t *testing.T) {
	j := income.Job{
		Type:     income.JobTypeSalary,
		Schedule: biweekly(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Tax:      income.Tax{Applies: true, Rate: 0.25},
		Salary:   &income.SalaryPay{PerPeriod: 1400},
	}

	assert.InDelta(t, 1400*30.44/14, j.GrossPerMonth(), 1e-9)
	assert.InDelta(t, 1050*30.44/14, j.NetPerMonth(), 1e-9)
}

func TestPassiveIncome_Projections(t *testing.T) {
	p := income.PassiveIncome{
		AmountPerPeriod: 90,
		Schedule: recurrence.Series{
			Start:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			IntervalDays: 30,
		},
		Tax: income.Tax{Applies: true, Rate: 0.1},
	}

	assert.InDelta(t, 90, p.GrossPerPeriod(), 1e-9)
	assert.InDelta(t, 81, p.NetPerPeriod(), 1e-9)
	assert.InDelta(t, 90*30.44/30, p.GrossPerMonth(), 1e-9)
}

func TestNonRecurringIncome_GrossNet(t *testing.T) {
	n := income.NonRecurringIncome{
		Amount: 500,
		Date:   time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Tax:    income.Tax{Applies: true, Rate: 0.2},
	}

	assert.InDelta(t, 500, n.Gross(), 1e-9)
	assert.InDelta(t, 400, n.Net(), 1e-9)
}

func TestProjectionOf(t *testing.T) {
	j := income.Job{
		Type:     income.JobTypeSalary,
		Schedule: biweekly(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		Salary:   &income.SalaryPay{PerPeriod: 1000},
	}

	p := income.ProjectionOf(j)

	assert.InDelta(t, 1000, p.GrossPerPeriod, 1e-9)
	assert.InDelta(t, 1000, p.NetPerPeriod, 1e-9)
	assert.InDelta(t, 1000*30.44/14, p.GrossPerMonth, 1e-9)
}
