package income

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/dateutil"
)

// Override records supersede the formula-derived amount of one entity on
// one calendar day. Keys use same-day equality, so at most one override is
// effective per entity per day; upserting the same key replaces the
// previous record.

type JobOverride struct {
	JobID       uuid.UUID
	Date        time.Time
	Amount      *float64
	HoursWorked *float64
}

type PassiveOverride struct {
	PassiveID uuid.UUID
	Date      time.Time
	Amount    *float64
}

type OneTimeOverride struct {
	IncomeID uuid.UUID
	Date     time.Time
	Amount   *float64
}

type overrideKey struct {
	id  uuid.UUID
	day string
}

func keyFor(id uuid.UUID, day time.Time) overrideKey {
	return overrideKey{id: id, day: dateutil.Key(day)}
}

// JobOverrides indexes job overrides by (job, day) for O(1) lookup.
type JobOverrides map[overrideKey]JobOverride

func IndexJobOverrides(list []JobOverride) JobOverrides {
	idx := make(JobOverrides, len(list))
	for _, o := range list {
		idx[keyFor(o.JobID, o.Date)] = o
	}

	return idx
}

// PassiveOverrides indexes passive-income overrides by (entity, day).
type PassiveOverrides map[overrideKey]PassiveOverride

func IndexPassiveOverrides(list []PassiveOverride) PassiveOverrides {
	idx := make(PassiveOverrides, len(list))
	for _, o := range list {
		idx[keyFor(o.PassiveID, o.Date)] = o
	}

	return idx
}

// OneTimeOverrides indexes one-time-income overrides by (entity, day).
type OneTimeOverrides map[overrideKey]OneTimeOverride

func IndexOneTimeOverrides(list []OneTimeOverride) OneTimeOverrides {
	idx := make(OneTimeOverrides, len(list))
	for _, o := range list {
		idx[keyFor(o.IncomeID, o.Date)] = o
	}

	return idx
}

// EffectiveAmount resolves the job's amount for one pay date. Precedence:
// an explicit override amount, then a recompute from override hours for
// hourly jobs, then the standard per-period formula.
func (j Job) EffectiveAmount(day time.Time, overrides JobOverrides, net bool) float64 {
	o, ok := overrides[keyFor(j.ID, day)]
	if ok && o.Amount != nil {
		return j.settle(nonNegative(*o.Amount), net)
	}

	if ok && o.HoursWorked != nil && j.Type == JobTypeHourly && j.Hourly != nil {
		return j.settle(nonNegative(hourlyGross(*j.Hourly, *o.HoursWorked)), net)
	}

	if net {
		return j.NetPerPeriod()
	}

	return j.GrossPerPeriod()
}

func (j Job) settle(gross float64, net bool) float64 {
	if net {
		return j.Tax.Net(gross)
	}

	return gross
}

// EffectiveAmount resolves the passive income's amount for one date.
func (p PassiveIncome) EffectiveAmount(day time.Time, overrides PassiveOverrides, net bool) float64 {
	if o, ok := overrides[keyFor(p.ID, day)]; ok && o.Amount != nil {
		gross := nonNegative(*o.Amount)
		if net {
			return p.Tax.Net(gross)
		}

		return gross
	}

	if net {
		return p.NetPerPeriod()
	}

	return p.GrossPerPeriod()
}

// EffectiveAmount resolves the one-time income's amount for its date.
func (n NonRecurringIncome) EffectiveAmount(day time.Time, overrides OneTimeOverrides, net bool) float64 {
	if o, ok := overrides[keyFor(n.ID, day)]; ok && o.Amount != nil {
		gross := nonNegative(*o.Amount)
		if net {
			return n.Tax.Net(gross)
		}

		return gross
	}

	if net {
		return n.Net()
	}

	return n.Gross()
}
