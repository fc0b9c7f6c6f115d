package income

// DaysPerMonth is the average length of a calendar month, used to scale
// per-period amounts into per-month approximations.
const DaysPerMonth = 30.44

// PeriodsPerMonth returns the approximate number of pay periods per month
// for the given interval. A non-positive interval yields zero.
func PeriodsPerMonth(intervalDays int) float64 {
	if intervalDays < 1 {
		return 0
	}

	return DaysPerMonth / float64(intervalDays)
}

// Projector is satisfied by recurring income sources that can project
// their standard amounts.
type Projector interface {
	GrossPerPeriod() float64
	NetPerPeriod() float64
	GrossPerMonth() float64
	NetPerMonth() float64
}

// Projection bundles the four standard projections of a recurring source.
type Projection struct {
	GrossPerPeriod float64
	NetPerPeriod   float64
	GrossPerMonth  float64
	NetPerMonth    float64
}

// ProjectionOf evaluates all four projections of p.
func ProjectionOf(p Projector) Projection {
	return Projection{
		GrossPerPeriod: p.GrossPerPeriod(),
		NetPerPeriod:   p.NetPerPeriod(),
		GrossPerMonth:  p.GrossPerMonth(),
		NetPerMonth:    p.NetPerMonth(),
	}
}

// GrossPerPeriod returns the job's standard pre-tax amount for one pay
// period. A payload missing its required fields contributes zero.
func (j Job) GrossPerPeriod() float64 {
	var gross float64

	switch j.Type {
	case JobTypeSalary:
		if j.Salary != nil {
			gross = j.Salary.PerPeriod
		}
	case JobTypeHourly:
		if j.Hourly != nil {
			gross = hourlyGross(*j.Hourly, j.Hourly.PlannedHours)
		}
	case JobTypeContract:
		if j.Contract != nil {
			gross = j.Contract.RatePerUnit * j.Contract.UnitsPerPeriod
		}
	}

	return nonNegative(gross)
}

func (j Job) NetPerPeriod() float64 {
	return j.Tax.Net(j.GrossPerPeriod())
}

func (j Job) GrossPerMonth() float64 {
	return j.GrossPerPeriod() * PeriodsPerMonth(j.Schedule.IntervalDays)
}

func (j Job) NetPerMonth() float64 {
	return j.NetPerPeriod() * PeriodsPerMonth(j.Schedule.IntervalDays)
}

func (p PassiveIncome) GrossPerPeriod() float64 {
	return nonNegative(p.AmountPerPeriod)
}

func (p PassiveIncome) NetPerPeriod() float64 {
	return p.Tax.Net(p.GrossPerPeriod())
}

func (p PassiveIncome) GrossPerMonth() float64 {
	return p.GrossPerPeriod() * PeriodsPerMonth(p.Schedule.IntervalDays)
}

func (p PassiveIncome) NetPerMonth() float64 {
	return p.NetPerPeriod() * PeriodsPerMonth(p.Schedule.IntervalDays)
}

// Gross returns the one-time amount before tax.
func (n NonRecurringIncome) Gross() float64 {
	return nonNegative(n.Amount)
}

// Net returns the one-time amount after tax.
func (n NonRecurringIncome) Net() float64 {
	return n.Tax.Net(n.Gross())
}

// hourlyGross computes pay for the worked hours under the payload's rate,
// splitting hours above the overtime threshold onto the multiplied rate.
func hourlyGross(p HourlyPay, hours float64) float64 {
	if p.UsesOvertime && hours > p.OvertimeThreshold {
		regular := p.OvertimeThreshold * p.Rate
		overtime := (hours - p.OvertimeThreshold) * p.Rate * p.OvertimeMultiplier

		return regular + overtime
	}

	return hours * p.Rate
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}
