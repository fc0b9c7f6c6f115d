package income

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/recurrence"
)

var ErrNotFound = errors.New("income entity not found")

// JobType discriminates the pay variant carried by a Job.
type JobType string

const (
	JobTypeSalary   JobType = "salary"
	JobTypeHourly   JobType = "hourly"
	JobTypeContract JobType = "contract"
)

// Tax is a flat-rate tax applied on top of a gross amount.
type Tax struct {
	Applies bool
	Rate    float64
}

// Net returns gross after tax. A disabled or non-positive rate leaves the
// amount untouched.
func (t Tax) Net(gross float64) float64 {
	if t.Applies && t.Rate > 0 {
		return gross * (1 - t.Rate)
	}

	return gross
}

// SalaryPay is a fixed amount per pay period.
type SalaryPay struct {
	PerPeriod float64
}

// HourlyPay is an hourly rate with planned hours per period and optional
// overtime above a threshold.
type HourlyPay struct {
	Rate               float64
	PlannedHours       float64
	UsesOvertime       bool
	OvertimeThreshold  float64
	OvertimeMultiplier float64
}

// ContractPay is a per-unit rate with an expected unit count per period.
type ContractPay struct {
	RatePerUnit    float64
	UnitsPerPeriod float64
}

// Job is a recurring income source. Exactly one pay payload matching Type
// is set; a missing payload contributes zero rather than erroring.
type Job struct {
	ID       uuid.UUID
	Name     string
	Type     JobType
	Schedule recurrence.Series
	Tax      Tax

	Salary   *SalaryPay
	Hourly   *HourlyPay
	Contract *ContractPay
}

// PassiveIncome is a recurring flat amount per period.
type PassiveIncome struct {
	ID              uuid.UUID
	Name            string
	AmountPerPeriod float64
	Schedule        recurrence.Series
	Tax             Tax
}

// NonRecurringIncome is a single cash event on one day.
type NonRecurringIncome struct {
	ID     uuid.UUID
	Name   string
	Amount float64
	Date   time.Time
	Tax    Tax
}
