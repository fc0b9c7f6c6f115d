// Package snapshot bundles the full planner state into a plain-data
// aggregate for backup and restore. Dates are serialized as ISO-8601
// calendar days and every field, including absent optionals, round-trips
// exactly.
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/dateutil"
	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
	"github.com/ledgerline/ledgerline/internal/savings"
)

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{dateutil.Day(t)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(time.DateOnly))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}

	d.Time = t

	return nil
}

type Job struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	IntervalDays int       `json:"interval_days"`
	StartDate    Date      `json:"start_date"`
	EndDate      *Date     `json:"end_date,omitempty"`
	AppliesTax   bool      `json:"applies_tax"`
	TaxRate      *float64  `json:"tax_rate,omitempty"`

	SalaryPerPeriod *float64 `json:"salary_per_period,omitempty"`

	HourlyRate         *float64 `json:"hourly_rate,omitempty"`
	PlannedHours       *float64 `json:"planned_hours,omitempty"`
	UsesOvertime       bool     `json:"uses_overtime,omitempty"`
	OvertimeThreshold  *float64 `json:"overtime_threshold,omitempty"`
	OvertimeMultiplier *float64 `json:"overtime_multiplier,omitempty"`

	ContractRatePerUnit *float64 `json:"contract_rate_per_unit,omitempty"`
	ExpectedUnits       *float64 `json:"expected_units_per_period,omitempty"`
}

type PassiveIncome struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	AmountPerPeriod float64   `json:"amount_per_period"`
	IntervalDays    int       `json:"interval_days"`
	StartDate       Date      `json:"start_date"`
	EndDate         *Date     `json:"end_date,omitempty"`
	AppliesTax      bool      `json:"applies_tax"`
	TaxRate         *float64  `json:"tax_rate,omitempty"`
}

type OneTimeIncome struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Date       Date      `json:"date"`
	AppliesTax bool      `json:"applies_tax"`
	TaxRate    *float64  `json:"tax_rate,omitempty"`
}

type JobOverride struct {
	JobID       uuid.UUID `json:"job_id"`
	Date        Date      `json:"date"`
	Amount      *float64  `json:"amount,omitempty"`
	HoursWorked *float64  `json:"hours_worked,omitempty"`
}

type PassiveOverride struct {
	PassiveID uuid.UUID `json:"passive_id"`
	Date      Date      `json:"date"`
	Amount    *float64  `json:"amount,omitempty"`
}

type OneTimeOverride struct {
	IncomeID uuid.UUID `json:"income_id"`
	Date     Date      `json:"date"`
	Amount   *float64  `json:"amount,omitempty"`
}

type PlannedEntry struct {
	ID     uuid.UUID `json:"id"`
	Date   Date      `json:"date"`
	Amount float64   `json:"amount"`
}

type Goal struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Target float64   `json:"target_amount"`
	Saved  float64   `json:"current_saved"`

	UseSchedule    bool     `json:"use_schedule,omitempty"`
	IntervalDays   *int     `json:"interval_days,omitempty"`
	ScheduleAmount *float64 `json:"schedule_amount,omitempty"`
	StartDate      *Date    `json:"start_date,omitempty"`

	PlannedEntries []PlannedEntry `json:"planned_entries,omitempty"`
}

// Snapshot is the full persisted aggregate.
type Snapshot struct {
	Version int `json:"version"`

	Jobs           []Job           `json:"jobs"`
	PassiveIncomes []PassiveIncome `json:"passive_incomes"`
	OneTimeIncomes []OneTimeIncome `json:"one_time_incomes"`

	JobOverrides     []JobOverride     `json:"job_overrides"`
	PassiveOverrides []PassiveOverride `json:"passive_overrides"`
	OneTimeOverrides []OneTimeOverride `json:"one_time_overrides"`

	Goals []Goal `json:"goals"`
}

const Version = 1

// Encode writes the snapshot as indented JSON.
func (s *Snapshot) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	return nil
}

// Decode reads and fully validates a snapshot. A malformed payload
// returns an error without any partial result, so callers can keep their
// current state untouched.
func Decode(r io.Reader) (*Snapshot, error) {
	var s Snapshot

	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	if s.Version != Version {
		return nil, fmt.Errorf("unsupported snapshot version %d", s.Version)
	}

	return &s, nil
}

// Build assembles a snapshot from the two aggregates.
func Build(ds *income.Dataset, goals []savings.Goal) *Snapshot {
	s := &Snapshot{
		Version:          Version,
		Jobs:             make([]Job, 0, len(ds.Jobs)),
		PassiveIncomes:   make([]PassiveIncome, 0, len(ds.Passives)),
		OneTimeIncomes:   make([]OneTimeIncome, 0, len(ds.OneTimes)),
		JobOverrides:     make([]JobOverride, 0, len(ds.JobOverrides)),
		PassiveOverrides: make([]PassiveOverride, 0, len(ds.PassiveOverrides)),
		OneTimeOverrides: make([]OneTimeOverride, 0, len(ds.OneTimeOverrides)),
		Goals:            make([]Goal, 0, len(goals)),
	}

	for _, j := range ds.Jobs {
		s.Jobs = append(s.Jobs, jobRecord(j))
	}

	for _, p := range ds.Passives {
		s.PassiveIncomes = append(s.PassiveIncomes, PassiveIncome{
			ID:              p.ID,
			Name:            p.Name,
			AmountPerPeriod: p.AmountPerPeriod,
			IntervalDays:    p.Schedule.IntervalDays,
			StartDate:       NewDate(p.Schedule.Start),
			EndDate:         optDate(p.Schedule.End),
			AppliesTax:      p.Tax.Applies,
			TaxRate:         taxRate(p.Tax),
		})
	}

	for _, n := range ds.OneTimes {
		s.OneTimeIncomes = append(s.OneTimeIncomes, OneTimeIncome{
			ID:         n.ID,
			Name:       n.Name,
			Amount:     n.Amount,
			Date:       NewDate(n.Date),
			AppliesTax: n.Tax.Applies,
			TaxRate:    taxRate(n.Tax),
		})
	}

	for _, o := range ds.JobOverrides {
		s.JobOverrides = append(s.JobOverrides, JobOverride{
			JobID:       o.JobID,
			Date:        NewDate(o.Date),
			Amount:      o.Amount,
			HoursWorked: o.HoursWorked,
		})
	}

	for _, o := range ds.PassiveOverrides {
		s.PassiveOverrides = append(s.PassiveOverrides, PassiveOverride{
			PassiveID: o.PassiveID,
			Date:      NewDate(o.Date),
			Amount:    o.Amount,
		})
	}

	for _, o := range ds.OneTimeOverrides {
		s.OneTimeOverrides = append(s.OneTimeOverrides, OneTimeOverride{
			IncomeID: o.IncomeID,
			Date:     NewDate(o.Date),
			Amount:   o.Amount,
		})
	}

	for _, g := range goals {
		s.Goals = append(s.Goals, goalRecord(g))
	}

	return s
}

// IncomeDataset converts the snapshot's income side back to domain types.
func (s *Snapshot) IncomeDataset() *income.Dataset {
	ds := &income.Dataset{}

	for _, j := range s.Jobs {
		ds.Jobs = append(ds.Jobs, jobFromRecord(j))
	}

	for _, p := range s.PassiveIncomes {
		ds.Passives = append(ds.Passives, income.PassiveIncome{
			ID:              p.ID,
			Name:            p.Name,
			AmountPerPeriod: p.AmountPerPeriod,
			Schedule: recurrence.Series{
				Start:        p.StartDate.Time,
				End:          timePtr(p.EndDate),
				IntervalDays: p.IntervalDays,
			},
			Tax: taxFrom(p.AppliesTax, p.TaxRate),
		})
	}

	for _, n := range s.OneTimeIncomes {
		ds.OneTimes = append(ds.OneTimes, income.NonRecurringIncome{
			ID:     n.ID,
			Name:   n.Name,
			Amount: n.Amount,
			Date:   n.Date.Time,
			Tax:    taxFrom(n.AppliesTax, n.TaxRate),
		})
	}

	for _, o := range s.JobOverrides {
		ds.JobOverrides = append(ds.JobOverrides, income.JobOverride{
			JobID:       o.JobID,
			Date:        o.Date.Time,
			Amount:      o.Amount,
			HoursWorked: o.HoursWorked,
		})
	}

	for _, o := range s.PassiveOverrides {
		ds.PassiveOverrides = append(ds.PassiveOverrides, income.PassiveOverride{
			PassiveID: o.PassiveID,
			Date:      o.Date.Time,
			Amount:    o.Amount,
		})
	}

	for _, o := range s.OneTimeOverrides {
		ds.OneTimeOverrides = append(ds.OneTimeOverrides, income.OneTimeOverride{
			IncomeID: o.IncomeID,
			Date:     o.Date.Time,
			Amount:   o.Amount,
		})
	}

	return ds
}

// SavingsGoals converts the snapshot's goals back to domain types.
func (s *Snapshot) SavingsGoals() []savings.Goal {
	goals := make([]savings.Goal, 0, len(s.Goals))

	for _, g := range s.Goals {
		goal := savings.Goal{
			ID:     g.ID,
			Name:   g.Name,
			Target: g.Target,
			Saved:  g.Saved,
		}

		if g.UseSchedule && g.IntervalDays != nil && g.ScheduleAmount != nil && g.StartDate != nil {
			goal.Schedule = &savings.Schedule{
				IntervalDays: *g.IntervalDays,
				Amount:       *g.ScheduleAmount,
				Start:        g.StartDate.Time,
			}
		}

		for _, e := range g.PlannedEntries {
			goal.Entries = append(goal.Entries, savings.PlannedEntry{
				ID:     e.ID,
				Date:   e.Date.Time,
				Amount: e.Amount,
			})
		}

		goals = append(goals, goal)
	}

	return goals
}

func jobRecord(j income.Job) Job {
	rec := Job{
		ID:           j.ID,
		Name:         j.Name,
		Type:         string(j.Type),
		IntervalDays: j.Schedule.IntervalDays,
		StartDate:    NewDate(j.Schedule.Start),
		EndDate:      optDate(j.Schedule.End),
		AppliesTax:   j.Tax.Applies,
		TaxRate:      taxRate(j.Tax),
	}

	switch {
	case j.Salary != nil:
		rec.SalaryPerPeriod = &j.Salary.PerPeriod
	case j.Hourly != nil:
		rec.HourlyRate = &j.Hourly.Rate
		rec.PlannedHours = &j.Hourly.PlannedHours
		rec.UsesOvertime = j.Hourly.UsesOvertime

		if j.Hourly.UsesOvertime {
			rec.OvertimeThreshold = &j.Hourly.OvertimeThreshold
			rec.OvertimeMultiplier = &j.Hourly.OvertimeMultiplier
		}
	case j.Contract != nil:
		rec.ContractRatePerUnit = &j.Contract.RatePerUnit
		rec.ExpectedUnits = &j.Contract.UnitsPerPeriod
	}

	return rec
}

func jobFromRecord(rec Job) income.Job {
	j := income.Job{
		ID:   rec.ID,
		Name: rec.Name,
		Type: income.JobType(rec.Type),
		Schedule: recurrence.Series{
			Start:        rec.StartDate.Time,
			End:          timePtr(rec.EndDate),
			IntervalDays: rec.IntervalDays,
		},
		Tax: taxFrom(rec.AppliesTax, rec.TaxRate),
	}

	switch j.Type {
	case income.JobTypeSalary:
		if rec.SalaryPerPeriod != nil {
			j.Salary = &income.SalaryPay{PerPeriod: *rec.SalaryPerPeriod}
		}
	case income.JobTypeHourly:
		if rec.HourlyRate != nil {
			pay := income.HourlyPay{
				Rate:         *rec.HourlyRate,
				UsesOvertime: rec.UsesOvertime,
			}

			if rec.PlannedHours != nil {
				pay.PlannedHours = *rec.PlannedHours
			}

			if rec.OvertimeThreshold != nil {
				pay.OvertimeThreshold = *rec.OvertimeThreshold
			}

			if rec.OvertimeMultiplier != nil {
				pay.OvertimeMultiplier = *rec.OvertimeMultiplier
			}

			j.Hourly = &pay
		}
	case income.JobTypeContract:
		if rec.ContractRatePerUnit != nil && rec.ExpectedUnits != nil {
			j.Contract = &income.ContractPay{
				RatePerUnit:    *rec.ContractRatePerUnit,
				UnitsPerPeriod: *rec.ExpectedUnits,
			}
		}
	}

	return j
}

func goalRecord(g savings.Goal) Goal {
	rec := Goal{
		ID:     g.ID,
		Name:   g.Name,
		Target: g.Target,
		Saved:  g.Saved,
	}

	if g.Schedule != nil {
		rec.UseSchedule = true
		rec.IntervalDays = &g.Schedule.IntervalDays
		rec.ScheduleAmount = &g.Schedule.Amount

		start := NewDate(g.Schedule.Start)
		rec.StartDate = &start
	}

	for _, e := range g.Entries {
		rec.PlannedEntries = append(rec.PlannedEntries, PlannedEntry{
			ID:     e.ID,
			Date:   NewDate(e.Date),
			Amount: e.Amount,
		})
	}

	return rec
}

func optDate(t *time.Time) *Date {
	if t == nil {
		return nil
	}

	d := NewDate(*t)

	return &d
}

func timePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}

	t := d.Time

	return &t
}

func taxRate(t income.Tax) *float64 {
	if !t.Applies {
		return nil
	}

	return &t.Rate
}

func taxFrom(applies bool, rate *float64) income.Tax {
	t := income.Tax{Applies: applies}
	if rate != nil {
		t.Rate = *rate
	}

	return t
}
