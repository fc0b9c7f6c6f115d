package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectJobColumns = `
	id, name, type, schedule_start, schedule_end, interval_days,
	tax_applies, tax_rate,
	salary_per_period,
	hourly_rate, hourly_planned_hours, hourly_uses_overtime, hourly_overtime_threshold, hourly_overtime_multiplier,
	contract_rate_per_unit, contract_units_per_period
`

// scanJob reads a job row in selectJobColumns order and rebuilds the pay
// payload matching the stored type.
func scanJob(s scanner) (*income.Job, error) {
	var (
		job     income.Job
		typeStr string
		end     sql.NullTime

		salaryPer sql.NullFloat64

		hourlyRate, hourlyHours, otThreshold, otMultiplier sql.NullFloat64
		usesOvertime                                       sql.NullBool

		contractRate, contractUnits sql.NullFloat64
	)

	if err := s.Scan(
		&job.ID, &job.Name, &typeStr, &job.Schedule.Start, &end, &job.Schedule.IntervalDays,
		&job.Tax.Applies, &job.Tax.Rate,
		&salaryPer,
		&hourlyRate, &hourlyHours, &usesOvertime, &otThreshold, &otMultiplier,
		&contractRate, &contractUnits,
	); err != nil {
		return nil, err
	}

	job.Type = income.JobType(typeStr)
	if end.Valid {
		job.Schedule.End = &end.Time
	}

	switch job.Type {
	case income.JobTypeSalary:
		if salaryPer.Valid {
			job.Salary = &income.SalaryPay{PerPeriod: salaryPer.Float64}
		}
	case income.JobTypeHourly:
		if hourlyRate.Valid {
			job.Hourly = &income.HourlyPay{
				Rate:               hourlyRate.Float64,
				PlannedHours:       hourlyHours.Float64,
				UsesOvertime:       usesOvertime.Bool,
				OvertimeThreshold:  otThreshold.Float64,
				OvertimeMultiplier: otMultiplier.Float64,
			}
		}
	case income.JobTypeContract:
		if contractRate.Valid {
			job.Contract = &income.ContractPay{
				RatePerUnit:    contractRate.Float64,
				UnitsPerPeriod: contractUnits.Float64,
			}
		}
	}

	return &job, nil
}

// jobArgs flattens the variant payload into the nullable column set.
func jobArgs(job *income.Job) []any {
	var (
		salaryPer sql.NullFloat64

		hourlyRate, hourlyHours, otThreshold, otMultiplier sql.NullFloat64
		usesOvertime                                       sql.NullBool

		contractRate, contractUnits sql.NullFloat64
	)

	if job.Salary != nil {
		salaryPer = sql.NullFloat64{Float64: job.Salary.PerPeriod, Valid: true}
	}

	if job.Hourly != nil {
		hourlyRate = sql.NullFloat64{Float64: job.Hourly.Rate, Valid: true}
		hourlyHours = sql.NullFloat64{Float64: job.Hourly.PlannedHours, Valid: true}
		usesOvertime = sql.NullBool{Bool: job.Hourly.UsesOvertime, Valid: true}
		otThreshold = sql.NullFloat64{Float64: job.Hourly.OvertimeThreshold, Valid: true}
		otMultiplier = sql.NullFloat64{Float64: job.Hourly.OvertimeMultiplier, Valid: true}
	}

	if job.Contract != nil {
		contractRate = sql.NullFloat64{Float64: job.Contract.RatePerUnit, Valid: true}
		contractUnits = sql.NullFloat64{Float64: job.Contract.UnitsPerPeriod, Valid: true}
	}

	var endDate any
	if job.Schedule.End != nil {
		endDate = *job.Schedule.End
	}

	return []any{
		job.Name, string(job.Type), job.Schedule.Start, endDate, job.Schedule.IntervalDays,
		job.Tax.Applies, job.Tax.Rate,
		salaryPer,
		hourlyRate, hourlyHours, usesOvertime, otThreshold, otMultiplier,
		contractRate, contractUnits,
	}
}

func (s *Store) CreateJob(ctx context.Context, job *income.Job) error {
	query := `
		INSERT INTO jobs (id, name, type, schedule_start, schedule_end, interval_days,
			tax_applies, tax_rate,
			salary_per_period,
			hourly_rate, hourly_planned_hours, hourly_uses_overtime, hourly_overtime_threshold, hourly_overtime_multiplier,
			contract_rate_per_unit, contract_units_per_period)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	args := append([]any{job.ID}, jobArgs(job)...)
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("creating job: %w", err)
	}

	return nil
}

func (s *Store) GetJob(ctx context.Context, id uuid.UUID) (*income.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM jobs WHERE id = $1`

	job, err := scanJob(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting job: %w", err)
	}

	return job, nil
}

func (s *Store) ListJobs(ctx context.Context) ([]*income.Job, error) {
	query := `SELECT ` + selectJobColumns + ` FROM jobs ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*income.Job

	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}

		jobs = append(jobs, job)
	}

	return jobs, rows.Err()
}

func (s *Store) UpdateJob(ctx context.Context, job *income.Job) error {
	query := `
		UPDATE jobs
		SET name = $1, type = $2, schedule_start = $3, schedule_end = $4, interval_days = $5,
			tax_applies = $6, tax_rate = $7,
			salary_per_period = $8,
			hourly_rate = $9, hourly_planned_hours = $10, hourly_uses_overtime = $11,
			hourly_overtime_threshold = $12, hourly_overtime_multiplier = $13,
			contract_rate_per_unit = $14, contract_units_per_period = $15
		WHERE id = $16
	`

	args := append(jobArgs(job), job.ID)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return income.ErrNotFound
	}

	return nil
}

// DeleteJob removes the job and its overrides in one transaction.
func (s *Store) DeleteJob(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM job_overrides WHERE job_id = $1`, id); err != nil {
		return fmt.Errorf("deleting job overrides: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

const selectPassiveColumns = `
	id, name, amount_per_period, schedule_start, schedule_end, interval_days, tax_applies, tax_rate
`

func scanPassive(s scanner) (*income.PassiveIncome, error) {
	var (
		p   income.PassiveIncome
		end sql.NullTime
	)

	if err := s.Scan(
		&p.ID, &p.Name, &p.AmountPerPeriod, &p.Schedule.Start, &end, &p.Schedule.IntervalDays,
		&p.Tax.Applies, &p.Tax.Rate,
	); err != nil {
		return nil, err
	}

	if end.Valid {
		p.Schedule.End = &end.Time
	}

	return &p, nil
}

func (s *Store) CreatePassiveIncome(ctx context.Context, p *income.PassiveIncome) error {
	query := `
		INSERT INTO passive_incomes (id, name, amount_per_period, schedule_start, schedule_end, interval_days, tax_applies, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	if _, err := s.db.ExecContext(ctx, query,
		p.ID, p.Name, p.AmountPerPeriod, p.Schedule.Start, nullableTime(p.Schedule.End), p.Schedule.IntervalDays,
		p.Tax.Applies, p.Tax.Rate,
	); err != nil {
		return fmt.Errorf("creating passive income: %w", err)
	}

	return nil
}

func (s *Store) GetPassiveIncome(ctx context.Context, id uuid.UUID) (*income.PassiveIncome, error) {
	query := `SELECT ` + selectPassiveColumns + ` FROM passive_incomes WHERE id = $1`

	p, err := scanPassive(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting passive income: %w", err)
	}

	return p, nil
}

func (s *Store) ListPassiveIncomes(ctx context.Context) ([]*income.PassiveIncome, error) {
	query := `SELECT ` + selectPassiveColumns + ` FROM passive_incomes ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing passive incomes: %w", err)
	}
	defer rows.Close()

	var ps []*income.PassiveIncome

	for rows.Next() {
		p, err := scanPassive(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning passive income: %w", err)
		}

		ps = append(ps, p)
	}

	return ps, rows.Err()
}

func (s *Store) UpdatePassiveIncome(ctx context.Context, p *income.PassiveIncome) error {
	query := `
		UPDATE passive_incomes
		SET name = $1, amount_per_period = $2, schedule_start = $3, schedule_end = $4, interval_days = $5,
			tax_applies = $6, tax_rate = $7
		WHERE id = $8
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name, p.AmountPerPeriod, p.Schedule.Start, nullableTime(p.Schedule.End), p.Schedule.IntervalDays,
		p.Tax.Applies, p.Tax.Rate, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating passive income: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return income.ErrNotFound
	}

	return nil
}

func (s *Store) DeletePassiveIncome(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM passive_overrides WHERE passive_id = $1`, id); err != nil {
		return fmt.Errorf("deleting passive overrides: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM passive_incomes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting passive income: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

const selectOneTimeColumns = `id, name, amount, date, tax_applies, tax_rate`

func scanOneTime(s scanner) (*income.NonRecurringIncome, error) {
	var n income.NonRecurringIncome

	if err := s.Scan(&n.ID, &n.Name, &n.Amount, &n.Date, &n.Tax.Applies, &n.Tax.Rate); err != nil {
		return nil, err
	}

	return &n, nil
}

func (s *Store) CreateNonRecurring(ctx context.Context, n *income.NonRecurringIncome) error {
	query := `
		INSERT INTO one_time_incomes (id, name, amount, date, tax_applies, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if _, err := s.db.ExecContext(ctx, query, n.ID, n.Name, n.Amount, n.Date, n.Tax.Applies, n.Tax.Rate); err != nil {
		return fmt.Errorf("creating one-time income: %w", err)
	}

	return nil
}

func (s *Store) GetNonRecurring(ctx context.Context, id uuid.UUID) (*income.NonRecurringIncome, error) {
	query := `SELECT ` + selectOneTimeColumns + ` FROM one_time_incomes WHERE id = $1`

	n, err := scanOneTime(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting one-time income: %w", err)
	}

	return n, nil
}

func (s *Store) ListNonRecurring(ctx context.Context, from, to *time.Time) ([]*income.NonRecurringIncome, error) {
	query := `SELECT ` + selectOneTimeColumns + ` FROM one_time_incomes`

	var args []any

	argIdx := 1

	if from != nil {
		query += fmt.Sprintf(" WHERE date >= $%d", argIdx)

		args = append(args, *from)
		argIdx++
	}

	if to != nil {
		if from == nil {
			query += " WHERE"
		} else {
			query += " AND"
		}

		query += fmt.Sprintf(" date <= $%d", argIdx)
		args = append(args, *to)
	}

	query += " ORDER BY date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing one-time incomes: %w", err)
	}
	defer rows.Close()

	var ns []*income.NonRecurringIncome

	for rows.Next() {
		n, err := scanOneTime(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning one-time income: %w", err)
		}

		ns = append(ns, n)
	}

	return ns, rows.Err()
}

func (s *Store) UpdateNonRecurring(ctx context.Context, n *income.NonRecurringIncome) error {
	query := `
		UPDATE one_time_incomes
		SET name = $1, amount = $2, date = $3, tax_applies = $4, tax_rate = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query, n.Name, n.Amount, n.Date, n.Tax.Applies, n.Tax.Rate, n.ID)
	if err != nil {
		return fmt.Errorf("updating one-time income: %w", err)
	}

	if rowsAffected, err := res.RowsAffected(); err == nil && rowsAffected == 0 {
		return income.ErrNotFound
	}

	return nil
}

func (s *Store) DeleteNonRecurring(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM one_time_overrides WHERE income_id = $1`, id); err != nil {
		return fmt.Errorf("deleting one-time overrides: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM one_time_incomes WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting one-time income: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) UpsertJobOverride(ctx context.Context, o income.JobOverride) error {
	query := `
		INSERT INTO job_overrides (job_id, date, amount, hours_worked)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (job_id, date) DO UPDATE SET amount = EXCLUDED.amount, hours_worked = EXCLUDED.hours_worked
	`

	if _, err := s.db.ExecContext(ctx, query, o.JobID, o.Date, o.Amount, o.HoursWorked); err != nil {
		return fmt.Errorf("upserting job override: %w", err)
	}

	return nil
}

func (s *Store) DeleteJobOverride(ctx context.Context, jobID uuid.UUID, day time.Time) error {
	query := `DELETE FROM job_overrides WHERE job_id = $1 AND date = $2`

	if _, err := s.db.ExecContext(ctx, query, jobID, day); err != nil {
		return fmt.Errorf("deleting job override: %w", err)
	}

	return nil
}

func (s *Store) ListJobOverrides(ctx context.Context, from, to time.Time) ([]income.JobOverride, error) {
	query := `
		SELECT job_id, date, amount, hours_worked
		FROM job_overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing job overrides: %w", err)
	}
	defer rows.Close()

	var ovs []income.JobOverride

	for rows.Next() {
		var o income.JobOverride
		if err := rows.Scan(&o.JobID, &o.Date, &o.Amount, &o.HoursWorked); err != nil {
			return nil, fmt.Errorf("scanning job override: %w", err)
		}

		ovs = append(ovs, o)
	}

	return ovs, rows.Err()
}

func (s *Store) UpsertPassiveOverride(ctx context.Context, o income.PassiveOverride) error {
	query := `
		INSERT INTO passive_overrides (passive_id, date, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (passive_id, date) DO UPDATE SET amount = EXCLUDED.amount
	`

	if _, err := s.db.ExecContext(ctx, query, o.PassiveID, o.Date, o.Amount); err != nil {
		return fmt.Errorf("upserting passive override: %w", err)
	}

	return nil
}

func (s *Store) DeletePassiveOverride(ctx context.Context, passiveID uuid.UUID, day time.Time) error {
	query := `DELETE FROM passive_overrides WHERE passive_id = $1 AND date = $2`

	if _, err := s.db.ExecContext(ctx, query, passiveID, day); err != nil {
		return fmt.Errorf("deleting passive override: %w", err)
	}

	return nil
}

func (s *Store) ListPassiveOverrides(ctx context.Context, from, to time.Time) ([]income.PassiveOverride, error) {
	query := `
		SELECT passive_id, date, amount
		FROM passive_overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing passive overrides: %w", err)
	}
	defer rows.Close()

	var ovs []income.PassiveOverride

	for rows.Next() {
		var o income.PassiveOverride
		if err := rows.Scan(&o.PassiveID, &o.Date, &o.Amount); err != nil {
			return nil, fmt.Errorf("scanning passive override: %w", err)
		}

		ovs = append(ovs, o)
	}

	return ovs, rows.Err()
}

func (s *Store) UpsertOneTimeOverride(ctx context.Context, o income.OneTimeOverride) error {
	query := `
		INSERT INTO one_time_overrides (income_id, date, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (income_id, date) DO UPDATE SET amount = EXCLUDED.amount
	`

	if _, err := s.db.ExecContext(ctx, query, o.IncomeID, o.Date, o.Amount); err != nil {
		return fmt.Errorf("upserting one-time override: %w", err)
	}

	return nil
}

func (s *Store) DeleteOneTimeOverride(ctx context.Context, incomeID uuid.UUID, day time.Time) error {
	query := `DELETE FROM one_time_overrides WHERE income_id = $1 AND date = $2`

	if _, err := s.db.ExecContext(ctx, query, incomeID, day); err != nil {
		return fmt.Errorf("deleting one-time override: %w", err)
	}

	return nil
}

func (s *Store) ListOneTimeOverrides(ctx context.Context, from, to time.Time) ([]income.OneTimeOverride, error) {
	query := `
		SELECT income_id, date, amount
		FROM one_time_overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing one-time overrides: %w", err)
	}
	defer rows.Close()

	var ovs []income.OneTimeOverride

	for rows.Next() {
		var o income.OneTimeOverride
		if err := rows.Scan(&o.IncomeID, &o.Date, &o.Amount); err != nil {
			return nil, fmt.Errorf("scanning one-time override: %w", err)
		}

		ovs = append(ovs, o)
	}

	return ovs, rows.Err()
}

// Dataset loads the entire income aggregate for snapshot export. Override
// queries use an unbounded window so nothing is left behind.
func (s *Store) Dataset(ctx context.Context) (*income.Dataset, error) {
	var ds income.Dataset

	jobs, err := s.ListJobs(ctx)
	if err != nil {
		return nil, err
	}

	passives, err := s.ListPassiveIncomes(ctx)
	if err != nil {
		return nil, err
	}

	oneTimes, err := s.ListNonRecurring(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	farPast := time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	farFuture := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	if ds.JobOverrides, err = s.ListJobOverrides(ctx, farPast, farFuture); err != nil {
		return nil, err
	}

	if ds.PassiveOverrides, err = s.ListPassiveOverrides(ctx, farPast, farFuture); err != nil {
		return nil, err
	}

	if ds.OneTimeOverrides, err = s.ListOneTimeOverrides(ctx, farPast, farFuture); err != nil {
		return nil, err
	}

	for _, j := range jobs {
		ds.Jobs = append(ds.Jobs, *j)
	}

	for _, p := range passives {
		ds.Passives = append(ds.Passives, *p)
	}

	for _, n := range oneTimes {
		ds.OneTimes = append(ds.OneTimes, *n)
	}

	return &ds, nil
}

// ReplaceAll wipes the aggregate and reloads it from a decoded snapshot,
// all in one transaction.
func (s *Store) ReplaceAll(ctx context.Context, ds *income.Dataset) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	tables := []string{
		"job_overrides", "passive_overrides", "one_time_overrides",
		"jobs", "passive_incomes", "one_time_incomes",
	}
	for _, table := range tables {
		if _, err := dbTx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	jobQuery := `
		INSERT INTO jobs (id, name, type, schedule_start, schedule_end, interval_days,
			tax_applies, tax_rate,
			salary_per_period,
			hourly_rate, hourly_planned_hours, hourly_uses_overtime, hourly_overtime_threshold, hourly_overtime_multiplier,
			contract_rate_per_unit, contract_units_per_period)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	for i := range ds.Jobs {
		args := append([]any{ds.Jobs[i].ID}, jobArgs(&ds.Jobs[i])...)
		if _, err := dbTx.ExecContext(ctx, jobQuery, args...); err != nil {
			return fmt.Errorf("restoring job: %w", err)
		}
	}

	passiveQuery := `
		INSERT INTO passive_incomes (id, name, amount_per_period, schedule_start, schedule_end, interval_days, tax_applies, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	for _, p := range ds.Passives {
		if _, err := dbTx.ExecContext(ctx, passiveQuery,
			p.ID, p.Name, p.AmountPerPeriod, p.Schedule.Start, nullableTime(p.Schedule.End), p.Schedule.IntervalDays,
			p.Tax.Applies, p.Tax.Rate,
		); err != nil {
			return fmt.Errorf("restoring passive income: %w", err)
		}
	}

	oneTimeQuery := `
		INSERT INTO one_time_incomes (id, name, amount, date, tax_applies, tax_rate)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, n := range ds.OneTimes {
		if _, err := dbTx.ExecContext(ctx, oneTimeQuery,
			n.ID, n.Name, n.Amount, n.Date, n.Tax.Applies, n.Tax.Rate,
		); err != nil {
			return fmt.Errorf("restoring one-time income: %w", err)
		}
	}

	for _, o := range ds.JobOverrides {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO job_overrides (job_id, date, amount, hours_worked) VALUES ($1, $2, $3, $4)`,
			o.JobID, o.Date, o.Amount, o.HoursWorked,
		); err != nil {
			return fmt.Errorf("restoring job override: %w", err)
		}
	}

	for _, o := range ds.PassiveOverrides {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO passive_overrides (passive_id, date, amount) VALUES ($1, $2, $3)`,
			o.PassiveID, o.Date, o.Amount,
		); err != nil {
			return fmt.Errorf("restoring passive override: %w", err)
		}
	}

	for _, o := range ds.OneTimeOverrides {
		if _, err := dbTx.ExecContext(ctx,
			`INSERT INTO one_time_overrides (income_id, date, amount) VALUES ($1, $2, $3)`,
			o.IncomeID, o.Date, o.Amount,
		); err != nil {
			return fmt.Errorf("restoring one-time override: %w", err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}

	return *t
}
