package income

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	CreateJob(ctx context.Context, job *Job) error
	GetJob(ctx context.Context, id uuid.UUID) (*Job, error)
	ListJobs(ctx context.Context) ([]*Job, error)
	UpdateJob(ctx context.Context, job *Job) error
	DeleteJob(ctx context.Context, id uuid.UUID) error

	CreatePassiveIncome(ctx context.Context, p *PassiveIncome) error
	GetPassiveIncome(ctx context.Context, id uuid.UUID) (*PassiveIncome, error)
	ListPassiveIncomes(ctx context.Context) ([]*PassiveIncome, error)
	UpdatePassiveIncome(ctx context.Context, p *PassiveIncome) error
	DeletePassiveIncome(ctx context.Context, id uuid.UUID) error

	CreateNonRecurring(ctx context.Context, n *NonRecurringIncome) error
	GetNonRecurring(ctx context.Context, id uuid.UUID) (*NonRecurringIncome, error)
	ListNonRecurring(ctx context.Context, from, to *time.Time) ([]*NonRecurringIncome, error)
	UpdateNonRecurring(ctx context.Context, n *NonRecurringIncome) error
	DeleteNonRecurring(ctx context.Context, id uuid.UUID) error

	UpsertJobOverride(ctx context.Context, o JobOverride) error
	DeleteJobOverride(ctx context.Context, jobID uuid.UUID, day time.Time) error
	ListJobOverrides(ctx context.Context, from, to time.Time) ([]JobOverride, error)

	UpsertPassiveOverride(ctx context.Context, o PassiveOverride) error
	DeletePassiveOverride(ctx context.Context, passiveID uuid.UUID, day time.Time) error
	ListPassiveOverrides(ctx context.Context, from, to time.Time) ([]PassiveOverride, error)

	UpsertOneTimeOverride(ctx context.Context, o OneTimeOverride) error
	DeleteOneTimeOverride(ctx context.Context, incomeID uuid.UUID, day time.Time) error
	ListOneTimeOverrides(ctx context.Context, from, to time.Time) ([]OneTimeOverride, error)

	Dataset(ctx context.Context) (*Dataset, error)
	ReplaceAll(ctx context.Context, ds *Dataset) error
}

// Dataset is the full income aggregate: every entity and every override.
type Dataset struct {
	Jobs             []Job
	Passives         []PassiveIncome
	OneTimes         []NonRecurringIncome
	JobOverrides     []JobOverride
	PassiveOverrides []PassiveOverride
	OneTimeOverrides []OneTimeOverride
}

// Service owns the income aggregate. All mutations pass through it, one
// repository call per user action.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateJob(ctx context.Context, job Job) (*Job, error) {
	job.ID = uuid.New()
	normalizeJob(&job)

	if err := s.repo.CreateJob(ctx, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	return s.repo.GetJob(ctx, id)
}

func (s *Service) ListJobs(ctx context.Context) ([]*Job, error) {
	return s.repo.ListJobs(ctx)
}

// UpdateJob replaces the stored job wholesale. Changing the type drops the
// previous type's payload, so stale variant fields never survive an edit.
func (s *Service) UpdateJob(ctx context.Context, job Job) (*Job, error) {
	normalizeJob(&job)

	if err := s.repo.UpdateJob(ctx, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

// DeleteJob removes the job together with all of its pay-period overrides.
func (s *Service) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteJob(ctx, id)
}

func (s *Service) CreatePassiveIncome(ctx context.Context, p PassiveIncome) (*PassiveIncome, error) {
	p.ID = uuid.New()
	normalizePassive(&p)

	if err := s.repo.CreatePassiveIncome(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Service) GetPassiveIncome(ctx context.Context, id uuid.UUID) (*PassiveIncome, error) {
	return s.repo.GetPassiveIncome(ctx, id)
}

func (s *Service) ListPassiveIncomes(ctx context.Context) ([]*PassiveIncome, error) {
	return s.repo.ListPassiveIncomes(ctx)
}

func (s *Service) UpdatePassiveIncome(ctx context.Context, p PassiveIncome) (*PassiveIncome, error) {
	normalizePassive(&p)

	if err := s.repo.UpdatePassiveIncome(ctx, &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (s *Service) DeletePassiveIncome(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeletePassiveIncome(ctx, id)
}

func (s *Service) CreateNonRecurring(ctx context.Context, n NonRecurringIncome) (*NonRecurringIncome, error) {
	n.ID = uuid.New()
	n.Date = dateutil.Day(n.Date)

	if err := s.repo.CreateNonRecurring(ctx, &n); err != nil {
		return nil, err
	}

	return &n, nil
}

func (s *Service) GetNonRecurring(ctx context.Context, id uuid.UUID) (*NonRecurringIncome, error) {
	return s.repo.GetNonRecurring(ctx, id)
}

func (s *Service) ListNonRecurring(ctx context.Context, from, to *time.Time) ([]*NonRecurringIncome, error) {
	return s.repo.ListNonRecurring(ctx, from, to)
}

func (s *Service) UpdateNonRecurring(ctx context.Context, n NonRecurringIncome) (*NonRecurringIncome, error) {
	n.Date = dateutil.Day(n.Date)

	if err := s.repo.UpdateNonRecurring(ctx, &n); err != nil {
		return nil, err
	}

	return &n, nil
}

// DeleteNonRecurring removes the entry and cascades its overrides.
func (s *Service) DeleteNonRecurring(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteNonRecurring(ctx, id)
}

// UpsertJobOverride records a per-day override for one job. A record for
// the same (job, day) is replaced.
func (s *Service) UpsertJobOverride(ctx context.Context, o JobOverride) error {
	o.Date = dateutil.Day(o.Date)
	return s.repo.UpsertJobOverride(ctx, o)
}

func (s *Service) DeleteJobOverride(ctx context.Context, jobID uuid.UUID, day time.Time) error {
	return s.repo.DeleteJobOverride(ctx, jobID, dateutil.Day(day))
}

func (s *Service) ListJobOverrides(ctx context.Context, from, to time.Time) ([]JobOverride, error) {
	return s.repo.ListJobOverrides(ctx, dateutil.Day(from), dateutil.Day(to))
}

func (s *Service) UpsertPassiveOverride(ctx context.Context, o PassiveOverride) error {
	o.Date = dateutil.Day(o.Date)
	return s.repo.UpsertPassiveOverride(ctx, o)
}

func (s *Service) DeletePassiveOverride(ctx context.Context, passiveID uuid.UUID, day time.Time) error {
	return s.repo.DeletePassiveOverride(ctx, passiveID, dateutil.Day(day))
}

func (s *Service) ListPassiveOverrides(ctx context.Context, from, to time.Time) ([]PassiveOverride, error) {
	return s.repo.ListPassiveOverrides(ctx, dateutil.Day(from), dateutil.Day(to))
}

func (s *Service) UpsertOneTimeOverride(ctx context.Context, o OneTimeOverride) error {
	o.Date = dateutil.Day(o.Date)
	return s.repo.UpsertOneTimeOverride(ctx, o)
}

func (s *Service) DeleteOneTimeOverride(ctx context.Context, incomeID uuid.UUID, day time.Time) error {
	return s.repo.DeleteOneTimeOverride(ctx, incomeID, dateutil.Day(day))
}

func (s *Service) ListOneTimeOverrides(ctx context.Context, from, to time.Time) ([]OneTimeOverride, error) {
	return s.repo.ListOneTimeOverrides(ctx, dateutil.Day(from), dateutil.Day(to))
}

// Dataset returns the full aggregate for snapshot export.
func (s *Service) Dataset(ctx context.Context) (*Dataset, error) {
	return s.repo.Dataset(ctx)
}

// ReplaceAll swaps in a fully-decoded snapshot dataset.
func (s *Service) ReplaceAll(ctx context.Context, ds *Dataset) error {
	return s.repo.ReplaceAll(ctx, ds)
}

// normalizeJob truncates schedule dates and keeps only the pay payload
// matching the job type.
func normalizeJob(job *Job) {
	job.Schedule.Start = dateutil.Day(job.Schedule.Start)
	if job.Schedule.End != nil {
		end := dateutil.Day(*job.Schedule.End)
		job.Schedule.End = &end
	}

	switch job.Type {
	case JobTypeSalary:
		job.Hourly = nil
		job.Contract = nil
	case JobTypeHourly:
		job.Salary = nil
		job.Contract = nil
	case JobTypeContract:
		job.Salary = nil
		job.Hourly = nil
	}
}

func normalizePassive(p *PassiveIncome) {
	p.Schedule.Start = dateutil.Day(p.Schedule.Start)
	if p.Schedule.End != nil {
		end := dateutil.Day(*p.Schedule.End)
		p.Schedule.End = &end
	}
}
