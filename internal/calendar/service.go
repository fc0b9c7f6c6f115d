package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/ledgerline/ledgerline/internal/dateutil"
	"github.com/ledgerline/ledgerline/internal/income"
)

// Reader is the slice of the income aggregate the calendar needs. It is
// satisfied by *income.Service.
//
//go:generate mockgen -source=service.go -destination=reader_mock.go -package=calendar
type Reader interface {
	ListJobs(ctx context.Context) ([]*income.Job, error)
	ListPassiveIncomes(ctx context.Context) ([]*income.PassiveIncome, error)
	ListNonRecurring(ctx context.Context, from, to *time.Time) ([]*income.NonRecurringIncome, error)
	ListJobOverrides(ctx context.Context, from, to time.Time) ([]income.JobOverride, error)
	ListPassiveOverrides(ctx context.Context, from, to time.Time) ([]income.PassiveOverride, error)
	ListOneTimeOverrides(ctx context.Context, from, to time.Time) ([]income.OneTimeOverride, error)
}

type Service struct {
	reader      Reader
	startOfWeek time.Weekday
}

func NewService(reader Reader, startOfWeek time.Weekday) *Service {
	return &Service{reader: reader, startOfWeek: startOfWeek}
}

// Month loads the aggregate state overlapping the requested month and
// assembles the week-bucketed event list.
func (s *Service) Month(ctx context.Context, year int, month time.Month, net bool) ([]WeekSpan, error) {
	monthStart, monthEnd := dateutil.MonthWindow(year, month)

	jobs, err := s.reader.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}

	passives, err := s.reader.ListPassiveIncomes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing passive incomes: %w", err)
	}

	oneTimes, err := s.reader.ListNonRecurring(ctx, &monthStart, &monthEnd)
	if err != nil {
		return nil, fmt.Errorf("listing one-time incomes: %w", err)
	}

	jobOvs, err := s.reader.ListJobOverrides(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("listing job overrides: %w", err)
	}

	passiveOvs, err := s.reader.ListPassiveOverrides(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("listing passive overrides: %w", err)
	}

	oneTimeOvs, err := s.reader.ListOneTimeOverrides(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("listing one-time overrides: %w", err)
	}

	in := MonthInput{
		Jobs:             deref(jobs),
		Passives:         deref(passives),
		OneTimes:         deref(oneTimes),
		JobOverrides:     income.IndexJobOverrides(jobOvs),
		PassiveOverrides: income.IndexPassiveOverrides(passiveOvs),
		OneTimeOverrides: income.IndexOneTimeOverrides(oneTimeOvs),
	}

	return MonthEvents(in, year, month, net, s.startOfWeek), nil
}

func deref[T any](in []*T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = *v
	}

	return out
}
