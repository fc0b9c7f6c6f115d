package calendar_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerline/ledgerline/internal/calendar"
	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
)

func TestService_Month(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := &income.Job{
		ID:   uuid.New(),
		Name: "Day Job",
		Type: income.JobTypeSalary,
		Schedule: recurrence.Series{
			Start:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			IntervalDays: 14,
		},
		Salary: &income.SalaryPay{PerPeriod: 2000},
	}
	bonus := &income.NonRecurringIncome{
		ID:     uuid.New(),
		Name:   "Bonus",
		Amount: 500,
		Date:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	reader := calendar.NewMockReader(ctrl)
	reader.EXPECT().ListJobs(gomock.Any()).Return([]*income.Job{job}, nil)
	reader.EXPECT().ListPassiveIncomes(gomock.Any()).Return(nil, nil)
	reader.EXPECT().ListNonRecurring(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*income.NonRecurringIncome{bonus}, nil)
	reader.EXPECT().ListJobOverrides(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	reader.EXPECT().ListPassiveOverrides(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	reader.EXPECT().ListOneTimeOverrides(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := calendar.NewService(reader, time.Monday)
	spans, err := svc.Month(context.Background(), 2024, time.January, false)
	require.NoError(t, err)

	var events []calendar.Event
	for _, span := range spans {
		events = append(events, span.Events...)
	}

	// Jan 1, 10, 15, 29.
	require.Len(t, events, 4)
	assert.Equal(t, calendar.SourceJob, events[0].Source)
	assert.Equal(t, calendar.SourceOneTime, events[1].Source)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), events[1].Date)
	assert.InDelta(t, 500, events[1].Amount, 1e-9)
}

func TestService_Month_AppliesOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	job := &income.Job{
		ID:   uuid.New(),
		Name: "Day Job",
		Type: income.JobTypeSalary,
		Schedule: recurrence.Series{
			Start:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			IntervalDays: 14,
		},
		Salary: &income.SalaryPay{PerPeriod: 2000},
	}
	amount := 1234.0
	ov := income.JobOverride{
		JobID:  job.ID,
		Date:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount: &amount,
	}

	reader := calendar.NewMockReader(ctrl)
	reader.EXPECT().ListJobs(gomock.Any()).Return([]*income.Job{job}, nil)
	reader.EXPECT().ListPassiveIncomes(gomock.Any()).Return(nil, nil)
	reader.EXPECT().ListNonRecurring(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	reader.EXPECT().ListJobOverrides(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]income.JobOverride{ov}, nil)
	reader.EXPECT().ListPassiveOverrides(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	reader.EXPECT().ListOneTimeOverrides(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	svc := calendar.NewService(reader, time.Monday)
	spans, err := svc.Month(context.Background(), 2024, time.January, false)
	require.NoError(t, err)

	var overridden *calendar.Event
	for _, span := range spans {
		for i := range span.Events {
			if span.Events[i].Date.Equal(ov.Date) {
				overridden = &span.Events[i]
			}
		}
	}

	require.NotNil(t, overridden)
	assert.InDelta(t, 1234, overridden.Amount, 1e-9)
}

func TestService_Month_ReaderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := calendar.NewMockReader(ctrl)
	reader.EXPECT().ListJobs(gomock.Any()).Return(nil, errors.New("db error"))

	svc := calendar.NewService(reader, time.Monday)
	_, err := svc.Month(context.Background(), 2024, time.January, false)
	assert.Error(t, err)
}
