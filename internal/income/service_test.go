package income_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
)

func TestService_CreateJob(t *testing.T) {
	type testCase struct {
		name      string
		job       income.Job
		setupMock func(m *income.MockRepository)
		check     func(t *testing.T, got *income.Job)
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "AssignsIDAndTruncatesDates",
			job: income.Job{
				Name: "Day Job",
				Type: income.JobTypeSalary,
				Schedule: recurrence.Series{
					Start:        time.Date(2024, 1, 5, 13, 45, 0, 0, time.UTC),
					IntervalDays: 14,
				},
				Salary: &income.SalaryPay{PerPeriod: 2000},
			},
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, got *income.Job) {
				assert.NotEqual(t, uuid.Nil, got.ID)
				assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), got.Schedule.Start)
			},
		},
		{
			name: "DropsMismatchedPayloads",
			job: income.Job{
				Name:     "Switched",
				Type:     income.JobTypeContract,
				Schedule: recurrence.Series{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), IntervalDays: 30},
				Salary:   &income.SalaryPay{PerPeriod: 2000},
				Hourly:   &income.HourlyPay{Rate: 20, PlannedHours: 40},
				Contract: &income.ContractPay{RatePerUnit: 100, UnitsPerPeriod: 3},
			},
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(nil)
			},
			check: func(t *testing.T, got *income.Job) {
				assert.Nil(t, got.Salary)
				assert.Nil(t, got.Hourly)
				require.NotNil(t, got.Contract)
			},
		},
		{
			name: "RepoError",
			job:  income.Job{Name: "Broken", Type: income.JobTypeSalary},
			setupMock: func(m *income.MockRepository) {
				m.EXPECT().CreateJob(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := income.NewMockRepository(ctrl)
			tt.setupMock(repo)

			svc := income.NewService(repo)
			got, err := svc.CreateJob(context.Background(), tt.job)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestService_UpdateJob_ReplacesPayloadOnTypeChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	svc := income.NewService(repo)

	// Previously salaried job edited into an hourly one; the salary
	// payload must not survive.
	job := income.Job{
		ID:       uuid.New(),
		Name:     "Day Job",
		Type:     income.JobTypeHourly,
		Schedule: recurrence.Series{Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), IntervalDays: 14},
		Salary:   &income.SalaryPay{PerPeriod: 2000},
		Hourly:   &income.HourlyPay{Rate: 25, PlannedHours: 40},
	}

	repo.EXPECT().
		UpdateJob(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, j *income.Job) error {
			assert.Nil(t, j.Salary)
			assert.NotNil(t, j.Hourly)
			return nil
		})

	got, err := svc.UpdateJob(context.Background(), job)
	require.NoError(t, err)
	assert.Nil(t, got.Salary)
}

func TestService_UpsertJobOverride_TruncatesDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	svc := income.NewService(repo)

	amount := 500.0
	o := income.JobOverride{
		JobID:  uuid.New(),
		Date:   time.Date(2024, 3, 8, 16, 20, 0, 0, time.UTC),
		Amount: &amount,
	}

	repo.EXPECT().
		UpsertJobOverride(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got income.JobOverride) error {
			assert.Equal(t, time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC), got.Date)
			return nil
		})

	require.NoError(t, svc.UpsertJobOverride(context.Background(), o))
}

func TestService_DeleteJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	svc := income.NewService(repo)

	id := uuid.New()
	repo.EXPECT().DeleteJob(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.DeleteJob(context.Background(), id))
}

func TestService_GetJob_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	svc := income.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetJob(gomock.Any(), id).Return(nil, income.ErrNotFound)

	_, err := svc.GetJob(context.Background(), id)
	assert.ErrorIs(t, err, income.ErrNotFound)
}

func TestService_CreateNonRecurring_TruncatesDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := income.NewMockRepository(ctrl)
	svc := income.NewService(repo)

	repo.EXPECT().
		CreateNonRecurring(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *income.NonRecurringIncome) error {
			assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), n.Date)
			return nil
		})

	got, err := svc.CreateNonRecurring(context.Background(), income.NonRecurringIncome{
		Name:   "Bonus",
		Amount: 750,
		Date:   time.Date(2024, 7, 1, 11, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
}
