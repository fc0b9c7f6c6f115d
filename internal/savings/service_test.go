package savings_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerline/ledgerline/internal/savings"
)

func scheduledGoal(target, saved float64) *savings.Goal {
	g := &savings.Goal{
		ID:     uuid.New(),
		Name:   "New Laptop",
		Target: target,
		Saved:  saved,
		Schedule: &savings.Schedule{
			IntervalDays: 7,
			Amount:       100,
			Start:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	g.Entries = g.BuildPlan()

	return g
}

func TestService_CreateGoal_BuildsPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.CreateGoal(context.Background(), savings.Goal{
		Name:   "New Laptop",
		Target: 1000,
		Schedule: &savings.Schedule{
			IntervalDays: 7,
			Amount:       100,
			Start:        time.Date(2024, 1, 1, 9, 15, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Len(t, got.Entries, 10)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), got.Entries[0].Date)
}

func TestService_CreateGoal_DropsInvalidSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.CreateGoal(context.Background(), savings.Goal{
		Name:     "Vacation",
		Target:   500,
		Schedule: &savings.Schedule{IntervalDays: 0, Amount: 100},
	})
	require.NoError(t, err)

	assert.Nil(t, got.Schedule)
	assert.Empty(t, got.Entries)
}

func TestService_AddMoney(t *testing.T) {
	type testCase struct {
		name        string
		goal        *savings.Goal
		amount      float64
		wantSaved   float64
		wantEntries int
		wantErr     bool
		noUpdate    bool
	}

	tests := []testCase{
		{
			name:        "ConsumesEarliestEntries",
			goal:        scheduledGoal(1000, 0),
			amount:      250,
			wantSaved:   250,
			wantEntries: 8,
		},
		{
			name:        "OverpaymentClampsToTarget",
			goal:        scheduledGoal(1000, 900),
			amount:      500,
			wantSaved:   1000,
			wantEntries: 0,
		},
		{
			name:     "RejectsNonPositiveAmount",
			goal:     scheduledGoal(1000, 0),
			amount:   0,
			wantErr:  true,
			noUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := savings.NewMockRepository(ctrl)
			if !tt.noUpdate {
				repo.EXPECT().GetGoal(gomock.Any(), tt.goal.ID).Return(tt.goal, nil)
				repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := savings.NewService(repo)
			got, err := svc.AddMoney(context.Background(), tt.goal.ID, tt.amount)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.InDelta(t, tt.wantSaved, got.Saved, 1e-9)
			assert.Len(t, got.Entries, tt.wantEntries)
		})
	}
}

func TestService_AddMoney_FirstEntryShrinksOnPartialConsume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := scheduledGoal(1000, 0)
	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)
	repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.AddMoney(context.Background(), g.ID, 250)
	require.NoError(t, err)

	// 250 wipes two full 100 entries and halves the third.
	require.Len(t, got.Entries, 8)
	assert.InDelta(t, 50, got.Entries[0].Amount, 1e-9)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), got.Entries[0].Date)
}

func TestService_RemoveMoney(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := scheduledGoal(1000, 300)
	g.Entries = g.Entries[3:] // three installments already banked
	lastDate := g.Entries[len(g.Entries)-1].Date

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)
	repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.RemoveMoney(context.Background(), g.ID, 150)
	require.NoError(t, err)

	assert.InDelta(t, 150, got.Saved, 1e-9)
	// 150 re-enters the plan after the old tail: one full installment and
	// one half.
	require.Len(t, got.Entries, 9)
	assert.Equal(t, lastDate.AddDate(0, 0, 7), got.Entries[7].Date)
	assert.InDelta(t, 100, got.Entries[7].Amount, 1e-9)
	assert.InDelta(t, 50, got.Entries[8].Amount, 1e-9)
}

func TestService_RemoveMoney_ClampsToSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := scheduledGoal(1000, 100)
	g.Entries = g.Entries[1:]

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)
	repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.RemoveMoney(context.Background(), g.ID, 5000)
	require.NoError(t, err)

	assert.Zero(t, got.Saved)
	// Only the 100 actually held comes back into the plan.
	require.Len(t, got.Entries, 10)
}

func TestService_RemoveMoney_NothingSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := scheduledGoal(1000, 0)

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)
	// No UpdateGoal: a fully-clamped withdrawal is a no-op.

	svc := savings.NewService(repo)
	got, err := svc.RemoveMoney(context.Background(), g.ID, 50)
	require.NoError(t, err)

	assert.Zero(t, got.Saved)
	assert.Len(t, got.Entries, 10)
}

func TestService_EnableSchedule_RebuildsPlan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := &savings.Goal{ID: uuid.New(), Name: "Vacation", Target: 600}

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)
	repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.EnableSchedule(context.Background(), g.ID, savings.Schedule{
		IntervalDays: 14,
		Amount:       150,
		Start:        time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.NotNil(t, got.Schedule)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), got.Schedule.Start)
	require.Len(t, got.Entries, 4)
	assert.InDelta(t, 150, got.Entries[len(got.Entries)-1].Amount, 1e-9)
}

func TestService_EnableSchedule_RejectsInvalidContract(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := savings.NewMockRepository(ctrl)
	svc := savings.NewService(repo)

	_, err := svc.EnableSchedule(context.Background(), uuid.New(), savings.Schedule{IntervalDays: 0, Amount: 100})
	assert.Error(t, err)
}

func TestService_DisableSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := scheduledGoal(1000, 200)

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)
	repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.DisableSchedule(context.Background(), g.ID)
	require.NoError(t, err)

	assert.Nil(t, got.Schedule)
	assert.Empty(t, got.Entries)
}

func TestService_Plan_FallsBackToPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Schedule set but no stored entries, as goals persisted before plans
	// were stored look.
	g := scheduledGoal(1000, 0)
	g.Entries = nil

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)

	svc := savings.NewService(repo)
	plan, err := svc.Plan(context.Background(), g.ID)
	require.NoError(t, err)

	assert.Len(t, plan, 10)
}

func TestService_Plan_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := savings.NewMockRepository(ctrl)
	id := uuid.New()
	repo.EXPECT().GetGoal(gomock.Any(), id).Return(nil, savings.ErrNotFound)

	svc := savings.NewService(repo)
	_, err := svc.Plan(context.Background(), id)
	assert.ErrorIs(t, err, savings.ErrNotFound)
}

func TestService_Rename(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	g := scheduledGoal(1000, 0)

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().GetGoal(gomock.Any(), g.ID).Return(g, nil)
	repo.EXPECT().UpdateGoal(gomock.Any(), gomock.Any()).Return(nil)

	svc := savings.NewService(repo)
	got, err := svc.Rename(context.Background(), g.ID, "Gaming Laptop")
	require.NoError(t, err)

	assert.Equal(t, "Gaming Laptop", got.Name)
}

func TestService_ListAll_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := savings.NewMockRepository(ctrl)
	repo.EXPECT().ListGoals(gomock.Any()).Return(nil, errors.New("db error"))

	svc := savings.NewService(repo)
	_, err := svc.ListAll(context.Background())
	assert.Error(t, err)
}
