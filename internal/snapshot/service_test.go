package snapshot

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/recurrence"
	"github.com/ledgerline/ledgerline/internal/savings"
)

func TestService_ExportImport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ds := &income.Dataset{
		Jobs: []income.Job{{
			ID:   uuid.New(),
			Name: "Day Job",
			Type: income.JobTypeSalary,
			Schedule: recurrence.Series{
				Start:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
				IntervalDays: 14,
			},
			Salary: &income.SalaryPay{PerPeriod: 2000},
		}},
	}
	goals := []savings.Goal{{
		ID:     uuid.New(),
		Name:   "New Laptop",
		Target: 1000,
		Saved:  250,
	}}

	incomes := NewMockIncomeStore(ctrl)
	stores := NewMockSavingsStore(ctrl)
	incomes.EXPECT().Dataset(gomock.Any()).Return(ds, nil)
	stores.EXPECT().ListAll(gomock.Any()).Return(goals, nil)

	svc := NewService(incomes, stores)

	var buf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), &buf))

	incomes.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *income.Dataset) error {
			assert.Equal(t, ds.Jobs, got.Jobs)
			return nil
		})
	stores.EXPECT().
		ReplaceAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got []savings.Goal) error {
			assert.Equal(t, goals, got)
			return nil
		})

	require.NoError(t, svc.Import(context.Background(), &buf))
}

func TestService_Import_MalformedLeavesStoresUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No store expectations: a decode failure must never reach them.
	incomes := NewMockIncomeStore(ctrl)
	stores := NewMockSavingsStore(ctrl)

	svc := NewService(incomes, stores)
	err := svc.Import(context.Background(), strings.NewReader(`{"version": 99}`))
	assert.Error(t, err)
}
