package snapshot

import (
	"context"
	"fmt"
	"io"

	"github.com/ledgerline/ledgerline/internal/income"
	"github.com/ledgerline/ledgerline/internal/savings"
)

// IncomeStore and SavingsStore are the aggregate surfaces the snapshot
// service round-trips through; *income.Service and *savings.Service
// satisfy them.
//
//go:generate mockgen -source=service.go -destination=store_mock.go -package=snapshot
type IncomeStore interface {
	Dataset(ctx context.Context) (*income.Dataset, error)
	ReplaceAll(ctx context.Context, ds *income.Dataset) error
}

type SavingsStore interface {
	ListAll(ctx context.Context) ([]savings.Goal, error)
	ReplaceAll(ctx context.Context, goals []savings.Goal) error
}

type Service struct {
	incomes IncomeStore
	goals   SavingsStore
}

func NewService(incomes IncomeStore, goals SavingsStore) *Service {
	return &Service{incomes: incomes, goals: goals}
}

// Export writes the full aggregate state to w.
func (s *Service) Export(ctx context.Context, w io.Writer) error {
	ds, err := s.incomes.Dataset(ctx)
	if err != nil {
		return fmt.Errorf("exporting income aggregate: %w", err)
	}

	goals, err := s.goals.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("exporting savings aggregate: %w", err)
	}

	return Build(ds, goals).Encode(w)
}

// Import decodes and validates a snapshot from r, then replaces both
// aggregates. A decode failure leaves the current state untouched; the
// stores are only written once the whole payload has parsed.
func (s *Service) Import(ctx context.Context, r io.Reader) error {
	snap, err := Decode(r)
	if err != nil {
		return err
	}

	if err := s.incomes.ReplaceAll(ctx, snap.IncomeDataset()); err != nil {
		return fmt.Errorf("restoring income aggregate: %w", err)
	}

	if err := s.goals.ReplaceAll(ctx, snap.SavingsGoals()); err != nil {
		return fmt.Errorf("restoring savings aggregate: %w", err)
	}

	return nil
}
