package savings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/dateutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=savings
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	ListGoals(ctx context.Context) ([]*Goal, error)
	// UpdateGoal replaces the goal row and its planned entries atomically.
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error

	ReplaceAll(ctx context.Context, goals []Goal) error
}

// Fallback contract for re-extending the plan of a goal whose schedule
// was never configured (legacy preview-built plans): one lump entry a
// month out.
const fallbackIntervalDays = 30

// Service owns the savings aggregate. Saved amounts and planned entries
// are always mutated together in a single repository call.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) CreateGoal(ctx context.Context, g Goal) (*Goal, error) {
	g.ID = uuid.New()
	normalizeGoal(&g)
	g.Entries = g.BuildPlan()

	if err := s.repo.CreateGoal(ctx, &g); err != nil {
		return nil, err
	}

	return &g, nil
}

func (s *Service) GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return s.repo.GetGoal(ctx, id)
}

func (s *Service) ListGoals(ctx context.Context) ([]*Goal, error) {
	return s.repo.ListGoals(ctx)
}

func (s *Service) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, id)
}

// Rename updates the goal's name without touching its money state.
func (s *Service) Rename(ctx context.Context, id uuid.UUID, name string) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Name = name
	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// EnableSchedule sets (or replaces) the goal's contribution schedule and
// rebuilds the full plan from it.
func (s *Service) EnableSchedule(ctx context.Context, id uuid.UUID, sched Schedule) (*Goal, error) {
	if sched.IntervalDays < 1 || sched.Amount <= 0 {
		return nil, fmt.Errorf("schedule needs a positive interval and amount")
	}

	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	sched.Start = dateutil.Day(sched.Start)
	g.Schedule = &sched
	g.Entries = g.BuildPlan()

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// DisableSchedule drops the schedule and its plan.
func (s *Service) DisableSchedule(ctx context.Context, id uuid.UUID) (*Goal, error) {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	g.Schedule = nil
	g.Entries = nil

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// AddMoney records a deposit: the plan's earliest entries are consumed and
// the saved amount grows, clamped to the target. Overpayment is absorbed
// silently.
func (s *Service) AddMoney(ctx context.Context, id uuid.UUID, amount float64) (*Goal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("deposit amount must be positive")
	}

	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	interval, perPayment, start := s.planContract(g, amount)
	g.Entries = ApplyDelta(g.Entries, amount, interval, perPayment, start)
	g.Saved = clamp(g.Saved+amount, 0, g.Target)

	if err := s.repo.UpdateGoal(ctx, g); err != nil {
		return nil, err
	}

	return g, nil
}

// RemoveMoney records a withdrawal: the saved amount shrinks, clamped to
// zero, and the plan is re-extended past its tail to cover the money taken
// back out.
func (s *Service) RemoveMoney(ctx context.Context, id uuid.UUID, amount float64) (*Goal, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("withdrawal amount must be positive")
	}

	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	// Only the part actually held can leave the goal; the plan extension
	// mirrors the same clamped amount so the sum invariant holds.
	if amount > g.Saved {
		amount = g.Saved
	}

	if amount > 0 {
		interval, perPayment, start := s.planContract(g, amount)
		g.Entries = ApplyDelta(g.Entries, -amount, interval, perPayment, start)
		g.Saved = clamp(g.Saved-amount, 0, g.Target)

		if err := s.repo.UpdateGoal(ctx, g); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// Plan returns the authoritative entries when they exist, falling back to
// a capped display-only preview for goals persisted before plans were
// stored.
func (s *Service) Plan(ctx context.Context, id uuid.UUID) ([]PlannedEntry, error) {
	g, err := s.repo.GetGoal(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(g.Entries) > 0 {
		return g.Entries, nil
	}

	return g.PreviewPlan(), nil
}

// ListAll returns every goal by value for snapshot export.
func (s *Service) ListAll(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Goal, len(goals))
	for i, g := range goals {
		out[i] = *g
	}

	return out, nil
}

// ReplaceAll swaps in a fully-decoded snapshot.
func (s *Service) ReplaceAll(ctx context.Context, goals []Goal) error {
	return s.repo.ReplaceAll(ctx, goals)
}

// planContract resolves the interval/amount/anchor passed to ApplyDelta.
// Goals without an active schedule fall back to a single lump installment
// thirty days out.
func (s *Service) planContract(g *Goal, need float64) (int, float64, time.Time) {
	if g.Schedule != nil && g.Schedule.IntervalDays >= 1 && g.Schedule.Amount > 0 {
		return g.Schedule.IntervalDays, g.Schedule.Amount, g.Schedule.Start
	}

	return fallbackIntervalDays, need, dateutil.Day(s.now())
}

func normalizeGoal(g *Goal) {
	if g.Target < 0 {
		g.Target = 0
	}

	g.Saved = clamp(g.Saved, 0, g.Target)

	if g.Schedule != nil {
		if g.Schedule.IntervalDays < 1 || g.Schedule.Amount <= 0 {
			g.Schedule = nil
		} else {
			g.Schedule.Start = dateutil.Day(g.Schedule.Start)
		}
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
