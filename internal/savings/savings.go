package savings

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("savings goal not found")

// CompletionEpsilon absorbs floating rounding when deciding whether a
// goal has reached its target.
const CompletionEpsilon = 0.005

// PlannedEntry is one remaining scheduled installment toward a goal's
// target. Entries are kept ordered earliest-first and their amounts sum to
// the goal's remaining balance.
type PlannedEntry struct {
	ID     uuid.UUID
	Date   time.Time
	Amount float64
}

// Schedule holds the contribution contract of a goal: one payment of
// Amount every IntervalDays starting at Start.
type Schedule struct {
	IntervalDays int
	Amount       float64
	Start        time.Time
}

// Goal is a savings target with the money saved so far and, when a
// schedule is enabled, the remaining installment plan.
type Goal struct {
	ID       uuid.UUID
	Name     string
	Target   float64
	Saved    float64
	Schedule *Schedule
	Entries  []PlannedEntry
}

// Remaining returns the balance still needed to reach the target, never
// negative.
func (g Goal) Remaining() float64 {
	if r := g.Target - g.Saved; r > 0 {
		return r
	}

	return 0
}

// Complete reports whether the goal has reached its target, within
// CompletionEpsilon.
func (g Goal) Complete() bool {
	return g.Saved >= g.Target-CompletionEpsilon
}

// PlannedTotal sums the remaining installment amounts.
func (g Goal) PlannedTotal() float64 {
	var sum float64
	for _, e := range g.Entries {
		sum += e.Amount
	}

	return sum
}
