package savings

import (
	"time"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/dateutil"
)

// amountEpsilon guards the "fully consumed" comparisons against float
// residue; amounts within it of zero are treated as zero.
const amountEpsilon = 1e-9

// BuildPlan constructs the full installment plan from scratch: min(
// perPayment, remaining) on start, then every intervalDays, until the
// remaining balance is covered. A non-positive remaining balance,
// perPayment or interval yields an empty plan.
func BuildPlan(target, saved, perPayment float64, intervalDays int, start time.Time) []PlannedEntry {
	remaining := target - saved
	if remaining <= 0 || perPayment <= 0 || intervalDays < 1 {
		return nil
	}

	cursor := dateutil.Day(start)

	var entries []PlannedEntry

	for remaining > amountEpsilon {
		amount := perPayment
		if remaining < amount {
			amount = remaining
		}

		entries = append(entries, PlannedEntry{ID: uuid.New(), Date: cursor, Amount: amount})
		remaining -= amount
		cursor = cursor.AddDate(0, 0, intervalDays)
	}

	return entries
}

// BuildPlan rebuilds the goal's plan from its own schedule. Goals without
// an active schedule have no plan.
func (g Goal) BuildPlan() []PlannedEntry {
	if g.Schedule == nil {
		return nil
	}

	return BuildPlan(g.Target, g.Saved, g.Schedule.Amount, g.Schedule.IntervalDays, g.Schedule.Start)
}

// ApplyDelta mutates a copy of the plan for money moved in or out of the
// goal and returns it.
//
// A positive delta (money saved) consumes entries from the front: each
// earliest entry is removed while its amount fits in the remaining delta,
// and the first entry that does not fit is reduced in place. A delta
// exceeding the whole plan leaves it empty; overpayment is absorbed, not
// an error.
//
// A negative delta (money taken back out) re-extends the plan: new
// entries of min(perPayment, remaining need) are appended after the
// current tail (or at start when the plan is empty), spaced intervalDays
// apart. Callers pass a non-zero intervalDays/perPayment contract; with
// an invalid one the plan is returned unchanged.
func ApplyDelta(entries []PlannedEntry, delta float64, intervalDays int, perPayment float64, start time.Time) []PlannedEntry {
	out := make([]PlannedEntry, len(entries))
	copy(out, entries)

	if delta > 0 {
		for delta > amountEpsilon && len(out) > 0 {
			if out[0].Amount <= delta+amountEpsilon {
				delta -= out[0].Amount
				out = out[1:]
				continue
			}

			out[0].Amount -= delta
			delta = 0
		}

		return out
	}

	need := -delta
	if need <= amountEpsilon || perPayment <= 0 || intervalDays < 1 {
		return out
	}

	cursor := dateutil.Day(start)
	if len(out) > 0 {
		cursor = out[len(out)-1].Date.AddDate(0, 0, intervalDays)
	}

	for need > amountEpsilon {
		amount := perPayment
		if need < amount {
			amount = need
		}

		out = append(out, PlannedEntry{ID: uuid.New(), Date: cursor, Amount: amount})
		need -= amount
		cursor = cursor.AddDate(0, 0, intervalDays)
	}

	return out
}

// maxPreviewEntries caps the display-only plan for goals with no stored
// entries (legacy data). The preview is never authoritative.
const maxPreviewEntries = 200

// PreviewPlan regenerates the plan a goal's schedule would produce,
// capped at maxPreviewEntries. Used only when no persisted plan exists.
func (g Goal) PreviewPlan() []PlannedEntry {
	plan := g.BuildPlan()
	if len(plan) > maxPreviewEntries {
		plan = plan[:maxPreviewEntries]
	}

	return plan
}
