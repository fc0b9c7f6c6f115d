package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgerline/ledgerline/internal/savings"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

const selectGoalColumns = `
	id, name, target, saved, schedule_interval_days, schedule_amount, schedule_start
`

func scanGoal(s scanner) (*savings.Goal, error) {
	var (
		g        savings.Goal
		interval sql.NullInt64
		amount   sql.NullFloat64
		start    sql.NullTime
	)

	if err := s.Scan(&g.ID, &g.Name, &g.Target, &g.Saved, &interval, &amount, &start); err != nil {
		return nil, err
	}

	if interval.Valid {
		g.Schedule = &savings.Schedule{
			IntervalDays: int(interval.Int64),
			Amount:       amount.Float64,
			Start:        start.Time,
		}
	}

	return &g, nil
}

func scheduleArgs(g *savings.Goal) (any, any, any) {
	if g.Schedule == nil {
		return nil, nil, nil
	}

	return g.Schedule.IntervalDays, g.Schedule.Amount, g.Schedule.Start
}

func (s *Store) CreateGoal(ctx context.Context, g *savings.Goal) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	interval, amount, start := scheduleArgs(g)

	query := `
		INSERT INTO goals (id, name, target, saved, schedule_interval_days, schedule_amount, schedule_start)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := dbTx.ExecContext(ctx, query, g.ID, g.Name, g.Target, g.Saved, interval, amount, start); err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	if err := insertEntries(ctx, dbTx, g.ID, g.Entries); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, id uuid.UUID) (*savings.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals WHERE id = $1`

	g, err := scanGoal(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, savings.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	if g.Entries, err = s.listEntries(ctx, id); err != nil {
		return nil, err
	}

	return g, nil
}

func (s *Store) ListGoals(ctx context.Context) ([]*savings.Goal, error) {
	query := `SELECT ` + selectGoalColumns + ` FROM goals ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*savings.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goal rows: %w", err)
	}

	for _, g := range goals {
		if g.Entries, err = s.listEntries(ctx, g.ID); err != nil {
			return nil, err
		}
	}

	return goals, nil
}

// UpdateGoal replaces the goal row and its planned entries atomically, so
// saved amounts and plans never drift apart.
func (s *Store) UpdateGoal(ctx context.Context, g *savings.Goal) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	interval, amount, start := scheduleArgs(g)

	query := `
		UPDATE goals
		SET name = $1, target = $2, saved = $3, schedule_interval_days = $4, schedule_amount = $5, schedule_start = $6
		WHERE id = $7
	`

	res, err := dbTx.ExecContext(ctx, query, g.Name, g.Target, g.Saved, interval, amount, start, g.ID)
	if err != nil {
		return fmt.Errorf("updating goal: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return savings.ErrNotFound
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM planned_entries WHERE goal_id = $1`, g.ID); err != nil {
		return fmt.Errorf("clearing planned entries: %w", err)
	}

	if err := insertEntries(ctx, dbTx, g.ID, g.Entries); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM planned_entries WHERE goal_id = $1`, id); err != nil {
		return fmt.Errorf("deleting planned entries: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id); err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// ReplaceAll wipes every goal and reloads them from a decoded snapshot in
// one transaction.
func (s *Store) ReplaceAll(ctx context.Context, goals []savings.Goal) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM planned_entries`); err != nil {
		return fmt.Errorf("clearing planned entries: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM goals`); err != nil {
		return fmt.Errorf("clearing goals: %w", err)
	}

	query := `
		INSERT INTO goals (id, name, target, saved, schedule_interval_days, schedule_amount, schedule_start)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for i := range goals {
		g := &goals[i]

		interval, amount, start := scheduleArgs(g)
		if _, err := dbTx.ExecContext(ctx, query, g.ID, g.Name, g.Target, g.Saved, interval, amount, start); err != nil {
			return fmt.Errorf("restoring goal: %w", err)
		}

		if err := insertEntries(ctx, dbTx, g.ID, g.Entries); err != nil {
			return err
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) listEntries(ctx context.Context, goalID uuid.UUID) ([]savings.PlannedEntry, error) {
	query := `
		SELECT id, date, amount
		FROM planned_entries
		WHERE goal_id = $1
		ORDER BY date ASC
	`

	rows, err := s.db.QueryContext(ctx, query, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing planned entries: %w", err)
	}
	defer rows.Close()

	var entries []savings.PlannedEntry

	for rows.Next() {
		var e savings.PlannedEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Amount); err != nil {
			return nil, fmt.Errorf("scanning planned entry: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func insertEntries(ctx context.Context, dbTx *sql.Tx, goalID uuid.UUID, entries []savings.PlannedEntry) error {
	query := `
		INSERT INTO planned_entries (id, goal_id, date, amount)
		VALUES ($1, $2, $3, $4)
	`

	for _, e := range entries {
		if _, err := dbTx.ExecContext(ctx, query, e.ID, goalID, e.Date, e.Amount); err != nil {
			return fmt.Errorf("inserting planned entry: %w", err)
		}
	}

	return nil
}
