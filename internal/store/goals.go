package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/model"
)

const goalColumns = `id, user_id, title, category, completed, end_date, steps`

// ListGoals returns the goals of userID in creation order.
func (s *Store) ListGoals(ctx context.Context, userID int) ([]model.Goal, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	goals := []model.Goal{}
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetGoal returns the goal with id.
func (s *Store) GetGoal(ctx context.Context, id int) (model.Goal, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+goalColumns+` FROM goals WHERE id = ?`, id)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, ErrNotFound
	}
	return g, err
}

// CreateGoal inserts g and returns it with its assigned id.
func (s *Store) CreateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	ts := now()
	res, err := s.db.ExecContext(ctx, `INSERT INTO goals
		(user_id, title, category, completed, end_date, steps, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.UserID, g.Title, g.Category.String(), g.Completed, dateValue(g.EndDate), g.Steps.Text(), ts, ts,
	)
	if err != nil {
		return model.Goal{}, fmt.Errorf("creating goal: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Goal{}, fmt.Errorf("creating goal: %w", err)
	}
	g.ID = int(id)
	return g, nil
}

// UpdateGoal replaces every editable field of the goal with g.ID and
// returns the stored record.
func (s *Store) UpdateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE goals
		SET title = ?, category = ?, completed = ?, end_date = ?, steps = ?, updated_at = ?
		WHERE id = ?`,
		g.Title, g.Category.String(), g.Completed, dateValue(g.EndDate), g.Steps.Text(), now(), g.ID,
	)
	if err != nil {
		return model.Goal{}, fmt.Errorf("updating goal %d: %w", g.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Goal{}, ErrNotFound
	}
	return s.GetGoal(ctx, g.ID)
}

// DeleteGoal removes the goal with id.
func (s *Store) DeleteGoal(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// GoalCount returns the number of stored goals across all users.
func (s *Store) GoalCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM goals").Scan(&count)
	return count, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanGoal(sc scanner) (model.Goal, error) {
	var (
		g        model.Goal
		category string
		endDate  sql.NullString
		steps    string
	)
	if err := sc.Scan(&g.ID, &g.UserID, &g.Title, &category, &g.Completed, &endDate, &steps); err != nil {
		return model.Goal{}, err
	}

	// Unknown names are kept as Miscellaneous rather than failing the read.
	g.Category, _ = model.ParseCategory(category)
	if !g.Category.Concrete() {
		g.Category = model.CategoryMiscellaneous
	}
	if endDate.Valid && endDate.String != "" {
		d, err := model.ParseDate(endDate.String)
		if err != nil {
			return model.Goal{}, fmt.Errorf("goal %d end date: %w", g.ID, err)
		}
		g.EndDate = d
	}
	parsed, err := model.ParseSteps([]byte(steps))
	if err != nil {
		return model.Goal{}, fmt.Errorf("goal %d: %w", g.ID, err)
	}
	g.Steps = parsed
	return g, nil
}

func dateValue(d model.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.String()
}
