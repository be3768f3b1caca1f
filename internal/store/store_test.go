package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/goaltrack/internal/model"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "goaltrack.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKeyValue(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	if _, err := s.Get(ctx, "user"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get on empty store: err = %v", err)
	}
	if err := s.Put(ctx, "user", `{"user":{"id":7}}`); err != nil {
		t.Fatal(err)
	}
	if err := s.Put(ctx, "user", `{"user":{"id":8}}`); err != nil {
		t.Fatal(err)
	}
	v, err := s.Get(ctx, "user")
	if err != nil {
		t.Fatal(err)
	}
	if v != `{"user":{"id":8}}` {
		t.Errorf("value = %q", v)
	}
	if err := s.Delete(ctx, "user"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(ctx, "user"); err != nil {
		t.Errorf("second delete: %v", err)
	}
	if _, err := s.Get(ctx, "user"); !errors.Is(err, ErrNotFound) {
		t.Errorf("after delete: err = %v", err)
	}
}

func TestGoalLifecycle(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()

	draft := model.Goal{
		UserID:   7,
		Title:    "Run",
		Category: model.CategoryHealthFitness,
		EndDate:  model.NewDate(2024, 6, 1),
		Steps:    model.Steps{{Title: "5k", Done: true}},
	}
	created, err := s.CreateGoal(ctx, draft)
	if err != nil {
		t.Fatal(err)
	}
	if created.ID == 0 {
		t.Fatal("no id assigned")
	}
	if _, err := s.CreateGoal(ctx, model.Goal{UserID: 8, Title: "Other", Category: model.CategoryFinance}); err != nil {
		t.Fatal(err)
	}

	goals, err := s.ListGoals(ctx, 7)
	if err != nil {
		t.Fatal(err)
	}
	if len(goals) != 1 {
		t.Fatalf("user 7 has %d goals, want 1", len(goals))
	}
	got := goals[0]
	if got.Category != model.CategoryHealthFitness || got.EndDate.String() != "2024-06-01" {
		t.Errorf("round trip = %+v", got)
	}
	if len(got.Steps) != 1 || !got.Steps[0].Done {
		t.Errorf("steps = %+v", got.Steps)
	}

	got.Completed = 100
	got.EndDate = model.Date{}
	updated, err := s.UpdateGoal(ctx, got)
	if err != nil {
		t.Fatal(err)
	}
	if updated.Completed != 100 || !updated.EndDate.IsZero() || updated.UserID != 7 {
		t.Errorf("updated = %+v", updated)
	}

	if err := s.DeleteGoal(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if err := s.DeleteGoal(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v", err)
	}
	if _, err := s.UpdateGoal(ctx, got); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of deleted goal: err = %v", err)
	}

	n, err := s.GoalCount(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestListGoalsEmpty(t *testing.T) {
	s := openTest(t)
	goals, err := s.ListGoals(context.Background(), 99)
	if err != nil {
		t.Fatal(err)
	}
	if goals == nil || len(goals) != 0 {
		t.Errorf("want empty non-nil slice, got %#v", goals)
	}
}
