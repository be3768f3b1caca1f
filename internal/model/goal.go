// Package model defines the domain types for goaltrack.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGoal reports a draft that must not be sent to the service.
var ErrInvalidGoal = errors.New("invalid goal")

// Goal is a single tracked goal as the Goal Service returns it.
// A Goal with ID 0 is a draft.
type Goal struct {
	ID        int      `json:"id,omitempty" yaml:"id"`
	UserID    int      `json:"userId,omitempty" yaml:"user_id,omitempty"`
	Title     string   `json:"title" yaml:"title"`
	Category  Category `json:"category" yaml:"category"`
	Completed int      `json:"completed" yaml:"completed"`
	EndDate   Date     `json:"endDate" yaml:"end_date"`
	Steps     Steps    `json:"steps" yaml:"steps"`
}

// IsDraft reports whether the goal has no server-assigned id yet.
func (g Goal) IsDraft() bool {
	return g.ID == 0
}

// IsComplete reports whether the goal is at 100%.
func (g Goal) IsComplete() bool {
	return g.Completed == 100
}

// Validate checks the fields a draft or edit must carry.
func (g Goal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidGoal)
	}
	if g.Completed < 0 || g.Completed > 100 {
		return fmt.Errorf("%w: completed must be within 0-100, got %d", ErrInvalidGoal, g.Completed)
	}
	if !g.Category.Concrete() {
		return fmt.Errorf("%w: a concrete category is required", ErrInvalidGoal)
	}
	return nil
}

// Bucket is one of the three status partitions of goals.
type Bucket int

const (
	BucketNotStarted Bucket = iota
	BucketInProgress
	BucketCompleted
)

// String returns the display name of the bucket.
func (b Bucket) String() string {
	switch b {
	case BucketNotStarted:
		return "Not Started"
	case BucketInProgress:
		return "In Progress"
	case BucketCompleted:
		return "Completed"
	}
	return fmt.Sprintf("Bucket(%d)", int(b))
}

// Tab is one of the dashboard tabs: every goal, or one bucket.
type Tab int

const (
	TabAll Tab = iota
	TabNotStarted
	TabInProgress
	TabCompleted
	TabCount // sentinel
)

var tabNames = [TabCount]string{"All", "Not Started", "In Progress", "Completed"}

var tabSlugs = [TabCount]string{"all", "not-started", "in-progress", "completed"}

// String returns the display name of the tab.
func (t Tab) String() string {
	if t < 0 || t >= TabCount {
		return fmt.Sprintf("Tab(%d)", int(t))
	}
	return tabNames[t]
}

// TabForBucket returns the tab listing a single bucket.
func TabForBucket(b Bucket) Tab {
	return Tab(int(b) + 1)
}

// ParseTab resolves a tab display name or slug, case-insensitively.
func ParseTab(s string) (Tab, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TabAll, nil
	}
	for t := TabAll; t < TabCount; t++ {
		if strings.EqualFold(s, tabNames[t]) || strings.EqualFold(s, tabSlugs[t]) {
			return t, nil
		}
	}
	return TabAll, fmt.Errorf("unknown tab %q", s)
}
