// Package pipeline classifies, orders, filters, and summarizes goal lists.
// Every function is pure: inputs are never mutated.
package pipeline

import (
	"github.com/theirongolddev/goaltrack/internal/model"
)

// Classify returns the status bucket of a goal, determined solely by its
// completion percentage.
func Classify(g model.Goal) model.Bucket {
	switch g.Completed {
	case 0:
		return model.BucketNotStarted
	case 100:
		return model.BucketCompleted
	default:
		return model.BucketInProgress
	}
}

// Buckets holds the three disjoint status partitions of a goal list.
type Buckets struct {
	NotStarted []model.Goal
	InProgress []model.Goal
	Completed  []model.Goal
}

// Get returns the partition for b.
func (bs Buckets) Get(b model.Bucket) []model.Goal {
	switch b {
	case model.BucketNotStarted:
		return bs.NotStarted
	case model.BucketInProgress:
		return bs.InProgress
	case model.BucketCompleted:
		return bs.Completed
	}
	return nil
}

// Partition splits goals into buckets, preserving relative order.
func Partition(goals []model.Goal) Buckets {
	var bs Buckets
	for _, g := range goals {
		switch Classify(g) {
		case model.BucketNotStarted:
			bs.NotStarted = append(bs.NotStarted, g)
		case model.BucketCompleted:
			bs.Completed = append(bs.Completed, g)
		default:
			bs.InProgress = append(bs.InProgress, g)
		}
	}
	return bs
}

// Tabs holds the goal list shown under each dashboard tab.
type Tabs [model.TabCount][]model.Goal

// Get returns the goals under tab t.
func (ts Tabs) Get(t model.Tab) []model.Goal {
	if t < 0 || t >= model.TabCount {
		return nil
	}
	return ts[t]
}

// Count returns the number of goals under tab t.
func (ts Tabs) Count(t model.Tab) int {
	return len(ts.Get(t))
}

// BuildTabs sorts goals for display and partitions the sorted list, so every
// tab shows its goals in display order.
func BuildTabs(goals []model.Goal) Tabs {
	sorted := Sort(goals)
	bs := Partition(sorted)

	var ts Tabs
	ts[model.TabAll] = sorted
	ts[model.TabNotStarted] = bs.NotStarted
	ts[model.TabInProgress] = bs.InProgress
	ts[model.TabCompleted] = bs.Completed
	return ts
}
