// Package tracker holds the goal page state and the controller that applies
// acknowledged Goal Service results to it.
package tracker

import (
	"slices"

	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/pipeline"
)

// Page is the state owned by one goal-tracking view.
type Page struct {
	UserID   int
	Goals    []model.Goal
	Category model.Category
}

// NewPage returns an empty page for userID with no category filter.
func NewPage(userID int) *Page {
	return &Page{UserID: userID, Category: model.CategoryAll}
}

// Replace swaps the whole goal list, as after a load.
func (p *Page) Replace(goals []model.Goal) {
	p.Goals = slices.Clone(goals)
}

// Append adds a goal acknowledged by the service.
func (p *Page) Append(g model.Goal) {
	p.Goals = append(p.Goals, g)
}

// ReplaceByID overwrites the goal with g.ID. It reports whether a goal was
// found.
func (p *Page) ReplaceByID(g model.Goal) bool {
	i := slices.IndexFunc(p.Goals, func(x model.Goal) bool { return x.ID == g.ID })
	if i < 0 {
		return false
	}
	p.Goals[i] = g
	return true
}

// RemoveByID drops the goal with id. It reports whether a goal was found.
func (p *Page) RemoveByID(id int) bool {
	n := len(p.Goals)
	p.Goals = slices.DeleteFunc(p.Goals, func(x model.Goal) bool { return x.ID == id })
	return len(p.Goals) != n
}

// Filtered returns the goals passing the page's category filter.
func (p *Page) Filtered() []model.Goal {
	return pipeline.FilterByCategory(p.Goals, p.Category)
}

// Tabs returns the four tab lists over every goal. The category filter
// does not apply here; it only narrows what a tab shows.
func (p *Page) Tabs() pipeline.Tabs {
	return pipeline.BuildTabs(p.Goals)
}

// Counts returns the tab counts, taken from the unfiltered buckets.
func (p *Page) Counts() [model.TabCount]int {
	tabs := p.Tabs()
	var counts [model.TabCount]int
	for t := model.TabAll; t < model.TabCount; t++ {
		counts[t] = tabs.Count(t)
	}
	return counts
}

// Visible returns the goals displayed under tab: the sorted bucket
// narrowed by the category filter.
func (p *Page) Visible(tab model.Tab) []model.Goal {
	return pipeline.FilterByCategory(p.Tabs().Get(tab), p.Category)
}
