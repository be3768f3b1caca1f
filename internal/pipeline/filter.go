package pipeline

import (
	"strings"

	"github.com/theirongolddev/goaltrack/internal/model"
)

// FilterByCategory returns the goals in category c, preserving order.
// The CategoryAll sentinel returns goals unchanged.
func FilterByCategory(goals []model.Goal, c model.Category) []model.Goal {
	if c == model.CategoryAll {
		return goals
	}
	var result []model.Goal
	for _, g := range goals {
		if g.Category == c {
			result = append(result, g)
		}
	}
	return result
}

// FilterByTitle returns goals whose title contains query (case-insensitive).
func FilterByTitle(goals []model.Goal, query string) []model.Goal {
	query = strings.TrimSpace(query)
	if query == "" {
		return goals
	}
	var result []model.Goal
	for _, g := range goals {
		if containsIgnoreCase(g.Title, query) {
			result = append(result, g)
		}
	}
	return result
}

// FindByID returns the goal with the given id.
func FindByID(goals []model.Goal, id int) (model.Goal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
