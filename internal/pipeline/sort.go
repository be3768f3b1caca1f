package pipeline

import (
	"slices"

	"github.com/theirongolddev/goaltrack/internal/model"
)

// Compare orders two goals for display.
//
// A goal at 100% always orders after any unfinished goal, whatever its end
// date; two finished goals are equal. Unfinished goals order by end date,
// earliest first. Goals without an end date follow dated ones.
func Compare(a, b model.Goal) int {
	aDone, bDone := a.IsComplete(), b.IsComplete()
	switch {
	case aDone && bDone:
		return 0
	case aDone:
		return 1
	case bDone:
		return -1
	}

	aNone, bNone := a.EndDate.IsZero(), b.EndDate.IsZero()
	switch {
	case aNone && bNone:
		return 0
	case aNone:
		return 1
	case bNone:
		return -1
	}
	return a.EndDate.Compare(b.EndDate)
}

// Sort returns a stably sorted copy of goals using Compare.
func Sort(goals []model.Goal) []model.Goal {
	out := slices.Clone(goals)
	slices.SortStableFunc(out, Compare)
	return out
}
