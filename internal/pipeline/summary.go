package pipeline

import (
	"time"

	"github.com/theirongolddev/goaltrack/internal/model"
)

// Summarize computes bucket counts, completion averages, and per-category
// stats. now decides which goals are overdue.
func Summarize(goals []model.Goal, now time.Time) model.Summary {
	s := model.Summary{Total: len(goals)}
	if len(goals) == 0 {
		return s
	}

	today := model.NewDate(now.Year(), now.Month(), now.Day())

	type acc struct {
		goals, completed, pctSum int
	}
	perCat := make(map[model.Category]*acc)

	pctSum := 0
	for _, g := range goals {
		switch Classify(g) {
		case model.BucketNotStarted:
			s.NotStarted++
		case model.BucketInProgress:
			s.InProgress++
		case model.BucketCompleted:
			s.Completed++
		}
		pctSum += g.Completed

		if !g.IsComplete() && !g.EndDate.IsZero() && g.EndDate.Before(today.Time) {
			s.Overdue++
		}

		done, total := g.Steps.Progress()
		s.StepsDone += done
		s.StepsTotal += total

		a, ok := perCat[g.Category]
		if !ok {
			a = &acc{}
			perCat[g.Category] = a
		}
		a.goals++
		a.pctSum += g.Completed
		if g.IsComplete() {
			a.completed++
		}
	}
	s.AverageCompletion = float64(pctSum) / float64(len(goals))

	for _, c := range model.Categories() {
		a, ok := perCat[c]
		if !ok {
			continue
		}
		s.ByCategory = append(s.ByCategory, model.CategoryStats{
			Category:          c,
			Goals:             a.goals,
			Completed:         a.completed,
			AverageCompletion: float64(a.pctSum) / float64(a.goals),
		})
	}

	return s
}
