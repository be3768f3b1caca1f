package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/model"

	"github.com/spf13/cobra"
)

// goalFlags holds the add/edit flags. Only flags the user set are applied.
type goalFlags struct {
	title     string
	category  string
	completed int
	end       string
	steps     []string
}

func (f *goalFlags) register(c *cobra.Command) {
	c.Flags().StringVar(&f.title, "title", "", "Goal title")
	c.Flags().StringVarP(&f.category, "category", "c", "", "Category name or slug")
	c.Flags().IntVar(&f.completed, "completed", 0, "Completion percentage (0-100)")
	c.Flags().StringVar(&f.end, "end", "", "End date (YYYY-MM-DD)")
	c.Flags().StringArrayVar(&f.steps, "step", nil, `Step, "[x] title" when done (repeatable, kept in order)`)
}

// any reports whether any goal field flag was set.
func (f *goalFlags) any(c *cobra.Command) bool {
	for _, name := range []string{"title", "category", "completed", "end", "step"} {
		if c.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// apply copies the changed flags onto g.
func (f *goalFlags) apply(c *cobra.Command, g model.Goal) (model.Goal, error) {
	changed := c.Flags().Changed

	if changed("title") {
		g.Title = strings.TrimSpace(f.title)
	}
	if changed("category") {
		cat, err := model.ParseCategory(f.category)
		if err != nil {
			return g, err
		}
		g.Category = cat
	}
	if changed("completed") {
		g.Completed = f.completed
	}
	if changed("end") {
		d, err := model.ParseDate(f.end)
		if err != nil {
			return g, err
		}
		g.EndDate = d
	}
	if changed("step") {
		var steps model.Steps
		for _, s := range f.steps {
			step, ok := model.ParseStepLine(s)
			if !ok {
				return g, fmt.Errorf("empty step %q", s)
			}
			steps = append(steps, step)
		}
		g.Steps = steps
	}
	return g, nil
}

func parseGoalID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid goal id %q", arg)
	}
	return id, nil
}
