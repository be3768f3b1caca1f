package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/model"

	"github.com/charmbracelet/huh"
)

type formKind int

const (
	formNone formKind = iota
	formAdd
	formEdit
	formDelete
	formLogin
)

// goalFormValues backs the add/edit form. huh binds to these fields by
// pointer, so the struct lives behind a pointer on App.
type goalFormValues struct {
	Title     string
	Category  string // category slug
	Completed string
	EndDate   string
	Steps     string // one step per line, "[x] " marks done
	Confirm   bool
}

func valuesFromGoal(g model.Goal) *goalFormValues {
	v := &goalFormValues{
		Title:     g.Title,
		Category:  g.Category.Slug(),
		Completed: strconv.Itoa(g.Completed),
		EndDate:   g.EndDate.String(),
		Steps:     formatStepLines(g.Steps),
	}
	if !g.Category.Concrete() {
		v.Category = model.CategoryPersonalDevelopment.Slug()
	}
	return v
}

// apply copies the form values onto base, keeping its id and owner.
func (v *goalFormValues) apply(base model.Goal) (model.Goal, error) {
	g := base
	g.Title = strings.TrimSpace(v.Title)

	cat, err := model.ParseCategory(v.Category)
	if err != nil {
		return g, err
	}
	g.Category = cat

	completed, err := parseCompleted(v.Completed)
	if err != nil {
		return g, err
	}
	g.Completed = completed

	d, err := model.ParseDate(v.EndDate)
	if err != nil {
		return g, err
	}
	g.EndDate = d

	g.Steps = parseStepLines(v.Steps)
	return g, g.Validate()
}

func parseCompleted(s string) (int, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("completion must be a whole number")
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("completion must be within 0-100")
	}
	return n, nil
}

// parseStepLines reads the steps text area, one step per non-blank line.
func parseStepLines(text string) model.Steps {
	var steps model.Steps
	for _, line := range strings.Split(text, "\n") {
		if step, ok := model.ParseStepLine(line); ok {
			steps = append(steps, step)
		}
	}
	return steps
}

func formatStepLines(steps model.Steps) string {
	lines := make([]string, len(steps))
	for i, s := range steps {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

func categoryOptions() []huh.Option[string] {
	var opts []huh.Option[string]
	for _, c := range model.Categories() {
		opts = append(opts, huh.NewOption(c.String(), c.Slug()))
	}
	return opts
}

func newGoalForm(title string, v *goalFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Title").
				Value(&v.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("title is required")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categoryOptions()...).
				Value(&v.Category),
			huh.NewInput().
				Title("Completed (%)").
				Placeholder("0-100").
				Value(&v.Completed).
				Validate(func(s string) error {
					_, err := parseCompleted(s)
					return err
				}),
			huh.NewInput().
				Title("End date").
				Placeholder("YYYY-MM-DD (optional)").
				Value(&v.EndDate).
				Validate(func(s string) error {
					_, err := model.ParseDate(s)
					return err
				}),
			huh.NewText().
				Title("Steps").
				Description("One per line; prefix with [x] when done").
				Lines(5).
				Value(&v.Steps),
		),
	).WithShowHelp(true)
}

func newDeleteForm(g model.Goal, v *goalFormValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", g.Title)).
				Description("This removes the goal from the service.").
				Affirmative("Delete").
				Negative("Keep").
				Value(&v.Confirm),
		),
	)
}

// loginValues backs the login form shown when no session is stored.
type loginValues struct {
	UserID string
	Name   string
}

func (v *loginValues) userID() (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(v.UserID))
	if err != nil || id <= 0 {
		return 0, errors.New("user id must be a positive number")
	}
	return id, nil
}

func newLoginForm(v *loginValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Sign in").
				Description("No session found. Enter the user id your goals belong to."),
			huh.NewInput().
				Title("User id").
				Value(&v.UserID).
				Validate(func(string) error {
					_, err := v.userID()
					return err
				}),
			huh.NewInput().
				Title("Name").
				Placeholder("optional").
				Value(&v.Name),
		),
	)
}
