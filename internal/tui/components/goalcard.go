package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/goaltrack/internal/cli"
	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/pipeline"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// GoalRowHeight is the number of lines GoalRow renders.
const GoalRowHeight = 2

// GoalRow renders a goal as two list lines: title with due date, then its
// category and completion bar. width is the inner width of the list card.
func GoalRow(g model.Goal, selected bool, width int, now time.Time) string {
	t := theme.Active

	bg := t.Surface
	if selected {
		bg = t.Selected
	}
	base := lipgloss.NewStyle().Background(bg)

	marker := "  "
	if selected {
		marker = "▸ "
	}
	markerStyle := base.Foreground(t.Accent).Bold(true)
	titleStyle := base.Foreground(t.Text).Bold(selected)
	dueStyle := base.Foreground(t.TextMuted)
	if overdue(g, now) {
		dueStyle = base.Foreground(t.DueSoon)
	}
	catStyle := base.Foreground(t.TextDim)

	due := ""
	if !g.EndDate.IsZero() {
		due = cli.FormatDue(g.EndDate, now)
	}
	titleW := width - lipgloss.Width(marker) - lipgloss.Width(due) - 1
	if titleW < 8 {
		titleW = 8
	}
	title := cli.Truncate(g.Title, titleW)

	line1 := markerStyle.Render(marker) + titleStyle.Render(title)
	gap := width - lipgloss.Width(line1) - lipgloss.Width(due)
	if gap < 1 {
		gap = 1
	}
	line1 += base.Render(strings.Repeat(" ", gap)) + dueStyle.Render(due)

	barW := width / 3
	if barW > 24 {
		barW = 24
	}
	bar := CompletionBar(g.Completed, barW)
	cat := cli.Truncate(g.Category.String(), width-lipgloss.Width(bar)-5)
	line2 := base.Render("  ") + catStyle.Render(cat)
	gap = width - lipgloss.Width(line2) - lipgloss.Width(bar)
	if gap < 1 {
		gap = 1
	}
	line2 += base.Render(strings.Repeat(" ", gap)) + bar

	return line1 + "\n" + line2
}

// GoalDetail renders the body of the detail card for g.
func GoalDetail(g model.Goal, width int, now time.Time) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.Text).Background(t.Surface)
	doneStyle := lipgloss.NewStyle().Foreground(t.Done).Background(t.Surface)
	todoStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	warnStyle := lipgloss.NewStyle().Foreground(t.DueSoon).Background(t.Surface)

	row := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-10s", label)) + value + "\n"
	}

	var b strings.Builder
	b.WriteString(row("Category", valueStyle.Render(g.Category.String())))
	b.WriteString(row("Status", lipgloss.NewStyle().
		Foreground(theme.Active.ForBucket(pipeline.Classify(g))).
		Background(t.Surface).
		Render(pipeline.Classify(g).String())))

	due := "none"
	dueStyle := valueStyle
	if !g.EndDate.IsZero() {
		due = cli.FormatDue(g.EndDate, now)
		if overdue(g, now) {
			dueStyle = warnStyle
		}
	}
	b.WriteString(row("Due", dueStyle.Render(due)))

	barW := width - 16
	if barW > 40 {
		barW = 40
	}
	b.WriteString(row("Progress", CompletionBar(g.Completed, barW)))
	b.WriteString("\n")

	done, total := g.Steps.Progress()
	b.WriteString(row("Steps", StepsBar(done, total, barW)))
	for _, s := range g.Steps {
		text := cli.Truncate(s.Title, width-6)
		if s.Done {
			b.WriteString(doneStyle.Render("  ✓ " + text))
		} else {
			b.WriteString(todoStyle.Render("  ○ ") + valueStyle.Render(text))
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func overdue(g model.Goal, now time.Time) bool {
	return !g.IsComplete() && !g.EndDate.IsZero() && cli.DaysUntil(g.EndDate, now) < 0
}
