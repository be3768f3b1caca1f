package components

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// StepsBar renders step progress as a segmented bar, one cell per step
// when they fit, followed by "done/total". The bar takes the color of the
// bucket the step ratio would fall in.
func StepsBar(done, total, width int) string {
	t := theme.Active
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)
	countStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if total <= 0 {
		return countStyle.Render("no steps")
	}
	done = max(0, min(done, total))

	cells := total
	if cells > width {
		cells = width
	}
	if cells < 1 {
		cells = 1
	}
	filled := done * cells / total

	color := CompletionColor(done * 100 / total)
	filledStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	return filledStyle.Render(strings.Repeat("■", filled)) +
		emptyStyle.Render(strings.Repeat("□", cells-filled)) +
		spaceStyle.Render(" ") +
		countStyle.Render(fmt.Sprintf("%d/%d", done, total))
}

// CompletionColor returns the bucket color for a completion percentage.
func CompletionColor(completed int) lipgloss.Color {
	var b model.Bucket
	switch {
	case completed >= 100:
		b = model.BucketCompleted
	case completed <= 0:
		b = model.BucketNotStarted
	default:
		b = model.BucketInProgress
	}
	return theme.Active.ForBucket(b)
}

// CompletionBar renders a goal's completion as a solid bar plus percentage.
func CompletionBar(completed, barWidth int) string {
	t := theme.Active

	if completed < 0 {
		completed = 0
	}
	if completed > 100 {
		completed = 100
	}
	if barWidth < 4 {
		barWidth = 4
	}

	color := CompletionColor(completed)
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(float64(completed)/100) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3d%%", completed))
}

// CompactBar renders a labelled status-bar-sized completion indicator.
// pct is a fraction in [0, 1].
func CompactBar(label string, pct float64, width int) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	barW := width - lipgloss.Width(label) - 6
	if barW < 4 {
		barW = 4
	}

	color := CompletionColor(int(pct * 100))
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barW),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(label) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%2.0f%%", pct*100))
}
